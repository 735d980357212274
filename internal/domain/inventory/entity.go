package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType classifica a origem de um lançamento no razão de estoque
type MovementType string

const (
	MovementTypeSale         MovementType = "sale"
	MovementTypeSaleReturn   MovementType = "sale_return"
	MovementTypeGoodsReceipt MovementType = "goods_receipt"
	MovementTypeAdjustment   MovementType = "adjustment"
)

// Item representa o saldo corrente de um SKU em uma filial.
// quantity_on_hand é uma projeção materializada do razão de movimentos e
// só é alterada dentro da mesma transação que insere o movimento.
type Item struct {
	ID             string          `json:"id"`
	SkuCode        string          `json:"sku_code"`
	BranchID       string          `json:"branch_id"`
	Description    *string         `json:"description"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
	ReorderLevel   decimal.Decimal `json:"reorder_level"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Movement representa um lançamento append-only no razão de estoque
type Movement struct {
	ID            string          `json:"id"`
	SkuCode       string          `json:"sku_code"`
	BranchID      string          `json:"branch_id"`
	MovementType  string          `json:"movement_type"`
	QuantityDelta decimal.Decimal `json:"quantity_delta"`
	ReferenceType *string         `json:"reference_type"`
	ReferenceID   *string         `json:"reference_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RestockMovement monta o movimento sintético gerado pela devolução de venda.
// O delta é sempre positivo: devolver reabastece o saldo.
func RestockMovement(id, skuCode, branchID, returnLineID string, quantity decimal.Decimal) *Movement {
	refType := "sales_return_line"
	return &Movement{
		ID:            id,
		SkuCode:       skuCode,
		BranchID:      branchID,
		MovementType:  string(MovementTypeSaleReturn),
		QuantityDelta: quantity.Abs(),
		ReferenceType: &refType,
		ReferenceID:   &returnLineID,
	}
}
