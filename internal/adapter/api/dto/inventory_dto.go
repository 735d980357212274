package dto

import (
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/inventory"
)

// InventoryItemRequest representa a requisição de item de estoque
type InventoryItemRequest struct {
	ID             string           `json:"id" validate:"required"`
	SkuCode        string           `json:"sku_code" validate:"required"`
	BranchID       string           `json:"branch_id" validate:"required"`
	Description    *string          `json:"description"`
	QuantityOnHand *decimal.Decimal `json:"quantity_on_hand"`
	ReorderLevel   *decimal.Decimal `json:"reorder_level"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *InventoryItemRequest) ToEntity() *inventory.Item {
	return &inventory.Item{
		ID:             r.ID,
		SkuCode:        r.SkuCode,
		BranchID:       r.BranchID,
		Description:    r.Description,
		QuantityOnHand: defaultAmount(r.QuantityOnHand),
		ReorderLevel:   defaultAmount(r.ReorderLevel),
	}
}

// InventoryMovementRequest representa a requisição de movimento de estoque
type InventoryMovementRequest struct {
	ID            string           `json:"id" validate:"required"`
	SkuCode       string           `json:"sku_code" validate:"required"`
	BranchID      string           `json:"branch_id" validate:"required"`
	MovementType  string           `json:"movement_type" validate:"required"`
	QuantityDelta *decimal.Decimal `json:"quantity_delta" validate:"required"`
	ReferenceType *string          `json:"reference_type"`
	ReferenceID   *string          `json:"reference_id"`
}

// ToEntity converte a requisição em entidade
func (r *InventoryMovementRequest) ToEntity() *inventory.Movement {
	return &inventory.Movement{
		ID:            r.ID,
		SkuCode:       r.SkuCode,
		BranchID:      r.BranchID,
		MovementType:  r.MovementType,
		QuantityDelta: *r.QuantityDelta,
		ReferenceType: r.ReferenceType,
		ReferenceID:   r.ReferenceID,
	}
}
