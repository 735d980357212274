package procurement

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrGoodsReceiptNotFound é retornado quando o GRN pai de uma linha não existe
	ErrGoodsReceiptNotFound = errors.New("recebimento de mercadoria não encontrado")
)

// OrderStatus representa o estado de um pedido de compra
type OrderStatus string

const (
	OrderStatusOrdered           OrderStatus = "ordered"
	OrderStatusPartiallyReceived OrderStatus = "partially_received"
	OrderStatusReceived          OrderStatus = "received"
)

// Supplier representa um fornecedor
type Supplier struct {
	ID           string    `json:"id"`
	SupplierCode string    `json:"supplier_code"`
	Name         string    `json:"name"`
	CountryCode  *string   `json:"country_code"`
	IsActive     int       `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PurchaseOrder representa o cabeçalho de um pedido de compra.
// O status é derivado do conjunto das linhas, nunca ajustado incrementalmente.
type PurchaseOrder struct {
	ID           string    `json:"id"`
	PONumber     string    `json:"po_number"`
	SupplierID   string    `json:"supplier_id"`
	BranchID     *string   `json:"branch_id"`
	Status       string    `json:"status"`
	CurrencyCode *string   `json:"currency_code"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PurchaseOrderLine representa uma linha de pedido de compra.
// received_qty só cresce, via lançamento de linhas de recebimento.
type PurchaseOrderLine struct {
	ID              string          `json:"id"`
	PurchaseOrderID string          `json:"purchase_order_id"`
	SkuCode         string          `json:"sku_code"`
	OrderedQty      decimal.Decimal `json:"ordered_qty"`
	ReceivedQty     decimal.Decimal `json:"received_qty"`
	UnitCostAmount  decimal.Decimal `json:"unit_cost_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// GoodsReceipt representa um GRN: o registro do recebimento físico de
// mercadorias contra um pedido de compra.
type GoodsReceipt struct {
	ID              string    `json:"id"`
	GrnNo           *string   `json:"grn_no"`
	PurchaseOrderID string    `json:"purchase_order_id"`
	BranchID        string    `json:"branch_id"`
	ReceivedDate    string    `json:"received_date"`
	Notes           *string   `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// GoodsReceiptLine representa uma linha de recebimento
type GoodsReceiptLine struct {
	ID                  string          `json:"id"`
	GoodsReceiptID      string          `json:"goods_receipt_id"`
	PurchaseOrderLineID string          `json:"purchase_order_line_id"`
	SkuCode             string          `json:"sku_code"`
	ReceivedQty         decimal.Decimal `json:"received_qty"`
	AcceptedQty         decimal.Decimal `json:"accepted_qty"`
	RejectedQty         decimal.Decimal `json:"rejected_qty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// DefaultRejectedQty preenche rejected_qty quando não informado:
// o que foi recebido e não aceito.
func DefaultRejectedQty(received, accepted decimal.Decimal, rejected *decimal.Decimal) decimal.Decimal {
	if rejected != nil {
		return *rejected
	}
	return received.Sub(accepted)
}

// RollupStatus deriva o status do pedido de compra do estado agregado das
// linhas: received quando todas estão totalmente recebidas,
// partially_received quando alguma linha tem qualquer recebimento, e o
// status corrente quando nada foi recebido ainda.
func RollupStatus(totalLines, fullyReceived, anyReceived int, current string) string {
	if totalLines > 0 && fullyReceived == totalLines {
		return string(OrderStatusReceived)
	}
	if anyReceived > 0 {
		return string(OrderStatusPartiallyReceived)
	}
	return current
}
