package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/procurement"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	ID           string  `json:"id" validate:"required"`
	SupplierCode string  `json:"supplier_code" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	CountryCode  *string `json:"country_code"`
	IsActive     *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *SupplierRequest) ToEntity() *procurement.Supplier {
	return &procurement.Supplier{
		ID:           r.ID,
		SupplierCode: r.SupplierCode,
		Name:         r.Name,
		CountryCode:  r.CountryCode,
		IsActive:     defaultActive(r.IsActive),
	}
}

// PurchaseOrderRequest representa a requisição de pedido de compra
type PurchaseOrderRequest struct {
	ID           string  `json:"id" validate:"required"`
	PONumber     string  `json:"po_number" validate:"required"`
	SupplierID   string  `json:"supplier_id" validate:"required"`
	BranchID     *string `json:"branch_id"`
	Status       string  `json:"status"`
	CurrencyCode *string `json:"currency_code"`
}

// ToEntity converte a requisição em entidade; pedidos nascem em ordered
func (r *PurchaseOrderRequest) ToEntity() *procurement.PurchaseOrder {
	status := r.Status
	if status == "" {
		status = string(procurement.OrderStatusOrdered)
	}
	return &procurement.PurchaseOrder{
		ID:           r.ID,
		PONumber:     r.PONumber,
		SupplierID:   r.SupplierID,
		BranchID:     r.BranchID,
		Status:       status,
		CurrencyCode: r.CurrencyCode,
	}
}

// PurchaseOrderLineRequest representa a requisição de linha de pedido de compra
type PurchaseOrderLineRequest struct {
	ID              string           `json:"id" validate:"required"`
	PurchaseOrderID string           `json:"purchase_order_id" validate:"required"`
	SkuCode         string           `json:"sku_code" validate:"required"`
	OrderedQty      *decimal.Decimal `json:"ordered_qty" validate:"required"`
	UnitCostAmount  *decimal.Decimal `json:"unit_cost_amount"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *PurchaseOrderLineRequest) ToEntity() *procurement.PurchaseOrderLine {
	return &procurement.PurchaseOrderLine{
		ID:              r.ID,
		PurchaseOrderID: r.PurchaseOrderID,
		SkuCode:         r.SkuCode,
		OrderedQty:      *r.OrderedQty,
		ReceivedQty:     decimal.Zero,
		UnitCostAmount:  defaultAmount(r.UnitCostAmount),
	}
}

// GoodsReceiptRequest representa a requisição de recebimento de mercadoria
type GoodsReceiptRequest struct {
	ID              string  `json:"id" validate:"required"`
	GrnNo           *string `json:"grn_no"`
	PurchaseOrderID string  `json:"purchase_order_id" validate:"required"`
	BranchID        string  `json:"branch_id" validate:"required"`
	ReceivedDate    string  `json:"received_date"`
	Notes           *string `json:"notes"`
}

// ToEntity converte a requisição em entidade; received_date omitido vale hoje
func (r *GoodsReceiptRequest) ToEntity() *procurement.GoodsReceipt {
	receivedDate := r.ReceivedDate
	if receivedDate == "" {
		receivedDate = time.Now().UTC().Format("2006-01-02")
	}
	return &procurement.GoodsReceipt{
		ID:              r.ID,
		GrnNo:           r.GrnNo,
		PurchaseOrderID: r.PurchaseOrderID,
		BranchID:        r.BranchID,
		ReceivedDate:    receivedDate,
		Notes:           r.Notes,
	}
}

// GoodsReceiptLineItem representa uma linha dentro do lançamento de recebimento
type GoodsReceiptLineItem struct {
	ID                  string           `json:"id" validate:"required"`
	PurchaseOrderLineID string           `json:"purchase_order_line_id" validate:"required"`
	SkuCode             string           `json:"sku_code" validate:"required"`
	ReceivedQty         *decimal.Decimal `json:"received_qty" validate:"required"`
	AcceptedQty         *decimal.Decimal `json:"accepted_qty" validate:"required"`
	RejectedQty         *decimal.Decimal `json:"rejected_qty"`
}

// GoodsReceiptLinesRequest representa o lançamento das linhas de um GRN
type GoodsReceiptLinesRequest struct {
	GoodsReceiptID string                 `json:"goods_receipt_id" validate:"required"`
	Lines          []GoodsReceiptLineItem `json:"lines" validate:"required,min=1,dive"`
}

// ToEntities converte as linhas em entidades; rejected_qty omitido vale
// recebido menos aceito
func (r *GoodsReceiptLinesRequest) ToEntities() []*procurement.GoodsReceiptLine {
	lines := make([]*procurement.GoodsReceiptLine, 0, len(r.Lines))
	for _, item := range r.Lines {
		lines = append(lines, &procurement.GoodsReceiptLine{
			ID:                  item.ID,
			GoodsReceiptID:      r.GoodsReceiptID,
			PurchaseOrderLineID: item.PurchaseOrderLineID,
			SkuCode:             item.SkuCode,
			ReceivedQty:         *item.ReceivedQty,
			AcceptedQty:         *item.AcceptedQty,
			RejectedQty:         procurement.DefaultRejectedQty(*item.ReceivedQty, *item.AcceptedQty, item.RejectedQty),
		})
	}
	return lines
}
