package dto

import (
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/sales"
)

// SalesReceiptRequest representa a requisição de cupom de venda
type SalesReceiptRequest struct {
	ID             string           `json:"id" validate:"required"`
	ReceiptNo      string           `json:"receipt_no" validate:"required"`
	BranchID       string           `json:"branch_id" validate:"required"`
	TillID         string           `json:"till_id" validate:"required"`
	EmployeeID     *string          `json:"employee_id"`
	CustomerID     *string          `json:"customer_id"`
	BusinessDate   string           `json:"business_date" validate:"required"`
	SubtotalAmount *decimal.Decimal `json:"subtotal_amount"`
	TaxAmount      *decimal.Decimal `json:"tax_amount"`
	DiscountAmount *decimal.Decimal `json:"discount_amount"`
	TotalAmount    *decimal.Decimal `json:"total_amount" validate:"required"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *SalesReceiptRequest) ToEntity() *sales.Receipt {
	return &sales.Receipt{
		ID:             r.ID,
		ReceiptNo:      r.ReceiptNo,
		BranchID:       r.BranchID,
		TillID:         r.TillID,
		EmployeeID:     r.EmployeeID,
		CustomerID:     r.CustomerID,
		BusinessDate:   r.BusinessDate,
		SubtotalAmount: defaultAmount(r.SubtotalAmount),
		TaxAmount:      defaultAmount(r.TaxAmount),
		DiscountAmount: defaultAmount(r.DiscountAmount),
		TotalAmount:    *r.TotalAmount,
	}
}

// SalesReceiptLineRequest representa a requisição de item de cupom
type SalesReceiptLineRequest struct {
	ID              string           `json:"id" validate:"required"`
	SalesReceiptID  string           `json:"sales_receipt_id" validate:"required"`
	SkuCode         string           `json:"sku_code" validate:"required"`
	Quantity        *decimal.Decimal `json:"quantity" validate:"required"`
	UnitPriceAmount *decimal.Decimal `json:"unit_price_amount" validate:"required"`
	TaxAmount       *decimal.Decimal `json:"tax_amount"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *SalesReceiptLineRequest) ToEntity() *sales.ReceiptLine {
	return &sales.ReceiptLine{
		ID:              r.ID,
		SalesReceiptID:  r.SalesReceiptID,
		SkuCode:         r.SkuCode,
		Quantity:        *r.Quantity,
		UnitPriceAmount: *r.UnitPriceAmount,
		TaxAmount:       defaultAmount(r.TaxAmount),
		DiscountAmount:  defaultAmount(r.DiscountAmount),
	}
}

// SalesReceiptPaymentRequest representa a requisição de pagamento de cupom
type SalesReceiptPaymentRequest struct {
	ID              string           `json:"id" validate:"required"`
	SalesReceiptID  string           `json:"sales_receipt_id" validate:"required"`
	PaymentMethodID string           `json:"payment_method_id" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
}

// ToEntity converte a requisição em entidade
func (r *SalesReceiptPaymentRequest) ToEntity() *sales.ReceiptPayment {
	return &sales.ReceiptPayment{
		ID:              r.ID,
		SalesReceiptID:  r.SalesReceiptID,
		PaymentMethodID: r.PaymentMethodID,
		Amount:          *r.Amount,
	}
}

// SalesReturnRequest representa a requisição de devolução de venda
type SalesReturnRequest struct {
	ID                     string  `json:"id" validate:"required"`
	OriginalSalesReceiptID *string `json:"original_sales_receipt_id"`
	BranchID               string  `json:"branch_id" validate:"required"`
	BusinessDate           string  `json:"business_date" validate:"required"`
	ReturnStatus           string  `json:"return_status"`
	Reason                 *string `json:"reason"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *SalesReturnRequest) ToEntity() *sales.Return {
	status := r.ReturnStatus
	if status == "" {
		status = "created"
	}
	return &sales.Return{
		ID:                     r.ID,
		OriginalSalesReceiptID: r.OriginalSalesReceiptID,
		BranchID:               r.BranchID,
		BusinessDate:           r.BusinessDate,
		ReturnStatus:           status,
		Reason:                 r.Reason,
	}
}

// SalesReturnLineRequest representa a requisição de linha de devolução.
// restock_to_inventory comanda o reabastecimento do saldo; omitido vale true.
type SalesReturnLineRequest struct {
	ID                 string           `json:"id" validate:"required"`
	SalesReturnID      string           `json:"sales_return_id" validate:"required"`
	SkuCode            string           `json:"sku_code" validate:"required"`
	Quantity           *decimal.Decimal `json:"quantity" validate:"required"`
	UnitPriceAmount    *decimal.Decimal `json:"unit_price_amount"`
	RestockToInventory *bool            `json:"restock_to_inventory"`
}

// Restock indica se a linha deve reabastecer o estoque
func (r *SalesReturnLineRequest) Restock() bool {
	if r.RestockToInventory == nil {
		return true
	}
	return *r.RestockToInventory
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *SalesReturnLineRequest) ToEntity() *sales.ReturnLine {
	return &sales.ReturnLine{
		ID:              r.ID,
		SalesReturnID:   r.SalesReturnID,
		SkuCode:         r.SkuCode,
		Quantity:        *r.Quantity,
		UnitPriceAmount: defaultAmount(r.UnitPriceAmount),
		Restocked:       r.Restock(),
	}
}

// SalesRefundRequest representa a requisição de reembolso
type SalesRefundRequest struct {
	ID              string           `json:"id" validate:"required"`
	SalesReturnID   string           `json:"sales_return_id" validate:"required"`
	PaymentMethodID string           `json:"payment_method_id" validate:"required"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
}

// ToEntity converte a requisição em entidade
func (r *SalesRefundRequest) ToEntity() *sales.Refund {
	return &sales.Refund{
		ID:              r.ID,
		SalesReturnID:   r.SalesReturnID,
		PaymentMethodID: r.PaymentMethodID,
		Amount:          *r.Amount,
	}
}
