package sales

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrReturnNotFound é retornado quando a devolução pai de uma linha não existe
	ErrReturnNotFound = errors.New("devolução de venda não encontrada")
)

// Receipt representa um cupom de venda emitido em um caixa.
// A criação força posted_to_ledger=true e posted_at=now, e gera na mesma
// transação um registro no sync_outbox.
type Receipt struct {
	ID             string          `json:"id"`
	ReceiptNo      string          `json:"receipt_no"`
	BranchID       string          `json:"branch_id"`
	TillID         string          `json:"till_id"`
	EmployeeID     *string         `json:"employee_id"`
	CustomerID     *string         `json:"customer_id"`
	BusinessDate   string          `json:"business_date"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`
	TaxAmount      decimal.Decimal `json:"tax_amount"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PostedToLedger bool            `json:"posted_to_ledger"`
	PostedAt       *time.Time      `json:"posted_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IdempotencyKey retorna a chave determinística usada no registro de outbox
// gerado pela emissão deste cupom.
func (r *Receipt) IdempotencyKey() string {
	return fmt.Sprintf("sales-receipt-%s", r.ID)
}

// ReceiptLine representa um item de um cupom de venda
type ReceiptLine struct {
	ID              string          `json:"id"`
	SalesReceiptID  string          `json:"sales_receipt_id"`
	SkuCode         string          `json:"sku_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPriceAmount decimal.Decimal `json:"unit_price_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ReceiptPayment representa um pagamento aplicado a um cupom de venda
type ReceiptPayment struct {
	ID              string          `json:"id"`
	SalesReceiptID  string          `json:"sales_receipt_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Return representa uma devolução de venda
type Return struct {
	ID                     string    `json:"id"`
	OriginalSalesReceiptID *string   `json:"original_sales_receipt_id"`
	BranchID               string    `json:"branch_id"`
	BusinessDate           string    `json:"business_date"`
	ReturnStatus           string    `json:"return_status"`
	Reason                 *string   `json:"reason"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// ReturnLine representa um item devolvido. Quando restocked é verdadeiro o
// item voltou ao estoque via movimento sintético de tipo sale_return.
type ReturnLine struct {
	ID              string          `json:"id"`
	SalesReturnID   string          `json:"sales_return_id"`
	SkuCode         string          `json:"sku_code"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPriceAmount decimal.Decimal `json:"unit_price_amount"`
	Restocked       bool            `json:"restocked"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Refund representa o reembolso de uma devolução
type Refund struct {
	ID              string          `json:"id"`
	SalesReturnID   string          `json:"sales_return_id"`
	PaymentMethodID string          `json:"payment_method_id"`
	Amount          decimal.Decimal `json:"amount"`
	CreatedAt       time.Time       `json:"created_at"`
}
