package report

import (
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/till"
)

// ReceiptTotals agrega os cupons de uma filial em uma data de operação.
// Escopo sem linhas produz totais zerados, não erro.
type ReceiptTotals struct {
	ReceiptCount   int64           `json:"receipt_count"`
	GrossSales     decimal.Decimal `json:"gross_sales"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	TotalDiscount  decimal.Decimal `json:"total_discount"`
}

// PaymentTotal agrega pagamentos por meio de pagamento
type PaymentTotal struct {
	PaymentMethodID string          `json:"payment_method_id"`
	MethodCode      string          `json:"method_code"`
	MethodName      string          `json:"method_name"`
	Amount          decimal.Decimal `json:"amount"`
}

// DayCloseSummary é o relatório de fechamento do dia de uma filial
type DayCloseSummary struct {
	BranchID       string               `json:"branch_id"`
	BusinessDate   string               `json:"business_date"`
	Receipts       ReceiptTotals        `json:"receipts"`
	Payments       []PaymentTotal       `json:"payments"`
	Reconciliation *till.Reconciliation `json:"reconciliation"`
}
