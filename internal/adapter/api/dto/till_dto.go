package dto

import (
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/till"
)

// TillSessionRequest representa a requisição de abertura de sessão de caixa
type TillSessionRequest struct {
	ID                 string           `json:"id" validate:"required"`
	TillID             string           `json:"till_id" validate:"required"`
	BranchID           string           `json:"branch_id" validate:"required"`
	EmployeeID         *string          `json:"employee_id"`
	OpeningFloatAmount *decimal.Decimal `json:"opening_float_amount" validate:"required"`
}

// ToEntity converte a requisição em entidade; sessões nascem abertas
func (r *TillSessionRequest) ToEntity() *till.Session {
	return &till.Session{
		ID:                 r.ID,
		TillID:             r.TillID,
		BranchID:           r.BranchID,
		EmployeeID:         r.EmployeeID,
		OpeningFloatAmount: *r.OpeningFloatAmount,
		Status:             string(till.SessionStatusOpen),
	}
}

// TillSessionCloseRequest representa a requisição de fechamento de sessão
type TillSessionCloseRequest struct {
	TillSessionID      string           `json:"till_session_id" validate:"required"`
	ExpectedCashAmount *decimal.Decimal `json:"expected_cash_amount" validate:"required"`
	CountedCashAmount  *decimal.Decimal `json:"counted_cash_amount" validate:"required"`
}

// ToClose converte a requisição nos valores de fechamento
func (r *TillSessionCloseRequest) ToClose() *till.SessionClose {
	return &till.SessionClose{
		SessionID:          r.TillSessionID,
		ExpectedCashAmount: *r.ExpectedCashAmount,
		CountedCashAmount:  *r.CountedCashAmount,
	}
}

// CashDropRequest representa a requisição de sangria de caixa
type CashDropRequest struct {
	ID            string           `json:"id" validate:"required"`
	TillSessionID string           `json:"till_session_id" validate:"required"`
	Amount        *decimal.Decimal `json:"amount" validate:"required"`
	Reason        *string          `json:"reason"`
}

// ToEntity converte a requisição em entidade
func (r *CashDropRequest) ToEntity() *till.CashDrop {
	return &till.CashDrop{
		ID:            r.ID,
		TillSessionID: r.TillSessionID,
		Amount:        *r.Amount,
		Reason:        r.Reason,
	}
}

// VarianceReasonRequest representa a requisição de motivo de divergência
type VarianceReasonRequest struct {
	ID          string `json:"id" validate:"required"`
	ReasonCode  string `json:"reason_code" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ToEntity converte a requisição em entidade
func (r *VarianceReasonRequest) ToEntity() *till.VarianceReason {
	return &till.VarianceReason{
		ID:          r.ID,
		ReasonCode:  r.ReasonCode,
		Description: r.Description,
	}
}

// BranchReconciliationRequest representa a requisição de conferência de filial
type BranchReconciliationRequest struct {
	ID                  string           `json:"id" validate:"required"`
	BranchID            string           `json:"branch_id" validate:"required"`
	BusinessDate        string           `json:"business_date" validate:"required"`
	ExpectedSalesAmount *decimal.Decimal `json:"expected_sales_amount" validate:"required"`
	CountedCashAmount   *decimal.Decimal `json:"counted_cash_amount" validate:"required"`
}

// ToEntity converte a requisição em entidade; variância e status são
// derivados dos valores informados, nunca aceitos do chamador
func (r *BranchReconciliationRequest) ToEntity() *till.Reconciliation {
	variance, status := till.DeriveReconciliation(*r.ExpectedSalesAmount, *r.CountedCashAmount)
	return &till.Reconciliation{
		ID:                  r.ID,
		BranchID:            r.BranchID,
		BusinessDate:        r.BusinessDate,
		ExpectedSalesAmount: *r.ExpectedSalesAmount,
		CountedCashAmount:   *r.CountedCashAmount,
		VarianceAmount:      variance,
		Status:              string(status),
	}
}
