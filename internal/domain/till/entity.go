package till

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrSessionNotOpen é retornado ao fechar uma sessão inexistente ou já fechada
	ErrSessionNotOpen = errors.New("sessão de caixa não encontrada ou já fechada")
)

// SessionStatus representa o estado de uma sessão de caixa
type SessionStatus string

const (
	SessionStatusOpen   SessionStatus = "open"
	SessionStatusClosed SessionStatus = "closed"
)

// ReconciliationStatus representa o resultado da conferência de caixa da filial
type ReconciliationStatus string

const (
	ReconciliationMatched     ReconciliationStatus = "matched"
	ReconciliationInvestigate ReconciliationStatus = "investigate"
)

// Session representa uma sessão de caixa. Ciclo de vida: criada aberta,
// fechada uma única vez pela operação de fechamento.
type Session struct {
	ID                 string           `json:"id"`
	TillID             string           `json:"till_id"`
	BranchID           string           `json:"branch_id"`
	EmployeeID         *string          `json:"employee_id"`
	OpeningFloatAmount decimal.Decimal  `json:"opening_float_amount"`
	ExpectedCashAmount *decimal.Decimal `json:"expected_cash_amount"`
	CountedCashAmount  *decimal.Decimal `json:"counted_cash_amount"`
	VarianceAmount     *decimal.Decimal `json:"variance_amount"`
	Status             string           `json:"status"`
	OpenedAt           time.Time        `json:"opened_at"`
	ClosedAt           *time.Time       `json:"closed_at"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// SessionClose carrega os valores informados no fechamento de uma sessão
type SessionClose struct {
	SessionID          string
	ExpectedCashAmount decimal.Decimal
	CountedCashAmount  decimal.Decimal
}

// Variance retorna contado menos esperado
func (c SessionClose) Variance() decimal.Decimal {
	return c.CountedCashAmount.Sub(c.ExpectedCashAmount)
}

// CashDrop representa uma sangria de caixa durante a sessão
type CashDrop struct {
	ID            string          `json:"id"`
	TillSessionID string          `json:"till_session_id"`
	Amount        decimal.Decimal `json:"amount"`
	Reason        *string         `json:"reason"`
	CreatedAt     time.Time       `json:"created_at"`
}

// VarianceReason representa um motivo catalogado de divergência de caixa
type VarianceReason struct {
	ID          string    `json:"id"`
	ReasonCode  string    `json:"reason_code"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Reconciliation representa a conferência de caixa de uma filial em uma data
type Reconciliation struct {
	ID                  string          `json:"id"`
	BranchID            string          `json:"branch_id"`
	BusinessDate        string          `json:"business_date"`
	ExpectedSalesAmount decimal.Decimal `json:"expected_sales_amount"`
	CountedCashAmount   decimal.Decimal `json:"counted_cash_amount"`
	VarianceAmount      decimal.Decimal `json:"variance_amount"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// DeriveReconciliation calcula a variância (contado − esperado) e o status,
// que é função pura do sinal da variância: zero confere, qualquer outro
// valor vai para investigação.
func DeriveReconciliation(expected, counted decimal.Decimal) (decimal.Decimal, ReconciliationStatus) {
	variance := counted.Sub(expected)
	if variance.IsZero() {
		return variance, ReconciliationMatched
	}
	return variance, ReconciliationInvestigate
}
