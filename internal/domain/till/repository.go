package till

import "context"

// Repository define as operações de persistência de sessões de caixa e conferências
type Repository interface {
	CreateSession(ctx context.Context, s *Session) error
	ListSessions(ctx context.Context) ([]Session, error)

	// CloseSession aplica o fechamento apenas se a sessão estiver aberta;
	// retorna ErrSessionNotOpen caso contrário.
	CloseSession(ctx context.Context, c *SessionClose) error

	CreateCashDrop(ctx context.Context, d *CashDrop) error
	ListCashDrops(ctx context.Context) ([]CashDrop, error)

	CreateVarianceReason(ctx context.Context, r *VarianceReason) error
	ListVarianceReasons(ctx context.Context) ([]VarianceReason, error)

	CreateReconciliation(ctx context.Context, r *Reconciliation) error
	ListReconciliations(ctx context.Context) ([]Reconciliation, error)
}
