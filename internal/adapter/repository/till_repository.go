package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/till"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresTillRepository implementa till.Repository usando PostgreSQL
type PostgresTillRepository struct {
	db *database.PostgresDB
}

// NewPostgresTillRepository cria uma nova instância de PostgresTillRepository
func NewPostgresTillRepository(db *database.PostgresDB) *PostgresTillRepository {
	return &PostgresTillRepository{db: db}
}

// CreateSession implementa till.Repository.CreateSession
func (r *PostgresTillRepository) CreateSession(ctx context.Context, s *till.Session) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO till_sessions (id, till_id, branch_id, employee_id, opening_float_amount, status)
		VALUES ($1, $2, $3, $4, $5, 'open')
	`

	_, err = conn.Exec(ctx, query, s.ID, s.TillID, s.BranchID, s.EmployeeID, s.OpeningFloatAmount)
	if err != nil {
		return fmt.Errorf("falha ao abrir sessão de caixa: %w", err)
	}

	return nil
}

// ListSessions implementa till.Repository.ListSessions
func (r *PostgresTillRepository) ListSessions(ctx context.Context) ([]till.Session, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, till_id, branch_id, employee_id, opening_float_amount, expected_cash_amount,
			counted_cash_amount, variance_amount, status, opened_at, closed_at, created_at, updated_at
		FROM till_sessions ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar sessões de caixa: %w", err)
	}
	defer rows.Close()

	sessions := []till.Session{}
	for rows.Next() {
		var s till.Session
		if err := rows.Scan(
			&s.ID, &s.TillID, &s.BranchID, &s.EmployeeID, &s.OpeningFloatAmount,
			&s.ExpectedCashAmount, &s.CountedCashAmount, &s.VarianceAmount, &s.Status,
			&s.OpenedAt, &s.ClosedAt, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler sessão de caixa: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// CloseSession implementa till.Repository.CloseSession.
// O guard status='open' garante a transição única open→closed: fechar uma
// sessão já fechada (ou inexistente) não afeta linha alguma.
func (r *PostgresTillRepository) CloseSession(ctx context.Context, c *till.SessionClose) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		UPDATE till_sessions
		SET expected_cash_amount = $1,
			counted_cash_amount = $2,
			variance_amount = $3,
			status = 'closed',
			closed_at = now(),
			updated_at = now()
		WHERE id = $4 AND status = 'open'
	`

	tag, err := conn.Exec(ctx, query, c.ExpectedCashAmount, c.CountedCashAmount, c.Variance(), c.SessionID)
	if err != nil {
		return fmt.Errorf("falha ao fechar sessão de caixa: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return till.ErrSessionNotOpen
	}

	return nil
}

// CreateCashDrop implementa till.Repository.CreateCashDrop
func (r *PostgresTillRepository) CreateCashDrop(ctx context.Context, d *till.CashDrop) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO cash_drops (id, till_session_id, amount, reason)
		VALUES ($1, $2, $3, $4)
	`

	_, err = conn.Exec(ctx, query, d.ID, d.TillSessionID, d.Amount, d.Reason)
	if err != nil {
		return fmt.Errorf("falha ao inserir sangria: %w", err)
	}

	return nil
}

// ListCashDrops implementa till.Repository.ListCashDrops
func (r *PostgresTillRepository) ListCashDrops(ctx context.Context) ([]till.CashDrop, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, till_session_id, amount, reason, created_at
		FROM cash_drops ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar sangrias: %w", err)
	}
	defer rows.Close()

	drops := []till.CashDrop{}
	for rows.Next() {
		var d till.CashDrop
		if err := rows.Scan(&d.ID, &d.TillSessionID, &d.Amount, &d.Reason, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler sangria: %w", err)
		}
		drops = append(drops, d)
	}

	return drops, rows.Err()
}

// CreateVarianceReason implementa till.Repository.CreateVarianceReason
func (r *PostgresTillRepository) CreateVarianceReason(ctx context.Context, vr *till.VarianceReason) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO variance_reasons (id, reason_code, description)
		VALUES ($1, $2, $3)
	`

	_, err = conn.Exec(ctx, query, vr.ID, vr.ReasonCode, vr.Description)
	if err != nil {
		return fmt.Errorf("falha ao inserir motivo de divergência: %w", err)
	}

	return nil
}

// ListVarianceReasons implementa till.Repository.ListVarianceReasons
func (r *PostgresTillRepository) ListVarianceReasons(ctx context.Context) ([]till.VarianceReason, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, reason_code, description, created_at
		FROM variance_reasons ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar motivos de divergência: %w", err)
	}
	defer rows.Close()

	reasons := []till.VarianceReason{}
	for rows.Next() {
		var vr till.VarianceReason
		if err := rows.Scan(&vr.ID, &vr.ReasonCode, &vr.Description, &vr.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler motivo de divergência: %w", err)
		}
		reasons = append(reasons, vr)
	}

	return reasons, rows.Err()
}

// CreateReconciliation implementa till.Repository.CreateReconciliation
func (r *PostgresTillRepository) CreateReconciliation(ctx context.Context, rec *till.Reconciliation) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO branch_reconciliations (id, branch_id, business_date, expected_sales_amount,
			counted_cash_amount, variance_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = conn.Exec(ctx, query,
		rec.ID, rec.BranchID, rec.BusinessDate, rec.ExpectedSalesAmount,
		rec.CountedCashAmount, rec.VarianceAmount, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir conferência de caixa: %w", err)
	}

	return nil
}

// ListReconciliations implementa till.Repository.ListReconciliations
func (r *PostgresTillRepository) ListReconciliations(ctx context.Context) ([]till.Reconciliation, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, branch_id, business_date::text, expected_sales_amount, counted_cash_amount,
			variance_amount, status, created_at, updated_at
		FROM branch_reconciliations ORDER BY business_date DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar conferências de caixa: %w", err)
	}
	defer rows.Close()

	recs := []till.Reconciliation{}
	for rows.Next() {
		var rec till.Reconciliation
		if err := rows.Scan(
			&rec.ID, &rec.BranchID, &rec.BusinessDate, &rec.ExpectedSalesAmount,
			&rec.CountedCashAmount, &rec.VarianceAmount, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler conferência de caixa: %w", err)
		}
		recs = append(recs, rec)
	}

	return recs, rows.Err()
}
