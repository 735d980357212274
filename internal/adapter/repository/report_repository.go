package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openclaw/openclaw-pos/internal/domain/report"
	"github.com/openclaw/openclaw-pos/internal/domain/till"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresReportRepository implementa report.Repository usando PostgreSQL
type PostgresReportRepository struct {
	db *database.PostgresDB
}

// NewPostgresReportRepository cria uma nova instância de PostgresReportRepository
func NewPostgresReportRepository(db *database.PostgresDB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

// DayCloseSummary implementa report.Repository.DayCloseSummary.
// Relatório somente leitura: totais de cupons, pagamentos por meio de
// pagamento e a conferência da filial, se houver. Escopo vazio devolve
// totais zerados.
func (r *PostgresReportRepository) DayCloseSummary(ctx context.Context, branchID, businessDate string) (*report.DayCloseSummary, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	summary := &report.DayCloseSummary{
		BranchID:     branchID,
		BusinessDate: businessDate,
		Payments:     []report.PaymentTotal{},
	}

	receiptQuery := `
		SELECT COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(SUM(tax_amount), 0),
			COALESCE(SUM(discount_amount), 0)
		FROM sales_receipts
		WHERE branch_id = $1 AND business_date = $2
	`

	err = conn.QueryRow(ctx, receiptQuery, branchID, businessDate).Scan(
		&summary.Receipts.ReceiptCount,
		&summary.Receipts.GrossSales,
		&summary.Receipts.TotalTax,
		&summary.Receipts.TotalDiscount,
	)
	if err != nil {
		return nil, fmt.Errorf("falha ao agregar cupons do dia: %w", err)
	}

	paymentQuery := `
		SELECT p.payment_method_id,
			COALESCE(m.method_code, ''),
			COALESCE(m.name, ''),
			COALESCE(SUM(p.amount), 0) AS total
		FROM sales_receipt_payments p
		JOIN sales_receipts r ON r.id = p.sales_receipt_id
		LEFT JOIN payment_methods m ON m.id = p.payment_method_id
		WHERE r.branch_id = $1 AND r.business_date = $2
		GROUP BY p.payment_method_id, m.method_code, m.name
		ORDER BY total DESC
	`

	rows, err := conn.Query(ctx, paymentQuery, branchID, businessDate)
	if err != nil {
		return nil, fmt.Errorf("falha ao agregar pagamentos do dia: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p report.PaymentTotal
		if err := rows.Scan(&p.PaymentMethodID, &p.MethodCode, &p.MethodName, &p.Amount); err != nil {
			return nil, fmt.Errorf("falha ao ler total de pagamento: %w", err)
		}
		summary.Payments = append(summary.Payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	reconciliationQuery := `
		SELECT id, branch_id, business_date::text, expected_sales_amount, counted_cash_amount,
			variance_amount, status, created_at, updated_at
		FROM branch_reconciliations
		WHERE branch_id = $1 AND business_date = $2
	`

	var rec till.Reconciliation
	err = conn.QueryRow(ctx, reconciliationQuery, branchID, businessDate).Scan(
		&rec.ID, &rec.BranchID, &rec.BusinessDate, &rec.ExpectedSalesAmount,
		&rec.CountedCashAmount, &rec.VarianceAmount, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	switch {
	case err == nil:
		summary.Reconciliation = &rec
	case errors.Is(err, pgx.ErrNoRows):
		// Sem conferência para o escopo: o campo fica nulo
	default:
		return nil, fmt.Errorf("falha ao buscar conferência do dia: %w", err)
	}

	return summary, nil
}
