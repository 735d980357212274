package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/openclaw/openclaw-pos/internal/domain/inventory"
	"github.com/openclaw/openclaw-pos/internal/domain/sales"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresSalesRepository implementa sales.Repository usando PostgreSQL
type PostgresSalesRepository struct {
	db *database.PostgresDB
}

// NewPostgresSalesRepository cria uma nova instância de PostgresSalesRepository
func NewPostgresSalesRepository(db *database.PostgresDB) *PostgresSalesRepository {
	return &PostgresSalesRepository{db: db}
}

// PostReceipt implementa sales.Repository.PostReceipt.
// O cupom é gravado já lançado no razão (posted_to_ledger=true) e o registro
// de outbox sai na mesma transação: ambos persistem ou nenhum.
func (r *PostgresSalesRepository) PostReceipt(ctx context.Context, rc *sales.Receipt) error {
	now := time.Now().UTC()
	rc.PostedToLedger = true
	rc.PostedAt = &now

	payload, err := json.Marshal(rc)
	if err != nil {
		return fmt.Errorf("falha ao serializar cupom para o outbox: %w", err)
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		receiptQuery := `
			INSERT INTO sales_receipts (id, receipt_no, branch_id, till_id, employee_id, customer_id,
				business_date, subtotal_amount, tax_amount, discount_amount, total_amount,
				posted_to_ledger, posted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`

		_, err := tx.Exec(ctx, receiptQuery,
			rc.ID, rc.ReceiptNo, rc.BranchID, rc.TillID, rc.EmployeeID, rc.CustomerID,
			rc.BusinessDate, rc.SubtotalAmount, rc.TaxAmount, rc.DiscountAmount, rc.TotalAmount,
			rc.PostedToLedger, rc.PostedAt,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir cupom de venda: %w", err)
		}

		outboxQuery := `
			INSERT INTO sync_outbox (id, entity_type, entity_id, operation_type, payload, idempotency_key, status)
			VALUES ($1, 'sales_receipt', $2, 'create', $3, $4, 'pending')
		`

		_, err = tx.Exec(ctx, outboxQuery, uuid.New().String(), rc.ID, string(payload), rc.IdempotencyKey())
		if err != nil {
			return fmt.Errorf("falha ao enfileirar cupom no outbox: %w", err)
		}

		return nil
	})
}

// ListReceipts implementa sales.Repository.ListReceipts
func (r *PostgresSalesRepository) ListReceipts(ctx context.Context) ([]sales.Receipt, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, receipt_no, branch_id, till_id, employee_id, customer_id, business_date::text,
			subtotal_amount, tax_amount, discount_amount, total_amount, posted_to_ledger, posted_at,
			created_at, updated_at
		FROM sales_receipts ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar cupons de venda: %w", err)
	}
	defer rows.Close()

	receipts := []sales.Receipt{}
	for rows.Next() {
		var rc sales.Receipt
		if err := rows.Scan(
			&rc.ID, &rc.ReceiptNo, &rc.BranchID, &rc.TillID, &rc.EmployeeID, &rc.CustomerID,
			&rc.BusinessDate, &rc.SubtotalAmount, &rc.TaxAmount, &rc.DiscountAmount, &rc.TotalAmount,
			&rc.PostedToLedger, &rc.PostedAt, &rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler cupom de venda: %w", err)
		}
		receipts = append(receipts, rc)
	}

	return receipts, rows.Err()
}

// CreateReceiptLine implementa sales.Repository.CreateReceiptLine
func (r *PostgresSalesRepository) CreateReceiptLine(ctx context.Context, l *sales.ReceiptLine) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sales_receipt_lines (id, sales_receipt_id, sku_code, quantity, unit_price_amount, tax_amount, discount_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = conn.Exec(ctx, query,
		l.ID, l.SalesReceiptID, l.SkuCode, l.Quantity, l.UnitPriceAmount, l.TaxAmount, l.DiscountAmount,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir item do cupom: %w", err)
	}

	return nil
}

// ListReceiptLines implementa sales.Repository.ListReceiptLines
func (r *PostgresSalesRepository) ListReceiptLines(ctx context.Context) ([]sales.ReceiptLine, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sales_receipt_id, sku_code, quantity, unit_price_amount, tax_amount, discount_amount, created_at
		FROM sales_receipt_lines ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar itens de cupom: %w", err)
	}
	defer rows.Close()

	lines := []sales.ReceiptLine{}
	for rows.Next() {
		var l sales.ReceiptLine
		if err := rows.Scan(
			&l.ID, &l.SalesReceiptID, &l.SkuCode, &l.Quantity, &l.UnitPriceAmount,
			&l.TaxAmount, &l.DiscountAmount, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler item de cupom: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// CreateReceiptPayment implementa sales.Repository.CreateReceiptPayment
func (r *PostgresSalesRepository) CreateReceiptPayment(ctx context.Context, p *sales.ReceiptPayment) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sales_receipt_payments (id, sales_receipt_id, payment_method_id, amount)
		VALUES ($1, $2, $3, $4)
	`

	_, err = conn.Exec(ctx, query, p.ID, p.SalesReceiptID, p.PaymentMethodID, p.Amount)
	if err != nil {
		return fmt.Errorf("falha ao inserir pagamento do cupom: %w", err)
	}

	return nil
}

// ListReceiptPayments implementa sales.Repository.ListReceiptPayments
func (r *PostgresSalesRepository) ListReceiptPayments(ctx context.Context) ([]sales.ReceiptPayment, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sales_receipt_id, payment_method_id, amount, created_at
		FROM sales_receipt_payments ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar pagamentos de cupom: %w", err)
	}
	defer rows.Close()

	payments := []sales.ReceiptPayment{}
	for rows.Next() {
		var p sales.ReceiptPayment
		if err := rows.Scan(&p.ID, &p.SalesReceiptID, &p.PaymentMethodID, &p.Amount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler pagamento de cupom: %w", err)
		}
		payments = append(payments, p)
	}

	return payments, rows.Err()
}

// CreateReturn implementa sales.Repository.CreateReturn
func (r *PostgresSalesRepository) CreateReturn(ctx context.Context, rt *sales.Return) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sales_returns (id, original_sales_receipt_id, branch_id, business_date, return_status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query,
		rt.ID, rt.OriginalSalesReceiptID, rt.BranchID, rt.BusinessDate, rt.ReturnStatus, rt.Reason,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir devolução: %w", err)
	}

	return nil
}

// ListReturns implementa sales.Repository.ListReturns
func (r *PostgresSalesRepository) ListReturns(ctx context.Context) ([]sales.Return, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, original_sales_receipt_id, branch_id, business_date::text, return_status, reason, created_at, updated_at
		FROM sales_returns ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar devoluções: %w", err)
	}
	defer rows.Close()

	returns := []sales.Return{}
	for rows.Next() {
		var rt sales.Return
		if err := rows.Scan(
			&rt.ID, &rt.OriginalSalesReceiptID, &rt.BranchID, &rt.BusinessDate,
			&rt.ReturnStatus, &rt.Reason, &rt.CreatedAt, &rt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler devolução: %w", err)
		}
		returns = append(returns, rt)
	}

	return returns, rows.Err()
}

// FindReturnByID implementa sales.Repository.FindReturnByID
func (r *PostgresSalesRepository) FindReturnByID(ctx context.Context, id string) (*sales.Return, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, original_sales_receipt_id, branch_id, business_date::text, return_status, reason, created_at, updated_at
		FROM sales_returns WHERE id = $1
	`

	var rt sales.Return
	err = conn.QueryRow(ctx, query, id).Scan(
		&rt.ID, &rt.OriginalSalesReceiptID, &rt.BranchID, &rt.BusinessDate,
		&rt.ReturnStatus, &rt.Reason, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sales.ErrReturnNotFound
		}
		return nil, fmt.Errorf("falha ao buscar devolução: %w", err)
	}

	return &rt, nil
}

// PostReturnLine implementa sales.Repository.PostReturnLine.
// Com restock, a linha, o movimento sintético de sale_return e o ajuste de
// saldo são confirmados juntos.
func (r *PostgresSalesRepository) PostReturnLine(ctx context.Context, l *sales.ReturnLine, restock bool, branchID string) error {
	l.Restocked = restock

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		lineQuery := `
			INSERT INTO sales_return_lines (id, sales_return_id, sku_code, quantity, unit_price_amount, restocked)
			VALUES ($1, $2, $3, $4, $5, $6)
		`

		_, err := tx.Exec(ctx, lineQuery,
			l.ID, l.SalesReturnID, l.SkuCode, l.Quantity, l.UnitPriceAmount, l.Restocked,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir linha de devolução: %w", err)
		}

		if !restock {
			return nil
		}

		m := inventory.RestockMovement(uuid.New().String(), l.SkuCode, branchID, l.ID, l.Quantity)

		movementQuery := `
			INSERT INTO inventory_movements (id, sku_code, branch_id, movement_type, quantity_delta, reference_type, reference_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err = tx.Exec(ctx, movementQuery,
			m.ID, m.SkuCode, m.BranchID, m.MovementType, m.QuantityDelta, m.ReferenceType, m.ReferenceID,
		)
		if err != nil {
			return fmt.Errorf("falha ao lançar movimento de devolução: %w", err)
		}

		updateQuery := `
			UPDATE inventory_items
			SET quantity_on_hand = quantity_on_hand + $1, updated_at = now()
			WHERE sku_code = $2 AND branch_id = $3
		`

		_, err = tx.Exec(ctx, updateQuery, m.QuantityDelta, l.SkuCode, branchID)
		if err != nil {
			return fmt.Errorf("falha ao reabastecer saldo do item: %w", err)
		}

		return nil
	})
}

// ListReturnLines implementa sales.Repository.ListReturnLines
func (r *PostgresSalesRepository) ListReturnLines(ctx context.Context) ([]sales.ReturnLine, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sales_return_id, sku_code, quantity, unit_price_amount, restocked, created_at
		FROM sales_return_lines ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar linhas de devolução: %w", err)
	}
	defer rows.Close()

	lines := []sales.ReturnLine{}
	for rows.Next() {
		var l sales.ReturnLine
		if err := rows.Scan(
			&l.ID, &l.SalesReturnID, &l.SkuCode, &l.Quantity, &l.UnitPriceAmount, &l.Restocked, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de devolução: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// CreateRefund implementa sales.Repository.CreateRefund
func (r *PostgresSalesRepository) CreateRefund(ctx context.Context, rf *sales.Refund) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sales_refunds (id, sales_return_id, payment_method_id, amount)
		VALUES ($1, $2, $3, $4)
	`

	_, err = conn.Exec(ctx, query, rf.ID, rf.SalesReturnID, rf.PaymentMethodID, rf.Amount)
	if err != nil {
		return fmt.Errorf("falha ao inserir reembolso: %w", err)
	}

	return nil
}

// ListRefunds implementa sales.Repository.ListRefunds
func (r *PostgresSalesRepository) ListRefunds(ctx context.Context) ([]sales.Refund, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sales_return_id, payment_method_id, amount, created_at
		FROM sales_refunds ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar reembolsos: %w", err)
	}
	defer rows.Close()

	refunds := []sales.Refund{}
	for rows.Next() {
		var rf sales.Refund
		if err := rows.Scan(&rf.ID, &rf.SalesReturnID, &rf.PaymentMethodID, &rf.Amount, &rf.CreatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler reembolso: %w", err)
		}
		refunds = append(refunds, rf)
	}

	return refunds, rows.Err()
}
