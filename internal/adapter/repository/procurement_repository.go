package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openclaw/openclaw-pos/internal/domain/procurement"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresProcurementRepository implementa procurement.Repository usando PostgreSQL
type PostgresProcurementRepository struct {
	db *database.PostgresDB
}

// NewPostgresProcurementRepository cria uma nova instância de PostgresProcurementRepository
func NewPostgresProcurementRepository(db *database.PostgresDB) *PostgresProcurementRepository {
	return &PostgresProcurementRepository{db: db}
}

// CreateSupplier implementa procurement.Repository.CreateSupplier
func (r *PostgresProcurementRepository) CreateSupplier(ctx context.Context, s *procurement.Supplier) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO suppliers (id, supplier_code, name, country_code, is_active)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = conn.Exec(ctx, query, s.ID, s.SupplierCode, s.Name, s.CountryCode, s.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir fornecedor: %w", err)
	}

	return nil
}

// ListSuppliers implementa procurement.Repository.ListSuppliers
func (r *PostgresProcurementRepository) ListSuppliers(ctx context.Context) ([]procurement.Supplier, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, supplier_code, name, country_code, is_active, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	suppliers := []procurement.Supplier{}
	for rows.Next() {
		var s procurement.Supplier
		if err := rows.Scan(
			&s.ID, &s.SupplierCode, &s.Name, &s.CountryCode, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, s)
	}

	return suppliers, rows.Err()
}

// CreatePurchaseOrder implementa procurement.Repository.CreatePurchaseOrder
func (r *PostgresProcurementRepository) CreatePurchaseOrder(ctx context.Context, o *procurement.PurchaseOrder) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO purchase_orders (id, po_number, supplier_id, branch_id, status, currency_code)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, o.ID, o.PONumber, o.SupplierID, o.BranchID, o.Status, o.CurrencyCode)
	if err != nil {
		return fmt.Errorf("falha ao inserir pedido de compra: %w", err)
	}

	return nil
}

// ListPurchaseOrders implementa procurement.Repository.ListPurchaseOrders
func (r *PostgresProcurementRepository) ListPurchaseOrders(ctx context.Context) ([]procurement.PurchaseOrder, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, po_number, supplier_id, branch_id, status, currency_code, created_at, updated_at
		FROM purchase_orders ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar pedidos de compra: %w", err)
	}
	defer rows.Close()

	orders := []procurement.PurchaseOrder{}
	for rows.Next() {
		var o procurement.PurchaseOrder
		if err := rows.Scan(
			&o.ID, &o.PONumber, &o.SupplierID, &o.BranchID, &o.Status, &o.CurrencyCode,
			&o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler pedido de compra: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// CreatePurchaseOrderLine implementa procurement.Repository.CreatePurchaseOrderLine
func (r *PostgresProcurementRepository) CreatePurchaseOrderLine(ctx context.Context, l *procurement.PurchaseOrderLine) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO purchase_order_lines (id, purchase_order_id, sku_code, ordered_qty, received_qty, unit_cost_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query,
		l.ID, l.PurchaseOrderID, l.SkuCode, l.OrderedQty, l.ReceivedQty, l.UnitCostAmount,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir linha de pedido de compra: %w", err)
	}

	return nil
}

// ListPurchaseOrderLines implementa procurement.Repository.ListPurchaseOrderLines
func (r *PostgresProcurementRepository) ListPurchaseOrderLines(ctx context.Context) ([]procurement.PurchaseOrderLine, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, purchase_order_id, sku_code, ordered_qty, received_qty, unit_cost_amount, created_at, updated_at
		FROM purchase_order_lines ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar linhas de pedido de compra: %w", err)
	}
	defer rows.Close()

	lines := []procurement.PurchaseOrderLine{}
	for rows.Next() {
		var l procurement.PurchaseOrderLine
		if err := rows.Scan(
			&l.ID, &l.PurchaseOrderID, &l.SkuCode, &l.OrderedQty, &l.ReceivedQty,
			&l.UnitCostAmount, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de pedido de compra: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}

// CreateGoodsReceipt implementa procurement.Repository.CreateGoodsReceipt
func (r *PostgresProcurementRepository) CreateGoodsReceipt(ctx context.Context, g *procurement.GoodsReceipt) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO goods_receipts (id, grn_no, purchase_order_id, branch_id, received_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, g.ID, g.GrnNo, g.PurchaseOrderID, g.BranchID, g.ReceivedDate, g.Notes)
	if err != nil {
		return fmt.Errorf("falha ao inserir recebimento de mercadoria: %w", err)
	}

	return nil
}

// ListGoodsReceipts implementa procurement.Repository.ListGoodsReceipts
func (r *PostgresProcurementRepository) ListGoodsReceipts(ctx context.Context) ([]procurement.GoodsReceipt, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, grn_no, purchase_order_id, branch_id, received_date::text, notes, created_at, updated_at
		FROM goods_receipts ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar recebimentos de mercadoria: %w", err)
	}
	defer rows.Close()

	receipts := []procurement.GoodsReceipt{}
	for rows.Next() {
		var g procurement.GoodsReceipt
		if err := rows.Scan(
			&g.ID, &g.GrnNo, &g.PurchaseOrderID, &g.BranchID, &g.ReceivedDate,
			&g.Notes, &g.CreatedAt, &g.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler recebimento de mercadoria: %w", err)
		}
		receipts = append(receipts, g)
	}

	return receipts, rows.Err()
}

// FindGoodsReceiptByID implementa procurement.Repository.FindGoodsReceiptByID
func (r *PostgresProcurementRepository) FindGoodsReceiptByID(ctx context.Context, id string) (*procurement.GoodsReceipt, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, grn_no, purchase_order_id, branch_id, received_date::text, notes, created_at, updated_at
		FROM goods_receipts WHERE id = $1
	`

	var g procurement.GoodsReceipt
	err = conn.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.GrnNo, &g.PurchaseOrderID, &g.BranchID, &g.ReceivedDate,
		&g.Notes, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, procurement.ErrGoodsReceiptNotFound
		}
		return nil, fmt.Errorf("falha ao buscar recebimento de mercadoria: %w", err)
	}

	return &g, nil
}

// PostGoodsReceiptLines implementa procurement.Repository.PostGoodsReceiptLines.
// Cada linha é uma transação própria (linha + saldo + received_qty); uma
// falha interrompe o lançamento das linhas seguintes, mas não desfaz as já
// confirmadas. O rollup do status do pedido roda ao final, em passo separado.
func (r *PostgresProcurementRepository) PostGoodsReceiptLines(ctx context.Context, receipt *procurement.GoodsReceipt, lines []*procurement.GoodsReceiptLine) error {
	for _, l := range lines {
		line := l
		err := r.db.Transaction(ctx, func(tx pgx.Tx) error {
			lineQuery := `
				INSERT INTO goods_receipt_lines (id, goods_receipt_id, purchase_order_line_id, sku_code,
					received_qty, accepted_qty, rejected_qty)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`

			_, err := tx.Exec(ctx, lineQuery,
				line.ID, line.GoodsReceiptID, line.PurchaseOrderLineID, line.SkuCode,
				line.ReceivedQty, line.AcceptedQty, line.RejectedQty,
			)
			if err != nil {
				return fmt.Errorf("falha ao inserir linha de recebimento: %w", err)
			}

			itemQuery := `
				UPDATE inventory_items
				SET quantity_on_hand = quantity_on_hand + $1, updated_at = now()
				WHERE sku_code = $2 AND branch_id = $3
			`

			_, err = tx.Exec(ctx, itemQuery, line.AcceptedQty, line.SkuCode, receipt.BranchID)
			if err != nil {
				return fmt.Errorf("falha ao ajustar saldo do item recebido: %w", err)
			}

			poLineQuery := `
				UPDATE purchase_order_lines
				SET received_qty = received_qty + $1, updated_at = now()
				WHERE id = $2
			`

			_, err = tx.Exec(ctx, poLineQuery, line.AcceptedQty, line.PurchaseOrderLineID)
			if err != nil {
				return fmt.Errorf("falha ao atualizar recebido da linha do pedido: %w", err)
			}

			return nil
		})
		if err != nil {
			return err
		}
	}

	return r.rollupPurchaseOrderStatus(ctx, receipt.PurchaseOrderID)
}

// rollupPurchaseOrderStatus recalcula o status do pedido a partir do agregado
// das linhas, em vez de ajustá-lo incrementalmente, para evitar deriva.
func (r *PostgresProcurementRepository) rollupPurchaseOrderStatus(ctx context.Context, purchaseOrderID string) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	aggQuery := `
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE received_qty >= ordered_qty),
			COUNT(*) FILTER (WHERE received_qty > 0)
		FROM purchase_order_lines WHERE purchase_order_id = $1
	`

	var totalLines, fullyReceived, anyReceived int
	if err := conn.QueryRow(ctx, aggQuery, purchaseOrderID).Scan(&totalLines, &fullyReceived, &anyReceived); err != nil {
		return fmt.Errorf("falha ao agregar linhas do pedido: %w", err)
	}

	var current string
	if err := conn.QueryRow(ctx, "SELECT status FROM purchase_orders WHERE id = $1", purchaseOrderID).Scan(&current); err != nil {
		return fmt.Errorf("falha ao buscar status do pedido: %w", err)
	}

	status := procurement.RollupStatus(totalLines, fullyReceived, anyReceived, current)
	if status == current {
		return nil
	}

	_, err = conn.Exec(ctx,
		"UPDATE purchase_orders SET status = $1, updated_at = now() WHERE id = $2",
		status, purchaseOrderID,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do pedido: %w", err)
	}

	return nil
}

// ListGoodsReceiptLines implementa procurement.Repository.ListGoodsReceiptLines
func (r *PostgresProcurementRepository) ListGoodsReceiptLines(ctx context.Context) ([]procurement.GoodsReceiptLine, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, goods_receipt_id, purchase_order_line_id, sku_code, received_qty, accepted_qty, rejected_qty, created_at
		FROM goods_receipt_lines ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar linhas de recebimento: %w", err)
	}
	defer rows.Close()

	lines := []procurement.GoodsReceiptLine{}
	for rows.Next() {
		var l procurement.GoodsReceiptLine
		if err := rows.Scan(
			&l.ID, &l.GoodsReceiptID, &l.PurchaseOrderLineID, &l.SkuCode,
			&l.ReceivedQty, &l.AcceptedQty, &l.RejectedQty, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de recebimento: %w", err)
		}
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
