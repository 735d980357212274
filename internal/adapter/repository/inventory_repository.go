package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/openclaw/openclaw-pos/internal/domain/inventory"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresInventoryRepository implementa inventory.Repository usando PostgreSQL
type PostgresInventoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresInventoryRepository cria uma nova instância de PostgresInventoryRepository
func NewPostgresInventoryRepository(db *database.PostgresDB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

// CreateItem implementa inventory.Repository.CreateItem
func (r *PostgresInventoryRepository) CreateItem(ctx context.Context, i *inventory.Item) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO inventory_items (id, sku_code, branch_id, description, quantity_on_hand, reorder_level)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query,
		i.ID, i.SkuCode, i.BranchID, i.Description, i.QuantityOnHand, i.ReorderLevel,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir item de estoque: %w", err)
	}

	return nil
}

// ListItems implementa inventory.Repository.ListItems
func (r *PostgresInventoryRepository) ListItems(ctx context.Context) ([]inventory.Item, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sku_code, branch_id, description, quantity_on_hand, reorder_level, created_at, updated_at
		FROM inventory_items ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar itens de estoque: %w", err)
	}
	defer rows.Close()

	items := []inventory.Item{}
	for rows.Next() {
		var i inventory.Item
		if err := rows.Scan(
			&i.ID, &i.SkuCode, &i.BranchID, &i.Description,
			&i.QuantityOnHand, &i.ReorderLevel, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler item de estoque: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}

// PostMovement implementa inventory.Repository.PostMovement.
// O lançamento no razão e o ajuste do saldo são confirmados juntos;
// um update sem linha correspondente não é erro.
func (r *PostgresInventoryRepository) PostMovement(ctx context.Context, m *inventory.Movement) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO inventory_movements (id, sku_code, branch_id, movement_type, quantity_delta, reference_type, reference_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`

		_, err := tx.Exec(ctx, insertQuery,
			m.ID, m.SkuCode, m.BranchID, m.MovementType, m.QuantityDelta, m.ReferenceType, m.ReferenceID,
		)
		if err != nil {
			return fmt.Errorf("falha ao inserir movimento de estoque: %w", err)
		}

		updateQuery := `
			UPDATE inventory_items
			SET quantity_on_hand = quantity_on_hand + $1, updated_at = now()
			WHERE sku_code = $2 AND branch_id = $3
		`

		_, err = tx.Exec(ctx, updateQuery, m.QuantityDelta, m.SkuCode, m.BranchID)
		if err != nil {
			return fmt.Errorf("falha ao ajustar saldo do item: %w", err)
		}

		return nil
	})
}

// ListMovements implementa inventory.Repository.ListMovements
func (r *PostgresInventoryRepository) ListMovements(ctx context.Context) ([]inventory.Movement, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, sku_code, branch_id, movement_type, quantity_delta, reference_type, reference_id, created_at
		FROM inventory_movements ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar movimentos de estoque: %w", err)
	}
	defer rows.Close()

	movements := []inventory.Movement{}
	for rows.Next() {
		var m inventory.Movement
		if err := rows.Scan(
			&m.ID, &m.SkuCode, &m.BranchID, &m.MovementType, &m.QuantityDelta,
			&m.ReferenceType, &m.ReferenceID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler movimento de estoque: %w", err)
		}
		movements = append(movements, m)
	}

	return movements, rows.Err()
}
