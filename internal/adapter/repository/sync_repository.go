package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/syncoutbox"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresSyncRepository implementa syncoutbox.Repository usando PostgreSQL
type PostgresSyncRepository struct {
	db *database.PostgresDB
}

// NewPostgresSyncRepository cria uma nova instância de PostgresSyncRepository
func NewPostgresSyncRepository(db *database.PostgresDB) *PostgresSyncRepository {
	return &PostgresSyncRepository{db: db}
}

// CreateEntry implementa syncoutbox.Repository.CreateEntry
func (r *PostgresSyncRepository) CreateEntry(ctx context.Context, e *syncoutbox.Entry) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sync_outbox (id, entity_type, entity_id, operation_type, payload, idempotency_key, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = conn.Exec(ctx, query,
		e.ID, e.EntityType, e.EntityID, e.OperationType, e.Payload, e.IdempotencyKey, e.Status,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir registro no outbox: %w", err)
	}

	return nil
}

// ListEntries implementa syncoutbox.Repository.ListEntries
func (r *PostgresSyncRepository) ListEntries(ctx context.Context) ([]syncoutbox.Entry, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, entity_type, entity_id, operation_type, payload, idempotency_key, status,
			retry_count, next_retry_at, created_at, updated_at
		FROM sync_outbox ORDER BY created_at DESC LIMIT 500
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar registros do outbox: %w", err)
	}
	defer rows.Close()

	entries := []syncoutbox.Entry{}
	for rows.Next() {
		var e syncoutbox.Entry
		if err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.OperationType, &e.Payload, &e.IdempotencyKey,
			&e.Status, &e.RetryCount, &e.NextRetryAt, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler registro do outbox: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// CreateConflict implementa syncoutbox.Repository.CreateConflict
func (r *PostgresSyncRepository) CreateConflict(ctx context.Context, c *syncoutbox.Conflict) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sync_conflicts (id, entity_type, entity_id, local_payload, remote_payload, resolution_strategy)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query,
		c.ID, c.EntityType, c.EntityID, c.LocalPayload, c.RemotePayload, c.ResolutionStrategy,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir conflito de sincronização: %w", err)
	}

	return nil
}

// ListConflicts implementa syncoutbox.Repository.ListConflicts
func (r *PostgresSyncRepository) ListConflicts(ctx context.Context) ([]syncoutbox.Conflict, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, entity_type, entity_id, local_payload, remote_payload, resolution_strategy, resolved_at, created_at
		FROM sync_conflicts ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar conflitos de sincronização: %w", err)
	}
	defer rows.Close()

	conflicts := []syncoutbox.Conflict{}
	for rows.Next() {
		var c syncoutbox.Conflict
		if err := rows.Scan(
			&c.ID, &c.EntityType, &c.EntityID, &c.LocalPayload, &c.RemotePayload,
			&c.ResolutionStrategy, &c.ResolvedAt, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler conflito de sincronização: %w", err)
		}
		conflicts = append(conflicts, c)
	}

	return conflicts, rows.Err()
}
