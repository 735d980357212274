package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/appconfig"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresAppConfigRepository implementa appconfig.Repository usando PostgreSQL
type PostgresAppConfigRepository struct {
	db *database.PostgresDB
}

// NewPostgresAppConfigRepository cria uma nova instância de PostgresAppConfigRepository
func NewPostgresAppConfigRepository(db *database.PostgresDB) *PostgresAppConfigRepository {
	return &PostgresAppConfigRepository{db: db}
}

// Upsert implementa appconfig.Repository.Upsert.
// Último escritor vence: a chave existente recebe novo valor, escopo e updated_at.
func (r *PostgresAppConfigRepository) Upsert(ctx context.Context, c *appconfig.Config) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO app_config (key_name, value_json, scope)
		VALUES ($1, $2, $3)
		ON CONFLICT (key_name) DO UPDATE
		SET value_json = EXCLUDED.value_json,
			scope = EXCLUDED.scope,
			updated_at = now()
	`

	_, err = conn.Exec(ctx, query, c.KeyName, c.ValueJSON, c.Scope)
	if err != nil {
		return fmt.Errorf("falha ao gravar configuração: %w", err)
	}

	return nil
}

// List implementa appconfig.Repository.List
func (r *PostgresAppConfigRepository) List(ctx context.Context) ([]appconfig.Config, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT key_name, value_json, scope, created_at, updated_at
		FROM app_config ORDER BY key_name ASC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar configurações: %w", err)
	}
	defer rows.Close()

	configs := []appconfig.Config{}
	for rows.Next() {
		var c appconfig.Config
		if err := rows.Scan(&c.KeyName, &c.ValueJSON, &c.Scope, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler configuração: %w", err)
		}
		configs = append(configs, c)
	}

	return configs, rows.Err()
}
