package appconfig

import "context"

// Repository define as operações de persistência da configuração da aplicação
type Repository interface {
	// Upsert insere a chave ou sobrescreve value_json, scope e updated_at
	Upsert(ctx context.Context, c *Config) error
	List(ctx context.Context) ([]Config, error)
}
