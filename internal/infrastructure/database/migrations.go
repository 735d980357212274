package database

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// MigrationsURL retorna a URL do banco no formato esperado pelo migrate
func MigrationsURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "openclaw_pos"),
		getEnv("DB_SSL_MODE", "disable"),
	)
}

// RunMigrations aplica as migrações pendentes do diretório migrations/
func RunMigrations() error {
	sourceURL := fmt.Sprintf("file://%s", getEnv("MIGRATIONS_PATH", "migrations"))

	m, err := migrate.New(sourceURL, MigrationsURL())
	if err != nil {
		return fmt.Errorf("erro ao criar migrate: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	return nil
}
