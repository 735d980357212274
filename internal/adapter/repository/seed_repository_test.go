package repository

import (
	"context"
	"os"
	"testing"

	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// openTestDB conecta ao banco indicado por DATABASE_URL. Sem a variável os
// testes de integração são ignorados.
func openTestDB(t *testing.T) *database.PostgresDB {
	t.Helper()
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL não definido; teste de integração ignorado")
	}

	db, err := database.NewPostgresDB(database.NewPostgresConfigFromEnv())
	if err != nil {
		t.Fatalf("falha ao conectar ao banco de teste: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func countRows(t *testing.T, db *database.PostgresDB, query string) int {
	t.Helper()
	conn, err := db.GetConnection(context.Background())
	if err != nil {
		t.Fatalf("falha ao obter conexão: %v", err)
	}
	defer conn.Release()

	var n int
	if err := conn.QueryRow(context.Background(), query).Scan(&n); err != nil {
		t.Fatalf("falha ao contar linhas: %v", err)
	}
	return n
}

func TestSeedDemoBranchIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	repo := NewPostgresSeedRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := repo.SeedDemoBranch(ctx); err != nil {
			t.Fatalf("seed %d falhou: %v", i+1, err)
		}
	}

	checks := []struct {
		query string
		want  int
	}{
		{`SELECT count(*) FROM org_units WHERE id IN ('demo-country-us', 'demo-branch-01', 'demo-till-01')`, 3},
		{`SELECT count(*) FROM employees WHERE id = 'demo-emp-01'`, 1},
		{`SELECT count(*) FROM customers WHERE id = 'demo-cust-01'`, 1},
		{`SELECT count(*) FROM inventory_items WHERE id = 'demo-item-01'`, 1},
		{`SELECT count(*) FROM app_config WHERE key_name LIKE 'demo.%'`, 3},
	}

	for _, c := range checks {
		if got := countRows(t, db, c.query); got != c.want {
			t.Fatalf("seed repetido não pode duplicar linhas: %q retornou %d, esperado %d", c.query, got, c.want)
		}
	}
}
