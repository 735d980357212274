package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresSeedRepository grava o conjunto de demonstração fixo.
// Todas as escritas são insert-if-absent ou upsert: repetir o seed não
// duplica linha alguma.
type PostgresSeedRepository struct {
	db *database.PostgresDB
}

// NewPostgresSeedRepository cria uma nova instância de PostgresSeedRepository
func NewPostgresSeedRepository(db *database.PostgresDB) *PostgresSeedRepository {
	return &PostgresSeedRepository{db: db}
}

// SeedDemoBranch cria a hierarquia de demonstração: país → filial → caixa,
// um funcionário, um cliente, um item de estoque, uma regra de preço, um
// meio de pagamento, uma regra de imposto e três chaves de configuração.
func (r *PostgresSeedRepository) SeedDemoBranch(ctx context.Context) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	statements := []struct {
		query string
		args  []interface{}
	}{
		{
			`INSERT INTO org_units (id, parent_id, unit_type, code, name, country_code, currency_code, is_active)
			 VALUES ('demo-country-us', NULL, 'country', 'US', 'United States', 'US', 'USD', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO org_units (id, parent_id, unit_type, code, name, country_code, currency_code, is_active)
			 VALUES ('demo-branch-01', 'demo-country-us', 'branch', 'BR-01', 'Demo Branch 01', 'US', 'USD', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO org_units (id, parent_id, unit_type, code, name, country_code, currency_code, is_active)
			 VALUES ('demo-till-01', 'demo-branch-01', 'till', 'TILL-01', 'Demo Till 01', 'US', 'USD', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO employees (id, employee_code, full_name, employment_type, country_code, branch_id, is_active)
			 VALUES ('demo-emp-01', 'EMP-01', 'Demo Cashier', 'full_time', 'US', 'demo-branch-01', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO customers (id, display_name, country_code, is_active)
			 VALUES ('demo-cust-01', 'Walk-in Customer', 'US', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO inventory_items (id, sku_code, branch_id, description, quantity_on_hand, reorder_level)
			 VALUES ('demo-item-01', 'SKU-DEMO-01', 'demo-branch-01', 'Demo Item', 0, 5)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO pricing_rules (id, rule_code, sku_code, price_amount, currency_code, is_active)
			 VALUES ('demo-price-01', 'PRICE-DEMO-01', 'SKU-DEMO-01', 9.99, 'USD', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO payment_methods (id, method_code, name, is_active)
			 VALUES ('demo-pay-cash', 'CASH', 'Cash', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO tax_rules (id, rule_code, tax_mode, rate_percent, country_code, is_active)
			 VALUES ('demo-tax-01', 'TAX-DEMO-01', 'exclusive', 8.25, 'US', 1)
			 ON CONFLICT (id) DO NOTHING`,
			nil,
		},
		{
			`INSERT INTO app_config (key_name, value_json, scope)
			 VALUES ('demo.branch_id', '"demo-branch-01"', 'global')
			 ON CONFLICT (key_name) DO UPDATE SET value_json = EXCLUDED.value_json, updated_at = now()`,
			nil,
		},
		{
			`INSERT INTO app_config (key_name, value_json, scope)
			 VALUES ('demo.currency', '"USD"', 'global')
			 ON CONFLICT (key_name) DO UPDATE SET value_json = EXCLUDED.value_json, updated_at = now()`,
			nil,
		},
		{
			`INSERT INTO app_config (key_name, value_json, scope)
			 VALUES ('demo.seeded', 'true', 'global')
			 ON CONFLICT (key_name) DO UPDATE SET value_json = EXCLUDED.value_json, updated_at = now()`,
			nil,
		},
	}

	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt.query, stmt.args...); err != nil {
			return fmt.Errorf("falha ao gravar dado de demonstração: %w", err)
		}
	}

	return nil
}
