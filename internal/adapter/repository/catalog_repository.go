package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/catalog"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresCatalogRepository implementa catalog.Repository usando PostgreSQL
type PostgresCatalogRepository struct {
	db *database.PostgresDB
}

// NewPostgresCatalogRepository cria uma nova instância de PostgresCatalogRepository
func NewPostgresCatalogRepository(db *database.PostgresDB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

// CreatePricingRule implementa catalog.Repository.CreatePricingRule
func (r *PostgresCatalogRepository) CreatePricingRule(ctx context.Context, p *catalog.PricingRule) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO pricing_rules (id, rule_code, sku_code, price_amount, currency_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, p.ID, p.RuleCode, p.SkuCode, p.PriceAmount, p.CurrencyCode, p.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir regra de preço: %w", err)
	}

	return nil
}

// ListPricingRules implementa catalog.Repository.ListPricingRules
func (r *PostgresCatalogRepository) ListPricingRules(ctx context.Context) ([]catalog.PricingRule, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, rule_code, sku_code, price_amount, currency_code, is_active, created_at, updated_at
		FROM pricing_rules ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras de preço: %w", err)
	}
	defer rows.Close()

	rules := []catalog.PricingRule{}
	for rows.Next() {
		var p catalog.PricingRule
		if err := rows.Scan(
			&p.ID, &p.RuleCode, &p.SkuCode, &p.PriceAmount, &p.CurrencyCode,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler regra de preço: %w", err)
		}
		rules = append(rules, p)
	}

	return rules, rows.Err()
}

// CreateTaxRule implementa catalog.Repository.CreateTaxRule
func (r *PostgresCatalogRepository) CreateTaxRule(ctx context.Context, t *catalog.TaxRule) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO tax_rules (id, rule_code, tax_mode, rate_percent, country_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, t.ID, t.RuleCode, t.TaxMode, t.RatePercent, t.CountryCode, t.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir regra de imposto: %w", err)
	}

	return nil
}

// ListTaxRules implementa catalog.Repository.ListTaxRules
func (r *PostgresCatalogRepository) ListTaxRules(ctx context.Context) ([]catalog.TaxRule, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, rule_code, tax_mode, rate_percent, country_code, is_active, created_at, updated_at
		FROM tax_rules ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar regras de imposto: %w", err)
	}
	defer rows.Close()

	rules := []catalog.TaxRule{}
	for rows.Next() {
		var t catalog.TaxRule
		if err := rows.Scan(
			&t.ID, &t.RuleCode, &t.TaxMode, &t.RatePercent, &t.CountryCode,
			&t.IsActive, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler regra de imposto: %w", err)
		}
		rules = append(rules, t)
	}

	return rules, rows.Err()
}

// CreatePaymentMethod implementa catalog.Repository.CreatePaymentMethod
func (r *PostgresCatalogRepository) CreatePaymentMethod(ctx context.Context, m *catalog.PaymentMethod) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO payment_methods (id, method_code, name, is_active)
		VALUES ($1, $2, $3, $4)
	`

	_, err = conn.Exec(ctx, query, m.ID, m.MethodCode, m.Name, m.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir meio de pagamento: %w", err)
	}

	return nil
}

// ListPaymentMethods implementa catalog.Repository.ListPaymentMethods
func (r *PostgresCatalogRepository) ListPaymentMethods(ctx context.Context) ([]catalog.PaymentMethod, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, method_code, name, is_active, created_at, updated_at
		FROM payment_methods ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar meios de pagamento: %w", err)
	}
	defer rows.Close()

	methods := []catalog.PaymentMethod{}
	for rows.Next() {
		var m catalog.PaymentMethod
		if err := rows.Scan(&m.ID, &m.MethodCode, &m.Name, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler meio de pagamento: %w", err)
		}
		methods = append(methods, m)
	}

	return methods, rows.Err()
}
