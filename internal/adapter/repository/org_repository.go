package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/org"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresOrgRepository implementa org.Repository usando PostgreSQL
type PostgresOrgRepository struct {
	db *database.PostgresDB
}

// NewPostgresOrgRepository cria uma nova instância de PostgresOrgRepository
func NewPostgresOrgRepository(db *database.PostgresDB) *PostgresOrgRepository {
	return &PostgresOrgRepository{db: db}
}

// CreateOrgUnit implementa org.Repository.CreateOrgUnit
func (r *PostgresOrgRepository) CreateOrgUnit(ctx context.Context, u *org.OrgUnit) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO org_units (id, parent_id, unit_type, code, name, country_code, currency_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = conn.Exec(ctx, query,
		u.ID, u.ParentID, u.UnitType, u.Code, u.Name, u.CountryCode, u.CurrencyCode, u.IsActive,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir unidade organizacional: %w", err)
	}

	return nil
}

// ListOrgUnits implementa org.Repository.ListOrgUnits
func (r *PostgresOrgRepository) ListOrgUnits(ctx context.Context) ([]org.OrgUnit, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, parent_id, unit_type, code, name, country_code, currency_code, is_active, created_at, updated_at
		FROM org_units ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar unidades organizacionais: %w", err)
	}
	defer rows.Close()

	units := []org.OrgUnit{}
	for rows.Next() {
		var u org.OrgUnit
		if err := rows.Scan(
			&u.ID, &u.ParentID, &u.UnitType, &u.Code, &u.Name,
			&u.CountryCode, &u.CurrencyCode, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler unidade organizacional: %w", err)
		}
		units = append(units, u)
	}

	return units, rows.Err()
}

// CreateEmployee implementa org.Repository.CreateEmployee
func (r *PostgresOrgRepository) CreateEmployee(ctx context.Context, e *org.Employee) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO employees (id, employee_code, full_name, employment_type, country_code, legal_entity_id, branch_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = conn.Exec(ctx, query,
		e.ID, e.EmployeeCode, e.FullName, e.EmploymentType, e.CountryCode,
		e.LegalEntityID, e.BranchID, e.IsActive,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir funcionário: %w", err)
	}

	return nil
}

// ListEmployees implementa org.Repository.ListEmployees
func (r *PostgresOrgRepository) ListEmployees(ctx context.Context) ([]org.Employee, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, employee_code, full_name, employment_type, country_code, legal_entity_id, branch_id, is_active, created_at, updated_at
		FROM employees ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar funcionários: %w", err)
	}
	defer rows.Close()

	employees := []org.Employee{}
	for rows.Next() {
		var e org.Employee
		if err := rows.Scan(
			&e.ID, &e.EmployeeCode, &e.FullName, &e.EmploymentType, &e.CountryCode,
			&e.LegalEntityID, &e.BranchID, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler funcionário: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}

// CreateCustomer implementa org.Repository.CreateCustomer
func (r *PostgresOrgRepository) CreateCustomer(ctx context.Context, c *org.Customer) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO customers (id, display_name, email, phone, country_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, c.ID, c.DisplayName, c.Email, c.Phone, c.CountryCode, c.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir cliente: %w", err)
	}

	return nil
}

// ListCustomers implementa org.Repository.ListCustomers
func (r *PostgresOrgRepository) ListCustomers(ctx context.Context) ([]org.Customer, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, display_name, email, phone, country_code, is_active, created_at, updated_at
		FROM customers ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar clientes: %w", err)
	}
	defer rows.Close()

	customers := []org.Customer{}
	for rows.Next() {
		var c org.Customer
		if err := rows.Scan(
			&c.ID, &c.DisplayName, &c.Email, &c.Phone, &c.CountryCode,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler cliente: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}
