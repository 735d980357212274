package repository

import (
	"context"
	"fmt"

	"github.com/openclaw/openclaw-pos/internal/domain/commerce"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// PostgresCommerceRepository implementa commerce.Repository usando PostgreSQL
type PostgresCommerceRepository struct {
	db *database.PostgresDB
}

// NewPostgresCommerceRepository cria uma nova instância de PostgresCommerceRepository
func NewPostgresCommerceRepository(db *database.PostgresDB) *PostgresCommerceRepository {
	return &PostgresCommerceRepository{db: db}
}

// CreateChannel implementa commerce.Repository.CreateChannel
func (r *PostgresCommerceRepository) CreateChannel(ctx context.Context, c *commerce.Channel) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO sales_channels (id, code, name, channel_type, country_code, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query, c.ID, c.Code, c.Name, c.ChannelType, c.CountryCode, c.IsActive)
	if err != nil {
		return fmt.Errorf("falha ao inserir canal de venda: %w", err)
	}

	return nil
}

// ListChannels implementa commerce.Repository.ListChannels
func (r *PostgresCommerceRepository) ListChannels(ctx context.Context) ([]commerce.Channel, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, code, name, channel_type, country_code, is_active, created_at, updated_at
		FROM sales_channels ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar canais de venda: %w", err)
	}
	defer rows.Close()

	channels := []commerce.Channel{}
	for rows.Next() {
		var c commerce.Channel
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.ChannelType, &c.CountryCode,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler canal de venda: %w", err)
		}
		channels = append(channels, c)
	}

	return channels, rows.Err()
}

// CreateChannelAccount implementa commerce.Repository.CreateChannelAccount
func (r *PostgresCommerceRepository) CreateChannelAccount(ctx context.Context, a *commerce.ChannelAccount) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO channel_accounts (id, channel_id, account_name, external_account_id, region_code, credentials_ref, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = conn.Exec(ctx, query,
		a.ID, a.ChannelID, a.AccountName, a.ExternalAccountID, a.RegionCode, a.CredentialsRef, a.IsActive,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir conta de canal: %w", err)
	}

	return nil
}

// ListChannelAccounts implementa commerce.Repository.ListChannelAccounts
func (r *PostgresCommerceRepository) ListChannelAccounts(ctx context.Context) ([]commerce.ChannelAccount, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, channel_id, account_name, external_account_id, region_code, credentials_ref, is_active, created_at, updated_at
		FROM channel_accounts ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar contas de canal: %w", err)
	}
	defer rows.Close()

	accounts := []commerce.ChannelAccount{}
	for rows.Next() {
		var a commerce.ChannelAccount
		if err := rows.Scan(
			&a.ID, &a.ChannelID, &a.AccountName, &a.ExternalAccountID, &a.RegionCode,
			&a.CredentialsRef, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler conta de canal: %w", err)
		}
		accounts = append(accounts, a)
	}

	return accounts, rows.Err()
}

// CreateOrder implementa commerce.Repository.CreateOrder
func (r *PostgresCommerceRepository) CreateOrder(ctx context.Context, o *commerce.Order) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO orders (id, order_code, source_channel_id, source_account_id, source_order_id, customer_ref,
			currency_code, country_code, order_status, subtotal_amount, tax_amount, shipping_amount, discount_amount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = conn.Exec(ctx, query,
		o.ID, o.OrderCode, o.SourceChannelID, o.SourceAccountID, o.SourceOrderID, o.CustomerRef,
		o.CurrencyCode, o.CountryCode, o.OrderStatus,
		o.SubtotalAmount, o.TaxAmount, o.ShippingAmount, o.DiscountAmount, o.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir pedido: %w", err)
	}

	return nil
}

// IngestOrder implementa commerce.Repository.IngestOrder.
// Insert-if-absent: reenvios do mesmo webhook não criam linhas novas.
func (r *PostgresCommerceRepository) IngestOrder(ctx context.Context, o *commerce.Order) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO orders (id, order_code, source_order_id, currency_code, order_status, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`

	_, err = conn.Exec(ctx, query,
		o.ID, o.OrderCode, o.SourceOrderID, o.CurrencyCode, o.OrderStatus, o.TotalAmount,
	)
	if err != nil {
		return fmt.Errorf("falha ao ingerir pedido de webhook: %w", err)
	}

	return nil
}

// ListOrders implementa commerce.Repository.ListOrders
func (r *PostgresCommerceRepository) ListOrders(ctx context.Context) ([]commerce.Order, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, order_code, source_channel_id, source_account_id, source_order_id, customer_ref,
			currency_code, country_code, order_status, subtotal_amount, tax_amount, shipping_amount,
			discount_amount, total_amount, created_at, updated_at
		FROM orders ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar pedidos: %w", err)
	}
	defer rows.Close()

	orders := []commerce.Order{}
	for rows.Next() {
		var o commerce.Order
		if err := rows.Scan(
			&o.ID, &o.OrderCode, &o.SourceChannelID, &o.SourceAccountID, &o.SourceOrderID, &o.CustomerRef,
			&o.CurrencyCode, &o.CountryCode, &o.OrderStatus, &o.SubtotalAmount, &o.TaxAmount,
			&o.ShippingAmount, &o.DiscountAmount, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler pedido: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// CreateShipment implementa commerce.Repository.CreateShipment
func (r *PostgresCommerceRepository) CreateShipment(ctx context.Context, s *commerce.Shipment) error {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	query := `
		INSERT INTO dispatch_shipments (id, order_id, source_org_unit_id, courier_name, tracking_number, shipment_status)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = conn.Exec(ctx, query,
		s.ID, s.OrderID, s.SourceOrgUnitID, s.CourierName, s.TrackingNumber, s.ShipmentStatus,
	)
	if err != nil {
		return fmt.Errorf("falha ao inserir expedição: %w", err)
	}

	return nil
}

// ListShipments implementa commerce.Repository.ListShipments
func (r *PostgresCommerceRepository) ListShipments(ctx context.Context) ([]commerce.Shipment, error) {
	conn, err := r.db.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	query := `
		SELECT id, order_id, source_org_unit_id, courier_name, tracking_number, shipment_status, created_at, updated_at
		FROM dispatch_shipments ORDER BY created_at DESC LIMIT 200
	`

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar expedições: %w", err)
	}
	defer rows.Close()

	shipments := []commerce.Shipment{}
	for rows.Next() {
		var s commerce.Shipment
		if err := rows.Scan(
			&s.ID, &s.OrderID, &s.SourceOrgUnitID, &s.CourierName, &s.TrackingNumber,
			&s.ShipmentStatus, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("falha ao ler expedição: %w", err)
		}
		shipments = append(shipments, s)
	}

	return shipments, rows.Err()
}
