package commerce

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Channel representa um canal de venda (loja física, marketplace, etc.)
type Channel struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	ChannelType string    `json:"channel_type"`
	CountryCode *string   `json:"country_code"`
	IsActive    int       `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ChannelAccount representa a identidade de integração com um canal externo
type ChannelAccount struct {
	ID                string    `json:"id"`
	ChannelID         string    `json:"channel_id"`
	AccountName       string    `json:"account_name"`
	ExternalAccountID *string   `json:"external_account_id"`
	RegionCode        *string   `json:"region_code"`
	CredentialsRef    *string   `json:"credentials_ref"`
	IsActive          int       `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Order representa um pedido canônico, independente do canal de origem
type Order struct {
	ID              string          `json:"id"`
	OrderCode       string          `json:"order_code"`
	SourceChannelID *string         `json:"source_channel_id"`
	SourceAccountID *string         `json:"source_account_id"`
	SourceOrderID   *string         `json:"source_order_id"`
	CustomerRef     *string         `json:"customer_ref"`
	CurrencyCode    string          `json:"currency_code"`
	CountryCode     *string         `json:"country_code"`
	OrderStatus     string          `json:"order_status"`
	SubtotalAmount  decimal.Decimal `json:"subtotal_amount"`
	TaxAmount       decimal.Decimal `json:"tax_amount"`
	ShippingAmount  decimal.Decimal `json:"shipping_amount"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Shipment representa uma expedição vinculada a um pedido
type Shipment struct {
	ID              string    `json:"id"`
	OrderID         string    `json:"order_id"`
	SourceOrgUnitID *string   `json:"source_org_unit_id"`
	CourierName     *string   `json:"courier_name"`
	TrackingNumber  *string   `json:"tracking_number"`
	ShipmentStatus  string    `json:"shipment_status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ConnectorOrder monta o pedido canônico derivado de um webhook de conector.
// O id e o order_code são determinísticos por (conector, id externo), o que
// torna a ingestão idempotente via insert-if-absent.
func ConnectorOrder(connector, externalID, currency, status string, total decimal.Decimal) *Order {
	sourceID := externalID
	return &Order{
		ID:            fmt.Sprintf("%s-%s", connector, externalID),
		OrderCode:     fmt.Sprintf("%s-%s", strings.ToUpper(connector), externalID),
		SourceOrderID: &sourceID,
		CurrencyCode:  currency,
		OrderStatus:   status,
		TotalAmount:   total,
	}
}
