package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/commerce"
)

// ChannelRequest representa a requisição de canal de venda
type ChannelRequest struct {
	ID          string  `json:"id" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	ChannelType string  `json:"channel_type" validate:"required"`
	CountryCode *string `json:"country_code"`
	IsActive    *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *ChannelRequest) ToEntity() *commerce.Channel {
	return &commerce.Channel{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		ChannelType: r.ChannelType,
		CountryCode: r.CountryCode,
		IsActive:    defaultActive(r.IsActive),
	}
}

// ChannelAccountRequest representa a requisição de conta de canal
type ChannelAccountRequest struct {
	ID                string  `json:"id" validate:"required"`
	ChannelID         string  `json:"channel_id" validate:"required"`
	AccountName       string  `json:"account_name" validate:"required"`
	ExternalAccountID *string `json:"external_account_id"`
	RegionCode        *string `json:"region_code"`
	CredentialsRef    *string `json:"credentials_ref"`
	IsActive          *int    `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *ChannelAccountRequest) ToEntity() *commerce.ChannelAccount {
	return &commerce.ChannelAccount{
		ID:                r.ID,
		ChannelID:         r.ChannelID,
		AccountName:       r.AccountName,
		ExternalAccountID: r.ExternalAccountID,
		RegionCode:        r.RegionCode,
		CredentialsRef:    r.CredentialsRef,
		IsActive:          defaultActive(r.IsActive),
	}
}

// OrderRequest representa a requisição de pedido
type OrderRequest struct {
	ID              string           `json:"id" validate:"required"`
	OrderCode       string           `json:"order_code" validate:"required"`
	SourceChannelID *string          `json:"source_channel_id"`
	SourceAccountID *string          `json:"source_account_id"`
	SourceOrderID   *string          `json:"source_order_id"`
	CustomerRef     *string          `json:"customer_ref"`
	CurrencyCode    string           `json:"currency_code" validate:"required"`
	CountryCode     *string          `json:"country_code"`
	OrderStatus     string           `json:"order_status" validate:"required"`
	SubtotalAmount  *decimal.Decimal `json:"subtotal_amount"`
	TaxAmount       *decimal.Decimal `json:"tax_amount"`
	ShippingAmount  *decimal.Decimal `json:"shipping_amount"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount"`
	TotalAmount     *decimal.Decimal `json:"total_amount"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *OrderRequest) ToEntity() *commerce.Order {
	return &commerce.Order{
		ID:              r.ID,
		OrderCode:       r.OrderCode,
		SourceChannelID: r.SourceChannelID,
		SourceAccountID: r.SourceAccountID,
		SourceOrderID:   r.SourceOrderID,
		CustomerRef:     r.CustomerRef,
		CurrencyCode:    r.CurrencyCode,
		CountryCode:     r.CountryCode,
		OrderStatus:     r.OrderStatus,
		SubtotalAmount:  defaultAmount(r.SubtotalAmount),
		TaxAmount:       defaultAmount(r.TaxAmount),
		ShippingAmount:  defaultAmount(r.ShippingAmount),
		DiscountAmount:  defaultAmount(r.DiscountAmount),
		TotalAmount:     defaultAmount(r.TotalAmount),
	}
}

// ShipmentRequest representa a requisição de expedição
type ShipmentRequest struct {
	ID              string  `json:"id" validate:"required"`
	OrderID         string  `json:"order_id" validate:"required"`
	SourceOrgUnitID *string `json:"source_org_unit_id"`
	CourierName     *string `json:"courier_name"`
	TrackingNumber  *string `json:"tracking_number"`
	ShipmentStatus  string  `json:"shipment_status" validate:"required"`
}

// ToEntity converte a requisição em entidade
func (r *ShipmentRequest) ToEntity() *commerce.Shipment {
	return &commerce.Shipment{
		ID:              r.ID,
		OrderID:         r.OrderID,
		SourceOrgUnitID: r.SourceOrgUnitID,
		CourierName:     r.CourierName,
		TrackingNumber:  r.TrackingNumber,
		ShipmentStatus:  r.ShipmentStatus,
	}
}

// WebhookOrderPayload é o corpo de webhook de conector, aceito em formato
// livre: os campos relevantes variam por conector e são coalescidos abaixo.
type WebhookOrderPayload map[string]interface{}

// ToOrder deriva o pedido canônico do payload do webhook. Id externo vem de
// id ou order_id (uuid aleatório na ausência de ambos); moeda default USD;
// status vem de financial_status ou order_status, default received; total vem
// de total_price ou total_amount, default zero.
func (p WebhookOrderPayload) ToOrder(connector string) *commerce.Order {
	externalID := p.stringField("id", "order_id")
	if externalID == "" {
		externalID = uuid.New().String()
	}

	currency := p.stringField("currency")
	if currency == "" {
		currency = "USD"
	}

	status := p.stringField("financial_status", "order_status")
	if status == "" {
		status = "received"
	}

	return commerce.ConnectorOrder(connector, externalID, currency, status, p.decimalField("total_price", "total_amount"))
}

// stringField retorna a primeira chave presente convertida para texto
func (p WebhookOrderPayload) stringField(keys ...string) string {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			return t
		case json.Number:
			return t.String()
		case float64:
			return decimal.NewFromFloat(t).String()
		default:
			return fmt.Sprintf("%v", t)
		}
	}
	return ""
}

// decimalField retorna a primeira chave presente convertida para decimal,
// zero quando ausente ou não numérica
func (p WebhookOrderPayload) decimalField(keys ...string) decimal.Decimal {
	for _, k := range keys {
		v, ok := p[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return decimal.NewFromFloat(t)
		case json.Number:
			if d, err := decimal.NewFromString(t.String()); err == nil {
				return d
			}
		case string:
			if d, err := decimal.NewFromString(t); err == nil {
				return d
			}
		}
	}
	return decimal.Zero
}
