package dto

import (
	"github.com/shopspring/decimal"

	"github.com/openclaw/openclaw-pos/internal/domain/catalog"
)

// PricingRuleRequest representa a requisição de regra de preço
type PricingRuleRequest struct {
	ID           string           `json:"id" validate:"required"`
	RuleCode     string           `json:"rule_code" validate:"required"`
	SkuCode      string           `json:"sku_code" validate:"required"`
	PriceAmount  *decimal.Decimal `json:"price_amount" validate:"required"`
	CurrencyCode string           `json:"currency_code"`
	IsActive     *int             `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *PricingRuleRequest) ToEntity() *catalog.PricingRule {
	currency := r.CurrencyCode
	if currency == "" {
		currency = "USD"
	}
	return &catalog.PricingRule{
		ID:           r.ID,
		RuleCode:     r.RuleCode,
		SkuCode:      r.SkuCode,
		PriceAmount:  *r.PriceAmount,
		CurrencyCode: currency,
		IsActive:     defaultActive(r.IsActive),
	}
}

// TaxRuleRequest representa a requisição de regra de imposto.
// tax_mode é o único enum fechado da API.
type TaxRuleRequest struct {
	ID          string           `json:"id" validate:"required"`
	RuleCode    string           `json:"rule_code" validate:"required"`
	TaxMode     string           `json:"tax_mode" validate:"required,oneof=inclusive exclusive"`
	RatePercent *decimal.Decimal `json:"rate_percent" validate:"required"`
	CountryCode *string          `json:"country_code"`
	IsActive    *int             `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *TaxRuleRequest) ToEntity() *catalog.TaxRule {
	return &catalog.TaxRule{
		ID:          r.ID,
		RuleCode:    r.RuleCode,
		TaxMode:     r.TaxMode,
		RatePercent: *r.RatePercent,
		CountryCode: r.CountryCode,
		IsActive:    defaultActive(r.IsActive),
	}
}

// PaymentMethodRequest representa a requisição de meio de pagamento
type PaymentMethodRequest struct {
	ID         string `json:"id" validate:"required"`
	MethodCode string `json:"method_code" validate:"required"`
	Name       string `json:"name" validate:"required"`
	IsActive   *int   `json:"is_active"`
}

// ToEntity converte a requisição em entidade aplicando os defaults
func (r *PaymentMethodRequest) ToEntity() *catalog.PaymentMethod {
	return &catalog.PaymentMethod{
		ID:         r.ID,
		MethodCode: r.MethodCode,
		Name:       r.Name,
		IsActive:   defaultActive(r.IsActive),
	}
}
