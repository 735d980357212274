package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxMode indica se o imposto está embutido no preço ou é somado a ele
type TaxMode string

const (
	TaxModeInclusive TaxMode = "inclusive"
	TaxModeExclusive TaxMode = "exclusive"
)

// TaxModes é o conjunto fechado de valores aceitos para tax_mode
var TaxModes = []TaxMode{TaxModeInclusive, TaxModeExclusive}

// PricingRule representa uma regra de preço por SKU
type PricingRule struct {
	ID           string          `json:"id"`
	RuleCode     string          `json:"rule_code"`
	SkuCode      string          `json:"sku_code"`
	PriceAmount  decimal.Decimal `json:"price_amount"`
	CurrencyCode string          `json:"currency_code"`
	IsActive     int             `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TaxRule representa uma regra de imposto
type TaxRule struct {
	ID          string          `json:"id"`
	RuleCode    string          `json:"rule_code"`
	TaxMode     string          `json:"tax_mode"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	CountryCode *string         `json:"country_code"`
	IsActive    int             `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// PaymentMethod representa um meio de pagamento aceito
type PaymentMethod struct {
	ID         string    `json:"id"`
	MethodCode string    `json:"method_code"`
	Name       string    `json:"name"`
	IsActive   int       `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
