package catalog

import "context"

// Repository define as operações de persistência dos catálogos de preço,
// imposto e meios de pagamento
type Repository interface {
	CreatePricingRule(ctx context.Context, r *PricingRule) error
	ListPricingRules(ctx context.Context) ([]PricingRule, error)

	CreateTaxRule(ctx context.Context, r *TaxRule) error
	ListTaxRules(ctx context.Context) ([]TaxRule, error)

	CreatePaymentMethod(ctx context.Context, m *PaymentMethod) error
	ListPaymentMethods(ctx context.Context) ([]PaymentMethod, error)
}
