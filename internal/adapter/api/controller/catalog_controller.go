package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	catalogdomain "github.com/openclaw/openclaw-pos/internal/domain/catalog"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// CatalogController gerencia os catálogos de preço, imposto e meios de pagamento
type CatalogController struct {
	catalogRepo catalogdomain.Repository
	logger      logger.Logger
}

// NewCatalogController cria uma nova instância de CatalogController
func NewCatalogController(catalogRepo catalogdomain.Repository, logger logger.Logger) *CatalogController {
	return &CatalogController{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// CreatePricingRule cria uma regra de preço
// @Summary Criar regra de preço
// @Tags pricing-rules
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param rule body dto.PricingRuleRequest true "Dados da regra"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/pricing-rules [post]
func (c *CatalogController) CreatePricingRule(ctx *gin.Context) {
	var req dto.PricingRuleRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.catalogRepo.CreatePricingRule(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListPricingRules lista as regras de preço
// @Summary Listar regras de preço
// @Tags pricing-rules
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/pricing-rules [get]
func (c *CatalogController) ListPricingRules(ctx *gin.Context) {
	items, err := c.catalogRepo.ListPricingRules(ctx)
	respondList(ctx, items, err)
}

// CreateTaxRule cria uma regra de imposto. tax_mode aceita apenas inclusive
// ou exclusive; qualquer outro valor é rejeitado com erro de enum.
// @Summary Criar regra de imposto
// @Tags tax-rules
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param rule body dto.TaxRuleRequest true "Dados da regra"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/tax-rules [post]
func (c *CatalogController) CreateTaxRule(ctx *gin.Context) {
	var req dto.TaxRuleRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.catalogRepo.CreateTaxRule(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListTaxRules lista as regras de imposto
// @Summary Listar regras de imposto
// @Tags tax-rules
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/tax-rules [get]
func (c *CatalogController) ListTaxRules(ctx *gin.Context) {
	items, err := c.catalogRepo.ListTaxRules(ctx)
	respondList(ctx, items, err)
}

// CreatePaymentMethod cria um meio de pagamento
// @Summary Criar meio de pagamento
// @Tags payment-methods
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param method body dto.PaymentMethodRequest true "Dados do meio de pagamento"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/payment-methods [post]
func (c *CatalogController) CreatePaymentMethod(ctx *gin.Context) {
	var req dto.PaymentMethodRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.catalogRepo.CreatePaymentMethod(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListPaymentMethods lista os meios de pagamento
// @Summary Listar meios de pagamento
// @Tags payment-methods
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/payment-methods [get]
func (c *CatalogController) ListPaymentMethods(ctx *gin.Context) {
	items, err := c.catalogRepo.ListPaymentMethods(ctx)
	respondList(ctx, items, err)
}
