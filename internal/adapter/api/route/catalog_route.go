package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterCatalogRoutes registra as rotas dos catálogos de preço, imposto e
// meios de pagamento
func RegisterCatalogRoutes(r *gin.RouterGroup, catalogController *controller.CatalogController) {
	r.GET("/pricing-rules", catalogController.ListPricingRules)
	r.POST("/pricing-rules", catalogController.CreatePricingRule)

	r.GET("/tax-rules", catalogController.ListTaxRules)
	r.POST("/tax-rules", catalogController.CreateTaxRule)

	r.GET("/payment-methods", catalogController.ListPaymentMethods)
	r.POST("/payment-methods", catalogController.CreatePaymentMethod)
}
