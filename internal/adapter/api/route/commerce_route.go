package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterCommerceRoutes registra as rotas de canais, pedidos, expedições e
// os webhooks de conectores
func RegisterCommerceRoutes(r *gin.RouterGroup, commerceController *controller.CommerceController) {
	r.GET("/channels", commerceController.ListChannels)
	r.POST("/channels", commerceController.CreateChannel)

	r.GET("/channel-accounts", commerceController.ListChannelAccounts)
	r.POST("/channel-accounts", commerceController.CreateChannelAccount)

	r.GET("/orders", commerceController.ListOrders)
	r.POST("/orders", commerceController.CreateOrder)

	r.GET("/shipments", commerceController.ListShipments)
	r.POST("/shipments", commerceController.CreateShipment)

	connectors := r.Group("/connectors")
	{
		connectors.POST("/shopify/order-webhook", commerceController.IngestWebhookOrder("shopify"))
		connectors.POST("/amazon/order-webhook", commerceController.IngestWebhookOrder("amazon"))
	}
}
