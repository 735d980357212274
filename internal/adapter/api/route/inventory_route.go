package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterInventoryRoutes registra as rotas de itens e movimentos de estoque
func RegisterInventoryRoutes(r *gin.RouterGroup, inventoryController *controller.InventoryController) {
	r.GET("/inventory-items", inventoryController.ListItems)
	r.POST("/inventory-items", inventoryController.CreateItem)

	r.GET("/inventory-movements", inventoryController.ListMovements)
	r.POST("/inventory-movements", inventoryController.PostMovement)
}
