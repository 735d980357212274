package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterProcurementRoutes registra as rotas de fornecedores, pedidos de
// compra e recebimentos de mercadoria
func RegisterProcurementRoutes(r *gin.RouterGroup, procurementController *controller.ProcurementController) {
	r.GET("/suppliers", procurementController.ListSuppliers)
	r.POST("/suppliers", procurementController.CreateSupplier)

	r.GET("/purchase-orders", procurementController.ListPurchaseOrders)
	r.POST("/purchase-orders", procurementController.CreatePurchaseOrder)

	r.GET("/purchase-order-lines", procurementController.ListPurchaseOrderLines)
	r.POST("/purchase-order-lines", procurementController.CreatePurchaseOrderLine)

	r.GET("/goods-receipts", procurementController.ListGoodsReceipts)
	r.POST("/goods-receipts", procurementController.CreateGoodsReceipt)

	r.GET("/goods-receipt-lines", procurementController.ListGoodsReceiptLines)
	r.POST("/goods-receipt-lines", procurementController.PostGoodsReceiptLines)
}
