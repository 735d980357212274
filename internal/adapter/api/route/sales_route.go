package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterSalesRoutes registra as rotas de cupons, devoluções e reembolsos
func RegisterSalesRoutes(r *gin.RouterGroup, salesController *controller.SalesController) {
	r.GET("/sales-receipts", salesController.ListReceipts)
	r.POST("/sales-receipts", salesController.CreateReceipt)

	r.GET("/sales-receipt-lines", salesController.ListReceiptLines)
	r.POST("/sales-receipt-lines", salesController.CreateReceiptLine)

	r.GET("/sales-receipt-payments", salesController.ListReceiptPayments)
	r.POST("/sales-receipt-payments", salesController.CreateReceiptPayment)

	r.GET("/sales-returns", salesController.ListReturns)
	r.POST("/sales-returns", salesController.CreateReturn)

	r.GET("/sales-return-lines", salesController.ListReturnLines)
	r.POST("/sales-return-lines", salesController.CreateReturnLine)

	r.GET("/sales-refunds", salesController.ListRefunds)
	r.POST("/sales-refunds", salesController.CreateRefund)
}
