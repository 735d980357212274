package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterTillRoutes registra as rotas de sessões de caixa, sangrias,
// motivos de divergência e conferências de filial
func RegisterTillRoutes(r *gin.RouterGroup, tillController *controller.TillController) {
	r.GET("/till-sessions", tillController.ListSessions)
	r.POST("/till-sessions", tillController.CreateSession)
	r.POST("/till-sessions/close", tillController.CloseSession)

	r.GET("/cash-drops", tillController.ListCashDrops)
	r.POST("/cash-drops", tillController.CreateCashDrop)

	r.GET("/variance-reasons", tillController.ListVarianceReasons)
	r.POST("/variance-reasons", tillController.CreateVarianceReason)

	r.GET("/branch-reconciliations", tillController.ListReconciliations)
	r.POST("/branch-reconciliations", tillController.CreateReconciliation)
}
