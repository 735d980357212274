package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterReportRoutes registra as rotas de relatório
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController) {
	r.GET("/day-close-summary", reportController.DayCloseSummary)
}
