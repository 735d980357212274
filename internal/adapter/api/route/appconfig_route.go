package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterAppConfigRoutes registra as rotas de configuração da aplicação
func RegisterAppConfigRoutes(r *gin.RouterGroup, configController *controller.AppConfigController) {
	r.GET("/app-config", configController.List)
	r.POST("/app-config", configController.Upsert)
}
