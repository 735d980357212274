package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterSeedRoutes registra a rota de carga de demonstração
func RegisterSeedRoutes(r *gin.RouterGroup, seedController *controller.SeedController) {
	r.POST("/seed/demo-branch", seedController.SeedDemoBranch)
}
