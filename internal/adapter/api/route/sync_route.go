package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
)

// RegisterSyncRoutes registra as rotas do outbox e do log de conflitos
func RegisterSyncRoutes(r *gin.RouterGroup, syncController *controller.SyncController) {
	r.GET("/sync-outbox", syncController.ListEntries)
	r.POST("/sync-outbox", syncController.CreateEntry)

	r.GET("/sync-conflicts", syncController.ListConflicts)
	r.POST("/sync-conflicts", syncController.CreateConflict)
}
