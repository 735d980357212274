package route

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
	"github.com/openclaw/openclaw-pos/pkg/apikey"
)

// Controllers agrupa os controllers servidos pela API
type Controllers struct {
	Meta        *controller.MetaController
	Org         *controller.OrgController
	Commerce    *controller.CommerceController
	Catalog     *controller.CatalogController
	Inventory   *controller.InventoryController
	Sales       *controller.SalesController
	Till        *controller.TillController
	Procurement *controller.ProcurementController
	Sync        *controller.SyncController
	AppConfig   *controller.AppConfigController
	Report      *controller.ReportController
	Seed        *controller.SeedController
}

// SetupRoutes registra todas as rotas da API. As rotas de meta ficam fora do
// grupo versionado; todas as escritas sob /v1 passam pela exigência da chave
// de escrita.
func SetupRoutes(router *gin.Engine, keys apikey.Config, c Controllers) {
	router.GET("/health", c.Meta.Health)
	router.GET("/db-check", c.Meta.DBCheck)

	v1 := router.Group("/v1")
	v1.Use(apikey.Middleware(keys))
	{
		v1.GET("", c.Meta.Index)
		v1.GET("/health", c.Meta.HealthV1)
		v1.GET("/db-check", c.Meta.DBCheckV1)
		v1.GET("/meta", c.Meta.Meta)

		RegisterOrgRoutes(v1, c.Org)
		RegisterCommerceRoutes(v1, c.Commerce)
		RegisterCatalogRoutes(v1, c.Catalog)
		RegisterInventoryRoutes(v1, c.Inventory)
		RegisterSalesRoutes(v1, c.Sales)
		RegisterTillRoutes(v1, c.Till)
		RegisterProcurementRoutes(v1, c.Procurement)
		RegisterSyncRoutes(v1, c.Sync)
		RegisterAppConfigRoutes(v1, c.AppConfig)
		RegisterReportRoutes(v1, c.Report)
		RegisterSeedRoutes(v1, c.Seed)
	}

	router.NoRoute(controller.NotFound)
}
