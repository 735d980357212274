package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/openclaw/openclaw-pos/docs"
	"github.com/openclaw/openclaw-pos/internal/adapter/api/controller"
	"github.com/openclaw/openclaw-pos/internal/adapter/api/route"
	"github.com/openclaw/openclaw-pos/internal/adapter/repository"
	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
	"github.com/openclaw/openclaw-pos/pkg/apikey"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *database.PostgresDB
	logger logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Executar migrações pendentes no startup
	if err := database.RunMigrations(); err != nil {
		log.Warn("migrações não executadas no startup", "error", err)
	}

	// Criar repositórios
	orgRepo := repository.NewPostgresOrgRepository(db)
	commerceRepo := repository.NewPostgresCommerceRepository(db)
	catalogRepo := repository.NewPostgresCatalogRepository(db)
	inventoryRepo := repository.NewPostgresInventoryRepository(db)
	salesRepo := repository.NewPostgresSalesRepository(db)
	tillRepo := repository.NewPostgresTillRepository(db)
	procurementRepo := repository.NewPostgresProcurementRepository(db)
	syncRepo := repository.NewPostgresSyncRepository(db)
	configRepo := repository.NewPostgresAppConfigRepository(db)
	reportRepo := repository.NewPostgresReportRepository(db)
	seedRepo := repository.NewPostgresSeedRepository(db)

	// Criar controllers
	controllers := route.Controllers{
		Meta:        controller.NewMetaController(db, os.Getenv("APP_ENV")),
		Org:         controller.NewOrgController(orgRepo, log),
		Commerce:    controller.NewCommerceController(commerceRepo, log),
		Catalog:     controller.NewCatalogController(catalogRepo, log),
		Inventory:   controller.NewInventoryController(inventoryRepo, log),
		Sales:       controller.NewSalesController(salesRepo, log),
		Till:        controller.NewTillController(tillRepo, log),
		Procurement: controller.NewProcurementController(procurementRepo, log),
		Sync:        controller.NewSyncController(syncRepo, log),
		AppConfig:   controller.NewAppConfigController(configRepo, log),
		Report:      controller.NewReportController(reportRepo, log),
		Seed:        controller.NewSeedController(seedRepo, log),
	}

	// Configurar router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	route.SetupRoutes(router, apikey.NewConfigFromEnv(), controllers)

	// Documentação Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "service", controller.ServiceName, "port", port)
	return a.router.Run(":" + port)
}

// Router retorna o router da aplicação
func (a *App) Router() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
