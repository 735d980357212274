package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/infrastructure/database"
)

// ServiceName identifica o serviço nas respostas de meta e health
const ServiceName = "openclaw-pos-api"

// APIVersion é a versão publicada em /v1/meta
const APIVersion = "0.3.0"

// MetaController atende health, db-check e o índice de rotas da API
type MetaController struct {
	db  *database.PostgresDB
	env string
}

// NewMetaController cria uma nova instância de MetaController
func NewMetaController(db *database.PostgresDB, env string) *MetaController {
	return &MetaController{
		db:  db,
		env: env,
	}
}

// Health responde a identidade do serviço
// @Summary Health check
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (c *MetaController) Health(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":      true,
		"service": ServiceName,
		"env":     c.env,
	})
}

// HealthV1 responde a identidade do serviço na rota versionada
// @Summary Health check da API v1
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/health [get]
func (c *MetaController) HealthV1(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":      true,
		"api":     "v1",
		"service": ServiceName,
		"env":     c.env,
	})
}

// DBCheck responde a hora corrente do banco, provando a conectividade
// @Summary Verificar banco de dados
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /db-check [get]
func (c *MetaController) DBCheck(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":      true,
		"db_time": c.dbTime(ctx),
	})
}

// DBCheckV1 responde a hora corrente do banco na rota versionada
// @Summary Verificar banco de dados (v1)
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/db-check [get]
func (c *MetaController) DBCheckV1(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":      true,
		"api":     "v1",
		"db_time": c.dbTime(ctx),
	})
}

// dbTime retorna a hora UTC do banco ou nil quando inacessível
func (c *MetaController) dbTime(ctx *gin.Context) interface{} {
	now, err := c.db.Now(ctx)
	if err != nil {
		return nil
	}
	return now.UTC().Format(time.RFC3339)
}

// Index responde o índice de rotas da API v1
// @Summary Índice de rotas
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1 [get]
func (c *MetaController) Index(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":  true,
		"api": "v1",
		"routes": []string{
			"GET /v1/health",
			"GET /v1/db-check",
			"GET /v1/meta",
			"GET/POST /v1/org-units",
			"GET/POST /v1/employees",
			"GET/POST /v1/customers",
			"GET/POST /v1/channels",
			"GET/POST /v1/channel-accounts",
			"GET/POST /v1/orders",
			"GET/POST /v1/shipments",
			"GET/POST /v1/inventory-items",
			"GET/POST /v1/inventory-movements",
			"GET/POST /v1/pricing-rules",
			"GET/POST /v1/tax-rules",
			"GET/POST /v1/payment-methods",
			"GET/POST /v1/sales-receipts",
			"GET/POST /v1/sales-receipt-lines",
			"GET/POST /v1/sales-receipt-payments",
			"GET/POST /v1/sales-returns",
			"GET/POST /v1/sales-return-lines",
			"GET/POST /v1/sales-refunds",
			"GET/POST /v1/till-sessions",
			"POST /v1/till-sessions/close",
			"GET/POST /v1/cash-drops",
			"GET/POST /v1/variance-reasons",
			"GET/POST /v1/branch-reconciliations",
			"GET/POST /v1/suppliers",
			"GET/POST /v1/purchase-orders",
			"GET/POST /v1/purchase-order-lines",
			"GET/POST /v1/goods-receipts",
			"GET/POST /v1/goods-receipt-lines",
			"GET/POST /v1/sync-outbox",
			"GET/POST /v1/sync-conflicts",
			"GET/POST /v1/app-config",
			"GET /v1/day-close-summary",
			"POST /v1/seed/demo-branch",
			"POST /v1/connectors/shopify/order-webhook",
			"POST /v1/connectors/amazon/order-webhook",
		},
	})
}

// Meta responde a identidade detalhada da API
// @Summary Metadados da API
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /v1/meta [get]
func (c *MetaController) Meta(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusOK, gin.H{
		"ok":      true,
		"api":     "v1",
		"version": APIVersion,
		"service": ServiceName,
		"db":      "postgres:" + c.db.DatabaseName(),
	})
}

// NotFound responde 404 para rotas não mapeadas
func NotFound(ctx *gin.Context) {
	ctx.IndentedJSON(http.StatusNotFound, gin.H{
		"ok":      false,
		"error":   "Not Found",
		"message": "Use /v1 for versioned endpoints",
	})
}
