package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	commercedomain "github.com/openclaw/openclaw-pos/internal/domain/commerce"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// CommerceController gerencia canais, contas de canal, pedidos, expedições e
// a ingestão de webhooks de conectores
type CommerceController struct {
	commerceRepo commercedomain.Repository
	logger       logger.Logger
}

// NewCommerceController cria uma nova instância de CommerceController
func NewCommerceController(commerceRepo commercedomain.Repository, logger logger.Logger) *CommerceController {
	return &CommerceController{
		commerceRepo: commerceRepo,
		logger:       logger,
	}
}

// CreateChannel cria um canal de venda
// @Summary Criar canal de venda
// @Tags channels
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param channel body dto.ChannelRequest true "Dados do canal"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/channels [post]
func (c *CommerceController) CreateChannel(ctx *gin.Context) {
	var req dto.ChannelRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.commerceRepo.CreateChannel(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListChannels lista os canais de venda
// @Summary Listar canais de venda
// @Tags channels
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/channels [get]
func (c *CommerceController) ListChannels(ctx *gin.Context) {
	items, err := c.commerceRepo.ListChannels(ctx)
	respondList(ctx, items, err)
}

// CreateChannelAccount cria uma conta de canal
// @Summary Criar conta de canal
// @Tags channel-accounts
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param account body dto.ChannelAccountRequest true "Dados da conta"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/channel-accounts [post]
func (c *CommerceController) CreateChannelAccount(ctx *gin.Context) {
	var req dto.ChannelAccountRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.commerceRepo.CreateChannelAccount(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListChannelAccounts lista as contas de canal
// @Summary Listar contas de canal
// @Tags channel-accounts
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/channel-accounts [get]
func (c *CommerceController) ListChannelAccounts(ctx *gin.Context) {
	items, err := c.commerceRepo.ListChannelAccounts(ctx)
	respondList(ctx, items, err)
}

// CreateOrder cria um pedido
// @Summary Criar pedido
// @Tags orders
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param order body dto.OrderRequest true "Dados do pedido"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/orders [post]
func (c *CommerceController) CreateOrder(ctx *gin.Context) {
	var req dto.OrderRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.commerceRepo.CreateOrder(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListOrders lista os pedidos
// @Summary Listar pedidos
// @Tags orders
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/orders [get]
func (c *CommerceController) ListOrders(ctx *gin.Context) {
	items, err := c.commerceRepo.ListOrders(ctx)
	respondList(ctx, items, err)
}

// CreateShipment cria uma expedição
// @Summary Criar expedição
// @Tags shipments
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param shipment body dto.ShipmentRequest true "Dados da expedição"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/shipments [post]
func (c *CommerceController) CreateShipment(ctx *gin.Context) {
	var req dto.ShipmentRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.commerceRepo.CreateShipment(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListShipments lista as expedições
// @Summary Listar expedições
// @Tags shipments
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/shipments [get]
func (c *CommerceController) ListShipments(ctx *gin.Context) {
	items, err := c.commerceRepo.ListShipments(ctx)
	respondList(ctx, items, err)
}

// IngestWebhookOrder ingere um pedido de webhook de conector. O payload é
// aceito em formato livre; o pedido canônico derivado é inserido apenas se
// ausente, e a resposta é sempre 202 quando o corpo é decodificável.
// @Summary Ingerir webhook de pedido
// @Tags connectors
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param connector path string true "Conector (shopify ou amazon)"
// @Param payload body object true "Payload do webhook"
// @Success 202 {object} dto.WebhookResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/connectors/{connector}/order-webhook [post]
func (c *CommerceController) IngestWebhookOrder(connector string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var payload dto.WebhookOrderPayload
		if err := ctx.ShouldBindJSON(&payload); err != nil {
			ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid JSON body", ""))
			return
		}

		order := payload.ToOrder(connector)
		if err := c.commerceRepo.IngestOrder(ctx, order); err != nil {
			ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Webhook ingest failed", err.Error()))
			return
		}

		ctx.IndentedJSON(http.StatusAccepted, dto.WebhookResponse{
			OK:            true,
			Connector:     connector,
			IngestedOrder: order.OrderCode,
			Mode:          "minimal-v1",
		})
	}
}
