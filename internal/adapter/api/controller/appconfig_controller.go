package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	appconfigdomain "github.com/openclaw/openclaw-pos/internal/domain/appconfig"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// AppConfigController gerencia a configuração chave/valor da aplicação
type AppConfigController struct {
	configRepo appconfigdomain.Repository
	logger     logger.Logger
}

// NewAppConfigController cria uma nova instância de AppConfigController
func NewAppConfigController(configRepo appconfigdomain.Repository, logger logger.Logger) *AppConfigController {
	return &AppConfigController{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Upsert grava uma chave de configuração; chave existente é sobrescrita
// (last writer wins)
// @Summary Gravar configuração
// @Tags app-config
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param config body dto.AppConfigRequest true "Dados da configuração"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/app-config [post]
func (c *AppConfigController) Upsert(ctx *gin.Context) {
	var req dto.AppConfigRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.configRepo.Upsert(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.KeyName)
}

// List lista as chaves de configuração
// @Summary Listar configuração
// @Tags app-config
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/app-config [get]
func (c *AppConfigController) List(ctx *gin.Context) {
	items, err := c.configRepo.List(ctx)
	respondList(ctx, items, err)
}
