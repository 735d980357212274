package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// SeedRepository define a gravação do conjunto de demonstração
type SeedRepository interface {
	SeedDemoBranch(ctx context.Context) error
}

// SeedController atende a carga de dados de demonstração
type SeedController struct {
	seedRepo SeedRepository
	logger   logger.Logger
}

// NewSeedController cria uma nova instância de SeedController
func NewSeedController(seedRepo SeedRepository, logger logger.Logger) *SeedController {
	return &SeedController{
		seedRepo: seedRepo,
		logger:   logger,
	}
}

// SeedDemoBranch grava o conjunto fixo de demonstração. A operação é
// idempotente: repetir a chamada não duplica dados.
// @Summary Carregar dados de demonstração
// @Tags seed
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Success 201 {object} dto.SeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/seed/demo-branch [post]
func (c *SeedController) SeedDemoBranch(ctx *gin.Context) {
	if err := c.seedRepo.SeedDemoBranch(ctx); err != nil {
		respondInsertError(ctx, err)
		return
	}

	ctx.IndentedJSON(http.StatusCreated, dto.SeedResponse{OK: true, Seeded: true})
}
