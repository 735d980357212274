package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	syncdomain "github.com/openclaw/openclaw-pos/internal/domain/syncoutbox"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// SyncController gerencia o outbox de sincronização e o log de conflitos
type SyncController struct {
	syncRepo syncdomain.Repository
	logger   logger.Logger
}

// NewSyncController cria uma nova instância de SyncController
func NewSyncController(syncRepo syncdomain.Repository, logger logger.Logger) *SyncController {
	return &SyncController{
		syncRepo: syncRepo,
		logger:   logger,
	}
}

// CreateEntry enfileira um registro no outbox
// @Summary Enfileirar registro de outbox
// @Tags sync-outbox
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param entry body dto.SyncOutboxRequest true "Dados do registro"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sync-outbox [post]
func (c *SyncController) CreateEntry(ctx *gin.Context) {
	var req dto.SyncOutboxRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.syncRepo.CreateEntry(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListEntries lista os registros do outbox
// @Summary Listar registros do outbox
// @Tags sync-outbox
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sync-outbox [get]
func (c *SyncController) ListEntries(ctx *gin.Context) {
	items, err := c.syncRepo.ListEntries(ctx)
	respondList(ctx, items, err)
}

// CreateConflict registra um conflito de sincronização
// @Summary Registrar conflito de sincronização
// @Tags sync-conflicts
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param conflict body dto.SyncConflictRequest true "Dados do conflito"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sync-conflicts [post]
func (c *SyncController) CreateConflict(ctx *gin.Context) {
	var req dto.SyncConflictRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.syncRepo.CreateConflict(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListConflicts lista os conflitos de sincronização
// @Summary Listar conflitos de sincronização
// @Tags sync-conflicts
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sync-conflicts [get]
func (c *SyncController) ListConflicts(ctx *gin.Context) {
	items, err := c.syncRepo.ListConflicts(ctx)
	respondList(ctx, items, err)
}
