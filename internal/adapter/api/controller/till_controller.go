package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	tilldomain "github.com/openclaw/openclaw-pos/internal/domain/till"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// TillController gerencia sessões de caixa, sangrias, motivos de divergência
// e conferências de filial
type TillController struct {
	tillRepo tilldomain.Repository
	logger   logger.Logger
}

// NewTillController cria uma nova instância de TillController
func NewTillController(tillRepo tilldomain.Repository, logger logger.Logger) *TillController {
	return &TillController{
		tillRepo: tillRepo,
		logger:   logger,
	}
}

// CreateSession abre uma sessão de caixa
// @Summary Abrir sessão de caixa
// @Tags till-sessions
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param session body dto.TillSessionRequest true "Dados da sessão"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/till-sessions [post]
func (c *TillController) CreateSession(ctx *gin.Context) {
	var req dto.TillSessionRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.tillRepo.CreateSession(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListSessions lista as sessões de caixa
// @Summary Listar sessões de caixa
// @Tags till-sessions
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/till-sessions [get]
func (c *TillController) ListSessions(ctx *gin.Context) {
	items, err := c.tillRepo.ListSessions(ctx)
	respondList(ctx, items, err)
}

// CloseSession fecha uma sessão de caixa aberta. A variância é derivada de
// contado menos esperado; sessão inexistente ou já fechada é rejeitada.
// @Summary Fechar sessão de caixa
// @Tags till-sessions
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param close body dto.TillSessionCloseRequest true "Valores do fechamento"
// @Success 200 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/till-sessions/close [post]
func (c *TillController) CloseSession(ctx *gin.Context) {
	var req dto.TillSessionCloseRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.tillRepo.CloseSession(ctx, req.ToClose()); err != nil {
		if errors.Is(err, tilldomain.ErrSessionNotOpen) {
			ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Till session not found or not open", ""))
			return
		}
		respondInsertError(ctx, err)
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.NewCreatedResponse(req.TillSessionID))
}

// CreateCashDrop registra uma sangria de caixa
// @Summary Registrar sangria de caixa
// @Tags cash-drops
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param drop body dto.CashDropRequest true "Dados da sangria"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/cash-drops [post]
func (c *TillController) CreateCashDrop(ctx *gin.Context) {
	var req dto.CashDropRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.tillRepo.CreateCashDrop(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListCashDrops lista as sangrias de caixa
// @Summary Listar sangrias de caixa
// @Tags cash-drops
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/cash-drops [get]
func (c *TillController) ListCashDrops(ctx *gin.Context) {
	items, err := c.tillRepo.ListCashDrops(ctx)
	respondList(ctx, items, err)
}

// CreateVarianceReason cria um motivo de divergência
// @Summary Criar motivo de divergência
// @Tags variance-reasons
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param reason body dto.VarianceReasonRequest true "Dados do motivo"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/variance-reasons [post]
func (c *TillController) CreateVarianceReason(ctx *gin.Context) {
	var req dto.VarianceReasonRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.tillRepo.CreateVarianceReason(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListVarianceReasons lista os motivos de divergência
// @Summary Listar motivos de divergência
// @Tags variance-reasons
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/variance-reasons [get]
func (c *TillController) ListVarianceReasons(ctx *gin.Context) {
	items, err := c.tillRepo.ListVarianceReasons(ctx)
	respondList(ctx, items, err)
}

// CreateReconciliation registra a conferência de caixa de uma filial.
// Variância e status são derivados no servidor.
// @Summary Registrar conferência de filial
// @Tags branch-reconciliations
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param reconciliation body dto.BranchReconciliationRequest true "Dados da conferência"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/branch-reconciliations [post]
func (c *TillController) CreateReconciliation(ctx *gin.Context) {
	var req dto.BranchReconciliationRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.tillRepo.CreateReconciliation(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReconciliations lista as conferências de filial
// @Summary Listar conferências de filial
// @Tags branch-reconciliations
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/branch-reconciliations [get]
func (c *TillController) ListReconciliations(ctx *gin.Context) {
	items, err := c.tillRepo.ListReconciliations(ctx)
	respondList(ctx, items, err)
}
