package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	inventorydomain "github.com/openclaw/openclaw-pos/internal/domain/inventory"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// InventoryController gerencia itens de estoque e o razão de movimentos
type InventoryController struct {
	inventoryRepo inventorydomain.Repository
	logger        logger.Logger
}

// NewInventoryController cria uma nova instância de InventoryController
func NewInventoryController(inventoryRepo inventorydomain.Repository, logger logger.Logger) *InventoryController {
	return &InventoryController{
		inventoryRepo: inventoryRepo,
		logger:        logger,
	}
}

// CreateItem cria um item de estoque
// @Summary Criar item de estoque
// @Tags inventory-items
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param item body dto.InventoryItemRequest true "Dados do item"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/inventory-items [post]
func (c *InventoryController) CreateItem(ctx *gin.Context) {
	var req dto.InventoryItemRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.inventoryRepo.CreateItem(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListItems lista os itens de estoque
// @Summary Listar itens de estoque
// @Tags inventory-items
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/inventory-items [get]
func (c *InventoryController) ListItems(ctx *gin.Context) {
	items, err := c.inventoryRepo.ListItems(ctx)
	respondList(ctx, items, err)
}

// PostMovement lança um movimento no razão de estoque. O movimento e a
// aplicação do delta ao saldo do item acontecem na mesma transação.
// @Summary Lançar movimento de estoque
// @Tags inventory-movements
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param movement body dto.InventoryMovementRequest true "Dados do movimento"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/inventory-movements [post]
func (c *InventoryController) PostMovement(ctx *gin.Context) {
	var req dto.InventoryMovementRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.inventoryRepo.PostMovement(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListMovements lista os movimentos do razão de estoque
// @Summary Listar movimentos de estoque
// @Tags inventory-movements
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/inventory-movements [get]
func (c *InventoryController) ListMovements(ctx *gin.Context) {
	items, err := c.inventoryRepo.ListMovements(ctx)
	respondList(ctx, items, err)
}
