package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	procurementdomain "github.com/openclaw/openclaw-pos/internal/domain/procurement"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// ProcurementController gerencia fornecedores, pedidos de compra e
// recebimentos de mercadoria
type ProcurementController struct {
	procurementRepo procurementdomain.Repository
	logger          logger.Logger
}

// NewProcurementController cria uma nova instância de ProcurementController
func NewProcurementController(procurementRepo procurementdomain.Repository, logger logger.Logger) *ProcurementController {
	return &ProcurementController{
		procurementRepo: procurementRepo,
		logger:          logger,
	}
}

// CreateSupplier cria um fornecedor
// @Summary Criar fornecedor
// @Tags suppliers
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param supplier body dto.SupplierRequest true "Dados do fornecedor"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/suppliers [post]
func (c *ProcurementController) CreateSupplier(ctx *gin.Context) {
	var req dto.SupplierRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.procurementRepo.CreateSupplier(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListSuppliers lista os fornecedores
// @Summary Listar fornecedores
// @Tags suppliers
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/suppliers [get]
func (c *ProcurementController) ListSuppliers(ctx *gin.Context) {
	items, err := c.procurementRepo.ListSuppliers(ctx)
	respondList(ctx, items, err)
}

// CreatePurchaseOrder cria um pedido de compra
// @Summary Criar pedido de compra
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param order body dto.PurchaseOrderRequest true "Dados do pedido"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/purchase-orders [post]
func (c *ProcurementController) CreatePurchaseOrder(ctx *gin.Context) {
	var req dto.PurchaseOrderRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.procurementRepo.CreatePurchaseOrder(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListPurchaseOrders lista os pedidos de compra
// @Summary Listar pedidos de compra
// @Tags purchase-orders
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/purchase-orders [get]
func (c *ProcurementController) ListPurchaseOrders(ctx *gin.Context) {
	items, err := c.procurementRepo.ListPurchaseOrders(ctx)
	respondList(ctx, items, err)
}

// CreatePurchaseOrderLine cria uma linha de pedido de compra
// @Summary Criar linha de pedido de compra
// @Tags purchase-order-lines
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param line body dto.PurchaseOrderLineRequest true "Dados da linha"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/purchase-order-lines [post]
func (c *ProcurementController) CreatePurchaseOrderLine(ctx *gin.Context) {
	var req dto.PurchaseOrderLineRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.procurementRepo.CreatePurchaseOrderLine(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListPurchaseOrderLines lista as linhas de pedido de compra
// @Summary Listar linhas de pedido de compra
// @Tags purchase-order-lines
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/purchase-order-lines [get]
func (c *ProcurementController) ListPurchaseOrderLines(ctx *gin.Context) {
	items, err := c.procurementRepo.ListPurchaseOrderLines(ctx)
	respondList(ctx, items, err)
}

// CreateGoodsReceipt cria um recebimento de mercadoria (GRN)
// @Summary Criar recebimento de mercadoria
// @Tags goods-receipts
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param receipt body dto.GoodsReceiptRequest true "Dados do recebimento"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/goods-receipts [post]
func (c *ProcurementController) CreateGoodsReceipt(ctx *gin.Context) {
	var req dto.GoodsReceiptRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.procurementRepo.CreateGoodsReceipt(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListGoodsReceipts lista os recebimentos de mercadoria
// @Summary Listar recebimentos de mercadoria
// @Tags goods-receipts
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/goods-receipts [get]
func (c *ProcurementController) ListGoodsReceipts(ctx *gin.Context) {
	items, err := c.procurementRepo.ListGoodsReceipts(ctx)
	respondList(ctx, items, err)
}

// PostGoodsReceiptLines lança as linhas de um GRN. O GRN pai é buscado antes
// de qualquer escrita. Cada linha ajusta o saldo do item e o recebido da
// linha do pedido; o status do pedido é recalculado ao final.
// @Summary Lançar linhas de recebimento
// @Tags goods-receipt-lines
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param lines body dto.GoodsReceiptLinesRequest true "Linhas do recebimento"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/goods-receipt-lines [post]
func (c *ProcurementController) PostGoodsReceiptLines(ctx *gin.Context) {
	var req dto.GoodsReceiptLinesRequest
	if !bindPayload(ctx, &req) {
		return
	}

	receipt, err := c.procurementRepo.FindGoodsReceiptByID(ctx, req.GoodsReceiptID)
	if err != nil {
		if errors.Is(err, procurementdomain.ErrGoodsReceiptNotFound) {
			ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Goods receipt not found", ""))
			return
		}
		ctx.IndentedJSON(http.StatusInternalServerError, dto.NewErrorResponse("Query failed", err.Error()))
		return
	}

	if err := c.procurementRepo.PostGoodsReceiptLines(ctx, receipt, req.ToEntities()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.GoodsReceiptID)
}

// ListGoodsReceiptLines lista as linhas de recebimento
// @Summary Listar linhas de recebimento
// @Tags goods-receipt-lines
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/goods-receipt-lines [get]
func (c *ProcurementController) ListGoodsReceiptLines(ctx *gin.Context) {
	items, err := c.procurementRepo.ListGoodsReceiptLines(ctx)
	respondList(ctx, items, err)
}
