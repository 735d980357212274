package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	salesdomain "github.com/openclaw/openclaw-pos/internal/domain/sales"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// SalesController gerencia cupons de venda, devoluções e reembolsos
type SalesController struct {
	salesRepo salesdomain.Repository
	logger    logger.Logger
}

// NewSalesController cria uma nova instância de SalesController
func NewSalesController(salesRepo salesdomain.Repository, logger logger.Logger) *SalesController {
	return &SalesController{
		salesRepo: salesRepo,
		logger:    logger,
	}
}

// CreateReceipt emite um cupom de venda. O cupom é gravado como lançado
// (posted_to_ledger=true) e o registro de outbox correspondente é criado na
// mesma transação.
// @Summary Emitir cupom de venda
// @Tags sales-receipts
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param receipt body dto.SalesReceiptRequest true "Dados do cupom"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-receipts [post]
func (c *SalesController) CreateReceipt(ctx *gin.Context) {
	var req dto.SalesReceiptRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.salesRepo.PostReceipt(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReceipts lista os cupons de venda
// @Summary Listar cupons de venda
// @Tags sales-receipts
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-receipts [get]
func (c *SalesController) ListReceipts(ctx *gin.Context) {
	items, err := c.salesRepo.ListReceipts(ctx)
	respondList(ctx, items, err)
}

// CreateReceiptLine cria um item de cupom
// @Summary Criar item de cupom
// @Tags sales-receipt-lines
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param line body dto.SalesReceiptLineRequest true "Dados do item"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-receipt-lines [post]
func (c *SalesController) CreateReceiptLine(ctx *gin.Context) {
	var req dto.SalesReceiptLineRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.salesRepo.CreateReceiptLine(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReceiptLines lista os itens de cupom
// @Summary Listar itens de cupom
// @Tags sales-receipt-lines
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-receipt-lines [get]
func (c *SalesController) ListReceiptLines(ctx *gin.Context) {
	items, err := c.salesRepo.ListReceiptLines(ctx)
	respondList(ctx, items, err)
}

// CreateReceiptPayment cria um pagamento de cupom
// @Summary Criar pagamento de cupom
// @Tags sales-receipt-payments
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param payment body dto.SalesReceiptPaymentRequest true "Dados do pagamento"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-receipt-payments [post]
func (c *SalesController) CreateReceiptPayment(ctx *gin.Context) {
	var req dto.SalesReceiptPaymentRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.salesRepo.CreateReceiptPayment(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReceiptPayments lista os pagamentos de cupom
// @Summary Listar pagamentos de cupom
// @Tags sales-receipt-payments
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-receipt-payments [get]
func (c *SalesController) ListReceiptPayments(ctx *gin.Context) {
	items, err := c.salesRepo.ListReceiptPayments(ctx)
	respondList(ctx, items, err)
}

// CreateReturn cria uma devolução de venda
// @Summary Criar devolução de venda
// @Tags sales-returns
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param return body dto.SalesReturnRequest true "Dados da devolução"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-returns [post]
func (c *SalesController) CreateReturn(ctx *gin.Context) {
	var req dto.SalesReturnRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.salesRepo.CreateReturn(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReturns lista as devoluções de venda
// @Summary Listar devoluções de venda
// @Tags sales-returns
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-returns [get]
func (c *SalesController) ListReturns(ctx *gin.Context) {
	items, err := c.salesRepo.ListReturns(ctx)
	respondList(ctx, items, err)
}

// CreateReturnLine cria uma linha de devolução. A devolução pai é buscada
// antes de qualquer escrita: ausente, a requisição falha sem efeitos. Com
// restock_to_inventory (default true), a linha, o movimento de
// reabastecimento e o ajuste de saldo entram na mesma transação.
// @Summary Criar linha de devolução
// @Tags sales-return-lines
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param line body dto.SalesReturnLineRequest true "Dados da linha"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-return-lines [post]
func (c *SalesController) CreateReturnLine(ctx *gin.Context) {
	var req dto.SalesReturnLineRequest
	if !bindPayload(ctx, &req) {
		return
	}

	parent, err := c.salesRepo.FindReturnByID(ctx, req.SalesReturnID)
	if err != nil {
		if errors.Is(err, salesdomain.ErrReturnNotFound) {
			ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Sales return not found", ""))
			return
		}
		ctx.IndentedJSON(http.StatusInternalServerError, dto.NewErrorResponse("Query failed", err.Error()))
		return
	}

	if err := c.salesRepo.PostReturnLine(ctx, req.ToEntity(), req.Restock(), parent.BranchID); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListReturnLines lista as linhas de devolução
// @Summary Listar linhas de devolução
// @Tags sales-return-lines
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-return-lines [get]
func (c *SalesController) ListReturnLines(ctx *gin.Context) {
	items, err := c.salesRepo.ListReturnLines(ctx)
	respondList(ctx, items, err)
}

// CreateRefund cria um reembolso
// @Summary Criar reembolso
// @Tags sales-refunds
// @Accept json
// @Produce json
// @Param x-api-key header string true "Chave de escrita"
// @Param refund body dto.SalesRefundRequest true "Dados do reembolso"
// @Success 201 {object} dto.CreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /v1/sales-refunds [post]
func (c *SalesController) CreateRefund(ctx *gin.Context) {
	var req dto.SalesRefundRequest
	if !bindPayload(ctx, &req) {
		return
	}

	if err := c.salesRepo.CreateRefund(ctx, req.ToEntity()); err != nil {
		respondInsertError(ctx, err)
		return
	}

	respondCreated(ctx, req.ID)
}

// ListRefunds lista os reembolsos
// @Summary Listar reembolsos
// @Tags sales-refunds
// @Produce json
// @Success 200 {object} dto.ListResponse
// @Router /v1/sales-refunds [get]
func (c *SalesController) ListRefunds(ctx *gin.Context) {
	items, err := c.salesRepo.ListRefunds(ctx)
	respondList(ctx, items, err)
}
