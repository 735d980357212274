package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-pos/internal/adapter/api/dto"
	reportdomain "github.com/openclaw/openclaw-pos/internal/domain/report"
	"github.com/openclaw/openclaw-pos/pkg/logger"
)

// ReportController atende as consultas de relatório
type ReportController struct {
	reportRepo reportdomain.Repository
	logger     logger.Logger
}

// NewReportController cria uma nova instância de ReportController
func NewReportController(reportRepo reportdomain.Repository, logger logger.Logger) *ReportController {
	return &ReportController{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// DayCloseSummary retorna o fechamento do dia de uma filial: totais de
// cupons, totais por meio de pagamento e a conferência registrada (ou null).
// Escopo sem movimento retorna totais zerados.
// @Summary Fechamento do dia
// @Tags reports
// @Produce json
// @Param branch_id query string true "Filial"
// @Param business_date query string true "Data de operação (YYYY-MM-DD)"
// @Success 200 {object} dto.DayCloseSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /v1/day-close-summary [get]
func (c *ReportController) DayCloseSummary(ctx *gin.Context) {
	branchID := ctx.Query("branch_id")
	businessDate := ctx.Query("business_date")
	if branchID == "" || businessDate == "" {
		ctx.IndentedJSON(http.StatusBadRequest, dto.NewErrorResponse("Query params required: branch_id, business_date", ""))
		return
	}

	summary, err := c.reportRepo.DayCloseSummary(ctx, branchID, businessDate)
	if err != nil {
		ctx.IndentedJSON(http.StatusInternalServerError, dto.NewErrorResponse("Query failed", err.Error()))
		return
	}

	ctx.IndentedJSON(http.StatusOK, dto.NewDayCloseSummaryResponse(summary))
}
