package dto

import (
	"github.com/openclaw/openclaw-pos/internal/domain/report"
)

// DayCloseSummaryResponse é o envelope do fechamento do dia
type DayCloseSummaryResponse struct {
	OK bool `json:"ok"`
	*report.DayCloseSummary
}

// NewDayCloseSummaryResponse cria o envelope do fechamento do dia
func NewDayCloseSummaryResponse(summary *report.DayCloseSummary) DayCloseSummaryResponse {
	return DayCloseSummaryResponse{OK: true, DayCloseSummary: summary}
}
