package report

import "context"

// Repository define as consultas de relatório. Somente leitura.
type Repository interface {
	DayCloseSummary(ctx context.Context, branchID, businessDate string) (*DayCloseSummary, error)
}
