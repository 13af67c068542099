package interfaces

import (
	"context"

	"github.com/bobmcallan/stb/internal/models"
)

// CashService runs the statement fetch flow
type CashService interface {
	// SelectAccount commits the selected account then fetches its statements
	SelectAccount(ctx context.Context, accountID int64, startDate, endDate string) (models.FetchResult, error)

	// FetchStatements fetches statements for the selected account
	FetchStatements(ctx context.Context, startDate, endDate string) (models.FetchResult, error)
}

// DashboardService composes every dashboard view from one snapshot
type DashboardService interface {
	Build(ctx context.Context) (*models.Dashboard, error)
}

// ChartRenderer renders chart configs to PNG
type ChartRenderer interface {
	Render(name string, version uint64, cfg models.ChartConfig) ([]byte, error)
}
