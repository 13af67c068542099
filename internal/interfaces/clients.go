// Package interfaces defines service contracts for the STB dashboard
package interfaces

import (
	"context"

	"github.com/bobmcallan/stb/internal/models"
)

// CashClient provides access to the broker's cash statements endpoint
type CashClient interface {
	// FetchStatements retrieves statements for an account and date range.
	// The response item is normalised to a slice.
	FetchStatements(ctx context.Context, req models.StatementRequest) ([]models.CashStatement, error)
}
