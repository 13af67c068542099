package interfaces

import (
	"context"

	"github.com/bobmcallan/stb/internal/models"
)

// StateReader provides immutable snapshots of the dashboard store
type StateReader interface {
	Snapshot() models.State

	// FindCashAccount looks up a cash account by ID
	FindCashAccount(id int64) (models.CashAccount, bool)
}

// StateWriter commits mutations to the dashboard store.
// Each setter replaces its slice wholesale.
type StateWriter interface {
	SetSelectedCashAccount(account models.CashAccount)
	SetCashAccounts(accounts []models.CashAccount)
	SetCashStatements(statements []models.CashStatement)
	SetCurrentPortfolio(portfolio models.Portfolio)
	SetPortfolios(portfolios []models.Portfolio)
	SetMarketHighlights(highlights models.MarketHighlights)
	SetNseAsi(days []models.IndexDay)
	SetTopGainers(movers []models.Mover)
	SetTopLosers(movers []models.Mover)
}

// StateStore is the full store contract
type StateStore interface {
	StateReader
	StateWriter
}

// SliceStore persists store slices between runs
type SliceStore interface {
	// Load applies every persisted slice to the writer
	Load(ctx context.Context, w StateWriter) error

	// Save persists one slice
	Save(ctx context.Context, slice string, value interface{}) error
}
