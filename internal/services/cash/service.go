// Package cash runs the cash statement fetch flow
package cash

import (
	"context"
	"errors"
	"time"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
)

var (
	// ErrNoAccountSelected is returned when fetching before any account is selected.
	ErrNoAccountSelected = errors.New("no cash account selected")
)

// Compile-time interface check
var _ interfaces.CashService = (*Service)(nil)

// Service implements CashService.
//
// Fetches are never cancelled by a newer selection. Two overlapping fetches
// both commit, so the statements in the store are those of whichever fetch
// resolved last, not whichever was issued last.
type Service struct {
	state  interfaces.StateStore
	client interfaces.CashClient
	dates  *common.StatementRange
	logger *common.Logger
}

// NewService creates a new cash service
func NewService(state interfaces.StateStore, client interfaces.CashClient, dates *common.StatementRange, logger *common.Logger) *Service {
	return &Service{
		state:  state,
		client: client,
		dates:  dates,
		logger: logger,
	}
}

// SelectAccount commits the selected account, then fetches its statements.
// Empty dates take the defaults. An ID missing from the store's cash accounts
// is still committed, with no account number, and the fetch still runs.
func (s *Service) SelectAccount(ctx context.Context, accountID int64, startDate, endDate string) (models.FetchResult, error) {
	account, ok := s.state.FindCashAccount(accountID)
	if !ok {
		account = models.CashAccount{ID: accountID}
	}

	s.state.SetSelectedCashAccount(account)
	s.logger.Info().Int64("account_id", account.ID).Bool("known", ok).Msg("Cash account selected")

	return s.FetchStatements(ctx, startDate, endDate)
}

// FetchStatements fetches statements for the selected account and replaces
// the store's collection. A failed fetch changes nothing: the result carries
// FetchSilentlyIgnored and the error, and the error return stays nil.
func (s *Service) FetchStatements(ctx context.Context, startDate, endDate string) (models.FetchResult, error) {
	account := s.state.Snapshot().SelectedCashAccount
	if account.IsZero() {
		return models.FetchResult{}, ErrNoAccountSelected
	}

	startDate, endDate = s.dates.Resolve(startDate, endDate)
	req := models.StatementRequest{
		AccountNumber: account.Name,
		StartDate:     startDate,
		EndDate:       endDate,
	}
	result := models.FetchResult{
		AccountNumber: req.AccountNumber,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
	}

	began := time.Now()
	statements, err := s.client.FetchStatements(ctx, req)
	result.Duration = time.Since(began)

	if err != nil {
		// Discarded on purpose: no state change, no retry, no log entry.
		result.Outcome = models.FetchSilentlyIgnored
		result.Err = err
		result.Error = err.Error()
		return result, nil
	}

	s.state.SetCashStatements(statements)
	result.Outcome = models.FetchCommitted
	result.Statements = len(statements)

	s.logger.Debug().
		Str("account", req.AccountNumber).
		Str("start", req.StartDate).
		Str("end", req.EndDate).
		Int("statements", result.Statements).
		Dur("duration", result.Duration).
		Msg("Cash statements committed")

	return result, nil
}
