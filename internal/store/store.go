// Package store holds the dashboard's client-side state.
//
// The Store is the single arbiter of state. Every mutation replaces one slice
// wholesale and bumps the version; readers take a Snapshot and never see a
// partially applied mutation.
package store

import (
	"sync"
	"time"

	"github.com/bobmcallan/stb/internal/common"
	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
)

// Mutation names, as logged.
const (
	SetSelectedCashAccount = "SET_SELECTED_CASH_ACCOUNT"
	SetCashAccounts        = "SET_CASH_ACCOUNTS"
	SetCashStatements      = "SET_CASH_STATEMENTS"
	SetCurrentPortfolio    = "SET_CURRENT_PORTFOLIO"
	SetPortfolios          = "SET_PORTFOLIOS"
	SetMarketHighlights    = "SET_MARKET_HIGHLIGHTS"
	SetNseAsi              = "SET_NSE_ASI"
	SetTopGainers          = "SET_TOP_GAINERS"
	SetTopLosers           = "SET_TOP_LOSERS"
)

// Store implements interfaces.StateStore
type Store struct {
	mu     sync.RWMutex
	state  models.State
	logger *common.Logger

	subMu       sync.RWMutex
	subscribers []func(models.StateEvent)
}

var _ interfaces.StateStore = (*Store)(nil)

// New creates an empty store
func New(logger *common.Logger) *Store {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Store{logger: logger}
}

// Snapshot returns a copy of the current state. Slices are cloned, so later
// mutations do not show through.
func (s *Store) Snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := s.state
	st.CashAccounts = cloneSlice(s.state.CashAccounts)
	st.CashStatements = cloneStatements(s.state.CashStatements)
	st.CurrentPortfolio = s.state.CurrentPortfolio.Clone()
	if s.state.Portfolios != nil {
		st.Portfolios = make([]models.Portfolio, len(s.state.Portfolios))
		for i, p := range s.state.Portfolios {
			st.Portfolios[i] = p.Clone()
		}
	}
	st.NseAsi = cloneSlice(s.state.NseAsi)
	st.TopGainers = cloneSlice(s.state.TopGainers)
	st.TopLosers = cloneSlice(s.state.TopLosers)
	return st
}

// Version returns the current state version.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Version
}

// FindCashAccount returns the cash account with the given ID.
func (s *Store) FindCashAccount(id int64) (models.CashAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.state.CashAccounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.CashAccount{}, false
}

func (s *Store) commit(name string, apply func(st *models.State)) {
	s.mu.Lock()
	apply(&s.state)
	s.state.Version++
	version := s.state.Version
	s.mu.Unlock()

	s.logger.Debug().Str("mutation", name).Uint64("version", version).Msg("State committed")

	event := models.StateEvent{Mutation: name, Version: version, Timestamp: time.Now()}
	s.subMu.RLock()
	subs := s.subscribers
	s.subMu.RUnlock()
	for _, fn := range subs {
		fn(event)
	}
}

// Subscribe registers fn to be called after every commit, outside the state
// lock. Events from concurrent commits may arrive out of version order.
func (s *Store) Subscribe(fn func(models.StateEvent)) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subscribers = append(s.subscribers[:len(s.subscribers):len(s.subscribers)], fn)
}

func (s *Store) SetSelectedCashAccount(account models.CashAccount) {
	s.commit(SetSelectedCashAccount, func(st *models.State) { st.SelectedCashAccount = account })
}

func (s *Store) SetCashAccounts(accounts []models.CashAccount) {
	accounts = cloneSlice(accounts)
	s.commit(SetCashAccounts, func(st *models.State) { st.CashAccounts = accounts })
}

func (s *Store) SetCashStatements(statements []models.CashStatement) {
	statements = cloneStatements(statements)
	s.commit(SetCashStatements, func(st *models.State) { st.CashStatements = statements })
}

func (s *Store) SetCurrentPortfolio(portfolio models.Portfolio) {
	portfolio = portfolio.Clone()
	s.commit(SetCurrentPortfolio, func(st *models.State) { st.CurrentPortfolio = portfolio })
}

func (s *Store) SetPortfolios(portfolios []models.Portfolio) {
	var cp []models.Portfolio
	if portfolios != nil {
		cp = make([]models.Portfolio, len(portfolios))
		for i, p := range portfolios {
			cp[i] = p.Clone()
		}
	}
	s.commit(SetPortfolios, func(st *models.State) { st.Portfolios = cp })
}

func (s *Store) SetMarketHighlights(highlights models.MarketHighlights) {
	s.commit(SetMarketHighlights, func(st *models.State) { st.MarketHighlights = highlights })
}

func (s *Store) SetNseAsi(days []models.IndexDay) {
	days = cloneSlice(days)
	s.commit(SetNseAsi, func(st *models.State) { st.NseAsi = days })
}

func (s *Store) SetTopGainers(movers []models.Mover) {
	movers = cloneSlice(movers)
	s.commit(SetTopGainers, func(st *models.State) { st.TopGainers = movers })
}

func (s *Store) SetTopLosers(movers []models.Mover) {
	movers = cloneSlice(movers)
	s.commit(SetTopLosers, func(st *models.State) { st.TopLosers = movers })
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// cloneStatements copies the top level of each record; nested values are
// shared, which is safe because statements are replaced, never edited.
func cloneStatements(in []models.CashStatement) []models.CashStatement {
	if in == nil {
		return nil
	}
	out := make([]models.CashStatement, len(in))
	for i, st := range in {
		cp := make(models.CashStatement, len(st))
		for k, v := range st {
			cp[k] = v
		}
		out[i] = cp
	}
	return out
}
