package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/stb/internal/models"
	"github.com/bobmcallan/stb/internal/services/cash"
)

type cashAccountsResponse struct {
	Accounts []models.CashAccount `json:"accounts"`
	Selected models.CashAccount   `json:"selected"`
}

// handleCashAccounts handles GET /api/cash/accounts.
func (s *Server) handleCashAccounts(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	snap := s.app.Store.Snapshot()
	accounts := snap.CashAccounts
	if accounts == nil {
		accounts = []models.CashAccount{}
	}
	WriteJSON(w, http.StatusOK, cashAccountsResponse{Accounts: accounts, Selected: snap.SelectedCashAccount})
}

// handleCashStatements handles GET /api/cash/statements.
func (s *Server) handleCashStatements(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	statements := s.app.Store.Snapshot().CashStatements
	if statements == nil {
		statements = []models.CashStatement{}
	}
	WriteJSON(w, http.StatusOK, statements)
}

type selectAccountRequest struct {
	AccountID int64  `json:"accountId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// handleCashAccountSelect handles POST /api/cash/accounts/select.
// The response is the FetchResult, including a silently ignored fetch.
func (s *Server) handleCashAccountSelect(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req selectAccountRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.AccountID == 0 {
		WriteError(w, http.StatusBadRequest, "accountId is required")
		return
	}

	result, err := s.app.CashService.SelectAccount(r.Context(), req.AccountID, req.StartDate, req.EndDate)
	if err != nil {
		s.writeCashError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

type refreshStatementsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// handleCashStatementsRefresh handles POST /api/cash/statements/refresh.
func (s *Server) handleCashStatementsRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	var req refreshStatementsRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := s.app.CashService.FetchStatements(r.Context(), req.StartDate, req.EndDate)
	if err != nil {
		s.writeCashError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, result)
}

func (s *Server) writeCashError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cash.ErrNoAccountSelected):
		WriteErrorWithCode(w, http.StatusConflict, err.Error(), "no_account_selected")
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
