package models

import "time"

// CashAccount is a naira cash account. Name carries the account number
// used when requesting statements.
type CashAccount struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// IsZero reports whether no account is set.
func (a CashAccount) IsZero() bool {
	return a.ID == 0 && a.Name == ""
}

// CashStatement is a statement record as returned by the broker. Its fields
// are not interpreted by this layer.
type CashStatement map[string]interface{}

// StatementRequest is the body sent to the statements endpoint.
type StatementRequest struct {
	AccountNumber string `json:"accountNumber"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
}

// FetchOutcome describes what happened to a statement fetch.
type FetchOutcome string

const (
	// FetchCommitted means the statements replaced the store's collection.
	FetchCommitted FetchOutcome = "committed"
	// FetchSilentlyIgnored means the fetch failed and the failure was
	// intentionally discarded: no state change, no retry.
	FetchSilentlyIgnored FetchOutcome = "silently_ignored"
)

// FetchResult reports a statement fetch. Callers are free to ignore a
// FetchSilentlyIgnored result; Err is kept so the failure stays visible.
type FetchResult struct {
	Outcome       FetchOutcome  `json:"outcome"`
	AccountNumber string        `json:"accountNumber"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	Statements    int           `json:"statements"`
	Duration      time.Duration `json:"duration"`
	Err           error         `json:"-"`
	Error         string        `json:"error,omitempty"`
}

// Committed reports whether the statements were stored.
func (r FetchResult) Committed() bool {
	return r.Outcome == FetchCommitted
}
