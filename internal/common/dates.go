package common

import "time"

// StatementRange supplies the default start and end dates for cash statement requests.
type StatementRange struct {
	LookbackDays int
	Layout       string
	Now          func() time.Time // injectable clock for testing
}

// NewStatementRange creates a StatementRange from config.
func NewStatementRange(cfg StatementsConfig) *StatementRange {
	layout := cfg.DateLayout
	if layout == "" {
		layout = "2006-01-02"
	}
	return &StatementRange{
		LookbackDays: cfg.LookbackDays,
		Layout:       layout,
		Now:          time.Now,
	}
}

// Start returns today minus the lookback window.
func (r *StatementRange) Start() string {
	return r.today().AddDate(0, 0, -r.LookbackDays).Format(r.Layout)
}

// End returns today.
func (r *StatementRange) End() string {
	return r.today().Format(r.Layout)
}

// Resolve fills empty dates with the defaults.
func (r *StatementRange) Resolve(start, end string) (string, string) {
	if start == "" {
		start = r.Start()
	}
	if end == "" {
		end = r.End()
	}
	return start, end
}

func (r *StatementRange) today() time.Time {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
