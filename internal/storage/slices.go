package storage

import (
	"fmt"
	"sort"

	"github.com/goccy/go-json"

	"github.com/bobmcallan/stb/internal/interfaces"
	"github.com/bobmcallan/stb/internal/models"
)

// Slice names, used as file names and in PUT /api/state/{slice}.
const (
	SlicePortfolio        = "portfolio"
	SlicePortfolios       = "portfolios"
	SliceCashAccounts     = "cash_accounts"
	SliceMarketHighlights = "market_highlights"
	SliceNseAsi           = "nse_asi"
	SliceTopGainers       = "top_gainers"
	SliceTopLosers        = "top_losers"
)

type codec func(data []byte, w interfaces.StateWriter) (interface{}, error)

// decodeInto builds a codec that decodes into T and commits it with set.
func decodeInto[T any](set func(w interfaces.StateWriter, v T)) codec {
	return func(data []byte, w interfaces.StateWriter) (interface{}, error) {
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		set(w, v)
		return v, nil
	}
}

var codecs = map[string]codec{
	SlicePortfolio: decodeInto(func(w interfaces.StateWriter, v models.Portfolio) {
		w.SetCurrentPortfolio(v)
	}),
	SlicePortfolios: decodeInto(func(w interfaces.StateWriter, v []models.Portfolio) {
		w.SetPortfolios(v)
	}),
	SliceCashAccounts: decodeInto(func(w interfaces.StateWriter, v []models.CashAccount) {
		w.SetCashAccounts(v)
	}),
	SliceMarketHighlights: decodeInto(func(w interfaces.StateWriter, v models.MarketHighlights) {
		w.SetMarketHighlights(v)
	}),
	SliceNseAsi: decodeInto(func(w interfaces.StateWriter, v []models.IndexDay) {
		w.SetNseAsi(v)
	}),
	SliceTopGainers: decodeInto(func(w interfaces.StateWriter, v []models.Mover) {
		w.SetTopGainers(v)
	}),
	SliceTopLosers: decodeInto(func(w interfaces.StateWriter, v []models.Mover) {
		w.SetTopLosers(v)
	}),
}

// Slices returns the persisted slice names in sorted order.
func Slices() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply decodes a slice document and commits it to the writer, replacing the
// slice wholesale. It returns the decoded value for persisting.
func Apply(slice string, data []byte, w interfaces.StateWriter) (interface{}, error) {
	c, ok := codecs[slice]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSlice, slice)
	}
	v, err := c(data, w)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", slice, err)
	}
	return v, nil
}
