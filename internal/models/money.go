package models

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders value in the given currency, e.g. "₦1,250.50".
// Unknown currencies fall back to "<value> <code>"; non-finite values render as "-".
func FormatAmount(value float64, currency string) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "-"
	}

	code := strings.ToUpper(currency)
	cur := money.GetCurrency(code)
	if cur == nil {
		return fmt.Sprintf("%s %s", Fixed2(value), code)
	}

	factor := decimal.New(1, int32(cur.Fraction))
	minor := decimal.NewFromFloat(value).Mul(factor).Round(0).IntPart()
	return money.New(minor, cur.Code).Display()
}
