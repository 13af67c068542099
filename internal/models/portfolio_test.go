package models

import (
	"math"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolio_IsUnset(t *testing.T) {
	assert.True(t, Portfolio{}.IsUnset())
	assert.False(t, Portfolio{CostBasis: &Amount{Amount: "1"}}.IsUnset())
	assert.False(t, Portfolio{PortfolioHoldings: []PortfolioHolding{}}.IsUnset(),
		"an empty holdings list is still an attribute")
}

func TestPortfolio_IsUnsetFromJSON(t *testing.T) {
	var empty Portfolio
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsUnset())

	var withCost Portfolio
	require.NoError(t, json.Unmarshal([]byte(`{"costBasis":{"amount":1}}`), &withCost))
	assert.False(t, withCost.IsUnset())
	assert.Equal(t, 1.0, withCost.CostBasis.Amount.Float64())
}

func TestPortfolio_EmptyHoldingsSurviveMarshal(t *testing.T) {
	out, err := json.Marshal(Portfolio{PortfolioHoldings: []PortfolioHolding{}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"portfolioHoldings":[]`)

	var back Portfolio
	require.NoError(t, json.Unmarshal(out, &back))
	assert.False(t, back.IsUnset())
	assert.NotNil(t, back.PortfolioHoldings)

	c := back.Clone()
	assert.NotNil(t, c.PortfolioHoldings)
	assert.Empty(t, c.PortfolioHoldings)
}

func TestPortfolio_CloneIsIndependent(t *testing.T) {
	p := Portfolio{
		AvailableCash:     &Amount{Amount: "100"},
		PortfolioHoldings: []PortfolioHolding{{SecurityName: "DANGCEM"}},
	}
	c := p.Clone()
	c.AvailableCash.Amount = "5"
	c.PortfolioHoldings[0].SecurityName = "MTNN"

	assert.Equal(t, Number("100"), p.AvailableCash.Amount)
	assert.Equal(t, "DANGCEM", p.PortfolioHoldings[0].SecurityName)
}

func TestNumber_UnmarshalStringsNumbersAndNull(t *testing.T) {
	var h PortfolioHolding
	raw := `{"securityName":"ZENITH","valuation":"80.5","quantityHeld":10,"percentGain":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &h))

	assert.Equal(t, 80.5, h.Valuation.Float64())
	assert.Equal(t, 10.0, h.QuantityHeld.Float64())
	assert.False(t, h.PercentGain.IsSet())
	assert.True(t, math.IsNaN(h.PercentGain.Float64()))
}

func TestNumber_MalformedIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Number("abc").Float64()))
	assert.True(t, math.IsNaN(Number("").Float64()))
	assert.Equal(t, -5.0, Number(" -5 ").Float64())
}

func TestNumber_Marshal(t *testing.T) {
	out, err := json.Marshal(struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}{A: "12.5", B: "n/a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":12.5,"b":"n/a","c":null}`, string(out))
}

func TestRound2AndFixed2(t *testing.T) {
	assert.Equal(t, 79.21, Round2(79.2079))
	assert.Equal(t, 0.99, Round2(0.990099))
	assert.True(t, math.IsNaN(Round2(math.NaN())))

	assert.Equal(t, "3.46", Fixed2(3.456))
	assert.Equal(t, "-2.50", Fixed2(-2.5))
	assert.Equal(t, "NaN", Fixed2(math.NaN()))
}

func TestRound2_UsesExactBinaryValue(t *testing.T) {
	// 1.005 and 95.005 are stored just below the tie.
	assert.Equal(t, 1.0, Round2(1.005))
	assert.Equal(t, 95.0, Round2(95.005))
	assert.Equal(t, "1.00", Fixed2(1.005))
	assert.Equal(t, "95.00", Fixed2(95.005))

	// 0.125 is exact in binary: a true tie rounds away from zero.
	assert.Equal(t, 0.13, Round2(0.125))
	assert.Equal(t, -0.13, Round2(-0.125))
	assert.Equal(t, "-0.13", Fixed2(-0.125))

	// The others threshold is unaffected.
	assert.Equal(t, 5.0, Round2(4.995))
}

func TestRatio_ZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.25, Ratio(1, 4))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$1,250.50", FormatAmount(1250.5, "usd"))
	assert.Equal(t, "1250.50 XYZ", FormatAmount(1250.5, "XYZ"))
	assert.Equal(t, "-", FormatAmount(math.Inf(1), "USD"))
}
