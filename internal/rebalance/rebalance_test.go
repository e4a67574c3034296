package rebalance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/folio/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func lot(asset, qty string) model.Lot {
	return model.Lot{Asset: asset, Quantity: dec(qty)}
}

func TestSuggestions_NoTargets(t *testing.T) {
	positions := map[string]model.Lot{"ABC": lot("ABC", "10")}
	prices := map[string]decimal.Decimal{"ABC": dec("50")}

	lines, note := Suggestions(positions, prices, nil)
	assert.Empty(t, lines)
	assert.Equal(t, NoteNoTargets, note)
}

func TestSuggestions_NoMarketValue(t *testing.T) {
	// Held position but no price: total market value is zero.
	positions := map[string]model.Lot{"ABC": lot("ABC", "10")}
	targets := map[string]decimal.Decimal{"ABC": dec("100")}

	lines, note := Suggestions(positions, nil, targets)
	assert.Empty(t, lines)
	assert.Equal(t, NoteNoMarketValue, note)
}

func TestSuggestions_RankedByAbsoluteDiff(t *testing.T) {
	positions := map[string]model.Lot{
		"AAA": lot("AAA", "10"), // 10 x 100 = 1000
		"BBB": lot("BBB", "50"), // 50 x 20 = 1000
	}
	prices := map[string]decimal.Decimal{"AAA": dec("100"), "BBB": dec("20")}
	targets := map[string]decimal.Decimal{
		"AAA": dec("10"), // target 200, current 1000 -> diff -800
		"BBB": dec("60"), // target 1200, current 1000 -> diff +200
		"CCC": dec("30"), // target 600, current 0 -> diff +600
	}

	lines, note := Suggestions(positions, prices, targets)
	require.Len(t, lines, 3)
	assert.Equal(t, NoteApproximate, note)

	assert.Equal(t, "AAA", lines[0].Asset)
	assert.True(t, lines[0].Diff.Equal(dec("-800")), "sell 800")
	assert.True(t, lines[0].CurrentPct.Equal(dec("50")))

	assert.Equal(t, "CCC", lines[1].Asset, "target outside the portfolio")
	assert.True(t, lines[1].Diff.Equal(dec("600")))
	assert.True(t, lines[1].CurrentValue.IsZero())

	assert.Equal(t, "BBB", lines[2].Asset)
	assert.True(t, lines[2].Diff.Equal(dec("200")))
}

func TestSuggestions_TiesKeepDeterministicOrder(t *testing.T) {
	positions := map[string]model.Lot{"AAA": lot("AAA", "10")} // 1000 total
	prices := map[string]decimal.Decimal{"AAA": dec("100")}
	targets := map[string]decimal.Decimal{
		"YYY": dec("20"), // diff +200
		"XXX": dec("20"), // diff +200
	}

	lines, _ := Suggestions(positions, prices, targets)
	require.Len(t, lines, 2)
	assert.Equal(t, "XXX", lines[0].Asset)
	assert.Equal(t, "YYY", lines[1].Asset)
}

func TestSuggestions_NormalizesAndDeduplicatesTargets(t *testing.T) {
	positions := map[string]model.Lot{"ABC": lot("ABC", "10")}
	prices := map[string]decimal.Decimal{"ABC": dec("100")}
	targets := map[string]decimal.Decimal{
		"abc":  dec("40"),
		" ABC": dec("50"),
	}

	lines, _ := Suggestions(positions, prices, targets)
	require.Len(t, lines, 1)
	assert.Equal(t, "ABC", lines[0].Asset)
}

func TestSuggestions_BalancedPortfolioHasZeroDiffs(t *testing.T) {
	positions := map[string]model.Lot{
		"AAA": lot("AAA", "10"),
		"BBB": lot("BBB", "10"),
	}
	prices := map[string]decimal.Decimal{"AAA": dec("50"), "BBB": dec("50")}
	targets := map[string]decimal.Decimal{"AAA": dec("50"), "BBB": dec("50")}

	lines, _ := Suggestions(positions, prices, targets)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, l.Diff.IsZero())
		assert.True(t, l.CurrentPct.Equal(dec("50")))
	}
}
