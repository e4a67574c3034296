// Package rebalance compares target allocations against the current
// mark-to-market portfolio and ranks suggested trades.
package rebalance

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// Line is one suggested adjustment. A positive Diff suggests buying that
// amount of the asset, a negative Diff selling its magnitude.
type Line struct {
	Asset        string
	TargetPct    decimal.Decimal
	CurrentPct   decimal.Decimal
	CurrentValue decimal.Decimal
	TargetValue  decimal.Decimal
	Diff         decimal.Decimal
}

const (
	// NoteNoTargets is returned when no target allocations are defined.
	NoteNoTargets = "no target allocations defined; set targets to get rebalance suggestions"
	// NoteNoMarketValue is returned when nothing in the portfolio is marked to market.
	NoteNoMarketValue = "portfolio has no positive market value; set prices for held assets first"
	// NoteApproximate qualifies every non-empty suggestion list.
	NoteApproximate = "figures are approximate and use the latest manually entered prices only"
)

var hundred = decimal.NewFromInt(100)

// Suggestions computes per-asset buy/sell amounts that would move the
// portfolio toward the target percentages, sorted by descending absolute
// difference. Targets may name assets outside the current portfolio; they
// are treated as held at zero value.
func Suggestions(positions map[string]model.Lot, prices map[string]decimal.Decimal, targets map[string]decimal.Decimal) ([]Line, string) {
	if len(targets) == 0 {
		return nil, NoteNoTargets
	}

	marketValue := make(map[string]decimal.Decimal, len(positions))
	totalMV := decimal.Zero
	for asset, lot := range positions {
		mv := lot.Quantity.Mul(prices[asset])
		marketValue[asset] = mv
		totalMV = totalMV.Add(mv)
	}
	if !totalMV.IsPositive() {
		return nil, NoteNoMarketValue
	}

	// Targets arrive as a map; normalize and deduplicate tickers, then fix a
	// deterministic base order before ranking.
	normalized := make(map[string]decimal.Decimal, len(targets))
	for asset, pct := range targets {
		normalized[model.NormalizeAsset(asset)] = pct
	}
	assets := make([]string, 0, len(normalized))
	for asset := range normalized {
		assets = append(assets, asset)
	}
	sort.Strings(assets)

	lines := make([]Line, 0, len(assets))
	for _, asset := range assets {
		pct := normalized[asset]
		currentMV := marketValue[asset]
		targetMV := totalMV.Mul(pct).Div(hundred)
		lines = append(lines, Line{
			Asset:        asset,
			TargetPct:    pct,
			CurrentPct:   currentMV.Div(totalMV).Mul(hundred),
			CurrentValue: currentMV,
			TargetValue:  targetMV,
			Diff:         targetMV.Sub(currentMV),
		})
	}

	// Largest rebalancing need first; equal needs keep the base order.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Diff.Abs().GreaterThan(lines[j].Diff.Abs())
	})

	return lines, NoteApproximate
}
