package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// EquityPoint is one day of the reconstructed equity curve.
type EquityPoint struct {
	Date   model.Date
	Equity decimal.Decimal
}

// EquitySeries reconstructs the equity curve over the trailing window ending
// at today, one point per calendar day. Each day's cash and holding
// quantities come from replaying transactions dated on or before that day;
// holdings are then valued at the current price snapshot. No historical
// prices exist, so past days show what today's valuation of the historical
// state would be, not a true mark-to-market. That approximation is part of
// the contract.
func EquitySeries(txs []model.Transaction, prices map[string]decimal.Decimal, windowDays int, today model.Date) []EquityPoint {
	if windowDays <= 0 {
		return nil
	}

	sorted := sortForReplay(txs)
	cash := decimal.Zero
	holdings := make(map[string]decimal.Decimal)
	cursor := 0

	series := make([]EquityPoint, 0, windowDays)
	for offset := windowDays - 1; offset >= 0; offset-- {
		day := today.AddDays(-offset)

		for cursor < len(sorted) && !sorted[cursor].Date.After(day) {
			tx := sorted[cursor]
			cursor++
			cash = cash.Add(tx.Total())

			// Only trades move quantity; dividends, fees, deposits and
			// withdrawals touch cash alone.
			asset := model.NormalizeAsset(tx.Asset)
			if asset == "" {
				continue
			}
			switch tx.Type {
			case model.TypeBuy:
				holdings[asset] = holdings[asset].Add(tx.Qty)
			case model.TypeSell:
				holdings[asset] = holdings[asset].Sub(tx.Qty)
			}
		}

		invested := decimal.Zero
		for asset, qty := range holdings {
			invested = invested.Add(qty.Mul(prices[asset]))
		}
		series = append(series, EquityPoint{Date: day, Equity: cash.Add(invested)})
	}

	return series
}
