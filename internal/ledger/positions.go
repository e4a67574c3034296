package ledger

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// dustThreshold is the cutoff below which a residual quantity left over by
// repeated average-cost division is snapped to exactly zero.
var dustThreshold = decimal.New(1, -12)

// sortForReplay returns a copy of the ledger sorted ascending by date.
// Same-date records keep their insertion order; average cost is
// order-dependent, so the tie-break must be stable.
func sortForReplay(txs []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}

// Positions replays the ledger chronologically into per-asset lots under
// weighted-average-cost accounting. Sales recognize P&L against the average
// cost as of before the sale. A sell exceeding the held quantity is not
// clamped and leaves a negative quantity and cost basis.
func Positions(txs []model.Transaction) map[string]model.Lot {
	lots := make(map[string]model.Lot)

	for _, tx := range sortForReplay(txs) {
		asset := model.NormalizeAsset(tx.Asset)
		if asset == "" {
			continue
		}

		lot := lots[asset]
		lot.Asset = asset

		switch tx.Type {
		case model.TypeBuy:
			lot.CostBasis = lot.CostBasis.Add(tx.Qty.Mul(tx.Price).Add(tx.Fees))
			lot.Quantity = lot.Quantity.Add(tx.Qty)
		case model.TypeSell:
			proceeds := tx.Qty.Mul(tx.Price).Sub(tx.Fees)
			costOut := tx.Qty.Mul(lot.AverageCost)
			lot.RealizedPnL = lot.RealizedPnL.Add(proceeds.Sub(costOut))
			lot.Quantity = lot.Quantity.Sub(tx.Qty)
			lot.CostBasis = lot.CostBasis.Sub(costOut)
			if lot.Quantity.Abs().LessThan(dustThreshold) {
				lot.Quantity = decimal.Zero
				lot.CostBasis = decimal.Zero
			}
		default:
			// Dividends and fees never move holdings.
			continue
		}

		if lot.Quantity.GreaterThan(dustThreshold) {
			lot.AverageCost = lot.CostBasis.Div(lot.Quantity)
		} else {
			lot.AverageCost = decimal.Zero
		}
		lots[asset] = lot
	}

	return lots
}
