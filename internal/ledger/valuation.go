package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// KPIs is the derived at-a-glance state of the portfolio.
type KPIs struct {
	Equity     decimal.Decimal // cash plus market value of all holdings
	Cash       decimal.Decimal
	Invested   decimal.Decimal // market value of all holdings
	Unrealized decimal.Decimal
	Realized   decimal.Decimal
	Positions  map[string]model.Lot
}

// ComputeKPIs values the replayed positions against the latest manually
// entered prices. A held asset with no price is valued at zero, not
// excluded.
func ComputeKPIs(txs []model.Transaction, prices map[string]decimal.Decimal) KPIs {
	positions := Positions(txs)
	cash := Cash(txs)

	invested := decimal.Zero
	costBasisTotal := decimal.Zero
	realized := decimal.Zero
	for asset, lot := range positions {
		invested = invested.Add(lot.Quantity.Mul(prices[asset]))
		costBasisTotal = costBasisTotal.Add(lot.CostBasis)
		realized = realized.Add(lot.RealizedPnL)
	}

	return KPIs{
		Equity:     cash.Add(invested),
		Cash:       cash,
		Invested:   invested,
		Unrealized: invested.Sub(costBasisTotal),
		Realized:   realized,
		Positions:  positions,
	}
}
