package model

import "github.com/shopspring/decimal"

// Lot is the running per-asset aggregate produced by replaying the ledger
// under weighted-average-cost accounting.
type Lot struct {
	Asset       string
	Quantity    decimal.Decimal
	AverageCost decimal.Decimal // CostBasis / Quantity while quantity is held
	CostBasis   decimal.Decimal // cumulative amount paid, fees included
	RealizedPnL decimal.Decimal // recognized on sales against average cost
}
