package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// Cash replays the ledger to the running cash balance. Each record's impact
// depends only on its own fields, so the sum is order-independent.
func Cash(txs []model.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Total())
	}
	return total
}
