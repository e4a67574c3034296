// Package report aggregates ledger months into cash-flow summaries and
// tracks deposit budgets.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// Report is the cash-flow summary of one calendar month. All category
// fields are positive magnitudes.
type Report struct {
	Month       string // "YYYY-MM"
	Deposits    decimal.Decimal
	Withdraws   decimal.Decimal
	Dividends   decimal.Decimal
	Fees        decimal.Decimal
	Buys        decimal.Decimal
	Sells       decimal.Decimal
	NetCashFlow decimal.Decimal
	Count       int
}

// Monthly filters the ledger to one "YYYY-MM" month and accumulates each
// record's cash impact into its category. NetCashFlow equals the signed sum
// of cash impacts over the filtered records.
func Monthly(txs []model.Transaction, month string) Report {
	r := Report{Month: month}

	for _, tx := range txs {
		if tx.Date.Month() != month {
			continue
		}
		total := tx.Total()
		switch tx.Type {
		case model.TypeDeposit:
			r.Deposits = r.Deposits.Add(total)
		case model.TypeWithdraw:
			r.Withdraws = r.Withdraws.Add(total.Neg())
		case model.TypeDividend:
			r.Dividends = r.Dividends.Add(total)
		case model.TypeFee:
			r.Fees = r.Fees.Add(total.Neg())
		case model.TypeBuy:
			r.Buys = r.Buys.Add(total.Neg())
		case model.TypeSell:
			r.Sells = r.Sells.Add(total)
		}
		r.Count++
	}

	r.NetCashFlow = r.Deposits.Add(r.Dividends).Sub(r.Withdraws).Sub(r.Fees).Sub(r.Buys).Add(r.Sells)
	return r
}

// DepositsIn returns the summed cash impact of deposit records in a
// "YYYY-MM" month.
func DepositsIn(txs []model.Transaction, month string) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type == model.TypeDeposit && tx.Date.Month() == month {
			total = total.Add(tx.Total())
		}
	}
	return total
}

// BudgetLine compares one month's deposit target against actual deposits.
type BudgetLine struct {
	Month     string
	Target    decimal.Decimal
	Actual    decimal.Decimal
	Shortfall decimal.Decimal // zero when the target was met
	Met       bool
}

// BudgetStatus evaluates every budgeted month against the ledger, sorted by
// month.
func BudgetStatus(txs []model.Transaction, budgets map[string]decimal.Decimal) []BudgetLine {
	months := make([]string, 0, len(budgets))
	for m := range budgets {
		months = append(months, m)
	}
	sort.Strings(months)

	lines := make([]BudgetLine, 0, len(months))
	for _, m := range months {
		target := budgets[m]
		actual := DepositsIn(txs, m)
		line := BudgetLine{Month: m, Target: target, Actual: actual}
		if actual.GreaterThanOrEqual(target) {
			line.Met = true
		} else {
			line.Shortfall = target.Sub(actual)
		}
		lines = append(lines, line)
	}
	return lines
}
