package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TxType classifies ledger transactions.
type TxType string

const (
	TypeDeposit  TxType = "deposit"
	TypeWithdraw TxType = "withdraw"
	TypeBuy      TxType = "buy"
	TypeSell     TxType = "sell"
	TypeDividend TxType = "dividend"
	TypeFee      TxType = "fee"
)

// Known reports whether t is one of the six ledger transaction types.
func (t TxType) Known() bool {
	switch t {
	case TypeDeposit, TypeWithdraw, TypeBuy, TypeSell, TypeDividend, TypeFee:
		return true
	}
	return false
}

// IsTrade reports whether t moves asset quantity (buy or sell).
func (t TxType) IsTrade() bool {
	return t == TypeBuy || t == TypeSell
}

// Transaction is one row of the append-only ledger. For buy/sell, Price is
// the unit price and Qty the traded quantity; for the four cash types, Price
// carries the cash amount and Qty/Asset are unused.
type Transaction struct {
	ID    string          `json:"id"`
	Date  Date            `json:"date"`
	Type  TxType          `json:"type"`
	Asset string          `json:"asset"`
	Qty   decimal.Decimal `json:"qty"`
	Price decimal.Decimal `json:"price"`
	Fees  decimal.Decimal `json:"fees"`
	Note  string          `json:"note"`
}

// Total returns the cash impact of the transaction. The impact depends only
// on the record's own fields, never on accumulated state, so summing totals
// in any order yields the same balance.
func (tx Transaction) Total() decimal.Decimal {
	switch tx.Type {
	case TypeDeposit, TypeDividend:
		return tx.Price.Abs()
	case TypeWithdraw, TypeFee:
		return tx.Price.Abs().Neg()
	case TypeBuy:
		return tx.Qty.Mul(tx.Price).Add(tx.Fees).Neg()
	case TypeSell:
		return tx.Qty.Mul(tx.Price).Sub(tx.Fees)
	default:
		return decimal.Zero
	}
}

// NormalizeAsset canonicalizes a ticker: trimmed, uppercase.
func NormalizeAsset(asset string) string {
	return strings.ToUpper(strings.TrimSpace(asset))
}
