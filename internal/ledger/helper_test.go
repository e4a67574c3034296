package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(year int, month time.Month, d int) model.Date {
	return model.NewDate(year, month, d)
}

func deposit(d model.Date, amount string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeDeposit, Price: dec(amount)}
}

func withdraw(d model.Date, amount string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeWithdraw, Price: dec(amount)}
}

func dividend(d model.Date, amount string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeDividend, Price: dec(amount)}
}

func fee(d model.Date, amount string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeFee, Price: dec(amount)}
}

func buy(d model.Date, asset, qty, price, fees string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeBuy, Asset: asset, Qty: dec(qty), Price: dec(price), Fees: dec(fees)}
}

func sell(d model.Date, asset, qty, price, fees string) model.Transaction {
	return model.Transaction{Date: d, Type: model.TypeSell, Asset: asset, Qty: dec(qty), Price: dec(price), Fees: dec(fees)}
}
