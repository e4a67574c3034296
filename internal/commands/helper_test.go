package commands

import (
	"os"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
