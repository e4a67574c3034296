package importer

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/folio-dev/folio/internal/model"
)

// GenericParser parses the folio interchange CSV:
// date,type,asset,qty,price,fees,note with a header row. Blank numeric
// fields behave as zero.
type GenericParser struct{}

const (
	genericNumFields = 7
	colDate          = 0
	colType          = 1
	colAsset         = 2
	colQty           = 3
	colPrice         = 4
	colFees          = 5
	colNote          = 6
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns transactions.
func (p *GenericParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseGenericRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseGenericRow(rec []string) (model.Transaction, error) {
	date, err := model.ParseDate(rec[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	qty, err := parseAmount(rec[colQty], "qty")
	if err != nil {
		return model.Transaction{}, err
	}
	price, err := parseAmount(rec[colPrice], "price")
	if err != nil {
		return model.Transaction{}, err
	}
	fees, err := parseAmount(rec[colFees], "fees")
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:  date,
		Type:  model.TxType(rec[colType]),
		Asset: model.NormalizeAsset(rec[colAsset]),
		Qty:   qty,
		Price: price,
		Fees:  fees,
		Note:  rec[colNote],
	}, nil
}

func parseAmount(s, field string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing %s %q: %w", field, s, err)
	}
	return d, nil
}
