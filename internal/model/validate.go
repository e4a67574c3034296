package model

import "fmt"

// ValidationError describes a single rejected field on a submitted record.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Description)
}

// Validate checks a transaction before it enters the ledger. The replay
// engine computes on whatever values are present, so rejecting bad records
// here is the only gate. A nil result means the record is acceptable.
func Validate(tx Transaction) []ValidationError {
	var errs []ValidationError

	if !tx.Type.Known() {
		errs = append(errs, ValidationError{
			Field:       "type",
			Description: fmt.Sprintf("unknown transaction type %q", tx.Type),
		})
	}
	if tx.Date.IsZero() {
		errs = append(errs, ValidationError{
			Field:       "date",
			Description: "date is required",
		})
	}
	if tx.Fees.IsNegative() {
		errs = append(errs, ValidationError{
			Field:       "fees",
			Description: "fees must not be negative",
		})
	}

	if tx.Type.IsTrade() {
		if NormalizeAsset(tx.Asset) == "" {
			errs = append(errs, ValidationError{
				Field:       "asset",
				Description: "asset is required for buy/sell",
			})
		}
		if !tx.Qty.IsPositive() {
			errs = append(errs, ValidationError{
				Field:       "qty",
				Description: "quantity must be greater than zero",
			})
		}
		if !tx.Price.IsPositive() {
			errs = append(errs, ValidationError{
				Field:       "price",
				Description: "unit price must be greater than zero",
			})
		}
		return errs
	}

	// Cash types carry the amount in the price field.
	if tx.Type.Known() && !tx.Price.IsPositive() {
		errs = append(errs, ValidationError{
			Field:       "price",
			Description: "amount must be greater than zero",
		})
	}
	return errs
}
