package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidateAmount checks an entry amount: at most 2 fractional digits and
// inside the numeric(15,2) column range. The sign is caller-supplied and
// not constrained.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Exponent() < -2 {
		return fmt.Errorf("amount must have at most 2 decimal places, got %s", amount)
	}
	limit := decimal.New(1, 13) // 10^13
	if amount.Abs().GreaterThanOrEqual(limit) {
		return fmt.Errorf("amount too large, got %s", amount)
	}
	return nil
}

// ValidateCategoryName checks a category name (non-empty, bounded).
func ValidateCategoryName(name string) error {
	if name == "" {
		return fmt.Errorf("category name is empty")
	}
	if len(name) > 64 {
		return fmt.Errorf("category name too long, max 64 characters")
	}
	return nil
}

// ValidateTitle checks a transaction title.
func ValidateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("title is empty")
	}
	if len(title) > 255 {
		return fmt.Errorf("title too long, max 255 characters")
	}
	return nil
}
