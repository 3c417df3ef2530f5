package model

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseTokenAmount accepts a JSON number or numeric string and returns it as
// a whole, strictly positive token count.
func ParseTokenAmount(n json.Number) (int64, error) {
	if n == "" {
		return 0, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidAmount, err.Error())
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("%w: amount must be a whole number of tokens", ErrInvalidAmount)
	}
	if d.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	if !d.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount too large", ErrInvalidAmount)
	}
	return d.IntPart(), nil
}
