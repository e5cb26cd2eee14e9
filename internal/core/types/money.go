// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// CostScale is the fixed scale for unit-cost arithmetic.
// Matches NUMERIC(15,4) storage semantics; division rounds half-up.
const CostScale = 4

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// MoneyFromInt64 creates a Money value from a whole number.
func MoneyFromInt64(v int64) Money {
	return decimal.NewFromInt(v)
}

// DivCost divides num by den at CostScale with half-up rounding.
// A zero denominator yields zero; unit costs never go negative here
// because both operands come from non-negative state.
func DivCost(num Money, den int64) Money {
	if den == 0 {
		return decimal.Zero
	}
	return num.DivRound(decimal.NewFromInt(den), CostScale)
}
