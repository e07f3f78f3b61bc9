// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     model
// Description: Monetary amount with at most two decimal places
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for text that is not a valid amount
var ErrInvalidAmount = errors.New("amount must be a non-negative number with at most 2 decimal places")

// AmountScale is the number of fractional digits an amount carries
const AmountScale = 2

// amountRe accepts plain decimal notation only: no sign, no exponent, no
// thousands separators, no bare leading or trailing dot.
var amountRe = regexp.MustCompile(`^[0-9]+(?:\.[0-9]{1,2})?$`)

// Amount is a non-negative money value with two decimal places
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses text such as "23.50", "7" or "0.5"
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if !amountRe.MatchString(s) {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{value: d}, nil
}

// MustParseAmount is ParseAmount for constants; it panics on invalid input
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Equal reports whether two amounts have the same value ("23.5" equals "23.50")
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// IsZero reports whether the amount is zero
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// String returns the amount with exactly two decimals
func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}
