// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     model
// Description: One-based display index of a member
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidIndex is returned when a token is not a non-zero unsigned integer
var ErrInvalidIndex = errors.New("index is not a non-zero unsigned integer")

// Index refers to an entry of a displayed list. It is stored zero-based and
// exposed in both bases so callers never do the +1/-1 themselves.
type Index struct {
	zeroBased int
}

// IndexFromOneBased creates an Index from a 1-based position
func IndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, oneBased)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// IndexFromZeroBased creates an Index from a 0-based position
func IndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, fmt.Errorf("%w: %d", ErrInvalidIndex, zeroBased+1)
	}
	return Index{zeroBased: zeroBased}, nil
}

// ParseIndex parses a single token as a 1-based index. The token must be a
// decimal integer in 1..MaxInt32 without a sign; leading zeros are allowed.
func ParseIndex(token string) (Index, error) {
	token = strings.TrimSpace(token)
	if token == "" || strings.HasPrefix(token, "+") || strings.HasPrefix(token, "-") {
		return Index{}, fmt.Errorf("%w: %q", ErrInvalidIndex, token)
	}

	n, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return Index{}, fmt.Errorf("%w: %q", ErrInvalidIndex, token)
	}
	return IndexFromOneBased(int(n))
}

// OneBased returns the 1-based position
func (i Index) OneBased() int {
	return i.zeroBased + 1
}

// ZeroBased returns the 0-based position
func (i Index) ZeroBased() int {
	return i.zeroBased
}

// String returns the 1-based position as text
func (i Index) String() string {
	return strconv.Itoa(i.OneBased())
}
