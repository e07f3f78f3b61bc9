// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     findpayment
// Description: Filter kinds and the sealed Filter union
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package findpayment

import (
	"fmt"

	"github.com/msto63/findpay/foundation/argparse"
	"github.com/msto63/findpay/internal/model"
)

// Label markers recognised in findpayment arguments
const (
	PrefixAmount argparse.Prefix = "a/"
	PrefixDate   argparse.Prefix = "d/"
	PrefixRemark argparse.Prefix = "r/"
)

// FilterKind enumerates the mutually exclusive filters
type FilterKind int

const (
	FilterAmount FilterKind = iota
	FilterDate
	FilterRemark
)

// FilterKinds returns every kind in the order amount, remark, date, which is
// also the order in which a present filter is looked up when building a request.
func FilterKinds() []FilterKind {
	return []FilterKind{FilterAmount, FilterRemark, FilterDate}
}

// Prefixes returns the label markers of all filter kinds
func Prefixes() []argparse.Prefix {
	kinds := FilterKinds()
	out := make([]argparse.Prefix, len(kinds))
	for i, k := range kinds {
		out[i] = k.Prefix()
	}
	return out
}

// Prefix returns the label marker for the kind
func (k FilterKind) Prefix() argparse.Prefix {
	switch k {
	case FilterAmount:
		return PrefixAmount
	case FilterDate:
		return PrefixDate
	case FilterRemark:
		return PrefixRemark
	default:
		panic(fmt.Sprintf("findpayment: unknown filter kind %d", int(k)))
	}
}

// String returns the lower-case name of the kind
func (k FilterKind) String() string {
	switch k {
	case FilterAmount:
		return "amount"
	case FilterDate:
		return "date"
	case FilterRemark:
		return "remark"
	default:
		return "unknown"
	}
}

// Filter is one of AmountFilter, DateFilter or RemarkFilter
type Filter interface {
	Kind() FilterKind
	// Value returns the filter value in its canonical text form
	Value() string
	isFilter()
}

// AmountFilter matches payments of an exact amount
type AmountFilter struct {
	Amount model.Amount
}

// DateFilter matches payments made on a day
type DateFilter struct {
	Date model.Date
}

// RemarkFilter matches payments by remark text
type RemarkFilter struct {
	Remark string
}

func (AmountFilter) Kind() FilterKind { return FilterAmount }
func (DateFilter) Kind() FilterKind   { return FilterDate }
func (RemarkFilter) Kind() FilterKind { return FilterRemark }

func (f AmountFilter) Value() string { return f.Amount.String() }
func (f DateFilter) Value() string   { return f.Date.String() }
func (f RemarkFilter) Value() string { return f.Remark }

func (AmountFilter) isFilter() {}
func (DateFilter) isFilter()   {}
func (RemarkFilter) isFilter() {}
