// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     findpayment
// Description: Validated findpayment request
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package findpayment

import (
	"fmt"

	"github.com/msto63/findpay/internal/model"
)

// Request is a validated findpayment command: a member index and exactly one
// filter. The zero value is not a valid request; obtain one from Parser.Parse.
type Request struct {
	index  model.Index
	filter Filter
}

func newRequest(index model.Index, filter Filter) Request {
	return Request{index: index, filter: filter}
}

// Index returns the member index
func (r Request) Index() model.Index {
	return r.index
}

// Filter returns the single filter
func (r Request) Filter() Filter {
	return r.filter
}

// Amount returns the amount if the request filters by amount
func (r Request) Amount() (model.Amount, bool) {
	f, ok := r.filter.(AmountFilter)
	return f.Amount, ok
}

// Date returns the date if the request filters by date
func (r Request) Date() (model.Date, bool) {
	f, ok := r.filter.(DateFilter)
	return f.Date, ok
}

// Remark returns the remark if the request filters by remark
func (r Request) Remark() (string, bool) {
	f, ok := r.filter.(RemarkFilter)
	return f.Remark, ok
}

// Equal reports whether both requests target the same index with the same filter
func (r Request) Equal(other Request) bool {
	if r.index != other.index || r.filter == nil || other.filter == nil {
		return false
	}
	switch f := r.filter.(type) {
	case AmountFilter:
		o, ok := other.filter.(AmountFilter)
		return ok && f.Amount.Equal(o.Amount)
	case DateFilter:
		o, ok := other.filter.(DateFilter)
		return ok && f.Date.Equal(o.Date)
	case RemarkFilter:
		o, ok := other.filter.(RemarkFilter)
		return ok && f.Remark == o.Remark
	default:
		return false
	}
}

// String renders the request back in command syntax, e.g. "1 a/23.50"
func (r Request) String() string {
	if r.filter == nil {
		return r.index.String()
	}
	return fmt.Sprintf("%s %s%s", r.index, r.filter.Kind().Prefix(), r.filter.Value())
}
