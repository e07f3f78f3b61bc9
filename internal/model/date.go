// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     model
// Description: Strict YYYY-MM-DD calendar date that may not lie in the future
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
	"time"
)

// DateLayout is the only accepted date format
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateFormat is returned for text that is not a real YYYY-MM-DD date
	ErrInvalidDateFormat = errors.New("date must use the format YYYY-MM-DD")

	// ErrFutureDate is returned for dates after today
	ErrFutureDate = errors.New("date is in the future")
)

var dateRe = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// Date is a calendar day without time or zone
type Date struct {
	t time.Time // midnight UTC
}

// NewDate creates a Date; out-of-range parts are normalised like time.Date
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's location
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseStrictDate parses s as YYYY-MM-DD and rejects dates after today.
// Impossible days such as 2023-02-30 are rejected rather than rolled over.
func ParseStrictDate(s string, today Date) (Date, error) {
	s = strings.TrimSpace(s)
	if !dateRe.MatchString(s) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
	}

	d := Date{t: t}
	if d.After(today) {
		return Date{}, fmt.Errorf("%w: %s is after %s", ErrFutureDate, d, today)
	}
	return d, nil
}

// Year returns the year
func (d Date) Year() int { return d.t.Year() }

// Month returns the month
func (d Date) Month() time.Month { return d.t.Month() }

// Day returns the day of the month
func (d Date) Day() int { return d.t.Day() }

// After reports whether d is a later day than other
func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

// Equal reports whether both are the same day
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// AddDays returns the date n days later (or earlier for negative n)
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time returns midnight UTC of the day
func (d Date) Time() time.Time {
	return d.t
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return d.t.Format(DateLayout)
}
