package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseStrictDate(t *testing.T) {
	today := NewDate(2024, time.March, 15)

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"past date", "2023-12-30", "2023-12-30", nil},
		{"today", "2024-03-15", "2024-03-15", nil},
		{"leap day", "2024-02-29", "2024-02-29", nil},
		{"surrounding space", " 2024-01-02 ", "2024-01-02", nil},
		{"tomorrow", "2024-03-16", "", ErrFutureDate},
		{"next year", "2025-01-01", "", ErrFutureDate},
		{"not a leap year", "2023-02-29", "", ErrInvalidDateFormat},
		{"day 30 in february", "2023-02-30", "", ErrInvalidDateFormat},
		{"month 13", "2023-13-01", "", ErrInvalidDateFormat},
		{"single digit month", "2023-1-01", "", ErrInvalidDateFormat},
		{"single digit day", "2023-01-1", "", ErrInvalidDateFormat},
		{"two digit year", "23-01-01", "", ErrInvalidDateFormat},
		{"slashes", "2023/01/01", "", ErrInvalidDateFormat},
		{"day first", "30-12-2023", "", ErrInvalidDateFormat},
		{"with time", "2023-01-01T10:00", "", ErrInvalidDateFormat},
		{"text", "yesterday", "", ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStrictDate(tt.input, today)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseStrictDate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStrictDate(%q) unexpected error = %v", tt.input, err)
			}
			if got.String() != tt.want {
				t.Errorf("String() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestDateOf_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 20:00 UTC on the 1st is already the 2nd in UTC+10
	instant := time.Date(2024, time.January, 1, 20, 0, 0, 0, time.UTC)

	if got := DateOf(instant).String(); got != "2024-01-01" {
		t.Errorf("DateOf(UTC) = %s", got)
	}
	if got := DateOf(instant.In(loc)).String(); got != "2024-01-02" {
		t.Errorf("DateOf(UTC+10) = %s", got)
	}
}

func TestDate_Accessors(t *testing.T) {
	d := NewDate(2023, time.December, 31)

	if d.Year() != 2023 || d.Month() != time.December || d.Day() != 31 {
		t.Errorf("accessors = %d-%d-%d", d.Year(), d.Month(), d.Day())
	}
	next := d.AddDays(1)
	if next.String() != "2024-01-01" {
		t.Errorf("AddDays(1) = %s", next)
	}
	if !next.After(d) || d.After(next) {
		t.Error("After() ordering is wrong")
	}
	if !d.Equal(NewDate(2023, time.December, 31)) {
		t.Error("Equal() should be true for the same day")
	}
}
