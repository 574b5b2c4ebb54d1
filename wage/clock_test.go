package wage_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// PARSING TESTS
// =============================================================================

func TestParseTimeOfDay_RoundTrip(t *testing.T) {
	// GIVEN: Every valid HH:MM string
	// WHEN: Parsing it
	// THEN: Parsing succeeds and round-trips to the same hour/minute

	for hour := 0; hour < 24; hour++ {
		for minute := 0; minute < 60; minute++ {
			s := fmt.Sprintf("%02d:%02d", hour, minute)
			tod, err := wage.ParseTimeOfDay(s)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", s, err)
			}
			if tod.Hour != hour || tod.Minute != minute {
				t.Errorf("%s: parsed as %02d:%02d", s, tod.Hour, tod.Minute)
			}
			if tod.String() != s {
				t.Errorf("%s: String() = %s", s, tod.String())
			}
		}
	}
}

func TestParseTimeOfDay_RejectsMalformed(t *testing.T) {
	// Any shape other than two digits, colon, two digits in range fails.
	// Partial validity (valid digits, out-of-range value) is still a failure.
	cases := []string{
		"",
		"24:00",
		"25:30",
		"12:60",
		"12:99",
		"9:00",   // single-digit hour
		"09:0",   // single-digit minute
		"0900",   // missing colon
		"09-00",  // wrong separator
		"09:00 ", // trailing space
		" 09:00", // leading space
		"0a:00",
		"09:b0",
		"abcd",
		"ab:cd",
		"-1:00",
		"009:00",
		"09:000",
	}

	for _, s := range cases {
		if _, err := wage.ParseTimeOfDay(s); err == nil {
			t.Errorf("%q: expected error, got none", s)
		} else if !errors.Is(err, wage.ErrInvalidTimeFormat) {
			t.Errorf("%q: expected ErrInvalidTimeFormat, got %v", s, err)
		}
	}
}

// =============================================================================
// CLOCK MATH TESTS
// =============================================================================

func TestDecimalHours(t *testing.T) {
	cases := []struct {
		tod  wage.TimeOfDay
		want float64
	}{
		{wage.TimeOfDay{Hour: 0, Minute: 0}, 0},
		{wage.TimeOfDay{Hour: 9, Minute: 30}, 9.5},
		{wage.TimeOfDay{Hour: 9, Minute: 15}, 9.25},
		{wage.TimeOfDay{Hour: 23, Minute: 45}, 23.75},
	}

	for _, c := range cases {
		if got := c.tod.DecimalHours(); got != c.want {
			t.Errorf("%s: DecimalHours() = %v, want %v", c.tod, got, c.want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"day shift", 9, 17, 8},
		{"overnight wrap", 22, 6, 8},
		{"same time is no shift, not 24h", 14.5, 14.5, 0},
		{"wrap around midnight by one hour", 23.5, 0.5, 1},
		{"full-day minus a quarter", 8, 7.75, 23.75},
	}

	for _, c := range cases {
		if got := wage.Duration(c.start, c.end); got != c.want {
			t.Errorf("%s: Duration(%v, %v) = %v, want %v", c.name, c.start, c.end, got, c.want)
		}
	}
}
