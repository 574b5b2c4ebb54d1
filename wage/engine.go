/*
engine.go - Night partition sweep and pay aggregation

PURPOSE:
  The two top operations of the engine: splitting an elapsed shift into
  night and normal hours, and turning that split plus an hourly rate into
  a pay breakdown.

NIGHT PARTITION:
  The elapsed interval is walked in fixed buckets (15 minutes by default).
  Each bucket is classified night or normal by sampling the clock at the
  bucket's START; the whole bucket then counts as that class. This is a
  deliberate approximation kept for output compatibility - it is NOT
  upgraded to continuous interval intersection, even though the night
  window makes that possible in closed form.

  The sweep is bounded: at most 24 / 0.25 = 96 iterations under the
  default policy.

SEE ALSO:
  - types.go: Policy and Breakdown definitions
  - clock.go: Parsing and duration math the engine composes
*/
package wage

import (
	"math"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE PARSING
// =============================================================================

// ParseRate validates an hourly rate string. The rate must parse as a
// number and be strictly positive.
func ParseRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil || !rate.IsPositive() {
		return decimal.Zero, &InvalidRateError{Input: s}
	}
	return rate, nil
}

// =============================================================================
// NIGHT PARTITION - Bucketed sweep over the elapsed interval
// =============================================================================

// NightHours returns the night share of an elapsed shift, as a multiple
// of the policy's bucket size. startDecimal is the shift start in decimal
// hours; totalHours is the elapsed duration from Duration.
//
// The float accumulator is exact as long as BucketHours is an exact
// binary fraction (the default 0.25 is), so the loop condition cannot
// drift for minute-granularity inputs.
func (p Policy) NightHours(startDecimal, totalHours float64) float64 {
	night := 0.0
	for t := 0.0; t < totalHours; t += p.BucketHours {
		hourOfDay := math.Mod(startDecimal+t, 24)
		if p.IsNight(hourOfDay) {
			night += p.BucketHours
		}
	}
	return night
}

// =============================================================================
// ENGINE - Orchestration entry point
// =============================================================================

// Engine computes wage breakdowns under a fixed policy. It is stateless
// and safe for concurrent use.
type Engine struct {
	policy Policy
}

// NewEngine creates an engine with the given differential policy.
func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the engine's differential policy.
func (e *Engine) Policy() Policy {
	return e.policy
}

// Compute validates the three raw inputs and produces the pay breakdown.
//
// Validation order: start time, end time, then rate. The first failure
// wins and the calculation does not proceed - there are no partial
// results. Time errors identify the failing field.
func (e *Engine) Compute(rateInput, startInput, endInput string) (*Breakdown, error) {
	start, err := ParseTimeOfDay(startInput)
	if err != nil {
		return nil, &InvalidTimeError{Field: FieldStart, Input: startInput}
	}
	end, err := ParseTimeOfDay(endInput)
	if err != nil {
		return nil, &InvalidTimeError{Field: FieldEnd, Input: endInput}
	}
	rate, err := ParseRate(rateInput)
	if err != nil {
		return nil, err
	}

	startDecimal := start.DecimalHours()
	totalHours := Duration(startDecimal, end.DecimalHours())
	nightHours := e.policy.NightHours(startDecimal, totalHours)

	// Derived, never independently accumulated: guarantees
	// normal + night == total exactly.
	normalHours := totalHours - nightHours

	normalPay := rate.Mul(decimal.NewFromFloat(normalHours))
	nightPay := rate.Mul(decimal.NewFromFloat(nightHours)).Mul(e.policy.NightMultiplier)

	return &Breakdown{
		Start:       start,
		End:         end,
		TotalHours:  totalHours,
		NormalHours: normalHours,
		NightHours:  nightHours,
		Rate:        rate,
		NormalPay:   normalPay,
		NightPay:    nightPay,
		// Round half-up to the whole currency unit, for display.
		TotalPay: normalPay.Add(nightPay).Round(0),
	}, nil
}

// Compute runs a one-off calculation under the default policy.
func Compute(rateInput, startInput, endInput string) (*Breakdown, error) {
	return NewEngine(DefaultPolicy()).Compute(rateInput, startInput, endInput)
}
