/*
Package wage implements the shift wage calculation engine.

PURPOSE:
  This package computes an employee's pay for a single shift from a base
  hourly rate and a start/end clock time. Worked time is split into normal
  and night-differential hours, and the night share is paid at a premium
  multiplier.

KEY CONCEPTS IN THIS FILE (types.go):
  - TimeOfDay: A validated wall-clock point (hour 0-23, minute 0-59)
  - Policy: The differential rules (night window, multiplier, bucket size)
  - Breakdown: The computed pay result returned to callers

DESIGN PRINCIPLES:
  1. Purity: Every operation is a deterministic function of its inputs.
     The engine holds no state across calls and never reads ambient config.
  2. Precision: Pay amounts use decimal.Decimal to avoid floating-point
     errors in money. Hours stay float64 - they come from minute-granularity
     clock math and the 0.25h bucket is an exact binary fraction.
  3. Validated construction: TimeOfDay values only exist via ParseTimeOfDay,
     so downstream operations have no failure modes.

USAGE:
  engine := wage.NewEngine(wage.DefaultPolicy())
  breakdown, err := engine.Compute("1000", "22:00", "06:00")

SEE ALSO:
  - clock.go:  Time-of-day parsing and duration math
  - engine.go: Night partition sweep and pay aggregation
  - errors.go: Error types returned to callers
*/
package wage

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// TIME OF DAY - Validated wall-clock value
// =============================================================================

// TimeOfDay is a wall-clock point within a single day. Both fields are
// guaranteed in range when constructed via ParseTimeOfDay.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// =============================================================================
// POLICY - Night differential rules
// =============================================================================

// Policy carries the night-differential rules applied to a shift.
// The zero value is not usable; construct via DefaultPolicy or the
// factory package.
type Policy struct {
	// NightStartHour is the inclusive start of the night window, as a
	// decimal hour of day. The default window wraps midnight: 22:00-05:00.
	NightStartHour float64

	// NightEndHour is the exclusive end of the night window.
	NightEndHour float64

	// NightMultiplier is applied to the rate for night hours.
	NightMultiplier decimal.Decimal

	// BucketHours is the classification granularity of the night sweep.
	// A shift boundary that falls mid-bucket is resolved by the bucket's
	// start sample, not by proportional split.
	BucketHours float64
}

// Spec defaults: night premium from 22:00 to 05:00, paid at 1.25x,
// classified in 15-minute buckets.
const (
	DefaultNightStartHour = 22.0
	DefaultNightEndHour   = 5.0
	DefaultBucketHours    = 0.25
)

// DefaultNightMultiplier is the standard 25% night premium.
var DefaultNightMultiplier = decimal.NewFromFloat(1.25)

// DefaultPolicy returns the standard differential policy.
func DefaultPolicy() Policy {
	return Policy{
		NightStartHour:  DefaultNightStartHour,
		NightEndHour:    DefaultNightEndHour,
		NightMultiplier: DefaultNightMultiplier,
		BucketHours:     DefaultBucketHours,
	}
}

// IsNight reports whether a decimal hour of day falls inside the night
// window. A window whose start is numerically above its end wraps across
// midnight (the default 22->5 does).
func (p Policy) IsNight(hourOfDay float64) bool {
	if p.NightStartHour <= p.NightEndHour {
		return hourOfDay >= p.NightStartHour && hourOfDay < p.NightEndHour
	}
	return hourOfDay >= p.NightStartHour || hourOfDay < p.NightEndHour
}

// =============================================================================
// BREAKDOWN - Computed pay result
// =============================================================================

// Breakdown is the result of a wage calculation. NormalHours is always
// derived as TotalHours - NightHours, so the sum invariant holds exactly.
type Breakdown struct {
	Start TimeOfDay
	End   TimeOfDay

	TotalHours  float64
	NormalHours float64
	NightHours  float64

	Rate      decimal.Decimal
	NormalPay decimal.Decimal
	NightPay  decimal.Decimal

	// TotalPay is NormalPay + NightPay rounded half-up to the whole
	// currency unit. The unrounded value is not exposed.
	TotalPay decimal.Decimal
}
