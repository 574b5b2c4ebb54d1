/*
Package factory provides JSON to Go policy conversion.

PURPOSE:
  Converts JSON differential-policy documents into wage.Policy values.
  This enables policy configuration without code changes - payroll can
  adjust the night window, premium multiplier, or bucket granularity in
  a config file the server loads at startup.

JSON SCHEMA:
  {
    "night_start_hour": 22,
    "night_end_hour": 5,
    "night_multiplier": 1.25,
    "bucket_minutes": 15
  }

  All fields are optional. Omitted fields take the standard defaults,
  so "{}" yields wage.DefaultPolicy().

VALIDATION:
  - night_start_hour / night_end_hour must be in [0, 24)
  - night_multiplier must be >= 1
  - bucket_minutes must be in 1..60
  An invalid document fails as a whole; there is no half-applied policy.

USAGE:
  factory := factory.NewPolicyFactory()
  policy, err := factory.ParsePolicy(jsonString)
  engine := wage.NewEngine(policy)

SEE ALSO:
  - wage/types.go: Policy definition and defaults
  - cmd/wagecalc: Loads a policy file for the serve command
*/
package factory

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// PolicyJSON is the JSON representation of a differential policy.
// Pointer fields distinguish "omitted" from an explicit zero.
type PolicyJSON struct {
	NightStartHour  *float64 `json:"night_start_hour,omitempty"`
	NightEndHour    *float64 `json:"night_end_hour,omitempty"`
	NightMultiplier *float64 `json:"night_multiplier,omitempty"`
	BucketMinutes   *int     `json:"bucket_minutes,omitempty"`
}

// =============================================================================
// POLICY FACTORY
// =============================================================================

// PolicyFactory converts JSON policies to wage.Policy values.
type PolicyFactory struct{}

// NewPolicyFactory creates a new policy factory.
func NewPolicyFactory() *PolicyFactory {
	return &PolicyFactory{}
}

// ParsePolicy parses a JSON string into a wage.Policy.
func (f *PolicyFactory) ParsePolicy(jsonStr string) (wage.Policy, error) {
	var pj PolicyJSON
	if err := json.Unmarshal([]byte(jsonStr), &pj); err != nil {
		return wage.Policy{}, fmt.Errorf("failed to parse policy JSON: %w", err)
	}
	return f.FromJSON(pj)
}

// FromJSON converts PolicyJSON to a validated wage.Policy.
func (f *PolicyFactory) FromJSON(pj PolicyJSON) (wage.Policy, error) {
	policy := wage.DefaultPolicy()

	if pj.NightStartHour != nil {
		if *pj.NightStartHour < 0 || *pj.NightStartHour >= 24 {
			return wage.Policy{}, fmt.Errorf("night_start_hour %v out of range [0, 24)", *pj.NightStartHour)
		}
		policy.NightStartHour = *pj.NightStartHour
	}
	if pj.NightEndHour != nil {
		if *pj.NightEndHour < 0 || *pj.NightEndHour >= 24 {
			return wage.Policy{}, fmt.Errorf("night_end_hour %v out of range [0, 24)", *pj.NightEndHour)
		}
		policy.NightEndHour = *pj.NightEndHour
	}
	if pj.NightMultiplier != nil {
		if *pj.NightMultiplier < 1 {
			return wage.Policy{}, fmt.Errorf("night_multiplier %v must be >= 1", *pj.NightMultiplier)
		}
		policy.NightMultiplier = decimal.NewFromFloat(*pj.NightMultiplier)
	}
	if pj.BucketMinutes != nil {
		if *pj.BucketMinutes < 1 || *pj.BucketMinutes > 60 {
			return wage.Policy{}, fmt.Errorf("bucket_minutes %d out of range 1..60", *pj.BucketMinutes)
		}
		policy.BucketHours = float64(*pj.BucketMinutes) / 60
	}

	return policy, nil
}

// ToJSON converts a wage.Policy to its JSON representation, with every
// field populated. Used by the API to report the active policy.
func ToJSON(p wage.Policy) PolicyJSON {
	multiplier, _ := p.NightMultiplier.Float64()
	bucketMinutes := int(p.BucketHours * 60)
	return PolicyJSON{
		NightStartHour:  &p.NightStartHour,
		NightEndHour:    &p.NightEndHour,
		NightMultiplier: &multiplier,
		BucketMinutes:   &bucketMinutes,
	}
}
