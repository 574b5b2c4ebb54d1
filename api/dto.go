/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  DTOs are pure data carriers. All validation happens in the engine;
  handlers only translate its errors to HTTP responses.

SEE ALSO:
  - handlers.go: Uses these types
  - wage/types.go: The engine types they mirror
*/
package api

import (
	"github.com/warp/wage-engine/wage"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ComputeWageRequest carries the three raw inputs of a calculation.
// All three are strings: validation belongs to the engine, not the
// transport.
type ComputeWageRequest struct {
	Rate  string `json:"rate"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WageBreakdownDTO represents a computed breakdown in API responses.
type WageBreakdownDTO struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	TotalHours  float64 `json:"total_hours"`
	NormalHours float64 `json:"normal_hours"`
	NightHours  float64 `json:"night_hours"`
	Rate        float64 `json:"rate"`
	NormalPay   float64 `json:"normal_pay"`
	NightPay    float64 `json:"night_pay"`
	TotalPay    float64 `json:"total_pay"`
}

// PolicyDTO represents the active differential policy.
type PolicyDTO struct {
	NightStartHour  float64 `json:"night_start_hour"`
	NightEndHour    float64 `json:"night_end_hour"`
	NightMultiplier float64 `json:"night_multiplier"`
	BucketMinutes   int     `json:"bucket_minutes"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Error codes returned to clients.
const (
	CodeInvalidTimeFormat = "invalid_time_format"
	CodeInvalidRate       = "invalid_rate"
)

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toBreakdownDTO(b *wage.Breakdown) WageBreakdownDTO {
	rate, _ := b.Rate.Float64()
	normalPay, _ := b.NormalPay.Float64()
	nightPay, _ := b.NightPay.Float64()
	totalPay, _ := b.TotalPay.Float64()
	return WageBreakdownDTO{
		Start:       b.Start.String(),
		End:         b.End.String(),
		TotalHours:  b.TotalHours,
		NormalHours: b.NormalHours,
		NightHours:  b.NightHours,
		Rate:        rate,
		NormalPay:   normalPay,
		NightPay:    nightPay,
		TotalPay:    totalPay,
	}
}

func toPolicyDTO(p wage.Policy) PolicyDTO {
	multiplier, _ := p.NightMultiplier.Float64()
	return PolicyDTO{
		NightStartHour:  p.NightStartHour,
		NightEndHour:    p.NightEndHour,
		NightMultiplier: multiplier,
		BucketMinutes:   int(p.BucketHours * 60),
	}
}
