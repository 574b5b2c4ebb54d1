package wage

// =============================================================================
// TIME PARSING - Strict "HH:MM" validation
// =============================================================================

// ParseTimeOfDay validates and parses a strict "HH:MM" 24-hour string.
// The check is a single atomic predicate: exactly two digits, a colon,
// two digits, with hour 00-23 and minute 00-59. Anything else fails -
// partial validity is never clamped into a value.
//
// Rejected examples: "24:00", "9:00", "12:60", "0900", "abcd", "".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' ||
		!isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeFormat
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// =============================================================================
// CLOCK MATH
// =============================================================================

// DecimalHours converts the time to fractional hours since midnight,
// in [0, 24). Total: the input was validated at construction.
func (t TimeOfDay) DecimalHours() float64 {
	return float64(t.Hour) + float64(t.Minute)/60
}

// Duration returns the elapsed hours between two decimal-hour clock
// values. An end before the start means the shift crosses midnight.
// Equal start and end yields 0, not 24: same time = no shift.
func Duration(start, end float64) float64 {
	if end >= start {
		return end - start
	}
	return (24 - start) + end
}
