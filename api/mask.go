/*
mask.go - Live input mask for time fields

PURPOSE:
  As a user types into a time field, the raw value is reformatted on every
  keystroke: non-digit characters are stripped, input is capped at 4
  digits, and a colon is re-inserted after the 2nd digit. The caret stays
  where the user expects it relative to the digits they typed.

  This is input-masking UX polish, not part of the calculation contract:
  the engine still strictly validates whatever the mask produced. Keeping
  the mask a pure function lets the CLI and the embedded web page share
  the exact same behavior.

SEE ALSO:
  - page.go: The embedded page's JS applies this same transformation
  - cmd/wagecalc: Masks the --start/--end arguments before computing
*/
package api

// MaskTimeInput reformats a raw time-field value and caret position.
// cursor is the caret index into raw; the returned caret points at the
// same position relative to the surviving digits.
//
//	MaskTimeInput("1230", 4)   -> "12:30", 5
//	MaskTimeInput("123", 3)    -> "12:3", 4
//	MaskTimeInput("123456", 6) -> "12:34", 5
func MaskTimeInput(raw string, cursor int) (string, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(raw) {
		cursor = len(raw)
	}

	// Strip non-digits, capped at 4, tracking how many digits survive
	// before the caret.
	digits := make([]byte, 0, 4)
	digitsBeforeCursor := 0
	for i := 0; i < len(raw) && len(digits) < 4; i++ {
		c := raw[i]
		if c < '0' || c > '9' {
			continue
		}
		digits = append(digits, c)
		if i < cursor {
			digitsBeforeCursor++
		}
	}

	// Re-insert the colon after the 2nd digit.
	masked := make([]byte, 0, 5)
	for i, c := range digits {
		if i == 2 {
			masked = append(masked, ':')
		}
		masked = append(masked, c)
	}

	// A caret past the colon shifts right by one.
	newCursor := digitsBeforeCursor
	if digitsBeforeCursor > 2 {
		newCursor++
	}

	return string(masked), newCursor
}

// MaskTimeField reformats a time-field value when caret tracking is not
// needed (CLI arguments, pasted values).
func MaskTimeField(raw string) string {
	masked, _ := MaskTimeInput(raw, len(raw))
	return masked
}
