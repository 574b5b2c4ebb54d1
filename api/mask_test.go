package api_test

import (
	"testing"

	"github.com/warp/wage-engine/api"
	"github.com/warp/wage-engine/wage"
)

func TestMaskTimeInput(t *testing.T) {
	cases := []struct {
		name       string
		raw        string
		cursor     int
		want       string
		wantCursor int
	}{
		{"empty", "", 0, "", 0},
		{"single digit", "1", 1, "1", 1},
		{"two digits, no colon yet", "12", 2, "12", 2},
		{"third digit inserts colon", "123", 3, "12:3", 4},
		{"four digits", "1230", 4, "12:30", 5},
		{"caps at four digits", "123456", 6, "12:34", 5},
		{"strips letters", "1a2b3", 5, "12:3", 4},
		{"strips existing colon and reinserts", "12:30", 5, "12:30", 5},
		{"caret mid-value follows its digit", "1230", 2, "12:30", 2},
		{"caret after third digit", "1230", 3, "12:30", 4},
		{"pasted garbage", "ab-cd", 5, "", 0},
		{"cursor out of range clamps", "1230", 99, "12:30", 5},
		{"negative cursor clamps", "1230", -1, "12:30", 0},
	}

	for _, c := range cases {
		got, gotCursor := api.MaskTimeInput(c.raw, c.cursor)
		if got != c.want || gotCursor != c.wantCursor {
			t.Errorf("%s: MaskTimeInput(%q, %d) = %q, %d; want %q, %d",
				c.name, c.raw, c.cursor, got, gotCursor, c.want, c.wantCursor)
		}
	}
}

func TestMaskTimeField_FeedsTheParser(t *testing.T) {
	// GIVEN: a raw field value shaped like the mask output
	// THEN: a 4-digit value parses after masking; anything shorter still
	//       fails the engine's strict validation

	if _, err := wage.ParseTimeOfDay(api.MaskTimeField("2230")); err != nil {
		t.Errorf("masked 2230 should parse: %v", err)
	}
	if _, err := wage.ParseTimeOfDay(api.MaskTimeField("22:30")); err != nil {
		t.Errorf("masked 22:30 should parse: %v", err)
	}
	if _, err := wage.ParseTimeOfDay(api.MaskTimeField("930")); err == nil {
		t.Error("masked 930 produces 93:0 and must not parse")
	}
}
