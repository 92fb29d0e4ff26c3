package schedule

import "testing"

func TestCalculateDuration(t *testing.T) {
	tests := []struct {
		name     string
		fragment string
		want     int
	}{
		{"spaced range", "Maths 9:00 - 10:30", 90},
		{"tight range", "9:30-10:15 Reading", 45},
		{"en dash range", "11:00 – 11:45", 45},
		{"single time defaults", "9:00 Assembly", 60},
		{"no time defaults", "Assembly", 60},
		{"empty defaults", "", 60},

		// A 12-hour clock crossing noon reads as a negative span;
		// the default stands in rather than a nonsense value.
		{"range crossing noon", "11:30 - 1:00", 60},
		{"zero length range", "9:00 - 9:00", 60},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateDuration(tc.fragment); got != tc.want {
				t.Errorf("CalculateDuration(%q) = %d, want %d", tc.fragment, got, tc.want)
			}
		})
	}
}
