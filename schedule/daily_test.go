package schedule

import (
	"reflect"
	"testing"
)

func TestParseDailySchedule(t *testing.T) {
	text := "Daily Schedule\n" +
		"Monday\n" +
		"9:00 Reading\n" +
		"10:00 - 10:30 Break\n" +
		"Tuesday\n" +
		"9:00 Phonics\n"

	got := parseDailySchedule(text, nil)

	want := map[string][]Activity{
		"monday": {
			{Time: "9:00", Activity: "Reading", Duration: 60},
			{Time: "10:00", Activity: "- 10:30 Break", Duration: 30},
		},
		"tuesday": {
			{Time: "9:00", Activity: "Phonics", Duration: 60},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseDailySchedule = %+v, want %+v", got, want)
	}
}

func TestParseDailySchedule_DayWithoutActivitiesOmitted(t *testing.T) {
	text := "Monday\nno timed lines here\nTuesday\n9:00 Maths\n"
	got := parseDailySchedule(text, nil)

	if _, ok := got["monday"]; ok {
		t.Errorf("monday should be omitted when it has no activities: %+v", got)
	}
	if len(got["tuesday"]) != 1 {
		t.Errorf("tuesday = %+v, want one activity", got["tuesday"])
	}
}

func TestParseDailySchedule_GeneralFallback(t *testing.T) {
	// No weekday anywhere: all timed lines land in one general bucket.
	text := "Daily Schedule\n9:00 Register\n9:30 Maths\nuntimed line\n"
	got := parseDailySchedule(text, nil)

	want := map[string][]Activity{
		"general": {
			{Time: "9:00", Activity: "Register", Duration: 60},
			{Time: "9:30", Activity: "Maths", Duration: 60},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseDailySchedule = %+v, want %+v", got, want)
	}
}

func TestParseDailySchedule_GeneralFallbackPrefersOCRLines(t *testing.T) {
	// The text payload lost its line breaks; OCR line tokens carry the
	// real reading order and take precedence.
	text := "9:00 Register 9:30 Maths"
	lines := []Token{
		{Text: "9:00 Register", Confidence: 0.93},
		{Text: "9:30 Maths", Confidence: 0.88},
	}
	got := parseDailySchedule(text, lines)

	acts := got["general"]
	if len(acts) != 2 {
		t.Fatalf("general = %+v, want 2 activities", acts)
	}
	if acts[0].Activity != "Register" || acts[1].Activity != "Maths" {
		t.Errorf("activities = %+v", acts)
	}
}

func TestParseDailySchedule_EmptyGeneralOmitted(t *testing.T) {
	got := parseDailySchedule("nothing timed at all", nil)
	if len(got) != 0 {
		t.Errorf("want empty map, got %+v", got)
	}
}

func TestActivityFromLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Activity
		ok   bool
	}{
		// The time token is stripped before the list marker so a
		// leading clock hour is not eaten as a marker.
		{"time leads the line", "9:00 Reading", Activity{Time: "9:00", Activity: "Reading", Duration: 60}, true},
		{"numeric list marker", "1 9:00 Reading", Activity{Time: "9:00", Activity: "Reading", Duration: 60}, true},
		{"range sets duration", "Maths 9:00 - 10:30", Activity{Time: "9:00", Activity: "Maths - 10:30", Duration: 90}, true},
		{"no time token", "Reading corner", Activity{}, false},
		{"nothing left after stripping", "  9:00  ", Activity{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := activityFromLine(tc.line)
			if ok != tc.ok || got != tc.want {
				t.Errorf("activityFromLine(%q) = %+v, %v; want %+v, %v", tc.line, got, ok, tc.want, tc.ok)
			}
		})
	}
}
