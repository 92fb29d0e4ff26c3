package schedule

import (
	"strings"
	"testing"
)

func TestParse_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "   \n\t  "} {
		rec := Parse(text, nil, nil)
		if rec == nil {
			t.Fatal("Parse returned nil")
		}
		if rec.DocumentType != TypeClassTimetable {
			t.Errorf("documentType = %q, want %q", rec.DocumentType, TypeClassTimetable)
		}
		if len(rec.Schedule.Sessions) != 0 || len(rec.Schedule.Daily) != 0 {
			t.Errorf("schedule not empty: %+v", rec.Schedule)
		}
		if rec.Metadata.TotalSessions != 0 || len(rec.Metadata.Subjects) != 0 ||
			len(rec.Metadata.TimeSlots) != 0 || len(rec.Metadata.Days) != 0 {
			t.Errorf("metadata not empty: %+v", rec.Metadata)
		}
	}
}

func TestParse_TypeConsistency(t *testing.T) {
	texts := []string{
		"Daily Schedule\nMonday\n9:00 Reading",
		"Weekly Timetable\nMaths",
		"Reception fun",
		"Class: 3B",
		"anything else",
	}
	for _, text := range texts {
		rec := Parse(text, nil, nil)
		if rec.DocumentType != rec.Schedule.Type {
			t.Errorf("%q: documentType %q != schedule.type %q", text, rec.DocumentType, rec.Schedule.Type)
		}
		if rec.Schedule.Type == TypeDailySchedule {
			if rec.Metadata.TotalSessions != 0 {
				t.Errorf("%q: totalSessions = %d, want 0 for daily schedule", text, rec.Metadata.TotalSessions)
			}
		} else if rec.Metadata.TotalSessions != len(rec.Schedule.Sessions) {
			t.Errorf("%q: totalSessions = %d, want %d", text, rec.Metadata.TotalSessions, len(rec.Schedule.Sessions))
		}
	}
}

func TestParse_DailyScheduleEndToEnd(t *testing.T) {
	text := "Sunnydale Primary School\n" +
		"Daily Schedule\n" +
		"Monday\n" +
		"9:00 Reading\n" +
		"10:00 Break\n"

	rec := Parse(text, nil, nil)

	if rec.DocumentType != TypeDailySchedule {
		t.Fatalf("documentType = %q", rec.DocumentType)
	}
	if rec.SchoolInfo.Name != "Sunnydale Primary School" {
		t.Errorf("school name = %q", rec.SchoolInfo.Name)
	}
	if len(rec.Schedule.Sessions) != 0 {
		t.Errorf("daily schedule must not carry sessions: %+v", rec.Schedule.Sessions)
	}
	acts := rec.Schedule.Daily["monday"]
	if len(acts) != 2 || acts[0].Activity != "Reading" || acts[1].Activity != "Break" {
		t.Errorf("monday activities = %+v", acts)
	}
}

func TestParse_MetadataHasNoDuplicates(t *testing.T) {
	text := "Weekly Timetable\nMonday Maths 9:30-10:30\nMonday Maths 9:30-10:30\n"
	rec := Parse(text, nil, nil)

	for _, set := range [][]string{rec.Metadata.Subjects, rec.Metadata.TimeSlots, rec.Metadata.Days} {
		seen := map[string]bool{}
		for _, v := range set {
			k := strings.ToLower(strings.TrimSpace(v))
			if seen[k] {
				t.Errorf("duplicate entry %q in %v", v, set)
			}
			seen[k] = true
		}
	}
}

func TestParse_NeverPanicsOnNoise(t *testing.T) {
	// WHAT: feed adversarial and malformed text through the pipeline.
	// WHY: Parse is total; upstream OCR noise must never crash it.
	inputs := []string{
		strings.Repeat("9:00 ", 10_000),
		"\x00\x01\x02 Monday 9:00",
		"::::----::::",
		"Teacher: " + strings.Repeat("A", 5_000),
		"99:99 - 00:00 Mystery",
	}
	for _, text := range inputs {
		rec := Parse(text, nil, nil)
		if rec == nil {
			t.Fatalf("Parse(%.20q...) returned nil", text)
		}
	}
}
