package schedule

import (
	"reflect"
	"testing"
)

func TestParseWeeklyTimetable_SymmetricSessions(t *testing.T) {
	// Two catalog subjects: every weekday gets the same two sessions
	// bound to the first two slots of the catalog.
	sessions, daily := parseWeeklyTimetable("Weekly Timetable\nMaths and English")

	if len(sessions) != 10 {
		t.Fatalf("len(sessions) = %d, want 10", len(sessions))
	}
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
		var perDay []Session
		for _, s := range sessions {
			if s.Day == day {
				perDay = append(perDay, s)
			}
		}
		want := []Session{
			{Day: day, Time: "9:30-10:30", Subject: "Maths", Duration: 60},
			{Day: day, Time: "10:30-11:00", Subject: "English", Duration: 30},
		}
		if !reflect.DeepEqual(perDay, want) {
			t.Errorf("sessions for %s = %+v, want %+v", day, perDay, want)
		}

		wantActs := []Activity{
			{Time: "9:30-10:30", Activity: "Maths", Duration: 60},
			{Time: "10:30-11:00", Activity: "English", Duration: 30},
		}
		if !reflect.DeepEqual(daily[day], wantActs) {
			t.Errorf("daily[%s] = %+v, want %+v", day, daily[day], wantActs)
		}
	}
}

func TestParseWeeklyTimetable_NoCatalogSubjects(t *testing.T) {
	sessions, daily := parseWeeklyTimetable("Weekly Timetable with nothing recognizable")

	// Two generic placeholder sessions per weekday.
	if len(sessions) != 10 {
		t.Fatalf("len(sessions) = %d, want 10", len(sessions))
	}
	if sessions[0].Subject != "Morning Work" || sessions[1].Subject != "Main Lesson" {
		t.Errorf("placeholder sessions = %+v", sessions[:2])
	}
	for day, acts := range daily {
		if len(acts) != 2 {
			t.Errorf("daily[%s] = %+v, want 2 placeholder activities", day, acts)
		}
	}
}

func TestParseWeeklyTimetable_SubjectsCappedBySlots(t *testing.T) {
	// More catalog subjects than slots: the surplus is dropped.
	text := "Maths English Science History Art Music Computing"
	sessions, _ := parseWeeklyTimetable(text)

	if len(sessions) != 25 {
		t.Errorf("len(sessions) = %d, want 25 (5 slots x 5 days)", len(sessions))
	}
}
