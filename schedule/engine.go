package schedule

import "strings"

// Parse runs the full pipeline over raw document text and returns a
// structured timetable record. words and lines are optional OCR tokens;
// only line tokens are consumed, and only by the daily-schedule
// fallback. Parse is total: it never panics and never returns nil, and
// whitespace-only input yields an empty class_timetable record.
func Parse(text string, words, lines []Token) *ScheduleRecord {
	_ = words // reserved for position-aware parsing

	rec := &ScheduleRecord{
		DocumentType: TypeClassTimetable,
		Schedule: Schedule{
			Type:     TypeClassTimetable,
			Sessions: []Session{},
			Daily:    map[string][]Activity{},
		},
		Metadata: Metadata{
			Subjects:  []string{},
			TimeSlots: []string{},
			Days:      []string{},
		},
	}
	if strings.TrimSpace(text) == "" {
		return rec
	}

	rec.DocumentType = DetectDocumentType(text)
	rec.SchoolInfo = ExtractSchoolInfo(text)
	rec.Schedule = extractSchedule(text, rec.DocumentType, lines)

	if rec.Schedule.Type != TypeDailySchedule {
		rec.Metadata.TotalSessions = len(rec.Schedule.Sessions)
	}
	rec.Metadata.Subjects = ExtractSubjects(text)
	rec.Metadata.TimeSlots = ExtractTimeSlots(text)
	rec.Metadata.Days = ExtractDays(text)
	return rec
}

// extractSchedule branches on the detected type. Daily schedules carry
// only the day-keyed activity map; every other type carries the
// synthesized session list plus its per-day mirror.
func extractSchedule(text string, docType DocumentType, ocrLines []Token) Schedule {
	s := Schedule{Type: docType, Sessions: []Session{}, Daily: map[string][]Activity{}}
	if docType == TypeDailySchedule {
		s.Daily = parseDailySchedule(text, ocrLines)
		return s
	}
	s.Sessions, s.Daily = parseWeeklyTimetable(text)
	return s
}
