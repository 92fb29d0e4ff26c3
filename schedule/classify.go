package schedule

import "strings"

// DetectDocumentType classifies text into one of the four schedule
// shapes. The checks form a precedence chain: the first rule that fires
// wins, and the fallback is class_timetable.
func DetectDocumentType(text string) DocumentType {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "daily schedule"):
		return TypeDailySchedule
	case strings.Contains(lower, "reception"):
		return TypeReceptionTimetable
	case strings.Contains(lower, "class:") ||
		strings.Contains(lower, "term:") ||
		strings.Contains(lower, "teacher:") ||
		strings.Contains(lower, "primary school"):
		return TypeClassTimetable
	case strings.Contains(lower, "timetable") || strings.Contains(lower, "schedule"):
		return TypeWeeklyTimetable
	case strings.Contains(lower, "monday") &&
		strings.Contains(lower, "tuesday") &&
		strings.Contains(lower, "wednesday"):
		return TypeClassTimetable
	default:
		return TypeClassTimetable
	}
}
