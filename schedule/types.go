// Package schedule turns raw document text into a structured school
// timetable record. It is the heuristic core of the extraction service:
// all functions are pure scans over immutable text, tolerate OCR noise
// and missing fields, and never fail: absent data yields empty fields,
// not errors.
package schedule

// DocumentType identifies the schedule shape detected in a document.
type DocumentType string

const (
	TypeClassTimetable     DocumentType = "class_timetable"
	TypeWeeklyTimetable    DocumentType = "weekly_timetable"
	TypeDailySchedule      DocumentType = "daily_schedule"
	TypeReceptionTimetable DocumentType = "reception_timetable"
)

// Token is one OCR-detected word or line handed over by the text
// extraction collaborator. Only Text is consumed here; position and
// confidence travel along for callers that want them.
type Token struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
	BBox       [4]int  `json:"bbox"`
}

// SchoolInfo holds institution-level fields. Absent fields are omitted
// from JSON, never emitted as empty-with-meaning.
type SchoolInfo struct {
	Name    string `json:"name,omitempty"`
	Class   string `json:"class,omitempty"`
	Term    string `json:"term,omitempty"`
	Teacher string `json:"teacher,omitempty"`
	Week    int    `json:"week,omitempty"`
}

// Session is one scheduled (day, time, subject) tuple in a weekly
// timetable.
type Session struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Subject  string `json:"subject"`
	Duration int    `json:"duration"`
}

// Activity is one (time, label) tuple in a daily schedule, not tied to
// a subject catalog.
type Activity struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Duration int    `json:"duration"`
}

// Schedule is the tagged schedule variant. When Type is
// TypeDailySchedule only Daily is populated; otherwise Sessions carries
// the session list and Daily groups the same sessions by day. The two
// parsers are the only constructors, which keeps the variant shapes
// consistent.
type Schedule struct {
	Type     DocumentType          `json:"type"`
	Sessions []Session             `json:"sessions"`
	Daily    map[string][]Activity `json:"dailySchedules"`
}

// Metadata aggregates what the token extractors saw in the text.
// All slices are deduplicated in first-seen order.
type Metadata struct {
	TotalSessions int      `json:"totalSessions"`
	Subjects      []string `json:"subjects"`
	TimeSlots     []string `json:"timeSlots"`
	Days          []string `json:"days"`
}

// ScheduleRecord is the full structured output for one document. It is
// built fresh per Parse call and never mutated afterwards.
type ScheduleRecord struct {
	DocumentType DocumentType `json:"documentType"`
	SchoolInfo   SchoolInfo   `json:"schoolInfo"`
	Schedule     Schedule     `json:"schedule"`
	Metadata     Metadata     `json:"metadata"`
}
