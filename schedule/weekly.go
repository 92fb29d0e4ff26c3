package schedule

// The weekly parser reconstructs a timetable from globally detected
// subjects and a fixed slot catalog. It does not bind subjects to the
// cells they physically occupy in the source document: every weekday
// receives the same session list. True positional table parsing would
// need layout-aware input the text pipeline does not produce.

var weeklySubjectCatalog = []string{
	"Maths", "English", "Science", "History", "Art", "Music", "Computing", "PE",
}

var weeklyTimeSlots = []string{
	"9:30-10:30", "10:30-11:00", "11:00-12:00", "1:15-2:00", "2:00-3:00",
}

// parseWeeklyTimetable synthesizes the session list and its per-day
// mirror. With zero recognized catalog subjects, each weekday gets two
// generic placeholder sessions instead.
func parseWeeklyTimetable(text string) ([]Session, map[string][]Activity) {
	subjects := filterToCatalog(ExtractSubjects(text))

	sessions := []Session{}
	daily := make(map[string][]Activity, len(parseWeekdays))

	for _, day := range parseWeekdays {
		var acts []Activity
		for i, subject := range subjects {
			if i >= len(weeklyTimeSlots) {
				break
			}
			slot := weeklyTimeSlots[i]
			d := CalculateDuration(slot)
			sessions = append(sessions, Session{Day: day, Time: slot, Subject: subject, Duration: d})
			acts = append(acts, Activity{Time: slot, Activity: subject, Duration: d})
		}
		if len(acts) == 0 {
			acts = []Activity{
				{Time: "9:30", Activity: "Morning Work", Duration: DefaultDuration},
				{Time: "11:00", Activity: "Main Lesson", Duration: DefaultDuration},
			}
		}
		daily[day] = acts
	}

	if len(sessions) == 0 {
		for _, day := range parseWeekdays {
			sessions = append(sessions,
				Session{Day: day, Time: "9:30-10:30", Subject: "Morning Work", Duration: DefaultDuration},
				Session{Day: day, Time: "11:00-12:00", Subject: "Main Lesson", Duration: DefaultDuration},
			)
		}
	}
	return sessions, daily
}

func filterToCatalog(subjects []string) []string {
	out := []string{}
	for _, s := range subjects {
		for _, c := range weeklySubjectCatalog {
			if s == c {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
