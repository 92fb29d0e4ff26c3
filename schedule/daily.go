package schedule

import (
	"regexp"
	"strings"
)

var parseWeekdays = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday"}

var (
	lineTimeRe   = regexp.MustCompile(`\d{1,2}:\d{2}`)
	listMarkerRe = regexp.MustCompile(`^\d+\s*`)
)

// parseDailySchedule segments text into day-labeled sections and
// extracts timed activities per day. Each weekday is scanned
// independently from the top of the text, so out-of-order or repeated
// day headers still resolve. Days with no activities are omitted. When
// no weekday appears at all, everything falls into a single "general"
// bucket built from ocrLines if provided, else from the text lines.
func parseDailySchedule(text string, ocrLines []Token) map[string][]Activity {
	daily := make(map[string][]Activity)
	lower := strings.ToLower(text)

	for _, day := range parseWeekdays {
		if !strings.Contains(lower, day) {
			continue
		}
		if acts := extractDaySection(text, day); len(acts) > 0 {
			daily[day] = acts
		}
	}

	if len(daily) == 0 {
		if acts := extractGeneralSchedule(text, ocrLines); len(acts) > 0 {
			daily["general"] = acts
		}
	}
	return daily
}

// extractDaySection walks the text lines with a small state machine:
// a line mentioning day opens the section (the header line itself is
// skipped), a line mentioning any weekday closes it, and timed lines in
// between become activities.
func extractDaySection(text, day string) []Activity {
	var acts []Activity
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(strings.ToLower(line), day) {
			inSection = true
			continue
		}
		if inSection && mentionsAnyDay(line) {
			inSection = false
			continue
		}
		if !inSection {
			continue
		}
		if a, ok := activityFromLine(line); ok {
			acts = append(acts, a)
		}
	}
	return acts
}

func mentionsAnyDay(line string) bool {
	for _, p := range dayPatterns {
		if p.re.MatchString(line) {
			return true
		}
	}
	return false
}

// activityFromLine turns a timed line into an Activity. The time token
// is stripped first so that a leading clock hour is not mistaken for a
// numeric list marker; lines with no time or no label left after
// stripping produce nothing.
func activityFromLine(line string) (Activity, bool) {
	timeTok := lineTimeRe.FindString(line)
	if timeTok == "" {
		return Activity{}, false
	}
	label := strings.Replace(line, timeTok, "", 1)
	label = listMarkerRe.ReplaceAllString(strings.TrimSpace(label), "")
	label = strings.Join(strings.Fields(label), " ")
	if label == "" {
		return Activity{}, false
	}
	return Activity{Time: timeTok, Activity: label, Duration: CalculateDuration(line)}, true
}

// extractGeneralSchedule is the no-weekday fallback: every timed line
// becomes an activity, without day segmentation. OCR line tokens take
// precedence over raw text lines because OCR output preserves reading
// order better than its concatenated text payload.
func extractGeneralSchedule(text string, ocrLines []Token) []Activity {
	var lines []string
	if len(ocrLines) > 0 {
		lines = make([]string, 0, len(ocrLines))
		for _, t := range ocrLines {
			lines = append(lines, t.Text)
		}
	} else {
		lines = strings.Split(text, "\n")
	}

	var acts []Activity
	for _, line := range lines {
		if a, ok := activityFromLine(line); ok {
			acts = append(acts, a)
		}
	}
	return acts
}
