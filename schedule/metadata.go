package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	schoolNameRe = regexp.MustCompile(`(?i)([A-Za-z\s]+(?:School|Academy|College))`)
	classRe      = regexp.MustCompile(`(?i)Class:\s*([A-Za-z0-9]+)`)
	termRe       = regexp.MustCompile(`(?i)Term:\s*([A-Za-z0-9\s]+?)(?:\s+Teacher|$)`)
	weekRe       = regexp.MustCompile(`(?i)Week:\s*(\d+)`)

	// The trailing guard stops the teacher name before a two-letter
	// all-caps token (initials, room codes). The label is matched
	// case-insensitively but the guard is not, so "Miss Smith" is not
	// truncated at the "Sm" of its surname. The name never spans lines.
	teacherRe = regexp.MustCompile(`(?i:Teacher:)[ \t]*([A-Za-z .]+?)(?:\s+[A-Z]{2}|[\r\n]|$)`)
)

// ExtractSchoolInfo pulls institution-level fields out of text using
// labeled-field patterns. Missing labels leave their field zero; the
// call never fails.
func ExtractSchoolInfo(text string) SchoolInfo {
	var info SchoolInfo

	if m := schoolNameRe.FindStringSubmatch(text); m != nil {
		// OCR commonly splits a letterhead across lines; collapse any
		// internal whitespace runs to single spaces.
		info.Name = strings.Join(strings.Fields(m[1]), " ")
	}
	if m := classRe.FindStringSubmatch(text); m != nil {
		info.Class = strings.TrimSpace(m[1])
	}
	if m := termRe.FindStringSubmatch(text); m != nil {
		info.Term = strings.TrimSpace(m[1])
	}
	if m := teacherRe.FindStringSubmatch(text); m != nil {
		info.Teacher = strings.TrimSpace(m[1])
	}
	if m := weekRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			info.Week = n
		}
	}
	return info
}
