package schedule

import (
	"regexp"
	"strconv"
)

// DefaultDuration is assumed for any activity whose line carries no
// parsable time range.
const DefaultDuration = 60

var (
	spacedRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-\x{2013}]\s*(\d{1,2}):(\d{2})`)
	tightRangeRe  = regexp.MustCompile(`(\d{1,2}):(\d{2})-(\d{1,2}):(\d{2})`)
)

// CalculateDuration extracts a time range from the fragment and
// returns its length in minutes. Ranges that come out non-positive
// (typically a 12-hour clock crossing noon without AM/PM markers) and
// fragments with no range at all yield DefaultDuration.
func CalculateDuration(fragment string) int {
	m := spacedRangeRe.FindStringSubmatch(fragment)
	if m == nil {
		m = tightRangeRe.FindStringSubmatch(fragment)
	}
	if m == nil {
		return DefaultDuration
	}
	start := atoi(m[1])*60 + atoi(m[2])
	end := atoi(m[3])*60 + atoi(m[4])
	if d := end - start; d > 0 {
		return d
	}
	return DefaultDuration
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
