package schedule

import (
	"regexp"
	"strings"
)

// Pattern tables are compiled once at init and shared process-wide.
// Order matters: extractors try patterns top to bottom and more
// specific forms must win over their substrings (a range match must
// beat the single-time match embedded in it).

var timePatterns = []struct {
	re      *regexp.Regexp
	isRange bool
}{
	{regexp.MustCompile(`(\d{1,2}):(\d{2})\s*[-\x{2013}]\s*(\d{1,2}):(\d{2})`), true},
	{regexp.MustCompile(`(\d{1,2})\.(\d{2})\s*[-\x{2013}]\s*(\d{1,2})\.(\d{2})`), true},
	{regexp.MustCompile(`(\d{1,2}):(\d{2})`), false},
	{regexp.MustCompile(`(\d{1,2})\.(\d{2})`), false},
}

var dayPatterns = []struct {
	re   *regexp.Regexp
	name string
}{
	{regexp.MustCompile(`(?i)monday|mon\b`), "Monday"},
	{regexp.MustCompile(`(?i)tuesday|tue\b`), "Tuesday"},
	{regexp.MustCompile(`(?i)wednesday|wed\b`), "Wednesday"},
	{regexp.MustCompile(`(?i)thursday|thu\b`), "Thursday"},
	{regexp.MustCompile(`(?i)friday|fri\b`), "Friday"},
	{regexp.MustCompile(`(?i)saturday|sat\b`), "Saturday"},
	{regexp.MustCompile(`(?i)sunday|sun\b`), "Sunday"},
}

var subjectPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)maths?|mathematics`),
	regexp.MustCompile(`(?i)english`),
	regexp.MustCompile(`(?i)science`),
	regexp.MustCompile(`(?i)history`),
	regexp.MustCompile(`(?i)geography`),
	regexp.MustCompile(`(?i)art`),
	regexp.MustCompile(`(?i)music`),
	regexp.MustCompile(`(?i)\bpe\b|physical education`),
	regexp.MustCompile(`(?i)computing`),
	regexp.MustCompile(`(?i)assembly`),
	regexp.MustCompile(`(?i)break|recess`),
	regexp.MustCompile(`(?i)lunch`),
	regexp.MustCompile(`(?i)handwriting`),
	regexp.MustCompile(`(?i)phonics`),
	regexp.MustCompile(`(?i)reading`),
	regexp.MustCompile(`(?i)spelling`),
	regexp.MustCompile(`(?i)vocabulary`),
}

// capitalizedWordRe feeds the heuristic subject scan: a standalone
// capitalized word longer than two letters is assumed to be a subject
// unless it is a known structural word.
var capitalizedWordRe = regexp.MustCompile(`^[A-Z][a-z]+$`)

var structuralWords = map[string]struct{}{
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {}, "Friday": {},
	"Class": {}, "Term": {}, "Teacher": {},
}

// ExtractTimeSlots returns every time expression in text, normalized to
// "H:MM" or "H:MM - H:MM" regardless of the source separator (colon or
// dot, hyphen or en dash, any spacing). Duplicates collapse to the
// first occurrence.
func ExtractTimeSlots(text string) []string {
	slots := []string{}
	for _, p := range timePatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			if p.isRange {
				slots = append(slots, m[1]+":"+m[2]+" - "+m[3]+":"+m[4])
			} else {
				slots = append(slots, m[1]+":"+m[2])
			}
		}
	}
	return dedupe(slots)
}

// ExtractDays returns the canonical names of the weekdays mentioned in
// text, in Monday-to-Sunday order, each at most once.
func ExtractDays(text string) []string {
	days := []string{}
	for _, p := range dayPatterns {
		if p.re.MatchString(text) {
			days = append(days, p.name)
		}
	}
	return days
}

// ExtractSubjects returns the subjects recognized in text: first the
// catalog patterns (each contributing its first match in the source
// casing), then the capitalized-word heuristic over whitespace-split
// words. The result is deduplicated keeping first occurrences.
func ExtractSubjects(text string) []string {
	subjects := []string{}
	for _, re := range subjectPatterns {
		if m := re.FindString(text); m != "" {
			subjects = append(subjects, m)
		}
	}
	for _, word := range strings.Fields(text) {
		if len(word) <= 2 || !capitalizedWordRe.MatchString(word) {
			continue
		}
		if _, ok := structuralWords[word]; ok {
			continue
		}
		subjects = append(subjects, word)
	}
	return dedupe(subjects)
}

// dedupe removes duplicates by case- and whitespace-normalized
// identity, keeping the first occurrence's original form. Blank entries
// are dropped.
func dedupe(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		key := strings.ToLower(strings.TrimSpace(it))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, it)
	}
	return out
}
