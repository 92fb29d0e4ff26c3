package docpipe

import (
	"os"
	"strings"
)

// extractText reads a plain text file into trimmed lines. Blank lines
// are dropped; line order is preserved because it carries the schedule
// structure.
func extractText(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(data)), nil
}

// extractMarkdown reads a Markdown file as text lines with ATX heading
// markers stripped, so "# Weekly Timetable" feeds the classifier as
// "Weekly Timetable".
func extractMarkdown(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, line := range splitLines(string(data)) {
		if strings.HasPrefix(line, "#") {
			line = strings.TrimSpace(strings.TrimRight(strings.TrimLeft(line, "#"), "#"))
			if line == "" {
				continue
			}
		}
		out = append(out, line)
	}
	return out, nil
}

// splitLines normalizes line endings and returns trimmed non-empty
// lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
