package server

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/schoolware/timetab/schedule"
)

// ExtractResult is the unified response for a successful extraction,
// shared by the HTTP and MCP surfaces.
type ExtractResult struct {
	Success          bool        `json:"success"`
	ExtractionType   string      `json:"extractionType"`
	FileType         string      `json:"fileType"`
	Data             *ResultData `json:"data"`
	ProcessedAt      string      `json:"processedAt"`
	OriginalFileName string      `json:"originalFileName"`
	FileSize         int64       `json:"fileSize"`
}

// ResultData carries the parsed record plus a display-oriented view so
// clients can render without re-deriving structure.
type ResultData struct {
	DocumentInfo DocumentInfo      `json:"documentInfo"`
	Schedule     schedule.Schedule `json:"schedule"`
	UI           UIView            `json:"ui"`
	Metadata     ResultMetadata    `json:"metadata"`
}

// DocumentInfo flattens document type and school header fields.
type DocumentInfo struct {
	Type    string `json:"type"`
	School  string `json:"school"`
	Class   string `json:"class"`
	Term    string `json:"term"`
	Teacher string `json:"teacher"`
	Week    int    `json:"week"`
}

// UIView is the render-ready projection of a schedule.
type UIView struct {
	DisplayTitle string    `json:"displayTitle"`
	Subtitle     string    `json:"subtitle"`
	Teacher      string    `json:"teacher"`
	ScheduleGrid []GridDay `json:"scheduleGrid"`
	Summary      Summary   `json:"summary"`
}

// GridDay is one day of the schedule grid: sessions for timetables,
// activities for daily schedules. Exactly one of the two lists is set.
type GridDay struct {
	Day        string              `json:"day"`
	Sessions   []schedule.Session  `json:"sessions,omitempty"`
	Activities []schedule.Activity `json:"activities,omitempty"`
}

// Summary aggregates the parsed schedule for display.
type Summary struct {
	TotalSessions int      `json:"totalSessions"`
	Subjects      []string `json:"subjects"`
	Days          []string `json:"days"`
	TimeSlots     []string `json:"timeSlots"`
	TimeRange     string   `json:"timeRange"`
}

// ResultMetadata carries processing details about the extraction itself.
type ResultMetadata struct {
	ExtractionID string `json:"extractionId"`
	NeedsOCR     bool   `json:"needsOcr"`
}

// buildExtractResult assembles the unified response from a parsed record.
func buildExtractResult(rec *schedule.ScheduleRecord, extractionID, fileName, fileType string, fileSize int64, needsOCR bool) *ExtractResult {
	return &ExtractResult{
		Success:        true,
		ExtractionType: "timetable",
		FileType:       fileType,
		Data: &ResultData{
			DocumentInfo: DocumentInfo{
				Type:    string(rec.DocumentType),
				School:  rec.SchoolInfo.Name,
				Class:   rec.SchoolInfo.Class,
				Term:    rec.SchoolInfo.Term,
				Teacher: rec.SchoolInfo.Teacher,
				Week:    rec.SchoolInfo.Week,
			},
			Schedule: rec.Schedule,
			UI:       buildUIView(rec),
			Metadata: ResultMetadata{
				ExtractionID: extractionID,
				NeedsOCR:     needsOCR,
			},
		},
		ProcessedAt:      time.Now().UTC().Format(time.RFC3339),
		OriginalFileName: fileName,
		FileSize:         fileSize,
	}
}

func buildUIView(rec *schedule.ScheduleRecord) UIView {
	return UIView{
		DisplayTitle: displayTitle(rec.SchoolInfo),
		Subtitle:     subtitle(rec.SchoolInfo),
		Teacher:      rec.SchoolInfo.Teacher,
		ScheduleGrid: buildGrid(rec),
		Summary: Summary{
			TotalSessions: rec.Metadata.TotalSessions,
			Subjects:      rec.Metadata.Subjects,
			Days:          rec.Metadata.Days,
			TimeSlots:     rec.Metadata.TimeSlots,
			TimeRange:     timeRange(rec.Metadata.TimeSlots),
		},
	}
}

func displayTitle(info schedule.SchoolInfo) string {
	switch {
	case info.Name != "" && info.Class != "":
		return info.Name + " - " + info.Class
	case info.Name != "":
		return info.Name
	case info.Class != "":
		return "Class " + info.Class
	default:
		return "Timetable"
	}
}

func subtitle(info schedule.SchoolInfo) string {
	var parts []string
	if info.Term != "" {
		parts = append(parts, info.Term)
	}
	if info.Week > 0 {
		parts = append(parts, fmt.Sprintf("Week %d", info.Week))
	}
	return strings.Join(parts, " ")
}

// gridDayOrder fixes the daily grid ordering; the engine's day map has
// no stable iteration order. The "general" bucket sorts last.
var gridDayOrder = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "general"}

// buildGrid groups the schedule per day. Daily schedules carry
// activities; every other type groups its sessions by day.
func buildGrid(rec *schedule.ScheduleRecord) []GridDay {
	grid := []GridDay{}
	if rec.Schedule.Type == schedule.TypeDailySchedule {
		for _, day := range gridDayOrder {
			if acts, ok := rec.Schedule.Daily[day]; ok {
				grid = append(grid, GridDay{Day: day, Activities: acts})
			}
		}
		return grid
	}

	index := map[string]int{}
	for _, sess := range rec.Schedule.Sessions {
		i, ok := index[sess.Day]
		if !ok {
			i = len(grid)
			index[sess.Day] = i
			grid = append(grid, GridDay{Day: sess.Day})
		}
		grid[i].Sessions = append(grid[i].Sessions, sess)
	}
	return grid
}

var slotTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// timeRange reports the span from the earliest start to the latest end
// across all time slots, like "9:30 - 3:00". Empty when no slots parse.
func timeRange(slots []string) string {
	first, last := -1, -1
	for _, slot := range slots {
		for _, m := range slotTimeRe.FindAllStringSubmatch(slot, -1) {
			h, _ := strconv.Atoi(m[1])
			min, _ := strconv.Atoi(m[2])
			v := h*60 + min
			if first == -1 || v < first {
				first = v
			}
			if last == -1 || v > last {
				last = v
			}
		}
	}
	if first == -1 {
		return ""
	}
	return fmt.Sprintf("%d:%02d - %d:%02d", first/60, first%60, last/60, last%60)
}
