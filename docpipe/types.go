package docpipe

import "github.com/schoolware/timetab/schedule"

// Format identifies a document type.
type Format string

const (
	FormatDocx Format = "docx"
	FormatPDF  Format = "pdf"
	FormatMD   Format = "md"
	FormatTXT  Format = "txt"
	FormatHTML Format = "html"
)

// Document is the result of extracting content from a file: the full
// text payload plus its ordered lines as tokens, which is the shape the
// parsing engine consumes. Quality is set for PDFs only.
type Document struct {
	Path    string           `json:"path"`
	Format  Format           `json:"format"`
	Text    string           `json:"text"`
	Lines   []schedule.Token `json:"lines"`
	Quality *Quality         `json:"quality,omitempty"`
}
