// Package docpipe extracts plain text from uploaded schedule documents.
//
// Supported formats:
//   - .docx: Microsoft Word (archive/zip, word/document.xml)
//   - .pdf:  PDF text extraction (pdfcpu content streams)
//   - .md:   Markdown (heading markers stripped)
//   - .txt:  plain text (line passthrough)
//   - .html: HTML (visible text only)
//
// Output preserves line structure because the downstream parser
// segments daily schedules by line.
//
// Usage:
//
//	pipe := docpipe.New(docpipe.Config{})
//	doc, err := pipe.Extract(ctx, "/path/to/timetable.docx")
package docpipe

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoolware/timetab/schedule"
)

// Pipeline is the document extraction engine.
type Pipeline struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Pipeline with the given configuration.
func New(cfg Config) *Pipeline {
	cfg.defaults()
	return &Pipeline{
		cfg:    cfg,
		logger: cfg.Logger,
	}
}

// Detect returns the document format based on file extension.
// Image files are rejected explicitly: scanned pages go through an
// external OCR service, not this pipeline.
func Detect(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".docx":
		return FormatDocx, nil
	case ".pdf":
		return FormatPDF, nil
	case ".md", ".markdown":
		return FormatMD, nil
	case ".txt", ".text":
		return FormatTXT, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp":
		return "", fmt.Errorf("image format %q requires OCR, which this pipeline does not perform", ext)
	default:
		return "", fmt.Errorf("unsupported format: %q", ext)
	}
}

// Extract parses a document and returns its text plus ordered line
// tokens.
func (p *Pipeline) Extract(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > p.cfg.MaxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), p.cfg.MaxFileSize)
	}

	format, err := Detect(path)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("extracting document", "path", path, "format", format)

	var lines []string
	var quality *Quality

	switch format {
	case FormatDocx:
		lines, err = extractDocx(path)
	case FormatPDF:
		lines, quality, err = extractPDF(path)
	case FormatMD:
		lines, err = extractMarkdown(path)
	case FormatTXT:
		lines, err = extractText(path)
	case FormatHTML:
		lines, err = extractHTMLFile(path)
	default:
		return nil, fmt.Errorf("no parser for format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s (%s): %w", path, format, err)
	}

	tokens := make([]schedule.Token, 0, len(lines))
	for _, line := range lines {
		tokens = append(tokens, schedule.Token{Text: line})
	}

	return &Document{
		Path:    path,
		Format:  format,
		Text:    strings.Join(lines, "\n"),
		Lines:   tokens,
		Quality: quality,
	}, nil
}

// SupportedFormats returns all supported format extensions.
func SupportedFormats() []string {
	return []string{"docx", "pdf", "md", "txt", "html"}
}
