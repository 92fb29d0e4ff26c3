package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoolware/timetab/docpipe"
	"github.com/schoolware/timetab/idgen"
	"github.com/schoolware/timetab/safeio"
	"github.com/schoolware/timetab/schedule"
	"github.com/schoolware/timetab/store"
)

// handleExtract accepts a multipart upload in the "document" field,
// runs it through the pipeline and the parsing engine, records the
// result, and responds with the unified extraction shape.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// 1 MB of headroom for multipart framing on top of the file limit.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes()+1024*1024)

	file, header, err := r.FormFile("document")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded",
			fmt.Errorf("multipart field %q is required: %w", "document", err))
		return
	}
	defer file.Close()

	if header.Size > s.cfg.MaxUploadBytes() {
		writeError(w, http.StatusBadRequest, "file too large",
			fmt.Errorf("%d bytes exceeds the %d MB limit", header.Size, s.cfg.MaxUploadMB))
		return
	}

	format, err := docpipe.Detect(header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported file type", err)
		return
	}

	path, err := s.stageUpload(file, filepath.Ext(header.Filename))
	if err != nil {
		s.logger.Error("stage upload", "file", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "upload failed", err)
		return
	}
	defer os.Remove(path)

	doc, err := s.pipe.Extract(r.Context(), path)
	if err != nil {
		s.logger.Error("extract document", "file", header.Filename, "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "extraction failed", err)
		return
	}

	rec := schedule.Parse(doc.Text, nil, doc.Lines)
	needsOCR := doc.Quality != nil && doc.Quality.NeedsOCR()

	e := &store.Extraction{
		FileName:      header.Filename,
		FileType:      string(doc.Format),
		DocumentType:  string(rec.DocumentType),
		TotalSessions: rec.Metadata.TotalSessions,
		NeedsOCR:      needsOCR,
		Record:        rec,
	}
	if err := s.store.Insert(r.Context(), e); err != nil {
		s.logger.Error("store extraction", "file", header.Filename, "error", err)
		writeError(w, http.StatusInternalServerError, "storage failed", err)
		return
	}

	s.logger.Info("extraction complete",
		"file", header.Filename,
		"format", doc.Format,
		"document_type", rec.DocumentType,
		"sessions", rec.Metadata.TotalSessions,
		"needs_ocr", needsOCR,
		"id", e.ID)

	writeJSON(w, http.StatusOK, buildExtractResult(rec, e.ID, header.Filename, string(doc.Format), header.Size, needsOCR))
}

// stageUpload writes the upload to the uploads directory under a
// generated name. The client filename is never used on disk.
func (s *Server) stageUpload(src io.Reader, ext string) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := idgen.New() + strings.ToLower(ext)
	path, err := safeio.SafePath(s.cfg.UploadsDir, name)
	if err != nil {
		return "", err
	}

	data, err := safeio.LimitedReadAll(src, s.cfg.MaxUploadBytes())
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write staging file: %w", err)
	}
	return path, nil
}
