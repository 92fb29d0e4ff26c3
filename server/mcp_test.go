package server_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/schoolware/timetab/dbopen"
	"github.com/schoolware/timetab/server"
	"github.com/schoolware/timetab/shield"
	"github.com/schoolware/timetab/store"
)

var testMCPImpl = &mcp.Implementation{Name: "timetab-test", Version: "0.1.0"}

func mcpSession(t *testing.T) *mcp.ClientSession {
	t.Helper()
	db := dbopen.OpenMemory(t, dbopen.WithSchema(shield.Schema), dbopen.WithSchema(store.DDL))
	cfg := server.DefaultConfig()
	cfg.UploadsDir = t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := mcp.NewServer(testMCPImpl, nil)
	server.New(cfg, store.New(db), logger).RegisterMCP(srv)

	serverT, clientT := mcp.NewInMemoryTransports()
	ctx := context.Background()
	go func() { _ = srv.Run(ctx, serverT) }()

	client := mcp.NewClient(testMCPImpl, nil)
	session, err := client.Connect(ctx, clientT, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func mcpCallTool(t *testing.T, session *mcp.ClientSession, name string, args any) string {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	// IsError is the only error signal visible on the client side;
	// the server-set error detail arrives as text content.
	if result.IsError {
		t.Fatalf("CallTool(%s) tool error: %v", name, result.Content)
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("CallTool(%s): expected TextContent", name)
	}
	return tc.Text
}

func TestMCP_Formats(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "timetable_formats", map[string]any{})

	var resp struct {
		Formats []string `json:"formats"`
	}
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	expected := map[string]bool{"docx": true, "pdf": true, "md": true, "txt": true, "html": true}
	for _, f := range resp.Formats {
		if !expected[f] {
			t.Errorf("unexpected format: %q", f)
		}
		delete(expected, f)
	}
	for f := range expected {
		t.Errorf("missing format: %q", f)
	}
}

func TestMCP_Parse(t *testing.T) {
	session := mcpSession(t)

	text := mcpCallTool(t, session, "timetable_parse", map[string]any{
		"text": "Class: 3B\nTimetable\nMaths 9:30-10:30\nEnglish 10:30-11:00",
	})

	var rec struct {
		DocumentType string `json:"documentType"`
		SchoolInfo   struct {
			Class string `json:"class"`
		} `json:"schoolInfo"`
		Metadata struct {
			TotalSessions int      `json:"totalSessions"`
			Subjects      []string `json:"subjects"`
		} `json:"metadata"`
	}
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.DocumentType != "class_timetable" {
		t.Errorf("documentType = %q", rec.DocumentType)
	}
	if rec.SchoolInfo.Class != "3B" {
		t.Errorf("class = %q", rec.SchoolInfo.Class)
	}
	if rec.Metadata.TotalSessions == 0 {
		t.Error("no sessions synthesized")
	}
}

func TestMCP_Extract(t *testing.T) {
	session := mcpSession(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "timetable.txt")
	os.WriteFile(path, []byte("Oakwood Academy\nClass: 5A\nMaths 9:30-10:30\n"), 0o644)

	text := mcpCallTool(t, session, "timetable_extract", map[string]any{"path": path})

	var res struct {
		Success  bool   `json:"success"`
		FileType string `json:"fileType"`
		Data     struct {
			DocumentInfo struct {
				School string `json:"school"`
				Class  string `json:"class"`
			} `json:"documentInfo"`
			Metadata struct {
				ExtractionID string `json:"extractionId"`
			} `json:"metadata"`
		} `json:"data"`
	}
	if err := json.Unmarshal([]byte(text), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !res.Success || res.FileType != "txt" {
		t.Errorf("envelope = %+v", res)
	}
	if res.Data.DocumentInfo.School != "Oakwood Academy" || res.Data.DocumentInfo.Class != "5A" {
		t.Errorf("documentInfo = %+v", res.Data.DocumentInfo)
	}
	if res.Data.Metadata.ExtractionID == "" {
		t.Error("extraction not recorded")
	}
}

func TestMCP_Extract_MissingPath(t *testing.T) {
	session := mcpSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "timetable_extract",
		Arguments: map[string]any{"path": ""},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for empty path")
	}
	tc, ok := result.Content[0].(*mcp.TextContent)
	if !ok || tc.Text == "" {
		t.Errorf("tool error carries no message: %+v", result.Content)
	}
}
