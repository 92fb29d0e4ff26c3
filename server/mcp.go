package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/schoolware/timetab/docpipe"
	"github.com/schoolware/timetab/idgen"
	"github.com/schoolware/timetab/kit"
	"github.com/schoolware/timetab/schedule"
	"github.com/schoolware/timetab/store"
)

// RegisterMCP registers the timetable tools on an MCP server. Tool
// results use the same shapes as the HTTP endpoints.
func (s *Server) RegisterMCP(srv *mcp.Server) {
	s.registerExtractTool(srv)
	s.registerParseTool(srv)
	s.registerFormatsTool(srv)
}

// toolLogging tags each tool call with a request ID and logs the
// outcome. Applied to every registered endpoint.
func (s *Server) toolLogging(tool string) kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			ctx = kit.WithRequestID(ctx, idgen.New())
			resp, err := next(ctx, req)
			if err != nil {
				s.logger.Warn("tool call failed",
					"tool", tool,
					"transport", kit.GetTransport(ctx),
					"request_id", kit.GetRequestID(ctx),
					"error", err)
				return nil, err
			}
			s.logger.Debug("tool call",
				"tool", tool,
				"transport", kit.GetTransport(ctx),
				"request_id", kit.GetRequestID(ctx))
			return resp, nil
		}
	}
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	sc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		sc["required"] = required
	}
	return sc
}

// --- extract ---

type mcpExtractReq struct {
	Path string `json:"path"`
}

func (s *Server) registerExtractTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "timetable_extract",
		Description: "Extract a school timetable from a document file (docx, pdf, md, txt, html).",
		InputSchema: inputSchema(map[string]any{
			"path": map[string]any{"type": "string", "description": "File path to extract"},
		}, []string{"path"}),
	}

	endpoint := func(ctx context.Context, req any) (any, error) {
		r := req.(*mcpExtractReq)

		info, err := os.Stat(r.Path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", r.Path, err)
		}

		doc, err := s.pipe.Extract(ctx, r.Path)
		if err != nil {
			return nil, err
		}

		rec := schedule.Parse(doc.Text, nil, doc.Lines)
		needsOCR := doc.Quality != nil && doc.Quality.NeedsOCR()

		e := &store.Extraction{
			FileName:      filepath.Base(r.Path),
			FileType:      string(doc.Format),
			DocumentType:  string(rec.DocumentType),
			TotalSessions: rec.Metadata.TotalSessions,
			NeedsOCR:      needsOCR,
			Record:        rec,
		}
		if err := s.store.Insert(ctx, e); err != nil {
			return nil, err
		}

		return buildExtractResult(rec, e.ID, e.FileName, e.FileType, info.Size(), needsOCR), nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r mcpExtractReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		if r.Path == "" {
			return nil, fmt.Errorf("path is required")
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(s.toolLogging(tool.Name))(endpoint), decode)
}

// --- parse ---

type mcpParseReq struct {
	Text string `json:"text"`
}

func (s *Server) registerParseTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "timetable_parse",
		Description: "Parse raw schedule text into a structured timetable record.",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Raw schedule text"},
		}, []string{"text"}),
	}

	endpoint := func(_ context.Context, req any) (any, error) {
		r := req.(*mcpParseReq)
		return schedule.Parse(r.Text, nil, nil), nil
	}

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r mcpParseReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(s.toolLogging(tool.Name))(endpoint), decode)
}

// --- formats ---

func (s *Server) registerFormatsTool(srv *mcp.Server) {
	tool := &mcp.Tool{
		Name:        "timetable_formats",
		Description: "List all supported document formats.",
		InputSchema: inputSchema(map[string]any{}, nil),
	}

	endpoint := func(_ context.Context, _ any) (any, error) {
		return map[string]any{"formats": docpipe.SupportedFormats()}, nil
	}

	decode := func(_ *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		return &kit.MCPDecodeResult{Request: nil}, nil
	}

	kit.RegisterMCPTool(srv, tool, kit.Chain(s.toolLogging(tool.Name))(endpoint), decode)
}
