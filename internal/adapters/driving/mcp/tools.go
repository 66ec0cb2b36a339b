package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/custodia-labs/ycard/internal/adapters/driven/editor"
	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
)

// DocumentInput is the input schema for the validate and save tools.
type DocumentInput struct {
	Content string `json:"content" jsonschema:"the YAML contact list"`
}

// DiffInput is the input schema for the diff tool.
type DiffInput struct {
	Original string `json:"original" jsonschema:"the text editing started from"`
	Modified string `json:"modified" jsonschema:"the current text"`
}

// OutcomeOutput is the output schema for the validate and save tools.
type OutcomeOutput struct {
	OK        bool              `json:"ok"`
	Kind      string            `json:"kind"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Count     int               `json:"count,omitempty"`
	Violation *domain.Violation `json:"violation,omitempty"`
}

// DiffOutput is the output schema for the diff tool.
type DiffOutput struct {
	Changed bool   `json:"changed"`
	Message string `json:"message"`
	Diff    string `json:"diff,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_ycard",
		Description: "Check a YAML contact list against the yCard rules and report the first problem",
	}, s.handleValidate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_ycard",
		Description: "Validate a YAML contact list and store it when valid",
	}, s.handleSave)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "diff_ycard",
		Description: "Compare an edited contact list with the text it started from",
	}, s.handleDiff)
}

// handleValidate handles the validate_ycard tool invocation.
func (s *Server) handleValidate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, OutcomeOutput, error) {
	session, _, err := s.open(input.Content)
	if err != nil {
		return nil, OutcomeOutput{}, err
	}
	defer session.Close()

	return nil, toOutput(session.Validate()), nil
}

// handleSave handles the save_ycard tool invocation.
func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DocumentInput,
) (*mcp.CallToolResult, OutcomeOutput, error) {
	session, _, err := s.open(input.Content)
	if err != nil {
		return nil, OutcomeOutput{}, err
	}
	defer session.Close()

	return nil, toOutput(session.Save(ctx)), nil
}

// handleDiff handles the diff_ycard tool invocation.
func (s *Server) handleDiff(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DiffInput,
) (*mcp.CallToolResult, DiffOutput, error) {
	session, buf, err := s.open(input.Original)
	if err != nil {
		return nil, DiffOutput{}, err
	}
	defer session.Close()

	buf.SetValue(input.Modified)
	out := session.Diff()
	if out.Kind != domain.OutcomeChanges || out.Diff == nil {
		return nil, DiffOutput{Message: out.Message}, nil
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(out.Diff.Original),
		B:        difflib.SplitLines(out.Diff.Modified),
		FromFile: "original",
		ToFile:   "modified",
		Context:  3,
	})
	if err != nil {
		return nil, DiffOutput{}, fmt.Errorf("rendering diff: %w", err)
	}

	return nil, DiffOutput{Changed: true, Message: out.Message, Diff: text}, nil
}

// open starts a session mounted on a buffer holding text.
func (s *Server) open(text string) (driving.SessionService, *editor.Buffer, error) {
	session := s.ports.Sessions.NewSession()
	buf := editor.NewBuffer(text)
	if out := session.Mount(buf); !out.OK() {
		return nil, nil, fmt.Errorf("opening session: %s", out.Message)
	}
	return session, buf, nil
}

func toOutput(out domain.Outcome) OutcomeOutput {
	return OutcomeOutput{
		OK:        out.OK(),
		Kind:      string(out.Kind),
		Title:     out.Title,
		Message:   out.Message,
		Count:     out.Count,
		Violation: out.Violation,
	}
}
