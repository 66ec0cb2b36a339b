package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for yCard resources.
	uriScheme = "ycard://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "record",
		Name:        "record",
		Description: "The stored yCard contact list",
		MIMEType:    "application/json",
	}, s.handleRecordResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "people/{index}",
		Name:        "person",
		Description: "One person from the stored contact list, 1-based",
		MIMEType:    "application/json",
	}, s.handlePersonResource)
}

// handleRecordResource returns the stored document.
func (s *Server) handleRecordResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	record, err := s.load(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}

	return jsonResult(req.Params.URI, string(record.Data)), nil
}

// handlePersonResource returns one stored person.
func (s *Server) handlePersonResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	index := extractPersonIndex(req.Params.URI)
	if index < 1 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	record, err := s.load(ctx, req.Params.URI)
	if err != nil {
		return nil, err
	}
	if index > record.Count() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	data, err := json.MarshalIndent(record.People[index-1], "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling person: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func (s *Server) load(ctx context.Context, uri string) (*domain.PersistedRecord, error) {
	if s.ports.Records == nil {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	record, err := s.ports.Records.Load(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(uri)
	}
	if err != nil {
		return nil, fmt.Errorf("loading record: %w", err)
	}
	return record, nil
}

func jsonResult(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractPersonIndex extracts the index from a URI like ycard://people/{index}.
// It returns zero when the URI does not match.
func extractPersonIndex(uri string) int {
	const prefix = uriScheme + "people/"

	if !strings.HasPrefix(uri, prefix) {
		return 0
	}
	index, err := strconv.Atoi(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return 0
	}
	return index
}
