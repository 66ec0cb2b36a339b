package mcp

import (
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions opens a session per tool call.
	Sessions driving.SessionFactory

	// Records reads the stored record. Optional; resources report not found without it.
	Records driving.RecordService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Sessions == nil {
		return ErrMissingSessionFactory
	}
	return nil
}
