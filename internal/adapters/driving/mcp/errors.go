// Package mcp provides an MCP (Model Context Protocol) server adapter for yCard.
// It lets AI assistants validate, compare and store contact lists.
package mcp

import "errors"

// ErrMissingSessionFactory is returned when the session factory is not provided.
var ErrMissingSessionFactory = errors.New("mcp: session factory is required")
