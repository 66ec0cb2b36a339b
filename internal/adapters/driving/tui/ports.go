// Package tui provides the interactive terminal editor for yCard documents.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Sessions opens the editor session that owns the activity log and baseline.
	Sessions driving.SessionFactory

	// Settings persists the theme choice. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(sessions driving.SessionFactory, settings driving.SettingsService) *Ports {
	return &Ports{
		Sessions: sessions,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Sessions == nil {
		return ErrMissingSessionFactory
	}
	return nil
}
