// Package tui provides an interactive terminal user interface for
// Collegedex. It implements a driving adapter following hexagonal
// architecture principles.
package tui

import (
	"errors"

	"github.com/collegedex/collegedex-cli/internal/core/ports/driving"
)

// Port validation errors.
var (
	ErrMissingSuggestService = errors.New("tui: suggest service is required")
	ErrMissingFilterService  = errors.New("tui: filter service is required")
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Suggest provides live search suggestions.
	Suggest driving.SuggestService

	// Filter provides synchronized filtering.
	Filter driving.FilterService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Suggest == nil {
		return ErrMissingSuggestService
	}
	if p.Filter == nil {
		return ErrMissingFilterService
	}
	return nil
}
