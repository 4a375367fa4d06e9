// Package ui provides the GTK4 presentation layer for quadchat.
package ui

import (
	"context"

	"github.com/bnema/quadchat/internal/bootstrap"
	"github.com/bnema/quadchat/internal/domain/entity"
	"github.com/bnema/quadchat/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
type Dependencies struct {
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager // optional, enables hot reload
	Components    *bootstrap.Components
	BridgeScript  string
	// Mode overrides Config.Layout.Mode when set.
	Mode entity.LayoutMode
}

// Validate checks required dependencies.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Components == nil {
		return ErrMissingDependency("Components")
	}
	if d.BridgeScript == "" {
		return ErrMissingDependency("BridgeScript")
	}
	return nil
}

func (d *Dependencies) layoutMode() entity.LayoutMode {
	if d.Mode.Valid() {
		return d.Mode
	}
	return d.Config.Layout.Mode
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}
