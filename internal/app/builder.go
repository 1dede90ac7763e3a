package app

import (
	"go.trai.ch/stake/internal/core/ports"
)

// Components bundles the wired application pieces the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Logger: logger,
	}
}
