package app

import "go.trai.ch/compdb/internal/core/ports"

// Components bundles the wired application units handed to main.
type Components struct {
	App    *App
	Logger ports.Logger
}

// NewComponents creates the component bundle.
func NewComponents(a *App, logger ports.Logger) *Components {
	return &Components{
		App:    a,
		Logger: logger,
	}
}
