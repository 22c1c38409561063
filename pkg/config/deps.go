package config

import (
	"log/slog"

	"github.com/amirasaad/minibank/pkg/decorator"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/registry"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Registry *registry.Registry
	EventBus eventbus.Bus
	Auditor  decorator.Auditor
	Logger   *slog.Logger
	Config   *App
}
