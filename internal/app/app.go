package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/plugkit/internal/config"
	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/plugin"
	"github.com/vk/plugkit/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	model  *config.Model
	plugin *plugin.Plugin
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a constructed
// (but not yet booted) plugin. A nil factories map selects the built-in
// component set.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, factories map[string]registry.Factory) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	if factories == nil {
		factories = CoreFactories()
	}

	plg, err := plugin.New(ctx, model, factories)
	if err != nil {
		// Unknown component identifiers are a mismatch between config and
		// compiled code, so we panic.
		panic(err)
	}
	logger.Debug("Plugin container constructed.", "slug", model.Slug)

	return &App{
		outW:   outW,
		logger: logger,
		model:  model,
		plugin: plg,
	}
}

// Plugin returns the application's plugin container. This is primarily for testing.
func (a *App) Plugin() *plugin.Plugin {
	return a.plugin
}
