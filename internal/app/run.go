package app

import (
	"context"
	"fmt"

	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/devserver"
	"github.com/vk/plugkit/internal/hooks"
)

// Run boots the plugin, fires the host lifecycle events, and (when a serve
// address is configured) blocks serving the plugin's public directory until
// the context is cancelled.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.plugin.Boot(ctx); err != nil {
		return fmt.Errorf("failed to boot plugin: %w", err)
	}
	a.logger.Info("Plugin booted.",
		"slug", a.model.Slug,
		"version", a.model.Version,
		"components", a.plugin.Components().Identifiers(),
	)

	// Stand in for the host platform: fire the lifecycle events the
	// components registered against during boot.
	bus := a.plugin.Hooks()
	if err := bus.DoAction(ctx, hooks.EventInit); err != nil {
		return fmt.Errorf("init event failed: %w", err)
	}
	if err := bus.DoAction(ctx, hooks.EventEnqueueScripts); err != nil {
		return fmt.Errorf("enqueue_scripts event failed: %w", err)
	}
	a.logger.Debug("Lifecycle events dispatched.")

	if appConfig.ServeAddr == "" {
		a.logger.Debug("App.Run method finished.")
		return nil
	}

	server := devserver.New(appConfig.ServeAddr, a.plugin)
	server.Start(ctx)
	<-ctx.Done()
	return server.Close(context.WithoutCancel(ctx))
}
