package plugin

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/plugkit/internal/assets"
	"github.com/vk/plugkit/internal/config"
	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/hooks"
	"github.com/vk/plugkit/internal/registry"
)

// Plugin is the bootstrap container for one plugin installation. It
// implements registry.Host.
type Plugin struct {
	cfg      *config.Model
	bus      *hooks.Bus
	registry *registry.Registry
	resolver *assets.Resolver
}

// New builds a Plugin from its configuration and the closed factory set,
// constructing every enabled component. Component construction is eager;
// behavior registration is deferred until Boot.
func New(ctx context.Context, cfg *config.Model, factories map[string]registry.Factory) (*Plugin, error) {
	p := &Plugin{
		cfg:      cfg,
		bus:      hooks.NewBus(),
		registry: registry.New(factories),
		resolver: assets.NewResolver(cfg.BaseURI, filepath.Join(cfg.Root, "public", assets.ManifestFile)),
	}

	for _, identifier := range cfg.EnabledComponents() {
		if err := p.registry.Register(ctx, identifier); err != nil {
			return nil, fmt.Errorf("failed to construct plugin '%s': %w", cfg.Slug, err)
		}
	}

	ctxlog.FromContext(ctx).Debug("Plugin constructed.",
		"slug", cfg.Slug,
		"version", cfg.Version,
		"components", p.registry.Identifiers(),
	)
	return p, nil
}

// Boot runs every registered component's Boot in registration order, letting
// each attach its behavior to the hook bus.
func (p *Plugin) Boot(ctx context.Context) error {
	return p.registry.BootAll(ctx, p)
}

// Slug returns the plugin identifier.
func (p *Plugin) Slug() string {
	return p.cfg.Slug
}

// Version returns the plugin version string.
func (p *Plugin) Version() string {
	return p.cfg.Version
}

// Components returns the plugin's component registry.
func (p *Plugin) Components() *registry.Registry {
	return p.registry
}

// Hooks implements registry.Host.
func (p *Plugin) Hooks() *hooks.Bus {
	return p.bus
}

// Assets implements registry.Host.
func (p *Plugin) Assets() *assets.Resolver {
	return p.resolver
}

// TextDomain implements registry.Host.
func (p *Plugin) TextDomain() string {
	return p.cfg.TextDomain
}

// LanguagesDir implements registry.Host.
func (p *Plugin) LanguagesDir() string {
	return p.cfg.LanguagesDir
}

// Path returns the installation-root absolute path, optionally joined with a
// relative file argument. Leading slashes on the argument are stripped
// before joining.
func (p *Plugin) Path(file ...string) string {
	if len(file) == 0 || file[0] == "" {
		return p.cfg.Root
	}
	return filepath.Join(p.cfg.Root, strings.TrimLeft(file[0], "/"))
}

// URI returns the public base URI, optionally joined with a relative file
// argument. Leading slashes on the argument are stripped before joining.
func (p *Plugin) URI(file ...string) string {
	base := strings.TrimRight(p.cfg.BaseURI, "/")
	if len(file) == 0 || file[0] == "" {
		return base
	}
	return base + "/" + strings.TrimLeft(file[0], "/")
}

// Asset resolves a relative asset path to its fully qualified, cache-busted
// URL via the build manifest.
func (p *Plugin) Asset(ctx context.Context, relativePath string) string {
	return p.resolver.Resolve(ctx, relativePath)
}
