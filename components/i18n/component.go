// Package i18n defers loading of the plugin's translation catalogs until the
// host's init event, the earliest point the host allows text domains to load.
package i18n

import (
	"context"

	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/hooks"
	"github.com/vk/plugkit/internal/i18n"
	"github.com/vk/plugkit/internal/registry"
)

// Identifier is the registry identifier for this component.
const Identifier = "i18n"

// Component owns the loaded translation catalog for the plugin text domain.
type Component struct {
	catalog *i18n.Catalog
}

// New constructs the component. It is the registry factory for Identifier.
func New() registry.Component {
	return &Component{}
}

// Boot registers the deferred catalog load on the init event.
func (c *Component) Boot(ctx context.Context, host registry.Host) error {
	host.Hooks().AddAction(hooks.EventInit, hooks.DefaultPriority, func(ctx context.Context, args ...any) error {
		catalog, err := i18n.LoadTextDomain(ctx, host.TextDomain(), host.Path(host.LanguagesDir()))
		if err != nil {
			return err
		}
		c.catalog = catalog
		ctxlog.FromContext(ctx).Debug("Text domain loaded.", "domain", host.TextDomain(), "locales", catalog.Locales())
		return nil
	})
	return nil
}

// Catalog returns the loaded catalog, or nil before init has fired.
func (c *Component) Catalog() *i18n.Catalog {
	return c.catalog
}

// T renders a message for a locale. Before the catalog loads, keys pass
// through untranslated so early callers degrade instead of failing.
func (c *Component) T(locale, key string, data map[string]any) string {
	if c.catalog == nil {
		return key
	}
	return c.catalog.T(locale, key, data)
}
