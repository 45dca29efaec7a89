// Package editor wires the block editor's frontend bundle into the host.
package editor

import (
	"context"

	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/hooks"
	"github.com/vk/plugkit/internal/registry"
)

// Identifier is the registry identifier for this component.
const Identifier = "editor"

// Component enqueues the editor's script and stylesheet, resolved through
// the asset manifest so the host always references the hashed builds.
type Component struct {
	scripts []string
	styles  []string
}

// New constructs the component. It is the registry factory for Identifier.
func New() registry.Component {
	return &Component{}
}

// Boot registers the enqueue callback; no asset is resolved until the host
// fires the enqueue event.
func (c *Component) Boot(ctx context.Context, host registry.Host) error {
	host.Hooks().AddAction(hooks.EventEnqueueScripts, hooks.DefaultPriority, func(ctx context.Context, args ...any) error {
		c.scripts = append(c.scripts, host.Assets().Resolve(ctx, "js/editor.js"))
		c.styles = append(c.styles, host.Assets().Resolve(ctx, "css/editor.css"))
		ctxlog.FromContext(ctx).Debug("Editor assets enqueued.", "scripts", c.scripts, "styles", c.styles)
		return nil
	})
	return nil
}

// Scripts returns the script URLs enqueued so far.
func (c *Component) Scripts() []string {
	return c.scripts
}

// Styles returns the stylesheet URLs enqueued so far.
func (c *Component) Styles() []string {
	return c.styles
}
