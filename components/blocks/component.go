// Package blocks registers the plugin's block patterns with the host.
package blocks

import (
	"context"
	"fmt"

	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/vk/plugkit/internal/hooks"
	"github.com/vk/plugkit/internal/registry"
)

// Identifier is the registry identifier for this component.
const Identifier = "blocks"

// patternNames are the block patterns this plugin ships. Pattern names get
// namespaced with the plugin's text domain at registration time.
var patternNames = []string{"hero", "call-to-action", "testimonial"}

// Component registers block patterns on the host's init event.
type Component struct {
	registered []string
}

// New constructs the component. It is the registry factory for Identifier.
func New() registry.Component {
	return &Component{}
}

// Boot defers pattern registration to the init event, matching the host's
// requirement that block types register no earlier than init.
func (c *Component) Boot(ctx context.Context, host registry.Host) error {
	host.Hooks().AddAction(hooks.EventInit, hooks.DefaultPriority, func(ctx context.Context, args ...any) error {
		for _, name := range patternNames {
			c.registered = append(c.registered, fmt.Sprintf("%s/%s", host.TextDomain(), name))
		}
		ctxlog.FromContext(ctx).Debug("Block patterns registered.", "patterns", c.registered)
		return nil
	})
	return nil
}

// Registered returns the namespaced pattern names registered so far.
func (c *Component) Registered() []string {
	return c.registered
}
