package registry

import (
	"context"

	"github.com/vk/plugkit/internal/assets"
	"github.com/vk/plugkit/internal/hooks"
)

// Component is the uniform capability every plugin sub-feature implements.
// Boot is expected to register the component's behavior with the host's
// hook system rather than perform work directly.
type Component interface {
	Boot(ctx context.Context, host Host) error
}

// Factory constructs a component instance with no arguments.
type Factory func() Component

// Host is the surface a component may touch while booting. The plugin
// container implements it; tests substitute lighter stand-ins.
type Host interface {
	// Hooks returns the lifecycle event bus.
	Hooks() *hooks.Bus
	// Assets returns the manifest-backed asset resolver.
	Assets() *assets.Resolver
	// Path joins the installation root with an optional relative file.
	Path(file ...string) string
	// URI joins the public base URI with an optional relative file.
	URI(file ...string) string
	// TextDomain returns the plugin's translation domain identifier.
	TextDomain() string
	// LanguagesDir returns the directory name holding translation catalogs,
	// relative to the installation root.
	LanguagesDir() string
}
