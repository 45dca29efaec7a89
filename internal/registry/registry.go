package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/plugkit/internal/ctxlog"
)

// ErrNotRegistered is returned by Get for identifiers that were never
// registered. Hitting it is a programmer error: callers are expected to only
// request components they previously registered.
var ErrNotRegistered = errors.New("component not registered")

// Registry holds the component singletons for a single plugin instance.
type Registry struct {
	factories  map[string]Factory
	components map[string]Component
	order      []string
}

// New creates a Registry over the given closed factory set.
func New(factories map[string]Factory) *Registry {
	return &Registry{
		factories:  factories,
		components: make(map[string]Component),
	}
}

// AddFactory extends the factory set with another constructor. Duplicate
// factory identifiers indicate miswired compile-time setup.
func (r *Registry) AddFactory(identifier string, factory Factory) {
	if _, exists := r.factories[identifier]; exists {
		panic(fmt.Sprintf("component factory '%s' already registered", identifier))
	}
	r.factories[identifier] = factory
}

// Register constructs the component for identifier and stores it as the
// singleton instance, overwriting any previous one. The overwritten entry
// keeps its original position in the boot order.
func (r *Registry) Register(ctx context.Context, identifier string) error {
	factory, ok := r.factories[identifier]
	if !ok {
		return fmt.Errorf("no factory for component '%s'", identifier)
	}

	ctxlog.FromContext(ctx).Debug("Registering component.", "component", identifier)
	if _, exists := r.components[identifier]; !exists {
		r.order = append(r.order, identifier)
	}
	r.components[identifier] = factory()
	return nil
}

// Get returns the registered singleton for identifier.
func (r *Registry) Get(identifier string) (Component, error) {
	component, ok := r.components[identifier]
	if !ok {
		return nil, fmt.Errorf("component '%s': %w", identifier, ErrNotRegistered)
	}
	return component, nil
}

// BootAll boots every registered component in registration order. The first
// boot failure stops the sequence and is returned wrapped with the
// component's identifier.
func (r *Registry) BootAll(ctx context.Context, host Host) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Booting components.", "count", len(r.order))

	for _, identifier := range r.order {
		bootCtx := ctxlog.With(ctx, "component", identifier)
		if err := r.components[identifier].Boot(bootCtx, host); err != nil {
			return fmt.Errorf("failed to boot component '%s': %w", identifier, err)
		}
	}
	return nil
}

// Identifiers returns the registered identifiers in registration order.
func (r *Registry) Identifiers() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
