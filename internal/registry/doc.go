// Package registry provides the central "glue" for the component system.
//
// The Registry maps component identifiers (e.g. "editor") to singleton
// component instances. Construction goes through a closed set of factories
// wired at compile time, so an identifier either corresponds to a known
// first-party component or registration fails; there is no dynamic
// instantiation by name.
//
// Components stay inert after construction until BootAll runs, which gives
// every instance the chance to attach its behavior to the host's lifecycle
// events in registration order.
package registry
