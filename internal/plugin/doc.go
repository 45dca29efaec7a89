// Package plugin provides the bootstrap container for a single plugin
// instance: the component registry, the lifecycle hook bus, the asset
// resolver, and the path/URI helpers that components and the host use to
// locate plugin files.
//
// A Plugin is an explicit context object. All state that the original
// host-platform idiom would keep in process-wide globals (the manifest
// cache, the component map) lives on the instance instead.
package plugin
