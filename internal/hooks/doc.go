// Package hooks provides the in-process action bus that components use to
// defer work to named lifecycle events.
//
// The bus is the plugin-side model of the host platform's hook facility: a
// component registers a callback against an event name during boot, and the
// host (or the app layer standing in for it) fires the event later. Callbacks
// run in ascending priority order; callbacks sharing a priority run in the
// order they were added.
package hooks
