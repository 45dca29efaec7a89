// Package devserver provides the local HTTP server used while developing a
// plugin: it serves the plugin's public directory, exposes the asset
// resolver for inspection, and answers health checks.
package devserver
