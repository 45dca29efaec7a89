// Package assets resolves relative asset paths into fully qualified,
// cache-busted URLs using the manifest emitted by the frontend build tool.
//
// The manifest is a flat JSON object mapping a source path to its hashed
// output path (e.g. "/js/app.js" -> "/js/app.abc123.js"). It is read from
// disk at most once per Resolver, on the first Resolve call; a missing or
// unparsable manifest degrades the resolver to passthrough behavior.
package assets
