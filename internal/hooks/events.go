package hooks

// Lifecycle event names mirrored from the host platform.
const (
	// EventInit fires once the host finished loading, before any output.
	// Translation catalogs and block registrations belong here.
	EventInit = "init"
	// EventEnqueueScripts fires when the host collects scripts and styles
	// for the current page.
	EventEnqueueScripts = "enqueue_scripts"
)
