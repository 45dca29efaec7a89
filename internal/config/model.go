package config

import (
	"errors"
	"fmt"
	"strings"
)

// Model is the unified representation of a plugin's configuration.
type Model struct {
	// Slug is the plugin identifier, also used as the default text domain.
	Slug string
	// Version is the plugin version string (informational).
	Version string
	// BaseURI is the public base URI of the installed plugin.
	BaseURI string
	// Root is the absolute installation directory on disk.
	Root string
	// TextDomain identifies the translation catalogs.
	TextDomain string
	// LanguagesDir is the catalog directory name, relative to Root.
	LanguagesDir string
	// Components lists the component blocks in declaration order.
	Components []Component
}

// Component is a single `component` block from the configuration.
type Component struct {
	Identifier string
	Enabled    bool
}

// ApplyDefaults fills the optional fields that derive from others.
func (m *Model) ApplyDefaults() {
	if m.TextDomain == "" {
		m.TextDomain = m.Slug
	}
	if m.LanguagesDir == "" {
		m.LanguagesDir = "languages"
	}
}

// Validate checks the invariants a loaded model must satisfy.
func (m *Model) Validate() error {
	if m.Slug == "" {
		return errors.New("plugin slug must not be empty")
	}
	if m.BaseURI == "" {
		return errors.New("base_uri is a required configuration field and cannot be empty")
	}
	if !strings.Contains(m.BaseURI, "://") {
		return fmt.Errorf("base_uri %q must be an absolute URI", m.BaseURI)
	}
	if m.Root == "" {
		return errors.New("root directory must not be empty")
	}

	seen := make(map[string]bool, len(m.Components))
	for _, c := range m.Components {
		if seen[c.Identifier] {
			return fmt.Errorf("component '%s' declared more than once", c.Identifier)
		}
		seen[c.Identifier] = true
	}
	return nil
}

// EnabledComponents returns the identifiers of enabled components in
// declaration order.
func (m *Model) EnabledComponents() []string {
	var out []string
	for _, c := range m.Components {
		if c.Enabled {
			out = append(out, c.Identifier)
		}
	}
	return out
}
