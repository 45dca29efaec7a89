package app

import (
	"github.com/vk/plugkit/components/blocks"
	"github.com/vk/plugkit/components/editor"
	i18ncomp "github.com/vk/plugkit/components/i18n"
	"github.com/vk/plugkit/internal/registry"
)

// coreFactories is the definitive set of components that are compiled into
// the plugkit binary, keyed by the identifier used in plugin.hcl.
var coreFactories = map[string]registry.Factory{
	editor.Identifier:   editor.New,
	blocks.Identifier:   blocks.New,
	i18ncomp.Identifier: i18ncomp.New,
}

// CoreFactories returns a copy of the built-in factory set, so callers can
// extend it without mutating the shared map.
func CoreFactories() map[string]registry.Factory {
	out := make(map[string]registry.Factory, len(coreFactories))
	for id, f := range coreFactories {
		out[id] = f
	}
	return out
}
