package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/plugkit/internal/config"
	"github.com/vk/plugkit/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// fileSchema is the HCL-specific shape of a plugin configuration file.
type fileSchema struct {
	Plugin *pluginSchema `hcl:"plugin,block"`
}

type pluginSchema struct {
	Slug         string            `hcl:"slug,label"`
	Version      string            `hcl:"version,optional"`
	BaseURI      string            `hcl:"base_uri"`
	Root         string            `hcl:"root,optional"`
	TextDomain   string            `hcl:"text_domain,optional"`
	LanguagesDir string            `hcl:"languages,optional"`
	Components   []componentSchema `hcl:"component,block"`
}

type componentSchema struct {
	Identifier string `hcl:"identifier,label"`
	Enabled    *bool  `hcl:"enabled,optional"`
}

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load parses a plugin.hcl file into the format-agnostic model. Expressions
// may reference `config_dir`, the absolute directory of the file being
// loaded, e.g. `root = config_dir`.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading plugin configuration.", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	file, diags := l.parser.ParseHCLFile(absPath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"config_dir": cty.StringVal(filepath.Dir(absPath)),
		},
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalCtx, &fs); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}
	if fs.Plugin == nil {
		return nil, fmt.Errorf("%s contains no plugin block", path)
	}

	model := l.translate(fs.Plugin, filepath.Dir(absPath))
	model.ApplyDefaults()
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plugin configuration in %s: %w", path, err)
	}

	logger.Debug("Plugin configuration loaded.", "slug", model.Slug, "components", len(model.Components))
	return model, nil
}

// translate converts the HCL-specific schema into the agnostic model. The
// installation root defaults to the config file's directory; component
// blocks default to enabled.
func (l *Loader) translate(p *pluginSchema, configDir string) *config.Model {
	model := &config.Model{
		Slug:         p.Slug,
		Version:      p.Version,
		BaseURI:      p.BaseURI,
		Root:         p.Root,
		TextDomain:   p.TextDomain,
		LanguagesDir: p.LanguagesDir,
	}
	if model.Root == "" {
		model.Root = configDir
	}

	for _, c := range p.Components {
		enabled := true
		if c.Enabled != nil {
			enabled = *c.Enabled
		}
		model.Components = append(model.Components, config.Component{
			Identifier: c.Identifier,
			Enabled:    enabled,
		})
	}
	return model
}
