package assets

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/tidwall/jsonc"
	"github.com/vk/plugkit/internal/ctxlog"
)

// ManifestFile is the name of the build-tool manifest inside the public dir.
const ManifestFile = "mix-manifest.json"

// publicDir is the URL segment under which built assets are served.
const publicDir = "public"

// Manifest maps a leading-slash source path to its hashed output path.
type Manifest map[string]string

// Resolver turns relative asset paths into absolute URLs under the plugin's
// public base URI, substituting hashed paths from the manifest when present.
type Resolver struct {
	baseURI      string
	manifestPath string

	loadOnce sync.Once
	manifest Manifest
}

// NewResolver creates a Resolver for the given public base URI and manifest
// file location. The manifest is not touched until the first Resolve call.
func NewResolver(baseURI, manifestPath string) *Resolver {
	return &Resolver{
		baseURI:      strings.TrimRight(baseURI, "/"),
		manifestPath: manifestPath,
	}
}

// Resolve returns the fully qualified URL for a relative asset path. Paths
// present in the manifest resolve to their hashed counterpart; everything
// else passes through unchanged.
func (r *Resolver) Resolve(ctx context.Context, relativePath string) string {
	r.loadOnce.Do(func() {
		r.manifest = loadManifest(ctx, r.manifestPath)
	})

	key := Normalize(relativePath)
	if hashed, ok := r.manifest[key]; ok {
		key = Normalize(hashed)
	}
	return r.baseURI + "/" + publicDir + key
}

// Manifest returns the loaded mapping, forcing the one-time load if it has
// not happened yet. Used by diagnostics endpoints.
func (r *Resolver) Manifest(ctx context.Context) Manifest {
	r.loadOnce.Do(func() {
		r.manifest = loadManifest(ctx, r.manifestPath)
	})
	return r.manifest
}

// Normalize collapses any number of leading slashes into exactly one. An
// empty path normalizes to "/".
func Normalize(path string) string {
	return "/" + strings.TrimLeft(path, "/")
}

// loadManifest reads and parses the manifest file. Both failure modes are
// non-fatal: the resolver degrades to passthrough with an empty mapping.
func loadManifest(ctx context.Context, path string) Manifest {
	logger := ctxlog.FromContext(ctx)

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Asset manifest not readable, resolving paths verbatim.", "path", path, "error", err)
		return Manifest{}
	}

	var m Manifest
	if err := json.Unmarshal(jsonc.ToJSON(raw), &m); err != nil {
		logger.Debug("Asset manifest is not valid JSON, resolving paths verbatim.", "path", path, "error", err)
		return Manifest{}
	}

	logger.Debug("Asset manifest loaded.", "path", path, "entries", len(m))
	return m
}
