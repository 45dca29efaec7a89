package devserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubHost is a minimal AssetHost over a temp directory.
type stubHost struct {
	root string
}

func (s stubHost) Asset(ctx context.Context, relativePath string) string {
	return "https://cdn.test/public/" + strings.TrimLeft(relativePath, "/")
}

func (s stubHost) Path(file ...string) string {
	if len(file) == 0 {
		return s.root
	}
	return filepath.Join(s.root, file[0])
}

func newTestServer(t *testing.T) (*Server, string) {
	t.Helper()
	root := t.TempDir()
	return New(":0", stubHost{root: root}), root
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	// --- Act ---
	server.Handler().ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "OK")
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/resolve?path=js/app.js", nil)
	rec := httptest.NewRecorder()

	// --- Act ---
	server.Handler().ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "js/app.js", body["path"])
	require.Equal(t, "https://cdn.test/public/js/app.js", body["url"])
}

func TestResolveEndpoint_MissingParam(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/resolve", nil)
	rec := httptest.NewRecorder()

	// --- Act ---
	server.Handler().ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPublicFiles_Served(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server, root := newTestServer(t)
	jsDir := filepath.Join(root, "public", "js")
	require.NoError(t, os.MkdirAll(jsDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(jsDir, "app.js"), []byte("console.log('hi')"), 0644))

	req := httptest.NewRequest(http.MethodGet, "/public/js/app.js", nil)
	rec := httptest.NewRecorder()

	// --- Act ---
	server.Handler().ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "console.log('hi')", rec.Body.String())
}

func TestPublicFiles_Missing404(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	server, root := newTestServer(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "public"), 0755))

	req := httptest.NewRequest(http.MethodGet, "/public/js/missing.js", nil)
	rec := httptest.NewRecorder()

	// --- Act ---
	server.Handler().ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusNotFound, rec.Code)
}
