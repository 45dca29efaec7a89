// Package testutil provides shared helpers for boot-lifecycle tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/plugkit/internal/app"
	"github.com/vk/plugkit/internal/hcl"
	"github.com/vk/plugkit/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a plugin boot test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunBootTest provides a standardized harness for boot lifecycle tests. It
// writes the given files into a temporary installation root, loads
// "plugin.hcl" from that root, and runs the full boot sequence including
// lifecycle event dispatch. A nil factories map selects the built-in
// component set. Startup panics are converted into the result's Err.
func RunBootTest(t *testing.T, files map[string]string, factories map[string]registry.Factory) *HarnessResult {
	t.Helper()

	// 1. Create a temporary installation root and write all files into it.
	//    Relative paths (e.g. "public/mix-manifest.json") create their
	//    subdirectory structure within the root.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Build the app config pointing at the temp plugin.hcl.
	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: filepath.Join(tmpDir, "plugin.hcl"),
		LogLevel:   "debug",
		LogFormat:  "text",
	})
	require.NoError(t, err)

	// 3. Construct and run the app, capturing logs and recovering startup
	//    panics so tests can assert on them.
	logBuffer := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		result.App = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), factories)
		result.Err = result.App.Run(context.Background(), appConfig)
	}()

	result.LogOutput = logBuffer.String()

	t.Cleanup(func() {
		if os.Getenv("PLUGKIT_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})

	return result
}
