// Package testutil provides a standardized harness for integration tests
// that boot a full App from taxonomy definition files on disk.
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

	"github.com/contentkit/taxokit/internal/app"
	"github.com/contentkit/taxokit/internal/hcl"
	"github.com/contentkit/taxokit/internal/memhost"
	"github.com/contentkit/taxokit/internal/registry"
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	Host      *memhost.Host
}

// RunApp boots a full application instance against an in-memory host. The
// files map (name -> HCL content) is written into a temporary directory
// used as the taxonomies path; a nil or empty map runs with modules only.
// Startup panics are recovered into HarnessResult.Err so failure cases can
// be asserted without crashing the test binary.
func RunApp(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunAppWithContext(context.Background(), t, files, modules...)
}

// RunAppWithContext is RunApp with a caller-provided context.
func RunAppWithContext(ctx context.Context, t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	path := ""
	if len(files) > 0 {
		dir := t.TempDir()
		for name, content := range files {
			filePath := filepath.Join(dir, name)
			require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
			require.NoError(t, os.WriteFile(filePath, []byte(content), 0o600))
		}
		path = dir
	}

	appConfig, err := app.NewConfig(app.Config{
		TaxonomiesPath: path,
		LogFormat:      "text",
		LogLevel:       "debug",
	})
	require.NoError(t, err)

	logBuf := &SafeBuffer{}
	host := memhost.New()
	result := &HarnessResult{Host: host}

	result.Err = func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()

		result.App = app.NewApp(logBuf, appConfig, hcl.NewLoader(), host, modules...)
		return result.App.Run(ctx, appConfig)
	}()

	result.LogOutput = logBuf.String()
	return result
}
