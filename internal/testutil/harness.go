// Package testutil provides the shared harness for end-to-end planning
// tests: write manifests to a temp dir, run the app against them, capture
// everything.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lunaticare/nativevariants/internal/app"
	"github.com/lunaticare/nativevariants/internal/hcl"
	"github.com/lunaticare/nativevariants/internal/registry"
)

// HarnessResult holds the outcomes of an end-to-end planning run.
type HarnessResult struct {
	Output string
	Err    error
	App    *app.App
}

// PlanOptions tweaks the harness app configuration.
type PlanOptions struct {
	HostOS   string
	HostArch string
	Registry *registry.Registry
}

// RunPlan writes the given manifest files into a temp directory, runs the
// application against them, and returns the combined output. Startup panics
// are recovered into HarnessResult.Err, matching the entrypoint's behavior.
func RunPlan(t *testing.T, files map[string]string, opts PlanOptions) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig := &app.Config{
		ManifestPath: tmpDir,
		LogLevel:     "debug",
		LogFormat:    "text",
		HostOS:       opts.HostOS,
		HostArch:     opts.HostArch,
	}

	out := &bytes.Buffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked | %v", r)
			}
		}()
		result.App = app.NewApp(out, appConfig, hcl.NewLoader(), opts.Registry)
	}()

	if result.Err == nil {
		result.Err = result.App.Run(context.Background())
	}
	result.Output = out.String()
	return result
}
