package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/app"
	"github.com/vk/modslots/internal/hcl"
	"github.com/vk/modslots/internal/loader"
)

// SessionFile is the file name, relative to the harness root, that is passed
// as session settings instead of being loaded as a manifest.
const SessionFile = "session.hcl"

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, exts ...loader.Extension) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, exts...)
}

// RunIntegrationTestWithContext writes files below a temporary root, builds
// the App with the manifests under "mods/" plus exts, and runs it. Asset files
// are written like any other file, e.g. "mods/assets/Items/Sword.png".
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, exts ...loader.Extension) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	modsDir := filepath.Join(tmpDir, "mods")
	require.NoError(t, os.Mkdir(modsDir, 0o755))

	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := &app.Config{
		ModsPath:  modsDir,
		LogLevel:  "debug",
		LogFormat: "text",
		Report:    app.ReportNone,
	}
	if _, ok := files[SessionFile]; ok {
		cfg.ConfigPath = filepath.Join(tmpDir, SessionFile)
	}

	logBuffer := &app.SafeBuffer{}
	dumpLogs := func() {
		if os.Getenv("MODSLOTS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, cfg, hcl.NewLoader(), exts...)
	}()

	if panicErr != nil {
		dumpLogs()
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(ctx)
	dumpLogs()

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
