package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/hcl"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/netsync"
	"github.com/vk/modslots/internal/registry"
	"github.com/vk/modslots/modules/examplemod"
	"github.com/vk/modslots/modules/sharedhooks"
)

const gammaManifest = `
session {
  builtin {
    item = 100
  }
}

mod "Gamma" {
  sync   = true
  assets = "assets"

  item "Gem" {
    texture    = "Gamma/Items/Gem"
    properties = { value = 5 }
  }
  global "item" "Borrowed" {
    hook_type = "sharedhooks.ItemHook"
  }
}
`

func writeModDir(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mods.hcl"), []byte(manifest), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets", "Items"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "Items", "Gem.png"), []byte("png"), 0o600))
	return dir
}

func recoverPanic(fn func()) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprint(r)
		}
	}()
	fn()
	return ""
}

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name       string
		cfg        Config
		wantErr    string
		wantReport string
	}{
		{name: "mods path", cfg: Config{ModsPath: "mods"}, wantReport: ReportText},
		{name: "extensions only", cfg: Config{Extensions: []string{"examplemod"}, Report: ReportJSON}, wantReport: ReportJSON},
		{name: "nothing to load", cfg: Config{}, wantErr: "ModsPath is a required"},
		{name: "bad report", cfg: Config{ModsPath: "mods", Report: "yaml"}, wantErr: "invalid report format"},
		{name: "bad port", cfg: Config{ModsPath: "mods", InspectPort: -1}, wantErr: "invalid inspect port"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)
			if tc.wantErr != "" {
				require.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantReport, cfg.Report)
		})
	}
}

func TestApp_RunLoadsGoAndManifestExtensions(t *testing.T) {
	// Arrange
	cfg, err := NewConfig(Config{
		ModsPath:   writeModDir(t, gammaManifest),
		Extensions: []string{"examplemod", "sharedhooks"},
		Report:     ReportJSON,
	})
	require.NoError(t, err)
	a, logs := SetupAppTest(t, cfg)

	// Act
	err = a.Run(context.Background())

	// Assert
	require.NoError(t, err)
	reg := a.Registry()

	blade, ok := reg.Items.SlotOf(examplemod.Name, "CopperBlade")
	require.True(t, ok)
	assert.Equal(t, 100, blade, "numbering starts at the configured builtin count")
	gem, ok := reg.Items.SlotOf("Gamma", "Gem")
	require.True(t, ok)
	assert.Equal(t, 102, gem)

	idx, ok := reg.Hooks[content.GlobalItem].TypeIndex(sharedhooks.ItemHookType)
	require.True(t, ok)
	assert.Equal(t, hooks.PerInstance, idx)
	idx, _ = reg.Hooks[content.Player].TypeIndex(sharedhooks.PlayerHookType)
	assert.Equal(t, hooks.PerInstance, idx)

	mem, ok := a.Transport().(*netsync.MemoryTransport)
	require.True(t, ok)
	sent := mem.Sent()
	require.Len(t, sent, 2, "ExampleMod and Gamma sync, SharedHooks does not")
	rd, err := netsync.NewReader(sent[1])
	require.NoError(t, err)
	assert.Equal(t, 1, rd.NetID)
	name, err := rd.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "Gamma", name)
	count, err := rd.ReadInt32()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "one item and one global hook")

	out := logs.String()
	assert.Contains(t, out, `"value": 5`)
	assert.Contains(t, out, "Extensions loaded.")
}

func TestApp_ExplicitExtensionsReplaceSelection(t *testing.T) {
	mod := examplemod.New()
	a, _ := SetupAppTest(t, &Config{Extensions: []string{"sharedhooks"}, Report: ReportNone}, mod)

	require.NoError(t, a.Run(context.Background()))

	assert.Len(t, a.Session().Owners(), 1)
	require.NotNil(t, mod.Dash)
	assert.Equal(t, "Q", mod.Dash.DefaultKey)
	idx, _ := a.Registry().Hooks[content.GlobalItem].TypeIndex(sharedhooks.ItemHookType)
	assert.Equal(t, 0, idx, "a single registration keeps its shared index")
}

func TestApp_RunUnloadClearsSession(t *testing.T) {
	mod := examplemod.New()
	a, logs := SetupAppTest(t, &Config{Report: ReportText, Unload: true}, mod)

	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, logs.String(), "CopperBlade")
	assert.Contains(t, logs.String(), "Extensions unloaded.")
	assert.Nil(t, mod.Blade, "the extension dropped its handles")
	assert.Empty(t, a.Registry().Owned(examplemod.Name, content.Item))
	assert.Equal(t, a.Registry().Items.Base(), a.Registry().Items.Count())
}

func TestApp_RunFailsOnMissingAsset(t *testing.T) {
	dir := writeModDir(t, `
mod "Broken" {
  item "Ghost" {
    texture = "Broken/Items/Ghost"
  }
}
`)
	a, _ := SetupAppTest(t, &Config{ModsPath: dir, Report: ReportText})

	err := a.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load extensions")
	assert.Contains(t, err.Error(), `"Broken/Items/Ghost"`)
}

func TestNewApp_PanicsOnStartupErrors(t *testing.T) {
	badHCL := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(badHCL, "mods.hcl"), []byte(`mod "A" {`), 0o600))

	testCases := []struct {
		name string
		cfg  *Config
		want string
	}{
		{"unknown extension", &Config{Extensions: []string{"nope"}}, `unknown extension "nope"`},
		{"bad manifest", &Config{ModsPath: badHCL}, "failed to load configuration"},
		{"duplicate owner", &Config{Extensions: []string{"examplemod", "examplemod"}}, "ExampleMod"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			msg := recoverPanic(func() { NewApp(&SafeBuffer{}, tc.cfg, hcl.NewLoader()) })
			assert.Contains(t, msg, tc.want)
		})
	}
}

func TestApp_InspectEndpoints(t *testing.T) {
	// Arrange
	cfg := &Config{ModsPath: writeModDir(t, gammaManifest), Report: ReportNone}
	a, _ := SetupAppTest(t, cfg, examplemod.New(), sharedhooks.New())
	require.NoError(t, a.Run(context.Background()))
	mux := a.inspectMux()

	get := func(target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		return rec
	}
	decode := func(rec *httptest.ResponseRecorder) jsonReport {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code)
		var rep jsonReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
		return rep
	}

	// Act & Assert
	health := get("/health")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.Equal(t, "OK\n", health.Body.String())

	full := decode(get("/slots"))
	assert.NotEmpty(t, full.Categories)
	assert.Len(t, full.Hooks, 5)

	shared := decode(get("/slots?owner=SharedHooks"))
	assert.Empty(t, shared.Slots)
	require.Len(t, shared.Hooks, 2)
	assert.Equal(t, "LibraryItem", shared.Hooks[0].Name)

	gamma := get("/slots?owner=Gamma")
	narrowed := decode(gamma)
	require.Len(t, narrowed.Slots, 1)
	assert.Equal(t, "Gem", narrowed.Slots[0].Name)
	assert.JSONEq(t, `{"value":5}`, string(narrowed.Slots[0].Properties))
	require.Len(t, narrowed.Hooks, 1)
	assert.Equal(t, "Borrowed", narrowed.Hooks[0].Name)
	assert.Contains(t, gamma.Body.String(), `"named":[]`)

	assert.Equal(t, http.StatusNotFound, get("/slots?owner=Nobody").Code)

	schema := get("/schema")
	require.Equal(t, http.StatusOK, schema.Code)
	assert.Equal(t, "application/schema+json", schema.Header().Get("Content-Type"))
	assert.Contains(t, schema.Body.String(), `"$schema"`)
}

func TestApp_RunWritesReportSchema(t *testing.T) {
	// Arrange
	out := &SafeBuffer{}
	cfg, err := NewConfig(Config{Extensions: []string{"examplemod"}, Report: ReportSchema, LogLevel: "error"})
	require.NoError(t, err)
	a := NewApp(out, cfg, hcl.NewLoader())

	// Act
	require.NoError(t, a.Run(context.Background()))

	// Assert
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &doc))
	assert.Equal(t, "modslots slot report", doc["title"])
	body := out.String()
	for _, field := range []string{`"categories"`, `"slots"`, `"named"`, `"hooks"`, `"properties"`} {
		assert.Contains(t, body, field)
	}
}

func TestBuildJSONReport_EmptySectionsEncodeAsArrays(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{Report: ReportNone}, sharedhooks.New())

	rep, err := a.buildJSONReport(registry.Report{})
	require.NoError(t, err)
	data, err := json.Marshal(rep)
	require.NoError(t, err)

	assert.JSONEq(t, `{"categories":[],"slots":[],"named":[],"hooks":[]}`, string(data))
}
