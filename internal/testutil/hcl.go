package testutil

import (
	"testing"
)

// RunManifestTest runs a single manifest. Each asset is a path relative to
// the manifest's "assets" directory and is written with placeholder bytes;
// the manifest has to declare assets = "assets" to use them.
func RunManifestTest(t *testing.T, manifestHCL string, assets ...string) *HarnessResult {
	t.Helper()

	files := map[string]string{
		"mods/main.hcl": manifestHCL,
	}
	for _, a := range assets {
		files["mods/assets/"+a] = "asset"
	}
	return RunIntegrationTest(t, files)
}
