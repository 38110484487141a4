package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/registry"
	"github.com/vk/modslots/internal/testutil"
)

func TestSessionLifecycle_ManifestOrderAndNetIDs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// "order" decides load order across files; ties keep declaration order.
	files := map[string]string{
		"mods/late.hcl": `
mod "Late" {
  order = 5
  sync  = true
  wall "Brick" {}
}
`,
		"mods/early.hcl": `
mod "Early" {
  sync = true
  wall "Stone" {}
}

mod "Quiet" {
  wall "Moss" {}
}
`,
		testutil.SessionFile: `
session {
  builtin {
    wall = 10
  }
}
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertSlot(t, result, content.Wall, "Early", "Stone", 10)
	testutil.AssertSlot(t, result, content.Wall, "Quiet", "Moss", 11)
	testutil.AssertSlot(t, result, content.Wall, "Late", "Brick", 12)

	ids := map[string]int{}
	for _, o := range result.App.Session().Owners() {
		ids[o.Name()] = o.NetID()
	}
	assert.Equal(t, map[string]int{"Early": 0, "Quiet": owner.NoNetID, "Late": 1}, ids)
}

func TestSessionLifecycle_GoExtensionsUnloadInReverse(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	events := &testutil.EventLog{}
	addBuff := func(name string) func(p *loader.Plan) error {
		return func(p *loader.Plan) error {
			p.Add(content.Buff, func(r *registry.Registrar) error {
				_, err := r.AddBuff(name, &content.Def{}, "")
				return err
			})
			return nil
		}
	}
	first := &testutil.RecordingExtension{ExtName: "First", Log: events, BuildFn: addBuff("Haste")}
	second := &testutil.RecordingExtension{ExtName: "Second", Log: events, BuildFn: addBuff("Haste")}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, nil, first, second)
	require.NoError(t, result.Err)
	reg := result.App.Registry()
	base := reg.Buffs.Base()
	require.NoError(t, result.App.Session().Unload(context.Background()))

	// --- Assert ---
	assert.Equal(t, []string{"build:First", "build:Second", "unload:Second", "unload:First"}, events.Events())
	assert.Empty(t, reg.Owned("First", content.Buff))
	assert.Equal(t, base+2, reg.Buffs.Count(), "unloading never returns slots")
	assert.Contains(t, result.LogOutput, "Owner content unloaded.")
}

func TestSessionLifecycle_DependenciesLoadFirst(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunManifestTest(t, `
mod "Addon" {
  depends_on = ["Base"]
  projectile "Spark" {}
}

mod "Base" {
  projectile "Bolt" {}
}
`)

	// --- Assert ---
	require.NoError(t, result.Err)
	base := result.App.Registry().Projectiles.Base()
	testutil.AssertSlot(t, result, content.Projectile, "Base", "Bolt", base)
	testutil.AssertSlot(t, result, content.Projectile, "Addon", "Spark", base+1)
}
