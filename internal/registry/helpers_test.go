package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/ctxlog"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/owner"
)

// testAssets is mounted for every owner created through loadingOwner.
var testAssets = map[string]assets.Kind{
	"Items/Sword":             assets.KindTexture,
	"Items/Shield":            assets.KindTexture,
	"Items/Shield_Body":       assets.KindTexture,
	"Items/Shield_Arms":       assets.KindTexture,
	"Items/Shield_FemaleBody": assets.KindTexture,
	"Tiles/Ore":               assets.KindTexture,
	"Tiles/Ore_Highlight":     assets.KindTexture,
	"NPCs/Slime":              assets.KindTexture,
	"NPCs/Slime_Head":         assets.KindTexture,
	"NPCs/Slime_Head_Boss":    assets.KindTexture,
	"Water/Style":             assets.KindTexture,
	"Water/Block":             assets.KindTexture,
	"Backgrounds/Sky":         assets.KindTexture,
	"Sounds/Item/Swing":       assets.KindSound,
	"Sounds/Music/Theme":      assets.KindMusic,
	"Fonts/Title":             assets.KindFont,
	"Effects/Glow":            assets.KindEffect,
}

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	return New(ctxlog.Discard(), opts...)
}

// loadingOwner creates an owner in its loading phase with the test assets
// mounted.
func loadingOwner(t *testing.T, reg *Registry, name string, opts ...owner.Option) *owner.Owner {
	t.Helper()
	o := owner.New(name, opts...)
	require.NoError(t, o.BeginLoad())
	reg.Assets.Mount(name, assets.NewMemorySource(name, testAssets))
	return o
}

func loadedOwner(t *testing.T, reg *Registry, name string) *owner.Owner {
	t.Helper()
	o := loadingOwner(t, reg, name)
	require.NoError(t, o.FinishLoad())
	return o
}

type testHook struct {
	content.Meta
	token hooks.TypeToken
}

func (h *testHook) HookType() hooks.TypeToken { return h.token }

func sharedLibraryHook() *testHook { return &testHook{token: "SharedLibraryHook"} }

type swordItem struct{ content.Meta }

func (*swordItem) TypeName() string { return "Sword" }

func def() *content.Def { return &content.Def{} }
