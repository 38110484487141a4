package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/netsync"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/regerr"
)

func TestRegistrar_NamedContent(t *testing.T) {
	reg := newTestRegistry(t)
	r := reg.For(loadingOwner(t, reg, "Alpha"))

	require.NoError(t, r.AddFont("Title", "Alpha/Fonts/Title"))
	require.NoError(t, r.AddEffect("Glow", "Alpha/Effects/Glow"))
	key, err := r.RegisterHotKey("Dash", "Q")
	require.NoError(t, err)

	font, ok := r.GetFont("Title")
	require.True(t, ok)
	assert.Equal(t, "Alpha/Fonts/Title", font.Font.FullPath())
	effect, ok := r.GetEffect("Glow")
	require.True(t, ok)
	assert.Equal(t, "Alpha/Effects/Glow", effect.Effect.FullPath())
	got, ok := r.GetHotKey("Dash")
	require.True(t, ok)
	assert.Same(t, key, got)
	assert.Equal(t, NoSlot, got.Slot)

	require.ErrorIs(t, r.AddFont("Wrong", "Alpha/Effects/Glow"), regerr.ErrMissingResource)
	_, err = r.RegisterHotKey("Jump", "")
	require.ErrorIs(t, err, regerr.ErrValidation)
}

func TestRegistrar_Translations(t *testing.T) {
	reg := newTestRegistry(t)
	o := owner.New("Alpha")
	r := reg.For(o)

	// Handles may be created before the gate opens.
	tr := r.CreateTranslation("Greeting")
	assert.Equal(t, "Mods.Alpha.Greeting", tr.Key)
	require.ErrorIs(t, r.AddTranslation(tr), regerr.ErrInvalidPhase)

	require.NoError(t, o.BeginLoad())
	tr.Default = "Hello"
	require.NoError(t, r.AddTranslation(tr))

	got, ok := r.GetTranslation("Mods.Alpha.Greeting")
	require.True(t, ok)
	assert.Equal(t, "Hello", got.Default)

	require.ErrorIs(t, r.AddTranslation(nil), regerr.ErrValidation)
}

func TestRegistrar_TranslationFactory(t *testing.T) {
	reg := newTestRegistry(t, WithTranslationFactory(func(ownerName, key string) *content.TranslationDef {
		return &content.TranslationDef{Key: ownerName + "." + key, Default: key}
	}))
	r := reg.For(loadingOwner(t, reg, "Alpha"))

	tr := r.CreateTranslation("Title")
	assert.Equal(t, "Alpha.Title", tr.Key)
	assert.Equal(t, "Title", tr.Default)
}

func TestRegistrar_GetPacket(t *testing.T) {
	reg := newTestRegistry(t)

	local := reg.For(loadingOwner(t, reg, "Local"))
	_, err := local.GetPacket()
	require.ErrorIs(t, err, regerr.ErrValidation)

	synced := owner.New("Synced", owner.WithSync(true))
	require.NoError(t, synced.AssignNetID(2))
	p, err := reg.For(synced).GetPacket()
	require.NoError(t, err)
	assert.Equal(t, 2, p.NetID())

	rd, err := netsync.NewReader(p.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 2, rd.NetID)
}
