package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/testutil"
	"github.com/vk/modslots/internal/xref"
)

func TestManifestFeatures_LinkedContent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		testutil.SessionFile: `
session {
  builtin {
    item        = 50
    tile        = 20
    npc         = 7
    npc_head    = 2
    sound_music = 4
    equip_Body  = 9
  }
}
`,
		"mods/alpha.hcl": `
mod "Alpha" {
  assets = "assets"

  item "Armor" {
    texture      = "Alpha/Items/Armor"
    display_name = "Plate Armor"
    properties   = { defense = 12 }
    equip "Body" {
      texture        = "Alpha/Items/Armor_Body"
      female_texture = "Alpha/Items/Armor_Female"
    }
  }
  item "ThemeBox" {}
  tile "ThemeBoxTile" {}
  npc "King" {
    texture           = "Alpha/NPCs/King"
    head_texture      = "Alpha/NPCs/King_Head"
    boss_head_texture = "Alpha/NPCs/King_Boss"
  }
  sound "music" "Theme" {
    path = "Alpha/Sounds/Music/Theme"
  }
  music_box {
    music   = "Theme"
    item    = "ThemeBox"
    tile    = "ThemeBoxTile"
    frame_y = 72
  }
  effect "Glow" {
    path = "Alpha/Effects/Glow"
  }
}
`,
		"mods/assets/Items/Armor.png":        "png",
		"mods/assets/Items/Armor_Body.png":   "png",
		"mods/assets/Items/Armor_Female.png": "png",
		"mods/assets/NPCs/King.png":          "png",
		"mods/assets/NPCs/King_Head.png":     "png",
		"mods/assets/NPCs/King_Boss.png":     "png",
		"mods/assets/Sounds/Music/Theme.ogg": "ogg",
		"mods/assets/Effects/Glow.fx":        "fx",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files)

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertSlot(t, result, content.Item, "Alpha", "Armor", 50)
	testutil.AssertSlot(t, result, content.Item, "Alpha", "ThemeBox", 51)
	testutil.AssertSlot(t, result, content.Tile, "Alpha", "ThemeBoxTile", 20)
	testutil.AssertSlot(t, result, content.EquipKind(xref.EquipBody), "Alpha", "Armor", 9)
	testutil.AssertSlot(t, result, content.NPCHead, "Alpha", "Alpha/NPCs/King_Head", 2)
	testutil.AssertSlot(t, result, content.SoundKind(content.SoundMusic), "Alpha", "Theme", 4)

	reg := result.App.Registry()
	assert.Equal(t, 9, reg.EquipSlot(50, xref.EquipBody))
	assert.Equal(t, 50, reg.XRef.EquipToItem.Get(xref.EquipKey{Type: xref.EquipBody, Slot: 9}))
	assert.Equal(t, 2, reg.HeadSlot(7))
	assert.NotEqual(t, xref.None, reg.BossHeadSlot(7))
	assert.Equal(t, 4, reg.MusicForTile(20, 72))
	assert.Equal(t, xref.None, reg.MusicForTile(20, 0))
	assert.Equal(t, 51, reg.XRef.MusicToItem.Get(4))

	armor, ok := reg.Items.Get("Alpha", "Armor")
	require.True(t, ok)
	assert.Equal(t, "Plate Armor", armor.Base().Label())
	var defense int
	found, err := armor.Base().Property("defense", &defense)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 12, defense)

	glow, ok := reg.Effects.Get("Alpha", "Glow")
	require.True(t, ok)
	assert.Equal(t, "Alpha/Effects/Glow", glow.Effect.FullPath())
}
