package content

import (
	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/xref"
)

// Def is the plain content object used when an extension has no behavior of
// its own to attach, e.g. content declared in a manifest.
type Def struct{ Meta }

// SoundDef is a registered sound in the numbering space of its type.
type SoundDef struct {
	Meta
	Type  SoundType
	Sound assets.Handle
}

// TextureSlot is a texture that only occupies a slot, such as a background
// texture.
type TextureSlot struct{ Meta }

// HeadTexture is an NPC head or boss head texture linked to one NPC.
type HeadTexture struct {
	Meta
	NPC int
}

// EquipTexture is an equip texture of one equip type owned by an item.
type EquipTexture struct {
	Meta
	Type   xref.EquipType
	Item   int
	Arm    assets.Handle
	Female assets.Handle
}

// MusicBoxDef links a music slot to an item and a tile frame.
type MusicBoxDef struct {
	Meta
	Music  int
	Item   int
	Tile   int
	FrameY int
}

// FontDef is a font bound to an asset.
type FontDef struct {
	Meta
	Font assets.Handle
}

// EffectDef is a shader effect bound to an asset.
type EffectDef struct {
	Meta
	Effect assets.Handle
}

// TranslationDef is a localizable string handle.
type TranslationDef struct {
	Meta
	Key string
	// Default is the text used when no culture specific text exists.
	Default string
}

// HotKeyDef is a user-rebindable key binding.
type HotKeyDef struct {
	Meta
	DefaultKey string
}

// GlobalHookDef is a declarative global hook.
type GlobalHookDef struct {
	Meta
	Type hooks.TypeToken
}

// HookType implements Hook.
func (g *GlobalHookDef) HookType() hooks.TypeToken { return g.Type }
