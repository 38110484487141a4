// Package content defines the registrable content categories and the object
// model shared by every registered object.
package content

import "github.com/vk/modslots/internal/xref"

// Kind names a content category. Every slotted kind has its own numbering space.
type Kind string

const (
	Item                  Kind = "item"
	Tile                  Kind = "tile"
	Wall                  Kind = "wall"
	NPC                   Kind = "npc"
	Projectile            Kind = "projectile"
	Buff                  Kind = "buff"
	Mount                 Kind = "mount"
	SurfaceBackground     Kind = "surface_background"
	UndergroundBackground Kind = "underground_background"
	WaterStyle            Kind = "water_style"
	WaterfallStyle        Kind = "waterfall_style"
	Gore                  Kind = "gore"
	BackgroundTexture     Kind = "background_texture"
	NPCHead               Kind = "npc_head"
	BossHead              Kind = "boss_head"
	MusicBox              Kind = "music_box"

	Font        Kind = "font"
	Effect      Kind = "effect"
	Translation Kind = "translation"
	HotKey      Kind = "hotkey"

	GlobalItem       Kind = "global_item"
	GlobalNPC        Kind = "global_npc"
	GlobalProjectile Kind = "global_projectile"
	GlobalTile       Kind = "global_tile"
	GlobalWall       Kind = "global_wall"
	GlobalBuff       Kind = "global_buff"
	Player           Kind = "player"
	World            Kind = "world"
)

// SoundType selects one of the sound numbering spaces.
type SoundType string

const (
	SoundItem      SoundType = "item"
	SoundNPCHit    SoundType = "npc_hit"
	SoundNPCKilled SoundType = "npc_killed"
	SoundMusic     SoundType = "music"
	SoundCustom    SoundType = "custom"
)

// SoundTypes lists every sound type in canonical order.
var SoundTypes = []SoundType{SoundItem, SoundNPCHit, SoundNPCKilled, SoundMusic, SoundCustom}

// ParseSoundType validates s as a sound type.
func ParseSoundType(s string) (SoundType, bool) {
	for _, t := range SoundTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// SoundKind is the category of one sound type.
func SoundKind(t SoundType) Kind {
	return Kind("sound/" + string(t))
}

// EquipKind is the category of one equip type.
func EquipKind(e xref.EquipType) Kind {
	return Kind("equip/" + string(e))
}

// ContentKinds are the slotted categories of plain content, in load order.
var ContentKinds = []Kind{
	Item, Tile, Wall, NPC, Projectile, Buff, Mount,
	SurfaceBackground, UndergroundBackground, WaterStyle, WaterfallStyle,
	Gore, BackgroundTexture, NPCHead, BossHead,
}

// HookKinds are the categories that accept global hooks.
var HookKinds = []Kind{
	GlobalItem, GlobalNPC, GlobalProjectile, GlobalTile, GlobalWall, GlobalBuff, Player, World,
}

// NamedKinds are registered by name only and receive no slot.
var NamedKinds = []Kind{Font, Effect, Translation, HotKey}

// HookKindFor maps a manifest hook target ("item", "npc", ...) to its hook kind.
func HookKindFor(target string) (Kind, bool) {
	switch target {
	case "item":
		return GlobalItem, true
	case "npc":
		return GlobalNPC, true
	case "projectile":
		return GlobalProjectile, true
	case "tile":
		return GlobalTile, true
	case "wall":
		return GlobalWall, true
	case "buff":
		return GlobalBuff, true
	case "player":
		return Player, true
	case "world":
		return World, true
	}
	return "", false
}
