package content

import "github.com/vk/modslots/internal/xref"

// Builtin holds the built-in content count per category: the first slot an
// extension receives. Categories absent from the map start at zero.
type Builtin map[Kind]int

// DefaultBuiltin returns the built-in counts of the base game.
func DefaultBuiltin() Builtin {
	b := Builtin{
		Item:                  3930,
		Tile:                  470,
		Wall:                  231,
		NPC:                   580,
		Projectile:            714,
		Buff:                  206,
		Mount:                 15,
		SurfaceBackground:     14,
		UndergroundBackground: 18,
		WaterStyle:            12,
		WaterfallStyle:        22,
		Gore:                  1087,
		BackgroundTexture:     207,
		NPCHead:               26,
		BossHead:              37,

		SoundKind(SoundItem):      126,
		SoundKind(SoundNPCHit):    58,
		SoundKind(SoundNPCKilled): 63,
		SoundKind(SoundMusic):     42,
		SoundKind(SoundCustom):    0,
	}
	equip := map[xref.EquipType]int{
		xref.EquipHead:     216,
		xref.EquipBody:     210,
		xref.EquipLegs:     161,
		xref.EquipHandsOn:  20,
		xref.EquipHandsOff: 12,
		xref.EquipBack:     11,
		xref.EquipFront:    5,
		xref.EquipShoes:    18,
		xref.EquipWaist:    13,
		xref.EquipWings:    40,
		xref.EquipShield:   7,
		xref.EquipNeck:     10,
		xref.EquipFace:     9,
		xref.EquipBalloon:  18,
	}
	for e, n := range equip {
		b[EquipKind(e)] = n
	}
	return b
}

// Merge returns a copy of b with the counts of override applied on top.
func (b Builtin) Merge(override map[Kind]int) Builtin {
	out := make(Builtin, len(b)+len(override))
	for k, v := range b {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
