package registry

import (
	"fmt"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/regerr"
	"github.com/vk/modslots/internal/xref"
)

// MusicBoxFrameHeight is the frame row height a music box tile frame must be
// a multiple of.
const MusicBoxFrameHeight = 36

// EquipVariants carries the optional arm and female textures of a body equip.
type EquipVariants struct {
	ArmTexture    string
	FemaleTexture string
}

// AddEquipTexture reserves a slot in the numbering space of equipType and
// links it to item, which may be nil for an equip texture without an item.
// Arm and female variants are only accepted for body equips.
func (r *Registrar) AddEquipTexture(item content.Object, equipType xref.EquipType, name, texturePath string, variants EquipVariants) (int, error) {
	c, ok := r.reg.Equips[equipType]
	if !ok {
		return NoSlot, regerr.Invalid(r.owner.Name(), "equip", name, NoSlot, fmt.Sprintf("unknown equip type %q", equipType))
	}
	cat := string(c.kind)

	itemSlot := xref.None
	def := &content.EquipTexture{Type: equipType, Item: xref.None}
	validate := func() error {
		if item != nil {
			m := item.Base()
			if !m.Registered() || !r.reg.Items.IsModded(m.Slot) {
				return regerr.Invalid(r.owner.Name(), cat, name, NoSlot, "equip texture item must be a registered extension item")
			}
			itemSlot = m.Slot
		}
		if equipType != xref.EquipBody && (variants.ArmTexture != "" || variants.FemaleTexture != "") {
			return regerr.Invalid(r.owner.Name(), cat, name, NoSlot, "arm and female textures are only valid for body equips")
		}
		return nil
	}
	bs := []binding{
		{path: texturePath, kind: assets.KindTexture},
		secondary("arm", variants.ArmTexture),
		secondary("female", variants.FemaleTexture),
	}

	return register(r, c, name, def, bs, validate, func(s int) {
		def.Item = itemSlot
		def.Arm = def.Assets["arm"]
		def.Female = def.Assets["female"]
		if itemSlot != xref.None {
			r.reg.XRef.ItemToEquip.Link(xref.ItemEquipKey{Item: itemSlot, Type: equipType}, s)
			r.reg.XRef.EquipToItem.Link(xref.EquipKey{Type: equipType, Slot: s}, itemSlot)
		}
		if equipType == xref.EquipBody {
			r.reg.XRef.BodyVariants.Link(s, xref.BodyVariant{Arm: variants.ArmTexture, Female: variants.FemaleTexture})
		}
	})
}

// SetBodyVariants replaces the arm and female textures of a body equip slot
// this owner registered. The later call wins.
func (r *Registrar) SetBodyVariants(equipSlot int, variants EquipVariants) error {
	cat := string(content.EquipKind(xref.EquipBody))
	if err := r.owner.Gate(cat, ""); err != nil {
		return err
	}
	def, ok := r.reg.Equips[xref.EquipBody].BySlot(equipSlot)
	if !ok || def.Owner != r.owner.Name() {
		return regerr.OutOfRange(r.owner.Name(), cat, "", equipSlot, "not a body equip slot of this owner")
	}
	bound, err := r.bind(cat, def.Name, []binding{secondary("arm", variants.ArmTexture), secondary("female", variants.FemaleTexture)})
	if err != nil {
		return err
	}
	delete(def.Assets, "arm")
	delete(def.Assets, "female")
	applyAssets(&def.Meta, bound)
	def.Arm = def.Assets["arm"]
	def.Female = def.Assets["female"]
	r.reg.XRef.BodyVariants.Link(equipSlot, xref.BodyVariant{Arm: variants.ArmTexture, Female: variants.FemaleTexture})
	return nil
}

// EquipSlot returns the equip slot item uses for equipType, or xref.None.
func (r *Registry) EquipSlot(itemSlot int, equipType xref.EquipType) int {
	return r.XRef.ItemToEquip.Get(xref.ItemEquipKey{Item: itemSlot, Type: equipType})
}

// AddNPCHeadTexture reserves an NPC head slot for texturePath and links it
// to npcSlot, which must be an extension NPC without a head texture.
func (r *Registrar) AddNPCHeadTexture(npcSlot int, texturePath string) (int, error) {
	cat := string(content.NPCHead)
	def := &content.HeadTexture{NPC: npcSlot}
	validate := func() error {
		if !r.reg.NPCs.IsModded(npcSlot) {
			return regerr.OutOfRange(r.owner.Name(), cat, texturePath, npcSlot, "head textures can only be added to extension NPCs")
		}
		if r.reg.XRef.NPCToHead.Has(npcSlot) {
			return regerr.Invalid(r.owner.Name(), cat, texturePath, npcSlot, "NPC already has a head texture")
		}
		return nil
	}
	bs := []binding{{path: texturePath, kind: assets.KindTexture}}
	return register(r, r.reg.NPCHeads, texturePath, def, bs, validate, func(s int) {
		r.reg.XRef.NPCToHead.Link(npcSlot, s)
		r.reg.XRef.HeadToNPC.Link(s, npcSlot)
	})
}

// AddBossHeadTexture reserves a boss head slot for texturePath. npcSlot may
// be xref.None to reserve the texture without linking it.
func (r *Registrar) AddBossHeadTexture(texturePath string, npcSlot int) (int, error) {
	cat := string(content.BossHead)
	def := &content.HeadTexture{NPC: npcSlot}
	validate := func() error {
		if npcSlot == xref.None {
			return nil
		}
		if !r.reg.NPCs.IsModded(npcSlot) {
			return regerr.OutOfRange(r.owner.Name(), cat, texturePath, npcSlot, "boss head textures can only be linked to extension NPCs")
		}
		if r.reg.XRef.NPCToBossHead.Has(npcSlot) {
			return regerr.Invalid(r.owner.Name(), cat, texturePath, npcSlot, "NPC already has a boss head texture")
		}
		return nil
	}
	bs := []binding{{path: texturePath, kind: assets.KindTexture}}
	return register(r, r.reg.BossHeads, texturePath, def, bs, validate, func(s int) {
		if npcSlot != xref.None {
			r.reg.XRef.NPCToBossHead.Link(npcSlot, s)
			r.reg.XRef.BossHeadToNPC.Link(s, npcSlot)
		}
	})
}

// AddMusicBox links musicSlot to an item and to a frame row of a tile. Item,
// tile, and music must all be extension content, and neither the item nor
// the tile frame may already belong to another music box.
func (r *Registrar) AddMusicBox(musicSlot, itemSlot, tileSlot, frameY int) error {
	cat := string(content.MusicBox)
	reg := r.reg
	item, ok := reg.Items.BySlot(itemSlot)
	name := fmt.Sprintf("item#%d", itemSlot)
	if ok {
		name = item.Base().FullName()
	}
	if err := r.owner.Gate(cat, name); err != nil {
		return err
	}

	switch {
	case !reg.Sounds[content.SoundMusic].IsModded(musicSlot):
		return regerr.OutOfRange(r.owner.Name(), cat, name, musicSlot, "music slot is not an extension music")
	case !ok:
		return regerr.OutOfRange(r.owner.Name(), cat, name, itemSlot, "item slot is not an extension item")
	case !reg.Tiles.IsModded(tileSlot):
		return regerr.OutOfRange(r.owner.Name(), cat, name, tileSlot, "tile slot is not an extension tile")
	case frameY < 0 || frameY%MusicBoxFrameHeight != 0:
		return regerr.Invalid(r.owner.Name(), cat, name, frameY, fmt.Sprintf("frame Y must be a non-negative multiple of %d", MusicBoxFrameHeight))
	case reg.XRef.ItemToMusic.Has(itemSlot):
		return regerr.Invalid(r.owner.Name(), cat, name, itemSlot, "item is already a music box")
	case reg.XRef.TileToMusic.Has(xref.TileFrame{Tile: tileSlot, FrameY: frameY}):
		return regerr.Invalid(r.owner.Name(), cat, name, tileSlot, fmt.Sprintf("tile frame %d is already a music box", frameY))
	}

	def := &content.MusicBoxDef{Music: musicSlot, Item: itemSlot, Tile: tileSlot, FrameY: frameY}
	if err := reg.MusicBoxes.check(r.owner, name, def); err != nil {
		return err
	}
	reg.MusicBoxes.commit(r.owner, name, def)
	def.Slot = musicSlot

	reg.XRef.MusicToItem.Link(musicSlot, itemSlot)
	reg.XRef.ItemToMusic.Link(itemSlot, musicSlot)
	reg.XRef.TileToMusic.Link(xref.TileFrame{Tile: tileSlot, FrameY: frameY}, musicSlot)
	r.logger.Debug("Registered music box.", "category", cat, "name", name, "slot", musicSlot, "tile", tileSlot, "frame_y", frameY)
	return nil
}

// MusicForTile returns the music slot played by a tile frame, or xref.None.
func (r *Registry) MusicForTile(tileSlot, frameY int) int {
	return r.XRef.TileToMusic.Get(xref.TileFrame{Tile: tileSlot, FrameY: frameY})
}

// HeadSlot returns the NPC head slot of npcSlot, or xref.None.
func (r *Registry) HeadSlot(npcSlot int) int {
	return r.XRef.NPCToHead.Get(npcSlot)
}

// BossHeadSlot returns the boss head slot of npcSlot, or xref.None.
func (r *Registry) BossHeadSlot(npcSlot int) int {
	return r.XRef.NPCToBossHead.Get(npcSlot)
}
