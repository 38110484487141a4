// Package examplemod is a small content extension written in Go. It shows
// typed content objects, cross-linked registrations, handles kept across the
// session and the shared hook library.
package examplemod

import (
	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/internal/registry"
	"github.com/vk/modslots/internal/xref"
	"github.com/vk/modslots/modules/sharedhooks"
)

// Name is the owner name of the extension.
const Name = "ExampleMod"

// Blade is a melee item.
type Blade struct {
	content.Meta
	Damage int
}

// TypeName implements names.TypeNamer.
func (*Blade) TypeName() string { return "CopperBlade" }

// Slime is a hostile NPC.
type Slime struct {
	content.Meta
	Life int
}

// TypeName implements names.TypeNamer.
func (*Slime) TypeName() string { return "GreenSlime" }

// Module implements loader.Extension and loader.Unloader.
type Module struct {
	// Handles held while loaded.
	Blade   *Blade
	Dash    *content.HotKeyDef
	Tooltip *content.TranslationDef
}

// New returns the extension.
func New() *Module { return &Module{} }

// Name implements loader.Extension.
func (*Module) Name() string { return Name }

// NeedsSync implements loader.Extension.
func (*Module) NeedsSync() bool { return true }

// Assets implements loader.Extension.
func (*Module) Assets() assets.Source {
	return assets.NewMemorySource(Name, map[string]assets.Kind{
		"Items/CopperBlade":      assets.KindTexture,
		"Items/CopperBlade_Body": assets.KindTexture,
		"Items/CopperBlade_Arms": assets.KindTexture,
		"Items/ThemeBox":         assets.KindTexture,
		"Tiles/ThemeBoxTile":     assets.KindTexture,
		"NPCs/GreenSlime":        assets.KindTexture,
		"NPCs/GreenSlime_Head":   assets.KindTexture,
		"Sounds/Item/Clang":      assets.KindSound,
		"Sounds/Music/Theme":     assets.KindMusic,
	})
}

// Build implements loader.Extension.
func (m *Module) Build(p *loader.Plan) error {
	p.Add(content.Item, func(r *registry.Registrar) error {
		blade := &Blade{Damage: 8}
		blade.DisplayName = "Copper Blade"
		if _, err := r.AddItem(blade.TypeName(), blade, Name+"/Items/CopperBlade"); err != nil {
			return err
		}
		m.Blade = blade
		_, err := r.AddItem("ThemeBox", &content.Def{}, Name+"/Items/ThemeBox")
		return err
	})
	p.Add(content.Tile, func(r *registry.Registrar) error {
		_, err := r.AddTile("ThemeBoxTile", &content.Def{}, Name+"/Tiles/ThemeBoxTile", "")
		return err
	})
	p.Add(content.NPC, func(r *registry.Registrar) error {
		slime := &Slime{Life: 25}
		_, err := r.AddNPC(slime.TypeName(), slime, Name+"/NPCs/GreenSlime")
		return err
	})
	p.Add(content.NPCHead, func(r *registry.Registrar) error {
		npc, _ := r.NPCType("GreenSlime")
		_, err := r.AddNPCHeadTexture(npc, Name+"/NPCs/GreenSlime_Head")
		return err
	})
	p.Add(content.EquipKind(xref.EquipBody), func(r *registry.Registrar) error {
		_, err := r.AddEquipTexture(m.Blade, xref.EquipBody, "CopperBlade", Name+"/Items/CopperBlade_Body",
			registry.EquipVariants{ArmTexture: Name + "/Items/CopperBlade_Arms"})
		return err
	})
	p.Add(content.SoundKind(content.SoundItem), func(r *registry.Registrar) error {
		_, err := r.AddSound(content.SoundItem, "Clang", Name+"/Sounds/Item/Clang")
		return err
	})
	p.Add(content.SoundKind(content.SoundMusic), func(r *registry.Registrar) error {
		_, err := r.AddSound(content.SoundMusic, "Theme", Name+"/Sounds/Music/Theme")
		return err
	})
	p.Add(content.MusicBox, func(r *registry.Registrar) error {
		music, _ := r.SoundSlot(content.SoundMusic, "Theme")
		item, _ := r.ItemType("ThemeBox")
		tile, _ := r.TileType("ThemeBoxTile")
		return r.AddMusicBox(music, item, tile, 0)
	})
	p.Add(content.Translation, func(r *registry.Registrar) error {
		t := r.CreateTranslation("CopperBladeTooltip")
		t.Default = "Sharper than it looks"
		if err := r.AddTranslation(t); err != nil {
			return err
		}
		m.Tooltip = t
		return nil
	})
	p.Add(content.HotKey, func(r *registry.Registrar) error {
		hk, err := r.RegisterHotKey("Dash", "Q")
		if err != nil {
			return err
		}
		m.Dash = hk
		return nil
	})
	sharedhooks.AddTo(p, 2)
	return nil
}

// Unload implements loader.Unloader.
func (m *Module) Unload(*registry.Registrar) {
	m.Blade = nil
	m.Dash = nil
	m.Tooltip = nil
}
