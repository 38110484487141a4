package loader

import (
	"fmt"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/config"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/regerr"
	"github.com/vk/modslots/internal/registry"
	"github.com/vk/modslots/internal/xref"
)

// ManifestExtension is an extension declared entirely in configuration.
type ManifestExtension struct {
	def *config.ModDefinition
	src assets.Source
}

// FromDefinition validates def and builds its extension. The asset
// directory, when set, is scanned immediately.
func FromDefinition(def *config.ModDefinition) (*ManifestExtension, error) {
	if err := validateDefinition(def); err != nil {
		return nil, fmt.Errorf("mod %q: %w", def.Name, err)
	}
	ext := &ManifestExtension{def: def}
	if def.AssetDir != "" {
		src, err := assets.NewDirSource(def.Name, def.AssetDir)
		if err != nil {
			return nil, fmt.Errorf("mod %q: %w", def.Name, err)
		}
		ext.src = src
	}
	return ext, nil
}

// FromModel builds the extensions of every mod in model, in load order.
func FromModel(model *config.Model) ([]Extension, error) {
	out := make([]Extension, 0, len(model.Mods))
	for _, def := range model.Mods {
		ext, err := FromDefinition(def)
		if err != nil {
			return nil, err
		}
		out = append(out, ext)
	}
	return out, nil
}

func validateDefinition(def *config.ModDefinition) error {
	for _, c := range def.Contents {
		if _, ok := contentAdders[content.Kind(c.Kind)]; !ok {
			return fmt.Errorf("unknown content kind %q", c.Kind)
		}
		for _, e := range c.Equips {
			if _, ok := xref.ParseEquipType(e.Type); !ok {
				return fmt.Errorf("item %q: unknown equip type %q", c.Name, e.Type)
			}
		}
	}
	for _, s := range def.Sounds {
		if _, ok := content.ParseSoundType(s.Type); !ok {
			return fmt.Errorf("sound %q: unknown sound type %q", s.Name, s.Type)
		}
	}
	for _, g := range def.Globals {
		if _, ok := content.HookKindFor(g.Target); !ok {
			return fmt.Errorf("global %q: unknown hook target %q", g.Name, g.Target)
		}
	}
	return nil
}

// Name implements Extension.
func (m *ManifestExtension) Name() string { return m.def.Name }

// NeedsSync implements Extension.
func (m *ManifestExtension) NeedsSync() bool { return m.def.Sync }

// DependsOn implements Dependent.
func (m *ManifestExtension) DependsOn() []string { return m.def.DependsOn }

// Assets implements Extension.
func (m *ManifestExtension) Assets() assets.Source { return m.src }

// Definition returns the manifest the extension was built from.
func (m *ManifestExtension) Definition() *config.ModDefinition { return m.def }

type contentAdder func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error)

var contentAdders = map[content.Kind]contentAdder{
	content.Item: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddItem(c.Name, obj, c.Texture)
	},
	content.Tile: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddTile(c.Name, obj, c.Texture, c.HighlightTexture)
	},
	content.Wall: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddWall(c.Name, obj, c.Texture)
	},
	content.NPC: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddNPC(c.Name, obj, c.Texture)
	},
	content.Projectile: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddProjectile(c.Name, obj, c.Texture)
	},
	content.Buff: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddBuff(c.Name, obj, c.Texture)
	},
	content.Mount: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddMount(c.Name, obj, c.Texture)
	},
	content.SurfaceBackground: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddSurfaceBgStyle(c.Name, obj)
	},
	content.UndergroundBackground: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddUndergroundBgStyle(c.Name, obj)
	},
	content.WaterStyle: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddWaterStyle(c.Name, obj, c.Texture, c.BlockTexture)
	},
	content.WaterfallStyle: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddWaterfallStyle(c.Name, obj, c.Texture)
	},
	content.Gore: func(r *registry.Registrar, c *config.ContentDefinition, obj content.Object) (int, error) {
		return r.AddGore(c.Name, obj, c.Texture)
	},
	content.BackgroundTexture: func(r *registry.Registrar, c *config.ContentDefinition, _ content.Object) (int, error) {
		return r.AddBackgroundTexture(c.Texture)
	},
}

func newDef(c *config.ContentDefinition) *content.Def {
	d := &content.Def{}
	d.DisplayName = c.DisplayName
	d.Properties = c.Properties
	return d
}

// Build implements Extension.
func (m *ManifestExtension) Build(p *Plan) error {
	for _, c := range m.def.Contents {
		kind := content.Kind(c.Kind)
		add := contentAdders[kind]
		p.Add(kind, func(r *registry.Registrar) error {
			_, err := add(r, c, newDef(c))
			return err
		})
		for _, e := range c.Equips {
			m.planEquip(p, c, e)
		}
		if c.HeadTexture != "" {
			p.Add(content.NPCHead, func(r *registry.Registrar) error {
				npc, ok := r.NPCType(c.Name)
				if !ok {
					return missingTarget(r, content.NPCHead, c.HeadTexture, "npc", c.Name)
				}
				_, err := r.AddNPCHeadTexture(npc, c.HeadTexture)
				return err
			})
		}
		if c.BossHeadTexture != "" {
			p.Add(content.BossHead, func(r *registry.Registrar) error {
				npc, ok := r.NPCType(c.Name)
				if !ok {
					return missingTarget(r, content.BossHead, c.BossHeadTexture, "npc", c.Name)
				}
				_, err := r.AddBossHeadTexture(c.BossHeadTexture, npc)
				return err
			})
		}
	}

	for _, s := range m.def.Sounds {
		t, _ := content.ParseSoundType(s.Type)
		p.Add(content.SoundKind(t), func(r *registry.Registrar) error {
			_, err := r.AddSound(t, s.Name, s.Path)
			return err
		})
	}

	for _, mb := range m.def.MusicBoxes {
		p.Add(content.MusicBox, func(r *registry.Registrar) error {
			music, ok := r.SoundSlot(content.SoundMusic, mb.Music)
			if !ok {
				return missingTarget(r, content.MusicBox, mb.Item, "music", mb.Music)
			}
			item, ok := r.ItemType(mb.Item)
			if !ok {
				return missingTarget(r, content.MusicBox, mb.Item, "item", mb.Item)
			}
			tile, ok := r.TileType(mb.Tile)
			if !ok {
				return missingTarget(r, content.MusicBox, mb.Item, "tile", mb.Tile)
			}
			return r.AddMusicBox(music, item, tile, mb.FrameY)
		})
	}

	for _, f := range m.def.Fonts {
		p.Add(content.Font, func(r *registry.Registrar) error { return r.AddFont(f.Name, f.Path) })
	}
	for _, e := range m.def.Effects {
		p.Add(content.Effect, func(r *registry.Registrar) error { return r.AddEffect(e.Name, e.Path) })
	}
	for _, t := range m.def.Translations {
		p.Add(content.Translation, func(r *registry.Registrar) error {
			tr := r.CreateTranslation(t.Key)
			tr.Default = t.Text
			return r.AddTranslation(tr)
		})
	}
	for _, h := range m.def.HotKeys {
		p.Add(content.HotKey, func(r *registry.Registrar) error {
			_, err := r.RegisterHotKey(h.Name, h.Default)
			return err
		})
	}
	for _, g := range m.def.Globals {
		kind, _ := content.HookKindFor(g.Target)
		p.Add(kind, func(r *registry.Registrar) error {
			_, err := r.AddGlobal(kind, g.Name, &content.GlobalHookDef{Type: hooks.TypeToken(g.HookType)})
			return err
		})
	}
	return nil
}

func (m *ManifestExtension) planEquip(p *Plan, c *config.ContentDefinition, e *config.EquipDefinition) {
	typ, _ := xref.ParseEquipType(e.Type)
	p.Add(content.EquipKind(typ), func(r *registry.Registrar) error {
		item, ok := r.GetItem(c.Name)
		if !ok {
			return missingTarget(r, content.EquipKind(typ), c.Name, "item", c.Name)
		}
		_, err := r.AddEquipTexture(item, typ, c.Name, e.Texture, registry.EquipVariants{
			ArmTexture:    e.ArmTexture,
			FemaleTexture: e.FemaleTexture,
		})
		return err
	})
}

func missingTarget(r *registry.Registrar, kind content.Kind, name, target, targetName string) error {
	return regerr.Invalid(r.Owner().Name(), string(kind), name, regerr.NoSlot,
		fmt.Sprintf("%s %q is not registered by this owner", target, targetName))
}
