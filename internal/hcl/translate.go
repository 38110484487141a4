package hcl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/modslots/internal/config"
	"github.com/vk/modslots/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
)

// translateMod converts a decoded mod block into the agnostic model.
func translateMod(file string, mb *modBlock) (*config.ModDefinition, error) {
	if mb.Name == "" {
		return nil, fmt.Errorf("%s: mod name must not be empty", file)
	}
	if strings.ContainsAny(mb.Name, "/:") {
		return nil, fmt.Errorf("%s: mod name %q must not contain '/' or ':'", file, mb.Name)
	}

	def := &config.ModDefinition{
		Name:      mb.Name,
		Order:     mb.Order,
		Sync:      mb.Sync,
		DependsOn: mb.DependsOn,
		Source:    file,
	}
	if mb.Assets != "" {
		dir := mb.Assets
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(file), dir)
		}
		def.AssetDir = dir
	}

	groups := []struct {
		kind   string
		blocks []*contentBlock
	}{
		{"item", mb.Items},
		{"tile", mb.Tiles},
		{"wall", mb.Walls},
		{"npc", mb.NPCs},
		{"projectile", mb.Projectiles},
		{"buff", mb.Buffs},
		{"mount", mb.Mounts},
		{"surface_background", mb.SurfaceBackgrounds},
		{"underground_background", mb.UndergroundBackgrounds},
		{"water_style", mb.WaterStyles},
		{"waterfall_style", mb.WaterfallStyles},
		{"gore", mb.Gores},
		{"background_texture", mb.BackgroundTextures},
	}
	for _, g := range groups {
		for _, cb := range g.blocks {
			c, err := translateContent(g.kind, cb)
			if err != nil {
				return nil, fmt.Errorf("%s: mod %q: %w", file, mb.Name, err)
			}
			def.Contents = append(def.Contents, c)
		}
	}

	for _, g := range mb.Globals {
		hookType := g.HookType
		if hookType == "" {
			hookType = g.Name
		}
		def.Globals = append(def.Globals, &config.GlobalDefinition{Target: g.Target, Name: g.Name, HookType: hookType})
	}
	for _, s := range mb.Sounds {
		def.Sounds = append(def.Sounds, &config.SoundDefinition{Type: s.Type, Name: s.Name, Path: s.Path})
	}
	for _, m := range mb.MusicBoxes {
		def.MusicBoxes = append(def.MusicBoxes, &config.MusicBoxDefinition{Music: m.Music, Item: m.Item, Tile: m.Tile, FrameY: m.FrameY})
	}
	for _, f := range mb.Fonts {
		def.Fonts = append(def.Fonts, &config.AssetDefinition{Name: f.Name, Path: f.Path})
	}
	for _, e := range mb.Effects {
		def.Effects = append(def.Effects, &config.AssetDefinition{Name: e.Name, Path: e.Path})
	}
	for _, t := range mb.Translations {
		def.Translations = append(def.Translations, &config.TranslationDefinition{Key: t.Key, Text: t.Text})
	}
	for _, h := range mb.HotKeys {
		def.HotKeys = append(def.HotKeys, &config.HotKeyDefinition{Name: h.Name, Default: h.Default})
	}
	return def, nil
}

// translateContent rejects attributes that have no meaning for kind.
func translateContent(kind string, cb *contentBlock) (*config.ContentDefinition, error) {
	c := &config.ContentDefinition{
		Kind:             kind,
		Name:             cb.Name,
		Texture:          cb.Texture,
		DisplayName:      cb.DisplayName,
		Properties:       cty.NilVal,
		HighlightTexture: cb.HighlightTexture,
		BlockTexture:     cb.BlockTexture,
		HeadTexture:      cb.HeadTexture,
		BossHeadTexture:  cb.BossHeadTexture,
	}
	if cb.Properties != nil && !cb.Properties.IsNull() {
		if !cb.Properties.Type().IsObjectType() && !cb.Properties.Type().IsMapType() {
			return nil, fmt.Errorf("%s %q: properties must be an object, got %s", kind, cb.Name, cb.Properties.Type().FriendlyName())
		}
		c.Properties = *cb.Properties
	}

	only := func(attr, value, allowed string) error {
		if value != "" && kind != allowed {
			return fmt.Errorf("%s %q: %s is only valid on %s blocks", kind, cb.Name, attr, allowed)
		}
		return nil
	}
	for _, check := range []error{
		only("highlight_texture", cb.HighlightTexture, "tile"),
		only("block_texture", cb.BlockTexture, "water_style"),
		only("head_texture", cb.HeadTexture, "npc"),
		only("boss_head_texture", cb.BossHeadTexture, "npc"),
	} {
		if check != nil {
			return nil, check
		}
	}
	if len(cb.Equips) > 0 && kind != "item" {
		return nil, fmt.Errorf("%s %q: equip is only valid on item blocks", kind, cb.Name)
	}

	for _, eb := range cb.Equips {
		c.Equips = append(c.Equips, &config.EquipDefinition{
			Type:          eb.Type,
			Texture:       eb.Texture,
			ArmTexture:    eb.ArmTexture,
			FemaleTexture: eb.FemaleTexture,
		})
	}
	return c, nil
}

// decodeCounts reads `kind = n` attributes. Sound and equip kinds are written
// with an underscore, e.g. sound_music or equip_Body.
func decodeCounts(body hcl.Body) (map[string]int, error) {
	counts, diags := hclutil.NonNegativeInts(body)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make(map[string]int, len(counts))
	for name, n := range counts {
		out[kindKey(name)] = n
	}
	return out, nil
}

func kindKey(attr string) string {
	for _, prefix := range []string{"sound", "equip"} {
		if rest, ok := strings.CutPrefix(attr, prefix+"_"); ok {
			return prefix + "/" + rest
		}
	}
	return attr
}
