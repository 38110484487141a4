package registry

import (
	"log/slog"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/regerr"
)

// Registrar is the registration surface handed to one owner's setup. Add
// operations are gated on the owner's loading phase; Get operations are pure
// lookups scoped to the owner.
type Registrar struct {
	reg    *Registry
	owner  *owner.Owner
	logger *slog.Logger
}

// Owner returns the owner this registrar acts for.
func (r *Registrar) Owner() *owner.Owner { return r.owner }

// Registry returns the session registry, for lookups of other owners' content.
func (r *Registrar) Registry() *Registry { return r.reg }

// binding requests one asset to be bound during registration. An empty key
// binds the primary texture.
type binding struct {
	key  string
	path string
	kind assets.Kind
	// optional bindings with an empty path are skipped.
	optional bool
}

func texture(path string) binding {
	return binding{path: path, kind: assets.KindTexture, optional: true}
}

func secondary(key, path string) binding {
	return binding{key: key, path: path, kind: assets.KindTexture, optional: true}
}

type boundAsset struct {
	key    string
	handle assets.Handle
}

// bind resolves every binding before anything is reserved.
func (r *Registrar) bind(category, name string, bs []binding) ([]boundAsset, error) {
	var out []boundAsset
	for _, b := range bs {
		if b.path == "" && b.optional {
			continue
		}
		h, err := r.reg.Assets.Bind(r.owner.Name(), category, name, b.path, b.kind)
		if err != nil {
			return nil, err
		}
		out = append(out, boundAsset{key: b.key, handle: h})
	}
	return out, nil
}

func applyAssets(m *content.Meta, bound []boundAsset) {
	for _, b := range bound {
		if b.key == "" {
			m.Texture = b.handle
			continue
		}
		if m.Assets == nil {
			m.Assets = make(map[string]assets.Handle)
		}
		m.Assets[b.key] = b.handle
	}
}

// register runs the shared Add pipeline for a slotted category. validate runs
// after the gate and name checks; link runs once the slot is known.
func register[T content.Object](r *Registrar, c *Category[T], name string, obj T, bs []binding, validate func() error, link func(slot int)) (int, error) {
	if err := c.check(r.owner, name, obj); err != nil {
		return NoSlot, err
	}
	if validate != nil {
		if err := validate(); err != nil {
			return NoSlot, err
		}
	}
	bound, err := r.bind(string(c.kind), name, bs)
	if err != nil {
		return NoSlot, err
	}
	applyAssets(obj.Base(), bound)
	s := c.commit(r.owner, name, obj)
	if link != nil {
		link(s)
	}
	r.logger.Debug("Registered content.", "category", c.kind, "name", name, "slot", s)
	return s, nil
}

func orDef(obj content.Object) content.Object {
	if obj == nil {
		return &content.Def{}
	}
	return obj
}

// AddItem registers an item with an optional texture.
func (r *Registrar) AddItem(name string, item content.Object, texturePath string) (int, error) {
	return register(r, r.reg.Items, name, item, []binding{texture(texturePath)}, nil, nil)
}

// AddTile registers a tile with optional texture and highlight texture.
func (r *Registrar) AddTile(name string, tile content.Object, texturePath, highlightPath string) (int, error) {
	return register(r, r.reg.Tiles, name, tile, []binding{texture(texturePath), secondary("highlight", highlightPath)}, nil, nil)
}

// AddWall registers a wall.
func (r *Registrar) AddWall(name string, wall content.Object, texturePath string) (int, error) {
	return register(r, r.reg.Walls, name, wall, []binding{texture(texturePath)}, nil, nil)
}

// AddNPC registers an NPC. Head textures are added separately with
// AddNPCHeadTexture and AddBossHeadTexture.
func (r *Registrar) AddNPC(name string, npc content.Object, texturePath string) (int, error) {
	return register(r, r.reg.NPCs, name, npc, []binding{texture(texturePath)}, nil, nil)
}

// AddProjectile registers a projectile.
func (r *Registrar) AddProjectile(name string, projectile content.Object, texturePath string) (int, error) {
	return register(r, r.reg.Projectiles, name, projectile, []binding{texture(texturePath)}, nil, nil)
}

// AddBuff registers a buff.
func (r *Registrar) AddBuff(name string, buff content.Object, texturePath string) (int, error) {
	return register(r, r.reg.Buffs, name, buff, []binding{texture(texturePath)}, nil, nil)
}

// AddMount registers a mount.
func (r *Registrar) AddMount(name string, mount content.Object, texturePath string) (int, error) {
	return register(r, r.reg.Mounts, name, mount, []binding{texture(texturePath)}, nil, nil)
}

// AddSurfaceBgStyle registers a surface background style.
func (r *Registrar) AddSurfaceBgStyle(name string, style content.Object) (int, error) {
	return register(r, r.reg.SurfaceBackgrounds, name, style, nil, nil, nil)
}

// AddUndergroundBgStyle registers an underground background style.
func (r *Registrar) AddUndergroundBgStyle(name string, style content.Object) (int, error) {
	return register(r, r.reg.UndergroundBackgrounds, name, style, nil, nil, nil)
}

// AddWaterStyle registers a water style with its water and block textures.
func (r *Registrar) AddWaterStyle(name string, style content.Object, texturePath, blockTexturePath string) (int, error) {
	bs := []binding{
		{path: texturePath, kind: assets.KindTexture},
		{key: "block", path: blockTexturePath, kind: assets.KindTexture},
	}
	return register(r, r.reg.WaterStyles, name, style, bs, nil, nil)
}

// AddWaterfallStyle registers a waterfall style.
func (r *Registrar) AddWaterfallStyle(name string, style content.Object, texturePath string) (int, error) {
	bs := []binding{{path: texturePath, kind: assets.KindTexture}}
	return register(r, r.reg.WaterfallStyles, name, style, bs, nil, nil)
}

// AddGore registers a gore texture. gore may be nil for a texture-only gore.
func (r *Registrar) AddGore(name string, gore content.Object, texturePath string) (int, error) {
	bs := []binding{{path: texturePath, kind: assets.KindTexture}}
	return register(r, r.reg.Gores, name, orDef(gore), bs, nil, nil)
}

// AddBackgroundTexture reserves a background texture slot. The texture path is
// the registration name.
func (r *Registrar) AddBackgroundTexture(texturePath string) (int, error) {
	bs := []binding{{path: texturePath, kind: assets.KindTexture}}
	return register(r, r.reg.BackgroundTextures, texturePath, &content.TextureSlot{}, bs, nil, nil)
}

// AddSound registers a sound in the numbering space of t.
func (r *Registrar) AddSound(t content.SoundType, name, soundPath string) (int, error) {
	c, ok := r.reg.Sounds[t]
	if !ok {
		return NoSlot, regerr.Invalid(r.owner.Name(), "sound", name, NoSlot, "unknown sound type "+string(t))
	}
	want := assets.KindSound
	if t == content.SoundMusic {
		want = assets.KindMusic
	}
	def := &content.SoundDef{Type: t}
	bs := []binding{{key: "sound", path: soundPath, kind: want}}
	return register(r, c, name, def, bs, nil, func(int) {
		def.Sound = def.Assets["sound"]
	})
}

// --- Lookups scoped to this owner ---

// GetItem returns the item this owner registered under name.
func (r *Registrar) GetItem(name string) (content.Object, bool) {
	return r.reg.Items.Get(r.owner.Name(), name)
}

// ItemType returns the slot of this owner's item name.
func (r *Registrar) ItemType(name string) (int, bool) {
	return r.reg.Items.SlotOf(r.owner.Name(), name)
}

// GetTile returns the tile this owner registered under name.
func (r *Registrar) GetTile(name string) (content.Object, bool) {
	return r.reg.Tiles.Get(r.owner.Name(), name)
}

// TileType returns the slot of this owner's tile name.
func (r *Registrar) TileType(name string) (int, bool) {
	return r.reg.Tiles.SlotOf(r.owner.Name(), name)
}

// GetWall returns the wall this owner registered under name.
func (r *Registrar) GetWall(name string) (content.Object, bool) {
	return r.reg.Walls.Get(r.owner.Name(), name)
}

// WallType returns the slot of this owner's wall name.
func (r *Registrar) WallType(name string) (int, bool) {
	return r.reg.Walls.SlotOf(r.owner.Name(), name)
}

// GetNPC returns the NPC this owner registered under name.
func (r *Registrar) GetNPC(name string) (content.Object, bool) {
	return r.reg.NPCs.Get(r.owner.Name(), name)
}

// NPCType returns the slot of this owner's NPC name.
func (r *Registrar) NPCType(name string) (int, bool) {
	return r.reg.NPCs.SlotOf(r.owner.Name(), name)
}

// GetProjectile returns the projectile this owner registered under name.
func (r *Registrar) GetProjectile(name string) (content.Object, bool) {
	return r.reg.Projectiles.Get(r.owner.Name(), name)
}

// ProjectileType returns the slot of this owner's projectile name.
func (r *Registrar) ProjectileType(name string) (int, bool) {
	return r.reg.Projectiles.SlotOf(r.owner.Name(), name)
}

// GetBuff returns the buff this owner registered under name.
func (r *Registrar) GetBuff(name string) (content.Object, bool) {
	return r.reg.Buffs.Get(r.owner.Name(), name)
}

// BuffType returns the slot of this owner's buff name.
func (r *Registrar) BuffType(name string) (int, bool) {
	return r.reg.Buffs.SlotOf(r.owner.Name(), name)
}

// GetMount returns the mount this owner registered under name.
func (r *Registrar) GetMount(name string) (content.Object, bool) {
	return r.reg.Mounts.Get(r.owner.Name(), name)
}

// MountType returns the slot of this owner's mount name.
func (r *Registrar) MountType(name string) (int, bool) {
	return r.reg.Mounts.SlotOf(r.owner.Name(), name)
}

// SoundSlot returns the slot of this owner's sound name of type t.
func (r *Registrar) SoundSlot(t content.SoundType, name string) (int, bool) {
	c, ok := r.reg.Sounds[t]
	if !ok {
		return 0, false
	}
	return c.SlotOf(r.owner.Name(), name)
}
