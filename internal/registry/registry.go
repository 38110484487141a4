package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/xref"
)

// TranslationFactory creates an unregistered localizable string for key on
// behalf of owner.
type TranslationFactory func(ownerName, key string) *content.TranslationDef

// DefaultTranslations builds "Mods.<Owner>.<key>" translation handles.
func DefaultTranslations(ownerName, key string) *content.TranslationDef {
	return &content.TranslationDef{Key: "Mods." + ownerName + "." + key}
}

// Option configures a Registry.
type Option func(*Registry)

// WithBuiltin sets the built-in count of each category.
func WithBuiltin(b content.Builtin) Option {
	return func(r *Registry) { r.builtin = b }
}

// WithCapacity sets per-category ceilings on the numbering space.
func WithCapacity(c map[content.Kind]int) Option {
	return func(r *Registry) { r.capacity = c }
}

// WithTranslationFactory replaces the translation collaborator.
func WithTranslationFactory(f TranslationFactory) Option {
	return func(r *Registry) { r.translations = f }
}

// WithBinder replaces the asset binder.
func WithBinder(b *assets.Binder) Option {
	return func(r *Registry) { r.Assets = b }
}

// Registry is the content registry of one session.
type Registry struct {
	logger       *slog.Logger
	builtin      content.Builtin
	capacity     map[content.Kind]int
	translations TranslationFactory

	Assets *assets.Binder
	XRef   *xref.Tables

	Items                  *Category[content.Object]
	Tiles                  *Category[content.Object]
	Walls                  *Category[content.Object]
	NPCs                   *Category[content.Object]
	Projectiles            *Category[content.Object]
	Buffs                  *Category[content.Object]
	Mounts                 *Category[content.Object]
	SurfaceBackgrounds     *Category[content.Object]
	UndergroundBackgrounds *Category[content.Object]
	WaterStyles            *Category[content.Object]
	WaterfallStyles        *Category[content.Object]
	Gores                  *Category[content.Object]
	BackgroundTextures     *Category[*content.TextureSlot]
	NPCHeads               *Category[*content.HeadTexture]
	BossHeads              *Category[*content.HeadTexture]
	Sounds                 map[content.SoundType]*Category[*content.SoundDef]
	Equips                 map[xref.EquipType]*Category[*content.EquipTexture]

	MusicBoxes   *NamedCategory[*content.MusicBoxDef]
	Fonts        *NamedCategory[*content.FontDef]
	Effects      *NamedCategory[*content.EffectDef]
	Translations *NamedCategory[*content.TranslationDef]
	HotKeys      *NamedCategory[*content.HotKeyDef]

	Hooks map[content.Kind]*HookCategory

	slotted map[content.Kind]slotted
	named   map[content.Kind]unloadable
}

// slotted is the type-erased view of a Category used for reporting and unload.
type slotted interface {
	unloadable
	Kind() content.Kind
	Base() int
	Count() int
	Len() int
	Owned(ownerName string) []string
	meta(s int) (*content.Meta, bool)
	rows() []Row
}

type unloadable interface {
	removeOwner(ownerName string) int
	reset()
}

// New creates the registry of a session. Categories are numbered from their
// built-in counts; kinds missing from the builtin table start at zero.
func New(logger *slog.Logger, opts ...Option) *Registry {
	r := &Registry{
		logger:       logger,
		builtin:      content.DefaultBuiltin(),
		translations: DefaultTranslations,
		Assets:       assets.NewBinder(),
		XRef:         xref.NewTables(),
		Sounds:       make(map[content.SoundType]*Category[*content.SoundDef]),
		Equips:       make(map[xref.EquipType]*Category[*content.EquipTexture]),
		Hooks:        make(map[content.Kind]*HookCategory),
		slotted:      make(map[content.Kind]slotted),
		named:        make(map[content.Kind]unloadable),
	}
	for _, opt := range opts {
		opt(r)
	}

	obj := func(k content.Kind) *Category[content.Object] {
		c := newCategory[content.Object](k, r.builtin[k], r.capacity[k])
		r.slotted[k] = c
		return c
	}
	r.Items = obj(content.Item)
	r.Tiles = obj(content.Tile)
	r.Walls = obj(content.Wall)
	r.NPCs = obj(content.NPC)
	r.Projectiles = obj(content.Projectile)
	r.Buffs = obj(content.Buff)
	r.Mounts = obj(content.Mount)
	r.SurfaceBackgrounds = obj(content.SurfaceBackground)
	r.UndergroundBackgrounds = obj(content.UndergroundBackground)
	r.WaterStyles = obj(content.WaterStyle)
	r.WaterfallStyles = obj(content.WaterfallStyle)
	r.Gores = obj(content.Gore)

	r.BackgroundTextures = newCategory[*content.TextureSlot](content.BackgroundTexture,
		r.builtin[content.BackgroundTexture], r.capacity[content.BackgroundTexture])
	r.slotted[content.BackgroundTexture] = r.BackgroundTextures
	r.NPCHeads = newCategory[*content.HeadTexture](content.NPCHead, r.builtin[content.NPCHead], r.capacity[content.NPCHead])
	r.slotted[content.NPCHead] = r.NPCHeads
	r.BossHeads = newCategory[*content.HeadTexture](content.BossHead, r.builtin[content.BossHead], r.capacity[content.BossHead])
	r.slotted[content.BossHead] = r.BossHeads

	for _, t := range content.SoundTypes {
		k := content.SoundKind(t)
		c := newCategory[*content.SoundDef](k, r.builtin[k], r.capacity[k])
		r.Sounds[t] = c
		r.slotted[k] = c
	}
	for _, e := range xref.EquipTypes {
		k := content.EquipKind(e)
		c := newCategory[*content.EquipTexture](k, r.builtin[k], r.capacity[k])
		r.Equips[e] = c
		r.slotted[k] = c
	}

	r.MusicBoxes = newNamedCategory[*content.MusicBoxDef](content.MusicBox)
	r.Fonts = newNamedCategory[*content.FontDef](content.Font)
	r.Effects = newNamedCategory[*content.EffectDef](content.Effect)
	r.Translations = newNamedCategory[*content.TranslationDef](content.Translation)
	r.HotKeys = newNamedCategory[*content.HotKeyDef](content.HotKey)
	r.named[content.MusicBox] = r.MusicBoxes
	r.named[content.Font] = r.Fonts
	r.named[content.Effect] = r.Effects
	r.named[content.Translation] = r.Translations
	r.named[content.HotKey] = r.HotKeys

	for _, k := range content.HookKinds {
		r.Hooks[k] = newHookCategory(k)
	}

	logger.Debug("Registry initialized.", "slotted_categories", len(r.slotted), "hook_categories", len(r.Hooks))
	return r
}

// Logger returns the registry's logger.
func (r *Registry) Logger() *slog.Logger { return r.logger }

// Hook returns the hook category of kind.
func (r *Registry) Hook(kind content.Kind) (*HookCategory, error) {
	c, ok := r.Hooks[kind]
	if !ok {
		return nil, fmt.Errorf("%q is not a global hook category", kind)
	}
	return c, nil
}

// Counts returns the size of every slotted numbering space.
func (r *Registry) Counts() map[content.Kind]int {
	out := make(map[content.Kind]int, len(r.slotted))
	for k, c := range r.slotted {
		out[k] = c.Count()
	}
	return out
}

// Meta returns the metadata of the live object occupying slot s of kind.
func (r *Registry) Meta(kind content.Kind, s int) (*content.Meta, bool) {
	c, ok := r.slotted[kind]
	if !ok {
		return nil, false
	}
	return c.meta(s)
}

// Owned lists the names owner registered in kind, in registration order.
func (r *Registry) Owned(ownerName string, kind content.Kind) []string {
	if c, ok := r.slotted[kind]; ok {
		return c.Owned(ownerName)
	}
	if c, ok := r.Hooks[kind]; ok {
		return c.Owned(ownerName)
	}
	switch kind {
	case content.MusicBox:
		return r.MusicBoxes.Owned(ownerName)
	case content.Font:
		return r.Fonts.Owned(ownerName)
	case content.Effect:
		return r.Effects.Owned(ownerName)
	case content.Translation:
		return r.Translations.Owned(ownerName)
	case content.HotKey:
		return r.HotKeys.Owned(ownerName)
	}
	return nil
}

// For returns the Registrar through which o registers content.
func (r *Registry) For(o *owner.Owner) *Registrar {
	return &Registrar{reg: r, owner: o, logger: r.logger.With("owner", o.Name())}
}

// Unload removes owner's entries from every name table and ordered list and
// unmounts its assets. Slots are not reclaimed, hook collapses are not undone,
// and cross-reference entries stay in place.
func (r *Registry) Unload(o *owner.Owner) int {
	n := 0
	for _, k := range sortedKinds(r.slotted) {
		n += r.slotted[k].removeOwner(o.Name())
	}
	for _, k := range sortedKinds(r.named) {
		n += r.named[k].removeOwner(o.Name())
	}
	for _, k := range sortedKinds(r.Hooks) {
		n += r.Hooks[k].removeOwner(o.Name())
	}
	r.Assets.Unmount(o.Name())
	r.logger.Info("Owner content unloaded.", "owner", o.Name(), "removed", n)
	return n
}

// Clear ends the session: every category restarts at its built-in count.
func (r *Registry) Clear() {
	for _, c := range r.slotted {
		c.reset()
	}
	for _, c := range r.named {
		c.reset()
	}
	for _, c := range r.Hooks {
		c.reset()
	}
	r.XRef.Clear()
	r.Assets.Clear()
	r.logger.Debug("Registry cleared.")
}
