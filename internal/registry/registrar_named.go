package registry

import (
	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/netsync"
	"github.com/vk/modslots/internal/regerr"
)

// registerNamed runs the Add pipeline for a category without slots.
func registerNamed[T content.Object](r *Registrar, c *NamedCategory[T], name string, obj T, bs []binding) error {
	if err := c.check(r.owner, name, obj); err != nil {
		return err
	}
	bound, err := r.bind(string(c.kind), name, bs)
	if err != nil {
		return err
	}
	applyAssets(obj.Base(), bound)
	c.commit(r.owner, name, obj)
	r.logger.Debug("Registered content.", "category", c.kind, "name", name)
	return nil
}

// AddFont registers a font asset under name.
func (r *Registrar) AddFont(name, fontPath string) error {
	def := &content.FontDef{}
	if err := registerNamed(r, r.reg.Fonts, name, def, []binding{{key: "font", path: fontPath, kind: assets.KindFont}}); err != nil {
		return err
	}
	def.Font = def.Assets["font"]
	return nil
}

// AddEffect registers a shader effect asset under name.
func (r *Registrar) AddEffect(name, effectPath string) error {
	def := &content.EffectDef{}
	if err := registerNamed(r, r.reg.Effects, name, def, []binding{{key: "effect", path: effectPath, kind: assets.KindEffect}}); err != nil {
		return err
	}
	def.Effect = def.Assets["effect"]
	return nil
}

// CreateTranslation returns an unregistered translation handle for key. It
// may be called in any phase.
func (r *Registrar) CreateTranslation(key string) *content.TranslationDef {
	return r.reg.translations(r.owner.Name(), key)
}

// AddTranslation registers t under its key.
func (r *Registrar) AddTranslation(t *content.TranslationDef) error {
	name := ""
	if t != nil {
		name = t.Key
	}
	return registerNamed(r, r.reg.Translations, name, t, nil)
}

// RegisterHotKey registers a rebindable key binding. The returned handle is
// what the extension queries at runtime.
func (r *Registrar) RegisterHotKey(name, defaultKey string) (*content.HotKeyDef, error) {
	def := &content.HotKeyDef{DefaultKey: defaultKey}
	if err := r.owner.Gate(string(content.HotKey), name); err != nil {
		return nil, err
	}
	if defaultKey == "" {
		return nil, regerr.Invalid(r.owner.Name(), string(content.HotKey), name, NoSlot, "default key must not be empty")
	}
	if err := registerNamed(r, r.reg.HotKeys, name, def, nil); err != nil {
		return nil, err
	}
	return def, nil
}

// GetFont returns this owner's font name.
func (r *Registrar) GetFont(name string) (*content.FontDef, bool) {
	return r.reg.Fonts.Get(r.owner.Name(), name)
}

// GetEffect returns this owner's effect name.
func (r *Registrar) GetEffect(name string) (*content.EffectDef, bool) {
	return r.reg.Effects.Get(r.owner.Name(), name)
}

// GetTranslation returns this owner's translation registered under key.
func (r *Registrar) GetTranslation(key string) (*content.TranslationDef, bool) {
	return r.reg.Translations.Get(r.owner.Name(), key)
}

// GetHotKey returns this owner's hot key name.
func (r *Registrar) GetHotKey(name string) (*content.HotKeyDef, bool) {
	return r.reg.HotKeys.Get(r.owner.Name(), name)
}

// GetPacket starts a packet addressed to this owner's peer instance. Owners
// without a network identity cannot send packets.
func (r *Registrar) GetPacket() (*netsync.Packet, error) {
	if !r.owner.HasNetworkIdentity() {
		return nil, regerr.Invalid(r.owner.Name(), "packet", "", NoSlot, "owner has no network identity")
	}
	return netsync.NewPacket(r.owner.Name(), r.owner.NetID())
}
