package registry

import (
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/names"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/regerr"
)

// HookCategory holds the global hooks of one kind. Positions in its ordered
// list are stamped onto each hook as its slot.
type HookCategory struct {
	kind     content.Kind
	resolver *hooks.Resolver[content.Hook]
}

func newHookCategory(kind content.Kind) *HookCategory {
	return &HookCategory{kind: kind, resolver: hooks.NewResolver[content.Hook]()}
}

// Kind returns the category's content kind.
func (c *HookCategory) Kind() content.Kind { return c.kind }

// Get returns the hook owner registered under name.
func (c *HookCategory) Get(ownerName, name string) (content.Hook, bool) {
	h, _, ok := c.resolver.Lookup(ownerName, name)
	return h, ok
}

// GetByType returns the hook owner registered under typ's declared name.
func (c *HookCategory) GetByType(ownerName string, typ names.TypeNamer) (content.Hook, bool) {
	return c.Get(ownerName, typ.TypeName())
}

// Position returns the ordered-list position of the hook owner registered under name.
func (c *HookCategory) Position(ownerName, name string) (int, bool) {
	_, pos, ok := c.resolver.Lookup(ownerName, name)
	return pos, ok
}

// TypeIndex returns the shared index of token or hooks.PerInstance.
func (c *HookCategory) TypeIndex(token hooks.TypeToken) (int, bool) {
	return c.resolver.TypeIndex(token)
}

// Shared returns the hook serving every instance of token, when one exists.
func (c *HookCategory) Shared(token hooks.TypeToken) (content.Hook, bool) {
	return c.resolver.Shared(token)
}

// Collapsed reports whether token requires per-instance dispatch.
func (c *HookCategory) Collapsed(token hooks.TypeToken) bool {
	return c.resolver.Collapsed(token)
}

// At returns the live hook at pos.
func (c *HookCategory) At(pos int) (content.Hook, bool) {
	return c.resolver.At(pos)
}

// All returns live hooks in registration order.
func (c *HookCategory) All() []content.Hook {
	return c.resolver.Hooks()
}

// Registrations returns live registrations with their positions.
func (c *HookCategory) Registrations() []hooks.Registration[content.Hook] {
	return c.resolver.Registrations()
}

// Len is the number of live hooks.
func (c *HookCategory) Len() int { return c.resolver.Len() }

// Owned returns owner's hook names in registration order.
func (c *HookCategory) Owned(ownerName string) []string {
	var out []string
	for _, r := range c.resolver.Registrations() {
		if r.Owner == ownerName {
			out = append(out, r.Name)
		}
	}
	return out
}

func (c *HookCategory) check(o *owner.Owner, name string, h content.Hook) error {
	cat := string(c.kind)
	if err := o.Gate(cat, name); err != nil {
		return err
	}
	if name == "" {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "registration name must not be empty")
	}
	if isNil(h) {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "hook must not be nil")
	}
	if h.HookType() == "" {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "hook type token must not be empty")
	}
	if m := h.Base(); m.Registered() {
		return regerr.Invalid(o.Name(), cat, name, m.Slot, "hook is already registered as "+m.FullName())
	}
	if c.resolver.Has(o.Name(), name) {
		return regerr.DuplicateName(o.Name(), cat, name)
	}
	return nil
}

func (c *HookCategory) commit(o *owner.Owner, name string, h content.Hook) (pos int, collapsed bool) {
	// Cannot fail: check rejected duplicate keys.
	pos, collapsed, _ = c.resolver.Register(o.Name(), name, h.HookType(), h)
	_ = h.Base().Stamp(o.Name(), name, pos)
	return pos, collapsed
}

func (c *HookCategory) removeOwner(ownerName string) int {
	return c.resolver.RemoveOwner(ownerName)
}

func (c *HookCategory) reset() {
	c.resolver.Clear()
}
