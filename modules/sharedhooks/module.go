// Package sharedhooks is a library of global hooks that any extension may
// register on its own behalf. Every owner registers the same Go types, so
// once a second owner loads them the hook types dispatch per instance.
package sharedhooks

import (
	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/hooks"
	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/internal/registry"
)

// Hook type tokens of the library.
const (
	ItemHookType   hooks.TypeToken = "sharedhooks.ItemHook"
	PlayerHookType hooks.TypeToken = "sharedhooks.PlayerHook"
)

// ItemHook adjusts the value of every item.
type ItemHook struct {
	content.Meta
	Bonus int
}

// HookType implements content.Hook.
func (*ItemHook) HookType() hooks.TypeToken { return ItemHookType }

// Apply returns value adjusted by the hook.
func (h *ItemHook) Apply(value int) int { return value + h.Bonus }

// PlayerHook tracks per-player state for the library.
type PlayerHook struct {
	content.Meta
}

// HookType implements content.Hook.
func (*PlayerHook) HookType() hooks.TypeToken { return PlayerHookType }

// AddTo plans the library hooks into p for whichever owner runs it.
func AddTo(p *loader.Plan, bonus int) {
	p.Add(content.GlobalItem, func(r *registry.Registrar) error {
		_, err := r.AddGlobalItem("LibraryItem", &ItemHook{Bonus: bonus})
		return err
	})
	p.Add(content.Player, func(r *registry.Registrar) error {
		_, err := r.AddPlayer("LibraryPlayer", &PlayerHook{})
		return err
	})
}

// Module is the standalone extension of the library.
type Module struct{}

// New returns the library extension.
func New() *Module { return &Module{} }

// Name implements loader.Extension.
func (*Module) Name() string { return "SharedHooks" }

// NeedsSync implements loader.Extension.
func (*Module) NeedsSync() bool { return false }

// Assets implements loader.Extension. The library ships no assets.
func (*Module) Assets() assets.Source { return nil }

// Build implements loader.Extension.
func (*Module) Build(p *loader.Plan) error {
	AddTo(p, 1)
	return nil
}
