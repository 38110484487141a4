package registry

import (
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/regerr"
)

// AddGlobal registers a global hook in the hook category kind and returns its
// position in the category's ordered list.
func (r *Registrar) AddGlobal(kind content.Kind, name string, hook content.Hook) (int, error) {
	c, ok := r.reg.Hooks[kind]
	if !ok {
		return NoSlot, regerr.Invalid(r.owner.Name(), string(kind), name, NoSlot, "not a global hook category")
	}
	if err := c.check(r.owner, name, hook); err != nil {
		return NoSlot, err
	}
	pos, collapsed := c.commit(r.owner, name, hook)
	r.logger.Debug("Registered global hook.", "category", kind, "name", name, "slot", pos, "hook_type", hook.HookType())
	if collapsed {
		r.logger.Info("Global hook type now requires per-instance dispatch.", "category", kind, "hook_type", hook.HookType())
	}
	return pos, nil
}

// AddGlobalItem registers a hook observing every item.
func (r *Registrar) AddGlobalItem(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalItem, name, hook)
}

// AddGlobalNPC registers a hook observing every NPC.
func (r *Registrar) AddGlobalNPC(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalNPC, name, hook)
}

// AddGlobalProjectile registers a hook observing every projectile.
func (r *Registrar) AddGlobalProjectile(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalProjectile, name, hook)
}

// AddGlobalTile registers a hook observing every tile.
func (r *Registrar) AddGlobalTile(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalTile, name, hook)
}

// AddGlobalWall registers a hook observing every wall.
func (r *Registrar) AddGlobalWall(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalWall, name, hook)
}

// AddGlobalBuff registers a hook observing every buff.
func (r *Registrar) AddGlobalBuff(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.GlobalBuff, name, hook)
}

// AddPlayer registers per-player state attached to every player.
func (r *Registrar) AddPlayer(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.Player, name, hook)
}

// AddWorld registers per-world state.
func (r *Registrar) AddWorld(name string, hook content.Hook) (int, error) {
	return r.AddGlobal(content.World, name, hook)
}

// GetGlobal returns the hook this owner registered in kind under name.
func (r *Registrar) GetGlobal(kind content.Kind, name string) (content.Hook, bool) {
	c, ok := r.reg.Hooks[kind]
	if !ok {
		return nil, false
	}
	return c.Get(r.owner.Name(), name)
}
