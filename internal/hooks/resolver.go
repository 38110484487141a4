package hooks

import "fmt"

// PerInstance is the type index of a collapsed token.
const PerInstance = -1

// TypeToken is the stable identifier of a hook's implementation type,
// supplied by the owner.
type TypeToken string

// Key renders a registration as "owner:name" for messages and display.
// Lookups never use it.
func Key(owner, name string) string {
	return owner + ":" + name
}

// regKey identifies a registration by owner and name.
type regKey struct {
	owner string
	name  string
}

type entry[H any] struct {
	owner string
	name  string
	token TypeToken
	hook  H
	live  bool
}

// Registration describes one entry of the ordered list.
type Registration[H any] struct {
	Owner    string
	Name     string
	Token    TypeToken
	Position int
	Hook     H
}

// Resolver holds the ordered hook list and the per-token index table of one
// category. It is not safe for concurrent mutation.
type Resolver[H any] struct {
	entries   []entry[H]
	typeIndex map[TypeToken]int
	byKey     map[regKey]int
}

// NewResolver creates an empty Resolver.
func NewResolver[H any]() *Resolver[H] {
	return &Resolver[H]{
		typeIndex: make(map[TypeToken]int),
		byKey:     make(map[regKey]int),
	}
}

// Has reports whether owner already registered a live hook under name.
func (r *Resolver[H]) Has(owner, name string) bool {
	_, ok := r.byKey[regKey{owner, name}]
	return ok
}

// Register appends h and returns its position and whether this registration
// collapsed the token. It fails when owner already registered name.
func (r *Resolver[H]) Register(owner, name string, token TypeToken, h H) (pos int, collapsed bool, err error) {
	key := regKey{owner, name}
	if _, ok := r.byKey[key]; ok {
		return PerInstance, false, fmt.Errorf("hook %q already registered", Key(owner, name))
	}

	pos = len(r.entries)
	r.entries = append(r.entries, entry[H]{owner: owner, name: name, token: token, hook: h, live: true})
	r.byKey[key] = pos

	prev, seen := r.typeIndex[token]
	switch {
	case !seen:
		r.typeIndex[token] = pos
	case prev != PerInstance:
		r.typeIndex[token] = PerInstance
		collapsed = true
	}
	return pos, collapsed, nil
}

// TypeIndex returns the shared position of token, or PerInstance once
// collapsed. ok is false when token was never registered.
func (r *Resolver[H]) TypeIndex(token TypeToken) (idx int, ok bool) {
	idx, ok = r.typeIndex[token]
	return idx, ok
}

// Collapsed reports whether token requires per-instance dispatch.
func (r *Resolver[H]) Collapsed(token TypeToken) bool {
	idx, ok := r.typeIndex[token]
	return ok && idx == PerInstance
}

// Shared returns the single live hook of token when shared dispatch applies.
func (r *Resolver[H]) Shared(token TypeToken) (H, bool) {
	var zero H
	idx, ok := r.typeIndex[token]
	if !ok || idx == PerInstance || !r.entries[idx].live {
		return zero, false
	}
	return r.entries[idx].hook, true
}

// Lookup returns the hook registered by owner under name and its position.
func (r *Resolver[H]) Lookup(owner, name string) (H, int, bool) {
	var zero H
	pos, ok := r.byKey[regKey{owner, name}]
	if !ok {
		return zero, PerInstance, false
	}
	return r.entries[pos].hook, pos, true
}

// At returns the live hook at pos.
func (r *Resolver[H]) At(pos int) (H, bool) {
	var zero H
	if pos < 0 || pos >= len(r.entries) || !r.entries[pos].live {
		return zero, false
	}
	return r.entries[pos].hook, true
}

// Hooks returns live hooks in registration order.
func (r *Resolver[H]) Hooks() []H {
	out := make([]H, 0, len(r.byKey))
	for _, e := range r.entries {
		if e.live {
			out = append(out, e.hook)
		}
	}
	return out
}

// Registrations returns live registrations in order.
func (r *Resolver[H]) Registrations() []Registration[H] {
	out := make([]Registration[H], 0, len(r.byKey))
	for i, e := range r.entries {
		if !e.live {
			continue
		}
		out = append(out, Registration[H]{Owner: e.owner, Name: e.name, Token: e.token, Position: i, Hook: e.hook})
	}
	return out
}

// Len is the number of live registrations.
func (r *Resolver[H]) Len() int {
	return len(r.byKey)
}

// Positions is the length of the ordered list including unloaded entries.
func (r *Resolver[H]) Positions() int {
	return len(r.entries)
}

// RemoveOwner tombstones every hook of owner. Positions of other entries do
// not move and the type index table is left untouched.
func (r *Resolver[H]) RemoveOwner(owner string) int {
	var zero H
	n := 0
	for i := range r.entries {
		e := &r.entries[i]
		if !e.live || e.owner != owner {
			continue
		}
		delete(r.byKey, regKey{e.owner, e.name})
		e.live = false
		e.hook = zero
		n++
	}
	return n
}

// Clear resets the resolver for a new session.
func (r *Resolver[H]) Clear() {
	r.entries = nil
	clear(r.typeIndex)
	clear(r.byKey)
}
