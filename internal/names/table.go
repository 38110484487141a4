// Package names implements the name-keyed registry used by every content
// category. Names are unique within one owner; two owners may register the
// same name independently.
package names

// TypeNamer is implemented by content types that declare the registration
// name they are conventionally registered under. The declared name is an
// explicit constant of the concrete type, never derived by reflection.
type TypeNamer interface {
	TypeName() string
}

// Table maps (owner, name) to a registered value and keeps each owner's
// registration order.
type Table[T any] struct {
	byOwner map[string]map[string]T
	order   map[string][]string
}

// New creates an empty Table.
func New[T any]() *Table[T] {
	return &Table[T]{
		byOwner: make(map[string]map[string]T),
		order:   make(map[string][]string),
	}
}

// Has reports whether owner already registered name.
func (t *Table[T]) Has(owner, name string) bool {
	_, ok := t.byOwner[owner][name]
	return ok
}

// Register stores v under (owner, name). It returns false without modifying
// the table when the name is already taken.
func (t *Table[T]) Register(owner, name string, v T) bool {
	if t.Has(owner, name) {
		return false
	}
	m, ok := t.byOwner[owner]
	if !ok {
		m = make(map[string]T)
		t.byOwner[owner] = m
	}
	m[name] = v
	t.order[owner] = append(t.order[owner], name)
	return true
}

// Lookup returns the value registered under (owner, name).
func (t *Table[T]) Lookup(owner, name string) (T, bool) {
	v, ok := t.byOwner[owner][name]
	return v, ok
}

// LookupByType looks up the entry registered under the declared name of typ.
// It returns absent when the owner registered that type under another name.
func (t *Table[T]) LookupByType(owner string, typ TypeNamer) (T, bool) {
	return t.Lookup(owner, typ.TypeName())
}

// Names returns owner's registration names in registration order.
func (t *Table[T]) Names(owner string) []string {
	out := make([]string, len(t.order[owner]))
	copy(out, t.order[owner])
	return out
}

// Owners returns every owner that has at least one entry.
func (t *Table[T]) Owners() []string {
	out := make([]string, 0, len(t.byOwner))
	for o := range t.byOwner {
		out = append(out, o)
	}
	return out
}

// Len is the total number of entries across all owners.
func (t *Table[T]) Len() int {
	n := 0
	for _, m := range t.byOwner {
		n += len(m)
	}
	return n
}

// RemoveOwner drops all of owner's entries and returns them in registration order.
func (t *Table[T]) RemoveOwner(owner string) []T {
	names := t.order[owner]
	out := make([]T, 0, len(names))
	for _, n := range names {
		out = append(out, t.byOwner[owner][n])
	}
	delete(t.byOwner, owner)
	delete(t.order, owner)
	return out
}

// Clear empties the table.
func (t *Table[T]) Clear() {
	clear(t.byOwner)
	clear(t.order)
}
