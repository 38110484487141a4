// Package xref holds the side tables that link a slot of one category to a
// slot of another. Entries are additive for the lifetime of a session; a later
// Link for the same key overwrites the earlier value, and lookups of absent
// keys return a defined "none" value instead of failing.
package xref

// None is the value returned by slot lookups that find nothing.
const None = -1

// Table is an overwrite-on-insert map with a fixed fallback value.
type Table[K comparable, V any] struct {
	entries map[K]V
	none    V
}

// NewTable creates a Table whose absent lookups return none.
func NewTable[K comparable, V any](none V) *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V), none: none}
}

// NewSlotTable creates a slot-to-slot table with None as fallback.
func NewSlotTable[K comparable]() *Table[K, int] {
	return NewTable[K, int](None)
}

// Link stores v under k, replacing any previous value.
func (t *Table[K, V]) Link(k K, v V) {
	t.entries[k] = v
}

// Get returns the value under k, or the table's none value.
func (t *Table[K, V]) Get(k K) V {
	if v, ok := t.entries[k]; ok {
		return v
	}
	return t.none
}

// Lookup returns the value under k and whether it was present.
func (t *Table[K, V]) Lookup(k K) (V, bool) {
	v, ok := t.entries[k]
	return v, ok
}

// Has reports whether k was linked.
func (t *Table[K, V]) Has(k K) bool {
	_, ok := t.entries[k]
	return ok
}

// Len is the number of linked keys.
func (t *Table[K, V]) Len() int {
	return len(t.entries)
}

// Each calls fn for every entry in unspecified order.
func (t *Table[K, V]) Each(fn func(K, V)) {
	for k, v := range t.entries {
		fn(k, v)
	}
}

// Clear removes all entries. Only called at session end.
func (t *Table[K, V]) Clear() {
	clear(t.entries)
}
