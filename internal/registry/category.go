package registry

import (
	"reflect"
	"sort"

	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/names"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/regerr"
	"github.com/vk/modslots/internal/slot"
)

// NoSlot is returned by failed Add operations.
const NoSlot = regerr.NoSlot

// Category is the registry of one slotted content kind.
type Category[T content.Object] struct {
	kind     content.Kind
	base     int
	capacity int

	alloc   *slot.Allocator
	names   *names.Table[T]
	bySlot  map[int]T
	ordered []T
}

func newCategory[T content.Object](kind content.Kind, base, capacity int) *Category[T] {
	return &Category[T]{
		kind:     kind,
		base:     base,
		capacity: capacity,
		alloc:    slot.New(base),
		names:    names.New[T](),
		bySlot:   make(map[int]T),
	}
}

// Kind returns the category's content kind.
func (c *Category[T]) Kind() content.Kind { return c.kind }

// Base is the built-in content count and the first extension slot.
func (c *Category[T]) Base() int { return c.alloc.Base() }

// Count is the size of the numbering space: built-in plus reserved slots.
func (c *Category[T]) Count() int { return c.alloc.Count() }

// Capacity is the ceiling of the numbering space, or 0 when unbounded.
func (c *Category[T]) Capacity() int { return c.capacity }

// IsModded reports whether s was reserved by an extension this session.
func (c *Category[T]) IsModded(s int) bool { return c.alloc.IsReserved(s) }

// Valid reports whether s is a built-in or reserved slot.
func (c *Category[T]) Valid(s int) bool { return c.alloc.Valid(s) }

// Get returns the object owner registered under name.
func (c *Category[T]) Get(ownerName, name string) (T, bool) {
	return c.names.Lookup(ownerName, name)
}

// GetByType returns the object owner registered under typ's declared name.
func (c *Category[T]) GetByType(ownerName string, typ names.TypeNamer) (T, bool) {
	return c.names.LookupByType(ownerName, typ)
}

// SlotOf returns the slot of the object owner registered under name.
func (c *Category[T]) SlotOf(ownerName, name string) (int, bool) {
	v, ok := c.names.Lookup(ownerName, name)
	if !ok {
		return 0, false
	}
	return v.Base().Slot, true
}

// BySlot returns the live extension object occupying s.
func (c *Category[T]) BySlot(s int) (T, bool) {
	v, ok := c.bySlot[s]
	return v, ok
}

func (c *Category[T]) meta(s int) (*content.Meta, bool) {
	obj, ok := c.BySlot(s)
	if !ok {
		return nil, false
	}
	return obj.Base(), true
}

// All returns the live objects in registration order.
func (c *Category[T]) All() []T {
	out := make([]T, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len is the number of live registrations.
func (c *Category[T]) Len() int { return len(c.ordered) }

// Owned returns owner's registration names in order.
func (c *Category[T]) Owned(ownerName string) []string {
	return c.names.Names(ownerName)
}

// check runs every validation that precedes slot reservation.
func (c *Category[T]) check(o *owner.Owner, name string, obj T) error {
	if err := o.Gate(string(c.kind), name); err != nil {
		return err
	}
	return c.checkEntry(o, name, obj)
}

func (c *Category[T]) checkEntry(o *owner.Owner, name string, obj T) error {
	cat := string(c.kind)
	if name == "" {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "registration name must not be empty")
	}
	if isNil(obj) {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "object must not be nil")
	}
	if m := obj.Base(); m.Registered() {
		return regerr.Invalid(o.Name(), cat, name, m.Slot, "object is already registered as "+m.FullName())
	}
	if c.names.Has(o.Name(), name) {
		return regerr.DuplicateName(o.Name(), cat, name)
	}
	if c.capacity > 0 && c.alloc.Peek() >= c.capacity {
		return regerr.OutOfRange(o.Name(), cat, name, c.alloc.Peek(), "category capacity reached")
	}
	return nil
}

// commit reserves a slot and inserts obj. It must only follow a passing check.
func (c *Category[T]) commit(o *owner.Owner, name string, obj T) int {
	s := c.alloc.Reserve()
	// Cannot fail: check rejected stamped objects.
	_ = obj.Base().Stamp(o.Name(), name, s)
	c.names.Register(o.Name(), name, obj)
	c.bySlot[s] = obj
	c.ordered = append(c.ordered, obj)
	return s
}

// removeOwner drops owner's objects from names and the ordered list. Their
// slots stay reserved.
func (c *Category[T]) removeOwner(ownerName string) int {
	removed := c.names.RemoveOwner(ownerName)
	if len(removed) == 0 {
		return 0
	}
	for _, obj := range removed {
		delete(c.bySlot, obj.Base().Slot)
	}
	kept := c.ordered[:0]
	for _, obj := range c.ordered {
		if obj.Base().Owner != ownerName {
			kept = append(kept, obj)
		}
	}
	var zero T
	for i := len(kept); i < len(c.ordered); i++ {
		c.ordered[i] = zero
	}
	c.ordered = kept
	return len(removed)
}

func (c *Category[T]) reset() {
	c.alloc = slot.New(c.base)
	c.names.Clear()
	clear(c.bySlot)
	c.ordered = nil
}

// NamedCategory registers objects by name only; they receive no slot.
type NamedCategory[T content.Object] struct {
	kind    content.Kind
	names   *names.Table[T]
	ordered []T
}

func newNamedCategory[T content.Object](kind content.Kind) *NamedCategory[T] {
	return &NamedCategory[T]{kind: kind, names: names.New[T]()}
}

// Kind returns the category's content kind.
func (c *NamedCategory[T]) Kind() content.Kind { return c.kind }

// Get returns the object owner registered under name.
func (c *NamedCategory[T]) Get(ownerName, name string) (T, bool) {
	return c.names.Lookup(ownerName, name)
}

// All returns live objects in registration order.
func (c *NamedCategory[T]) All() []T {
	out := make([]T, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Len is the number of live registrations.
func (c *NamedCategory[T]) Len() int { return len(c.ordered) }

// Owned returns owner's registration names in order.
func (c *NamedCategory[T]) Owned(ownerName string) []string {
	return c.names.Names(ownerName)
}

func (c *NamedCategory[T]) check(o *owner.Owner, name string, obj T) error {
	cat := string(c.kind)
	if err := o.Gate(cat, name); err != nil {
		return err
	}
	if name == "" {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "registration name must not be empty")
	}
	if isNil(obj) {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "object must not be nil")
	}
	if m := obj.Base(); m.Registered() {
		return regerr.Invalid(o.Name(), cat, name, NoSlot, "object is already registered as "+m.FullName())
	}
	if c.names.Has(o.Name(), name) {
		return regerr.DuplicateName(o.Name(), cat, name)
	}
	return nil
}

func (c *NamedCategory[T]) commit(o *owner.Owner, name string, obj T) {
	_ = obj.Base().Stamp(o.Name(), name, NoSlot)
	c.names.Register(o.Name(), name, obj)
	c.ordered = append(c.ordered, obj)
}

func (c *NamedCategory[T]) removeOwner(ownerName string) int {
	removed := c.names.RemoveOwner(ownerName)
	if len(removed) == 0 {
		return 0
	}
	kept := c.ordered[:0]
	for _, obj := range c.ordered {
		if obj.Base().Owner != ownerName {
			kept = append(kept, obj)
		}
	}
	var zero T
	for i := len(kept); i < len(c.ordered); i++ {
		c.ordered[i] = zero
	}
	c.ordered = kept
	return len(removed)
}

func (c *NamedCategory[T]) reset() {
	c.names.Clear()
	c.ordered = nil
}

// sortedKinds returns map keys in a stable order.
func sortedKinds[V any](m map[content.Kind]V) []content.Kind {
	out := make([]content.Kind, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// isNil reports whether v is nil or a typed nil pointer.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
