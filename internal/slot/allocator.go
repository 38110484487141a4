// Package slot hands out the integer identities of registered content.
//
// One Allocator exists per content category. Built-in content occupies
// [0, base) and extension content is numbered from base upwards. Slots are
// never reused within a session, even after their owner unloads.
//
// An Allocator is not safe for concurrent use; reservation only happens on the
// single loader goroutine.
package slot

// Allocator issues strictly increasing slots for one category.
type Allocator struct {
	base int
	next int
}

// New creates an Allocator whose first reserved slot is base.
func New(base int) *Allocator {
	if base < 0 {
		base = 0
	}
	return &Allocator{base: base, next: base}
}

// Reserve returns the next slot and advances the counter.
func (a *Allocator) Reserve() int {
	s := a.next
	a.next++
	return s
}

// Peek returns the slot the next Reserve call would return.
func (a *Allocator) Peek() int {
	return a.next
}

// Base is the built-in content count, i.e. the first extension slot.
func (a *Allocator) Base() int {
	return a.base
}

// Count is the total size of the numbering space so far (built-in plus reserved).
func (a *Allocator) Count() int {
	return a.next
}

// Reserved is the number of slots handed out to extensions.
func (a *Allocator) Reserved() int {
	return a.next - a.base
}

// IsBuiltin reports whether s belongs to the built-in range.
func (a *Allocator) IsBuiltin(s int) bool {
	return s >= 0 && s < a.base
}

// IsReserved reports whether s was handed out by Reserve.
func (a *Allocator) IsReserved(s int) bool {
	return s >= a.base && s < a.next
}

// Valid reports whether s is either built-in or reserved.
func (a *Allocator) Valid(s int) bool {
	return s >= 0 && s < a.next
}
