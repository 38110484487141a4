package assets

import (
	"github.com/vk/modslots/internal/regerr"
)

// Binder resolves asset paths against the sources of loaded owners.
// Binding is eager: it is called at registration time so a missing asset
// aborts the owner's setup instead of surfacing during gameplay.
type Binder struct {
	sources map[string]Source
}

// NewBinder creates a Binder with no mounted sources.
func NewBinder() *Binder {
	return &Binder{sources: make(map[string]Source)}
}

// Mount makes owner's assets available for binding.
func (b *Binder) Mount(owner string, src Source) {
	b.sources[owner] = src
}

// Unmount removes owner's source.
func (b *Binder) Unmount(owner string) {
	delete(b.sources, owner)
}

// Exists reports whether fullPath resolves to a loaded asset.
func (b *Binder) Exists(fullPath string) bool {
	o, rel, err := SplitPath(fullPath)
	if err != nil {
		return false
	}
	src, ok := b.sources[o]
	return ok && src.Exists(rel)
}

// Bind returns the handle for fullPath on behalf of owner registering name in
// category. want restricts the asset kind; KindAny accepts every kind.
func (b *Binder) Bind(owner, category, name, fullPath string, want Kind) (Handle, error) {
	o, rel, err := SplitPath(fullPath)
	if err != nil {
		return Handle{}, regerr.MissingResource(owner, category, name, fullPath, err)
	}
	src, ok := b.sources[o]
	if !ok || !src.Exists(rel) {
		return Handle{}, regerr.MissingResource(owner, category, name, fullPath, nil)
	}
	h, err := src.Load(rel)
	if err != nil {
		return Handle{}, regerr.MissingResource(owner, category, name, fullPath, err)
	}
	if want != KindAny && h.Kind != KindAny && h.Kind != want {
		e := regerr.MissingResource(owner, category, name, fullPath, nil)
		e.Message += ", found a " + string(h.Kind) + " asset but need a " + string(want)
		return Handle{}, e
	}
	return h, nil
}

// BindOptional binds fullPath when it is non-empty and returns a zero Handle otherwise.
func (b *Binder) BindOptional(owner, category, name, fullPath string, want Kind) (Handle, error) {
	if fullPath == "" {
		return Handle{}, nil
	}
	return b.Bind(owner, category, name, fullPath, want)
}

// Clear unmounts every source.
func (b *Binder) Clear() {
	clear(b.sources)
}
