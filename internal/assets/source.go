// Package assets binds registered objects to previously loaded asset handles.
//
// Asset decoding is not done here: a Source only answers whether an asset
// exists under a path and returns an opaque Handle for it. Asset paths are
// written "<Owner>/<relative path without extension>", e.g.
// "Alpha/Items/Sword".
package assets

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// Kind classifies an asset by how the game consumes it.
type Kind string

const (
	KindAny     Kind = ""
	KindTexture Kind = "texture"
	KindSound   Kind = "sound"
	KindMusic   Kind = "music"
	KindFont    Kind = "font"
	KindEffect  Kind = "effect"
)

var extKinds = map[string]Kind{
	".png":    KindTexture,
	".rawimg": KindTexture,
	".wav":    KindSound,
	".ogg":    KindMusic,
	".mp3":    KindMusic,
	".xnb":    KindAny,
	".fnt":    KindFont,
	".fx":     KindEffect,
	".fxb":    KindEffect,
}

// Extensions returns every file extension recognised as an asset.
func Extensions() []string {
	out := make([]string, 0, len(extKinds))
	for ext := range extKinds {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// KindForExt maps a file extension to its asset kind.
func KindForExt(ext string) (Kind, bool) {
	k, ok := extKinds[strings.ToLower(ext)]
	return k, ok
}

// Handle is an opaque reference to a loaded asset.
type Handle struct {
	Owner string
	// Path is the owner-relative asset path without extension.
	Path string
	Kind Kind
	// Location is where the source found the asset, e.g. a file path.
	Location string
}

// FullPath returns the "<Owner>/<Path>" form of the handle.
func (h Handle) FullPath() string {
	if h.Owner == "" {
		return h.Path
	}
	return h.Owner + "/" + h.Path
}

// IsZero reports whether h refers to no asset.
func (h Handle) IsZero() bool {
	return h.Owner == "" && h.Path == ""
}

// Source is the asset existence and lookup collaborator of one owner.
type Source interface {
	Exists(p string) bool
	Load(p string) (Handle, error)
}

// SplitPath separates the owner segment from an asset path.
func SplitPath(p string) (owner, rel string, err error) {
	p = strings.TrimPrefix(path.Clean(strings.ReplaceAll(p, "\\", "/")), "/")
	owner, rel, ok := strings.Cut(p, "/")
	if !ok || owner == "" || rel == "" || owner == "." {
		return "", "", fmt.Errorf("asset path %q must have the form <Owner>/<path>", p)
	}
	return owner, rel, nil
}

// MemorySource is a Source backed by a fixed set of asset paths.
type MemorySource struct {
	owner  string
	assets map[string]Kind
}

// NewMemorySource creates a Source for owner holding the given relative paths.
func NewMemorySource(owner string, kinds map[string]Kind) *MemorySource {
	m := &MemorySource{owner: owner, assets: make(map[string]Kind, len(kinds))}
	for p, k := range kinds {
		m.assets[p] = k
	}
	return m
}

// Put adds an asset.
func (m *MemorySource) Put(p string, k Kind) {
	m.assets[p] = k
}

// Exists implements Source.
func (m *MemorySource) Exists(p string) bool {
	_, ok := m.assets[p]
	return ok
}

// Load implements Source.
func (m *MemorySource) Load(p string) (Handle, error) {
	k, ok := m.assets[p]
	if !ok {
		return Handle{}, fmt.Errorf("asset %q not found in %s", p, m.owner)
	}
	return Handle{Owner: m.owner, Path: p, Kind: k, Location: "memory:" + m.owner + "/" + p}, nil
}
