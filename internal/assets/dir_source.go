package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/modslots/internal/fsutil"
)

type fileAsset struct {
	location string
	kind     Kind
}

// DirSource indexes the asset files below one owner's asset directory.
// The index is built once at construction; later file system changes are not
// observed.
type DirSource struct {
	owner string
	root  string
	files map[string]fileAsset
}

// NewDirSource scans root for files with a known asset extension.
// A missing root yields an empty source.
func NewDirSource(owner, root string) (*DirSource, error) {
	d := &DirSource{owner: owner, root: root, files: make(map[string]fileAsset)}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return d, nil
	}

	found, err := fsutil.FindFilesByExtension(root, Extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan assets of %s in %s: %w", owner, root, err)
	}
	for _, f := range found {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			return nil, err
		}
		key := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
		kind, _ := KindForExt(filepath.Ext(f))
		if prev, dup := d.files[key]; dup {
			return nil, fmt.Errorf("asset %s/%s is ambiguous: %s and %s", owner, key, prev.location, f)
		}
		d.files[key] = fileAsset{location: f, kind: kind}
	}
	return d, nil
}

// Len is the number of indexed assets.
func (d *DirSource) Len() int {
	return len(d.files)
}

// Exists implements Source.
func (d *DirSource) Exists(p string) bool {
	_, ok := d.files[p]
	return ok
}

// Load implements Source.
func (d *DirSource) Load(p string) (Handle, error) {
	f, ok := d.files[p]
	if !ok {
		return Handle{}, fmt.Errorf("asset %q not found under %s", p, d.root)
	}
	return Handle{Owner: d.owner, Path: p, Kind: f.kind, Location: f.location}, nil
}
