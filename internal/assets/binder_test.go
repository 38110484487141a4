package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/modslots/internal/regerr"
)

func newTestBinder() *Binder {
	b := NewBinder()
	b.Mount("Alpha", NewMemorySource("Alpha", map[string]Kind{
		"Items/Sword":        KindTexture,
		"Sounds/Item/Swing":  KindSound,
		"Sounds/Music/Theme": KindMusic,
		"Fonts/Title":        KindAny,
	}))
	return b
}

func TestBinder_Bind(t *testing.T) {
	b := newTestBinder()

	h, err := b.Bind("Alpha", "item", "Sword", "Alpha/Items/Sword", KindTexture)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", h.Owner)
	assert.Equal(t, "Items/Sword", h.Path)
	assert.Equal(t, "Alpha/Items/Sword", h.FullPath())
	assert.True(t, b.Exists("Alpha/Items/Sword"))
}

func TestBinder_CrossOwnerPath(t *testing.T) {
	b := newTestBinder()

	// Beta may reference assets of an owner that loaded before it.
	h, err := b.Bind("Beta", "item", "Copy", "Alpha/Items/Sword", KindTexture)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", h.Owner)

	_, err = b.Bind("Beta", "item", "Ghost", "Gamma/Items/Sword", KindTexture)
	require.ErrorIs(t, err, regerr.ErrMissingResource)
	assert.Contains(t, err.Error(), `owner "Beta"`)
}

func TestBinder_Failures(t *testing.T) {
	b := newTestBinder()

	testCases := []struct {
		name string
		path string
		want Kind
	}{
		{"missing asset", "Alpha/Items/Axe", KindTexture},
		{"unknown owner", "Gamma/Items/Sword", KindTexture},
		{"no owner segment", "Sword", KindTexture},
		{"empty", "", KindTexture},
		{"wrong kind", "Alpha/Sounds/Item/Swing", KindTexture},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := b.Bind("Alpha", "item", "Sword", tc.path, tc.want)
			require.Error(t, err)
			assert.True(t, errors.Is(err, regerr.ErrMissingResource))
			assert.Contains(t, err.Error(), `owner "Alpha"`)
		})
	}
}

func TestBinder_AnyKindAccepted(t *testing.T) {
	b := newTestBinder()

	_, err := b.Bind("Alpha", "font", "Title", "Alpha/Fonts/Title", KindFont)
	require.NoError(t, err)
	_, err = b.Bind("Alpha", "sound", "Theme", "Alpha/Sounds/Music/Theme", KindAny)
	require.NoError(t, err)
}

func TestBinder_BindOptional(t *testing.T) {
	b := newTestBinder()

	h, err := b.BindOptional("Alpha", "tile", "Ore", "", KindTexture)
	require.NoError(t, err)
	assert.True(t, h.IsZero())

	_, err = b.BindOptional("Alpha", "tile", "Ore", "Alpha/Tiles/Ore_Highlight", KindTexture)
	assert.ErrorIs(t, err, regerr.ErrMissingResource)
}

func TestBinder_Unmount(t *testing.T) {
	b := newTestBinder()
	b.Unmount("Alpha")

	assert.False(t, b.Exists("Alpha/Items/Sword"))
}

func TestDirSource(t *testing.T) {
	root := t.TempDir()
	for _, f := range []string{"Items/Sword.png", "Sounds/Custom/Zap.wav", "Sounds/Music/Theme.ogg", "notes.txt"} {
		p := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	src, err := NewDirSource("Alpha", root)
	require.NoError(t, err)
	assert.Equal(t, 3, src.Len())
	assert.True(t, src.Exists("Items/Sword"))
	assert.False(t, src.Exists("notes"))

	h, err := src.Load("Sounds/Music/Theme")
	require.NoError(t, err)
	assert.Equal(t, KindMusic, h.Kind)
	assert.Equal(t, filepath.Join(root, "Sounds/Music/Theme.ogg"), h.Location)
}

func TestDirSource_Ambiguous(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Icon.png"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Icon.rawimg"), nil, 0644))

	_, err := NewDirSource("Alpha", root)
	assert.ErrorContains(t, err, "ambiguous")
}

func TestDirSource_MissingRoot(t *testing.T) {
	src, err := NewDirSource("Alpha", filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Equal(t, 0, src.Len())
}

func TestSplitPath(t *testing.T) {
	o, rel, err := SplitPath(`Alpha\Items\Sword`)
	require.NoError(t, err)
	assert.Equal(t, "Alpha", o)
	assert.Equal(t, "Items/Sword", rel)
}
