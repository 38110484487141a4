package config

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Model is the unified representation of one session's configuration.
type Model struct {
	Session *Session
	// Mods are sorted into load order.
	Mods []*ModDefinition
}

// Session holds per-kind overrides of the numbering spaces. Keys are content
// kinds such as "item" or "sound/music".
type Session struct {
	Builtin  map[string]int
	Capacity map[string]int
}

// ModDefinition is one declarative extension.
type ModDefinition struct {
	Name string
	// Order sorts mods before declaration order; lower loads first.
	Order int
	Sync  bool
	// DependsOn names extensions that must load before this one.
	DependsOn []string
	// AssetDir is the absolute directory assets are read from, or "".
	AssetDir string
	// Source is the file the mod was declared in.
	Source string

	Contents     []*ContentDefinition
	Globals      []*GlobalDefinition
	Sounds       []*SoundDefinition
	MusicBoxes   []*MusicBoxDefinition
	Fonts        []*AssetDefinition
	Effects      []*AssetDefinition
	Translations []*TranslationDefinition
	HotKeys      []*HotKeyDefinition
}

// ContentDefinition declares one slotted content object.
type ContentDefinition struct {
	Kind        string
	Name        string
	Texture     string
	DisplayName string
	Properties  cty.Value

	HighlightTexture string
	BlockTexture     string
	HeadTexture      string
	BossHeadTexture  string

	Equips []*EquipDefinition
}

// EquipDefinition declares an equip texture of an item.
type EquipDefinition struct {
	Type          string
	Texture       string
	ArmTexture    string
	FemaleTexture string
}

// GlobalDefinition declares a global hook. Target is the hooked category,
// e.g. "item" or "player".
type GlobalDefinition struct {
	Target   string
	Name     string
	HookType string
}

// SoundDefinition declares a sound of one sound type.
type SoundDefinition struct {
	Type string
	Name string
	Path string
}

// MusicBoxDefinition links a music sound to an item and a tile frame, all by
// registration name within the same mod.
type MusicBoxDefinition struct {
	Music  string
	Item   string
	Tile   string
	FrameY int
}

// AssetDefinition names an asset-backed registration such as a font.
type AssetDefinition struct {
	Name string
	Path string
}

// TranslationDefinition declares a localizable string.
type TranslationDefinition struct {
	Key  string
	Text string
}

// HotKeyDefinition declares a rebindable key.
type HotKeyDefinition struct {
	Name    string
	Default string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Session: &Session{Builtin: map[string]int{}, Capacity: map[string]int{}}}
}

// AddMod appends def, rejecting a second mod with the same name.
func (m *Model) AddMod(def *ModDefinition) error {
	for _, existing := range m.Mods {
		if existing.Name == def.Name {
			return fmt.Errorf("mod %q declared twice (%s and %s)", def.Name, existing.Source, def.Source)
		}
	}
	m.Mods = append(m.Mods, def)
	return nil
}

// SortMods orders mods by Order, keeping declaration order among equals.
func (m *Model) SortMods() {
	sort.SliceStable(m.Mods, func(i, j int) bool { return m.Mods[i].Order < m.Mods[j].Order })
}

// Mod returns the mod named name.
func (m *Model) Mod(name string) (*ModDefinition, bool) {
	for _, def := range m.Mods {
		if def.Name == name {
			return def, true
		}
	}
	return nil, false
}
