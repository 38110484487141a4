package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// sessionSchema splits the unique session block off the rest of a file.
var sessionSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{{Type: "session"}},
}

type sessionBlock struct {
	Builtin  *countsBlock `hcl:"builtin,block"`
	Capacity *countsBlock `hcl:"capacity,block"`
}

// countsBlock holds `kind = count` attributes.
type countsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot is the remainder of a file once the session block is removed.
type fileRoot struct {
	Mods []*modBlock `hcl:"mod,block"`
}

type modBlock struct {
	Name      string   `hcl:"name,label"`
	Order     int      `hcl:"order,optional"`
	Sync      bool     `hcl:"sync,optional"`
	Assets    string   `hcl:"assets,optional"`
	DependsOn []string `hcl:"depends_on,optional"`

	Items                  []*contentBlock `hcl:"item,block"`
	Tiles                  []*contentBlock `hcl:"tile,block"`
	Walls                  []*contentBlock `hcl:"wall,block"`
	NPCs                   []*contentBlock `hcl:"npc,block"`
	Projectiles            []*contentBlock `hcl:"projectile,block"`
	Buffs                  []*contentBlock `hcl:"buff,block"`
	Mounts                 []*contentBlock `hcl:"mount,block"`
	SurfaceBackgrounds     []*contentBlock `hcl:"surface_background,block"`
	UndergroundBackgrounds []*contentBlock `hcl:"underground_background,block"`
	WaterStyles            []*contentBlock `hcl:"water_style,block"`
	WaterfallStyles        []*contentBlock `hcl:"waterfall_style,block"`
	Gores                  []*contentBlock `hcl:"gore,block"`
	BackgroundTextures     []*contentBlock `hcl:"background_texture,block"`

	Globals      []*globalBlock      `hcl:"global,block"`
	Sounds       []*soundBlock       `hcl:"sound,block"`
	MusicBoxes   []*musicBoxBlock    `hcl:"music_box,block"`
	Fonts        []*assetBlock       `hcl:"font,block"`
	Effects      []*assetBlock       `hcl:"effect,block"`
	Translations []*translationBlock `hcl:"translation,block"`
	HotKeys      []*hotKeyBlock      `hcl:"hotkey,block"`
}

type contentBlock struct {
	Name        string     `hcl:"name,label"`
	Texture     string     `hcl:"texture,optional"`
	DisplayName string     `hcl:"display_name,optional"`
	Properties  *cty.Value `hcl:"properties,optional"`

	HighlightTexture string `hcl:"highlight_texture,optional"`
	BlockTexture     string `hcl:"block_texture,optional"`
	HeadTexture      string `hcl:"head_texture,optional"`
	BossHeadTexture  string `hcl:"boss_head_texture,optional"`

	Equips []*equipBlock `hcl:"equip,block"`
}

type equipBlock struct {
	Type          string `hcl:"type,label"`
	Texture       string `hcl:"texture"`
	ArmTexture    string `hcl:"arm_texture,optional"`
	FemaleTexture string `hcl:"female_texture,optional"`
}

type globalBlock struct {
	Target   string `hcl:"target,label"`
	Name     string `hcl:"name,label"`
	HookType string `hcl:"hook_type,optional"`
}

type soundBlock struct {
	Type string `hcl:"type,label"`
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type musicBoxBlock struct {
	Music  string `hcl:"music"`
	Item   string `hcl:"item"`
	Tile   string `hcl:"tile"`
	FrameY int    `hcl:"frame_y,optional"`
}

type assetBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}

type translationBlock struct {
	Key  string `hcl:"key,label"`
	Text string `hcl:"text,optional"`
}

type hotKeyBlock struct {
	Name    string `hcl:"name,label"`
	Default string `hcl:"default"`
}
