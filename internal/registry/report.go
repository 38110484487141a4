package registry

import (
	"sort"

	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/hooks"
)

// Row describes one live registration in a report.
type Row struct {
	Kind    content.Kind `json:"kind"`
	Owner   string       `json:"owner"`
	Name    string       `json:"name"`
	Slot    int          `json:"slot"`
	Label   string       `json:"label,omitempty"`
	Texture string       `json:"texture,omitempty"`
}

// HookRow describes one live global hook in a report.
type HookRow struct {
	Kind      content.Kind    `json:"kind"`
	Owner     string          `json:"owner"`
	Name      string          `json:"name"`
	Position  int             `json:"position"`
	HookType  hooks.TypeToken `json:"hook_type"`
	TypeIndex int             `json:"type_index"`
}

// CategorySummary describes the numbering space of one slotted category.
type CategorySummary struct {
	Kind  content.Kind `json:"kind"`
	Base  int          `json:"base"`
	Count int          `json:"count"`
	Live  int          `json:"live"`
}

// Report is a deterministic snapshot of the registry.
type Report struct {
	Categories []CategorySummary `json:"categories"`
	Slots      []Row             `json:"slots"`
	Named      []Row             `json:"named"`
	Hooks      []HookRow         `json:"hooks"`
}

func rowOf(kind content.Kind, m *content.Meta) Row {
	return Row{
		Kind:    kind,
		Owner:   m.Owner,
		Name:    m.Name,
		Slot:    m.Slot,
		Label:   m.Label(),
		Texture: m.Texture.FullPath(),
	}
}

func (c *Category[T]) rows() []Row {
	out := make([]Row, 0, len(c.ordered))
	for _, obj := range c.ordered {
		out = append(out, rowOf(c.kind, obj.Base()))
	}
	return out
}

func (c *NamedCategory[T]) rows() []Row {
	out := make([]Row, 0, len(c.ordered))
	for _, obj := range c.ordered {
		out = append(out, rowOf(c.kind, obj.Base()))
	}
	return out
}

func (c *HookCategory) rows() []HookRow {
	regs := c.resolver.Registrations()
	out := make([]HookRow, 0, len(regs))
	for _, reg := range regs {
		idx, _ := c.resolver.TypeIndex(reg.Token)
		out = append(out, HookRow{
			Kind:      c.kind,
			Owner:     reg.Owner,
			Name:      reg.Name,
			Position:  reg.Position,
			HookType:  reg.Token,
			TypeIndex: idx,
		})
	}
	return out
}

// Report snapshots every live registration. Slotted rows are sorted by kind
// then slot; hooks by kind then position.
func (r *Registry) Report() Report {
	var rep Report
	for _, k := range sortedKinds(r.slotted) {
		c := r.slotted[k]
		rep.Categories = append(rep.Categories, CategorySummary{Kind: k, Base: c.Base(), Count: c.Count(), Live: c.Len()})
		rows := c.rows()
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].Slot < rows[j].Slot })
		rep.Slots = append(rep.Slots, rows...)
	}
	named := []interface{ rows() []Row }{r.Effects, r.Fonts, r.HotKeys, r.MusicBoxes, r.Translations}
	for _, c := range named {
		rep.Named = append(rep.Named, c.rows()...)
	}
	for _, k := range sortedKinds(r.Hooks) {
		rep.Hooks = append(rep.Hooks, r.Hooks[k].rows()...)
	}
	return rep
}

// OwnerReport returns the rows of rep belonging to ownerName.
func (rep Report) OwnerReport(ownerName string) Report {
	out := Report{Categories: rep.Categories}
	for _, row := range rep.Slots {
		if row.Owner == ownerName {
			out.Slots = append(out.Slots, row)
		}
	}
	for _, row := range rep.Named {
		if row.Owner == ownerName {
			out.Named = append(out.Named, row)
		}
	}
	for _, row := range rep.Hooks {
		if row.Owner == ownerName {
			out.Hooks = append(out.Hooks, row)
		}
	}
	return out
}
