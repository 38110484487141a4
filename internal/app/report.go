package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vk/modslots/internal/registry"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// slotRow is a report row with the object's manifest properties attached.
type slotRow struct {
	registry.Row
	Properties json.RawMessage `json:"properties,omitempty"`
}

type jsonReport struct {
	Categories []registry.CategorySummary `json:"categories"`
	Slots      []slotRow                  `json:"slots"`
	Named      []registry.Row             `json:"named"`
	Hooks      []registry.HookRow         `json:"hooks"`
}

func (a *App) writeReport() error {
	switch a.config.Report {
	case ReportNone:
		return nil
	case ReportJSON:
		return a.writeJSONReport(a.outW)
	case ReportSchema:
		return writeReportSchema(a.outW)
	default:
		return writeTextReport(a.outW, a.registry.Report())
	}
}

// buildJSONReport renders rep with each slot's manifest properties attached.
// Every list is non-nil so empty sections encode as [].
func (a *App) buildJSONReport(rep registry.Report) (*jsonReport, error) {
	out := &jsonReport{
		Categories: append(make([]registry.CategorySummary, 0, len(rep.Categories)), rep.Categories...),
		Slots:      make([]slotRow, 0, len(rep.Slots)),
		Named:      append(make([]registry.Row, 0, len(rep.Named)), rep.Named...),
		Hooks:      append(make([]registry.HookRow, 0, len(rep.Hooks)), rep.Hooks...),
	}
	for _, row := range rep.Slots {
		sr := slotRow{Row: row}
		if m, ok := a.registry.Meta(row.Kind, row.Slot); ok && !m.Properties.IsNull() && m.Properties.IsWhollyKnown() {
			b, err := ctyjson.Marshal(m.Properties, m.Properties.Type())
			if err != nil {
				return nil, fmt.Errorf("properties of %s: %w", m.FullName(), err)
			}
			sr.Properties = b
		}
		out.Slots = append(out.Slots, sr)
	}
	return out, nil
}

func (a *App) writeJSONReport(w io.Writer) error {
	rep, err := a.buildJSONReport(a.registry.Report())
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeTextReport(w io.Writer, rep registry.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tSLOT\tOWNER\tNAME\tLABEL\tTEXTURE")
	for _, r := range rep.Slots {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n", r.Kind, r.Slot, r.Owner, r.Name, r.Label, r.Texture)
	}
	for _, r := range rep.Named {
		fmt.Fprintf(tw, "%s\t-\t%s\t%s\t%s\t%s\n", r.Kind, r.Owner, r.Name, r.Label, r.Texture)
	}
	if len(rep.Hooks) > 0 {
		fmt.Fprintln(tw, "\nHOOK KIND\tPOSITION\tOWNER\tNAME\tTYPE\tTYPE INDEX")
		for _, h := range rep.Hooks {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\n", h.Kind, h.Position, h.Owner, h.Name, h.HookType, h.TypeIndex)
		}
	}
	return tw.Flush()
}
