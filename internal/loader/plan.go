// Package loader drives owner setup: it collects each extension's
// registration steps per content kind, runs them in a fixed kind order for
// each owner in load order, and unloads owners in reverse.
package loader

import (
	"fmt"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/content"
	"github.com/vk/modslots/internal/registry"
	"github.com/vk/modslots/internal/xref"
)

// Extension is one loadable owner.
type Extension interface {
	Name() string
	// NeedsSync reports whether the extension requires a network identity.
	NeedsSync() bool
	// Assets returns the extension's asset source, or nil.
	Assets() assets.Source
	// Build declares the extension's registration steps.
	Build(p *Plan) error
}

// Dependent is implemented by extensions that must load after others.
type Dependent interface {
	DependsOn() []string
}

// Unloader is implemented by extensions that release state on unload.
type Unloader interface {
	Unload(r *registry.Registrar)
}

// Step registers content through r.
type Step func(r *registry.Registrar) error

// Plan maps content kinds to the registration steps of one extension.
type Plan struct {
	steps map[content.Kind][]Step
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{steps: make(map[content.Kind][]Step)}
}

// Add appends s to the steps of kind. Steps of one kind run in the order
// they were added.
func (p *Plan) Add(kind content.Kind, s Step) {
	p.steps[kind] = append(p.steps[kind], s)
}

// Len is the total number of steps.
func (p *Plan) Len() int {
	n := 0
	for _, s := range p.steps {
		n += len(s)
	}
	return n
}

// KindOrder is the order kinds are registered in. Kinds that link to other
// content come after their targets.
var KindOrder = func() []content.Kind {
	order := append([]content.Kind{}, content.ContentKinds...)
	for _, t := range content.SoundTypes {
		order = append(order, content.SoundKind(t))
	}
	for _, e := range xref.EquipTypes {
		order = append(order, content.EquipKind(e))
	}
	order = append(order, content.MusicBox)
	order = append(order, content.NamedKinds...)
	order = append(order, content.HookKinds...)
	return order
}()

var knownKinds = func() map[content.Kind]bool {
	m := make(map[content.Kind]bool, len(KindOrder))
	for _, k := range KindOrder {
		m[k] = true
	}
	return m
}()

// run invokes every step in KindOrder and stops at the first error.
func (p *Plan) run(r *registry.Registrar) error {
	for k := range p.steps {
		if !knownKinds[k] {
			return fmt.Errorf("plan contains steps for unknown kind %q", k)
		}
	}
	for _, k := range KindOrder {
		for i, s := range p.steps[k] {
			if err := s(r); err != nil {
				return fmt.Errorf("%s step %d: %w", k, i, err)
			}
		}
	}
	return nil
}
