package loader

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/modslots/internal/ctxlog"
	"github.com/vk/modslots/internal/dag"
	"github.com/vk/modslots/internal/owner"
	"github.com/vk/modslots/internal/registry"
)

// ErrAlreadyLoaded is returned when a loaded session is loaded again.
var ErrAlreadyLoaded = errors.New("session already loaded")

// Session loads a fixed list of extensions into one registry.
type Session struct {
	reg    *registry.Registry
	exts   []Extension
	owners []*owner.Owner
	loaded bool
}

// NewSession creates a session over reg. Extensions load in the given order,
// except that an extension declaring dependencies is moved after them.
func NewSession(reg *registry.Registry, exts ...Extension) (*Session, error) {
	ordered, err := loadOrder(exts)
	if err != nil {
		return nil, err
	}
	return &Session{reg: reg, exts: ordered}, nil
}

func loadOrder(exts []Extension) ([]Extension, error) {
	g := dag.New()
	byName := make(map[string]Extension, len(exts))
	for _, ext := range exts {
		if ext.Name() == "" {
			return nil, errors.New("extension name must not be empty")
		}
		if _, dup := byName[ext.Name()]; dup {
			return nil, fmt.Errorf("extension %q listed twice", ext.Name())
		}
		byName[ext.Name()] = ext
		g.AddNode(ext.Name())
	}
	for _, ext := range exts {
		d, ok := ext.(Dependent)
		if !ok {
			continue
		}
		for _, dep := range d.DependsOn() {
			if _, found := byName[dep]; !found {
				return nil, fmt.Errorf("extension %q depends on %q, which is not part of the session", ext.Name(), dep)
			}
			if err := g.AddEdge(dep, ext.Name()); err != nil {
				return nil, fmt.Errorf("extension %q: %w", ext.Name(), err)
			}
		}
	}
	names, err := g.Order()
	if err != nil {
		return nil, fmt.Errorf("invalid extension dependencies: %w", err)
	}
	out := make([]Extension, len(names))
	for i, name := range names {
		out[i] = byName[name]
	}
	return out, nil
}

// Registry returns the session registry.
func (s *Session) Registry() *registry.Registry { return s.reg }

// Owners returns the owners created by Load, in load order.
func (s *Session) Owners() []*owner.Owner {
	out := make([]*owner.Owner, len(s.owners))
	copy(out, s.owners)
	return out
}

// Owner returns the owner named name.
func (s *Session) Owner(name string) (*owner.Owner, bool) {
	for _, o := range s.owners {
		if o.Name() == name {
			return o, true
		}
	}
	return nil, false
}

// Load runs every extension's setup in order. Network identities are handed
// out in load order to extensions that sync. A failing setup aborts the whole
// session: already loaded owners are unloaded and the registry is cleared.
func (s *Session) Load(ctx context.Context) error {
	if s.loaded {
		return ErrAlreadyLoaded
	}
	logger := ctxlog.FromContext(ctx)
	nextNetID := 0

	for _, ext := range s.exts {
		o := owner.New(ext.Name(), owner.WithSync(ext.NeedsSync()))
		if o.NeedsSync() {
			if err := o.AssignNetID(nextNetID); err != nil {
				return s.abort(ctx, err)
			}
			nextNetID++
		}
		if src := ext.Assets(); src != nil {
			s.reg.Assets.Mount(o.Name(), src)
		}
		s.owners = append(s.owners, o)

		if err := s.loadOne(ctx, ext, o); err != nil {
			o.Abort()
			return s.abort(ctx, fmt.Errorf("loading %q: %w", ext.Name(), err))
		}
		logger.Info("Extension loaded.", "owner", o.Name(), "net_id", o.NetID())
	}

	s.loaded = true
	logger.Info("Session loaded.", "owners", len(s.owners), "synced", nextNetID)
	return nil
}

func (s *Session) loadOne(ctx context.Context, ext Extension, o *owner.Owner) error {
	plan := NewPlan()
	if err := ext.Build(plan); err != nil {
		return fmt.Errorf("build: %w", err)
	}
	if err := o.BeginLoad(); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Running extension setup.", "owner", o.Name(), "steps", plan.Len())
	if err := plan.run(s.reg.For(o)); err != nil {
		return err
	}
	return o.FinishLoad()
}

// abort unwinds a failed Load.
func (s *Session) abort(ctx context.Context, cause error) error {
	ctxlog.FromContext(ctx).Error("Session load aborted.", "error", cause)
	for i := len(s.owners) - 1; i >= 0; i-- {
		o := s.owners[i]
		if o.Phase() == owner.Loaded {
			s.unloadOne(ctx, i)
		}
	}
	s.owners = nil
	s.reg.Clear()
	return cause
}

// Unload unloads every owner in reverse load order. Slots stay reserved until
// the registry is cleared.
func (s *Session) Unload(ctx context.Context) error {
	if !s.loaded {
		return nil
	}
	var errs []error
	for i := len(s.owners) - 1; i >= 0; i-- {
		if err := s.unloadOne(ctx, i); err != nil {
			errs = append(errs, err)
		}
	}
	s.loaded = false
	return errors.Join(errs...)
}

func (s *Session) unloadOne(ctx context.Context, i int) error {
	o := s.owners[i]
	if err := o.BeginUnload(); err != nil {
		return err
	}
	if u, ok := s.exts[i].(Unloader); ok {
		u.Unload(s.reg.For(o))
	}
	s.reg.Unload(o)
	ctxlog.FromContext(ctx).Debug("Extension unloaded.", "owner", o.Name())
	return o.FinishUnload()
}

// Close unloads the session and clears the registry.
func (s *Session) Close(ctx context.Context) error {
	err := s.Unload(ctx)
	s.reg.Clear()
	s.owners = nil
	return err
}
