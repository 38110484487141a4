// Package owner models an extension instance: its stable name, lifecycle
// phase, network identity, and the registration gate that confines every
// mutating registration to the loading phase.
package owner

import (
	"fmt"

	"github.com/vk/modslots/internal/regerr"
)

// Phase is an owner's lifecycle phase.
type Phase int

const (
	NotLoading Phase = iota
	Loading
	Loaded
	Unloading
)

func (p Phase) String() string {
	switch p {
	case NotLoading:
		return "not-loading"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Unloading:
		return "unloading"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// NoNetID marks an owner without a network identity.
const NoNetID = -1

// Owner is one extension participating in a session.
type Owner struct {
	name  string
	phase Phase
	sync  bool
	netID int
}

// Option configures an Owner.
type Option func(*Owner)

// WithSync marks the owner as requiring cross-process synchronization, which
// makes it eligible for a network identity.
func WithSync(sync bool) Option {
	return func(o *Owner) { o.sync = sync }
}

// New creates an owner in the NotLoading phase.
func New(name string, opts ...Option) *Owner {
	o := &Owner{name: name, netID: NoNetID}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Owner) Name() string   { return o.name }
func (o *Owner) Phase() Phase   { return o.phase }
func (o *Owner) NeedsSync() bool { return o.sync }

// NetID returns the owner's network identity, or NoNetID.
func (o *Owner) NetID() int { return o.netID }

// HasNetworkIdentity reports whether the owner may construct outbound packets.
func (o *Owner) HasNetworkIdentity() bool {
	return o.netID != NoNetID
}

// AssignNetID gives a syncing owner its network identity. It is set once.
func (o *Owner) AssignNetID(id int) error {
	if !o.sync {
		return fmt.Errorf("owner %q does not sync and cannot receive a network id", o.name)
	}
	if id < 0 {
		return fmt.Errorf("owner %q: network id must be non-negative, got %d", o.name, id)
	}
	if o.netID != NoNetID {
		return fmt.Errorf("owner %q already has network id %d", o.name, o.netID)
	}
	o.netID = id
	return nil
}

// Gate fails with an invalid-phase error unless the owner is loading. Every
// mutating registration calls it before touching any registry state.
func (o *Owner) Gate(category, name string) error {
	if o.phase != Loading {
		return regerr.InvalidPhase(o.name, category, name, o.phase.String())
	}
	return nil
}

var transitions = map[Phase]Phase{
	NotLoading: Loading,
	Loading:    Loaded,
	Loaded:     Unloading,
	Unloading:  NotLoading,
}

func (o *Owner) advance(from Phase) error {
	if o.phase != from {
		return fmt.Errorf("owner %q: cannot leave phase %s, owner is %s", o.name, from, o.phase)
	}
	o.phase = transitions[from]
	return nil
}

// BeginLoad opens the registration gate.
func (o *Owner) BeginLoad() error { return o.advance(NotLoading) }

// FinishLoad closes the registration gate.
func (o *Owner) FinishLoad() error { return o.advance(Loading) }

// BeginUnload starts the owner's unload step.
func (o *Owner) BeginUnload() error { return o.advance(Loaded) }

// FinishUnload returns the owner to NotLoading and drops its network identity.
func (o *Owner) FinishUnload() error {
	if err := o.advance(Unloading); err != nil {
		return err
	}
	o.netID = NoNetID
	return nil
}

// Abort closes the gate of an owner whose setup failed.
func (o *Owner) Abort() {
	o.phase = NotLoading
	o.netID = NoNetID
}
