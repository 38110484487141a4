package testutil

import (
	"sync"

	"github.com/vk/modslots/internal/assets"
	"github.com/vk/modslots/internal/loader"
	"github.com/vk/modslots/internal/registry"
)

// EventLog collects lifecycle events across extensions in the order they happen.
type EventLog struct {
	mu     sync.Mutex
	events []string
}

func (l *EventLog) add(e string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// Events returns a copy of the recorded events.
func (l *EventLog) Events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.events...)
}

// RecordingExtension is a Go extension for tests that records "build:<name>"
// and "unload:<name>" events and delegates planning to BuildFn.
type RecordingExtension struct {
	ExtName string
	Sync    bool
	Source  assets.Source
	BuildFn func(p *loader.Plan) error
	Log     *EventLog
}

// Name implements loader.Extension.
func (e *RecordingExtension) Name() string { return e.ExtName }

// NeedsSync implements loader.Extension.
func (e *RecordingExtension) NeedsSync() bool { return e.Sync }

// Assets implements loader.Extension.
func (e *RecordingExtension) Assets() assets.Source { return e.Source }

// Build implements loader.Extension.
func (e *RecordingExtension) Build(p *loader.Plan) error {
	e.Log.add("build:" + e.ExtName)
	if e.BuildFn == nil {
		return nil
	}
	return e.BuildFn(p)
}

// Unload implements loader.Unloader.
func (e *RecordingExtension) Unload(*registry.Registrar) {
	e.Log.add("unload:" + e.ExtName)
}
