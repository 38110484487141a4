package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/modslots/internal/ctxlog"
	"github.com/vk/modslots/internal/netsync"
)

// Run loads every extension, announces synced owners over the packet
// transport and writes the slot report. With an inspect port configured it
// then serves the report until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.ctx = ctx
	a.logger.Debug("App.Run method started.")

	if err := a.openTransport(ctx); err != nil {
		return err
	}
	defer a.closeTransport()

	a.logger.Info("🚀 Loading extensions...")
	if err := a.session.Load(ctx); err != nil {
		return fmt.Errorf("failed to load extensions: %w", err)
	}
	a.logger.Info("🏁 Extensions loaded.", "owners", len(a.session.Owners()))

	if err := a.announce(ctx); err != nil {
		return err
	}
	if err := a.writeReport(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.config.InspectPort > 0 {
		a.startInspectServer()
		<-ctx.Done()
		if err := a.closeInspectServer(); err != nil {
			return err
		}
	}

	if a.config.Unload {
		if err := a.session.Close(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("failed to unload extensions: %w", err)
		}
		a.logger.Info("Extensions unloaded.")
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) openTransport(ctx context.Context) error {
	if a.config.SyncURL == "" {
		a.transport = netsync.NewMemoryTransport()
		return nil
	}
	t, err := netsync.DialSocketIO(ctx, netsync.SocketIOConfig{URL: a.config.SyncURL})
	if err != nil {
		return fmt.Errorf("failed to connect sync transport: %w", err)
	}
	a.transport = t
	return nil
}

func (a *App) closeTransport() {
	if err := a.transport.Close(); err != nil && !errors.Is(err, netsync.ErrClosed) {
		a.logger.Warn("Closing sync transport failed.", "error", err)
	}
}

// announce sends one packet per synced owner carrying its name and the
// number of live registrations it made.
func (a *App) announce(ctx context.Context) error {
	rep := a.registry.Report()
	for _, o := range a.session.Owners() {
		if !o.HasNetworkIdentity() {
			continue
		}
		p, err := a.registry.For(o).GetPacket()
		if err != nil {
			return err
		}
		own := rep.OwnerReport(o.Name())
		p.WriteString(o.Name())
		p.WriteInt32(int32(len(own.Slots) + len(own.Named) + len(own.Hooks)))
		if err := a.transport.Send(ctx, p); err != nil {
			return fmt.Errorf("failed to announce %q: %w", o.Name(), err)
		}
		a.logger.Debug("Owner announced.", "owner", o.Name(), "net_id", o.NetID(), "bytes", p.Len())
	}
	return nil
}
