package netsync

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/modslots/internal/ctxlog"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// PacketEvent is the socket.io event packets are emitted under.
const PacketEvent = "modpacket"

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("transport is closed")

// SocketIOConfig configures a SocketIOTransport.
type SocketIOConfig struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	ConnectTimeout     time.Duration
}

// SocketIOTransport emits packets to a socket.io peer.
type SocketIOTransport struct {
	io *socket.Socket
}

// DialSocketIO connects to cfg.URL and waits for the connect event.
func DialSocketIO(ctx context.Context, cfg SocketIOConfig) (*SocketIOTransport, error) {
	logger := ctxlog.FromContext(ctx).With("transport", "socketio", "url", cfg.URL)

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("URL %q must include scheme and host", cfg.URL)
	}
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected.", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		connectChan <- err
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &SocketIOTransport{io: io}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Send implements Transport. The payload carries the owner name alongside the
// encoded bytes so the peer can route by name when identities differ.
func (s *SocketIOTransport) Send(ctx context.Context, p *Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.io.Connected() {
		return ErrClosed
	}
	ctxlog.FromContext(ctx).Debug("Emitting packet.", "event", PacketEvent, "owner", p.Owner(), "net_id", p.NetID(), "bytes", p.Len())
	s.io.Emit(PacketEvent, map[string]any{
		"owner":  p.Owner(),
		"net_id": p.NetID(),
		"data":   p.Bytes(),
	})
	return nil
}

// Close implements Transport.
func (s *SocketIOTransport) Close() error {
	s.io.Disconnect()
	return nil
}
