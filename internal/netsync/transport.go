package netsync

import (
	"context"
	"sync"
)

// Transport delivers encoded packets to the remote side.
type Transport interface {
	Send(ctx context.Context, p *Packet) error
	Close() error
}

// MemoryTransport records sent packets. It is used for local sessions and tests.
type MemoryTransport struct {
	mu     sync.Mutex
	sent   [][]byte
	closed bool
}

// NewMemoryTransport creates an empty MemoryTransport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{}
}

// Send implements Transport.
func (m *MemoryTransport) Send(ctx context.Context, p *Packet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.sent = append(m.sent, p.Bytes())
	return nil
}

// Sent returns copies of every packet sent so far.
func (m *MemoryTransport) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	copy(out, m.sent)
	return out
}

// Close implements Transport.
func (m *MemoryTransport) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}
