// Package netsync carries extension-addressed packets between peers. A packet
// is only ever created for an owner holding a network identity.
package netsync

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrNoIdentity is returned when a packet is requested for an owner that was
// never assigned a network identity.
var ErrNoIdentity = errors.New("owner has no network identity")

// MaxNetID is the largest identity that fits the packet header.
const MaxNetID = math.MaxInt16

// Packet is an outgoing message addressed to one extension on the remote
// side. The body starts with the owner's network identity.
type Packet struct {
	owner string
	netID int
	buf   bytes.Buffer
}

// NewPacket starts a packet for the owner with netID.
func NewPacket(owner string, netID int) (*Packet, error) {
	if netID < 0 {
		return nil, fmt.Errorf("owner %q: %w", owner, ErrNoIdentity)
	}
	if netID > MaxNetID {
		return nil, fmt.Errorf("owner %q: network identity %d exceeds %d", owner, netID, MaxNetID)
	}
	p := &Packet{owner: owner, netID: netID}
	_ = binary.Write(&p.buf, binary.LittleEndian, int16(netID))
	return p, nil
}

// Owner returns the name of the extension the packet belongs to.
func (p *Packet) Owner() string { return p.owner }

// NetID returns the network identity the packet is addressed with.
func (p *Packet) NetID() int { return p.netID }

// WriteInt32 appends v.
func (p *Packet) WriteInt32(v int32) {
	_ = binary.Write(&p.buf, binary.LittleEndian, v)
}

// WriteBool appends v as one byte.
func (p *Packet) WriteBool(v bool) {
	var b byte
	if v {
		b = 1
	}
	p.buf.WriteByte(b)
}

// WriteString appends a length-prefixed string.
func (p *Packet) WriteString(s string) {
	p.WriteInt32(int32(len(s)))
	p.buf.WriteString(s)
}

// Write appends raw bytes.
func (p *Packet) Write(b []byte) (int, error) {
	return p.buf.Write(b)
}

// Bytes returns the encoded packet.
func (p *Packet) Bytes() []byte {
	out := make([]byte, p.buf.Len())
	copy(out, p.buf.Bytes())
	return out
}

// Len is the encoded length in bytes.
func (p *Packet) Len() int { return p.buf.Len() }

// Reader decodes a packet produced by Packet.
type Reader struct {
	NetID int
	r     *bytes.Reader
}

// NewReader reads the network identity header of data.
func NewReader(data []byte) (*Reader, error) {
	r := bytes.NewReader(data)
	var id int16
	if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
		return nil, fmt.Errorf("failed to read packet header: %w", err)
	}
	return &Reader{NetID: int(id), r: r}, nil
}

// ReadInt32 reads a value written by WriteInt32.
func (r *Reader) ReadInt32() (int32, error) {
	var v int32
	err := binary.Read(r.r, binary.LittleEndian, &v)
	return v, err
}

// ReadBool reads a value written by WriteBool.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.r.ReadByte()
	return b == 1, err
}

// ReadString reads a value written by WriteString.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 || int(n) > r.r.Len() {
		return "", fmt.Errorf("string length %d exceeds remaining %d bytes", n, r.r.Len())
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r.r, b); err != nil {
		return "", err
	}
	return string(b), nil
}
