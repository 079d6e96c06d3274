package transport

import "errors"

// Transport errors.
var (
	// ErrNoPeer indicates a send with no peer connected. Callers that
	// push unsolicited notifications treat this as a silent drop.
	ErrNoPeer = errors.New("no peer connected")

	// ErrClosed indicates the transport has been shut down.
	ErrClosed = errors.New("transport closed")
)

// Transport is the channel the provisioning session talks to its peer
// through. Implementations deliver at most one peer at a time.
type Transport interface {
	// StartAdvertising makes the device discoverable and connectable.
	StartAdvertising() error

	// StopAdvertising stops advertising. An already-connected peer is
	// not disconnected.
	StopAdvertising() error

	// IsAdvertising reports whether the device is currently advertising.
	IsAdvertising() bool

	// PeerConnected reports whether a peer is currently connected.
	PeerConnected() bool

	// Send delivers one frame to the connected peer. Delivery is not
	// guaranteed; ErrNoPeer is returned when no peer is connected.
	Send(frame []byte) error

	// SetHandler registers the event handler. Events are delivered on
	// the transport's own goroutine; handlers must not block or call
	// back into the transport.
	SetHandler(handler Events)

	// Close releases the transport's resources.
	Close() error
}

// Events receives transport notifications. All methods are invoked from
// the transport's execution context, not the cooperative tick; see the
// package documentation.
type Events interface {
	// OnPeerConnected is called when a peer connects.
	OnPeerConnected()

	// OnPeerDisconnected is called when the peer connection is lost.
	OnPeerDisconnected()

	// OnInboundFrame is called with the raw bytes of one inbound frame.
	// The slice is owned by the callee.
	OnInboundFrame(frame []byte)
}

// Compile-time interface satisfaction checks.
var (
	_ Transport = (*Loopback)(nil)
	_ Transport = (*TCPTransport)(nil)
)
