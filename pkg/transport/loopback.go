package transport

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wifiset-protocol/wifiset-go/pkg/log"
)

// loopbackQueueDepth bounds the peer-side receive queue. Frames beyond
// it are dropped, matching the no-guaranteed-delivery contract.
const loopbackQueueDepth = 64

// Loopback is an in-memory transport for tests and demos. The device
// side is driven through the Transport interface; the peer side is
// driven through the Peer* methods, which play the role of the remote
// provisioning client.
//
// Handler callbacks run synchronously on the goroutine calling the
// Peer* methods, which therefore acts as the transport's restricted
// execution context.
type Loopback struct {
	mu sync.Mutex

	handler     Events
	advertising bool
	connected   bool
	closed      bool
	connID      string

	recv chan []byte

	logger log.Logger
}

// NewLoopback creates a new loopback transport.
func NewLoopback() *Loopback {
	return &Loopback{
		recv: make(chan []byte, loopbackQueueDepth),
	}
}

// SetLogger configures protocol event logging. Pass nil to disable.
func (l *Loopback) SetLogger(logger log.Logger) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = logger
}

// SetHandler registers the event handler.
func (l *Loopback) SetHandler(handler Events) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = handler
}

// StartAdvertising makes the loopback connectable.
func (l *Loopback) StartAdvertising() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.advertising = true
	return nil
}

// StopAdvertising stops advertising without disconnecting a peer.
func (l *Loopback) StopAdvertising() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.advertising = false
	return nil
}

// IsAdvertising reports whether the loopback is connectable.
func (l *Loopback) IsAdvertising() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.advertising && !l.closed
}

// PeerConnected reports whether the peer side is connected.
func (l *Loopback) PeerConnected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

// Send delivers one frame to the peer's receive queue.
func (l *Loopback) Send(frame []byte) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if !l.connected {
		l.mu.Unlock()
		return ErrNoPeer
	}

	buf := make([]byte, len(frame))
	copy(buf, frame)

	select {
	case l.recv <- buf:
	default:
		// Queue full: frame dropped, like a missed notification.
	}
	l.mu.Unlock()

	l.logFrame(buf, log.DirectionOut)
	return nil
}

// Close shuts the transport down.
func (l *Loopback) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.advertising = false
	l.connected = false
	return nil
}

//
// Peer side
//

// PeerConnect connects the simulated peer. It fails with ErrNoPeer
// semantics inverted: connecting requires the device to be advertising.
func (l *Loopback) PeerConnect() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if !l.advertising || l.connected {
		l.mu.Unlock()
		return ErrNoPeer
	}
	l.connected = true
	l.advertising = false
	l.connID = uuid.NewString()
	handler := l.handler
	l.mu.Unlock()

	if handler != nil {
		handler.OnPeerConnected()
	}
	return nil
}

// PeerDisconnect disconnects the simulated peer.
func (l *Loopback) PeerDisconnect() {
	l.mu.Lock()
	if !l.connected {
		l.mu.Unlock()
		return
	}
	l.connected = false
	handler := l.handler
	l.mu.Unlock()

	if handler != nil {
		handler.OnPeerDisconnected()
	}
}

// PeerWrite delivers one frame from the peer to the device.
func (l *Loopback) PeerWrite(frame []byte) error {
	l.mu.Lock()
	if !l.connected {
		l.mu.Unlock()
		return ErrNoPeer
	}
	handler := l.handler
	l.mu.Unlock()

	buf := make([]byte, len(frame))
	copy(buf, frame)
	l.logFrame(buf, log.DirectionIn)

	if handler != nil {
		handler.OnInboundFrame(buf)
	}
	return nil
}

// PeerReceive returns the next frame sent by the device, waiting up to
// timeout. It returns nil when no frame arrives in time.
func (l *Loopback) PeerReceive(timeout time.Duration) []byte {
	select {
	case frame := <-l.recv:
		return frame
	case <-time.After(timeout):
		return nil
	}
}

// PeerDrain returns all frames currently queued for the peer.
func (l *Loopback) PeerDrain() [][]byte {
	var frames [][]byte
	for {
		select {
		case frame := <-l.recv:
			frames = append(frames, frame)
		default:
			return frames
		}
	}
}

func (l *Loopback) logFrame(frame []byte, direction log.Direction) {
	l.mu.Lock()
	logger := l.logger
	connID := l.connID
	l.mu.Unlock()

	if logger == nil {
		return
	}
	logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    direction,
		Layer:        log.LayerTransport,
		Category:     log.CategoryFrame,
		Frame:        log.FrameEventFor(frame),
	})
}
