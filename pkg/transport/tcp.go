package transport

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wifiset-protocol/wifiset-go/pkg/discovery"
	"github.com/wifiset-protocol/wifiset-go/pkg/log"
)

// DefaultPort is the default WiFiSet TCP port.
const DefaultPort = 9431

// TCPConfig configures a TCPTransport.
type TCPConfig struct {
	// Address to listen on (e.g., ":9431" or "127.0.0.1:0").
	Address string

	// DeviceName is the advertised instance name.
	DeviceName string

	// Advertiser registers the device on the local link while it is
	// provisionable. Optional; nil disables mDNS.
	Advertiser discovery.Advertiser

	// Logger for protocol logging (optional).
	Logger log.Logger
}

// TCPTransport is a single-peer TCP server standing in for a BLE
// characteristic channel. At most one peer is connected at a time;
// connection attempts while a peer is present or while the device is
// not advertising are refused.
type TCPTransport struct {
	config   TCPConfig
	listener net.Listener

	mu          sync.Mutex
	handler     Events
	conn        net.Conn
	connID      string
	advertising bool
	closed      bool

	wg sync.WaitGroup
}

// NewTCPTransport creates and starts a TCP transport. The listener is
// bound immediately; peers are accepted only while advertising.
func NewTCPTransport(config TCPConfig) (*TCPTransport, error) {
	if config.Address == "" {
		config.Address = fmt.Sprintf(":%d", DefaultPort)
	}

	listener, err := net.Listen("tcp", config.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	t := &TCPTransport{
		config:   config,
		listener: listener,
	}

	t.wg.Add(1)
	go t.acceptLoop()

	return t, nil
}

// Addr returns the transport's listen address.
func (t *TCPTransport) Addr() net.Addr {
	return t.listener.Addr()
}

// SetHandler registers the event handler.
func (t *TCPTransport) SetHandler(handler Events) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.handler = handler
}

// StartAdvertising makes the device connectable and, when an advertiser
// is configured, registers the mDNS service.
func (t *TCPTransport) StartAdvertising() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	t.advertising = true
	t.mu.Unlock()

	if t.config.Advertiser != nil {
		port := t.listener.Addr().(*net.TCPAddr).Port
		return t.config.Advertiser.Advertise(discovery.Info{
			DeviceName: t.config.DeviceName,
			Port:       port,
		})
	}
	return nil
}

// StopAdvertising stops accepting new peers. An already-connected peer
// stays connected.
func (t *TCPTransport) StopAdvertising() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	t.advertising = false
	t.mu.Unlock()

	if t.config.Advertiser != nil {
		t.config.Advertiser.Stop()
	}
	return nil
}

// IsAdvertising reports whether new peers are accepted.
func (t *TCPTransport) IsAdvertising() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.advertising && !t.closed
}

// PeerConnected reports whether a peer is currently connected.
func (t *TCPTransport) PeerConnected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.conn != nil
}

// Send delivers one frame to the connected peer.
func (t *TCPTransport) Send(frame []byte) error {
	t.mu.Lock()
	conn := t.conn
	connID := t.connID
	t.mu.Unlock()

	if conn == nil {
		return ErrNoPeer
	}

	if _, err := conn.Write(frame); err != nil {
		// Write failure means the peer is gone; the read loop will
		// notice and raise the disconnect event.
		return fmt.Errorf("send failed: %w", err)
	}

	t.logFrame(frame, connID, conn, log.DirectionOut)
	return nil
}

// Close shuts the transport down and disconnects any peer.
func (t *TCPTransport) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	t.advertising = false
	conn := t.conn
	t.mu.Unlock()

	if t.config.Advertiser != nil {
		t.config.Advertiser.Stop()
	}
	if conn != nil {
		conn.Close()
	}
	err := t.listener.Close()
	t.wg.Wait()
	return err
}

// acceptLoop accepts peers one at a time.
func (t *TCPTransport) acceptLoop() {
	defer t.wg.Done()

	for {
		conn, err := t.listener.Accept()
		if err != nil {
			return // listener closed
		}

		t.mu.Lock()
		if t.closed || !t.advertising || t.conn != nil {
			t.mu.Unlock()
			conn.Close()
			continue
		}
		t.conn = conn
		t.connID = uuid.NewString()
		handler := t.handler
		t.mu.Unlock()

		// A connected peer pauses discoverability, like a BLE
		// peripheral that stops advertising once connected.
		if t.config.Advertiser != nil {
			t.config.Advertiser.Stop()
		}

		if handler != nil {
			handler.OnPeerConnected()
		}

		t.wg.Add(1)
		go t.readLoop(conn)
	}
}

// readLoop reads frames from the peer until the connection drops.
func (t *TCPTransport) readLoop(conn net.Conn) {
	defer t.wg.Done()

	reader := NewFrameReader(conn)
	for {
		frame, err := reader.ReadFrame()
		if err != nil {
			break
		}

		t.mu.Lock()
		connID := t.connID
		handler := t.handler
		t.mu.Unlock()

		t.logFrame(frame, connID, conn, log.DirectionIn)

		if handler != nil {
			handler.OnInboundFrame(frame)
		}
	}

	conn.Close()

	t.mu.Lock()
	disconnected := t.conn == conn
	if disconnected {
		t.conn = nil
		t.connID = ""
	}
	handler := t.handler
	closed := t.closed
	t.mu.Unlock()

	if disconnected && !closed && handler != nil {
		handler.OnPeerDisconnected()
	}
}

func (t *TCPTransport) logFrame(frame []byte, connID string, conn net.Conn, direction log.Direction) {
	if t.config.Logger == nil {
		return
	}
	t.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: connID,
		Direction:    direction,
		Layer:        log.LayerTransport,
		Category:     log.CategoryFrame,
		RemoteAddr:   conn.RemoteAddr().String(),
		Frame:        log.FrameEventFor(frame),
	})
}
