package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wifiset-protocol/wifiset-go/pkg/log"
)

// ErrReceiveTimeout is returned by Receive when no frame arrives in time.
var ErrReceiveTimeout = fmt.Errorf("receive timeout")

// DialConfig configures a peer connection to a device.
type DialConfig struct {
	// Logger for protocol logging (optional).
	Logger log.Logger

	// DialTimeout bounds the TCP connect. Zero means no timeout beyond
	// the context's.
	DialTimeout time.Duration
}

// PeerConn is the provisioner side of a WiFiSet connection. It speaks
// raw frames; callers build and parse them with the wire package.
type PeerConn struct {
	config DialConfig
	conn   net.Conn
	connID string

	reader *FrameReader

	writeMu sync.Mutex
	readMu  sync.Mutex

	closeOnce sync.Once
}

// Dial connects to a device at the given address.
func Dial(ctx context.Context, address string, config DialConfig) (*PeerConn, error) {
	dialer := &net.Dialer{Timeout: config.DialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", address, err)
	}

	return &PeerConn{
		config: config,
		conn:   conn,
		connID: uuid.NewString(),
		reader: NewFrameReader(conn),
	}, nil
}

// Send writes one frame to the device.
func (c *PeerConn) Send(frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	c.logFrame(frame, log.DirectionOut)
	return nil
}

// Receive reads the next frame from the device, waiting at most timeout.
// A zero timeout blocks indefinitely.
func (c *PeerConn) Receive(timeout time.Duration) ([]byte, error) {
	c.readMu.Lock()
	defer c.readMu.Unlock()

	if timeout > 0 {
		if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, err
		}
		defer c.conn.SetReadDeadline(time.Time{})
	}

	frame, err := c.reader.ReadFrame()
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			return nil, ErrReceiveTimeout
		}
		return nil, err
	}

	c.logFrame(frame, log.DirectionIn)
	return frame, nil
}

// RemoteAddr returns the device's address.
func (c *PeerConn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection. Safe to call multiple times.
func (c *PeerConn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}

func (c *PeerConn) logFrame(frame []byte, direction log.Direction) {
	if c.config.Logger == nil {
		return
	}
	c.config.Logger.Log(log.Event{
		Timestamp:    time.Now(),
		ConnectionID: c.connID,
		Direction:    direction,
		Layer:        log.LayerTransport,
		Category:     log.CategoryFrame,
		RemoteAddr:   c.conn.RemoteAddr().String(),
		Frame:        log.FrameEventFor(frame),
	})
}
