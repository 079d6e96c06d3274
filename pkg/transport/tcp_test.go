package transport_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// chanHandler delivers transport events on channels so tests can wait
// for them across goroutines.
type chanHandler struct {
	connected    chan struct{}
	disconnected chan struct{}
	frames       chan []byte
}

func newChanHandler() *chanHandler {
	return &chanHandler{
		connected:    make(chan struct{}, 4),
		disconnected: make(chan struct{}, 4),
		frames:       make(chan []byte, 16),
	}
}

func (h *chanHandler) OnPeerConnected()            { h.connected <- struct{}{} }
func (h *chanHandler) OnPeerDisconnected()         { h.disconnected <- struct{}{} }
func (h *chanHandler) OnInboundFrame(frame []byte) { h.frames <- frame }

func startTCPTransport(t *testing.T) (*transport.TCPTransport, *chanHandler) {
	t.Helper()

	tr, err := transport.NewTCPTransport(transport.TCPConfig{
		Address:    "127.0.0.1:0",
		DeviceName: "test-device",
	})
	if err != nil {
		t.Fatalf("NewTCPTransport failed: %v", err)
	}
	t.Cleanup(func() { tr.Close() })

	handler := newChanHandler()
	tr.SetHandler(handler)
	return tr, handler
}

func dialPeer(t *testing.T, tr *transport.TCPTransport) *transport.PeerConn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := transport.Dial(ctx, tr.Addr().String(), transport.DialConfig{})
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestTCPAcceptsWhileAdvertising(t *testing.T) {
	tr, handler := startTCPTransport(t)

	if err := tr.StartAdvertising(); err != nil {
		t.Fatalf("StartAdvertising failed: %v", err)
	}

	dialPeer(t, tr)

	select {
	case <-handler.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for peer connect event")
	}

	if !tr.PeerConnected() {
		t.Error("PeerConnected() = false after accept")
	}
}

func TestTCPRefusesWhenNotAdvertising(t *testing.T) {
	tr, handler := startTCPTransport(t)

	// No StartAdvertising. The TCP dial itself succeeds because the
	// listener is bound, but the transport closes the connection
	// without raising a connect event.
	conn := dialPeer(t, tr)

	select {
	case <-handler.connected:
		t.Fatal("peer accepted while not advertising")
	case <-time.After(200 * time.Millisecond):
	}

	// Reads on the refused connection fail once the transport closes it.
	if _, err := conn.Receive(time.Second); err == nil {
		t.Error("expected read error on refused connection")
	}
}

func TestTCPSinglePeer(t *testing.T) {
	tr, handler := startTCPTransport(t)
	tr.StartAdvertising()

	dialPeer(t, tr)
	select {
	case <-handler.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for first peer")
	}

	// Second peer is refused while the first is connected.
	second := dialPeer(t, tr)
	select {
	case <-handler.connected:
		t.Fatal("second peer accepted while first connected")
	case <-time.After(200 * time.Millisecond):
	}
	if _, err := second.Receive(time.Second); err == nil {
		t.Error("expected read error on refused second connection")
	}
}

func TestTCPFrameRoundTrip(t *testing.T) {
	tr, handler := startTCPTransport(t)
	tr.StartAdvertising()

	peer := dialPeer(t, tr)
	select {
	case <-handler.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for peer connect event")
	}

	builder := wire.NewMessageBuilder()

	// Peer to device.
	write, err := builder.BuildCredentialWrite(wire.Credential{SSID: "Net", Password: "secretpw"})
	if err != nil {
		t.Fatalf("BuildCredentialWrite failed: %v", err)
	}
	if err := peer.Send(write); err != nil {
		t.Fatalf("peer.Send failed: %v", err)
	}

	select {
	case got := <-handler.frames:
		if !bytes.Equal(got, write) {
			t.Errorf("device received %x, want %x", got, write)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for inbound frame")
	}

	// Device to peer.
	ack := builder.BuildCredentialAck(wire.AckSuccess)
	if err := tr.Send(ack); err != nil {
		t.Fatalf("tr.Send failed: %v", err)
	}

	got, err := peer.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("peer.Receive failed: %v", err)
	}
	if !bytes.Equal(got, ack) {
		t.Errorf("peer received %x, want %x", got, ack)
	}
}

func TestTCPPeerDisconnectEvent(t *testing.T) {
	tr, handler := startTCPTransport(t)
	tr.StartAdvertising()

	peer := dialPeer(t, tr)
	select {
	case <-handler.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for peer connect event")
	}

	peer.Close()

	select {
	case <-handler.disconnected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for peer disconnect event")
	}

	if tr.PeerConnected() {
		t.Error("PeerConnected() = true after peer closed")
	}

	builder := wire.NewMessageBuilder()
	if err := tr.Send(builder.BuildListStart()); !errors.Is(err, transport.ErrNoPeer) {
		t.Errorf("Send after disconnect: got %v, want ErrNoPeer", err)
	}
}

func TestTCPReceiveTimeout(t *testing.T) {
	tr, handler := startTCPTransport(t)
	tr.StartAdvertising()

	peer := dialPeer(t, tr)
	select {
	case <-handler.connected:
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for peer connect event")
	}

	if _, err := peer.Receive(100 * time.Millisecond); !errors.Is(err, transport.ErrReceiveTimeout) {
		t.Errorf("got %v, want ErrReceiveTimeout", err)
	}
}
