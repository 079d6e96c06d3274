package transport_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// recordingHandler collects transport events for assertions.
type recordingHandler struct {
	connects    int
	disconnects int
	frames      [][]byte
}

func (h *recordingHandler) OnPeerConnected()            { h.connects++ }
func (h *recordingHandler) OnPeerDisconnected()         { h.disconnects++ }
func (h *recordingHandler) OnInboundFrame(frame []byte) { h.frames = append(h.frames, frame) }

func TestLoopbackConnectRequiresAdvertising(t *testing.T) {
	lb := transport.NewLoopback()

	if err := lb.PeerConnect(); !errors.Is(err, transport.ErrNoPeer) {
		t.Errorf("connect without advertising: got %v, want ErrNoPeer", err)
	}

	if err := lb.StartAdvertising(); err != nil {
		t.Fatalf("StartAdvertising failed: %v", err)
	}
	if err := lb.PeerConnect(); err != nil {
		t.Fatalf("PeerConnect failed: %v", err)
	}

	// Connecting stops advertising, like a BLE peripheral.
	if lb.IsAdvertising() {
		t.Error("still advertising after peer connect")
	}
	if !lb.PeerConnected() {
		t.Error("peer not reported connected")
	}
}

func TestLoopbackConnectionEvents(t *testing.T) {
	lb := transport.NewLoopback()
	handler := &recordingHandler{}
	lb.SetHandler(handler)

	lb.StartAdvertising()
	if err := lb.PeerConnect(); err != nil {
		t.Fatalf("PeerConnect failed: %v", err)
	}
	lb.PeerDisconnect()
	lb.PeerDisconnect() // second disconnect is a no-op

	if handler.connects != 1 {
		t.Errorf("got %d connect events, want 1", handler.connects)
	}
	if handler.disconnects != 1 {
		t.Errorf("got %d disconnect events, want 1", handler.disconnects)
	}
}

func TestLoopbackFrameDelivery(t *testing.T) {
	lb := transport.NewLoopback()
	handler := &recordingHandler{}
	lb.SetHandler(handler)

	lb.StartAdvertising()
	if err := lb.PeerConnect(); err != nil {
		t.Fatalf("PeerConnect failed: %v", err)
	}

	builder := wire.NewMessageBuilder()

	// Peer to device.
	write, err := builder.BuildCredentialWrite(wire.Credential{SSID: "Net", Password: "secretpw"})
	if err != nil {
		t.Fatalf("BuildCredentialWrite failed: %v", err)
	}
	if err := lb.PeerWrite(write); err != nil {
		t.Fatalf("PeerWrite failed: %v", err)
	}
	if len(handler.frames) != 1 || !bytes.Equal(handler.frames[0], write) {
		t.Errorf("inbound frame not delivered to handler")
	}

	// Device to peer.
	ack := builder.BuildCredentialAck(wire.AckSuccess)
	if err := lb.Send(ack); err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	got := lb.PeerReceive(time.Second)
	if !bytes.Equal(got, ack) {
		t.Errorf("peer received %x, want %x", got, ack)
	}
}

func TestLoopbackSendWithoutPeer(t *testing.T) {
	lb := transport.NewLoopback()
	builder := wire.NewMessageBuilder()

	if err := lb.Send(builder.BuildListStart()); !errors.Is(err, transport.ErrNoPeer) {
		t.Errorf("got %v, want ErrNoPeer", err)
	}
}

func TestLoopbackClosed(t *testing.T) {
	lb := transport.NewLoopback()
	lb.StartAdvertising()
	lb.Close()

	if err := lb.StartAdvertising(); !errors.Is(err, transport.ErrClosed) {
		t.Errorf("StartAdvertising after close: got %v, want ErrClosed", err)
	}
	if err := lb.PeerConnect(); !errors.Is(err, transport.ErrClosed) {
		t.Errorf("PeerConnect after close: got %v, want ErrClosed", err)
	}
	if lb.IsAdvertising() {
		t.Error("still advertising after close")
	}
}
