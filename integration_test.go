package wifiset_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/discovery"
	"github.com/wifiset-protocol/wifiset-go/pkg/network"
	"github.com/wifiset-protocol/wifiset-go/pkg/persistence"
	"github.com/wifiset-protocol/wifiset-go/pkg/provision"
	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// startDevice wires up a full device stack on a random TCP port and
// runs its tick loop until the test ends. Returns the service and the
// address a peer can dial.
func startDevice(t *testing.T, store persistence.Store, nets ...network.SimulatedNetwork) (*provision.Service, string) {
	t.Helper()

	if store == nil {
		store = persistence.NewFileStore(filepath.Join(t.TempDir(), "credential.json"))
	}

	tcp, err := transport.NewTCPTransport(transport.TCPConfig{
		Address:    "127.0.0.1:0",
		DeviceName: "e2e-device",
	})
	if err != nil {
		t.Fatalf("Failed to create transport: %v", err)
	}

	svc, err := provision.New(provision.Config{DeviceName: "e2e-device"}, provision.Deps{
		Transport: tcp,
		Network:   network.NewSimulated(nets...),
		Store:     store,
	})
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := svc.Begin(ctx); err != nil {
		t.Fatalf("Failed to begin service: %v", err)
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(5 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				svc.Tick(ctx)
			}
		}
	}()

	t.Cleanup(func() {
		cancel()
		wg.Wait()
		svc.Close()
	})

	return svc, tcp.Addr().String()
}

// receiveFrames reads frames until a frame of the wanted type arrives,
// returning everything received in order.
func receiveFrames(t *testing.T, conn *transport.PeerConn, until wire.MessageType) [][]byte {
	t.Helper()

	var frames [][]byte
	for {
		frame, err := conn.Receive(2 * time.Second)
		if err != nil {
			t.Fatalf("Failed to receive frame: %v", err)
		}
		frames = append(frames, frame)

		header, err := wire.ParseHeader(frame)
		if err != nil {
			t.Fatalf("Failed to parse header: %v", err)
		}
		if header.Type == until {
			return frames
		}
	}
}

// TestE2E_Provisioning walks the whole flow over TCP: a peer connects,
// receives the network list, writes a credential, and watches the
// device join the network.
func TestE2E_Provisioning(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := persistence.NewFileStore(filepath.Join(t.TempDir(), "credential.json"))
	svc, addr := startDevice(t, store,
		network.SimulatedNetwork{SSID: "HomeNetwork", Password: "hunter22", Signal: -45, Security: wire.SecurityWPAPSK, Channel: 6},
		network.SimulatedNetwork{SSID: "CoffeeShop", Signal: -72, Security: wire.SecurityOpen, Channel: 11},
	)

	conn, err := transport.Dial(ctx, addr, transport.DialConfig{})
	if err != nil {
		t.Fatalf("Failed to dial device: %v", err)
	}
	defer conn.Close()

	// The device greets a new peer with its network list and a status.
	frames := receiveFrames(t, conn, wire.MessageTypeStatusResponse)

	wantTypes := []wire.MessageType{
		wire.MessageTypeListStart,
		wire.MessageTypeNetworkEntry,
		wire.MessageTypeNetworkEntry,
		wire.MessageTypeListEnd,
		wire.MessageTypeStatusResponse,
	}
	if len(frames) != len(wantTypes) {
		t.Fatalf("Expected %d frames, got %d", len(wantTypes), len(frames))
	}
	for i, want := range wantTypes {
		header, _ := wire.ParseHeader(frames[i])
		if header.Type != want {
			t.Errorf("Frame %d: expected %s, got %s", i, want, header.Type)
		}
	}

	entry, err := wire.ParseNetworkEntry(frames[1])
	if err != nil {
		t.Fatalf("Failed to parse network entry: %v", err)
	}
	if entry.SSID != "HomeNetwork" && entry.SSID != "CoffeeShop" {
		t.Errorf("Unexpected network entry SSID %q", entry.SSID)
	}

	total, err := wire.ParseListEnd(frames[3])
	if err != nil {
		t.Fatalf("Failed to parse list end: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 networks in list end, got %d", total)
	}

	status, err := wire.ParseStatusResponse(frames[4])
	if err != nil {
		t.Fatalf("Failed to parse status: %v", err)
	}
	if status.State != wire.StateNotConfigured {
		t.Errorf("Expected NotConfigured before provisioning, got %s", status.State)
	}

	// Write the credential.
	builder := wire.NewMessageBuilder()
	frame, err := builder.BuildCredentialWrite(wire.Credential{SSID: "HomeNetwork", Password: "hunter22"})
	if err != nil {
		t.Fatalf("Failed to build credential write: %v", err)
	}
	if err := conn.Send(frame); err != nil {
		t.Fatalf("Failed to send credential write: %v", err)
	}

	// Ack comes first, then status updates as the device connects.
	ackFrame, err := conn.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("Failed to receive ack: %v", err)
	}
	ack, err := wire.ParseCredentialAck(ackFrame)
	if err != nil {
		t.Fatalf("Failed to parse ack: %v", err)
	}
	if ack != wire.AckSuccess {
		t.Fatalf("Expected AckSuccess, got %s", ack)
	}

	var states []wire.ConnectionState
	deadline := time.Now().Add(5 * time.Second)
	for {
		statusFrame, err := conn.Receive(time.Until(deadline))
		if err != nil {
			t.Fatalf("Failed to receive status: %v", err)
		}
		status, err := wire.ParseStatusResponse(statusFrame)
		if err != nil {
			t.Fatalf("Failed to parse status: %v", err)
		}
		states = append(states, status.State)
		if status.State == wire.StateConnected || status.State == wire.StateConnectionFailed {
			break
		}
	}

	last := states[len(states)-1]
	if last != wire.StateConnected {
		t.Fatalf("Expected device to reach Connected, states were %v", states)
	}
	if states[0] != wire.StateConnecting {
		t.Errorf("Expected Connecting before Connected, states were %v", states)
	}

	// The credential is persisted and the service reports the join.
	saved, found, err := store.Load()
	if err != nil {
		t.Fatalf("Failed to load stored credential: %v", err)
	}
	if !found {
		t.Fatal("Expected credential to be persisted")
	}
	if saved.SSID != "HomeNetwork" || saved.Password != "hunter22" {
		t.Errorf("Stored credential mismatch: %+v", saved)
	}

	if !svc.IsConnected() {
		t.Error("Service should report connected")
	}
	if svc.SSID() != "HomeNetwork" {
		t.Errorf("Expected SSID HomeNetwork, got %q", svc.SSID())
	}

	t.Logf("Provisioning flow complete - device connected to %s at %s", svc.SSID(), svc.Address())
}

// TestE2E_WrongPassword verifies the failure path: the write is acked,
// the join fails, and the peer sees ConnectionFailed.
func TestE2E_WrongPassword(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	svc, addr := startDevice(t, nil,
		network.SimulatedNetwork{SSID: "HomeNetwork", Password: "hunter22", Signal: -45, Security: wire.SecurityWPAPSK, Channel: 6},
	)

	conn, err := transport.Dial(ctx, addr, transport.DialConfig{})
	if err != nil {
		t.Fatalf("Failed to dial device: %v", err)
	}
	defer conn.Close()

	receiveFrames(t, conn, wire.MessageTypeStatusResponse)

	builder := wire.NewMessageBuilder()
	frame, _ := builder.BuildCredentialWrite(wire.Credential{SSID: "HomeNetwork", Password: "wrong"})
	if err := conn.Send(frame); err != nil {
		t.Fatalf("Failed to send credential write: %v", err)
	}

	ackFrame, err := conn.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("Failed to receive ack: %v", err)
	}
	if ack, _ := wire.ParseCredentialAck(ackFrame); ack != wire.AckSuccess {
		t.Fatalf("Expected AckSuccess for a well-formed write, got %s", ack)
	}

	var last wire.ConnectionState
	for {
		statusFrame, err := conn.Receive(5 * time.Second)
		if err != nil {
			t.Fatalf("Failed to receive status: %v", err)
		}
		status, err := wire.ParseStatusResponse(statusFrame)
		if err != nil {
			t.Fatalf("Failed to parse status: %v", err)
		}
		last = status.State
		if last != wire.StateConnecting {
			break
		}
	}

	if last != wire.StateConnectionFailed {
		t.Fatalf("Expected ConnectionFailed, got %s", last)
	}
	if svc.IsConnected() {
		t.Error("Service should not report connected")
	}
}

// TestE2E_StatusRequest checks the on-demand status query.
func TestE2E_StatusRequest(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, addr := startDevice(t, nil)

	conn, err := transport.Dial(ctx, addr, transport.DialConfig{})
	if err != nil {
		t.Fatalf("Failed to dial device: %v", err)
	}
	defer conn.Close()

	receiveFrames(t, conn, wire.MessageTypeStatusResponse)

	builder := wire.NewMessageBuilder()
	frame := builder.BuildStatusRequest()
	if err := conn.Send(frame); err != nil {
		t.Fatalf("Failed to send status request: %v", err)
	}

	respFrame, err := conn.Receive(2 * time.Second)
	if err != nil {
		t.Fatalf("Failed to receive status response: %v", err)
	}
	status, err := wire.ParseStatusResponse(respFrame)
	if err != nil {
		t.Fatalf("Failed to parse status response: %v", err)
	}
	if status.State != wire.StateNotConfigured {
		t.Errorf("Expected NotConfigured, got %s", status.State)
	}
}

// TestE2E_Discovery tests that a peer can locate a device via mDNS.
func TestE2E_Discovery(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	advertiser := discovery.NewMDNSAdvertiser(discovery.DefaultAdvertiserConfig())
	defer advertiser.Stop()

	if err := advertiser.Advertise(discovery.Info{
		DeviceName: "e2e-discovery-device",
		Port:       9431,
		State:      wire.StateNotConfigured,
	}); err != nil {
		t.Fatalf("Failed to advertise: %v", err)
	}

	// Give mDNS time to propagate
	time.Sleep(500 * time.Millisecond)

	findCtx, findCancel := context.WithTimeout(ctx, 5*time.Second)
	defer findCancel()

	found, err := discovery.Find(findCtx, "e2e-discovery-device")
	if err != nil {
		t.Fatalf("Failed to find device: %v", err)
	}

	if found.DeviceName != "e2e-discovery-device" {
		t.Errorf("DeviceName mismatch: got %s", found.DeviceName)
	}
	if found.Port != 9431 {
		t.Errorf("Port mismatch: expected 9431, got %d", found.Port)
	}
	if found.State != wire.StateNotConfigured {
		t.Errorf("State mismatch: expected NotConfigured, got %s", found.State)
	}
}
