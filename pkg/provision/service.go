package provision

import (
	"context"
	"log/slog"
	"net/netip"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/log"
	"github.com/wifiset-protocol/wifiset-go/pkg/network"
	"github.com/wifiset-protocol/wifiset-go/pkg/persistence"
	"github.com/wifiset-protocol/wifiset-go/pkg/transport"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Deps are the Service's collaborators. All three are required.
type Deps struct {
	Transport transport.Transport
	Network   network.Interface
	Store     persistence.Store
}

// Service orchestrates WiFi provisioning on the device. It owns the
// connection state machine and is driven cooperatively: transport
// callbacks record pending work, Tick performs it. All protocol and
// network activity happens on the goroutine calling Begin and Tick.
type Service struct {
	mu sync.Mutex

	config    Config
	transport transport.Transport
	network   network.Interface
	store     persistence.Store
	events    Events

	builder *wire.MessageBuilder
	state   wire.ConnectionState

	begun  bool
	closed bool

	// Deferred execution bridge. Set from transport goroutines, drained
	// by Tick.
	pendingConnect    atomic.Bool
	pendingDisconnect atomic.Bool

	inboundMu sync.Mutex
	inbound   [][]byte

	lastStatusAt time.Time

	logger         *slog.Logger
	protocolLogger log.Logger
}

var _ transport.Events = (*Service)(nil)

// New creates a provisioning service. The transport handler is not
// registered until Begin.
func New(config Config, deps Deps) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if deps.Transport == nil || deps.Network == nil || deps.Store == nil {
		return nil, ErrMissingDep
	}

	return &Service{
		config:         config,
		transport:      deps.Transport,
		network:        deps.Network,
		store:          deps.Store,
		events:         NopEvents{},
		builder:        wire.NewMessageBuilder(),
		state:          wire.StateNotConfigured,
		logger:         config.Logger,
		protocolLogger: config.ProtocolLogger,
	}, nil
}

// SetEvents registers the host application's event sink. Must be called
// before Begin.
func (s *Service) SetEvents(events Events) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if events == nil {
		events = NopEvents{}
	}
	s.events = events
}

// Begin starts the provisioning session. It loads any persisted
// credential and, when one exists, performs a bounded connect attempt
// before deciding whether to advertise: a device that reaches its
// network does not advertise at all.
func (s *Service) Begin(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.begun {
		s.mu.Unlock()
		return ErrAlreadyBegun
	}
	s.begun = true
	s.mu.Unlock()

	s.transport.SetHandler(s)

	credential, found, err := s.store.Load()
	if err != nil {
		// A broken store reads as no credential. The peer can
		// re-provision.
		s.logf("credential load failed", "error", err)
		found = false
	}

	if found {
		s.setState(wire.StateConfiguredNotConnected, "persisted credential")
		if s.connectAttempt(ctx, credential) {
			return nil
		}
	}

	if err := s.transport.StartAdvertising(); err != nil {
		return err
	}
	s.logf("advertising started", "device", s.config.DeviceName)
	return nil
}

// Close shuts the service down and closes the transport.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.transport.Close()
}

//
// Transport callbacks (deferred execution bridge)
//
// These run on the transport's goroutine. They must not block, perform
// protocol work, or call back into the transport; they only record that
// work is pending for the next Tick.
//

// OnPeerConnected records a peer connection for the next Tick.
func (s *Service) OnPeerConnected() {
	s.pendingConnect.Store(true)
}

// OnPeerDisconnected records a peer disconnection for the next Tick.
func (s *Service) OnPeerDisconnected() {
	s.pendingDisconnect.Store(true)
}

// OnInboundFrame queues a frame for the next Tick.
func (s *Service) OnInboundFrame(frame []byte) {
	buf := make([]byte, len(frame))
	copy(buf, frame)

	s.inboundMu.Lock()
	s.inbound = append(s.inbound, buf)
	s.inboundMu.Unlock()
}

//
// Accessors
//

// ConnectionState returns the current state.
func (s *Service) ConnectionState() wire.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsConnected reports whether the device is in the connected state.
func (s *Service) IsConnected() bool {
	return s.ConnectionState() == wire.StateConnected
}

// Address returns the network interface's IPv4 address.
func (s *Service) Address() netip.Addr {
	return s.network.Address()
}

// Signal returns the current RSSI in dBm.
func (s *Service) Signal() int8 {
	return s.network.SignalStrength()
}

// SSID returns the associated network's name.
func (s *Service) SSID() string {
	return s.network.SSID()
}

// SavedCredential returns the persisted credential, if any.
func (s *Service) SavedCredential() (wire.Credential, bool, error) {
	return s.store.Load()
}

// StartAdvertising makes the device discoverable for provisioning.
func (s *Service) StartAdvertising() error {
	return s.transport.StartAdvertising()
}

// StopAdvertising stops accepting provisioning peers.
func (s *Service) StopAdvertising() error {
	return s.transport.StopAdvertising()
}

// IsAdvertising reports whether the device is discoverable.
func (s *Service) IsAdvertising() bool {
	return s.transport.IsAdvertising()
}

//
// Manual API
//

// ConnectNetwork joins a network directly, bypassing the provisioning
// peer. When save is set the credential is persisted first; a storage
// failure aborts before any connect attempt. The same state transitions
// fire as for a peer-written credential.
func (s *Service) ConnectNetwork(ctx context.Context, ssid, password string, save bool) error {
	credential := wire.Credential{SSID: ssid, Password: password}
	if err := credential.Validate(); err != nil {
		return err
	}

	if save {
		if err := s.store.Save(credential); err != nil {
			return err
		}
	}

	s.connectAttempt(ctx, credential)
	return nil
}

// DisconnectNetwork leaves the current network. The credential stays
// stored, so the state becomes configured-not-connected.
func (s *Service) DisconnectNetwork() {
	s.network.Disconnect()
	if s.ConnectionState() == wire.StateConnected {
		s.setState(wire.StateConfiguredNotConnected, "manual disconnect")
	}
}

// ClearCredentials removes the stored credential and resets the state
// machine to not-configured. The network link, if up, is dropped.
func (s *Service) ClearCredentials() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.network.Disconnect()
	s.setState(wire.StateNotConfigured, "credentials cleared")
	return nil
}

//
// State machine
//

// setState performs a state transition. The status-changed callback
// fires exactly once per transition, and a status frame is pushed to a
// connected peer.
func (s *Service) setState(next wire.ConnectionState, reason string) {
	s.mu.Lock()
	prev := s.state
	if prev == next {
		s.mu.Unlock()
		return
	}
	s.state = next
	events := s.events
	s.mu.Unlock()

	s.logf("state change", "from", prev.String(), "to", next.String(), "reason", reason)
	s.logStateChange(prev, next, reason)

	events.ConnectionStatusChanged(next)
	s.pushStatus()
}

// connectAttempt runs one bounded connect attempt with the full
// Connecting -> Connected/ConnectionFailed transition sequence. Reports
// whether the attempt succeeded.
func (s *Service) connectAttempt(ctx context.Context, credential wire.Credential) bool {
	s.setState(wire.StateConnecting, "connect attempt")

	connectCtx, cancel := context.WithTimeout(ctx, s.config.ConnectTimeout)
	defer cancel()

	result := s.network.Connect(connectCtx, credential.SSID, credential.Password)
	if result == network.Success {
		s.setState(wire.StateConnected, "connect succeeded")
		s.mu.Lock()
		events := s.events
		s.mu.Unlock()
		events.NetworkConnected(s.network.Address())
		return true
	}

	s.logf("connect failed", "ssid", credential.SSID, "result", result.String())
	s.setState(wire.StateConnectionFailed, "connect failed: "+result.String())
	s.mu.Lock()
	events := s.events
	s.mu.Unlock()
	events.NetworkConnectionFailed()
	return false
}

// pushStatus sends a status frame to the peer, if one is connected, and
// resets the re-announcement timer. Send failures are silent drops.
func (s *Service) pushStatus() {
	s.mu.Lock()
	state := s.state
	frame := s.builder.BuildStatusResponse(wire.Status{
		State:   state,
		Signal:  s.network.SignalStrength(),
		Address: s.network.Address(),
		SSID:    s.network.SSID(),
	})
	s.lastStatusAt = time.Now()
	s.mu.Unlock()

	if s.transport.PeerConnected() {
		_ = s.transport.Send(frame)
	}
}

func (s *Service) logf(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *Service) logStateChange(prev, next wire.ConnectionState, reason string) {
	if s.protocolLogger == nil {
		return
	}
	s.protocolLogger.Log(log.Event{
		Timestamp: time.Now(),
		Layer:     log.LayerSession,
		Category:  log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: prev,
			NewState: next,
			Reason:   reason,
		},
	})
}
