package network

import (
	"context"
	"net/netip"
	"sync"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// SimulatedNetwork describes one network visible to the Simulated
// backend.
type SimulatedNetwork struct {
	SSID     string
	Password string
	Signal   int8
	Security wire.SecurityType
	Channel  uint8
}

// Simulated is an in-memory WiFi backend for demos and tests. Connect
// succeeds when the SSID is in the configured network set and the
// password matches; an artificial latency can be configured to exercise
// timeout paths.
type Simulated struct {
	mu sync.Mutex

	networks []SimulatedNetwork

	// ConnectLatency delays every connect attempt. The context deadline
	// is honored during the delay.
	connectLatency time.Duration

	// scanErr, when set, is returned by Scan.
	scanErr error

	associated bool
	ssid       string
	signal     int8
	address    netip.Addr
}

var _ Interface = (*Simulated)(nil)

// NewSimulated creates a simulated backend with the given visible
// networks.
func NewSimulated(networks ...SimulatedNetwork) *Simulated {
	return &Simulated{networks: networks}
}

// SetConnectLatency configures an artificial delay for connect attempts.
func (s *Simulated) SetConnectLatency(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connectLatency = d
}

// SetScanError makes subsequent Scan calls fail. Pass nil to clear.
func (s *Simulated) SetScanError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanErr = err
}

// AddNetwork makes another network visible.
func (s *Simulated) AddNetwork(n SimulatedNetwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.networks = append(s.networks, n)
}

// RemoveNetwork hides the named network. An associated interface stays
// associated; only future scans and connects are affected.
func (s *Simulated) RemoveNetwork(ssid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.networks[:0]
	for _, n := range s.networks {
		if n.SSID != ssid {
			kept = append(kept, n)
		}
	}
	s.networks = kept
}

// Scan returns the configured networks.
func (s *Simulated) Scan(ctx context.Context) ([]wire.NetworkEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scanErr != nil {
		return nil, s.scanErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries := make([]wire.NetworkEntry, 0, len(s.networks))
	for _, n := range s.networks {
		entries = append(entries, wire.NetworkEntry{
			SSID:     n.SSID,
			Signal:   n.Signal,
			Security: n.Security,
			Channel:  n.Channel,
		})
	}
	return entries, nil
}

// Connect attempts to join the named network.
func (s *Simulated) Connect(ctx context.Context, ssid, password string) ConnectResult {
	s.mu.Lock()
	latency := s.connectLatency
	var target *SimulatedNetwork
	for i := range s.networks {
		if s.networks[i].SSID == ssid {
			target = &s.networks[i]
			break
		}
	}
	var network SimulatedNetwork
	if target != nil {
		network = *target
	}
	s.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return FailedTimeout
		case <-timer.C:
		}
	} else if ctx.Err() != nil {
		return FailedTimeout
	}

	if target == nil {
		return FailedNotFound
	}
	if network.Password != password {
		return FailedWrongCredential
	}

	s.mu.Lock()
	s.associated = true
	s.ssid = network.SSID
	s.signal = network.Signal
	s.address = netip.AddrFrom4([4]byte{192, 168, 1, 100})
	s.mu.Unlock()

	return Success
}

// Disconnect leaves the current network.
func (s *Simulated) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.associated = false
	s.ssid = ""
	s.signal = 0
	s.address = netip.Addr{}
}

// SignalStrength returns the current RSSI.
func (s *Simulated) SignalStrength() int8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.signal
}

// Address returns the current IPv4 address.
func (s *Simulated) Address() netip.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.address
}

// SSID returns the associated network's name.
func (s *Simulated) SSID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ssid
}

// IsAssociated reports whether the interface is joined to a network.
func (s *Simulated) IsAssociated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.associated
}
