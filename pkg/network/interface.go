package network

import (
	"context"
	"net/netip"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// ConnectResult is the outcome of a connect attempt.
type ConnectResult int

const (
	// Success means the interface associated and obtained an address.
	Success ConnectResult = iota
	// FailedWrongCredential means authentication was rejected.
	FailedWrongCredential
	// FailedNotFound means the target network was not seen.
	FailedNotFound
	// FailedTimeout means the attempt did not complete in time.
	FailedTimeout
	// FailedUnknown covers everything else.
	FailedUnknown
)

// String returns a human-readable result name.
func (r ConnectResult) String() string {
	switch r {
	case Success:
		return "success"
	case FailedWrongCredential:
		return "wrong credential"
	case FailedNotFound:
		return "network not found"
	case FailedTimeout:
		return "timeout"
	case FailedUnknown:
		return "unknown failure"
	default:
		return "invalid"
	}
}

// Interface is the WiFi backend driven by the provisioning service.
// Connect and Scan honor context cancellation; the other methods report
// current state and do not block.
type Interface interface {
	// Scan returns the currently visible networks.
	Scan(ctx context.Context) ([]wire.NetworkEntry, error)

	// Connect attempts to join the named network. It blocks until the
	// attempt resolves or ctx expires; expiry yields FailedTimeout.
	Connect(ctx context.Context, ssid, password string) ConnectResult

	// Disconnect leaves the current network. No-op when not associated.
	Disconnect()

	// SignalStrength returns the current RSSI in dBm, 0 when not
	// associated.
	SignalStrength() int8

	// Address returns the interface's IPv4 address, the zero Addr when
	// not associated.
	Address() netip.Addr

	// SSID returns the associated network's name, "" when not
	// associated.
	SSID() string

	// IsAssociated reports whether the interface is joined to a network.
	IsAssociated() bool
}
