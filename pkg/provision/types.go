package provision

import (
	"errors"
	"log/slog"
	"net/netip"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/log"
	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Service errors.
var (
	ErrAlreadyBegun  = errors.New("service already begun")
	ErrNotBegun      = errors.New("service not begun")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingDep    = errors.New("missing dependency")
	ErrNoCredential  = errors.New("no credential stored")
	ErrClosed        = errors.New("service closed")
)

// Config configures a provisioning Service.
type Config struct {
	// DeviceName is the name advertised to provisioning peers.
	DeviceName string

	// ConnectTimeout bounds each network connect attempt (default: 10s).
	ConnectTimeout time.Duration

	// StatusInterval is the periodic status re-announcement interval
	// (default: 10s).
	StatusInterval time.Duration

	// ScanLimit caps the number of networks transmitted to a peer
	// (default: 50).
	ScanLimit int

	// Logger is the optional logger for debug output.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger is the optional structured protocol event logger.
	ProtocolLogger log.Logger
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout: 10 * time.Second,
		StatusInterval: 10 * time.Second,
		ScanLimit:      50,
	}
}

// Validate checks the config and fills in defaults for zero values.
func (c *Config) Validate() error {
	if c.DeviceName == "" {
		return ErrInvalidConfig
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = 10 * time.Second
	}
	if c.StatusInterval == 0 {
		c.StatusInterval = 10 * time.Second
	}
	if c.ScanLimit == 0 {
		c.ScanLimit = 50
	}
	if c.ScanLimit < 0 {
		return ErrInvalidConfig
	}
	return nil
}

// Events is the notification surface toward the host application. All
// methods are invoked from Begin or Tick, never from a transport
// goroutine. Embed NopEvents to implement only a subset.
type Events interface {
	// CredentialsReceived reports a validated credential write from the
	// peer, before the connect attempt starts.
	CredentialsReceived(ssid, password string)

	// ConnectionStatusChanged reports a state transition. Called exactly
	// once per transition.
	ConnectionStatusChanged(state wire.ConnectionState)

	// NetworkConnected reports a successful connect with the obtained
	// address.
	NetworkConnected(address netip.Addr)

	// NetworkConnectionFailed reports a failed connect attempt.
	NetworkConnectionFailed()

	// PeerConnected reports a provisioning peer connecting.
	PeerConnected()

	// PeerDisconnected reports the provisioning peer going away.
	PeerDisconnected()
}

// NopEvents is an Events implementation that ignores everything.
type NopEvents struct{}

var _ Events = NopEvents{}

func (NopEvents) CredentialsReceived(ssid, password string)          {}
func (NopEvents) ConnectionStatusChanged(state wire.ConnectionState) {}
func (NopEvents) NetworkConnected(address netip.Addr)                {}
func (NopEvents) NetworkConnectionFailed()                           {}
func (NopEvents) PeerConnected()                                     {}
func (NopEvents) PeerDisconnected()                                  {}
