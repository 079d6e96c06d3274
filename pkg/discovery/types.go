package discovery

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Service constants for mDNS.
const (
	// ServiceType is the service type for provisionable WiFiSet devices.
	ServiceType = "_wifiset._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// ProtocolVersion is the advertised WiFiSet protocol version.
	ProtocolVersion = "1"

	// BrowseTimeout is the default timeout for browse operations.
	BrowseTimeout = 10 * time.Second
)

// TXT record keys.
const (
	TXTKeyDeviceName = "DN" // Device name
	TXTKeyVersion    = "V"  // Protocol version
	TXTKeyState      = "ST" // Connection state (decimal)
)

// Discovery errors.
var (
	// ErrMissingRequired indicates a required TXT record is absent.
	ErrMissingRequired = errors.New("missing required TXT record")

	// ErrNotFound indicates no matching device was discovered.
	ErrNotFound = errors.New("device not found")
)

// Info describes an advertised provisionable device.
type Info struct {
	// DeviceName is the advertised instance name.
	DeviceName string

	// Port is the transport's listen port.
	Port int

	// State is the device's connection state at advertise time.
	State wire.ConnectionState
}

// Service is one discovered provisionable device.
type Service struct {
	// InstanceName is the mDNS instance name.
	InstanceName string

	// DeviceName is the advertised device name.
	DeviceName string

	// Addresses are the device's resolved addresses.
	Addresses []string

	// Port is the device's transport port.
	Port int

	// State is the connection state carried in TXT records.
	State wire.ConnectionState
}

// EncodeTXT creates TXT records for a provisionable device.
func EncodeTXT(info Info) []string {
	return []string{
		TXTKeyDeviceName + "=" + info.DeviceName,
		TXTKeyVersion + "=" + ProtocolVersion,
		TXTKeyState + "=" + strconv.Itoa(int(info.State)),
	}
}

// DecodeTXT parses TXT records into name and state.
func DecodeTXT(records []string) (name string, state wire.ConnectionState, err error) {
	found := false
	for _, record := range records {
		key, value, ok := strings.Cut(record, "=")
		if !ok {
			continue
		}
		switch key {
		case TXTKeyDeviceName:
			name = value
			found = true
		case TXTKeyState:
			if n, convErr := strconv.Atoi(value); convErr == nil {
				state = wire.ConnectionState(n)
			}
		}
	}
	if !found {
		return "", 0, ErrMissingRequired
	}
	return name, state, nil
}

// Advertiser makes a device discoverable on the local link.
// Implemented by MDNSAdvertiser.
type Advertiser interface {
	// Advertise registers the service. A second call replaces the
	// previous registration.
	Advertise(info Info) error

	// Stop withdraws the registration. Safe to call when not advertising.
	Stop()

	// Active reports whether a registration is live.
	Active() bool
}
