package wire

import (
	"fmt"
	"net/netip"
)

// Field size limits.
const (
	// HeaderSize is the fixed frame header size in bytes.
	HeaderSize = 4

	// MaxSSIDLen is the maximum SSID length in bytes.
	MaxSSIDLen = 32

	// MaxPasswordLen is the maximum password length in bytes.
	MaxPasswordLen = 63

	// MaxErrorMessageLen is the maximum error message length in bytes.
	MaxErrorMessageLen = 255

	// MaxListCount is the maximum network count reported in a
	// WIFI_LIST_END frame. Larger lists are clamped.
	MaxListCount = 255
)

// Header is a parsed frame header.
type Header struct {
	Type          MessageType
	Sequence      uint8
	PayloadLength uint16
}

// Credential is a provisionable network credential. The password may be
// empty for open networks.
type Credential struct {
	SSID     string
	Password string
}

// Validate checks the credential against the protocol field limits.
func (c Credential) Validate() error {
	if len(c.SSID) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidSSID, ErrEmptySSID)
	}
	if len(c.SSID) > MaxSSIDLen {
		return fmt.Errorf("%w: %w: %d > %d", ErrInvalidSSID, ErrLengthExceeded, len(c.SSID), MaxSSIDLen)
	}
	if len(c.Password) > MaxPasswordLen {
		return fmt.Errorf("%w: %w: %d > %d", ErrInvalidPassword, ErrLengthExceeded, len(c.Password), MaxPasswordLen)
	}
	return nil
}

// NetworkEntry is one scan result as carried by a WIFI_NETWORK_ENTRY
// frame.
type NetworkEntry struct {
	// SSID is the network name. Truncated to MaxSSIDLen on encode.
	SSID string

	// Signal is the received signal strength in dBm.
	Signal int8

	// Security is the network's security mode.
	Security SecurityType

	// Channel is the radio channel.
	Channel uint8
}

// Status is the device status as carried by a STATUS_RESPONSE frame.
type Status struct {
	State   ConnectionState
	Signal  int8
	Address netip.Addr
	SSID    string
}

// ErrorReport is the content of an ERROR frame.
type ErrorReport struct {
	Code    ErrorCode
	Message string
}
