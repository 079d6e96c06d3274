// Package wire defines the binary wire format for the WiFiSet
// provisioning protocol.
//
// Every message is a single frame small enough for one characteristic
// write/notify on the underlying transport:
//
//	┌──────────────────────────────────────┐
//	│  Header (4 bytes)                    │
//	│  [type, sequence, len_low, len_high] │
//	├──────────────────────────────────────┤
//	│  Payload (0..65535 bytes)            │
//	└──────────────────────────────────────┘
//
// The payload length is little-endian. The sequence byte is a single
// wrapping counter per sender direction; it is informational only and
// receivers must not reject frames because of sequence gaps.
//
// # Message Types
//
// Device to peer: WIFI_LIST_START, WIFI_NETWORK_ENTRY, WIFI_LIST_END,
// CREDENTIAL_WRITE_ACK, STATUS_RESPONSE, ERROR.
//
// Peer to device: CREDENTIAL_WRITE, STATUS_REQUEST.
//
// Strings are length-prefixed with a single byte and bounded per field
// (SSID 32 bytes, password 63 bytes, error message 255 bytes). All
// multi-byte integers are little-endian except the 4-byte IPv4 address
// in STATUS_RESPONSE, which is network byte order.
package wire
