package wire

import (
	"fmt"
	"net/netip"
)

// MessageBuilder encodes protocol frames and assigns the outbound
// sequence numbers for one sender direction. It holds a single counter
// shared across all message types, post-incremented after every
// successful build and wrapping at 256.
//
// MessageBuilder is not safe for concurrent use; the provisioning
// session owns one and drives it from the cooperative tick only.
type MessageBuilder struct {
	sequence uint8
}

// NewMessageBuilder creates a builder with the sequence counter at zero.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// Sequence returns the sequence number the next frame will carry.
func (b *MessageBuilder) Sequence() uint8 {
	return b.sequence
}

// ResetSequence resets the outbound counter to zero.
func (b *MessageBuilder) ResetSequence() {
	b.sequence = 0
}

// header writes the 4-byte frame header and advances the sequence
// counter. The payload length is little-endian.
func (b *MessageBuilder) header(t MessageType, payloadLength uint16) []byte {
	msg := make([]byte, HeaderSize, HeaderSize+int(payloadLength))
	msg[0] = byte(t)
	msg[1] = b.sequence
	msg[2] = byte(payloadLength)
	msg[3] = byte(payloadLength >> 8)
	b.sequence++ // wraps at 256
	return msg
}

// BuildListStart builds a WIFI_LIST_START frame.
func (b *MessageBuilder) BuildListStart() []byte {
	return b.header(MessageTypeListStart, 0)
}

// BuildNetworkEntry builds a WIFI_NETWORK_ENTRY frame. SSIDs longer
// than MaxSSIDLen are truncated in the emitted frame.
func (b *MessageBuilder) BuildNetworkEntry(n NetworkEntry) []byte {
	ssid := n.SSID
	if len(ssid) > MaxSSIDLen {
		ssid = ssid[:MaxSSIDLen]
	}

	payloadLength := uint16(1 + len(ssid) + 1 + 1 + 1)
	msg := b.header(MessageTypeNetworkEntry, payloadLength)
	msg = append(msg, byte(len(ssid)))
	msg = append(msg, ssid...)
	msg = append(msg, byte(n.Signal), byte(n.Security), n.Channel)
	return msg
}

// BuildListEnd builds a WIFI_LIST_END frame. Counts above MaxListCount
// are clamped.
func (b *MessageBuilder) BuildListEnd(networkCount int) []byte {
	if networkCount > MaxListCount {
		networkCount = MaxListCount
	}
	msg := b.header(MessageTypeListEnd, 1)
	return append(msg, byte(networkCount))
}

// BuildCredentialWrite builds a CREDENTIAL_WRITE frame. Used by the
// peer side of the protocol; the credential must satisfy the field
// limits.
func (b *MessageBuilder) BuildCredentialWrite(c Credential) ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("credential write: %w", err)
	}

	payloadLength := uint16(1 + len(c.SSID) + 1 + len(c.Password))
	msg := b.header(MessageTypeCredentialWrite, payloadLength)
	msg = append(msg, byte(len(c.SSID)))
	msg = append(msg, c.SSID...)
	msg = append(msg, byte(len(c.Password)))
	msg = append(msg, c.Password...)
	return msg, nil
}

// BuildCredentialAck builds a CREDENTIAL_WRITE_ACK frame.
func (b *MessageBuilder) BuildCredentialAck(status AckStatus) []byte {
	msg := b.header(MessageTypeCredentialAck, 1)
	return append(msg, byte(status))
}

// BuildStatusRequest builds a STATUS_REQUEST frame. Used by the peer.
func (b *MessageBuilder) BuildStatusRequest() []byte {
	return b.header(MessageTypeStatusRequest, 0)
}

// BuildStatusResponse builds a STATUS_RESPONSE frame. The address is
// encoded as 4 bytes in network byte order; a non-IPv4 or invalid
// address encodes as 0.0.0.0. Overlong SSIDs are truncated.
func (b *MessageBuilder) BuildStatusResponse(s Status) []byte {
	ssid := s.SSID
	if len(ssid) > MaxSSIDLen {
		ssid = ssid[:MaxSSIDLen]
	}

	var ip [4]byte
	if s.Address.Is4() || s.Address.Is4In6() {
		ip = s.Address.Unmap().As4()
	}

	payloadLength := uint16(1 + 1 + 4 + 1 + len(ssid))
	msg := b.header(MessageTypeStatusResponse, payloadLength)
	msg = append(msg, byte(s.State), byte(s.Signal))
	msg = append(msg, ip[:]...)
	msg = append(msg, byte(len(ssid)))
	msg = append(msg, ssid...)
	return msg
}

// BuildError builds an ERROR frame. Messages longer than
// MaxErrorMessageLen are truncated rather than rejected.
func (b *MessageBuilder) BuildError(code ErrorCode, message string) []byte {
	if len(message) > MaxErrorMessageLen {
		message = message[:MaxErrorMessageLen]
	}

	payloadLength := uint16(1 + 1 + len(message))
	msg := b.header(MessageTypeError, payloadLength)
	msg = append(msg, byte(code), byte(len(message)))
	msg = append(msg, message...)
	return msg
}

// addrFrom4 converts 4 raw bytes in network byte order to a netip.Addr.
func addrFrom4(b []byte) netip.Addr {
	return netip.AddrFrom4([4]byte{b[0], b[1], b[2], b[3]})
}
