package wire

import (
	"fmt"
)

// ParseHeader parses the fixed 4-byte frame header. It does not check
// that the declared payload is physically present; use Validate for
// whole-frame validation.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrHeaderTooShort, len(data))
	}
	return Header{
		Type:          MessageType(data[0]),
		Sequence:      data[1],
		PayloadLength: uint16(data[2]) | uint16(data[3])<<8,
	}, nil
}

// Validate checks that the frame is exactly header plus the declared
// payload length. A mismatch in either direction is a protocol error;
// frames are never silently truncated or padded.
func Validate(data []byte) error {
	header, err := ParseHeader(data)
	if err != nil {
		return err
	}
	expected := HeaderSize + int(header.PayloadLength)
	if len(data) != expected {
		return fmt.Errorf("%w: have %d bytes, header declares %d", ErrLengthMismatch, len(data), expected)
	}
	return nil
}

// extractString reads one length-prefixed string from buf, bounded by
// maxLen. It returns the string and the number of bytes consumed
// (length byte included). buf must already be limited to the remaining
// declared payload bytes, not the physical buffer.
func extractString(buf []byte, maxLen int) (string, int, error) {
	if len(buf) < 1 {
		return "", 0, fmt.Errorf("%w: missing length byte", ErrInsufficientData)
	}
	n := int(buf[0])
	if n > maxLen {
		return "", 0, fmt.Errorf("%w: %d > %d", ErrLengthExceeded, n, maxLen)
	}
	if len(buf) < 1+n {
		return "", 0, fmt.Errorf("%w: declared %d, have %d", ErrInsufficientData, n, len(buf)-1)
	}
	return string(buf[1 : 1+n]), 1 + n, nil
}

// validatedPayload validates the frame, checks its type, and returns
// the payload slice bounded by the declared length.
func validatedPayload(data []byte, want MessageType) ([]byte, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	header, _ := ParseHeader(data)
	if header.Type != want {
		return nil, fmt.Errorf("%w: got %s, want %s", ErrWrongMessageType, header.Type, want)
	}
	return data[HeaderSize : HeaderSize+int(header.PayloadLength)], nil
}

// ParseCredentialWrite parses a CREDENTIAL_WRITE frame. The SSID and
// password reads are both bounded by the frame's declared payload
// length. A returned credential is always fully valid: wrong
// type, bounds violations and an empty SSID all fail the parse with no
// partial result.
func ParseCredentialWrite(data []byte) (Credential, error) {
	payload, err := validatedPayload(data, MessageTypeCredentialWrite)
	if err != nil {
		return Credential{}, err
	}

	ssid, consumed, err := extractString(payload, MaxSSIDLen)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %w", ErrInvalidSSID, err)
	}
	if len(ssid) == 0 {
		return Credential{}, fmt.Errorf("%w: %w", ErrInvalidSSID, ErrEmptySSID)
	}

	password, _, err := extractString(payload[consumed:], MaxPasswordLen)
	if err != nil {
		return Credential{}, fmt.Errorf("%w: %w", ErrInvalidPassword, err)
	}

	// Password may be empty for open networks.
	return Credential{SSID: ssid, Password: password}, nil
}

// ParseStatusRequest parses a STATUS_REQUEST frame, which must carry no
// payload.
func ParseStatusRequest(data []byte) error {
	payload, err := validatedPayload(data, MessageTypeStatusRequest)
	if err != nil {
		return err
	}
	if len(payload) != 0 {
		return fmt.Errorf("%w: status request carries %d bytes", ErrUnexpectedPayload, len(payload))
	}
	return nil
}

// ParseNetworkEntry parses a WIFI_NETWORK_ENTRY frame. Used by the peer
// side when receiving a network list.
func ParseNetworkEntry(data []byte) (NetworkEntry, error) {
	payload, err := validatedPayload(data, MessageTypeNetworkEntry)
	if err != nil {
		return NetworkEntry{}, err
	}

	ssid, consumed, err := extractString(payload, MaxSSIDLen)
	if err != nil {
		return NetworkEntry{}, fmt.Errorf("%w: %w", ErrInvalidSSID, err)
	}
	rest := payload[consumed:]
	if len(rest) != 3 {
		return NetworkEntry{}, fmt.Errorf("%w: want signal, security and channel bytes", ErrInsufficientData)
	}

	return NetworkEntry{
		SSID:     ssid,
		Signal:   int8(rest[0]),
		Security: SecurityType(rest[1]),
		Channel:  rest[2],
	}, nil
}

// ParseListEnd parses a WIFI_LIST_END frame and returns the reported
// network count.
func ParseListEnd(data []byte) (int, error) {
	payload, err := validatedPayload(data, MessageTypeListEnd)
	if err != nil {
		return 0, err
	}
	if len(payload) != 1 {
		return 0, fmt.Errorf("%w: list end payload is %d bytes", ErrLengthMismatch, len(payload))
	}
	return int(payload[0]), nil
}

// ParseCredentialAck parses a CREDENTIAL_WRITE_ACK frame.
func ParseCredentialAck(data []byte) (AckStatus, error) {
	payload, err := validatedPayload(data, MessageTypeCredentialAck)
	if err != nil {
		return 0, err
	}
	if len(payload) != 1 {
		return 0, fmt.Errorf("%w: ack payload is %d bytes", ErrLengthMismatch, len(payload))
	}
	return AckStatus(payload[0]), nil
}

// ParseStatusResponse parses a STATUS_RESPONSE frame.
func ParseStatusResponse(data []byte) (Status, error) {
	payload, err := validatedPayload(data, MessageTypeStatusResponse)
	if err != nil {
		return Status{}, err
	}
	if len(payload) < 7 {
		return Status{}, fmt.Errorf("%w: status payload is %d bytes", ErrInsufficientData, len(payload))
	}

	status := Status{
		State:   ConnectionState(payload[0]),
		Signal:  int8(payload[1]),
		Address: addrFrom4(payload[2:6]),
	}

	ssid, _, err := extractString(payload[6:], MaxSSIDLen)
	if err != nil {
		return Status{}, fmt.Errorf("%w: %w", ErrInvalidSSID, err)
	}
	status.SSID = ssid
	return status, nil
}

// ParseError parses an ERROR frame.
func ParseError(data []byte) (ErrorReport, error) {
	payload, err := validatedPayload(data, MessageTypeError)
	if err != nil {
		return ErrorReport{}, err
	}
	if len(payload) < 2 {
		return ErrorReport{}, fmt.Errorf("%w: error payload is %d bytes", ErrInsufficientData, len(payload))
	}

	msg, _, err := extractString(payload[1:], MaxErrorMessageLen)
	if err != nil {
		return ErrorReport{}, err
	}
	return ErrorReport{Code: ErrorCode(payload[0]), Message: msg}, nil
}
