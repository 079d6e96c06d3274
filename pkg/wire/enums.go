package wire

// MessageType identifies a WiFiSet protocol frame.
type MessageType uint8

const (
	// MessageTypeListStart marks the beginning of a network list.
	MessageTypeListStart MessageType = 0x01

	// MessageTypeNetworkEntry carries one scan result.
	MessageTypeNetworkEntry MessageType = 0x02

	// MessageTypeListEnd marks the end of a network list and carries
	// the total entry count.
	MessageTypeListEnd MessageType = 0x03

	// MessageTypeCredentialWrite carries SSID and password from the peer.
	MessageTypeCredentialWrite MessageType = 0x10

	// MessageTypeCredentialAck acknowledges a credential write.
	MessageTypeCredentialAck MessageType = 0x11

	// MessageTypeStatusRequest asks the device for its current status.
	MessageTypeStatusRequest MessageType = 0x20

	// MessageTypeStatusResponse reports connection state, signal,
	// address and SSID.
	MessageTypeStatusResponse MessageType = 0x21

	// MessageTypeError reports an error condition to the peer.
	MessageTypeError MessageType = 0xFF
)

// String returns the message type name.
func (t MessageType) String() string {
	switch t {
	case MessageTypeListStart:
		return "WIFI_LIST_START"
	case MessageTypeNetworkEntry:
		return "WIFI_NETWORK_ENTRY"
	case MessageTypeListEnd:
		return "WIFI_LIST_END"
	case MessageTypeCredentialWrite:
		return "CREDENTIAL_WRITE"
	case MessageTypeCredentialAck:
		return "CREDENTIAL_WRITE_ACK"
	case MessageTypeStatusRequest:
		return "STATUS_REQUEST"
	case MessageTypeStatusResponse:
		return "STATUS_RESPONSE"
	case MessageTypeError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SecurityType describes the security mode of a scanned network.
type SecurityType uint8

const (
	SecurityOpen           SecurityType = 0x00
	SecurityWEP            SecurityType = 0x01
	SecurityWPAPSK         SecurityType = 0x02
	SecurityWPA2Enterprise SecurityType = 0x03
	SecurityWPA3           SecurityType = 0x04
)

// String returns the security type name.
func (s SecurityType) String() string {
	switch s {
	case SecurityOpen:
		return "OPEN"
	case SecurityWEP:
		return "WEP"
	case SecurityWPAPSK:
		return "WPA_PSK"
	case SecurityWPA2Enterprise:
		return "WPA2_ENTERPRISE"
	case SecurityWPA3:
		return "WPA3"
	default:
		return "UNKNOWN"
	}
}

// ConnectionState is the device's network connection lifecycle state.
// Exactly one state is current at any time; it is owned by the
// provisioning session and reported in STATUS_RESPONSE frames.
type ConnectionState uint8

const (
	// StateNotConfigured - no credentials stored.
	StateNotConfigured ConnectionState = 0x00

	// StateConfiguredNotConnected - credentials stored but link is down.
	StateConfiguredNotConnected ConnectionState = 0x01

	// StateConnecting - a connect attempt is in progress.
	StateConnecting ConnectionState = 0x02

	// StateConnected - associated with the configured network.
	StateConnected ConnectionState = 0x03

	// StateConnectionFailed - the last connect attempt failed.
	StateConnectionFailed ConnectionState = 0x04
)

// String returns the connection state name.
func (s ConnectionState) String() string {
	switch s {
	case StateNotConfigured:
		return "NOT_CONFIGURED"
	case StateConfiguredNotConnected:
		return "CONFIGURED_NOT_CONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateConnectionFailed:
		return "CONNECTION_FAILED"
	default:
		return "UNKNOWN"
	}
}

// ErrorCode identifies the error class in an ERROR frame.
type ErrorCode uint8

const (
	ErrorCodeInvalidMessageFormat ErrorCode = 0x01
	ErrorCodeScanFailed           ErrorCode = 0x02
	ErrorCodeCredentialWrite      ErrorCode = 0x03
	ErrorCodeStorage              ErrorCode = 0x04
	ErrorCodeConnectionTimeout    ErrorCode = 0x05
	ErrorCodeUnknownMessageType   ErrorCode = 0x06
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeInvalidMessageFormat:
		return "INVALID_MESSAGE_FORMAT"
	case ErrorCodeScanFailed:
		return "SCAN_FAILED"
	case ErrorCodeCredentialWrite:
		return "CREDENTIAL_WRITE_FAILED"
	case ErrorCodeStorage:
		return "STORAGE_ERROR"
	case ErrorCodeConnectionTimeout:
		return "CONNECTION_TIMEOUT"
	case ErrorCodeUnknownMessageType:
		return "UNKNOWN_MESSAGE_TYPE"
	default:
		return "UNKNOWN"
	}
}

// AckStatus is the status byte of a CREDENTIAL_WRITE_ACK frame.
type AckStatus uint8

const (
	AckSuccess         AckStatus = 0x00
	AckInvalidSSID     AckStatus = 0x01
	AckInvalidPassword AckStatus = 0x02
	AckStorageFailure  AckStatus = 0x03
)

// String returns the ack status name.
func (a AckStatus) String() string {
	switch a {
	case AckSuccess:
		return "SUCCESS"
	case AckInvalidSSID:
		return "INVALID_SSID"
	case AckInvalidPassword:
		return "INVALID_PASSWORD"
	case AckStorageFailure:
		return "STORAGE_FAILURE"
	default:
		return "UNKNOWN"
	}
}
