package wire

import "errors"

// Parse and validation errors.
var (
	// ErrHeaderTooShort indicates fewer than HeaderSize bytes.
	ErrHeaderTooShort = errors.New("message too short for header")

	// ErrLengthMismatch indicates the physical frame length does not
	// match the declared payload length.
	ErrLengthMismatch = errors.New("message length mismatch")

	// ErrInsufficientData indicates a length-prefixed field declared
	// more bytes than remain in the payload.
	ErrInsufficientData = errors.New("not enough data for field")

	// ErrLengthExceeded indicates a length-prefixed field declared more
	// bytes than its type allows.
	ErrLengthExceeded = errors.New("field length exceeds maximum")

	// ErrWrongMessageType indicates the frame is valid but of an
	// unexpected type for the attempted parse.
	ErrWrongMessageType = errors.New("unexpected message type")

	// ErrUnexpectedPayload indicates a payload on a message type that
	// must not carry one.
	ErrUnexpectedPayload = errors.New("unexpected payload")

	// ErrInvalidSSID indicates the SSID field failed validation.
	ErrInvalidSSID = errors.New("invalid ssid")

	// ErrInvalidPassword indicates the password field failed validation.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEmptySSID indicates an empty SSID where one is required.
	ErrEmptySSID = errors.New("ssid cannot be empty")
)

// AckStatusForError maps a credential-write parse error to the ack
// status byte reported to the peer. Unrecognized errors default to
// AckInvalidSSID, matching the protocol's catch-all.
func AckStatusForError(err error) AckStatus {
	switch {
	case err == nil:
		return AckSuccess
	case errors.Is(err, ErrInvalidPassword):
		return AckInvalidPassword
	default:
		return AckInvalidSSID
	}
}
