package log

import (
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Event represents a protocol log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ConnectionID uniquely identifies the peer connection (UUID).
	ConnectionID string `cbor:"2,keyasint,omitempty"`

	// Direction indicates frame flow.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"5,keyasint"`

	// RemoteAddr is the peer address, when the transport knows one.
	RemoteAddr string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame       *FrameEvent       `cbor:"7,keyasint,omitempty"` // Transport layer
	StateChange *StateChangeEvent `cbor:"8,keyasint,omitempty"` // Session state
	Error       *ErrorEventData   `cbor:"9,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of frame flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming frame.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing frame.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which protocol layer captured the event.
type Layer uint8

const (
	// LayerTransport is the framing layer (raw bytes).
	LayerTransport Layer = 0
	// LayerSession is the provisioning session layer.
	LayerSession Layer = 1
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerSession:
		return "SESSION"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryFrame indicates a protocol frame.
	CategoryFrame Category = 0
	// CategoryState indicates a connection-state change.
	CategoryState Category = 1
	// CategoryError indicates an error event.
	CategoryError Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures one protocol frame at the transport layer.
type FrameEvent struct {
	// Type is the frame's message type byte.
	Type wire.MessageType `cbor:"1,keyasint"`

	// Sequence is the frame's sequence byte.
	Sequence uint8 `cbor:"2,keyasint"`

	// Size is the full frame size in bytes (header included).
	Size int `cbor:"3,keyasint"`

	// Data is the raw frame bytes.
	Data []byte `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures a connection-state transition.
type StateChangeEvent struct {
	// OldState is the state before the transition.
	OldState wire.ConnectionState `cbor:"1,keyasint"`

	// NewState is the state after the transition.
	NewState wire.ConnectionState `cbor:"2,keyasint"`

	// Reason describes what triggered the transition.
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures an error at any layer.
type ErrorEventData struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Context describes what was happening when the error occurred.
	Context string `cbor:"2,keyasint,omitempty"`
}

// FrameEventFor builds a frame event from raw frame bytes. Frames too
// short for a header still produce an event with a zero type.
func FrameEventFor(data []byte) *FrameEvent {
	ev := &FrameEvent{Size: len(data), Data: data}
	if header, err := wire.ParseHeader(data); err == nil {
		ev.Type = header.Type
		ev.Sequence = header.Sequence
	}
	return ev
}
