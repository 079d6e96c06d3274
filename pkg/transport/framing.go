package transport

import (
	"errors"
	"fmt"
	"io"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// Framing errors.
var (
	// ErrFrameTruncated indicates the stream ended mid-frame.
	ErrFrameTruncated = errors.New("frame truncated")
)

// FrameReader reads WiFiSet frames from a byte stream. Frames carry
// their own length in the 4-byte header, so no extra prefix is needed.
type FrameReader struct {
	r         io.Reader
	headerBuf [wire.HeaderSize]byte
}

// NewFrameReader creates a new frame reader.
func NewFrameReader(r io.Reader) *FrameReader {
	return &FrameReader{r: r}
}

// ReadFrame reads one complete frame, header included.
func (fr *FrameReader) ReadFrame() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.headerBuf[:]); err != nil {
		if err == io.EOF {
			return nil, err
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read frame header: %w", err)
	}

	header, err := wire.ParseHeader(fr.headerBuf[:])
	if err != nil {
		return nil, err
	}

	frame := make([]byte, wire.HeaderSize+int(header.PayloadLength))
	copy(frame, fr.headerBuf[:])

	if _, err := io.ReadFull(fr.r, frame[wire.HeaderSize:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || err == io.EOF {
			return nil, ErrFrameTruncated
		}
		return nil, fmt.Errorf("failed to read frame payload: %w", err)
	}

	return frame, nil
}
