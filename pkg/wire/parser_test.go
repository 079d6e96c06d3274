package wire

import (
	"errors"
	"net/netip"
	"strings"
	"testing"
)

func TestParseHeader(t *testing.T) {
	header, err := ParseHeader([]byte{0x10, 0x05, 0x34, 0x12})
	if err != nil {
		t.Fatalf("ParseHeader failed: %v", err)
	}
	if header.Type != MessageTypeCredentialWrite {
		t.Errorf("type = %s, want CREDENTIAL_WRITE", header.Type)
	}
	if header.Sequence != 5 {
		t.Errorf("sequence = %d, want 5", header.Sequence)
	}
	if header.PayloadLength != 0x1234 {
		t.Errorf("payload length = %#x, want 0x1234", header.PayloadLength)
	}
}

func TestParseHeaderTooShort(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		if _, err := ParseHeader(make([]byte, n)); !errors.Is(err, ErrHeaderTooShort) {
			t.Errorf("%d bytes: expected ErrHeaderTooShort, got %v", n, err)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "three bytes",
			data:    []byte{0x01, 0x00, 0x00},
			wantErr: ErrHeaderTooShort,
		},
		{
			name: "declared ten physically nine",
			data: append([]byte{0x21, 0x00, 10, 0x00}, make([]byte, 9)...),

			wantErr: ErrLengthMismatch,
		},
		{
			name:    "trailing bytes",
			data:    []byte{0x03, 0x00, 1, 0x00, 5, 99},
			wantErr: ErrLengthMismatch,
		},
		{
			name: "exact",
			data: []byte{0x03, 0x00, 1, 0x00, 5},
		},
		{
			name: "empty payload",
			data: []byte{0x01, 0x00, 0x00, 0x00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.data)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestCredentialWriteRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		password string
	}{
		{"typical", "home", "pw123"},
		{"open network", "cafe", ""},
		{"max ssid", strings.Repeat("s", MaxSSIDLen), "secret"},
		{"max password", "net", strings.Repeat("p", MaxPasswordLen)},
		{"single byte ssid", "a", "b"},
		{"binary-ish password", "net", "p\x00w\xff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMessageBuilder()
			msg, err := b.BuildCredentialWrite(Credential{SSID: tt.ssid, Password: tt.password})
			if err != nil {
				t.Fatalf("BuildCredentialWrite failed: %v", err)
			}

			cred, err := ParseCredentialWrite(msg)
			if err != nil {
				t.Fatalf("ParseCredentialWrite failed: %v", err)
			}
			if cred.SSID != tt.ssid {
				t.Errorf("ssid = %q, want %q", cred.SSID, tt.ssid)
			}
			if cred.Password != tt.password {
				t.Errorf("password = %q, want %q", cred.Password, tt.password)
			}
		})
	}
}

// credentialFrame hand-builds a CREDENTIAL_WRITE frame with an arbitrary
// payload, bypassing the builder's validation.
func credentialFrame(payload []byte) []byte {
	msg := []byte{byte(MessageTypeCredentialWrite), 0, byte(len(payload)), byte(len(payload) >> 8)}
	return append(msg, payload...)
}

func TestParseCredentialWriteErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{
			name:    "wrong message type",
			data:    []byte{byte(MessageTypeStatusRequest), 0, 0, 0},
			wantErr: ErrWrongMessageType,
		},
		{
			name:    "empty ssid",
			data:    credentialFrame([]byte{0, 0}),
			wantErr: ErrEmptySSID,
		},
		{
			name: "ssid length over maximum",
			data: credentialFrame(append([]byte{33}, make([]byte, 35)...)),

			wantErr: ErrLengthExceeded,
		},
		{
			name:    "ssid data missing",
			data:    credentialFrame([]byte{4, 'h', 'o'}),
			wantErr: ErrInsufficientData,
		},
		{
			name:    "missing password length byte",
			data:    credentialFrame([]byte{4, 'h', 'o', 'm', 'e'}),
			wantErr: ErrInvalidPassword,
		},
		{
			name:    "password exceeds declared payload",
			data:    credentialFrame([]byte{4, 'h', 'o', 'm', 'e', 5, 'p', 'w'}),
			wantErr: ErrInvalidPassword,
		},
		{
			name: "password length over maximum",
			data: credentialFrame(append([]byte{1, 'x', 64}, make([]byte, 64)...)),

			wantErr: ErrLengthExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cred, err := ParseCredentialWrite(tt.data)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			// No partial result on failure.
			if cred != (Credential{}) {
				t.Errorf("partial credential returned: %+v", cred)
			}
		})
	}
}

func TestParseStatusRequest(t *testing.T) {
	b := NewMessageBuilder()
	if err := ParseStatusRequest(b.BuildStatusRequest()); err != nil {
		t.Errorf("ParseStatusRequest failed: %v", err)
	}

	withPayload := []byte{byte(MessageTypeStatusRequest), 0, 1, 0, 0xAA}
	if err := ParseStatusRequest(withPayload); !errors.Is(err, ErrUnexpectedPayload) {
		t.Errorf("expected ErrUnexpectedPayload, got %v", err)
	}
}

func TestNetworkEntryRoundTrip(t *testing.T) {
	b := NewMessageBuilder()
	want := NetworkEntry{SSID: "office", Signal: -70, Security: SecurityWPA3, Channel: 36}

	got, err := ParseNetworkEntry(b.BuildNetworkEntry(want))
	if err != nil {
		t.Fatalf("ParseNetworkEntry failed: %v", err)
	}
	if got != want {
		t.Errorf("entry = %+v, want %+v", got, want)
	}
}

func TestParseNetworkEntryDeclaredSSIDTooLong(t *testing.T) {
	payload := append([]byte{40}, make([]byte, 43)...)
	msg := []byte{byte(MessageTypeNetworkEntry), 0, byte(len(payload)), 0}
	msg = append(msg, payload...)

	if _, err := ParseNetworkEntry(msg); !errors.Is(err, ErrLengthExceeded) {
		t.Errorf("expected ErrLengthExceeded, got %v", err)
	}
}

func TestStatusResponseRoundTrip(t *testing.T) {
	b := NewMessageBuilder()
	want := Status{
		State:   StateConnecting,
		Signal:  -61,
		Address: netip.AddrFrom4([4]byte{10, 0, 0, 7}),
		SSID:    "home",
	}

	got, err := ParseStatusResponse(b.BuildStatusResponse(want))
	if err != nil {
		t.Fatalf("ParseStatusResponse failed: %v", err)
	}
	if got != want {
		t.Errorf("status = %+v, want %+v", got, want)
	}
}

func TestListEndRoundTrip(t *testing.T) {
	b := NewMessageBuilder()
	count, err := ParseListEnd(b.BuildListEnd(12))
	if err != nil {
		t.Fatalf("ParseListEnd failed: %v", err)
	}
	if count != 12 {
		t.Errorf("count = %d, want 12", count)
	}
}

func TestCredentialAckRoundTrip(t *testing.T) {
	b := NewMessageBuilder()
	status, err := ParseCredentialAck(b.BuildCredentialAck(AckStorageFailure))
	if err != nil {
		t.Fatalf("ParseCredentialAck failed: %v", err)
	}
	if status != AckStorageFailure {
		t.Errorf("status = %s, want STORAGE_FAILURE", status)
	}
}

func TestErrorRoundTrip(t *testing.T) {
	b := NewMessageBuilder()
	report, err := ParseError(b.BuildError(ErrorCodeConnectionTimeout, "connection timed out"))
	if err != nil {
		t.Fatalf("ParseError failed: %v", err)
	}
	if report.Code != ErrorCodeConnectionTimeout {
		t.Errorf("code = %s, want CONNECTION_TIMEOUT", report.Code)
	}
	if report.Message != "connection timed out" {
		t.Errorf("message = %q", report.Message)
	}
}

func TestAckStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want AckStatus
	}{
		{"nil", nil, AckSuccess},
		{"empty ssid", errors.Join(ErrInvalidSSID, ErrEmptySSID), AckInvalidSSID},
		{"password bounds", errors.Join(ErrInvalidPassword, ErrLengthExceeded), AckInvalidPassword},
		{"malformed frame defaults to invalid ssid", ErrLengthMismatch, AckInvalidSSID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AckStatusForError(tt.err); got != tt.want {
				t.Errorf("AckStatusForError = %s, want %s", got, tt.want)
			}
		})
	}
}
