package persistence

import "github.com/wifiset-protocol/wifiset-go/pkg/wire"

// Store persists a single WiFi credential. Implementations must not
// leave partial state observable when Save fails: afterwards Load
// returns either the previous credential or the new one, never a mix.
type Store interface {
	// Save persists the credential, replacing any previous one.
	Save(credential wire.Credential) error

	// Load returns the stored credential. The bool reports whether a
	// credential is present.
	Load() (wire.Credential, bool, error)

	// Clear removes the stored credential. Clearing an absent
	// credential succeeds.
	Clear() error
}
