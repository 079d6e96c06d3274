package persistence

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/wifiset-protocol/wifiset-go/pkg/wire"
)

// StoreVersion is the current version of the credential file format.
const StoreVersion = 1

// credentialFile is the on-disk layout.
type credentialFile struct {
	// Version is the file format version.
	Version int `json:"version"`

	// SavedAt is when the credential was last saved.
	SavedAt time.Time `json:"saved_at"`

	SSID     string `json:"ssid"`
	Password string `json:"password"`
}

// FileStore persists the credential to a JSON file. The file is written
// with 0600 permissions since it contains the network password, via a
// temp file and rename so a crash mid-write leaves the previous
// credential intact.
type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-backed credential store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save persists the credential, replacing any previous one.
func (s *FileStore) Save(credential wire.Credential) error {
	if err := credential.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(credentialFile{
		Version:  StoreVersion,
		SavedAt:  time.Now(),
		SSID:     credential.SSID,
		Password: credential.Password,
	}, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".credential-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Load reads the stored credential. A missing file means no credential.
func (s *FileStore) Load() (wire.Credential, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return wire.Credential{}, false, nil
	}
	if err != nil {
		return wire.Credential{}, false, err
	}

	var file credentialFile
	if err := json.Unmarshal(data, &file); err != nil {
		return wire.Credential{}, false, fmt.Errorf("corrupt credential file: %w", err)
	}

	return wire.Credential{SSID: file.SSID, Password: file.Password}, true, nil
}

// Clear removes the credential file.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
