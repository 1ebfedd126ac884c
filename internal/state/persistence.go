package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultStateDir is the directory under $HOME for state files
	DefaultStateDir = ".local/state/deskwm"
	// DefaultSessionFile is the session file name
	DefaultSessionFile = "session.json"
)

// GetSessionPath returns the full path to the session file
func GetSessionPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, DefaultStateDir, DefaultSessionFile)
}

// LoadSession loads the session from the default path
func LoadSession() (*Session, error) {
	return LoadSessionFrom(GetSessionPath())
}

// LoadSessionFrom loads a session from a specific path, returning an
// empty session if the file doesn't exist
func LoadSessionFrom(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewSession(), nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if s.Version > SessionVersion {
		return nil, fmt.Errorf("session file version %d is newer than supported version %d", s.Version, SessionVersion)
	}
	s.Version = SessionVersion

	if s.Windows == nil {
		s.Windows = []SavedWindow{}
	}

	return &s, nil
}

// Save persists the session to the default path
func (s *Session) Save() error {
	return s.SaveTo(GetSessionPath())
}

// SaveTo persists the session to a specific path
func (s *Session) SaveTo(path string) error {
	s.LastUpdated = time.Now()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Write atomically using temp file + rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename session file: %w", err)
	}

	return nil
}

// ResetAt clears the session stored at path
func ResetAt(path string) error {
	return NewSession().SaveTo(path)
}
