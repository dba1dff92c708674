package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/skillnest/skillnest/internal/api"
)

const (
	userFile         = "user.json"
	accessTokenFile  = "access_token"
	refreshTokenFile = "refresh_token"
)

// Record is the durable mirror of the session: the cached user profile plus
// the token pair. The three keys are written and cleared together as a unit.
type Record struct {
	User         *api.User
	AccessToken  string
	RefreshToken string
}

// Empty reports whether nothing is persisted.
func (r Record) Empty() bool {
	return r.User == nil && r.AccessToken == "" && r.RefreshToken == ""
}

// Store persists session state on the local filesystem. It performs no
// validation of token contents; it is pure key-value persistence.
type Store struct {
	baseDir string
}

// NewStore creates a session store.
// If baseDir is empty, uses ~/.skillnest/session/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".skillnest", "session")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	log.Debug().Str("baseDir", baseDir).Msg("session store initialized")

	return &Store{baseDir: baseDir}, nil
}

// Save writes the record. All three keys are replaced; a nil user removes the
// cached profile.
func (s *Store) Save(rec Record) error {
	if rec.User != nil {
		data, err := json.Marshal(rec.User)
		if err != nil {
			return fmt.Errorf("failed to serialize user: %w", err)
		}
		if err := s.writeFile(userFile, data); err != nil {
			return err
		}
	} else if err := s.removeFile(userFile); err != nil {
		return err
	}

	if err := s.writeFile(accessTokenFile, []byte(rec.AccessToken)); err != nil {
		return err
	}
	if err := s.writeFile(refreshTokenFile, []byte(rec.RefreshToken)); err != nil {
		return err
	}

	log.Debug().Bool("hasUser", rec.User != nil).Msg("session persisted")

	return nil
}

// SaveUser replaces only the cached user profile, leaving tokens untouched.
func (s *Store) SaveUser(user *api.User) error {
	if user == nil {
		return s.removeFile(userFile)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	return s.writeFile(userFile, data)
}

// Load reads the persisted record. A missing store yields an empty record and
// no error. An unparseable cached user is dropped with a warning rather than
// failing the load; the server remains the authority on the profile.
func (s *Store) Load() (Record, error) {
	var rec Record

	access, err := s.readFile(accessTokenFile)
	if err != nil {
		return Record{}, err
	}
	rec.AccessToken = string(access)

	refresh, err := s.readFile(refreshTokenFile)
	if err != nil {
		return Record{}, err
	}
	rec.RefreshToken = string(refresh)

	userData, err := s.readFile(userFile)
	if err != nil {
		return Record{}, err
	}
	if len(userData) > 0 {
		var user api.User
		if err := json.Unmarshal(userData, &user); err != nil {
			log.Warn().Err(err).Msg("stored user profile is unreadable, ignoring")
		} else {
			rec.User = &user
		}
	}

	return rec, nil
}

// Clear removes all three keys as a unit. Idempotent.
func (s *Store) Clear() error {
	for _, name := range []string{userFile, accessTokenFile, refreshTokenFile} {
		if err := s.removeFile(name); err != nil {
			return err
		}
	}

	log.Debug().Msg("session store cleared")

	return nil
}

// writeFile writes atomically via a temp file and rename.
func (s *Store) writeFile(name string, data []byte) error {
	path := filepath.Join(s.baseDir, name)
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save %s: %w", name, err)
	}

	return nil
}

func (s *Store) readFile(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *Store) removeFile(name string) error {
	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
