package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
)

const (
	defaultDir      = ".backoffice"
	defaultFileName = "session.json"
)

var _ service.TokenStore = (*FileStore)(nil)

type fileRecord struct {
	Access   string `json:"access,omitempty"`
	Refresh  string `json:"refresh,omitempty"`
	LoggedIn bool   `json:"logged_in"`
}

// FileStore implements service.TokenStore on a JSON file readable only by
// the current user.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// DefaultFilePath is ~/.backoffice/session.json.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home directory")
	}

	return filepath.Join(home, defaultDir, defaultFileName), nil
}

// NewFileStore is the constructor for FileStore.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the session file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Tokens(context.Context) (entity.TokenPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.read()
	if err != nil {
		return entity.TokenPair{}, err
	}

	return entity.TokenPair{Access: record.Access, Refresh: record.Refresh}, nil
}

func (s *FileStore) SetTokens(_ context.Context, pair entity.TokenPair) error {
	if err := pair.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.read()
	if err != nil {
		return err
	}
	record.Access, record.Refresh = pair.Access, pair.Refresh
	if pair.Empty() {
		record.LoggedIn = false
	}

	return s.write(record)
}

func (s *FileStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove session file")
	}

	return nil
}

func (s *FileStore) LoggedIn(context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.read()
	if err != nil {
		return false, err
	}

	return record.LoggedIn && record.Access != "" && record.Refresh != "", nil
}

func (s *FileStore) SetLoggedIn(_ context.Context, loggedIn bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.read()
	if err != nil {
		return err
	}
	if loggedIn && (record.Access == "" || record.Refresh == "") {
		return domainerrors.ErrNotLoggedIn.WithDetails("no token pair stored")
	}
	record.LoggedIn = loggedIn

	return s.write(record)
}

func (s *FileStore) read() (fileRecord, error) {
	var record fileRecord

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return record, nil
		}

		return record, errors.Wrap(err, "read session file")
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return fileRecord{}, errors.Wrapf(err, "parse session file %s", s.path)
	}

	return record, nil
}

// write replaces the file atomically.
func (s *FileStore) write(record fileRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session directory")
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp session file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return errors.Wrap(err, "write session file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()

		return errors.Wrap(err, "chmod session file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close session file")
	}

	return errors.Wrap(os.Rename(tmp.Name(), s.path), "replace session file")
}
