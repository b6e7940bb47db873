package authclient

import (
	"os"
	"path/filepath"
)

// Storage keys, kept identical to the web client's localStorage pair so a
// snapshot is always exactly two entries: the raw token and the serialized
// safe user.
const (
	TokenKey = "auth_token"
	UserKey  = "auth_current_user"
)

// CredentialStore persists the token and the cached user snapshot between
// runs.
type CredentialStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore keeps each key as its own file inside a directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Get(key string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key), []byte(value), 0o600)
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
