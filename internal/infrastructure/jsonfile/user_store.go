package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-portal/internal/domain/entity"
)

// UserStore persists the user collection as a single pretty-printed JSON
// array on disk. Every read loads the whole file, every write replaces it.
//
// A per-instance mutex guards the read-modify-write cycle, so concurrent
// registrations inside one process cannot both pass the uniqueness check.
// Multi-process deployments need a real datastore; that is out of scope.
type UserStore struct {
	path   string
	logger *logrus.Logger
	mu     sync.Mutex
}

func NewUserStore(path string, logger *logrus.Logger) *UserStore {
	return &UserStore{path: path, logger: logger}
}

// List returns the whole collection. A missing file is an empty collection.
func (s *UserStore) List() ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// SaveAll replaces the whole collection on disk.
func (s *UserStore) SaveAll(users []*entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(users)
}

// Update runs fn under the store mutex and persists its result.
func (s *UserStore) Update(fn func(users []*entity.User) ([]*entity.User, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	next, err := fn(users)
	if err != nil {
		return err
	}
	return s.persist(next)
}

func (s *UserStore) load() ([]*entity.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*entity.User{}, nil
		}
		s.logger.WithError(err).WithField("path", s.path).Error("failed to read users file")
		return nil, fmt.Errorf("read users file: %w", err)
	}
	var users []*entity.User
	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("failed to parse users file")
		return nil, fmt.Errorf("parse users file: %w", err)
	}
	if users == nil {
		users = []*entity.User{}
	}
	return users, nil
}

func (s *UserStore) persist(users []*entity.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.WithError(err).WithField("path", s.path).Error("failed to create data directory")
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.WithError(err).WithField("path", s.path).Error("failed to write users file")
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
