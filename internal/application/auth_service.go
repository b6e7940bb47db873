package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-auth-portal/internal/domain/entity"
	"github.com/oksasatya/go-auth-portal/internal/domain/repository"
	"github.com/oksasatya/go-auth-portal/pkg/helpers"
	"github.com/oksasatya/go-auth-portal/pkg/validation"
)

var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password"; callers must never learn which one happened.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user with these details already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError is a rejected input carrying a message safe to return to
// the caller.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }

// Service orchestrates validation, store lookups, hashing and token
// issuance for the register/login/me flow.
type Service struct {
	Store  repository.UserStore
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewService(store repository.UserStore, jwt *helpers.JWTManager, logger *logrus.Logger) *Service {
	return &Service{Store: store, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	Name       string
	Password   string
	Type       entity.UserType
	Email      string
	Identifier string
}

type LoginInput struct {
	Password   string
	Type       entity.UserType
	Email      string
	Identifier string
}

// normalizeIdentifier derives the canonical identifier for the selected
// account type: lowercased email for standard, the 5-digit code for agents.
func normalizeIdentifier(t entity.UserType, email, identifier string) (string, error) {
	if t == entity.TypeAgent {
		if !validation.IsValidAgentCode(identifier) {
			return "", invalid("agent code must be exactly 5 digits")
		}
		return identifier, nil
	}
	if email == "" || !validation.IsValidEmail(email) {
		return "", invalid("a valid email is required")
	}
	return strings.ToLower(email), nil
}

// Register creates a user and signs them in. The uniqueness check and the
// append run inside a single store update, so two concurrent registrations
// for the same identifier cannot both pass the check.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.SafeUser, string, error) {
	if in.Name == "" || in.Password == "" {
		return nil, "", invalid("name and password are required")
	}
	t := in.Type
	if t == "" {
		t = entity.TypeStandard
	}
	if !t.Valid() {
		return nil, "", invalid("unsupported user type")
	}
	if len(in.Password) < validation.MinPasswordLen {
		return nil, "", invalid("password must be at least 6 characters")
	}
	identifier, err := normalizeIdentifier(t, in.Email, in.Identifier)
	if err != nil {
		return nil, "", err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	created := &entity.User{
		ID:         uuid.NewString(),
		Type:       t,
		Identifier: identifier,
		Name:       in.Name,
		Password:   hash,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.Store.Update(func(users []*entity.User) ([]*entity.User, error) {
		// Uniqueness holds across the whole collection regardless of type.
		for _, u := range users {
			if u.Identifier == identifier {
				return nil, ErrUserExists
			}
		}
		return append(users, created), nil
	})
	if err != nil {
		return nil, "", err
	}

	token, _, err := s.JWT.Generate(created.ID, created.Identifier, string(created.Type))
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	s.Logger.WithFields(logrus.Fields{"user_id": created.ID, "type": created.Type}).Info("user registered")
	return entity.NewSafeUser(created), token, nil
}

// Login validates credentials and issues a fresh token. Lookup misses and
// hash mismatches produce the same error.
func (s *Service) Login(ctx context.Context, in LoginInput) (*entity.SafeUser, string, error) {
	if in.Password == "" {
		return nil, "", invalid("password is required")
	}
	t := in.Type
	if t == "" {
		t = entity.TypeStandard
	}
	if !t.Valid() {
		return nil, "", invalid("unsupported user type")
	}
	identifier, err := normalizeIdentifier(t, in.Email, in.Identifier)
	if err != nil {
		return nil, "", err
	}

	users, err := s.Store.List()
	if err != nil {
		return nil, "", err
	}

	var user *entity.User
	for _, u := range users {
		ut := u.Type
		if ut == "" {
			ut = entity.TypeStandard
		}
		if ut == t && u.Identifier == identifier {
			user = u
			break
		}
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(user.Password, in.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.Generate(user.ID, user.Identifier, string(user.Type))
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}

	return entity.NewSafeUser(user), token, nil
}

// Me returns the safe view of the user a verified token points at.
func (s *Service) Me(ctx context.Context, userID string) (*entity.SafeUser, error) {
	users, err := s.Store.List()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == userID {
			return entity.NewSafeUser(u), nil
		}
	}
	return nil, ErrUserNotFound
}
