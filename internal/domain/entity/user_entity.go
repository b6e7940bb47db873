package entity

import (
	"time"
)

// UserType distinguishes regular email-based accounts from agent accounts
// identified by a 5-digit code.
type UserType string

const (
	TypeStandard UserType = "standard"
	TypeAgent    UserType = "agent"
)

// Valid reports whether t is one of the two supported account types.
func (t UserType) Valid() bool {
	return t == TypeStandard || t == TypeAgent
}

// User is the aggregate root for the auth domain.
// Passwords are stored as bcrypt hashes in Password.
//
// Identifier is canonical: a lowercased email for standard accounts, a
// 5-digit code for agents. It is unique across the whole collection
// regardless of type.
type User struct {
	ID         string    `json:"id"`
	Type       UserType  `json:"type"`
	Identifier string    `json:"identifier"`
	Name       string    `json:"name"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SafeUser is the public view of a user: everything except the password
// hash. Email is only populated for standard accounts, where it equals the
// identifier.
type SafeUser struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       UserType `json:"type"`
	Identifier string   `json:"identifier"`
	Email      string   `json:"email,omitempty"`
	CreatedAt  string   `json:"createdAt"`
}

// NewSafeUser builds the public view of u. Records with a missing type are
// treated as standard.
func NewSafeUser(u *User) *SafeUser {
	t := u.Type
	if t == "" {
		t = TypeStandard
	}
	s := &SafeUser{
		ID:         u.ID,
		Name:       u.Name,
		Type:       t,
		Identifier: u.Identifier,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t == TypeStandard {
		s.Email = u.Identifier
	}
	return s
}
