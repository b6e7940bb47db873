package repository

import "github.com/oksasatya/go-auth-portal/internal/domain/entity"

// UserStore defines persistence for the user collection. Implementations
// read and write the collection wholesale; there is no partial access.
type UserStore interface {
	// List returns every user. A store with no backing data yet returns an
	// empty slice, not an error.
	List() ([]*entity.User, error)

	// SaveAll replaces the whole collection.
	SaveAll(users []*entity.User) error

	// Update runs fn inside the store's critical section so that a
	// read-check-write sequence (e.g. the registration uniqueness check)
	// cannot interleave with another writer in this process. fn receives
	// the current collection and returns the collection to persist; if fn
	// returns an error nothing is written.
	Update(fn func(users []*entity.User) ([]*entity.User, error)) error
}
