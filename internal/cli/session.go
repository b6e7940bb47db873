package cli

import (
	"fmt"
)

// Me prints the authenticated user's safe view.
func (a *App) Me() error {
	u, err := a.client.Me()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "id:         %s\n", u.ID)
	fmt.Fprintf(a.out, "name:       %s\n", u.Name)
	fmt.Fprintf(a.out, "type:       %s\n", u.Type)
	fmt.Fprintf(a.out, "identifier: %s\n", u.Identifier)
	if u.Email != "" {
		fmt.Fprintf(a.out, "email:      %s\n", u.Email)
	}
	fmt.Fprintf(a.out, "created:    %s\n", u.CreatedAt)
	return nil
}

// Logout clears the locally persisted session.
func (a *App) Logout() error {
	a.client.Logout()
	fmt.Fprintln(a.out, "signed out")
	return nil
}

// Health pings the backend.
func (a *App) Health() error {
	msg, err := a.client.Health()
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}
