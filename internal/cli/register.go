package cli

import (
	"errors"
	"fmt"

	"github.com/oksasatya/go-auth-portal/pkg/authclient"
	"github.com/oksasatya/go-auth-portal/pkg/validation"
)

// Register runs the interactive registration form for the given account
// type ("standard" or "agent"). All local checks are advisory; the backend
// re-validates independently.
func (a *App) Register(userType string) error {
	if userType != "standard" && userType != "agent" {
		return fmt.Errorf("unsupported account type %q", userType)
	}

	name, err := a.promptText("Name")
	if err != nil {
		return err
	}

	var email, agentCode string
	if userType == "agent" {
		agentCode, err = a.promptText("Agent code (5 digits)")
		if err != nil {
			return err
		}
		if !validation.IsValidAgentCode(agentCode) {
			return errors.New("agent code must be exactly 5 digits")
		}
	} else {
		email, err = a.promptText("Email")
		if err != nil {
			return err
		}
		if !validation.IsValidEmail(email) {
			return errors.New("a valid email is required")
		}
	}

	password, err := a.promptPassword("Password")
	if err != nil {
		return err
	}
	if name == "" || password == "" {
		return errors.New("name and password are required")
	}
	if len(password) < validation.MinPasswordLen {
		return errors.New("password must be at least 6 characters")
	}
	confirm, err := a.promptPassword("Confirm password")
	if err != nil {
		return err
	}
	if confirm != password {
		return errors.New("passwords do not match")
	}

	res, err := a.client.Register(authclient.RegisterPayload{
		Name:       name,
		Password:   password,
		Type:       userType,
		Email:      email,
		Identifier: agentCode,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "account for %s created, you are signed in\n", res.User.Name)
	return nil
}
