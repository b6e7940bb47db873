package cli

import (
	"errors"
	"fmt"

	"github.com/oksasatya/go-auth-portal/pkg/authclient"
	"github.com/oksasatya/go-auth-portal/pkg/validation"
)

// Login runs the interactive login form for the given account type.
func (a *App) Login(userType string) error {
	if userType != "standard" && userType != "agent" {
		return fmt.Errorf("unsupported account type %q", userType)
	}

	var email, agentCode string
	var err error
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
	if password == "" {
		return errors.New("password is required")
	}

	res, err := a.client.Login(authclient.LoginPayload{
		Password:   password,
		Type:       userType,
		Email:      email,
		Identifier: agentCode,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "welcome back, %s\n", res.User.Name)
	return nil
}
