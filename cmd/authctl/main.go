package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	authcli "github.com/oksasatya/go-auth-portal/internal/cli"
	"github.com/oksasatya/go-auth-portal/pkg/authclient"
)

var flagServer = &cli.StringFlag{
	Name:    "server",
	Value:   "http://localhost:3000",
	Usage:   "Base URL of the auth backend",
	EnvVars: []string{"AUTH_SERVER_URL"},
}

var flagStateDir = &cli.StringFlag{
	Name:    "state-dir",
	Value:   defaultStateDir(),
	Usage:   "Directory holding the persisted token and user snapshot",
	EnvVars: []string{"AUTHCTL_STATE_DIR"},
}

var flagType = &cli.StringFlag{
	Name:  "type",
	Value: "standard",
	Usage: "Account type: standard (email) or agent (5-digit code)",
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".authctl"
	}
	return filepath.Join(home, ".authctl")
}

func buildApp(c *cli.Context) *authcli.App {
	store := authclient.NewFileStore(c.String("state-dir"))
	client := authclient.New(c.String("server"), store, nil)
	return authcli.NewApp(client)
}

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "authctl",
		Usage: "Terminal client for the auth portal",
		Flags: []cli.Flag{
			flagServer,
			flagStateDir,
		},
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Flags: []cli.Flag{flagType},
				Action: func(c *cli.Context) error {
					return buildApp(c).Register(c.String("type"))
				},
			},
			{
				Name:  "login",
				Usage: "Sign in with an existing account",
				Flags: []cli.Flag{flagType},
				Action: func(c *cli.Context) error {
					return buildApp(c).Login(c.String("type"))
				},
			},
			{
				Name:  "me",
				Usage: "Show the signed-in user",
				Action: func(c *cli.Context) error {
					return buildApp(c).Me()
				},
			},
			{
				Name:  "logout",
				Usage: "Clear the local session",
				Action: func(c *cli.Context) error {
					return buildApp(c).Logout()
				},
			},
			{
				Name:  "health",
				Usage: "Check that the backend is up",
				Action: func(c *cli.Context) error {
					return buildApp(c).Health()
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
