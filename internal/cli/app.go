// Package cli implements the interactive login/register forms of the
// terminal client. The forms collect input, run the same format checks the
// backend applies (for immediate feedback), and hand off to authclient;
// the backend remains the source of truth and re-validates everything.
package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/oksasatya/go-auth-portal/pkg/authclient"
)

type App struct {
	client *authclient.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(client *authclient.Client) *App {
	return &App{
		client: client,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

// newAppWithIO is used by tests to script the prompts.
func newAppWithIO(client *authclient.Client, in io.Reader, out io.Writer) *App {
	return &App{client: client, reader: bufio.NewReader(in), out: out}
}
