package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = func() ([]byte, error) {
	return term.ReadPassword(int(os.Stdin.Fd()))
}

// promptText prints a prompt and reads a single trimmed line of input.
// If EOF occurs after some input was read, the partial line is returned.
func (a *App) promptText(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password from the terminal without echo. A
// newline is printed after the read to keep the UI tidy.
func (a *App) promptPassword(prompt string) (string, error) {
	if _, err := fmt.Fprint(a.out, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
