package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-auth-portal/pkg/authclient"
)

// stubPasswords replaces the terminal password reader with a scripted
// sequence for the duration of the test.
func stubPasswords(t *testing.T, passwords ...string) {
	t.Helper()
	orig := readPassword
	i := 0
	readPassword = func() ([]byte, error) {
		pw := passwords[i]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { readPassword = orig })
}

func newFormApp(t *testing.T, handler http.Handler, input string) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := authclient.New(srv.URL, authclient.NewFileStore(t.TempDir()), nil)
	out := &bytes.Buffer{}
	return newAppWithIO(client, strings.NewReader(input), out), out
}

func okBackend(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	respond := func(w http.ResponseWriter, status int) {
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "ok",
			"user":    map[string]any{"id": "uid-1", "name": "Alice", "type": "standard", "identifier": "a@b.c"},
			"token":   "tok-1",
		})
	}
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) { respond(w, http.StatusCreated) })
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) { respond(w, http.StatusOK) })
	return mux
}

func TestRegisterFormHappyPath(t *testing.T) {
	stubPasswords(t, "secret123", "secret123")
	app, out := newFormApp(t, okBackend(t), "Alice\na@b.c\n")

	require.NoError(t, app.Register("standard"))
	assert.Contains(t, out.String(), "account for Alice created")
}

func TestRegisterFormPasswordMismatch(t *testing.T) {
	stubPasswords(t, "secret123", "secret124")
	app, _ := newFormApp(t, okBackend(t), "Alice\na@b.c\n")

	err := app.Register("standard")
	require.EqualError(t, err, "passwords do not match")
}

func TestRegisterFormRejectsBadAgentCode(t *testing.T) {
	app, _ := newFormApp(t, okBackend(t), "Agent Smith\n12a45\n")

	err := app.Register("agent")
	require.EqualError(t, err, "agent code must be exactly 5 digits")
}

func TestRegisterFormRejectsShortPassword(t *testing.T) {
	stubPasswords(t, "12345")
	app, _ := newFormApp(t, okBackend(t), "Alice\na@b.c\n")

	err := app.Register("standard")
	require.EqualError(t, err, "password must be at least 6 characters")
}

func TestLoginFormHappyPath(t *testing.T) {
	stubPasswords(t, "secret123")
	app, out := newFormApp(t, okBackend(t), "a@b.c\n")

	require.NoError(t, app.Login("standard"))
	assert.Contains(t, out.String(), "welcome back, Alice")
}

func TestLoginFormRejectsBadEmail(t *testing.T) {
	app, _ := newFormApp(t, okBackend(t), "a@b\n")

	err := app.Login("standard")
	require.EqualError(t, err, "a valid email is required")
}

func TestLoginFormSurfacesServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
	})
	stubPasswords(t, "wrong-pass")
	app, _ := newFormApp(t, mux, "a@b.c\n")

	err := app.Login("standard")
	require.EqualError(t, err, "invalid credentials")
}
