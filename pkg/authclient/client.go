// Package authclient is the Go counterpart of the web client's auth
// service: it talks to the backend's register/login/me endpoints, persists
// the token and a safe user snapshot through a CredentialStore, and mirrors
// the current user in an observable value for reactive consumers.
package authclient

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// User is the denormalized safe view cached on the client.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
	Email      string `json:"email,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

// AuthResponse is the body of a successful register/login call.
type AuthResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

type RegisterPayload struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	Type       string `json:"type,omitempty"`
	Email      string `json:"email,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

type LoginPayload struct {
	Password   string `json:"password"`
	Type       string `json:"type,omitempty"`
	Email      string `json:"email,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

type healthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type apiError struct {
	Error string `json:"error"`
}

// Client holds the reactive current-user value and the persisted session.
// There is at most one writer (the caller's goroutine); subscribers are
// notified synchronously on every change, in no particular order.
type Client struct {
	baseURL string
	http    *http.Client
	creds   CredentialStore

	mu      sync.Mutex
	current *User
	subs    map[int]func(*User)
	nextSub int
}

// New builds a client, restores any persisted session and, when a token is
// present, confirms it against the backend. A failed confirmation clears
// all local state (logout semantics).
func New(baseURL string, creds CredentialStore, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		creds:   creds,
		subs:    map[int]func(*User){},
	}
	c.current = c.userFromStorage()
	if tok, ok := creds.Get(TokenKey); ok && tok != "" {
		if _, err := c.Me(); err != nil {
			c.Logout()
		}
	}
	return c
}

// Subscribe registers fn for current-user changes and returns an
// unsubscribe function. fn is not called with the present value; it only
// observes changes from now on.
func (c *Client) Subscribe(fn func(*User)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// CurrentUser returns the cached current user, or nil when signed out.
func (c *Client) CurrentUser() *User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Token returns the persisted session token, empty when signed out.
func (c *Client) Token() string {
	tok, _ := c.creds.Get(TokenKey)
	return tok
}

// IsAuthenticated reports whether both a token and a user snapshot exist.
func (c *Client) IsAuthenticated() bool {
	return c.Token() != "" && c.CurrentUser() != nil
}

// Register creates an account; on success the session is persisted and the
// new user published, i.e. the caller is signed in.
func (c *Client) Register(payload RegisterPayload) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.post("/api/auth/register", payload, &res); err != nil {
		return nil, err
	}
	c.storeSession(res.Token, res.User)
	return &res, nil
}

// Login authenticates; on success the session is persisted and published.
func (c *Client) Login(payload LoginPayload) (*AuthResponse, error) {
	var res AuthResponse
	if err := c.post("/api/auth/login", payload, &res); err != nil {
		return nil, err
	}
	c.storeSession(res.Token, res.User)
	return &res, nil
}

// Me fetches the authenticated user from the backend and refreshes the
// cached snapshot.
func (c *Client) Me() (*User, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return nil, err
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	var res struct {
		User *User `json:"user"`
	}
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	c.setCurrentUser(res.User)
	return c.CurrentUser(), nil
}

// Logout clears the persisted token and user snapshot and publishes nil.
func (c *Client) Logout() {
	_ = c.creds.Delete(TokenKey)
	_ = c.creds.Delete(UserKey)
	c.publish(nil)
}

// Health checks the backend's health endpoint and returns its message.
func (c *Client) Health() (string, error) {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return "", err
	}
	var res healthResponse
	if err := c.do(req, &res); err != nil {
		return "", err
	}
	return res.Message, nil
}

func (c *Client) post(path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// do executes the request and decodes the response. Server error bodies
// are surfaced verbatim when they carry a message, with a generic fallback
// otherwise.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) storeSession(token string, u *User) {
	_ = c.creds.Set(TokenKey, token)
	c.setCurrentUser(u)
}

// setCurrentUser persists a normalized snapshot and publishes it.
func (c *Client) setCurrentUser(u *User) {
	n := normalizeUser(u)
	if n != nil {
		if b, err := json.Marshal(n); err == nil {
			_ = c.creds.Set(UserKey, string(b))
		}
	}
	c.publish(n)
}

func (c *Client) publish(u *User) {
	c.mu.Lock()
	c.current = u
	fns := make([]func(*User), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	// Notify outside the lock so a subscriber may read client state.
	for _, fn := range fns {
		fn(u)
	}
}

func (c *Client) userFromStorage() *User {
	raw, ok := c.creds.Get(UserKey)
	if !ok || raw == "" {
		return nil
	}
	var u User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil
	}
	return normalizeUser(&u)
}

// normalizeUser defaults the fields a partial or stale snapshot may be
// missing: type falls back to standard, identifier to the email.
func normalizeUser(u *User) *User {
	if u == nil {
		return nil
	}
	n := *u
	if n.Type == "" {
		n.Type = "standard"
	}
	if n.Identifier == "" {
		n.Identifier = n.Email
	}
	if n.CreatedAt == "" {
		n.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return &n
}
