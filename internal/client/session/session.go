// Package session holds the bearer token of the logged-in administrator.
//
// A Holder is either Anonymous (no token) or Authenticated (token present).
// Only the login/logout flow writes it; everything issuing privileged
// requests reads it through Token. The token is persisted so a restarted
// console stays logged in until an explicit logout. It is never decoded and
// never expires on the client side.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

var ErrEmptyToken = errors.New("empty session token")

// Store persists the session between runs.
type Store interface {
	Load(ctx context.Context) (token, username string, err error)
	Save(ctx context.Context, token, username string) error
	Clear(ctx context.Context) error
}

type Holder struct {
	store Store

	mu       sync.RWMutex
	token    string
	username string
}

// NewHolder restores a previously persisted session from store, if any.
func NewHolder(ctx context.Context, store Store) (*Holder, error) {
	token, username, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	return &Holder{store: store, token: token, username: username}, nil
}

// Token returns the bearer token, or "" while Anonymous.
func (h *Holder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *Holder) Username() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.username
}

func (h *Holder) State() State {
	if h.Token() == "" {
		return Anonymous
	}
	return Authenticated
}

// Authenticate moves the holder to Authenticated. The token is persisted
// before it becomes visible to readers; an empty token is rejected and the
// current state is kept.
func (h *Holder) Authenticate(ctx context.Context, token, username string) error {
	if token == "" {
		return ErrEmptyToken
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Save(ctx, token, username); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	h.token = token
	h.username = username
	return nil
}

// Clear moves the holder to Anonymous and removes the persisted token.
// The in-memory token is dropped even if the store fails.
func (h *Holder) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = ""
	h.username = ""

	if err := h.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
