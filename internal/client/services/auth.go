// Package services contains application services for the portfolio console.
// This file defines the authentication service: login against the backend
// and local logout.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

// ErrNoToken is returned when the backend accepts a login but sends no token.
var ErrNoToken = errors.New("login response carries no token")

// LoginAPI is the part of client.Client the auth service needs.
type LoginAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// AuthService defines authentication operations for the console.
//
// Login authenticates against the backend and stores the returned token in
// the session. Logout forgets the token locally; the backend is not told.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	State() session.State
	Username() string
}

type authService struct {
	api     LoginAPI
	session *session.Holder
	logger  logging.Logger
}

func NewAuthService(api LoginAPI, holder *session.Holder, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{api: api, session: holder, logger: logger.With("module", "auth")}
}

// Login sends the credentials and, on success, moves the session to
// Authenticated. On any failure the session is left as it was.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	resp, err := a.api.Login(ctx, models.LoginRequest{Username: username, Password: string(password)})
	if err != nil {
		return nil, fmt.Errorf("login error: %w", err)
	}
	if resp == nil || resp.Token == "" {
		return nil, ErrNoToken
	}

	name := resp.User.Username
	if name == "" {
		name = username
	}
	if err := a.session.Authenticate(ctx, resp.Token, name); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Info(ctx, "logged in", "username", name)
	user := resp.User
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info(ctx, "logged out")
	return nil
}

func (a *authService) State() session.State { return a.session.State() }

func (a *authService) Username() string { return a.session.Username() }
