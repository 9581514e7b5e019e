package client

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

type Client interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	SendContact(ctx context.Context, form models.ContactForm) (*models.MessageResponse, error)

	GetHome(ctx context.Context) ([]models.Home, error)
	GetAbout(ctx context.Context) ([]models.About, error)
	GetProjects(ctx context.Context) ([]models.Project, error)

	ListContacts(ctx context.Context) ([]models.ContactMessage, error)
	DeleteContact(ctx context.Context, id int) error

	CreateHome(ctx context.Context, h models.Home) error
	UpdateHome(ctx context.Context, h models.Home) error
	CreateAbout(ctx context.Context, a models.About) error
	UpdateAbout(ctx context.Context, a models.About) error

	CreateProject(ctx context.Context, p models.Project) error
	UpdateProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id int) error
}

// TokenSource yields the current bearer token, "" when logged out.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }
