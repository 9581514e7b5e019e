// Package admin implements the password-protected editing area: a tabbed
// dashboard over contacts, home, about and projects.
//
// Every editor follows the same protocol. A value is shown read-only until
// BeginEdit copies it into a draft. Save sends the whole draft; on success a
// self-dismissing notice is posted, the editor returns to view mode and the
// resource is fetched again so the screen shows what the server stored. On
// failure the error is posted and the draft stays in edit mode. Deletes need
// a Confirmer's approval and are followed by a refetch. Nothing is patched
// locally.
package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

const MsgLoginRequired = "Please login first"

var (
	ErrBusy           = errors.New("another operation is in progress")
	ErrNotEditing     = errors.New("editor is not in edit mode")
	ErrDeclined       = errors.New("not confirmed")
	ErrUnknownProject = errors.New("unknown project")
	ErrUnknownTab     = errors.New("unknown tab")
	ErrLoginRequired  = errors.New("login required")
)

// API is the part of client.Client the admin area uses.
type API interface {
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

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type Mode int

const (
	ModeView Mode = iota
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "view"
}

// failureText turns a failed call into the banner text shown to the user.
// action reads like "updating home page".
func failureText(action string, err error) string {
	var apiErr *client.Error
	if !errors.As(err, &apiErr) {
		return fmt.Sprintf("Error %s: %v", action, err)
	}

	switch {
	case apiErr.Kind == client.KindNoSession:
		return MsgLoginRequired
	case apiErr.Detail != "":
		return fmt.Sprintf("Error %s: %s", action, apiErr.Detail)
	case apiErr.Status != 0:
		return fmt.Sprintf("Error %s: Operation failed (%d)", action, apiErr.Status)
	default:
		return fmt.Sprintf("Error %s: could not reach the server", action)
	}
}

func loggerFor(l logging.Logger, module string) logging.Logger {
	if l == nil {
		l = logging.Nop()
	}
	return l.With("module", module)
}

func lower(s string) string { return strings.ToLower(s) }
