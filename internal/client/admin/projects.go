package admin

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

const (
	MsgProjectAdded   = "Project added successfully!"
	MsgProjectUpdated = "Project updated successfully!"
	MsgProjectDeleted = "Project deleted successfully!"
)

// ProjectsEditor lists, creates, edits and deletes projects. It refuses to
// send anything while the session has no token.
type ProjectsEditor struct {
	api     API
	tokens  client.TokenSource
	notices *notice.Board
	logger  logging.Logger

	mu       sync.Mutex
	projects []models.Project
	mode     Mode
	creating bool
	draft    models.Project
	busy     bool
}

func NewProjectsEditor(api API, tokens client.TokenSource, notices *notice.Board, logger logging.Logger) *ProjectsEditor {
	return &ProjectsEditor{api: api, tokens: tokens, notices: notices, logger: loggerFor(logger, "projects_editor")}
}

func (e *ProjectsEditor) Load(ctx context.Context) error {
	items, err := e.api.GetProjects(ctx)
	if err != nil {
		e.logger.Warn(ctx, "load failed", "error", err)
		e.notices.Error(failureText("loading projects", err))
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.projects = items
	return nil
}

// Projects returns a copy of the last fetched list.
func (e *ProjectsEditor) Projects() []models.Project {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Project, len(e.projects))
	copy(out, e.projects)
	return out
}

func (e *ProjectsEditor) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// Creating reports whether the open draft is a new project.
func (e *ProjectsEditor) Creating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode == ModeEdit && e.creating
}

func (e *ProjectsEditor) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// BeginCreate opens an empty draft.
func (e *ProjectsEditor) BeginCreate() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = ModeEdit
	e.creating = true
	e.draft = models.Project{}
}

// BeginEdit opens a draft pre-filled from the listed project with id.
func (e *ProjectsEditor) BeginEdit(id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.projects {
		if p.ID == id {
			e.mode = ModeEdit
			e.creating = false
			e.draft = p
			return nil
		}
	}
	return ErrUnknownProject
}

func (e *ProjectsEditor) Draft() models.Project {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

// SetDraft replaces the draft. The id of an edited project cannot change.
func (e *ProjectsEditor) SetDraft(p models.Project) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != ModeEdit {
		return ErrNotEditing
	}
	if e.creating {
		p.ID = 0
	} else {
		p.ID = e.draft.ID
	}
	e.draft = p
	return nil
}

func (e *ProjectsEditor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = ModeView
	e.creating = false
	e.draft = models.Project{}
}

func (e *ProjectsEditor) loggedIn() bool {
	return e.tokens != nil && e.tokens.Token() != ""
}

// Save posts a new project or puts the edited one.
func (e *ProjectsEditor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.mode != ModeEdit {
		e.mu.Unlock()
		return ErrNotEditing
	}
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	if !e.loggedIn() {
		e.mu.Unlock()
		e.notices.Error(MsgLoginRequired)
		return ErrLoginRequired
	}
	e.busy = true
	payload, creating := e.draft, e.creating
	e.mu.Unlock()

	var err error
	if creating {
		err = e.api.CreateProject(ctx, payload)
	} else {
		err = e.api.UpdateProject(ctx, payload)
	}

	e.mu.Lock()
	e.busy = false
	if err != nil {
		e.mu.Unlock()
		e.logger.Warn(ctx, "save failed", "project_id", payload.ID, "error", err)
		e.notices.Error(failureText("saving project", err))
		return err
	}
	e.mode = ModeView
	e.creating = false
	e.draft = models.Project{}
	e.mu.Unlock()

	if creating {
		e.notices.Success(MsgProjectAdded)
	} else {
		e.notices.Success(MsgProjectUpdated)
	}
	return e.Load(ctx)
}

// Delete removes the project with id once confirm approves.
func (e *ProjectsEditor) Delete(ctx context.Context, id int, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this project?") {
		return ErrDeclined
	}

	e.mu.Lock()
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	if !e.loggedIn() {
		e.mu.Unlock()
		e.notices.Error(MsgLoginRequired)
		return ErrLoginRequired
	}
	e.busy = true
	e.mu.Unlock()

	err := e.api.DeleteProject(ctx, id)

	e.mu.Lock()
	e.busy = false
	e.mu.Unlock()

	if err != nil {
		e.logger.Warn(ctx, "delete failed", "project_id", id, "error", err)
		e.notices.Error(failureText("deleting project", err))
		return err
	}

	e.notices.Success(MsgProjectDeleted)
	return e.Load(ctx)
}
