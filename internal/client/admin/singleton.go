package admin

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

// SingletonEditor edits a resource the backend keeps as a single row (home,
// about). When the row is absent, Save creates it.
type SingletonEditor[T any] struct {
	label  string // "Home page"
	action string // "updating home page"

	load   func(ctx context.Context) ([]T, error)
	create func(ctx context.Context, v T) error
	update func(ctx context.Context, v T) error
	idOf   func(v T) int
	withID func(v T, id int) T

	notices *notice.Board
	logger  logging.Logger

	mu      sync.Mutex
	current T
	present bool
	mode    Mode
	draft   T
	busy    bool
}

func NewHomeEditor(api API, notices *notice.Board, logger logging.Logger) *SingletonEditor[models.Home] {
	return &SingletonEditor[models.Home]{
		label:   "Home page",
		action:  "updating home page",
		load:    api.GetHome,
		create:  api.CreateHome,
		update:  api.UpdateHome,
		idOf:    func(h models.Home) int { return h.ID },
		withID:  func(h models.Home, id int) models.Home { h.ID = id; return h },
		notices: notices,
		logger:  loggerFor(logger, "home_editor"),
	}
}

func NewAboutEditor(api API, notices *notice.Board, logger logging.Logger) *SingletonEditor[models.About] {
	return &SingletonEditor[models.About]{
		label:   "About page",
		action:  "updating about page",
		load:    api.GetAbout,
		create:  api.CreateAbout,
		update:  api.UpdateAbout,
		idOf:    func(a models.About) int { return a.ID },
		withID:  func(a models.About, id int) models.About { a.ID = id; return a },
		notices: notices,
		logger:  loggerFor(logger, "about_editor"),
	}
}

// Load fetches the current value. The editor mode and draft are untouched.
func (e *SingletonEditor[T]) Load(ctx context.Context) error {
	items, err := e.load(ctx)
	if err != nil {
		e.logger.Warn(ctx, "load failed", "error", err)
		e.notices.Error(failureText("loading "+lower(e.label), err))
		return err
	}

	v, ok := models.First(items)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.current, e.present = v, ok
	return nil
}

// Current returns the last fetched value and whether one exists.
func (e *SingletonEditor[T]) Current() (T, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current, e.present
}

func (e *SingletonEditor[T]) Mode() Mode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

func (e *SingletonEditor[T]) Busy() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.busy
}

// BeginEdit enters edit mode with a draft pre-filled from the current value.
func (e *SingletonEditor[T]) BeginEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = ModeEdit
	e.draft = e.current
}

func (e *SingletonEditor[T]) Draft() T {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft
}

func (e *SingletonEditor[T]) SetDraft(v T) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mode != ModeEdit {
		return ErrNotEditing
	}
	e.draft = v
	return nil
}

// Cancel leaves edit mode and discards the draft.
func (e *SingletonEditor[T]) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	var zero T
	e.mode = ModeView
	e.draft = zero
}

// Save sends the draft: an update carrying the current id when a value
// exists, a create otherwise.
func (e *SingletonEditor[T]) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.mode != ModeEdit {
		e.mu.Unlock()
		return ErrNotEditing
	}
	if e.busy {
		e.mu.Unlock()
		return ErrBusy
	}
	e.busy = true
	payload := e.draft
	send := e.create
	if e.present {
		payload = e.withID(payload, e.idOf(e.current))
		send = e.update
	}
	e.mu.Unlock()

	err := send(ctx, payload)

	e.mu.Lock()
	e.busy = false
	if err != nil {
		e.mu.Unlock()
		e.logger.Warn(ctx, "save failed", "error", err)
		e.notices.Error(failureText(e.action, err))
		return err
	}
	var zero T
	e.mode = ModeView
	e.draft = zero
	e.mu.Unlock()

	e.notices.Success(e.label + " updated successfully")
	return e.Load(ctx)
}
