package admin

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

const MsgContactDeleted = "Contact deleted successfully"

// ContactsViewer lists received messages and deletes them.
type ContactsViewer struct {
	api     API
	notices *notice.Board
	logger  logging.Logger

	mu       sync.Mutex
	contacts []models.ContactMessage
	loadErr  error
	busy     bool
}

func NewContactsViewer(api API, notices *notice.Board, logger logging.Logger) *ContactsViewer {
	return &ContactsViewer{api: api, notices: notices, logger: loggerFor(logger, "contacts_viewer")}
}

// Load fetches the messages. A rejected fetch clears the list and is
// reported through Err, so it is never mistaken for an empty inbox.
func (v *ContactsViewer) Load(ctx context.Context) error {
	items, err := v.api.ListContacts(ctx)

	v.mu.Lock()
	v.loadErr = err
	if err != nil {
		v.contacts = nil
	} else {
		v.contacts = items
	}
	v.mu.Unlock()

	if err != nil {
		v.logger.Warn(ctx, "load failed", "error", err)
		v.notices.Error(failureText("loading contacts", err))
	}
	return err
}

func (v *ContactsViewer) Contacts() []models.ContactMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]models.ContactMessage, len(v.contacts))
	copy(out, v.contacts)
	return out
}

// Err returns the error of the last Load, if it failed.
func (v *ContactsViewer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loadErr
}

// Delete removes the message with id once confirm approves. On failure the
// list is left as it was.
func (v *ContactsViewer) Delete(ctx context.Context, id int, confirm Confirmer) error {
	if !confirm.Confirm("Are you sure you want to delete this contact?") {
		return ErrDeclined
	}

	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return ErrBusy
	}
	v.busy = true
	v.mu.Unlock()

	err := v.api.DeleteContact(ctx, id)

	v.mu.Lock()
	v.busy = false
	v.mu.Unlock()

	if err != nil {
		v.logger.Warn(ctx, "delete failed", "contact_id", id, "error", err)
		v.notices.Error(failureText("deleting contact", err))
		return err
	}

	v.notices.Success(MsgContactDeleted)
	return v.Load(ctx)
}
