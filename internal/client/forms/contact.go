// Package forms implements the public contact form.
package forms

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

const (
	MsgIncomplete   = "Please fill all fields!"
	MsgSent         = "Message sent successfully! I'll get back to you soon."
	MsgNotDelivered = "Failed to send message. Please try again."
	MsgUnreachable  = "Failed to send message. Please check your connection and try again."
)

var (
	ErrIncomplete   = errors.New("all fields are required")
	ErrBusy         = errors.New("a submission is already in progress")
	ErrNotDelivered = errors.New("message was not accepted")
)

type ContactSender interface {
	SendContact(ctx context.Context, form models.ContactForm) (*models.MessageResponse, error)
}

// ContactForm holds the four field values between edits and submits them.
type ContactForm struct {
	sender  ContactSender
	notices *notice.Board
	logger  logging.Logger

	mu         sync.Mutex
	fields     models.ContactForm
	submitting bool
}

func NewContactForm(sender ContactSender, notices *notice.Board, logger logging.Logger) *ContactForm {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ContactForm{sender: sender, notices: notices, logger: logger.With("form", "contact")}
}

func (f *ContactForm) SetFields(v models.ContactForm) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = v
}

func (f *ContactForm) Fields() models.ContactForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *ContactForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Submit validates and sends the form.
//
// Blank fields (after trimming) fail with ErrIncomplete and nothing is sent.
// The message counts as delivered only when the server answers with a
// non-empty "message"; the fields are then cleared. On any failure the
// fields are kept.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	f.notices.Dismiss()
	if !f.fields.Complete() {
		f.mu.Unlock()
		f.notices.Error(MsgIncomplete)
		return ErrIncomplete
	}
	payload := f.fields.Trimmed()
	f.submitting = true
	f.mu.Unlock()

	resp, err := f.sender.SendContact(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	switch {
	case err != nil:
		f.logger.Warn(ctx, "contact form error", "error", err)
		f.notices.Error(MsgUnreachable)
		return err
	case resp == nil || resp.Message == "":
		f.notices.Error(MsgNotDelivered)
		return ErrNotDelivered
	}

	f.fields = models.ContactForm{}
	f.notices.Success(MsgSent)
	return nil
}
