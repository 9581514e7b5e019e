package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

const notifyTimeout = 10 * time.Second

func (s *Server) createContact(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := decodeJSON(w, r, &c); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	c, err := cleanContact(c)
	if err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}

	saved, err := s.store.CreateContact(r.Context(), c)
	if err != nil {
		s.storeFailure(w, r, err, "", "Record could not be added")
		return
	}

	// The message is stored already; a failed notification is only logged.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), notifyTimeout)
	defer cancel()
	if err := s.notifier.NotifyContact(ctx, saved); err != nil {
		s.logger.Error(r.Context(), "contact notification failed", "id", saved.ID, "error", err)
	}

	s.respondMessage(w, r, http.StatusCreated, "Contact record added successfully and email sent")
}

// cleanContact trims a submitted message. Name, email and message are
// required; phone is optional.
func cleanContact(c models.Contact) (models.Contact, error) {
	out := models.Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Message: strings.TrimSpace(c.Message),
	}
	if out.Name == "" || out.Email == "" || out.Message == "" {
		return models.Contact{}, fmt.Errorf("%w: name, email and message are required", common.ErrorValidation)
	}
	return out, nil
}

func (s *Server) listContacts(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListContacts(r.Context())
	if err != nil {
		s.storeFailure(w, r, err, "", "Data could not be retrieved")
		return
	}
	s.respondJSON(w, r, http.StatusOK, nonNil(items))
}

func (s *Server) updateContact(w http.ResponseWriter, r *http.Request) {
	var c models.Contact
	if err := decodeJSON(w, r, &c); err != nil || c.ID <= 0 {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := s.store.UpdateContact(r.Context(), c); err != nil {
		s.storeFailure(w, r, err, "Contact not found", "Update failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "Contact ID %d updated successfully", c.ID)
}

func (s *Server) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := s.store.DeleteContact(r.Context(), id); err != nil {
		s.storeFailure(w, r, err, "Contact not found", "Delete operation failed")
		return
	}

	if claims, ok := claimsFrom(r.Context()); ok {
		s.logger.Info(r.Context(), "contact deleted", "id", id, "by", claims.Username)
	}
	s.respondMessage(w, r, http.StatusOK, "Contact ID %d deleted successfully", id)
}
