package httpapi

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

// storeFailure maps a store error to a response.
func (s *Server) storeFailure(w http.ResponseWriter, r *http.Request, err error, notFound, failed string) {
	if errors.Is(err, common.ErrorNotFound) {
		s.respondError(w, r, http.StatusNotFound, notFound)
		return
	}
	s.logger.Error(r.Context(), failed, "error", err)
	s.respondError(w, r, http.StatusInternalServerError, failed)
}

func (s *Server) listHomes(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListHomes(r.Context())
	if err != nil {
		s.storeFailure(w, r, err, "", "Data could not be retrieved")
		return
	}
	s.respondJSON(w, r, http.StatusOK, nonNil(items))
}

func (s *Server) createHome(w http.ResponseWriter, r *http.Request) {
	var h models.Home
	if err := decodeJSON(w, r, &h); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if _, err := s.store.CreateHome(r.Context(), h); err != nil {
		s.storeFailure(w, r, err, "", "Record could not be added")
		return
	}
	s.respondMessage(w, r, http.StatusCreated, "Home record added successfully")
}

func (s *Server) updateHome(w http.ResponseWriter, r *http.Request) {
	var h models.Home
	if err := decodeJSON(w, r, &h); err != nil || h.ID <= 0 {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := s.store.UpdateHome(r.Context(), h); err != nil {
		s.storeFailure(w, r, err, "Home not found", "Update failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "Home ID %d updated successfully", h.ID)
}

func (s *Server) deleteHome(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := s.store.DeleteHome(r.Context(), id); err != nil {
		s.storeFailure(w, r, err, "Home not found", "Delete operation failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "Home ID %d deleted successfully", id)
}

func (s *Server) listAbouts(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListAbouts(r.Context())
	if err != nil {
		s.storeFailure(w, r, err, "", "Data could not be retrieved")
		return
	}
	s.respondJSON(w, r, http.StatusOK, nonNil(items))
}

func (s *Server) createAbout(w http.ResponseWriter, r *http.Request) {
	var a models.About
	if err := decodeJSON(w, r, &a); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if _, err := s.store.CreateAbout(r.Context(), a); err != nil {
		s.storeFailure(w, r, err, "", "Record could not be added")
		return
	}
	s.respondMessage(w, r, http.StatusCreated, "New About record added successfully")
}

func (s *Server) updateAbout(w http.ResponseWriter, r *http.Request) {
	var a models.About
	if err := decodeJSON(w, r, &a); err != nil || a.ID <= 0 {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if err := s.store.UpdateAbout(r.Context(), a); err != nil {
		s.storeFailure(w, r, err, "About not found", "Update failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "About ID %d updated successfully", a.ID)
}

func (s *Server) deleteAbout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := s.store.DeleteAbout(r.Context(), id); err != nil {
		s.storeFailure(w, r, err, "About not found", "Delete operation failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "About record deleted.")
}

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListProjects(r.Context())
	if err != nil {
		s.storeFailure(w, r, err, "", "Data could not be retrieved")
		return
	}
	s.respondJSON(w, r, http.StatusOK, nonNil(items))
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := decodeJSON(w, r, &p); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	if _, err := s.store.CreateProject(r.Context(), p); err != nil {
		s.storeFailure(w, r, err, "", "Record could not be added")
		return
	}
	s.respondMessage(w, r, http.StatusCreated, "Project record added successfully")
}

// updateProject takes the id from the path; an id in the body is ignored.
func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "Invalid ID")
		return
	}
	var p models.Project
	if err := decodeJSON(w, r, &p); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data")
		return
	}
	p.ID = id
	if err := s.store.UpdateProject(r.Context(), p); err != nil {
		s.storeFailure(w, r, err, "Project not found", "Update failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "Project ID %d updated successfully", id)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.respondError(w, r, http.StatusBadRequest, "Invalid ID")
		return
	}
	if err := s.store.DeleteProject(r.Context(), id); err != nil {
		s.storeFailure(w, r, err, "Project not found", "Delete operation failed")
		return
	}
	s.respondMessage(w, r, http.StatusOK, "Project ID %d deleted successfully", id)
}
