package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/auth"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
}

// authenticate returns the user for valid credentials and
// common.ErrorUnauthorized otherwise.
func (s *Server) authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return models.User{}, common.ErrorUnauthorized
		}
		return models.User{}, err
	}
	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return models.User{}, common.ErrorUnauthorized
	}
	return user, nil
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "Invalid data format")
		return
	}

	user, err := s.authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.logger.Info(r.Context(), "login rejected", "username", req.Username)
		} else {
			s.logger.Error(r.Context(), "user lookup failed", "error", err)
		}
		s.respondError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.opts.SecretKey, s.opts.TokenTTL)
	if err != nil {
		s.logger.Error(r.Context(), "token generation failed", "error", err)
		s.respondError(w, r, http.StatusInternalServerError, "Could not generate token")
		return
	}

	s.logger.Info(r.Context(), "logged in", "username", user.Username)
	s.respondJSON(w, r, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   token,
		User:    loginUser{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}
