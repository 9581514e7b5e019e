// Package httpapi serves the portfolio REST API used by the console client
// during development.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
	"github.com/dmitrijs2005/portfolio/internal/devserver/notify"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

// Store is the persistence the handlers need.
type Store interface {
	ListHomes(ctx context.Context) ([]models.Home, error)
	CreateHome(ctx context.Context, h models.Home) (models.Home, error)
	UpdateHome(ctx context.Context, h models.Home) error
	DeleteHome(ctx context.Context, id int) error

	ListAbouts(ctx context.Context) ([]models.About, error)
	CreateAbout(ctx context.Context, a models.About) (models.About, error)
	UpdateAbout(ctx context.Context, a models.About) error
	DeleteAbout(ctx context.Context, id int) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, p models.Project) (models.Project, error)
	UpdateProject(ctx context.Context, p models.Project) error
	DeleteProject(ctx context.Context, id int) error

	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, c models.Contact) (models.Contact, error)
	UpdateContact(ctx context.Context, c models.Contact) error
	DeleteContact(ctx context.Context, id int) error

	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

type Options struct {
	Addr           string
	SecretKey      []byte
	TokenTTL       time.Duration
	AllowedOrigins []string
}

type Server struct {
	opts     Options
	store    Store
	notifier notify.Notifier
	logger   logging.Logger
	handler  http.Handler
}

func NewServer(opts Options, store Store, notifier notify.Notifier, logger logging.Logger) *Server {
	s := &Server{
		opts:     opts,
		store:    store,
		notifier: notifier,
		logger:   logger.With("module", "http_server"),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root handler, CORS included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/home", s.listHomes)
		r.Get("/about", s.listAbouts)
		r.Get("/projects", s.listProjects)
		r.Post("/contact", s.createContact)
		r.Post("/login", s.login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(s.bearerAuth)

			r.Get("/contact", s.listContacts)
			r.Put("/contact", s.updateContact)
			r.Delete("/contact/{id}", s.deleteContact)

			r.Get("/home", s.listHomes)
			r.Post("/home", s.createHome)
			r.Put("/home", s.updateHome)
			r.Delete("/home/{id}", s.deleteHome)

			r.Post("/about", s.createAbout)
			r.Put("/about", s.updateAbout)
			r.Delete("/about/{id}", s.deleteAbout)

			r.Post("/projects", s.createProject)
			r.Put("/projects/{id}", s.updateProject)
			r.Delete("/projects/{id}", s.deleteProject)
		})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	})
	return c.Handler(r)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
