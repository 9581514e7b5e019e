package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/client/admin"
	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/config"
	"github.com/dmitrijs2005/portfolio/internal/client/forms"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/client/services"
	"github.com/dmitrijs2005/portfolio/internal/client/session"
	"github.com/dmitrijs2005/portfolio/internal/client/store"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type App struct {
	config      *config.Config
	api         client.Client
	authService services.AuthService
	notices     *notice.Board
	dashboard   *admin.Dashboard
	contactForm *forms.ContactForm
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	closeFn     func() error

	adminArea bool
}

// NewApp opens the session database, restores the session and builds the
// REST client from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	db, err := store.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	holder, err := session.NewHolder(ctx, session.NewSQLiteStore(db))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL, holder,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(api, holder, logger)
	a := newApp(c, api, auth, holder, logger, os.Stdin, os.Stdout)
	a.closeFn = db.Close
	return a, nil
}

func newApp(c *config.Config, api client.Client, auth services.AuthService, tokens client.TokenSource,
	logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	notices := notice.NewBoard(c.NoticeTimeout)
	return &App{
		config:      c,
		api:         api,
		authService: auth,
		notices:     notices,
		dashboard:   admin.NewDashboard(api, tokens, notices, logger),
		contactForm: forms.NewContactForm(api, notices, logger),
		logger:      logger,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run opens start (if given) and serves the REPL until exit or EOF.
func (a *App) Run(ctx context.Context, start string) {
	defer a.Close()

	printlnFn("Welcome to the portfolio console (type 'help' for commands)")
	if start != "" {
		_ = a.Open(ctx, start)
	}
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

func (a *App) isLoggedIn() bool {
	return a.authService.State() == session.Authenticated
}

func (a *App) inAdminArea() bool { return a.adminArea }

func (a *App) getStatus() string {
	parts := make([]string, 0, 2)
	if a.isLoggedIn() {
		parts = append(parts, a.authService.Username())
	} else {
		parts = append(parts, "anonymous")
	}
	if a.adminArea {
		parts = append(parts, "admin")
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

// flushNotice prints the current notice, if any.
func (a *App) flushNotice() {
	n := a.notices.Current()
	if n.Empty() {
		return
	}
	fmt.Fprintf(a.out, "[%s] %s\n", n.Kind, n.Text)
}

func (a *App) confirm(prompt string) bool {
	answer, err := getSimpleText(a.reader, prompt+" (y/N)", a.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
