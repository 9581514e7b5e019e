// Package devserver wires the in-memory development API: config, store,
// contact notifications and the HTTP server.
package devserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/config"
	"github.com/dmitrijs2005/portfolio/internal/devserver/httpapi"
	"github.com/dmitrijs2005/portfolio/internal/devserver/notify"
	"github.com/dmitrijs2005/portfolio/internal/devserver/store"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	return newApp(ctx, c, os.Stdout)
}

func newApp(ctx context.Context, c *config.Config, logOut io.Writer) (*App, error) {
	logger := logging.NewJSON(c.LogLevel, logOut)

	mem := store.NewMemory()
	if err := store.SeedAdmin(ctx, mem, c.AdminUser, c.AdminEmail, c.AdminPassword); err != nil {
		return nil, fmt.Errorf("seed error: %w", err)
	}
	if c.Seed {
		if err := store.SeedSample(ctx, mem); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	secret := c.SecretKey
	if secret == "" {
		var err error
		if secret, err = common.MakeRandHexString(32); err != nil {
			return nil, fmt.Errorf("secret key error: %w", err)
		}
		logger.Warn(ctx, "no secret key configured, using a random one")
	}

	var notifier notify.Notifier
	if c.MailEnabled() {
		notifier = notify.NewResendNotifier(c.ResendAPIKey, c.MailFrom, c.MailTo)
	} else {
		notifier = notify.NewLogNotifier(logger)
	}

	srv := httpapi.NewServer(httpapi.Options{
		Addr:           c.Addr,
		SecretKey:      []byte(secret),
		TokenTTL:       c.TokenTTL,
		AllowedOrigins: c.AllowedOrigins,
	}, mem, notifier, logger)

	return &App{config: c, logger: logger, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until a termination signal arrives or ctx ends.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "mail", app.config.MailEnabled())

	app.initSignalHandler(cancelFunc)

	var (
		wg     sync.WaitGroup
		runErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			runErr = err
			cancelFunc()
		}
	}()

	wg.Wait()
	return runErr
}
