package admin

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/client/notice"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabContacts  Tab = "contacts"
	TabHome      Tab = "home"
	TabAbout     Tab = "about"
	TabProjects  Tab = "projects"
)

// Tabs lists the dashboard tabs in display order.
var Tabs = []Tab{TabDashboard, TabContacts, TabHome, TabAbout, TabProjects}

func ParseTab(s string) (Tab, error) {
	want := Tab(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range Tabs {
		if t == want {
			return t, nil
		}
	}
	return "", ErrUnknownTab
}

// Summary is the overview shown on the dashboard tab.
type Summary struct {
	Contacts int
	Projects int
}

// Dashboard owns one editor per tab and the active tab.
type Dashboard struct {
	Contacts *ContactsViewer
	Home     *SingletonEditor[models.Home]
	About    *SingletonEditor[models.About]
	Projects *ProjectsEditor

	api     API
	notices *notice.Board
	logger  logging.Logger

	mu      sync.Mutex
	active  Tab
	loading bool
	summary Summary
}

func NewDashboard(api API, tokens client.TokenSource, notices *notice.Board, logger logging.Logger) *Dashboard {
	return &Dashboard{
		Contacts: NewContactsViewer(api, notices, logger),
		Home:     NewHomeEditor(api, notices, logger),
		About:    NewAboutEditor(api, notices, logger),
		Projects: NewProjectsEditor(api, tokens, notices, logger),
		api:      api,
		notices:  notices,
		logger:   loggerFor(logger, "dashboard"),
		active:   TabDashboard,
	}
}

func (d *Dashboard) Active() Tab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

func (d *Dashboard) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.summary
}

// Open switches to tab and fetches its data again, even when tab is
// already active.
func (d *Dashboard) Open(ctx context.Context, tab Tab) error {
	if _, err := ParseTab(string(tab)); err != nil {
		return err
	}

	d.mu.Lock()
	d.active = tab
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	switch tab {
	case TabContacts:
		return d.Contacts.Load(ctx)
	case TabHome:
		return d.Home.Load(ctx)
	case TabAbout:
		return d.About.Load(ctx)
	case TabProjects:
		return d.Projects.Load(ctx)
	default:
		return d.loadSummary(ctx)
	}
}

func (d *Dashboard) loadSummary(ctx context.Context) error {
	var s Summary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := d.api.ListContacts(gctx)
		if err != nil {
			return err
		}
		s.Contacts = len(items)
		return nil
	})
	g.Go(func() error {
		items, err := d.api.GetProjects(gctx)
		if err != nil {
			return err
		}
		s.Projects = len(items)
		return nil
	})

	if err := g.Wait(); err != nil {
		d.logger.Warn(ctx, "summary failed", "error", err)
		d.notices.Error(failureText("loading dashboard", err))
		return err
	}

	d.mu.Lock()
	d.summary = s
	d.mu.Unlock()
	return nil
}
