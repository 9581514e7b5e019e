package views

import (
	"context"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
	"github.com/dmitrijs2005/portfolio/internal/logging"
)

type HomeSource interface {
	GetHome(ctx context.Context) ([]models.Home, error)
}

type AboutSource interface {
	GetAbout(ctx context.Context) ([]models.About, error)
}

type ProjectsSource interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
}

// NewHomeView shows the first home record; an empty list is absent.
func NewHomeView(src HomeSource, logger logging.Logger) *View[models.Home] {
	fetch := func(ctx context.Context) (models.Home, bool, error) {
		items, err := src.GetHome(ctx)
		if err != nil {
			return models.Home{}, false, err
		}
		h, ok := models.First(items)
		return h, ok, nil
	}
	return newView("home", fetch, "Failed to load home data", "No home data found", logger)
}

// NewAboutView shows the first about record; an empty list is absent.
func NewAboutView(src AboutSource, logger logging.Logger) *View[models.About] {
	fetch := func(ctx context.Context) (models.About, bool, error) {
		items, err := src.GetAbout(ctx)
		if err != nil {
			return models.About{}, false, err
		}
		a, ok := models.First(items)
		return a, ok, nil
	}
	return newView("about", fetch, "Failed to load about data", "No about data found", logger)
}

// NewProjectsView shows all projects in server order. An empty list is a
// loaded view with no items.
func NewProjectsView(src ProjectsSource, logger logging.Logger) *View[[]models.Project] {
	fetch := func(ctx context.Context) ([]models.Project, bool, error) {
		items, err := src.GetProjects(ctx)
		if err != nil {
			return nil, false, err
		}
		return items, true, nil
	}
	return newView("projects", fetch, "Failed to load projects", "", logger)
}
