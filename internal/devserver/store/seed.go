package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/auth"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

// SeedAdmin creates the admin account unless it exists.
func SeedAdmin(ctx context.Context, m *Memory, username, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = m.CreateUser(ctx, models.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil && !errors.Is(err, common.ErrorAlreadyExists) {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}

// SeedSample fills an empty store with placeholder content.
func SeedSample(ctx context.Context, m *Memory) error {
	if items, _ := m.ListHomes(ctx); len(items) > 0 {
		return nil
	}
	if _, err := m.CreateHome(ctx, models.Home{
		Title:       "Hi, I'm a software developer",
		Description: "I build backends, tools and the occasional website.",
	}); err != nil {
		return err
	}
	if _, err := m.CreateAbout(ctx, models.About{
		Content: "I enjoy working on distributed systems and developer tooling.",
	}); err != nil {
		return err
	}
	_, err := m.CreateProject(ctx, models.Project{
		Name:         "Portfolio",
		Description:  "This site.",
		Message:      "Content is managed from the admin area.",
		Technologies: "Go, SQLite, REST",
		GithubURL:    "https://github.com/dmitrijs2005/portfolio",
	})
	return err
}
