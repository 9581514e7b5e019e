// Package models defines the portfolio records exchanged with the backend.
// Field names and JSON tags mirror the REST contract one to one.
package models

import (
	"strings"
	"time"
)

// Home is the landing-page content. The backend keeps at most one row.
type Home struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// About is the about-page content. The backend keeps at most one row.
type About struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

// Project is a portfolio entry.
//
// ID is assigned by the backend on insert and must be zero (omitted) when
// creating. Technologies is a display-only comma-separated list.
type Project struct {
	ID           int    `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Message      string `json:"message"`
	ImageURL     string `json:"image_url,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	GithubURL    string `json:"github_url,omitempty"`
	DemoURL      string `json:"demo_url,omitempty"`
}

// TechnologyList splits Technologies on commas and trims every item.
// Blank items are dropped; duplicates are kept as given.
func (p Project) TechnologyList() []string {
	if strings.TrimSpace(p.Technologies) == "" {
		return nil
	}

	parts := strings.Split(p.Technologies, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ContactMessage is a message left through the contact form, as listed in
// the admin area.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// First returns the first element of a singleton collection. The second
// result is false for an empty collection, which means "absent".
func First[T any](items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[0], true
}
