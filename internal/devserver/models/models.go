// Package models holds the records kept by the development API.
package models

import "time"

type Home struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type About struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
}

type Project struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Message      string `json:"message"`
	ImageURL     string `json:"image_url"`
	Technologies string `json:"technologies"`
	GithubURL    string `json:"github_url"`
	DemoURL      string `json:"demo_url"`
}

type Contact struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// User is an account allowed into the admin area. PasswordHash is a bcrypt
// hash and never leaves the server.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
