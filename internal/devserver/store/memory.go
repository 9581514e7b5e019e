// Package store keeps the development API's data in memory.
package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

// Memory is a concurrency-safe in-memory store. Every method takes a
// context to keep the signatures of a database-backed repository; the
// context is not consulted.
type Memory struct {
	mu sync.RWMutex
	now func() time.Time

	homes    *collection[models.Home]
	abouts   *collection[models.About]
	projects *collection[models.Project]
	contacts *collection[models.Contact]
	users    *collection[models.User]
}

func NewMemory() *Memory {
	return &Memory{
		now: time.Now,
		homes: newCollection(
			func(v models.Home) int { return v.ID },
			func(v *models.Home, id int) { v.ID = id }),
		abouts: newCollection(
			func(v models.About) int { return v.ID },
			func(v *models.About, id int) { v.ID = id }),
		projects: newCollection(
			func(v models.Project) int { return v.ID },
			func(v *models.Project, id int) { v.ID = id }),
		contacts: newCollection(
			func(v models.Contact) int { return v.ID },
			func(v *models.Contact, id int) { v.ID = id }),
		users: newCollection(
			func(v models.User) int { return v.ID },
			func(v *models.User, id int) { v.ID = id }),
	}
}

func (m *Memory) ListHomes(ctx context.Context) ([]models.Home, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.homes.list(), nil
}

func (m *Memory) CreateHome(ctx context.Context, h models.Home) (models.Home, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.homes.insert(h), nil
}

func (m *Memory) UpdateHome(ctx context.Context, h models.Home) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.homes.replace(h)
}

func (m *Memory) DeleteHome(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.homes.remove(id)
}

func (m *Memory) ListAbouts(ctx context.Context) ([]models.About, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.abouts.list(), nil
}

func (m *Memory) CreateAbout(ctx context.Context, a models.About) (models.About, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.abouts.insert(a), nil
}

func (m *Memory) UpdateAbout(ctx context.Context, a models.About) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.abouts.replace(a)
}

func (m *Memory) DeleteAbout(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.abouts.remove(id)
}

// ListProjects returns the newest project first.
func (m *Memory) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	items := m.projects.list()
	slices.Reverse(items)
	return items, nil
}

func (m *Memory) CreateProject(ctx context.Context, p models.Project) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects.insert(p), nil
}

func (m *Memory) UpdateProject(ctx context.Context, p models.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects.replace(p)
}

func (m *Memory) DeleteProject(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.projects.remove(id)
}

func (m *Memory) ListContacts(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.contacts.list(), nil
}

// CreateContact stamps CreatedAt.
func (m *Memory) CreateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.CreatedAt = m.now().UTC()
	return m.contacts.insert(c), nil
}

// UpdateContact replaces the editable fields and keeps CreatedAt.
func (m *Memory) UpdateContact(ctx context.Context, c models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, err := m.contacts.get(c.ID)
	if err != nil {
		return err
	}
	c.CreatedAt = cur.CreatedAt
	return m.contacts.replace(c)
}

func (m *Memory) DeleteContact(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contacts.remove(id)
}

// CreateUser adds an account. Usernames are unique.
func (m *Memory) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users.items {
		if existing.Username == u.Username {
			return models.User{}, common.ErrorAlreadyExists
		}
	}
	u.CreatedAt = m.now().UTC()
	return m.users.insert(u), nil
}

func (m *Memory) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users.items {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, common.ErrorNotFound
}
