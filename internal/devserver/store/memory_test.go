package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/portfolio/internal/common"
	"github.com/dmitrijs2005/portfolio/internal/devserver/auth"
	"github.com/dmitrijs2005/portfolio/internal/devserver/models"
)

func TestMemory_HomeCRUD(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	items, err := m.ListHomes(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	h, err := m.CreateHome(ctx, models.Home{ID: 99, Title: "T"})
	require.NoError(t, err)
	assert.Equal(t, 1, h.ID)

	require.NoError(t, m.UpdateHome(ctx, models.Home{ID: 1, Title: "T2"}))
	items, _ = m.ListHomes(ctx)
	assert.Equal(t, []models.Home{{ID: 1, Title: "T2"}}, items)

	assert.ErrorIs(t, m.UpdateHome(ctx, models.Home{ID: 2}), common.ErrorNotFound)
	require.NoError(t, m.DeleteHome(ctx, 1))
	assert.ErrorIs(t, m.DeleteHome(ctx, 1), common.ErrorNotFound)
}

func TestMemory_ProjectsNewestFirstAndIDsNotReused(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	for _, name := range []string{"a", "b", "c"} {
		_, err := m.CreateProject(ctx, models.Project{Name: name})
		require.NoError(t, err)
	}
	require.NoError(t, m.DeleteProject(ctx, 3))
	p, err := m.CreateProject(ctx, models.Project{Name: "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, p.ID)

	items, _ := m.ListProjects(ctx)
	names := make([]string, len(items))
	for i, p := range items {
		names[i] = p.Name
	}
	assert.Equal(t, []string{"d", "b", "a"}, names)
}

func TestMemory_ContactKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	stamp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return stamp }

	c, err := m.CreateContact(ctx, models.Contact{Name: "Ann", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, stamp, c.CreatedAt)

	require.NoError(t, m.UpdateContact(ctx, models.Contact{ID: c.ID, Name: "Ann B", Message: "hi"}))
	items, _ := m.ListContacts(ctx)
	require.Len(t, items, 1)
	assert.Equal(t, "Ann B", items[0].Name)
	assert.Equal(t, stamp, items[0].CreatedAt)
}

func TestMemory_ListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	_, _ = m.CreateAbout(ctx, models.About{Content: "x"})

	items, _ := m.ListAbouts(ctx)
	items[0].Content = "mutated"

	again, _ := m.ListAbouts(ctx)
	assert.Equal(t, "x", again[0].Content)
}

func TestMemory_Users(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, SeedAdmin(ctx, m, "admin", "admin@example.com", "admin123"))
	require.NoError(t, SeedAdmin(ctx, m, "admin", "admin@example.com", "other"))

	u, err := m.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.NoError(t, auth.CheckPassword(u.PasswordHash, "admin123"))

	_, err = m.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = m.CreateUser(ctx, models.User{Username: "admin"})
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestSeedSample_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, SeedSample(ctx, m))
	require.NoError(t, SeedSample(ctx, m))

	homes, _ := m.ListHomes(ctx)
	projects, _ := m.ListProjects(ctx)
	assert.Len(t, homes, 1)
	assert.Len(t, projects, 1)
}

func TestMemory_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.CreateContact(ctx, models.Contact{Name: "x"})
		}()
	}
	wg.Wait()

	items, _ := m.ListContacts(ctx)
	assert.Len(t, items, 50)
	seen := map[int]bool{}
	for _, c := range items {
		assert.False(t, seen[c.ID])
		seen[c.ID] = true
	}
}
