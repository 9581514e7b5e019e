package admin

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/portfolio/internal/client/client"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

// fakeAPI is an in-memory backend. Setting an *Err field makes the matching
// calls fail.
type fakeAPI struct {
	mu sync.Mutex

	home     []models.Home
	about    []models.About
	projects []models.Project
	contacts []models.ContactMessage
	nextID   int

	loadErr   error
	writeErr  error
	deleteErr error

	calls []string
}

func newFakeAPI() *fakeAPI { return &fakeAPI{nextID: 100} }

func (f *fakeAPI) record(name string) {
	f.calls = append(f.calls, name)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) GetHome(context.Context) ([]models.Home, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetHome")
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.Home(nil), f.home...), nil
}

func (f *fakeAPI) GetAbout(context.Context) ([]models.About, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetAbout")
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.About(nil), f.about...), nil
}

func (f *fakeAPI) GetProjects(context.Context) ([]models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GetProjects")
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.Project(nil), f.projects...), nil
}

func (f *fakeAPI) ListContacts(context.Context) ([]models.ContactMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ListContacts")
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return append([]models.ContactMessage(nil), f.contacts...), nil
}

func (f *fakeAPI) DeleteContact(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteContact")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, c := range f.contacts {
		if c.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return &client.Error{Kind: client.KindNotFound, Status: 404, Detail: "Contact not found"}
}

func (f *fakeAPI) CreateHome(_ context.Context, h models.Home) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateHome")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	h.ID = f.nextID
	f.home = []models.Home{h}
	return nil
}

func (f *fakeAPI) UpdateHome(_ context.Context, h models.Home) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateHome")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.home = []models.Home{h}
	return nil
}

func (f *fakeAPI) CreateAbout(_ context.Context, a models.About) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateAbout")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	a.ID = f.nextID
	f.about = []models.About{a}
	return nil
}

func (f *fakeAPI) UpdateAbout(_ context.Context, a models.About) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateAbout")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.about = []models.About{a}
	return nil
}

func (f *fakeAPI) CreateProject(_ context.Context, p models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("CreateProject")
	if f.writeErr != nil {
		return f.writeErr
	}
	f.nextID++
	p.ID = f.nextID
	f.projects = append(f.projects, p)
	return nil
}

func (f *fakeAPI) UpdateProject(_ context.Context, p models.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("UpdateProject")
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.projects {
		if f.projects[i].ID == p.ID {
			f.projects[i] = p
			return nil
		}
	}
	return &client.Error{Kind: client.KindNotFound, Status: 404, Detail: "Project not found"}
}

func (f *fakeAPI) DeleteProject(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("DeleteProject")
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return nil
		}
	}
	return &client.Error{Kind: client.KindNotFound, Status: 404, Detail: "Project not found"}
}

func approve(string) bool { return true }
func decline(string) bool { return false }

func staticToken(tok string) client.TokenSource {
	return client.TokenFunc(func() string { return tok })
}
