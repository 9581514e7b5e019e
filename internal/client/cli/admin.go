package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/client/admin"
	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

var errAdminLocked = errors.New("admin area is locked")

const (
	msgResumeDraft = "Resuming your unsaved changes."
	msgDraftKept   = "Your changes are kept. Run %s to retry or discard to drop them.\n"
)

// requireAdmin reports whether admin commands may run, explaining why not.
func (a *App) requireAdmin() error {
	if !a.adminArea {
		fmt.Fprintln(a.out, "Open the admin area first: open /admin")
		return errAdminLocked
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, admin.MsgLoginRequired)
		return errAdminLocked
	}
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	err := a.dashboard.Open(ctx, admin.TabDashboard)
	a.flushNotice()
	if err != nil {
		return err
	}

	s := a.dashboard.Summary()
	fmt.Fprintf(a.out, "Dashboard\n  Contacts: %d\n  Projects: %d\n", s.Contacts, s.Projects)
	fmt.Fprintf(a.out, "Tabs: %s\n", joinTabs())
	return nil
}

func joinTabs() string {
	names := make([]string, len(admin.Tabs))
	for i, t := range admin.Tabs {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

func (a *App) Contacts(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	err := a.dashboard.Open(ctx, admin.TabContacts)
	a.flushNotice()
	if err != nil {
		return err
	}
	a.printContacts(a.dashboard.Contacts.Contacts())
	return nil
}

func (a *App) printContacts(items []models.ContactMessage) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No contact messages.")
		return
	}
	for _, c := range items {
		fmt.Fprintf(a.out, "#%d %s <%s> %s\n", c.ID, c.Name, c.Email, c.Phone)
		if !c.CreatedAt.IsZero() {
			fmt.Fprintf(a.out, "  received %s\n", c.CreatedAt.Format("2006-01-02 15:04"))
		}
		for _, line := range strings.Split(c.Message, "\n") {
			fmt.Fprintf(a.out, "  %s\n", line)
		}
	}
}

func (a *App) DeleteContact(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	err := a.dashboard.Contacts.Delete(ctx, id, admin.ConfirmFunc(a.confirm))
	a.flushNotice()
	return err
}

func (a *App) EditHome(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	ed := a.dashboard.Home
	if err := a.dashboard.Open(ctx, admin.TabHome); err != nil {
		a.flushNotice()
		return err
	}

	if ed.Mode() == admin.ModeEdit {
		fmt.Fprintln(a.out, msgResumeDraft)
	} else {
		ed.BeginEdit()
	}
	draft := ed.Draft()
	var err error
	if draft.Title, err = promptKeep(a.reader, a.out, "Title", draft.Title); err != nil {
		ed.Cancel()
		return err
	}
	if draft.Description, err = promptKeepMultiline(a.reader, a.out, "Description", draft.Description); err != nil {
		ed.Cancel()
		return err
	}
	if err := ed.SetDraft(draft); err != nil {
		return err
	}

	err = ed.Save(ctx)
	a.flushNotice()
	if err != nil {
		fmt.Fprintf(a.out, msgDraftKept, "edithome")
	}
	return err
}

func (a *App) EditAbout(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	ed := a.dashboard.About
	if err := a.dashboard.Open(ctx, admin.TabAbout); err != nil {
		a.flushNotice()
		return err
	}

	if ed.Mode() == admin.ModeEdit {
		fmt.Fprintln(a.out, msgResumeDraft)
	} else {
		ed.BeginEdit()
	}
	draft := ed.Draft()
	var err error
	if draft.Content, err = promptKeepMultiline(a.reader, a.out, "Content", draft.Content); err != nil {
		ed.Cancel()
		return err
	}
	if err := ed.SetDraft(draft); err != nil {
		return err
	}

	err = ed.Save(ctx)
	a.flushNotice()
	if err != nil {
		fmt.Fprintf(a.out, msgDraftKept, "editabout")
	}
	return err
}

func (a *App) AddProject(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	ed := a.dashboard.Projects
	if ed.Creating() {
		fmt.Fprintln(a.out, msgResumeDraft)
	} else {
		ed.BeginCreate()
	}
	return a.fillAndSaveProject(ctx, "addproject")
}

func (a *App) EditProject(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	ed := a.dashboard.Projects
	if err := a.dashboard.Open(ctx, admin.TabProjects); err != nil {
		a.flushNotice()
		return err
	}
	if ed.Mode() == admin.ModeEdit && !ed.Creating() && ed.Draft().ID == id {
		fmt.Fprintln(a.out, msgResumeDraft)
	} else if err := ed.BeginEdit(id); err != nil {
		fmt.Fprintf(a.out, "No project #%d\n", id)
		return err
	}
	return a.fillAndSaveProject(ctx, fmt.Sprintf("editproject %d", id))
}

// fillAndSaveProject prompts over the draft and saves it. A failed save
// leaves the draft in place for retry.
func (a *App) fillAndSaveProject(ctx context.Context, retry string) error {
	ed := a.dashboard.Projects
	p := ed.Draft()

	fields := []struct {
		label string
		value *string
		long  bool
	}{
		{"Name", &p.Name, false},
		{"Description", &p.Description, true},
		{"Message", &p.Message, false},
		{"Image URL", &p.ImageURL, false},
		{"Technologies (comma separated)", &p.Technologies, false},
		{"GitHub URL", &p.GithubURL, false},
		{"Demo URL", &p.DemoURL, false},
	}
	for _, f := range fields {
		var v string
		var err error
		if f.long {
			v, err = promptKeepMultiline(a.reader, a.out, f.label, *f.value)
		} else {
			v, err = promptKeep(a.reader, a.out, f.label, *f.value)
		}
		if err != nil {
			ed.Cancel()
			return err
		}
		*f.value = v
	}

	if err := ed.SetDraft(p); err != nil {
		return err
	}
	err := ed.Save(ctx)
	a.flushNotice()
	if err != nil {
		fmt.Fprintf(a.out, msgDraftKept, retry)
	}
	return err
}

// Discard drops every unsaved draft kept after a failed save.
func (a *App) Discard(context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	dropped := false
	if a.dashboard.Home.Mode() == admin.ModeEdit {
		a.dashboard.Home.Cancel()
		dropped = true
	}
	if a.dashboard.About.Mode() == admin.ModeEdit {
		a.dashboard.About.Cancel()
		dropped = true
	}
	if a.dashboard.Projects.Mode() == admin.ModeEdit {
		a.dashboard.Projects.Cancel()
		dropped = true
	}
	if dropped {
		fmt.Fprintln(a.out, "Unsaved changes discarded.")
	} else {
		fmt.Fprintln(a.out, "Nothing to discard.")
	}
	return nil
}

func (a *App) DeleteProject(ctx context.Context, id int) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	err := a.dashboard.Projects.Delete(ctx, id, admin.ConfirmFunc(a.confirm))
	a.flushNotice()
	return err
}
