package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/portfolio/internal/client/forms"
	"github.com/dmitrijs2005/portfolio/internal/client/views"
)

// showView mounts a fresh view, waits for its fetch and renders the result.
func showView[T any](ctx context.Context, v *views.View[T], w io.Writer, render func(io.Writer, views.Snapshot[T]) error) error {
	v.Mount(ctx)
	defer v.Unmount()

	if err := v.Wait(ctx); err != nil {
		return err
	}
	return render(w, v.Snapshot())
}

func (a *App) Home(ctx context.Context) error {
	return showView(ctx, views.NewHomeView(a.api, a.logger), a.out, views.RenderHome)
}

func (a *App) About(ctx context.Context) error {
	return showView(ctx, views.NewAboutView(a.api, a.logger), a.out, views.RenderAbout)
}

func (a *App) Projects(ctx context.Context) error {
	return showView(ctx, views.NewProjectsView(a.api, a.logger), a.out, views.RenderProjects)
}

// Contact asks for the four fields and submits the contact form. Fields
// kept from a failed attempt are offered as defaults.
func (a *App) Contact(ctx context.Context) error {
	f := a.contactForm.Fields()
	var err error

	if f.Name, err = promptKeep(a.reader, a.out, "Your name", f.Name); err != nil {
		return err
	}
	if f.Email, err = promptKeep(a.reader, a.out, "Your email", f.Email); err != nil {
		return err
	}
	if f.Phone, err = promptKeep(a.reader, a.out, "Your phone", f.Phone); err != nil {
		return err
	}
	if f.Message, err = promptKeepMultiline(a.reader, a.out, "Your message", f.Message); err != nil {
		return err
	}

	a.contactForm.SetFields(f)
	err = a.contactForm.Submit(ctx)
	a.flushNotice()
	if errors.Is(err, forms.ErrIncomplete) {
		return nil
	}
	return err
}

// Open navigates to a location. Admin locations enter the admin area;
// anything else leaves it and shows the named public section.
func (a *App) Open(ctx context.Context, location string) error {
	loc := ParseLocation(location)

	if loc.Admin {
		a.adminArea = true
		if !a.isLoggedIn() {
			fmt.Fprintln(a.out, "Admin area. Type 'login' to sign in.")
			return nil
		}
		return a.Dashboard(ctx)
	}

	a.adminArea = false
	switch loc.Section {
	case SectionAbout:
		return a.About(ctx)
	case SectionProjects:
		return a.Projects(ctx)
	case SectionContact:
		return a.Contact(ctx)
	default:
		return a.Home(ctx)
	}
}
