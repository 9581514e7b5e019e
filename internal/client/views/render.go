package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/portfolio/internal/client/models"
)

func RenderHome(w io.Writer, s Snapshot[models.Home]) error {
	if done, err := renderState(w, s.Status, s.Message); done {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", s.Data.Title, s.Data.Description)
	return err
}

func RenderAbout(w io.Writer, s Snapshot[models.About]) error {
	if done, err := renderState(w, s.Status, s.Message); done {
		return err
	}
	_, err := fmt.Fprintf(w, "About\n\n%s\n", s.Data.Content)
	return err
}

func RenderProjects(w io.Writer, s Snapshot[[]models.Project]) error {
	if done, err := renderState(w, s.Status, s.Message); done {
		return err
	}
	if len(s.Data) == 0 {
		_, err := fmt.Fprintln(w, "No projects yet.")
		return err
	}

	var b strings.Builder
	for i, p := range s.Data {
		if i > 0 {
			b.WriteString("\n")
		}
		writeProject(&b, p)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeProject(b *strings.Builder, p models.Project) {
	fmt.Fprintf(b, "#%d %s\n", p.ID, p.Name)
	if p.Description != "" {
		fmt.Fprintf(b, "  %s\n", p.Description)
	}
	if p.Message != "" {
		fmt.Fprintf(b, "  %s\n", p.Message)
	}
	if techs := p.TechnologyList(); len(techs) > 0 {
		fmt.Fprintf(b, "  Technologies: %s\n", strings.Join(techs, " | "))
	}
	if p.GithubURL != "" {
		fmt.Fprintf(b, "  GitHub: %s\n", p.GithubURL)
	}
	if p.DemoURL != "" {
		fmt.Fprintf(b, "  Demo: %s\n", p.DemoURL)
	}
}

// renderState writes the non-loaded states and reports whether it did.
func renderState(w io.Writer, status Status, message string) (bool, error) {
	var err error
	switch status {
	case StatusLoading:
		_, err = fmt.Fprintln(w, "Loading...")
	case StatusError:
		_, err = fmt.Fprintf(w, "Error: %s\n", message)
	case StatusAbsent:
		_, err = fmt.Fprintln(w, message)
	default:
		return false, nil
	}
	return true, err
}
