package cli

import (
	"net/url"
	"strings"
)

// Public sections a location fragment may point at.
const (
	SectionHome     = "home"
	SectionAbout    = "about"
	SectionProjects = "projects"
	SectionContact  = "contact"
)

// Location is a parsed start location such as "/admin", "#projects" or
// "https://example.org/#admin".
type Location struct {
	Admin   bool
	Section string
}

// ParseLocation decides which screen a location opens. The admin area is
// selected by the path /admin or the fragment admin (or /admin). Anything
// else is a public section, home by default.
func ParseLocation(raw string) Location {
	raw = strings.TrimSpace(raw)

	var path, fragment string
	if u, err := url.Parse(raw); err == nil {
		path, fragment = u.Path, u.Fragment
	} else {
		path, fragment, _ = strings.Cut(raw, "#")
	}

	if strings.TrimRight(path, "/") == "/admin" {
		return Location{Admin: true}
	}

	fragment = strings.ToLower(strings.Trim(fragment, "/"))
	switch fragment {
	case "admin":
		return Location{Admin: true}
	case SectionAbout, SectionProjects, SectionContact:
		return Location{Section: fragment}
	default:
		return Location{Section: SectionHome}
	}
}

func IsAdminLocation(raw string) bool {
	return ParseLocation(raw).Admin
}
