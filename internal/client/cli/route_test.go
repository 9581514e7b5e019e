package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocation(t *testing.T) {
	tests := []struct {
		in   string
		want Location
	}{
		{"/admin", Location{Admin: true}},
		{"/admin/", Location{Admin: true}},
		{"#admin", Location{Admin: true}},
		{"#/admin", Location{Admin: true}},
		{"https://portfolio.example/admin", Location{Admin: true}},
		{"https://portfolio.example/#admin", Location{Admin: true}},
		{"/", Location{Section: SectionHome}},
		{"", Location{Section: SectionHome}},
		{"#about", Location{Section: SectionAbout}},
		{"/#projects", Location{Section: SectionProjects}},
		{"#Contact", Location{Section: SectionContact}},
		{"/administrator", Location{Section: SectionHome}},
		{"#unknown", Location{Section: SectionHome}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLocation(tt.in))
			assert.Equal(t, tt.want.Admin, IsAdminLocation(tt.in))
		})
	}
}
