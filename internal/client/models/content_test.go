package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_TechnologyList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: nil},
		{name: "whitespace only", in: "  ", want: nil},
		{name: "single", in: "Go", want: []string{"Go"}},
		{name: "trimmed", in: " Go , React,PostgreSQL ", want: []string{"Go", "React", "PostgreSQL"}},
		{name: "blank items dropped", in: "Go,, ,Docker", want: []string{"Go", "Docker"}},
		{name: "duplicates kept", in: "Go,Go", want: []string{"Go", "Go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Project{Technologies: tt.in}
			assert.Equal(t, tt.want, p.TechnologyList())
		})
	}
}

func TestFirst(t *testing.T) {
	h, ok := First([]Home{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}})
	require.True(t, ok)
	assert.Equal(t, 1, h.ID)

	_, ok = First([]Home{})
	assert.False(t, ok)

	_, ok = First[About](nil)
	assert.False(t, ok)
}

func TestProject_CreatePayloadOmitsID(t *testing.T) {
	b, err := json.Marshal(Project{Name: "n", Description: "d", Message: "m"})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	_, hasID := raw["id"]
	assert.False(t, hasID)

	b, err = json.Marshal(Project{ID: 7, Name: "n"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"id":7`)
}

func TestContactForm_TrimmedAndComplete(t *testing.T) {
	f := ContactForm{Name: " Ann ", Email: "a@b.c ", Phone: " 1", Message: "\thi\n"}
	assert.Equal(t, ContactForm{Name: "Ann", Email: "a@b.c", Phone: "1", Message: "hi"}, f.Trimmed())
	assert.True(t, f.Complete())

	blanks := []ContactForm{
		{Name: " ", Email: "e", Phone: "p", Message: "m"},
		{Name: "n", Email: "", Phone: "p", Message: "m"},
		{Name: "n", Email: "e", Phone: "\t", Message: "m"},
		{Name: "n", Email: "e", Phone: "p", Message: "   "},
	}
	for _, b := range blanks {
		assert.False(t, b.Complete(), "%+v", b)
	}
}
