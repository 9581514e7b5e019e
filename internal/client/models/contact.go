package models

import "strings"

// ContactForm is the payload of the public contact endpoint.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from all fields.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}

// Complete reports whether every field is non-blank after trimming.
func (f ContactForm) Complete() bool {
	t := f.Trimmed()
	return t.Name != "" && t.Email != "" && t.Phone != "" && t.Message != ""
}
