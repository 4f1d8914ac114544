package contactbook

import "strings"

// Contact is a single entry in the contact book. Fields are stored exactly as
// entered; nothing is trimmed or validated.
type Contact struct {
	Name  string
	Phone string
	Email string
}

func NewContact(name, phone, email string) Contact {
	return Contact{Name: name, Phone: phone, Email: email}
}

// cleanField drops the trailing line terminator that older data files keep
// from the interactive prompt.
func cleanField(s string) string {
	return strings.TrimRight(s, "\r\n")
}
