package contactbook

import (
	"strings"
	"testing"
)

func TestFormatContact(t *testing.T) {
	out := FormatContact(NewContact("Ann", "555-1000", "ann@x.com"))
	want := "<<<<<<<<\nName:  Ann\nPhone: 555-1000\nEmail: ann@x.com\n>>>>>>>>"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestFormatContact_StripsStoredNewlines(t *testing.T) {
	out := FormatContact(NewContact("Ann\n", "555-1000\r\n", "ann@x.com\n"))
	if strings.Contains(out, "\n\n") || strings.Contains(out, "\r") {
		t.Errorf("unexpected blank lines in:\n%q", out)
	}
}

func TestFormatList(t *testing.T) {
	out := FormatList([]Contact{
		NewContact("Ann", "555-1000", "ann@x.com"),
		NewContact("Bo", "555-2000", "bo@x.com"),
	})
	if !strings.Contains(out, "==[ Contacts ]==") {
		t.Errorf("missing header in:\n%s", out)
	}
	ann, bo := strings.Index(out, "Name:  Ann"), strings.Index(out, "Name:  Bo")
	if ann < 0 || bo < 0 || ann > bo {
		t.Errorf("expected Ann before Bo in:\n%s", out)
	}
	if got := strings.Count(out, "<<<<<<<<"); got != 2 {
		t.Errorf("open frames: got %d, want 2", got)
	}
	if got := strings.Count(out, ">>>>>>>>\n\n"); got != 2 {
		t.Errorf("closed frames: got %d, want 2", got)
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "You have 0 contacts."},
		{1, "You have 1 contacts."},
		{42, "You have 42 contacts."},
	}
	for _, tt := range tests {
		if got := FormatCount(tt.n); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
