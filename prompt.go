package contactbook

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks the user for a new contact.
type Prompter interface {
	PromptContact() (Contact, error)
}

// NewPrompter returns a form-based prompter when in is a terminal and a
// plain line reader otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &FormPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads one line per field. Only the line terminator is
// removed from each answer.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) PromptContact() (Contact, error) {
	fmt.Fprintln(p.out, Header("NEW CONTACT"))
	name, err := p.ask("Contact Name: ")
	if err != nil {
		return Contact{}, err
	}
	phone, err := p.ask("Contact Phone: ")
	if err != nil {
		return Contact{}, err
	}
	email, err := p.ask("Contact Email: ")
	if err != nil {
		return Contact{}, err
	}
	return NewContact(name, phone, email), nil
}

func (p *LinePrompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", fmt.Errorf("couldn't read line: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// FormPrompter asks for the contact with an interactive huh form.
type FormPrompter struct{}

func (p *FormPrompter) PromptContact() (Contact, error) {
	var name, phone, email string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Contact Name").Value(&name),
			huh.NewInput().Title("Contact Phone").Value(&phone),
			huh.NewInput().Title("Contact Email").Value(&email),
		).Title(Header("NEW CONTACT")),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return Contact{}, fmt.Errorf("cancelled: %w", err)
		}
		return Contact{}, err
	}
	return NewContact(name, phone, email), nil
}
