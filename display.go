package contactbook

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	frameOpen  = "<<<<<<<<"
	frameClose = ">>>>>>>>"

	// NoContactsMessage is shown by every read command before the first add.
	NoContactsMessage = "You have no contacts yet. Run 'contacts add' to add a contact."
	SavedMessage      = "Successfully saved contact."
)

var headerStyle = lipgloss.NewStyle().Bold(true)

// Header renders a section title such as "==[ Contacts ]==".
func Header(title string) string {
	return headerStyle.Render(fmt.Sprintf("==[ %s ]==", title))
}

// FormatContact returns c framed between delimiter lines.
func FormatContact(c Contact) string {
	var b strings.Builder
	b.WriteString(frameOpen)
	b.WriteByte('\n')
	b.WriteString(fmt.Sprintf("Name:  %s\n", cleanField(c.Name)))
	b.WriteString(fmt.Sprintf("Phone: %s\n", cleanField(c.Phone)))
	b.WriteString(fmt.Sprintf("Email: %s\n", cleanField(c.Email)))
	b.WriteString(frameClose)
	return b.String()
}

// FormatList renders the full listing: a header, then every contact in
// stored order followed by a blank line.
func FormatList(contacts []Contact) string {
	var b strings.Builder
	b.WriteString(Header("Contacts"))
	b.WriteByte('\n')
	for _, c := range contacts {
		b.WriteString(FormatContact(c))
		b.WriteString("\n\n")
	}
	return b.String()
}

func FormatCount(n int) string {
	return fmt.Sprintf("You have %d contacts.", n)
}
