package contactbook

import (
	"fmt"
	"io"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
)

// ContactCard converts c to a vCard 4.0. The UID is derived from the
// contact's fields so repeated exports produce the same cards.
func ContactCard(c Contact) vcard.Card {
	name, phone, email := cleanField(c.Name), cleanField(c.Phone), cleanField(c.Email)

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, "4.0")
	card.SetValue(vcard.FieldUID, ContactUID(c))
	card.SetValue(vcard.FieldFormattedName, name)
	if phone != "" {
		card.Add(vcard.FieldTelephone, &vcard.Field{Value: phone})
	}
	if email != "" {
		card.Add(vcard.FieldEmail, &vcard.Field{Value: email})
	}
	return card
}

func ContactUID(c Contact) string {
	key := cleanField(c.Name) + "\x00" + cleanField(c.Phone) + "\x00" + cleanField(c.Email)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

// WriteVCards encodes every contact as a vCard to w.
func WriteVCards(w io.Writer, contacts []Contact) error {
	enc := vcard.NewEncoder(w)
	for i, c := range contacts {
		if err := enc.Encode(ContactCard(c)); err != nil {
			return fmt.Errorf("failed to encode vcard %d: %w", i, err)
		}
	}
	return nil
}
