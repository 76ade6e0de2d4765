// Package export renders the address book in interchange formats for display.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-vcard"
	"github.com/google/uuid"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// ContactUID derives a stable UUID from a contact name, so repeated exports
// of the same contact carry the same identifier.
func ContactUID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace+name)).String()
}

// WriteVCards encodes every record of b as a vCard 4.0, in book order.
func WriteVCards(w io.Writer, b *book.AddressBook) error {
	enc := vcard.NewEncoder(w)
	records := b.Records()

	for _, r := range records {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Debug(config.MsgExportFinished,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyCount, len(records))
	return nil
}

func toCard(r *book.Record) vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.DefaultVCardVersion)
	card.SetValue(vcard.FieldUID, "urn:uuid:"+ContactUID(r.Name()))
	card.SetValue(vcard.FieldFormattedName, r.Name())

	for _, p := range r.Phones() {
		card.AddValue(vcard.FieldTelephone, p)
	}
	if bday, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, bday.ISO())
	}
	return card
}
