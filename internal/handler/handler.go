// Package handler implements the assistant commands.
//
// Each command is a Func that validates its arguments, works on the
// AddressBook and returns either display text or an error. Wrap turns a Func
// into a Handler, which always returns text: a narrow translation layer maps
// known error kinds to messages with a usage hint, and a catch-all layer
// renders whatever is left as "Error: <message>".
package handler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/export"
	"github.com/tartampluch/go-contacts/internal/messages"
)

// Func is the unwrapped shape of a command.
type Func func(args []string, b *book.AddressBook) (string, error)

// Handler is the boundary shape consumed by the read-loop.
type Handler func(args []string, b *book.AddressBook) string

// Service carries what the commands need besides the book.
type Service struct {
	clock       book.Clock
	messages    *messages.Catalog
	horizonDays int
}

// New builds a Service. A non-positive horizon falls back to the default.
func New(clock book.Clock, catalog *messages.Catalog, horizonDays int) *Service {
	if clock == nil {
		clock = book.RealClock{}
	}
	if horizonDays <= 0 {
		horizonDays = config.DefaultHorizonDays
	}
	return &Service{clock: clock, messages: catalog, horizonDays: horizonDays}
}

// Handlers returns every command, wrapped, keyed by verb.
func (s *Service) Handlers() map[string]Handler {
	funcs := map[string]Func{
		config.CmdAdd:          s.AddContact,
		config.CmdChange:       s.ChangeContact,
		config.CmdPhone:        s.ShowPhone,
		config.CmdAll:          s.ListContacts,
		config.CmdDelete:       s.DeleteContact,
		config.CmdAddBirthday:  s.AddBirthday,
		config.CmdShowBirthday: s.ShowBirthday,
		config.CmdBirthdays:    s.Birthdays,
		config.CmdExport:       s.ExportVCards,
		config.CmdCalendar:     s.ExportCalendar,
	}

	out := make(map[string]Handler, len(funcs))
	for verb, fn := range funcs {
		out[verb] = s.Wrap(verb, fn)
	}
	return out
}

func (s *Service) text(id string) string {
	return s.messages.Get(id)
}

// contactName normalizes a raw argument into the key the book stores.
func contactName(raw string) (string, error) {
	n, err := book.NewName(raw)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func findRecord(b *book.AddressBook, raw string) (*book.Record, error) {
	name, err := contactName(raw)
	if err != nil {
		return nil, err
	}
	r, ok := b.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	return r, nil
}

// AddContact creates the contact when needed and adds a phone to it.
func (s *Service) AddContact(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 2); err != nil {
		return "", err
	}
	name, err := contactName(args[0])
	if err != nil {
		return "", err
	}
	phone, err := book.CheckPhone(args[1])
	if err != nil {
		return "", err
	}

	msg := s.text(config.MsgIDContactUpdated)
	record, ok := b.Find(name)
	if !ok {
		record, err = book.NewRecord(name)
		if err != nil {
			return "", err
		}
		if !b.AddRecord(record) {
			return "", fmt.Errorf("%s: %s", config.MsgRecordExists, name)
		}
		msg = s.text(config.MsgIDContactAdded)
	}

	if !record.AddPhone(phone) {
		return s.text(config.MsgIDPhoneExists), nil
	}
	return msg, nil
}

// ChangeContact replaces the phones of an existing contact with a new one.
func (s *Service) ChangeContact(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 2); err != nil {
		return "", err
	}
	phone, err := book.CheckPhone(args[1])
	if err != nil {
		return "", err
	}
	record, err := findRecord(b, args[0])
	if err != nil {
		return "", err
	}
	record.ReplacePhones(phone)
	return s.text(config.MsgIDContactChanged), nil
}

// ShowPhone returns the phones of a contact.
func (s *Service) ShowPhone(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 1); err != nil {
		return "", err
	}
	record, err := findRecord(b, args[0])
	if err != nil {
		return "", err
	}
	return strings.Join(record.Phones(), config.PhoneSeparator), nil
}

// ListContacts renders one line per record in book order.
func (s *Service) ListContacts(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 0); err != nil {
		return "", err
	}
	if b.Len() == 0 {
		return s.text(config.MsgIDContactsEmpty), nil
	}

	lines := make([]string, 0, b.Len())
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact removes a contact.
func (s *Service) DeleteContact(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 1); err != nil {
		return "", err
	}
	name, err := contactName(args[0])
	if err != nil {
		return "", err
	}
	if !b.Delete(name) {
		return "", fmt.Errorf("%w: %s", book.ErrContactNotFound, name)
	}
	return s.text(config.MsgIDContactDeleted), nil
}

// AddBirthday sets the birthday of an existing contact.
func (s *Service) AddBirthday(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 2); err != nil {
		return "", err
	}
	record, err := findRecord(b, args[0])
	if err != nil {
		return "", err
	}
	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return s.text(config.MsgIDBirthdayAdded), nil
}

// ShowBirthday returns the birthday of a contact.
func (s *Service) ShowBirthday(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 1); err != nil {
		return "", err
	}
	record, err := findRecord(b, args[0])
	if err != nil {
		return "", err
	}
	bday, ok := record.Birthday()
	if !ok {
		return s.text(config.MsgIDBirthdayNotSet), nil
	}
	return fmt.Sprintf(config.FormatShowBirthday, record.Name(), bday), nil
}

// Birthdays lists who to congratulate within the horizon.
func (s *Service) Birthdays(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 0); err != nil {
		return "", err
	}
	greetings := b.UpcomingBirthdays(s.clock.Now(), s.horizonDays)
	if len(greetings) == 0 {
		return s.text(config.MsgIDNoUpcoming), nil
	}

	lines := make([]string, 0, len(greetings))
	for _, g := range greetings {
		lines = append(lines, fmt.Sprintf(config.FormatGreeting,
			g.GreetingDate.Weekday(),
			g.GreetingDate.Format(config.DateFormatBirthday),
			g.Name))
	}
	return strings.Join(lines, "\n"), nil
}

// ExportVCards prints the whole book as vCards.
func (s *Service) ExportVCards(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 0); err != nil {
		return "", err
	}
	if b.Len() == 0 {
		return s.text(config.MsgIDContactsEmpty), nil
	}

	var buf bytes.Buffer
	if err := export.WriteVCards(&buf, b); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}

// ExportCalendar prints the upcoming greetings as an iCalendar document.
func (s *Service) ExportCalendar(args []string, b *book.AddressBook) (string, error) {
	if err := arity(args, 0); err != nil {
		return "", err
	}
	now := s.clock.Now()

	var buf bytes.Buffer
	if err := export.WriteCalendar(&buf, b.UpcomingBirthdays(now, s.horizonDays), now); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\r\n"), nil
}
