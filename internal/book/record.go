package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record is one contact: a name, its phones in insertion order and an
// optional birthday.
type Record struct {
	name     Name
	phones   []string
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record key.
func (r *Record) Name() string { return r.name.String() }

// Phones returns a copy of the stored phones.
func (r *Record) Phones() []string {
	return slices.Clone(r.phones)
}

// AddPhone appends value unless it is already present and reports whether
// it was added. Format checks belong to the caller.
func (r *Record) AddPhone(value string) bool {
	if r.FindPhone(value) {
		return false
	}
	r.phones = append(r.phones, value)
	return true
}

// FindPhone reports whether value is stored on the record.
func (r *Record) FindPhone(value string) bool {
	return slices.Contains(r.phones, value)
}

// ReplacePhones drops every stored phone and keeps value alone.
func (r *Record) ReplacePhones(value string) {
	r.phones = []string{value}
}

// AddBirthday parses text and stores it, overwriting any previous birthday.
// On error the record is left untouched.
func (r *Record) AddBirthday(text string) error {
	b, err := ParseBirthday(text)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) String() string {
	phones := strings.Join(r.phones, config.PhoneSeparator)
	if r.birthday != nil {
		return fmt.Sprintf(config.FormatRecordBirthday, r.name, phones, r.birthday)
	}
	return fmt.Sprintf(config.FormatRecord, r.name, phones)
}
