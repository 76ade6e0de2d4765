package book

import (
	"log/slog"
	"slices"

	"github.com/tartampluch/go-contacts/internal/config"
)

// AddressBook maps contact names to records.
// The map is private; iteration goes through Records, which follows
// insertion order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord inserts r unless a record with the same name exists.
// A collision never replaces the stored record.
func (b *AddressBook) AddRecord(r *Record) bool {
	key := r.Name()
	if _, exists := b.records[key]; exists {
		slog.Debug(config.MsgRecordExists,
			config.LogKeyComponent, config.CompBook,
			config.LogKeyName, key)
		return false
	}
	b.records[key] = r
	b.order = append(b.order, key)
	slog.Debug(config.MsgRecordAdded,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, key)
	return true
}

// Find looks a record up by name. Absence is a normal outcome.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	if !ok {
		slog.Debug(config.MsgRecordMissing,
			config.LogKeyComponent, config.CompBook,
			config.LogKeyName, name)
	}
	return r, ok
}

// Delete removes the record for name and reports whether it existed.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.Find(name); !ok {
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
	slog.Debug(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, name)
	return true
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}
