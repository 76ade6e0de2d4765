package book

import (
	"regexp"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Field is a validated scalar value held by a Record.
// Values are only obtained through their constructors, which either return
// a valid value or a *FormatError.
type Field interface {
	String() string
	Equal(other Field) bool
}

// Name is a non-empty contact name.
type Name struct {
	value string
}

// NewName trims raw and rejects the empty string.
func NewName(raw string) (Name, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Name{}, newFormatError("name", raw, config.ErrEmptyName)
	}
	return Name{value: v}, nil
}

func (n Name) String() string { return n.value }

// Equal reports whether other is a Name with the same value.
func (n Name) Equal(other Field) bool {
	o, ok := other.(Name)
	return ok && o.value == n.value
}

// phonePattern is an optional leading plus followed by digits only.
var phonePattern = regexp.MustCompile(`^\+?\d+$`)

// ValidPhone reports whether s, once trimmed, is a phone number.
func ValidPhone(s string) bool {
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// CheckPhone returns the trimmed phone or a *FormatError.
func CheckPhone(raw string) (string, error) {
	if !ValidPhone(raw) {
		return "", newFormatError("phone", raw, config.ErrPhoneFormat)
	}
	return strings.TrimSpace(raw), nil
}
