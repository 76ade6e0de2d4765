package book_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

func TestParseBirthday_RoundTrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"01.02.1990", "01.02.1990"},
		{"31.12.1999", "31.12.1999"},
		{"29.02.2024", "29.02.2024"},
		{"1.2.1990", "01.02.1990"},
		{"5.11.2001", "05.11.2001"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			b, err := book.ParseBirthday(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, b.String())

			// Rendering is a fixed point of parsing.
			again, err := book.ParseBirthday(b.String())
			require.NoError(t, err)
			assert.True(t, b.Equal(again))
		})
	}
}

func TestParseBirthday_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"31.02.2024",
		"30.02.2020",
		"29.02.2023",
		"32.01.2020",
		"01.13.2020",
		"00.01.2020",
		"01-02-1990",
		"01/02/1990",
		"1990.02.01",
		"01.02.90",
		"aa.bb.cccc",
		"01.02.1990 ",
		" 01.02.1990",
		"01.02.1990.",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := book.ParseBirthday(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, book.ErrInvalidFormat))

			var fe *book.FormatError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, "birthday", fe.Field)
			assert.Equal(t, in, fe.Value)
			assert.Equal(t, config.ErrDateFormat, fe.Error())
		})
	}
}

func TestBirthday_ISO(t *testing.T) {
	b, err := book.ParseBirthday("7.3.1984")
	require.NoError(t, err)
	assert.Equal(t, "1984-03-07", b.ISO())
}

func TestNewName(t *testing.T) {
	n, err := book.NewName("  Alice ")
	require.NoError(t, err)
	assert.Equal(t, "Alice", n.String())

	other, _ := book.NewName("Alice")
	assert.True(t, n.Equal(other))

	_, err = book.NewName("   ")
	assert.ErrorIs(t, err, book.ErrInvalidFormat)

	// A Name never equals a Field of another kind.
	bday, _ := book.ParseBirthday("01.01.2000")
	assert.False(t, n.Equal(bday))
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		raw   string
		valid bool
	}{
		{"12345", true},
		{"+380501234567", true},
		{"  0987  ", true},
		{"", false},
		{"+", false},
		{"++123", false},
		{"12-34", false},
		{"123a", false},
		{"1 2", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.valid, book.ValidPhone(tt.raw))
		})
	}

	p, err := book.CheckPhone(" +123 ")
	require.NoError(t, err)
	assert.Equal(t, "+123", p)

	_, err = book.CheckPhone("abc")
	assert.ErrorIs(t, err, book.ErrInvalidFormat)
}

func TestRecord_Phones(t *testing.T) {
	r, err := book.NewRecord("Alice")
	require.NoError(t, err)

	assert.True(t, r.AddPhone("12345"))
	assert.True(t, r.AddPhone("67890"))
	assert.False(t, r.AddPhone("12345"), "Duplicate phone must not be added twice")
	assert.Equal(t, []string{"12345", "67890"}, r.Phones())

	assert.True(t, r.FindPhone("67890"))
	assert.False(t, r.FindPhone("00000"))

	// Phones returns a copy.
	phones := r.Phones()
	phones[0] = "mutated"
	assert.Equal(t, "12345", r.Phones()[0])

	r.ReplacePhones("555")
	assert.Equal(t, []string{"555"}, r.Phones())
}

func TestRecord_Birthday(t *testing.T) {
	r, err := book.NewRecord("Alice")
	require.NoError(t, err)

	_, ok := r.Birthday()
	assert.False(t, ok)

	require.NoError(t, r.AddBirthday("01.02.1990"))
	b, ok := r.Birthday()
	require.True(t, ok)
	assert.Equal(t, "01.02.1990", b.String())

	// Failed parse leaves the stored birthday unchanged.
	err = r.AddBirthday("31.02.2024")
	assert.ErrorIs(t, err, book.ErrInvalidFormat)
	b, _ = r.Birthday()
	assert.Equal(t, "01.02.1990", b.String())

	// A later set overwrites.
	require.NoError(t, r.AddBirthday("3.4.1991"))
	b, _ = r.Birthday()
	assert.Equal(t, "03.04.1991", b.String())
}

func TestRecord_String(t *testing.T) {
	r, err := book.NewRecord("Bob")
	require.NoError(t, err)
	assert.Equal(t, "Bob: ", r.String(), "Empty phones must render without failing")

	r.AddPhone("111")
	r.AddPhone("222")
	assert.Equal(t, "Bob: 111, 222", r.String())

	require.NoError(t, r.AddBirthday("09.09.1999"))
	assert.Equal(t, "Bob: 111, 222 (birthday: 09.09.1999)", r.String())
}

func TestNewRecord_EmptyName(t *testing.T) {
	r, err := book.NewRecord("")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, book.ErrInvalidFormat)
}
