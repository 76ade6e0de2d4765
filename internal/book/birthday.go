package book

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Birthday is a calendar date entered as DD.MM.YYYY.
type Birthday struct {
	value time.Time
}

// ParseBirthday accepts DD.MM.YYYY (day and month may be a single digit).
// Impossible dates such as 31.02.2024 are rejected by time.Parse itself.
func ParseBirthday(text string) (Birthday, error) {
	t, err := time.Parse(config.DateFormatBirthdayIn, text)
	if err != nil {
		return Birthday{}, newFormatError("birthday", text, config.ErrDateFormat)
	}
	return Birthday{value: t}, nil
}

// String renders the canonical zero-padded DD.MM.YYYY form.
func (b Birthday) String() string {
	return b.value.Format(config.DateFormatBirthday)
}

// ISO renders YYYY-MM-DD.
func (b Birthday) ISO() string {
	return b.value.Format(config.DateFormatISO)
}

// Equal reports whether other is a Birthday on the same date.
func (b Birthday) Equal(other Field) bool {
	o, ok := other.(Birthday)
	return ok && o.value.Equal(b.value)
}

func (b Birthday) Month() time.Month { return b.value.Month() }

func (b Birthday) Day() int { return b.value.Day() }
