package book

import (
	"cmp"
	"log/slog"
	"slices"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Greeting is a birthday falling inside the horizon, with the day on which
// the contact should be congratulated.
type Greeting struct {
	Name     string
	Birthday Birthday

	// Occurrence is the actual date of the birthday this time around.
	Occurrence time.Time

	// GreetingDate is Occurrence moved off the weekend onto Monday.
	GreetingDate time.Time
}

// UpcomingBirthdays lists the birthdays whose next occurrence lies within
// horizonDays of reference (reference day included, horizon day excluded),
// ordered by greeting date then name.
func (b *AddressBook) UpcomingBirthdays(reference time.Time, horizonDays int) []Greeting {
	today := startOfDay(reference)
	var out []Greeting

	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := nextOccurrence(today, bday)
		if daysBetween(today, next) >= horizonDays {
			continue
		}

		out = append(out, Greeting{
			Name:         r.Name(),
			Birthday:     bday,
			Occurrence:   next,
			GreetingDate: shiftWeekend(next),
		})
	}

	slices.SortFunc(out, func(a, b Greeting) int {
		if c := a.GreetingDate.Compare(b.GreetingDate); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	slog.Debug(config.MsgUpcomingScan,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyReference, today.Format(config.DateFormatISO),
		config.LogKeyHorizon, horizonDays,
		config.LogKeyCount, len(out))
	return out
}

// nextOccurrence returns the first date on or after today with the
// birthday's month and day. time.Date turns Feb 29 into Mar 1 in non-leap years.
func nextOccurrence(today time.Time, bday Birthday) time.Time {
	loc := today.Location()
	candidate := time.Date(today.Year(), bday.Month(), bday.Day(), 0, 0, 0, 0, loc)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, bday.Month(), bday.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}

func shiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, 2)
	case time.Sunday:
		return d.AddDate(0, 0, 1)
	default:
		return d
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both at midnight.
// Dates are compared in UTC so DST transitions do not skew the count.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
