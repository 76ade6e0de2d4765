package book

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNextOccurrence covers past, future and same-day birthdays plus the
// leap-day normalization.
func TestNextOccurrence(t *testing.T) {
	// Reference "today": June 15th, 2025 (non-leap year).
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		expected time.Time
	}{
		{"Already passed this year", "01.01.1990", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Later this year", "31.12.1990", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"Today", "15.06.1990", today},
		{"Leapling in non-leap target year", "29.02.2000", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParseBirthday(tt.birthday)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, nextOccurrence(today, b))
		})
	}
}

func TestShiftWeekend(t *testing.T) {
	sat := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	sun := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	mon := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
	fri := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, mon, shiftWeekend(sat))
	assert.Equal(t, mon, shiftWeekend(sun))
	assert.Equal(t, mon, shiftWeekend(mon))
	assert.Equal(t, fri, shiftWeekend(fri))
}

func TestDaysBetween_IgnoresDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// Clocks go forward on March 30th, 2025.
	a := time.Date(2025, 3, 29, 0, 0, 0, 0, loc)
	b := time.Date(2025, 4, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, 3, daysBetween(a, b))
	assert.Equal(t, 0, daysBetween(a, a))
}
