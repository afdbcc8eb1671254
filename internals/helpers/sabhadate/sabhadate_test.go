package sabhadate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSameUTCDay(t *testing.T) {
	d1 := time.Date(2024, 3, 10, 0, 0, 1, 0, time.UTC)
	d2 := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)

	assert.Equal(t, Normalize(d1), Normalize(d2))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Normalize(d1))
}

func TestNormalizeUsesUTCCalendarDay(t *testing.T) {
	// 2024-03-10T23:00:00+05:00 is 2024-03-10T18:00:00Z → still March 10 in UTC.
	ist := time.FixedZone("IST", 5*3600)
	in := time.Date(2024, 3, 10, 23, 0, 0, 0, ist)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Normalize(in))

	// 2024-03-10T02:00:00+05:00 is 2024-03-09T21:00:00Z → March 9 in UTC.
	early := time.Date(2024, 3, 10, 2, 0, 0, 0, ist)
	assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), Normalize(early))
}

func TestParse(t *testing.T) {
	want := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-03-10",
		"2024-03-10T12:30:00",
		"2024-03-10T23:00:00+05:00",
		"2024-03-10T18:00:00Z",
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "  ", "not-a-date", "10/03/2024"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 3, 10, 15, 4, 5, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekdayCount(t *testing.T) {
	// March 2024 has 5 Sundays (3, 10, 17, 24, 31).
	assert.Equal(t, 5, WeekdayCount(2024, time.March, time.Sunday))
	// April 2024 has 4 Sundays.
	assert.Equal(t, 4, WeekdayCount(2024, time.April, time.Sunday))
	// February 2024 (leap) has 4 Sundays, 5 Thursdays.
	assert.Equal(t, 4, WeekdayCount(2024, time.February, time.Sunday))
	assert.Equal(t, 5, WeekdayCount(2024, time.February, time.Thursday))
}
