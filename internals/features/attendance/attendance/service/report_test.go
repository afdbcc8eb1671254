package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yuvasabha_backend/internals/helpers/sabhadate"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildMonthlyReportPercentage(t *testing.T) {
	person := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB1", Name: "Kirtan"}

	// April 2024 has 4 Sundays (7, 14, 21, 28); present on two of them.
	records := []PresentRecord{
		{SabhaUserID: person.SabhaUserID, Day: day(2024, time.April, 7)},
		{SabhaUserID: person.SabhaUserID, Day: day(2024, time.April, 21)},
	}

	report, err := BuildMonthlyReport(records, []PersonInfo{person}, time.Sunday)
	require.NoError(t, err)
	require.Len(t, report, 1)
	require.Len(t, report[0].Months, 1)

	stat := report[0].Months[0]
	assert.Equal(t, 2024, stat.Year)
	assert.Equal(t, 4, stat.Month)
	assert.Equal(t, 2, stat.PresentCount)
	assert.Equal(t, 4, stat.TotalCount)
	assert.Equal(t, 50.0, stat.Percentage)
}

func TestBuildMonthlyReportUnionOfMonths(t *testing.T) {
	a := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB1", Name: "A"}
	b := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB2", Name: "B"}

	// A attended only in March, B only in April; both rows still carry both
	// month columns, zero-filled where the person never came.
	records := []PresentRecord{
		{SabhaUserID: a.SabhaUserID, Day: day(2024, time.March, 10)},
		{SabhaUserID: b.SabhaUserID, Day: day(2024, time.April, 14)},
	}

	report, err := BuildMonthlyReport(records, []PersonInfo{a, b}, time.Sunday)
	require.NoError(t, err)
	require.Len(t, report, 2)

	for _, row := range report {
		require.Len(t, row.Months, 2)
		assert.Equal(t, 3, row.Months[0].Month)
		assert.Equal(t, 4, row.Months[1].Month)
	}

	// March 2024 has 5 Sundays, April has 4.
	assert.Equal(t, 1, report[0].Months[0].PresentCount)
	assert.Equal(t, 20.0, report[0].Months[0].Percentage)
	assert.Equal(t, 0, report[0].Months[1].PresentCount)
	assert.Equal(t, 0.0, report[0].Months[1].Percentage)

	assert.Equal(t, 0, report[1].Months[0].PresentCount)
	assert.Equal(t, 1, report[1].Months[1].PresentCount)
	assert.Equal(t, 25.0, report[1].Months[1].Percentage)
}

func TestBuildMonthlyReportSortsByCustomID(t *testing.T) {
	p10 := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB10", Name: "Ten"}
	p2 := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB2", Name: "Two"}
	p1 := PersonInfo{SabhaUserID: uuid.New(), CustomID: "KD1", Name: "Other"}

	records := []PresentRecord{
		{SabhaUserID: p10.SabhaUserID, Day: day(2024, time.March, 3)},
	}

	report, err := BuildMonthlyReport(records, []PersonInfo{p10, p1, p2}, time.Sunday)
	require.NoError(t, err)
	require.Len(t, report, 3)

	// Numeric suffix order within a prefix, so AB2 sorts before AB10.
	assert.Equal(t, "AB2", report[0].CustomID)
	assert.Equal(t, "AB10", report[1].CustomID)
	assert.Equal(t, "KD1", report[2].CustomID)
}

func TestBuildMonthlyReportNormalizesRecordDays(t *testing.T) {
	person := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB1", Name: "A"}

	// 01:30 in +05:00 on April 1 is still March 31 in UTC, so the record
	// lands in March's column.
	loc := time.FixedZone("IST-ish", 5*3600)
	records := []PresentRecord{
		{SabhaUserID: person.SabhaUserID, Day: time.Date(2024, time.April, 1, 1, 30, 0, 0, loc)},
	}

	report, err := BuildMonthlyReport(records, []PersonInfo{person}, time.Sunday)
	require.NoError(t, err)
	require.Len(t, report[0].Months, 1)
	assert.Equal(t, 3, report[0].Months[0].Month)
}

func TestMissingPersonIDs(t *testing.T) {
	current := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB2", Name: "Stayed"}
	formerID := uuid.New()

	records := []PresentRecord{
		{SabhaUserID: current.SabhaUserID, Day: day(2024, time.March, 17)},
		{SabhaUserID: formerID, Day: day(2024, time.March, 10)},
		{SabhaUserID: formerID, Day: day(2024, time.March, 24)},
	}

	missing := MissingPersonIDs(records, []PersonInfo{current})
	assert.Equal(t, []uuid.UUID{formerID}, missing)
}

func TestMonthlyReportKeepsFormerMembers(t *testing.T) {
	current := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB2", Name: "Stayed"}
	former := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB1", Name: "Moved"}

	// The former member's records are still in scope even though they are no
	// longer in the current membership; their row must not vanish.
	records := []PresentRecord{
		{SabhaUserID: current.SabhaUserID, Day: day(2024, time.March, 17)},
		{SabhaUserID: former.SabhaUserID, Day: day(2024, time.March, 10)},
	}

	missing := MissingPersonIDs(records, []PersonInfo{current})
	require.Equal(t, []uuid.UUID{former.SabhaUserID}, missing)

	report, err := BuildMonthlyReport(records, []PersonInfo{current, former}, time.Sunday)
	require.NoError(t, err)
	require.Len(t, report, 2)

	assert.Equal(t, "AB1", report[0].CustomID)
	assert.Equal(t, 1, report[0].Months[0].PresentCount)
	assert.Equal(t, "AB2", report[1].CustomID)
	assert.Equal(t, 1, report[1].Months[0].PresentCount)
}

func TestBuildMonthlyReportEmptyScan(t *testing.T) {
	person := PersonInfo{SabhaUserID: uuid.New(), CustomID: "AB1", Name: "A"}

	_, err := BuildMonthlyReport(nil, []PersonInfo{person}, time.Sunday)
	assert.ErrorIs(t, err, ErrNoAttendanceData)
}

func TestWeekdayCountMatchesCalendar(t *testing.T) {
	assert.Equal(t, 5, sabhadate.WeekdayCount(2024, time.March, time.Sunday))
	assert.Equal(t, 4, sabhadate.WeekdayCount(2024, time.April, time.Sunday))
}
