package booking

import (
	"testing"
	"time"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekCellsAnchoredMidweek(t *testing.T) {
	// 2026-09-02 is a Wednesday.
	anchor := date(2026, time.September, 2)
	require.Equal(t, time.Wednesday, anchor.Weekday())

	cells := WeekCells(anchor)
	require.Len(t, cells, 7)
	assert.Equal(t, date(2026, time.August, 30), cells[0]) // preceding Sunday
	assert.Equal(t, time.Sunday, cells[0].Weekday())
	assert.Equal(t, date(2026, time.September, 5), cells[6]) // following Saturday
	assert.Equal(t, time.Saturday, cells[6].Weekday())
}

func TestWeekCellsAnchoredOnSunday(t *testing.T) {
	anchor := date(2026, time.August, 30)
	require.Equal(t, time.Sunday, anchor.Weekday())

	cells := WeekCells(anchor)
	require.Len(t, cells, 7)
	assert.Equal(t, anchor, cells[0])
}

func TestMonthCellsFirstDaySunday(t *testing.T) {
	// March 2026 begins on a Sunday and has 31 days.
	anchor := date(2026, time.March, 15)
	first := date(2026, time.March, 1)
	require.Equal(t, time.Sunday, first.Weekday())

	cells := MonthCells(anchor)
	assert.Equal(t, first, cells[0]) // grid starts on the 1st itself
	assert.Zero(t, len(cells)%7)
	assert.GreaterOrEqual(t, len(cells), 31)
	assert.Equal(t, 35, len(cells))
}

func TestMonthCellsShortMonthEndsEarly(t *testing.T) {
	// February 2026: starts on a Sunday, 28 days, so the grid is exactly
	// four weeks.
	cells := MonthCells(date(2026, time.February, 10))
	assert.Equal(t, 28, len(cells))
	assert.Equal(t, date(2026, time.February, 1), cells[0])
	assert.Equal(t, date(2026, time.February, 28), cells[len(cells)-1])
}

func TestMonthCellsFullSixWeeks(t *testing.T) {
	// August 2026 starts on a Saturday and has 31 days, forcing the full
	// six-week grid.
	cells := MonthCells(date(2026, time.August, 20))
	assert.Equal(t, 42, len(cells))
	assert.Equal(t, date(2026, time.July, 26), cells[0])
	assert.Equal(t, time.Sunday, cells[0].Weekday())
	assert.Equal(t, time.Saturday, cells[len(cells)-1].Weekday())
}

func TestDayTintRespectsPriority(t *testing.T) {
	day := []models.Booking{
		{ID: "b1", Status: models.BookingStatusCancelled},
		{ID: "b2", Status: models.BookingStatusPending},
	}
	assert.Equal(t, models.BookingStatusPending, DayTint(day))

	day = []models.Booking{
		{ID: "b1", Status: models.BookingStatusCompleted},
		{ID: "b2", Status: models.BookingStatusNoShow},
	}
	assert.Equal(t, models.BookingStatusCompleted, DayTint(day))

	assert.Empty(t, DayTint(nil))
}

func TestBuildCalendarBucketsBookingsByDay(t *testing.T) {
	anchor := date(2026, time.September, 2)
	bookings := []models.Booking{
		{ID: "b1", Date: "2026-09-01", Status: models.BookingStatusPending},
		{ID: "b2", Date: "2026-09-01", Status: models.BookingStatusCancelled},
		{ID: "b3", Date: "2026-09-03", Status: models.BookingStatusConfirmed},
	}

	cells := BuildCalendar(bookings, CalendarWeek, anchor)
	require.Len(t, cells, 7)

	byDate := make(map[string]CalendarCell)
	for _, c := range cells {
		byDate[c.Date] = c
	}

	tuesday := byDate["2026-09-01"]
	assert.Len(t, tuesday.Bookings, 2)
	assert.Equal(t, models.BookingStatusPending, tuesday.Tint)

	thursday := byDate["2026-09-03"]
	assert.Len(t, thursday.Bookings, 1)
	assert.Equal(t, models.BookingStatusConfirmed, thursday.Tint)

	assert.Empty(t, byDate["2026-09-04"].Tint)
}
