package booking

import (
	"time"

	"marketdesk/models"
)

// Calendar view modes.
const (
	CalendarWeek  = "week"
	CalendarMonth = "month"
)

// tintPriority orders statuses for day-cell tinting. The first status from
// this list present among a day's bookings decides the cell's tint.
var tintPriority = []string{
	models.BookingStatusPending,
	models.BookingStatusInProgress,
	models.BookingStatusConfirmed,
	models.BookingStatusDeclined,
	models.BookingStatusCancelled,
	models.BookingStatusCompleted,
	models.BookingStatusNoShow,
}

// CalendarCell is one day of the rendered grid.
type CalendarCell struct {
	Date     string           `json:"date"` // "YYYY-MM-DD"
	Bookings []models.Booking `json:"bookings"`
	Tint     string           `json:"tint,omitempty"` // status driving the cell color, if any
}

// sundayOnOrBefore steps back to the most recent Sunday, or returns t itself
// if t is a Sunday.
func sundayOnOrBefore(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}

// WeekCells returns exactly 7 dates starting from the Sunday on or before the
// anchor date.
func WeekCells(anchor time.Time) []time.Time {
	start := sundayOnOrBefore(anchor)
	cells := make([]time.Time, 7)
	for i := range cells {
		cells[i] = start.AddDate(0, 0, i)
	}
	return cells
}

// MonthCells returns the month grid for the anchor's month: whole weeks
// starting from the Sunday on or before the 1st, running until the grid has
// passed the last day of the month and lands on a Sunday, capped at 42 cells.
func MonthCells(anchor time.Time) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)

	cells := make([]time.Time, 0, 42)
	d := sundayOnOrBefore(first)
	for {
		cells = append(cells, d)
		d = d.AddDate(0, 0, 1)
		if d.After(last) && d.Weekday() == time.Sunday {
			break
		}
		if len(cells) == 42 {
			break
		}
	}
	return cells
}

// BucketByDay groups bookings by their civil date.
func BucketByDay(bookings []models.Booking) map[string][]models.Booking {
	byDay := make(map[string][]models.Booking)
	for _, b := range bookings {
		byDay[b.Date] = append(byDay[b.Date], b)
	}
	return byDay
}

// DayTint returns the status that decides a day cell's tint, or "" when the
// day has no bookings.
func DayTint(bookings []models.Booking) string {
	for _, status := range tintPriority {
		for _, b := range bookings {
			if b.Status == status {
				return status
			}
		}
	}
	return ""
}

// BuildCalendar assembles the full grid for the given mode and anchor date.
func BuildCalendar(bookings []models.Booking, mode string, anchor time.Time) []CalendarCell {
	var dates []time.Time
	if mode == CalendarWeek {
		dates = WeekCells(anchor)
	} else {
		dates = MonthCells(anchor)
	}

	byDay := BucketByDay(bookings)
	cells := make([]CalendarCell, len(dates))
	for i, d := range dates {
		day := d.Format("2006-01-02")
		dayBookings := byDay[day]
		cells[i] = CalendarCell{
			Date:     day,
			Bookings: dayBookings,
			Tint:     DayTint(dayBookings),
		}
	}
	return cells
}
