package utils

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// BusinessCalendar counts working days, skipping weekends and US federal holidays.
type BusinessCalendar struct {
	cal *cal.BusinessCalendar
}

// NewBusinessCalendar returns a calendar with the US federal holiday set.
func NewBusinessCalendar() *BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return &BusinessCalendar{cal: c}
}

// IsBusinessDay reports whether t falls on a weekday that is neither a
// holiday nor a holiday's observed day.
func (b *BusinessCalendar) IsBusinessDay(t time.Time) bool {
	return b.cal.IsWorkday(t)
}

// AddBusinessDays returns the date n business days after from, at midnight
// in from's location. n <= 0 returns the start of from's day.
func (b *BusinessCalendar) AddBusinessDays(from time.Time, n int) time.Time {
	day := StartOfDay(from)
	if n <= 0 {
		return day
	}
	return StartOfDay(b.cal.WorkdaysFrom(day, n))
}
