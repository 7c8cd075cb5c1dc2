package pricing

import (
	"slices"
	"sync"
	"time"
)

// HolidaySet answers whether a calendar day is a public holiday.
type HolidaySet interface {
	Contains(date time.Time) bool
}

// HolidayCalendar is a replaceable set of holiday dates, safe for concurrent use.
type HolidayCalendar struct {
	mu   sync.RWMutex
	days map[time.Time]struct{}
}

func NewHolidayCalendar(dates ...time.Time) *HolidayCalendar {
	c := &HolidayCalendar{}
	c.Replace(dates)
	return c
}

// ParseHolidayCalendar builds a calendar from ISO dates (YYYY-MM-DD).
func ParseHolidayCalendar(isoDates []string) (*HolidayCalendar, error) {
	dates, err := ParseDates(isoDates)
	if err != nil {
		return nil, err
	}
	return NewHolidayCalendar(dates...), nil
}

func ParseDates(isoDates []string) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(isoDates))
	for _, s := range isoDates {
		d, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func (c *HolidayCalendar) Contains(date time.Time) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.days[Day(date)]
	return ok
}

// Dates returns the holidays in ascending order.
func (c *HolidayCalendar) Dates() []time.Time {
	c.mu.RLock()
	out := make([]time.Time, 0, len(c.days))
	for d := range c.days {
		out = append(out, d)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}

// Replace swaps the whole holiday set atomically.
func (c *HolidayCalendar) Replace(dates []time.Time) {
	days := make(map[time.Time]struct{}, len(dates))
	for _, d := range dates {
		days[Day(d)] = struct{}{}
	}

	c.mu.Lock()
	c.days = days
	c.mu.Unlock()
}

// Classify buckets a calendar day. It never returns AllDays.
func Classify(date time.Time, holidays HolidaySet) Classification {
	day := Day(date)
	if holidays != nil && holidays.Contains(day) {
		return PublicHoliday
	}
	switch day.Weekday() {
	case time.Saturday, time.Sunday:
		return WeekEnd
	default:
		return WeekDay
	}
}
