package reservation

import (
	"fmt"
	"time"

	"mall-space-booking/internal/domain/pricing"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock minute within a day.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts HH:MM in 24-hour form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Interval is a booked date range with an optional daily time window.
// The date range is [startDate, endDate), and a single-day booking has endDate == startDate.
type Interval struct {
	startDate time.Time
	endDate   time.Time
	hasTime   bool
	startTime TimeOfDay
	endTime   TimeOfDay
}

func NewDateInterval(startDate, endDate time.Time) (Interval, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return Interval{}, ErrInvalidInterval
	}
	start, end := pricing.Day(startDate), pricing.Day(endDate)
	if end.Before(start) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{startDate: start, endDate: end}, nil
}

func NewTimedInterval(startDate, endDate time.Time, startTime, endTime TimeOfDay) (Interval, error) {
	iv, err := NewDateInterval(startDate, endDate)
	if err != nil {
		return Interval{}, err
	}
	if startTime.minutes >= endTime.minutes {
		return Interval{}, ErrInvalidInterval
	}
	iv.hasTime = true
	iv.startTime = startTime
	iv.endTime = endTime
	return iv, nil
}

// NewInterval builds a timed interval when both times are given; one time alone is invalid.
func NewInterval(startDate, endDate time.Time, startTime, endTime *TimeOfDay) (Interval, error) {
	switch {
	case startTime == nil && endTime == nil:
		return NewDateInterval(startDate, endDate)
	case startTime != nil && endTime != nil:
		return NewTimedInterval(startDate, endDate, *startTime, *endTime)
	default:
		return Interval{}, ErrInvalidInterval
	}
}

func (iv Interval) StartDate() time.Time { return iv.startDate }
func (iv Interval) EndDate() time.Time   { return iv.endDate }
func (iv Interval) HasTime() bool        { return iv.hasTime }

// TimeRange returns the daily window when one was booked.
func (iv Interval) TimeRange() (TimeOfDay, TimeOfDay, bool) {
	return iv.startTime, iv.endTime, iv.hasTime
}

// endExclusive is the first day no longer covered.
func (iv Interval) endExclusive() time.Time {
	if iv.endDate.Equal(iv.startDate) {
		return iv.startDate.AddDate(0, 0, 1)
	}
	return iv.endDate
}

// Overlaps applies the half-open test to dates, and to times when both sides carry them.
// A same-day interval (end == start) covers that whole day rather than nothing.
func (iv Interval) Overlaps(other Interval) bool {
	if !(iv.startDate.Before(other.endExclusive()) && other.startDate.Before(iv.endExclusive())) {
		return false
	}
	if !iv.hasTime || !other.hasTime {
		return true
	}
	return iv.startTime.minutes < other.endTime.minutes && other.startTime.minutes < iv.endTime.minutes
}

func (iv Interval) String() string {
	s := fmt.Sprintf("[%s,%s)", pricing.FormatDate(iv.startDate), pricing.FormatDate(iv.endExclusive()))
	if iv.hasTime {
		s += fmt.Sprintf(" %s-%s", iv.startTime, iv.endTime)
	}
	return s
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
