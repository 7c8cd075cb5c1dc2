package pricing

import (
	"time"
)

const DateLayout = "2006-01-02"

// Day strips the clock from t, keeping t's own calendar date, as UTC midnight.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

const secondsPerDay = 24 * 60 * 60

// DaySpan counts whole calendar days from start to end. It works on Unix
// seconds because time.Duration saturates after about 292 years.
func DaySpan(start, end time.Time) int64 {
	return (Day(end).Unix() - Day(start).Unix()) / secondsPerDay
}
