package pricing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		holidays []string
		want     Classification
	}{
		{name: "thursday", date: "2024-06-20", want: WeekDay},
		{name: "friday", date: "2024-06-21", want: WeekDay},
		{name: "saturday", date: "2024-06-22", want: WeekEnd},
		{name: "sunday", date: "2024-06-23", want: WeekEnd},
		{name: "holiday on weekday", date: "2024-08-15", holidays: []string{"2024-08-15"}, want: PublicHoliday},
		{name: "holiday on weekend", date: "2024-06-22", holidays: []string{"2024-06-22"}, want: PublicHoliday},
		{name: "other holiday only", date: "2024-08-16", holidays: []string{"2024-08-15"}, want: WeekDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := ParseHolidayCalendar(tt.holidays)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Classify(date(t, tt.date), cal))
		})
	}
}

func TestClassify_NeverAllDays(t *testing.T) {
	start := date(t, "2024-01-01")
	for i := 0; i < 366; i++ {
		d := start.AddDate(0, 0, i)

		got := Classify(d, nil)
		assert.Contains(t, []Classification{WeekDay, WeekEnd}, got, d)

		assert.Equal(t, PublicHoliday, Classify(d, NewHolidayCalendar(d)), d)
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	cal := NewHolidayCalendar(date(t, "2024-08-15"))
	evening := time.Date(2024, 8, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, PublicHoliday, Classify(evening, cal))
}

func TestHolidayCalendar(t *testing.T) {
	cal, err := ParseHolidayCalendar([]string{"2024-10-02", "2024-08-15", "2024-08-15"})
	require.NoError(t, err)

	assert.Equal(t, []time.Time{date(t, "2024-08-15"), date(t, "2024-10-02")}, cal.Dates())
	assert.True(t, cal.Contains(date(t, "2024-10-02")))

	cal.Replace([]time.Time{date(t, "2024-12-25")})
	assert.False(t, cal.Contains(date(t, "2024-10-02")))
	assert.True(t, cal.Contains(date(t, "2024-12-25")))

	_, err = ParseHolidayCalendar([]string{"15/08/2024"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestHolidayCalendar_ConcurrentReplace(t *testing.T) {
	cal := NewHolidayCalendar()
	d := date(t, "2024-08-15")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cal.Replace([]time.Time{d})
		}()
		go func() {
			defer wg.Done()
			_ = Classify(d, cal)
		}()
	}
	wg.Wait()

	assert.True(t, cal.Contains(d))
}
