package pricing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mall-space-booking/internal/domain/space"
)

func TestDefaultRateTable_ResolveExact(t *testing.T) {
	table := DefaultRateTable()

	for _, e := range table.Entries() {
		got, err := table.Resolve(e.Category, e.Classification)
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}
	assert.Len(t, table.Entries(), 25)
}

func TestDefaultRateTable_Values(t *testing.T) {
	tests := []struct {
		category       space.Category
		classification Classification
		unit           RentUnit
		price          int64
	}{
		{space.CategorySmallShop, WeekDay, DayWise, 1000},
		{space.CategorySmallShop, WeekEnd, HourWise, 750},
		{space.CategoryMediumShop, PublicHoliday, HourWise, 6000},
		{space.CategoryLargeShop, WeekEnd, DayWise, 3000},
		{space.CategoryAtriumNorthWest, WeekEnd, HourWise, 1000},
		{space.CategoryAtriumSouth, PublicHoliday, HourWise, 3000},
		{space.CategoryMarketingBanner, WeekEnd, SquareFootWise, 2500},
	}

	table := DefaultRateTable()
	for _, tt := range tests {
		t.Run(string(tt.category)+"/"+string(tt.classification), func(t *testing.T) {
			got, err := table.Resolve(tt.category, tt.classification)
			require.NoError(t, err)
			assert.Equal(t, tt.unit, got.Unit)
			assert.Equal(t, tt.price, got.PricePerUnit.Minor())
		})
	}
}

func TestRateTable_AllDaysFallback(t *testing.T) {
	table := DefaultRateTable()

	for _, cl := range []Classification{WeekDay, WeekEnd, PublicHoliday} {
		got, err := table.Resolve(space.CategoryCinemaTheater, cl)
		require.NoError(t, err)
		assert.Equal(t, AllDays, got.Classification)
		assert.Equal(t, WeekWise, got.Unit)
		assert.Equal(t, int64(100000), got.PricePerUnit.Minor())
	}

	assert.Equal(t, []Classification{AllDays}, table.Classifications(space.CategoryCinemaTheater))
	assert.True(t, table.Supports(space.CategoryCinemaTheater, WeekDay))
}

func TestRateTable_Unpriced(t *testing.T) {
	table, err := NewRateTable([]RateEntry{
		rate(space.CategorySmallShop, WeekDay, DayWise, 1000),
	})
	require.NoError(t, err)

	_, err = table.Resolve(space.CategorySmallShop, WeekEnd)
	assert.ErrorIs(t, err, ErrUnpricedCombination)

	_, err = table.Resolve(space.CategoryCinemaTheater, WeekDay)
	assert.ErrorIs(t, err, ErrUnpricedCombination)
	assert.False(t, table.Supports(space.CategoryLargeShop, WeekDay))
	assert.Empty(t, table.Classifications(space.CategoryLargeShop))
}

func TestNewRateTable_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []RateEntry
	}{
		{
			name: "duplicate",
			entries: []RateEntry{
				rate(space.CategorySmallShop, WeekDay, DayWise, 1000),
				rate(space.CategorySmallShop, WeekDay, HourWise, 900),
			},
		},
		{name: "unknown category", entries: []RateEntry{rate("kiosk", WeekDay, DayWise, 1)}},
		{name: "unknown unit", entries: []RateEntry{rate(space.CategorySmallShop, WeekDay, "monthly", 1)}},
		{name: "negative price", entries: []RateEntry{rate(space.CategorySmallShop, WeekDay, DayWise, -1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRateTable(tt.entries)
			assert.ErrorIs(t, err, ErrInvalidRateTable)
		})
	}
}

func TestLoadRateTable(t *testing.T) {
	doc := `
rates:
  - {category: small_shop, classification: week_day, unit: day_wise, price: 1200}
  - category: Cinema Theater
    classification: all_days
    unit: week_wise
    price: 90000
`
	path := filepath.Join(t.TempDir(), "rates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	table, err := LoadRateTable(path)
	require.NoError(t, err)

	got, err := table.Resolve(space.CategoryCinemaTheater, PublicHoliday)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), got.PricePerUnit.Minor())

	got, err = table.Resolve(space.CategorySmallShop, WeekDay)
	require.NoError(t, err)
	assert.Equal(t, int64(1200), got.PricePerUnit.Minor())
}

func TestParseRateTable_Invalid(t *testing.T) {
	tests := map[string]string{
		"empty":                  "rates: []",
		"bad yaml":               "rates: [",
		"unknown category":       "rates: [{category: kiosk, classification: week_day, unit: day_wise, price: 1}]",
		"unknown classification": "rates: [{category: small_shop, classification: monday, unit: day_wise, price: 1}]",
		"unknown unit":           "rates: [{category: small_shop, classification: week_day, unit: monthly, price: 1}]",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseRateTable([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidRateTable)
		})
	}

	_, err := LoadRateTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
