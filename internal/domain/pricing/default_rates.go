package pricing

import "mall-space-booking/internal/domain/space"

func rate(c space.Category, cl Classification, u RentUnit, price int64) RateEntry {
	return RateEntry{Category: c, Classification: cl, Unit: u, PricePerUnit: NewMoney(price)}
}

// DefaultRateTable is the mall's standard tariff in paise.
func DefaultRateTable() *RateTable {
	t, err := NewRateTable([]RateEntry{
		rate(space.CategorySmallShop, WeekDay, DayWise, 1000),
		rate(space.CategorySmallShop, WeekEnd, HourWise, 750),
		rate(space.CategorySmallShop, PublicHoliday, HourWise, 1500),
		rate(space.CategorySmallShop, AllDays, DayWise, 1000),

		rate(space.CategoryMediumShop, WeekDay, DayWise, 3000),
		rate(space.CategoryMediumShop, WeekEnd, DayWise, 1250),
		rate(space.CategoryMediumShop, PublicHoliday, HourWise, 6000),
		rate(space.CategoryMediumShop, AllDays, DayWise, 3000),

		rate(space.CategoryLargeShop, WeekDay, DayWise, 10000),
		rate(space.CategoryLargeShop, WeekEnd, DayWise, 3000),
		rate(space.CategoryLargeShop, PublicHoliday, DayWise, 9000),
		rate(space.CategoryLargeShop, AllDays, DayWise, 10000),

		rate(space.CategoryAtriumNorthWest, WeekDay, HourWise, 600),
		rate(space.CategoryAtriumNorthWest, WeekEnd, HourWise, 1000),
		rate(space.CategoryAtriumNorthWest, PublicHoliday, HourWise, 2000),
		rate(space.CategoryAtriumNorthWest, AllDays, HourWise, 600),

		rate(space.CategoryAtriumSouth, WeekDay, HourWise, 750),
		rate(space.CategoryAtriumSouth, WeekEnd, HourWise, 1500),
		rate(space.CategoryAtriumSouth, PublicHoliday, HourWise, 3000),
		rate(space.CategoryAtriumSouth, AllDays, HourWise, 750),

		rate(space.CategoryCinemaTheater, AllDays, WeekWise, 100000),

		rate(space.CategoryMarketingBanner, WeekDay, SquareFootWise, 1000),
		rate(space.CategoryMarketingBanner, WeekEnd, SquareFootWise, 2500),
		rate(space.CategoryMarketingBanner, PublicHoliday, SquareFootWise, 5000),
		rate(space.CategoryMarketingBanner, AllDays, SquareFootWise, 1000),
	})
	if err != nil {
		panic("pricing: default rate table: " + err.Error())
	}
	return t
}
