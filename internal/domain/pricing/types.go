package pricing

import "errors"

var (
	ErrUnknownClassification = errors.New("unknown day classification")
	ErrUnknownRentUnit       = errors.New("unknown rent unit")
)

// Classification is the day-type bucket a rate applies to.
type Classification string

const (
	WeekDay       Classification = "week_day"
	WeekEnd       Classification = "week_end"
	PublicHoliday Classification = "public_holiday"
	// AllDays is only a rate-table key; Classify never returns it.
	AllDays Classification = "all_days"
)

var classificationOrder = []Classification{WeekDay, WeekEnd, PublicHoliday, AllDays}

func ParseClassification(s string) (Classification, error) {
	c := Classification(s)
	if !c.IsValid() {
		return "", ErrUnknownClassification
	}
	return c, nil
}

func (c Classification) String() string {
	return string(c)
}

func (c Classification) IsValid() bool {
	switch c {
	case WeekDay, WeekEnd, PublicHoliday, AllDays:
		return true
	default:
		return false
	}
}

// RentUnit decides what "units booked" counts.
type RentUnit string

const (
	DayWise        RentUnit = "day_wise"
	HourWise       RentUnit = "hour_wise"
	WeekWise       RentUnit = "week_wise"
	SquareFootWise RentUnit = "square_foot_wise"
)

func ParseRentUnit(s string) (RentUnit, error) {
	u := RentUnit(s)
	if !u.IsValid() {
		return "", ErrUnknownRentUnit
	}
	return u, nil
}

func (u RentUnit) String() string {
	return string(u)
}

func (u RentUnit) IsValid() bool {
	switch u {
	case DayWise, HourWise, WeekWise, SquareFootWise:
		return true
	default:
		return false
	}
}
