package space

import (
	"errors"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown space category")

type Category string

const (
	CategorySmallShop       Category = "small_shop"
	CategoryMediumShop      Category = "medium_shop"
	CategoryLargeShop       Category = "large_shop"
	CategoryAtriumNorthWest Category = "atrium_north_west"
	CategoryAtriumSouth     Category = "atrium_south"
	CategoryCinemaTheater   Category = "cinema_theater"
	CategoryMarketingBanner Category = "marketing_banner"
)

var categories = []Category{
	CategorySmallShop,
	CategoryMediumShop,
	CategoryLargeShop,
	CategoryAtriumNorthWest,
	CategoryAtriumSouth,
	CategoryCinemaTheater,
	CategoryMarketingBanner,
}

var displayNames = map[Category]string{
	CategorySmallShop:       "Small Shop",
	CategoryMediumShop:      "Medium Shop",
	CategoryLargeShop:       "Large Shop",
	CategoryAtriumNorthWest: "Atrium - North and West",
	CategoryAtriumSouth:     "Atrium - South",
	CategoryCinemaTheater:   "Cinema Theater",
	CategoryMarketingBanner: "Marketing Banner Space",
}

// Categories returns every category in catalogue order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory accepts the wire name or the display name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	v := strings.TrimSpace(s)
	if c := Category(strings.ToLower(v)); c.IsValid() {
		return c, nil
	}
	for c, name := range displayNames {
		if strings.EqualFold(name, v) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

func (c Category) String() string {
	return string(c)
}

func (c Category) DisplayName() string {
	return displayNames[c]
}

func (c Category) IsValid() bool {
	_, ok := displayNames[c]
	return ok
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, ErrUnknownCategory
	}
	return []byte(c), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
