package pricing

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mall-space-booking/internal/domain/space"
)

type rateFile struct {
	Rates []rateFileEntry `yaml:"rates"`
}

type rateFileEntry struct {
	Category       string `yaml:"category"`
	Classification string `yaml:"classification"`
	Unit           string `yaml:"unit"`
	Price          int64  `yaml:"price"`
}

// LoadRateTable reads a YAML rate table from path.
func LoadRateTable(path string) (*RateTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rate table: %w", err)
	}
	return ParseRateTable(data)
}

// ParseRateTable decodes a YAML document of the form
//
//	rates:
//	  - {category: small_shop, classification: week_day, unit: day_wise, price: 1000}
func ParseRateTable(data []byte) (*RateTable, error) {
	var f rateFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRateTable, err)
	}
	if len(f.Rates) == 0 {
		return nil, fmt.Errorf("%w: no rates", ErrInvalidRateTable)
	}

	entries := make([]RateEntry, 0, len(f.Rates))
	for i, r := range f.Rates {
		cat, err := space.ParseCategory(r.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: rates[%d]: category %q", ErrInvalidRateTable, i, r.Category)
		}
		cl, err := ParseClassification(r.Classification)
		if err != nil {
			return nil, fmt.Errorf("%w: rates[%d]: classification %q", ErrInvalidRateTable, i, r.Classification)
		}
		unit, err := ParseRentUnit(r.Unit)
		if err != nil {
			return nil, fmt.Errorf("%w: rates[%d]: unit %q", ErrInvalidRateTable, i, r.Unit)
		}
		entries = append(entries, RateEntry{
			Category:       cat,
			Classification: cl,
			Unit:           unit,
			PricePerUnit:   NewMoney(r.Price),
		})
	}
	return NewRateTable(entries)
}
