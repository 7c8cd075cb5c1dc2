package pricing

import (
	"fmt"
	"slices"

	"mall-space-booking/internal/domain/space"
)

type RateEntry struct {
	Category       space.Category
	Classification Classification
	Unit           RentUnit
	PricePerUnit   Money
}

type rateKey struct {
	category       space.Category
	classification Classification
}

// RateTable maps (category, classification) to a unit and price. It is immutable once built.
type RateTable struct {
	entries map[rateKey]RateEntry
}

func NewRateTable(entries []RateEntry) (*RateTable, error) {
	t := &RateTable{entries: make(map[rateKey]RateEntry, len(entries))}
	for _, e := range entries {
		if !e.Category.IsValid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidRateTable, e.Category)
		}
		if !e.Classification.IsValid() {
			return nil, fmt.Errorf("%w: unknown classification %q", ErrInvalidRateTable, e.Classification)
		}
		if !e.Unit.IsValid() {
			return nil, fmt.Errorf("%w: unknown unit %q", ErrInvalidRateTable, e.Unit)
		}
		if e.PricePerUnit.Minor() < 0 {
			return nil, fmt.Errorf("%w: negative price for %s/%s", ErrInvalidRateTable, e.Category, e.Classification)
		}
		k := rateKey{category: e.Category, classification: e.Classification}
		if _, dup := t.entries[k]; dup {
			return nil, fmt.Errorf("%w: duplicate entry %s/%s", ErrInvalidRateTable, e.Category, e.Classification)
		}
		t.entries[k] = e
	}
	return t, nil
}

// Resolve looks up the exact classification first and then the AllDays entry.
func (t *RateTable) Resolve(category space.Category, classification Classification) (RateEntry, error) {
	if e, ok := t.entries[rateKey{category: category, classification: classification}]; ok {
		return e, nil
	}
	if e, ok := t.entries[rateKey{category: category, classification: AllDays}]; ok {
		return e, nil
	}
	return RateEntry{}, fmt.Errorf("%w: %s/%s", ErrUnpricedCombination, category, classification)
}

// Supports reports whether Resolve would price the pair.
func (t *RateTable) Supports(category space.Category, classification Classification) bool {
	_, err := t.Resolve(category, classification)
	return err == nil
}

// Classifications lists the classifications configured for a category.
func (t *RateTable) Classifications(category space.Category) []Classification {
	var out []Classification
	for _, c := range classificationOrder {
		if _, ok := t.entries[rateKey{category: category, classification: c}]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Entries returns every entry ordered by category then classification.
func (t *RateTable) Entries() []RateEntry {
	out := make([]RateEntry, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e)
	}
	cats := space.Categories()
	slices.SortFunc(out, func(a, b RateEntry) int {
		if d := slices.Index(cats, a.Category) - slices.Index(cats, b.Category); d != 0 {
			return d
		}
		return slices.Index(classificationOrder, a.Classification) - slices.Index(classificationOrder, b.Classification)
	})
	return out
}

func (t *RateTable) EntriesFor(category space.Category) []RateEntry {
	var out []RateEntry
	for _, c := range t.Classifications(category) {
		out = append(out, t.entries[rateKey{category: category, classification: c}])
	}
	return out
}
