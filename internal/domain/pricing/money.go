package pricing

import (
	"errors"
	"math"
	"strconv"
)

var errOverflow = errors.New("money overflow")

// Money is an amount in minor currency units (paise).
type Money struct {
	minor int64
}

func NewMoney(minor int64) Money {
	return Money{minor: minor}
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor}
}

// Times multiplies by a non-negative quantity and reports int64 overflow.
func (m Money) Times(n int64) (Money, error) {
	if n < 0 || m.minor < 0 {
		return Money{}, errOverflow
	}
	if n != 0 && m.minor > math.MaxInt64/n {
		return Money{}, errOverflow
	}
	return Money{minor: m.minor * n}, nil
}

func (m Money) String() string {
	return strconv.FormatInt(m.minor, 10)
}
