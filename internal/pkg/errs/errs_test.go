package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

type kindErr struct{}

func (kindErr) Error() string        { return "kind" }
func (kindErr) Is(target error) bool { return target == errSentinel }

func TestMark(t *testing.T) {
	cause := errors.New("connection refused")
	marked := Mark(cause, ErrDatabaseOperationFailed)

	assert.True(t, Is(marked, ErrDatabaseOperationFailed))
	assert.True(t, Is(marked, cause))
	assert.Equal(t, "connection refused", marked.Error())

	assert.Equal(t, ErrLockUnavailable, Mark(nil, ErrLockUnavailable))
}

func TestIs(t *testing.T) {
	assert.True(t, Is(fmt.Errorf("wrapped: %w", kindErr{}), errSentinel))
	assert.True(t, Is(Wrap(Mark(errors.New("x"), ErrReservationNotFound), "find"), ErrReservationNotFound))
	assert.False(t, Is(errors.New("other"), ErrReservationNotFound))
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))

	err := Wrapf(errSentinel, "loading %s", "rates")
	assert.Equal(t, "loading rates: sentinel", err.Error())
	assert.True(t, Is(err, errSentinel))
}

func TestExtractStackLines(t *testing.T) {
	assert.Nil(t, ExtractStackLines(nil, 5))

	lines := ExtractStackLines(New("boom"), 3)
	assert.LessOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[0], "boom")
}
