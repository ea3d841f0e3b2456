package slots

import (
	"fmt"

	"github.com/nikmy/freeslots/pkg/errors"
)

var ErrInvalidInterval = errors.New("interval end must be after its start")

// Interval is a half-open range [start, end) in minutes since midnight.
// The zero value is not a valid interval, use New or FromClock.
type Interval struct {
	start int
	end   int
}

func New(start, end int) (Interval, error) {
	if start < 0 || start >= end {
		return Interval{}, errors.WrapFailf(ErrInvalidInterval, "make interval [%d, %d)", start, end)
	}
	return Interval{start: start, end: end}, nil
}

func FromClock(start, end string) (Interval, error) {
	from, err := ParseClock(start)
	if err != nil {
		return Interval{}, err
	}

	to, err := ParseClock(end)
	if err != nil {
		return Interval{}, err
	}

	return New(from, to)
}

func (i Interval) Start() int    { return i.start }
func (i Interval) End() int      { return i.end }
func (i Interval) Duration() int { return i.end - i.start }

// Intersect returns the common part of both intervals. Touching
// intervals do not overlap.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := max(i.start, other.start)
	end := min(i.end, other.end)

	if start >= end {
		return Interval{}, false
	}

	return Interval{start: start, end: end}, true
}

func (i Interval) CoversDuration(minutes int) bool {
	return i.Duration() >= minutes
}

func (i Interval) String() string {
	return fmt.Sprintf("%s - %s -- duration=%dmin", FormatClock(i.start), FormatClock(i.end), i.Duration())
}
