package slots

import (
	"fmt"
	"time"

	"github.com/nikmy/freeslots/pkg/errors"
)

const (
	minutesInHour = 60
	hoursInDay    = 24

	clockLayout = "15:04"
)

var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// ParseClock converts "HH:MM" into minutes since midnight.
// Hours may have one or two digits, minutes always have two.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, errors.WrapFailf(errors.Errorf("%w: %s", ErrInvalidTimeFormat, err), "parse %q", s)
	}

	return t.Hour()*minutesInHour + t.Minute(), nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/minutesInHour, minutes%minutesInHour)
}
