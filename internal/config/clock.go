package config

import (
	"fmt"
	"time"
)

// ClockTimeLayout is the text form of a ClockTime.
const ClockTimeLayout = "15:04"

// ClockTime is a time of day with minute precision.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewClockTime creates a ClockTime, hour and minute are not normalised
func NewClockTime(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClockTime parses a time of day in HH:MM form
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse(ClockTimeLayout, s)
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// String returns the time in HH:MM form
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalText implements encoding.TextMarshaler
func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// On returns the time of day on the date of day, in its location.
func (c ClockTime) On(day time.Time) time.Time {
	year, month, d := day.Date()
	return time.Date(year, month, d, c.Hour, c.Minute, 0, 0, day.Location())
}

// Time returns the time of day on the zero date, in UTC.
func (c ClockTime) Time() time.Time {
	return c.On(time.Time{})
}

// Before reports whether c is earlier in the day than other
func (c ClockTime) Before(other ClockTime) bool {
	return c.Hour < other.Hour || (c.Hour == other.Hour && c.Minute < other.Minute)
}
