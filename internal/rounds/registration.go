package rounds

import (
	"time"

	"github.com/atlanticdynamic/autodgm/internal/config"
)

const (
	registrationOpensDaysBefore = 6
	registrationClosesHour      = 23
)

// Registration is the window in which players can sign up for a round.
type Registration struct {
	Start time.Time
	End   time.Time
}

// DeriveRegistration returns the default registration window of a round on eventDate:
// opening at midnight six days before and closing at 23:xx on the event day. An end time
// in the round configuration replaces the hour and minute of the closing time.
//
// The opening time of day cannot be configured.
func DeriveRegistration(round config.Round, eventDate time.Time) Registration {
	loc := eventDate.Location()

	opens := eventDate.AddDate(0, 0, -registrationOpensDaysBefore)
	start := time.Date(opens.Year(), opens.Month(), opens.Day(), 0, 0, 0, 0, loc)

	year, month, day := eventDate.Date()
	hour, minute := registrationClosesHour, eventDate.Minute()
	if round.Registration != nil && round.Registration.EndTime != nil {
		hour, minute = round.Registration.EndTime.Hour, round.Registration.EndTime.Minute
	}
	end := time.Date(year, month, day, hour, minute, eventDate.Second(), eventDate.Nanosecond(), loc)

	return Registration{Start: start, End: end}
}
