// Package config holds the weekly event configuration document and the environment the
// tool runs in.
package config

import (
	"strconv"
)

// Config is the weekly event configuration document.
type Config struct {
	// MainEventID is the competition every weekly event is created under.
	MainEventID int64 `toml:"main_event_id" yaml:"main_event_id"`

	// TitleTemplate names the weekly event. {week} and {date} are replaced with the week
	// number and the event date.
	TitleTemplate string `toml:"title_template" yaml:"title_template" env_interpolation:"yes"`
	Comment       string `toml:"comment"        yaml:"comment"        env_interpolation:"yes"`

	// IsWeeklies marks the weekly event as part of a weekly series.
	IsWeeklies bool `toml:"is_weeklies" yaml:"is_weeklies"`

	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Rounds  []Round       `toml:"rounds"  yaml:"rounds"  env_interpolation:"yes"`
}

// ParentID returns the main event id as used in page paths
func (c *Config) ParentID() string {
	return strconv.FormatInt(c.MainEventID, 10)
}

// Round is one round of the weekly event.
type Round struct {
	Title   string `toml:"title"   yaml:"title"   env_interpolation:"yes"`
	Comment string `toml:"comment" yaml:"comment" env_interpolation:"yes"`

	// StartTime is the round start time of day. Rounds with groups default to the first
	// time of their first group window.
	StartTime *ClockTime `toml:"start_time,omitempty" yaml:"start_time,omitempty"`

	Groups            []GroupWindow       `toml:"groups"               yaml:"groups"`
	MaxPlayersInGroup int                 `toml:"max_players_in_group" yaml:"max_players_in_group"`
	Registration      *RegistrationWindow `toml:"registration,omitempty" yaml:"registration,omitempty"`
}

// StartTimeOfDay returns the configured start time or the first group start. The second
// return value is false when the round has neither.
func (r Round) StartTimeOfDay() (ClockTime, bool) {
	if r.StartTime != nil {
		return *r.StartTime, true
	}
	if len(r.Groups) > 0 {
		return r.Groups[0].FirstTime, true
	}
	return ClockTime{}, false
}

// GroupWindow is a series of evenly spaced group start times, both ends included.
type GroupWindow struct {
	FirstTime ClockTime `toml:"first_time" yaml:"first_time"`
	LastTime  ClockTime `toml:"last_time"  yaml:"last_time"`
	Interval  Duration  `toml:"interval"   yaml:"interval"`
}

// RegistrationWindow overrides the default registration window of a round.
type RegistrationWindow struct {
	// EndTime replaces the closing time of day on the event date.
	EndTime *ClockTime `toml:"end_time,omitempty" yaml:"end_time,omitempty"`
}
