package config

import (
	"testing"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	start := NewClockTime(18, 30)
	return &Config{
		MainEventID:   42,
		TitleTemplate: "Week {week}",
		Rounds: []Round{
			{
				Title: "Flex",
				Groups: []GroupWindow{{
					FirstTime: NewClockTime(10, 0),
					LastTime:  NewClockTime(18, 0),
					Interval:  FromDuration(15 * time.Minute),
				}},
			},
			{Title: "Evening", StartTime: &start},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []error
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "missing main event",
			mutate:  func(c *Config) { c.MainEventID = 0 },
			wantErr: []error{errz.ErrConfiguration, errz.ErrMissingRequiredField},
			wantMsg: "main_event_id",
		},
		{
			name:    "blank title template",
			mutate:  func(c *Config) { c.TitleTemplate = "  " },
			wantErr: []error{errz.ErrMissingRequiredField},
			wantMsg: "title_template",
		},
		{
			name:    "no rounds",
			mutate:  func(c *Config) { c.Rounds = nil },
			wantErr: []error{errz.ErrMissingRequiredField},
			wantMsg: "rounds",
		},
		{
			name:    "round without start time or groups",
			mutate:  func(c *Config) { c.Rounds[1].StartTime = nil },
			wantErr: []error{errz.ErrMissingStartTime},
			wantMsg: "round 2",
		},
		{
			name:    "round without title",
			mutate:  func(c *Config) { c.Rounds[0].Title = "" },
			wantErr: []error{errz.ErrMissingRequiredField},
			wantMsg: "round 1",
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Rounds[0].Groups[0].Interval = 0 },
			wantErr: []error{errz.ErrInvalidInterval},
			wantMsg: "groups[0]",
		},
		{
			name:    "reversed window",
			mutate:  func(c *Config) { c.Rounds[0].Groups[0].LastTime = NewClockTime(9, 0) },
			wantErr: []error{errz.ErrInvalidTimeRange},
			wantMsg: "10:00 > 09:00",
		},
		{
			name:    "negative max players",
			mutate:  func(c *Config) { c.Rounds[0].MaxPlayersInGroup = -1 },
			wantErr: []error{errz.ErrInvalidValue},
			wantMsg: "max_players_in_group",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "loud" },
			wantErr: []error{errz.ErrConfiguration},
			wantMsg: "unknown log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestConfig_ValidateReportsAllProblems(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.MainEventID = -1
	cfg.Rounds[0].Groups[0].Interval = 0
	cfg.Rounds[1].StartTime = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errz.ErrMissingRequiredField)
	assert.ErrorIs(t, err, errz.ErrInvalidInterval)
	assert.ErrorIs(t, err, errz.ErrMissingStartTime)
}
