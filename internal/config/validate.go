package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/autodgm/internal/errz"
)

// Validate checks the whole document and reports every problem found
func (c *Config) Validate() error {
	errs := []error{}

	if c.MainEventID <= 0 {
		errs = append(errs, errz.NewConfigurationError("main_event_id", "must be a positive id", errz.ErrMissingRequiredField))
	}
	if strings.TrimSpace(c.TitleTemplate) == "" {
		errs = append(errs, errz.NewConfigurationError("title_template", "", errz.ErrMissingRequiredField))
	}
	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, errz.NewConfigurationError("logging", "", err))
	}
	if len(c.Rounds) == 0 {
		errs = append(errs, errz.NewConfigurationError("rounds", "at least one round is required", errz.ErrMissingRequiredField))
	}

	for i, round := range c.Rounds {
		if err := round.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("round %d: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

// Validate checks a single round
func (r Round) Validate() error {
	errs := []error{}

	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, errz.NewConfigurationError("title", "", errz.ErrMissingRequiredField))
	}
	if _, ok := r.StartTimeOfDay(); !ok {
		errs = append(errs, errz.NewConfigurationError("start_time", "", errz.ErrMissingStartTime))
	}
	if r.MaxPlayersInGroup < 0 {
		errs = append(errs, errz.NewConfigurationError(
			"max_players_in_group",
			fmt.Sprintf("%d is negative", r.MaxPlayersInGroup),
			errz.ErrInvalidValue,
		))
	}

	for i, g := range r.Groups {
		field := fmt.Sprintf("groups[%d]", i)
		if g.Interval <= 0 {
			errs = append(errs, errz.NewConfigurationError(field, g.Interval.String(), errz.ErrInvalidInterval))
		}
		if g.LastTime.Before(g.FirstTime) {
			errs = append(errs, errz.NewConfigurationError(
				field,
				fmt.Sprintf("%s > %s", g.FirstTime, g.LastTime),
				errz.ErrInvalidTimeRange,
			))
		}
	}

	return errors.Join(errs...)
}
