package settings

import (
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
)

// GroupTimeLayout is the layout group start times are typed in with.
const GroupTimeLayout = "15:04"

// AutoFillGroupTimeConfig describes evenly spaced group start times, both ends included.
type AutoFillGroupTimeConfig struct {
	FirstTime time.Time
	LastTime  time.Time
	Interval  time.Duration
}

// NumberOfGroups returns floor((LastTime - FirstTime) / Interval) + 1.
func (c AutoFillGroupTimeConfig) NumberOfGroups() (int, error) {
	if c.Interval <= 0 {
		return 0, errz.NewConfigurationError(
			"interval",
			c.Interval.String(),
			errz.ErrInvalidInterval,
		)
	}
	if c.LastTime.Before(c.FirstTime) {
		return 0, errz.NewConfigurationError(
			"last_time",
			c.FirstTime.Format(GroupTimeLayout)+" > "+c.LastTime.Format(GroupTimeLayout),
			errz.ErrInvalidTimeRange,
		)
	}
	return int(c.LastTime.Sub(c.FirstTime)/c.Interval) + 1, nil
}

// GroupSlot is one group number together with its start time.
type GroupSlot struct {
	Number int
	Start  time.Time
}

// TotalGroups sums the number of groups of all configs.
func TotalGroups(configs ...AutoFillGroupTimeConfig) (int, error) {
	total := 0
	for _, cfg := range configs {
		n, err := cfg.NumberOfGroups()
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// GroupSlots numbers the groups of all configs in the order given. Numbering starts at 1 and
// continues across configs.
func GroupSlots(configs ...AutoFillGroupTimeConfig) ([]GroupSlot, error) {
	total, err := TotalGroups(configs...)
	if err != nil {
		return nil, err
	}

	slots := make([]GroupSlot, 0, total)
	offset := 0
	for _, cfg := range configs {
		// already validated by TotalGroups
		n, _ := cfg.NumberOfGroups()
		start := cfg.FirstTime
		for i := 1; i <= n; i++ {
			slots = append(slots, GroupSlot{Number: offset + i, Start: start})
			start = start.Add(cfg.Interval)
		}
		offset += n
	}
	return slots, nil
}
