package rounds

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/config"
	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/charmbracelet/lipgloss/tree"
)

// Placeholders replaced in titles and comments.
const (
	PlaceholderWeek = "{week}"
	PlaceholderDate = "{date}"
)

// EventPlan is everything created for one week: the multi-round event and its rounds.
type EventPlan struct {
	ParentID string
	Week     int
	Date     time.Time
	Title    string
	Comment  string
	Weekly   bool
	Rounds   []RoundPlan
}

// RoundPlan is one round of an EventPlan.
type RoundPlan struct {
	Index             int
	Date              time.Time
	Title             string
	Comment           string
	Registration      Registration
	Groups            []settings.AutoFillGroupTimeConfig
	MaxPlayersInGroup int
}

// NewEventPlan derives the plan of the given 1-based week. The event takes place week-1
// weeks after startDate, at midnight.
func NewEventPlan(cfg *config.Config, startDate time.Time, week int) (*EventPlan, error) {
	if cfg == nil {
		return nil, errz.NewConfigurationError("config", "", errz.ErrMissingRequiredField)
	}
	if week < 1 {
		return nil, errz.NewConfigurationError("week", fmt.Sprintf("%d is not a positive week number", week), errz.ErrInvalidValue)
	}

	year, month, day := startDate.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, startDate.Location()).AddDate(0, 0, (week-1)*7)
	replacer := strings.NewReplacer(
		PlaceholderWeek, strconv.Itoa(week),
		PlaceholderDate, date.Format(settings.DateLayout),
	)

	plan := &EventPlan{
		ParentID: cfg.ParentID(),
		Week:     week,
		Date:     date,
		Title:    replacer.Replace(cfg.TitleTemplate),
		Comment:  replacer.Replace(cfg.Comment),
		Weekly:   cfg.IsWeeklies,
		Rounds:   make([]RoundPlan, 0, len(cfg.Rounds)),
	}

	for i, round := range cfg.Rounds {
		start, ok := round.StartTimeOfDay()
		if !ok {
			return nil, errz.NewConfigurationError(
				fmt.Sprintf("rounds[%d].start_time", i),
				round.Title,
				errz.ErrMissingStartTime,
			)
		}

		plan.Rounds = append(plan.Rounds, RoundPlan{
			Index:             i + 1,
			Date:              start.On(date),
			Title:             replacer.Replace(round.Title),
			Comment:           replacer.Replace(round.Comment),
			Registration:      DeriveRegistration(round, date),
			Groups:            GroupTimeConfigs(round.Groups),
			MaxPlayersInGroup: round.MaxPlayersInGroup,
		})
	}

	return plan, nil
}

// GroupTimeConfigs converts configured group windows to auto-fill configs
func GroupTimeConfigs(windows []config.GroupWindow) []settings.AutoFillGroupTimeConfig {
	if len(windows) == 0 {
		return nil
	}
	configs := make([]settings.AutoFillGroupTimeConfig, 0, len(windows))
	for _, w := range windows {
		configs = append(configs, settings.AutoFillGroupTimeConfig{
			FirstTime: w.FirstTime.Time(),
			LastTime:  w.LastTime.Time(),
			Interval:  w.Interval.AsDuration(),
		})
	}
	return configs
}

// Request returns the creation request of the multi-round event
func (p *EventPlan) Request() CreationRequest {
	return CreationRequest{
		ParentID:   p.ParentID,
		RecordType: RecordTypeMultiRoundEvent,
		Date:       p.Date,
		Title:      p.Title,
		Comment:    p.Comment,
	}
}

// WeeklySettings returns the settings of the created multi-round event
func (p *EventPlan) WeeklySettings(eventID string) *WeeklyRoundSettings {
	return ComposeWeeklyRoundSettings(eventID, p.Weekly)
}

// Request returns the creation request of the round under the multi-round event
func (r RoundPlan) Request(eventID string) CreationRequest {
	return CreationRequest{
		ParentID:   eventID,
		RecordType: RecordTypeRound,
		Date:       r.Date,
		Title:      r.Title,
		Comment:    r.Comment,
	}
}

// Settings composes the settings of the created round
func (r RoundPlan) Settings(roundID string) (*RoundSettings, error) {
	return ComposeRoundSettings(roundID, r.Registration, r.Groups, r.MaxPlayersInGroup)
}

// String returns a tree representation of the plan
func (p *EventPlan) String() string {
	return p.ToTree().String()
}

// ToTree renders the plan with placeholder ids, since nothing is created yet
func (p *EventPlan) ToTree() *tree.Tree {
	const pendingID = "<new>"

	t := fancy.Tree()
	t.Root(fancy.EventText(fmt.Sprintf("%s (%s)", p.Title, p.Date.Format(settings.DateLayout))))
	t.Child(fancy.BranchNode("Create", p.Request().Path()))
	for _, b := range p.WeeklySettings(pendingID).Bundles() {
		t.Child(b.ToTree())
	}

	for _, r := range p.Rounds {
		rt := fancy.Tree()
		rt.Root(fancy.RoundText(fmt.Sprintf("Round %d: %s (%s)", r.Index, r.Title, r.Date.Format("2006-01-02 15:04"))))
		rt.Child(fancy.BranchNode("Create", r.Request(pendingID).Path()))
		rt.Child(fancy.BranchNode(
			"Registration",
			fmt.Sprintf("%s - %s", r.Registration.Start.Format("2006-01-02 15:04"), r.Registration.End.Format("2006-01-02 15:04")),
		))

		rs, err := r.Settings(pendingID)
		if err != nil {
			rt.Child(fancy.ErrorText(err.Error()))
		} else {
			for _, b := range rs.Bundles() {
				rt.Child(b.ToTree())
			}
		}
		t.Child(rt)
	}
	return t
}
