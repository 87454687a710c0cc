// Package rounds turns the weekly event configuration into the competitions to create and
// the settings to apply on each of them.
package rounds

import (
	"strconv"

	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/atlanticdynamic/autodgm/internal/fancy"
	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// GroupStart is the way groups start a round.
type GroupStart int

const (
	GroupStartShotgun GroupStart = 0
	GroupStartTee     GroupStart = 1
	GroupStartFlex    GroupStart = 2
)

// String returns the form value of the group start mode
func (g GroupStart) String() string {
	return strconv.Itoa(int(g))
}

// Pages of a competition and the fields set on them.
const (
	SubPathBasic        = "competition_edit"
	SubPathGroups       = "competition_edit_groups"
	SubPathRegistration = "competition_edit_registration"
	SubPathResults      = "competition_edit_result"

	FieldNumberOfGroups    = "i01"
	FieldGroupStart        = "i02"
	FieldMaxPlayersInGroup = "i03"

	FieldRegistrationEnabled = "id_registration_yes1"
	FieldRegistrationStart   = "i01"
	FieldRegistrationStartAt = "i02"
	FieldRegistrationEnd     = "i03"
	FieldRegistrationEndAt   = "i04"
	FieldAskForGroup         = "id_ask_group"

	FieldShowGroupsInResults = "id_show_groups"

	FieldWeekly = "id_weekly1"
)

// RoundSettings holds the settings bundles of one round. Groups is nil when the round has
// no group start times.
type RoundSettings struct {
	RoundID      string
	Groups       *settings.BundledSetting
	Registration settings.BundledSetting
	Results      settings.BundledSetting
}

// ComposeRoundSettings builds the settings of a round. maxPlayersInGroup is left untouched
// on the site when zero.
//
// The "ask for group" toggle is only added to the registration page when groups are
// configured, since the site only offers it once groups exist.
func ComposeRoundSettings(
	roundID string,
	registration Registration,
	groupConfigs []settings.AutoFillGroupTimeConfig,
	maxPlayersInGroup int,
) (*RoundSettings, error) {
	rs := &RoundSettings{RoundID: roundID}

	hasGroups := len(groupConfigs) > 0
	if hasGroups {
		groups, err := composeGroupSettings(roundID, groupConfigs, maxPlayersInGroup)
		if err != nil {
			return nil, err
		}
		rs.Groups = &groups
	}

	rs.Registration = composeRegistrationSettings(roundID, registration, hasGroups)
	rs.Results = settings.NewBundledSetting(
		"Results",
		SubPathResults,
		roundID,
		settings.ScriptClick(FieldShowGroupsInResults),
	)
	return rs, nil
}

// Bundles returns the bundles in the order they must be applied: groups, registration,
// results.
func (rs *RoundSettings) Bundles() []settings.BundledSetting {
	bundles := make([]settings.BundledSetting, 0, 3)
	if rs.Groups != nil {
		bundles = append(bundles, *rs.Groups)
	}
	return append(bundles, rs.Registration, rs.Results)
}

// String returns a tree representation of the round settings
func (rs *RoundSettings) String() string {
	t := fancy.Tree()
	t.Root(fancy.RoundText("Round " + rs.RoundID))
	for _, b := range rs.Bundles() {
		t.Child(b.ToTree())
	}
	return t.String()
}

func composeGroupSettings(
	roundID string,
	configs []settings.AutoFillGroupTimeConfig,
	maxPlayersInGroup int,
) (settings.BundledSetting, error) {
	total, err := settings.TotalGroups(configs...)
	if err != nil {
		return settings.BundledSetting{}, err
	}
	if total <= 0 {
		return settings.BundledSetting{}, errz.NewConfigurationError(
			"groups",
			strconv.Itoa(total),
			errz.ErrInvalidGroupCount,
		)
	}

	steps := []settings.AtomicSetting{
		settings.SetNumberOfGroups(FieldNumberOfGroups, total),
		settings.SelectComboByID(FieldGroupStart, GroupStartFlex.String()),
	}
	if maxPlayersInGroup > 0 {
		steps = append(steps, settings.SelectComboByID(FieldMaxPlayersInGroup, strconv.Itoa(maxPlayersInGroup)))
	}
	steps = append(steps, settings.AutoFillGroupTimes(configs...))

	return settings.NewBundledSetting("Groups", SubPathGroups, roundID, steps...), nil
}

func composeRegistrationSettings(
	roundID string,
	registration Registration,
	askForGroup bool,
) settings.BundledSetting {
	steps := []settings.AtomicSetting{
		settings.ClickField(FieldRegistrationEnabled),
		settings.SetDate(FieldRegistrationStart, registration.Start),
		settings.SetTime(FieldRegistrationStartAt, registration.Start),
		settings.SetDate(FieldRegistrationEnd, registration.End),
		settings.SetTime(FieldRegistrationEndAt, registration.End),
	}
	if askForGroup {
		steps = append(steps, settings.ToggleAccordionThenClick(FieldAskForGroup))
	}
	steps = append(steps, settings.Submit())

	return settings.NewBundledSetting("Registration", SubPathRegistration, roundID, steps...)
}
