package rounds

import (
	"testing"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(hour, minute int) time.Time {
	return time.Date(1, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func sampleRegistration() Registration {
	return Registration{
		Start: time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2023, time.March, 7, 23, 0, 0, 0, time.UTC),
	}
}

func flexGroupConfigs() []settings.AutoFillGroupTimeConfig {
	return []settings.AutoFillGroupTimeConfig{
		{FirstTime: clock(10, 0), LastTime: clock(18, 0), Interval: 15 * time.Minute},
		{FirstTime: clock(18, 45), LastTime: clock(22, 0), Interval: 15 * time.Minute},
	}
}

func TestComposeRoundSettings_WithGroups(t *testing.T) {
	t.Parallel()

	rs, err := ComposeRoundSettings("123", sampleRegistration(), flexGroupConfigs(), 5)
	require.NoError(t, err)
	assert.Equal(t, "123", rs.RoundID)

	bundles := rs.Bundles()
	require.Len(t, bundles, 3)
	assert.Equal(t, []string{"Groups", "Registration", "Results"}, []string{
		bundles[0].Name(), bundles[1].Name(), bundles[2].Name(),
	})

	require.NotNil(t, rs.Groups)
	assert.Equal(t, "u=competition_edit_groups&ID=123", rs.Groups.Path())
	assert.Equal(t, []settings.AtomicSetting{
		settings.SetNumberOfGroups(FieldNumberOfGroups, 47),
		settings.SelectComboByID(FieldGroupStart, "2"),
		settings.SelectComboByID(FieldMaxPlayersInGroup, "5"),
		settings.AutoFillGroupTimes(flexGroupConfigs()...),
	}, rs.Groups.Settings())

	reg := rs.Registration.Settings()
	assert.Equal(t, "u=competition_edit_registration&ID=123", rs.Registration.Path())
	require.Len(t, reg, 7)
	assert.Equal(t, settings.ClickField(FieldRegistrationEnabled), reg[0])
	assert.Equal(t, settings.SetDate(FieldRegistrationStart, sampleRegistration().Start), reg[1])
	assert.Equal(t, settings.SetTime(FieldRegistrationStartAt, sampleRegistration().Start), reg[2])
	assert.Equal(t, settings.SetDate(FieldRegistrationEnd, sampleRegistration().End), reg[3])
	assert.Equal(t, settings.SetTime(FieldRegistrationEndAt, sampleRegistration().End), reg[4])
	assert.Equal(t, settings.ToggleAccordionThenClick(FieldAskForGroup), reg[5])
	assert.Equal(t, settings.Submit(), reg[6])

	assert.Equal(t, "u=competition_edit_result&ID=123", rs.Results.Path())
	assert.Equal(t, []settings.AtomicSetting{settings.ScriptClick(FieldShowGroupsInResults)}, rs.Results.Settings())
}

func TestComposeRoundSettings_WithoutGroups(t *testing.T) {
	t.Parallel()

	rs, err := ComposeRoundSettings("456", sampleRegistration(), nil, 5)
	require.NoError(t, err)
	assert.Nil(t, rs.Groups)

	bundles := rs.Bundles()
	require.Len(t, bundles, 2)
	assert.Equal(t, "Registration", bundles[0].Name())
	assert.Equal(t, "Results", bundles[1].Name())

	for _, s := range rs.Registration.Settings() {
		assert.NotEqual(t, settings.KindToggleAccordionThenClick, s.Kind, "ask for group needs groups")
	}
	last := rs.Registration.Settings()[rs.Registration.Len()-1]
	assert.Equal(t, settings.KindSubmit, last.Kind)
}

func TestComposeRoundSettings_MaxPlayersUnset(t *testing.T) {
	t.Parallel()

	rs, err := ComposeRoundSettings("1", sampleRegistration(), flexGroupConfigs(), 0)
	require.NoError(t, err)
	for _, s := range rs.Groups.Settings() {
		assert.NotEqual(t, FieldMaxPlayersInGroup, s.FieldID)
	}
	assert.Equal(t, 3, rs.Groups.Len())
}

func TestComposeRoundSettings_InvalidGroups(t *testing.T) {
	t.Parallel()

	_, err := ComposeRoundSettings("1", sampleRegistration(), []settings.AutoFillGroupTimeConfig{
		{FirstTime: clock(10, 0), LastTime: clock(9, 0), Interval: 15 * time.Minute},
	}, 0)
	require.ErrorIs(t, err, errz.ErrConfiguration)
	require.ErrorIs(t, err, errz.ErrInvalidTimeRange)

	_, err = ComposeRoundSettings("1", sampleRegistration(), []settings.AutoFillGroupTimeConfig{
		{FirstTime: clock(10, 0), LastTime: clock(11, 0)},
	}, 0)
	require.ErrorIs(t, err, errz.ErrInvalidInterval)
}

func TestComposeRoundSettings_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := ComposeRoundSettings("9", sampleRegistration(), flexGroupConfigs(), 4)
	require.NoError(t, err)
	second, err := ComposeRoundSettings("9", sampleRegistration(), flexGroupConfigs(), 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestRoundSettings_String(t *testing.T) {
	t.Parallel()

	rs, err := ComposeRoundSettings("77", sampleRegistration(), flexGroupConfigs(), 0)
	require.NoError(t, err)

	rendered := rs.String()
	assert.Contains(t, rendered, "Round 77")
	assert.Contains(t, rendered, "u=competition_edit_groups&ID=77")
	assert.Contains(t, rendered, "number-of-groups i01 = 47")
	assert.Contains(t, rendered, "accordion-click id_ask_group (panel 2)")
	assert.Contains(t, rendered, "script-click id_show_groups")
}

func TestGroupStart_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", GroupStartShotgun.String())
	assert.Equal(t, "1", GroupStartTee.String())
	assert.Equal(t, "2", GroupStartFlex.String())
}
