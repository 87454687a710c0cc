package rounds

import (
	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// WeeklyRoundSettings holds the settings of the multi-round event. Basic is nil unless the
// event is part of a weekly series.
type WeeklyRoundSettings struct {
	RoundID string
	Basic   *settings.BundledSetting
}

// ComposeWeeklyRoundSettings marks the event as weekly when isWeekly is set.
func ComposeWeeklyRoundSettings(roundID string, isWeekly bool) *WeeklyRoundSettings {
	ws := &WeeklyRoundSettings{RoundID: roundID}
	if isWeekly {
		basic := settings.NewBundledSetting(
			"Basic",
			SubPathBasic,
			roundID,
			settings.ClickField(FieldWeekly),
			settings.Submit(),
		)
		ws.Basic = &basic
	}
	return ws
}

// Bundles returns zero or one bundle
func (ws *WeeklyRoundSettings) Bundles() []settings.BundledSetting {
	if ws.Basic == nil {
		return nil
	}
	return []settings.BundledSetting{*ws.Basic}
}
