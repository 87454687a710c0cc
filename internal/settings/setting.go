// Package settings models the field level mutations applied to the competition pages and
// the Setter that applies them against a Site.
package settings

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/atlanticdynamic/autodgm/internal/errz"
)

// Kind tags the variant of an AtomicSetting.
type Kind int

const (
	KindUnknown Kind = iota
	KindClickField
	KindSetText
	KindSetDate
	KindSetTime
	KindSelectCombo
	KindSubmit
	KindWait
	KindSetNumberOfGroups
	KindAutoFillGroupTimes
	KindToggleAccordionThenClick
	KindScriptClick
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindClickField:               "click",
	KindSetText:                  "text",
	KindSetDate:                  "date",
	KindSetTime:                  "time",
	KindSelectCombo:              "combo",
	KindSubmit:                   "submit",
	KindWait:                     "wait",
	KindSetNumberOfGroups:        "number-of-groups",
	KindAutoFillGroupTimes:       "group-times",
	KindToggleAccordionThenClick: "accordion-click",
	KindScriptClick:              "script-click",
}

// String returns the name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

const (
	// DateLayout is the default layout for date fields.
	DateLayout = "2006-01-02"
	// TimeLayout is the layout for time fields.
	TimeLayout = "15:04"

	// GroupNumberAttribute marks the start time input of each group.
	GroupNumberAttribute = "data-group-number"
	// GroupSaveButton saves the group start times.
	GroupSaveButton = "gm-save"

	// PanelDetails is the accordion index of the "Details" panel.
	PanelDetails = 0
	// PanelRegistrationForm is the accordion index of the "Player registration form" panel.
	PanelRegistrationForm = 2
)

// AtomicSetting is one field level mutation. Only the fields relevant to Kind are set, the
// target Site is supplied when the setting is applied.
type AtomicSetting struct {
	Kind Kind

	// FieldID is the element id the setting acts on.
	FieldID string
	// FieldName is the element name, only used by combo boxes selected by name.
	FieldName string

	Value  string
	Time   time.Time
	Layout string

	Duration time.Duration
	Count    int

	GroupTimes []AutoFillGroupTimeConfig

	Panel        int
	RestorePanel int
}

// ClickField clicks the element with the given id.
func ClickField(id string) AtomicSetting {
	return AtomicSetting{Kind: KindClickField, FieldID: id}
}

// SetText sets a text field.
func SetText(id, text string) AtomicSetting {
	return AtomicSetting{Kind: KindSetText, FieldID: id, Value: text}
}

// SetDate sets a date field using DateLayout.
func SetDate(id string, value time.Time) AtomicSetting {
	return SetDateWithLayout(id, value, DateLayout)
}

// SetDateWithLayout sets a date field using a custom layout.
func SetDateWithLayout(id string, value time.Time, layout string) AtomicSetting {
	return AtomicSetting{Kind: KindSetDate, FieldID: id, Time: value, Layout: layout}
}

// SetTime sets the time of day of a field as HH:MM.
func SetTime(id string, value time.Time) AtomicSetting {
	return AtomicSetting{Kind: KindSetTime, FieldID: id, Time: value, Layout: TimeLayout}
}

// NewComboBox selects a combo box value by name or by id. Exactly one of name and id must
// be given.
func NewComboBox(name, id, value string) (AtomicSetting, error) {
	if err := checkComboTarget(name, id); err != nil {
		return AtomicSetting{}, err
	}
	return AtomicSetting{Kind: KindSelectCombo, FieldName: name, FieldID: id, Value: value}, nil
}

func checkComboTarget(name, id string) error {
	switch {
	case name != "" && id != "":
		return errz.NewConfigurationError(
			"combo box",
			fmt.Sprintf("both field name (%s) and field id (%s) given", name, id),
			errz.ErrInvalidComboBox,
		)
	case name == "" && id == "":
		return errz.NewConfigurationError("combo box", "", errz.ErrInvalidComboBox)
	}
	return nil
}

// SelectComboByID selects a combo box value by element id.
func SelectComboByID(id, value string) AtomicSetting {
	return AtomicSetting{Kind: KindSelectCombo, FieldID: id, Value: value}
}

// SelectComboByName selects a combo box value by element name.
func SelectComboByName(name, value string) AtomicSetting {
	return AtomicSetting{Kind: KindSelectCombo, FieldName: name, Value: value}
}

// Submit submits the current form.
func Submit() AtomicSetting {
	return AtomicSetting{Kind: KindSubmit}
}

// Wait pauses for a fixed duration.
func Wait(d time.Duration) AtomicSetting {
	return AtomicSetting{Kind: KindWait, Duration: d}
}

// SetNumberOfGroups selects the number of groups and reloads the page so the group inputs
// are rendered.
func SetNumberOfGroups(id string, count int) AtomicSetting {
	return AtomicSetting{Kind: KindSetNumberOfGroups, FieldID: id, Count: count}
}

// AutoFillGroupTimes types the start time of every group and saves them.
func AutoFillGroupTimes(configs ...AutoFillGroupTimeConfig) AtomicSetting {
	return AtomicSetting{Kind: KindAutoFillGroupTimes, GroupTimes: slices.Clone(configs)}
}

// ToggleAccordionThenClick opens the registration form panel, clicks the field and goes
// back to the details panel.
func ToggleAccordionThenClick(id string) AtomicSetting {
	return AtomicSetting{
		Kind:         KindToggleAccordionThenClick,
		FieldID:      id,
		Panel:        PanelRegistrationForm,
		RestorePanel: PanelDetails,
	}
}

// ScriptClick clicks a field through the page script instead of a pointer event.
func ScriptClick(id string) AtomicSetting {
	return AtomicSetting{Kind: KindScriptClick, FieldID: id}
}

// String describes the setting for logs and plan output
func (s AtomicSetting) String() string {
	switch s.Kind {
	case KindClickField, KindScriptClick:
		return fmt.Sprintf("%s %s", s.Kind, s.FieldID)
	case KindSetText:
		return fmt.Sprintf("%s %s = %q", s.Kind, s.FieldID, s.Value)
	case KindSetDate, KindSetTime:
		return fmt.Sprintf("%s %s = %s", s.Kind, s.FieldID, s.Time.Format(s.Layout))
	case KindSelectCombo:
		if s.FieldName != "" {
			return fmt.Sprintf("%s name=%s = %q", s.Kind, s.FieldName, s.Value)
		}
		return fmt.Sprintf("%s %s = %q", s.Kind, s.FieldID, s.Value)
	case KindWait:
		return fmt.Sprintf("%s %s", s.Kind, s.Duration)
	case KindSetNumberOfGroups:
		return fmt.Sprintf("%s %s = %d", s.Kind, s.FieldID, s.Count)
	case KindAutoFillGroupTimes:
		total, _ := TotalGroups(s.GroupTimes...)
		return fmt.Sprintf("%s %d groups from %d windows", s.Kind, total, len(s.GroupTimes))
	case KindToggleAccordionThenClick:
		return fmt.Sprintf("%s %s (panel %d)", s.Kind, s.FieldID, s.Panel)
	default:
		return s.Kind.String()
	}
}

// Apply performs the setting against the site.
func (s AtomicSetting) Apply(ctx context.Context, site Site) error {
	switch s.Kind {
	case KindClickField:
		return site.Click(ctx, s.FieldID)

	case KindSetText:
		return site.SetFieldValue(ctx, s.FieldID, s.Value)

	case KindSetDate, KindSetTime:
		layout := s.Layout
		if layout == "" {
			layout = DateLayout
		}
		return site.SetFieldValue(ctx, s.FieldID, s.Time.Format(layout))

	case KindSelectCombo:
		if err := checkComboTarget(s.FieldName, s.FieldID); err != nil {
			return err
		}
		if s.FieldID != "" {
			return site.SelectComboValueByID(ctx, s.FieldID, s.Value)
		}
		return site.SelectComboValueByName(ctx, s.FieldName, s.Value)

	case KindSubmit:
		return site.Submit(ctx)

	case KindWait:
		timer := time.NewTimer(s.Duration)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}

	case KindSetNumberOfGroups:
		return applyNumberOfGroups(ctx, site, s.FieldID, s.Count)

	case KindAutoFillGroupTimes:
		return applyGroupTimes(ctx, site, s.GroupTimes)

	case KindToggleAccordionThenClick:
		return applyAccordionClick(ctx, site, s.FieldID, s.Panel, s.RestorePanel)

	case KindScriptClick:
		field, err := site.GetFieldByID(ctx, s.FieldID)
		if err != nil {
			return err
		}
		return site.RunScript(ctx, ScriptClickElement, field.ID())

	default:
		return fmt.Errorf("%w: setting kind %d", errz.ErrInvalidValue, s.Kind)
	}
}

func applyNumberOfGroups(ctx context.Context, site Site, id string, count int) error {
	field, err := site.GetFieldByID(ctx, id)
	if err != nil {
		return err
	}
	if err := field.SelectByValue(ctx, strconv.Itoa(count)); err != nil {
		return err
	}
	if err := site.WaitReady(ctx); err != nil {
		return err
	}
	if err := site.Refresh(ctx); err != nil {
		return err
	}
	return site.WaitReady(ctx)
}

func applyGroupTimes(ctx context.Context, site Site, configs []AutoFillGroupTimeConfig) error {
	slots, err := GroupSlots(configs...)
	if err != nil {
		return err
	}
	for _, slot := range slots {
		err := site.SetFirstValueByAttribute(
			ctx,
			GroupNumberAttribute,
			strconv.Itoa(slot.Number),
			slot.Start.Format(GroupTimeLayout),
		)
		if err != nil {
			return fmt.Errorf("group %d: %w", slot.Number, err)
		}
	}

	save, err := site.GetFieldByID(ctx, GroupSaveButton)
	if err != nil {
		return err
	}
	return save.Click(ctx)
}

func applyAccordionClick(ctx context.Context, site Site, id string, panel, restore int) error {
	if err := site.RunScript(ctx, ScriptOpenAccordionPanel, panel); err != nil {
		return err
	}
	if err := site.WaitReady(ctx); err != nil {
		return err
	}
	if err := site.Click(ctx, id); err != nil {
		return err
	}
	if err := site.RunScript(ctx, ScriptOpenAccordionPanel, restore); err != nil {
		return err
	}
	return site.WaitReady(ctx)
}
