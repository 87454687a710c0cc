package settings

import (
	"context"
	"net/url"
)

// Site is the capability set of the browser layer that settings are applied against. A Site
// holds a single navigation state, so calls must not be made concurrently.
type Site interface {
	// Navigate opens the site with the given query path. An empty path opens the base URL.
	Navigate(ctx context.Context, path string) error

	// GetFieldByID returns a handle to the element with the given id.
	GetFieldByID(ctx context.Context, id string) (Field, error)

	// Click clicks the element with the given id.
	Click(ctx context.Context, id string) error

	// SetFieldValue sets the value of the element with the given id.
	SetFieldValue(ctx context.Context, id, text string) error

	// SetFirstValueByAttribute sets the value of the first element whose attribute
	// attributeName equals attributeValue.
	SetFirstValueByAttribute(ctx context.Context, attributeName, attributeValue, text string) error

	// SelectComboValueByName selects a value on the first combo box with the given name.
	SelectComboValueByName(ctx context.Context, name, value string) error

	// SelectComboValueByID selects a value on the combo box with the given id.
	SelectComboValueByID(ctx context.Context, id, value string) error

	// Submit clicks the first submit button of the current page.
	Submit(ctx context.Context) error

	// Refresh reloads the current page.
	Refresh(ctx context.Context) error

	// RunScript runs one of the named page scripts with the given arguments.
	RunScript(ctx context.Context, script Script, args ...any) error

	// WaitReady blocks until the current page has settled after an action.
	WaitReady(ctx context.Context) error

	// CurrentLocation returns the URL of the current page.
	CurrentLocation(ctx context.Context) (*url.URL, error)

	// CurrentQueryParameters returns the query parameters of the current page.
	CurrentQueryParameters(ctx context.Context) (url.Values, error)
}

// Field is an opaque handle to a page element.
type Field interface {
	ID() string
	Click(ctx context.Context) error
	SelectByValue(ctx context.Context, value string) error
}

// Script is a page script the core is allowed to run. Scripts are JavaScript function
// expressions, the Site calls them with the JSON encoded arguments.
type Script string

const (
	// ScriptOpenAccordionPanel opens the accordion panel at the given index.
	ScriptOpenAccordionPanel Script = `(index) => document.getElementById("accordion").children[index].children[0].children[0].click()`

	// ScriptClickElement clicks the element with the given id without scrolling it into view.
	ScriptClickElement Script = `(id) => document.getElementById(id).click()`
)

// Name returns a short name for the script, used in logs.
func (s Script) Name() string {
	switch s {
	case ScriptOpenAccordionPanel:
		return "open-accordion-panel"
	case ScriptClickElement:
		return "click-element"
	default:
		return "unknown"
	}
}
