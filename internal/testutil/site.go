// Package testutil provides test doubles shared across packages.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// RecordingSite implements settings.Site and records every call as a short line, so tests can
// assert the exact order of browser interactions.
type RecordingSite struct {
	mu    sync.Mutex
	calls []string

	// Responses are returned by CurrentQueryParameters, one per call. The last response is
	// repeated once the queue is drained.
	Responses []url.Values

	// FailOn makes the first call whose line starts with the key return the error.
	FailOn map[string]error

	// MissingFields makes GetFieldByID fail for the listed ids.
	MissingFields map[string]bool
}

// NewRecordingSite creates a RecordingSite returning the given query parameters
func NewRecordingSite(responses ...url.Values) *RecordingSite {
	return &RecordingSite{
		Responses:     responses,
		FailOn:        map[string]error{},
		MissingFields: map[string]bool{},
	}
}

// Calls returns a copy of the recorded calls
func (r *RecordingSite) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// CallsWithPrefix returns the recorded calls starting with prefix
func (r *RecordingSite) CallsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range r.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets the recorded calls
func (r *RecordingSite) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *RecordingSite) record(format string, args ...any) error {
	line := fmt.Sprintf(format, args...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, line)
	for prefix, err := range r.FailOn {
		if strings.HasPrefix(line, prefix) {
			delete(r.FailOn, prefix)
			return err
		}
	}
	return nil
}

// Navigate records "navigate <path>"
func (r *RecordingSite) Navigate(_ context.Context, path string) error {
	return r.record("navigate %s", path)
}

// GetFieldByID records "field <id>"
func (r *RecordingSite) GetFieldByID(_ context.Context, id string) (settings.Field, error) {
	if err := r.record("field %s", id); err != nil {
		return nil, err
	}
	if r.MissingFields[id] {
		return nil, fmt.Errorf("element %q not found", id)
	}
	return &recordedField{site: r, id: id}, nil
}

// Click records "click <id>"
func (r *RecordingSite) Click(_ context.Context, id string) error {
	return r.record("click %s", id)
}

// SetFieldValue records "set <id>=<text>"
func (r *RecordingSite) SetFieldValue(_ context.Context, id, text string) error {
	return r.record("set %s=%s", id, text)
}

// SetFirstValueByAttribute records "attr <name>=<value> <text>"
func (r *RecordingSite) SetFirstValueByAttribute(
	_ context.Context,
	attributeName, attributeValue, text string,
) error {
	return r.record("attr %s=%s %s", attributeName, attributeValue, text)
}

// SelectComboValueByName records "combo-name <name>=<value>"
func (r *RecordingSite) SelectComboValueByName(_ context.Context, name, value string) error {
	return r.record("combo-name %s=%s", name, value)
}

// SelectComboValueByID records "combo-id <id>=<value>"
func (r *RecordingSite) SelectComboValueByID(_ context.Context, id, value string) error {
	return r.record("combo-id %s=%s", id, value)
}

// Submit records "submit"
func (r *RecordingSite) Submit(_ context.Context) error {
	return r.record("submit")
}

// Refresh records "refresh"
func (r *RecordingSite) Refresh(_ context.Context) error {
	return r.record("refresh")
}

// RunScript records "script <name> <json args>"
func (r *RecordingSite) RunScript(_ context.Context, script settings.Script, args ...any) error {
	encoded, err := json.Marshal(args)
	if err != nil {
		return err
	}
	return r.record("script %s %s", script.Name(), encoded)
}

// WaitReady records "wait"
func (r *RecordingSite) WaitReady(_ context.Context) error {
	return r.record("wait")
}

// CurrentLocation builds a location from the next queued response
func (r *RecordingSite) CurrentLocation(ctx context.Context) (*url.URL, error) {
	params, err := r.CurrentQueryParameters(ctx)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "https", Host: "example.test", Path: "/", RawQuery: params.Encode()}, nil
}

// CurrentQueryParameters records "query" and pops the next queued response
func (r *RecordingSite) CurrentQueryParameters(_ context.Context) (url.Values, error) {
	if err := r.record("query"); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	switch len(r.Responses) {
	case 0:
		return url.Values{}, nil
	case 1:
		return r.Responses[0], nil
	default:
		next := r.Responses[0]
		r.Responses = r.Responses[1:]
		return next, nil
	}
}

type recordedField struct {
	site *RecordingSite
	id   string
}

func (f *recordedField) ID() string {
	return f.id
}

func (f *recordedField) Click(_ context.Context) error {
	return f.site.record("field-click %s", f.id)
}

func (f *recordedField) SelectByValue(_ context.Context, value string) error {
	return f.site.record("field-select %s=%s", f.id, value)
}
