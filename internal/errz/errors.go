// Package errz provides shared error definitions for the settings, rounds and config packages.
package errz

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Top-level error categories
var (
	ErrConfiguration = errors.New("configuration error")
	ErrCreation      = errors.New("round not created successfully")
)

// Configuration specific errors
var (
	ErrInvalidInterval      = errors.New("interval must be positive")
	ErrInvalidTimeRange     = errors.New("last time is before first time")
	ErrInvalidGroupCount    = errors.New("number of groups must be positive")
	ErrInvalidComboBox      = errors.New("exactly one of field name or field id must be specified")
	ErrMissingStartTime     = errors.New("round needs a start time or at least one group")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidValue         = errors.New("invalid value")
)

// ConfigurationError reports an invalid or missing derived value.
type ConfigurationError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(field, message string, err error) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrConfiguration.Error())
	if e.Field != "" {
		fmt.Fprintf(&b, " in %s", e.Field)
	}
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is makes every ConfigurationError match ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// CreationError reports that the remote site did not confirm a round creation. Messages
// holds every response query parameter whose key starts with "message".
type CreationError struct {
	Messages url.Values
}

// NewCreationError keeps the message parameters of a creation response.
func NewCreationError(params url.Values) *CreationError {
	messages := url.Values{}
	for key, values := range params {
		if strings.HasPrefix(key, "message") {
			messages[key] = append([]string(nil), values...)
		}
	}
	return &CreationError{Messages: messages}
}

// Error implements the error interface
func (e *CreationError) Error() string {
	keys := make([]string, 0, len(e.Messages))
	for key := range e.Messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", key, strings.Join(e.Messages[key], ",")))
	}
	return fmt.Sprintf("%s: [%s]", ErrCreation.Error(), strings.Join(pairs, " "))
}

// Is makes every CreationError match ErrCreation.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreation
}
