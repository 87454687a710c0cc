package mocks

import (
	"context"
	"net/url"

	"github.com/atlanticdynamic/autodgm/internal/settings"
	"github.com/stretchr/testify/mock"
)

// MockSite is a mock implementation of the settings.Site interface for testing
type MockSite struct {
	mock.Mock
}

// NewMockSite creates a new MockSite instance
func NewMockSite() *MockSite {
	return &MockSite{}
}

// Navigate mocks the Navigate method
func (m *MockSite) Navigate(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// GetFieldByID mocks the GetFieldByID method
func (m *MockSite) GetFieldByID(ctx context.Context, id string) (settings.Field, error) {
	args := m.Called(ctx, id)
	field, _ := args.Get(0).(settings.Field)
	return field, args.Error(1)
}

// Click mocks the Click method
func (m *MockSite) Click(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// SetFieldValue mocks the SetFieldValue method
func (m *MockSite) SetFieldValue(ctx context.Context, id, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

// SetFirstValueByAttribute mocks the SetFirstValueByAttribute method
func (m *MockSite) SetFirstValueByAttribute(
	ctx context.Context,
	attributeName, attributeValue, text string,
) error {
	args := m.Called(ctx, attributeName, attributeValue, text)
	return args.Error(0)
}

// SelectComboValueByName mocks the SelectComboValueByName method
func (m *MockSite) SelectComboValueByName(ctx context.Context, name, value string) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

// SelectComboValueByID mocks the SelectComboValueByID method
func (m *MockSite) SelectComboValueByID(ctx context.Context, id, value string) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

// Submit mocks the Submit method
func (m *MockSite) Submit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Refresh mocks the Refresh method
func (m *MockSite) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// RunScript mocks the RunScript method
func (m *MockSite) RunScript(ctx context.Context, script settings.Script, scriptArgs ...any) error {
	args := m.Called(ctx, script, scriptArgs)
	return args.Error(0)
}

// WaitReady mocks the WaitReady method
func (m *MockSite) WaitReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// CurrentLocation mocks the CurrentLocation method
func (m *MockSite) CurrentLocation(ctx context.Context) (*url.URL, error) {
	args := m.Called(ctx)
	loc, _ := args.Get(0).(*url.URL)
	return loc, args.Error(1)
}

// CurrentQueryParameters mocks the CurrentQueryParameters method
func (m *MockSite) CurrentQueryParameters(ctx context.Context) (url.Values, error) {
	args := m.Called(ctx)
	params, _ := args.Get(0).(url.Values)
	return params, args.Error(1)
}

// MockField is a mock implementation of the settings.Field interface
type MockField struct {
	mock.Mock
	FieldID string
}

// NewMockField creates a MockField with the given element id
func NewMockField(id string) *MockField {
	return &MockField{FieldID: id}
}

// ID returns the element id of the field
func (m *MockField) ID() string {
	return m.FieldID
}

// Click mocks the Click method
func (m *MockField) Click(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// SelectByValue mocks the SelectByValue method
func (m *MockField) SelectByValue(ctx context.Context, value string) error {
	args := m.Called(ctx, value)
	return args.Error(0)
}
