package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"WEEK_LABEL": "Runde",
		"EMPTY":      "",
		"VAR1":       "a",
		"VAR2":       "b",
	}
	lookup := func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}

	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "no references", input: "Weekly league", expected: "Weekly league"},
		{name: "single reference", input: "${WEEK_LABEL} {week}", expected: "Runde {week}"},
		{name: "multiple references", input: "${VAR1}/${VAR2}", expected: "a/b"},
		{name: "set but empty", input: "[${EMPTY}]", expected: "[]"},
		{name: "default used", input: "${MISSING:Flex}", expected: "Flex"},
		{name: "empty default", input: "x${MISSING:}y", expected: "xy"},
		{name: "set value wins over default", input: "${VAR1:z}", expected: "a"},
		{name: "default with spaces", input: "${MISSING:Joint start}", expected: "Joint start"},
		{name: "missing without default", input: "${MISSING}", expected: "${MISSING}", expectError: true},
		{name: "invalid name is left alone", input: "${1ABC}", expected: "${1ABC}"},
		{name: "python style braces untouched", input: "{week}", expected: "{week}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Expand(tt.input, lookup)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "environment variable not defined")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("AUTODGM_TEST_COMMENT", "See you on the course")

	result, err := ExpandEnvVars("${AUTODGM_TEST_COMMENT}!")
	require.NoError(t, err)
	assert.Equal(t, "See you on the course!", result)
}
