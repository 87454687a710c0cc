// Package interpolation expands environment variable references in configuration strings.
package interpolation

import (
	"errors"
	"fmt"
	"os"
	"regexp"
)

// Pattern for ${VAR_NAME} and ${VAR_NAME:default} syntax - captures colon explicitly
var envVarWithDefaultPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:)?([^}]*)\}`)

// LookupFunc resolves a variable name, reporting whether it is set.
type LookupFunc func(name string) (string, bool)

// ExpandEnvVars expands references in the format ${VAR_NAME} or ${VAR_NAME:default} from the
// process environment. A missing variable without a default is an error and the reference
// is left in place.
func ExpandEnvVars(input string) (string, error) {
	return Expand(input, os.LookupEnv)
}

// Expand expands references using lookup.
func Expand(input string, lookup LookupFunc) (string, error) {
	if input == "" {
		return "", nil
	}

	var missingVars []error
	result := envVarWithDefaultPattern.ReplaceAllStringFunc(input, func(match string) string {
		// [full_match, varName, colon, defaultValue]
		submatches := envVarWithDefaultPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] == ":"

		if value, ok := lookup(varName); ok {
			return value
		}
		// ${VAR:} defaults to the empty string
		if hasDefault {
			return submatches[3]
		}

		missingVars = append(
			missingVars,
			fmt.Errorf("environment variable not defined: %s", varName),
		)
		return match
	})

	return result, errors.Join(missingVars...)
}
