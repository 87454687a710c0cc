package site

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/autodgm/internal/settings"
)

// Page scripts evaluated in the browser. Arguments are JSON-encoded so ids and values never
// break out of their string literals.

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

func attributeSelector(name, value string) string {
	return fmt.Sprintf(`[%s=%s]`, name, quote(value))
}

func setValueByIDScript(id, text string) string {
	return fmt.Sprintf(`document.getElementById(%s).value = %s`, quote(id), quote(text))
}

func setFirstValueByAttributeScript(name, value, text string) string {
	return fmt.Sprintf(
		`document.querySelectorAll(%s)[0].value = %s`,
		quote(attributeSelector(name, value)),
		quote(text),
	)
}

func setComboByNameScript(name, value string) string {
	return fmt.Sprintf(`document.getElementsByName(%s)[0].value = %s`, quote(name), quote(value))
}

func selectByValueScript(id, value string) string {
	return fmt.Sprintf(
		`(function(el, v) { el.value = v; el.dispatchEvent(new Event("change", { bubbles: true })); })(document.getElementById(%s), %s)`,
		quote(id),
		quote(value),
	)
}

const submitScript = `document.querySelectorAll('[type="submit"]')[0].click()`

// namedScript calls a script function with its arguments
func namedScript(script settings.Script, args ...any) (string, error) {
	encoded := make([]string, 0, len(args))
	for _, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("script %s argument %v: %w", script.Name(), arg, err)
		}
		encoded = append(encoded, string(b))
	}
	return fmt.Sprintf("(%s)(%s)", script, strings.Join(encoded, ", ")), nil
}
