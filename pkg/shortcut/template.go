package shortcut

import (
	_ "embed"
	"strings"
)

// template contains the desktop-entry template with variable placeholders.
// Variables like ${NAME} and ${PACKAGE} are substituted at generation time.
//
//go:embed desktop.tmpl
var template string

// substituteVars replaces ${VARIABLE} placeholders with values.
func substituteVars(tmpl string, vars map[string]string) string {
	result := tmpl
	for name, value := range vars {
		placeholder := "${" + name + "}"
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}
