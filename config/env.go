package config

import (
	"os"
	"regexp"
)

// envRe matches ${VAR} and ${VAR:-default}.
var envRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// ExpandEnvWithDefaults replaces ${VAR} with the value of VAR and
// ${VAR:-default} with the value of VAR, or default when VAR is unset or empty.
func ExpandEnvWithDefaults(s string) string {
	return envRe.ReplaceAllStringFunc(s, func(match string) string {
		groups := envRe.FindStringSubmatch(match)
		if v := os.Getenv(groups[1]); v != "" {
			return v
		}
		return groups[2]
	})
}
