package config

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

var templatePattern = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// Template expands `{{ env.NAME || fallback }}` expressions. Alternatives are
// tried left to right; env lookups that come back empty fall through and a
// literal ends the search. A literal that parses as JSON is inlined as YAML.
func Template(bytes []byte) []byte {
	return templatePattern.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * check each alternative
		for _, part := range strings.Split(content, "||") {
			part = strings.TrimSpace(part)
			if key, ok := strings.CutPrefix(part, "env."); ok {
				if value := os.Getenv(key); value != "" {
					return []byte(value)
				}
				continue
			}
			if part == "" {
				continue
			}
			value, err := Nested(part)
			if err != nil {
				return []byte(part)
			}
			return []byte(value)
		}

		// * no alternative produced a value
		return []byte("")
	})
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(bytes), "\n"), nil
}
