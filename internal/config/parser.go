package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	polishederrors "github.com/cantyjeffrey/polished/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTheme loads a theme file from disk, validates it, and returns the
// resulting model.
func ParseTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, polishederrors.NewParseError(path, 0, err)
	}

	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, polishederrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTheme(&theme); err != nil {
		return nil, err
	}

	return &theme, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
