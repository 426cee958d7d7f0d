package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the config at path on top of Defaults. An empty path falls
// back to DefaultFile in the working directory, and to plain defaults when
// that file does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultFile); err != nil {
			cfg := Defaults()
			return &cfg, nil
		}
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		var perr *snaperrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}

	cfg.Source = path
	return cfg, nil
}

// Parse decodes YAML on top of Defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Defaults()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, snaperrors.NewParseError("", extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
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
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
