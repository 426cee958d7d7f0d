package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

// File is the YAML representation of a custom theme.
type File struct {
	ID         string            `yaml:"id" validate:"required,theme_id"`
	Name       string            `yaml:"name" validate:"required,max=64"`
	Background string            `yaml:"background" validate:"required,hexcolor"`
	Foreground string            `yaml:"foreground" validate:"required,hexcolor"`
	Palette    map[string]string `yaml:"palette,omitempty" validate:"omitempty,dive,hexcolor"`
	Tokens     map[string]string `yaml:"tokens" validate:"omitempty,dive,hexcolor"`
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	themeIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	yamlLineRegex  = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("theme_id", func(fl validator.FieldLevel) bool {
			return themeIDPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// LoadFile parses and validates a single theme file.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, snaperrors.NewParseError(path, 0, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, snaperrors.NewParseError(path, extractLine(err), err)
	}

	return f.Theme()
}

// Theme validates f and converts it into a Theme.
func (f File) Theme() (*Theme, error) {
	if err := validatorInstance().Struct(f); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			fe := ves[0]
			field := strings.ToLower(fe.Field())
			return nil, snaperrors.NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
		}
		return nil, snaperrors.NewValidationError("theme", err.Error(), err)
	}

	tokens := make(map[token.Kind]string, len(f.Tokens))
	for name, hex := range f.Tokens {
		kind, ok := token.ParseKind(name)
		if !ok {
			return nil, snaperrors.NewValidationError("tokens."+name, fmt.Sprintf("unknown token kind %q", name), nil)
		}
		tokens[kind] = hex
	}

	palette := make(map[string]string, len(f.Palette))
	for k, v := range f.Palette {
		palette[k] = v
	}

	return &Theme{
		ID:         f.ID,
		Name:       f.Name,
		Background: f.Background,
		Foreground: f.Foreground,
		Palette:    palette,
		Tokens:     tokens,
	}, nil
}

// LoadDir loads every *.yaml / *.yml file in dir, sorted by file name.
// A missing directory yields no themes.
func LoadDir(dir string) ([]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read themes dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	themes := make([]*Theme, 0, len(names))
	for _, name := range names {
		t, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, nil
}

func extractLine(err error) int {
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
