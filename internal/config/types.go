package config

// DefaultFile is the config file picked up from the working directory when
// no explicit path is given.
const DefaultFile = ".snapcode.yaml"

// Config holds render settings read from a YAML file and overridden by flags.
type Config struct {
	Theme        string  `yaml:"theme" validate:"required,identifier"`
	Language     string  `yaml:"language,omitempty" validate:"omitempty,identifier"`
	Font         string  `yaml:"font" validate:"required,font_id"`
	FontSize     int     `yaml:"font_size" validate:"min=6,max=128"`
	Padding      int     `yaml:"padding" validate:"min=0,max=400"`
	LineNumbers  bool    `yaml:"line_numbers"`
	Filename     string  `yaml:"filename" validate:"max=128"`
	Format       string  `yaml:"format" validate:"oneof=png pdf"`
	Output       string  `yaml:"output,omitempty"`
	Scale        float64 `yaml:"scale" validate:"min=1,max=4"`
	TabWidth     int     `yaml:"tab_width" validate:"min=0,max=16"`
	ThemesDir    string  `yaml:"themes_dir,omitempty"`
	FontCacheDir string  `yaml:"font_cache_dir,omitempty"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// Defaults returns the settings used when nothing is configured. Language
// is left empty so the grammar is picked by file extension.
func Defaults() Config {
	return Config{
		Theme:       "palenight",
		Font:        "go-mono",
		FontSize:    16,
		Padding:     60,
		LineNumbers: true,
		Format:      "png",
		Scale:       2,
		TabWidth:    4,
	}
}
