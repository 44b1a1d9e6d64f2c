// Package config resolves brochure settings with spf13/viper. Precedence
// from lowest to highest is defaults, config.toml, BROCHURE_* environment
// variables, then whatever the caller binds or sets on the Viper instance.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/brochure"
	"github.com/spf13/viper"
)

// Output formats accepted by the format key.
const (
	FormatANSI = "ansi"
	FormatHTML = "html"
	FormatJSON = "json"
)

// Config is the resolved configuration.
type Config struct {
	Dashboard   string // built-in dashboard name
	Content     string // directory or file of dashboard JSON; overrides built-ins
	Width       int    // wrap width for static output, 0 means 80
	Format      string
	MaxURLWidth int
	Theme       brochure.Theme
}

// ConfigOption describes a single configuration key.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns every configuration key with its default and
// meaning. Defaults and the generated config.toml both come from here.
func GetConfigOptions() []ConfigOption {
	theme := brochure.DefaultTheme()
	return []ConfigOption{
		{Key: "dashboard", Default: "phosphobot", Comment: "Built-in dashboard shown when none is named"},
		{Key: "content", Default: "", Comment: "Directory or JSON file with dashboards; replaces the built-ins when set"},
		{Key: "width", Default: 0, Comment: "Wrap width for static output; 0 uses 80"},
		{Key: "format", Default: FormatANSI, Comment: "Static output format: ansi, html or json"},
		{Key: "max_url_width", Default: 60, Comment: "Truncate displayed link targets wider than this; 0 disables"},

		{Key: "theme.headline", Default: theme.Headline, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.question", Default: theme.Question, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.link", Default: theme.Link, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.muted", Default: theme.Muted, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.focus", Default: theme.Focus, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.error", Default: theme.Error, Comment: "ANSI color index 0-15, -1 for none"},
		{Key: "theme.border", Default: theme.Border, Comment: "ANSI color index 0-15, -1 for none"},
	}
}

func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load seeds v with defaults, the config file and the environment. A
// missing default config file is not an error. A config file set with
// v.SetConfigFile must exist.
func Load(v *viper.Viper) error {
	explicit := v.ConfigFileUsed() != ""
	if !explicit {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultConfigPath()))
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || (!errors.As(err, &notFound) && !os.IsNotExist(err)) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("brochure")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("format")) == "" {
		v.Set("format", FormatANSI)
	}
	return nil
}

// DefaultConfigPath resolves $XDG_CONFIG_HOME/brochure/config.toml, falling
// back to ~/.config.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "brochure", "config.toml")
}

// Resolve reads a Config out of v and checks it. All problems are reported
// together, wrapped in brochure.ErrValidation.
func Resolve(v *viper.Viper) (Config, error) {
	c := Config{
		Dashboard:   strings.TrimSpace(v.GetString("dashboard")),
		Content:     expandHome(strings.TrimSpace(v.GetString("content"))),
		Width:       v.GetInt("width"),
		Format:      strings.ToLower(strings.TrimSpace(v.GetString("format"))),
		MaxURLWidth: v.GetInt("max_url_width"),
		Theme: brochure.Theme{
			Headline: v.GetInt("theme.headline"),
			Question: v.GetInt("theme.question"),
			Link:     v.GetInt("theme.link"),
			Muted:    v.GetInt("theme.muted"),
			Focus:    v.GetInt("theme.focus"),
			Error:    v.GetInt("theme.error"),
			Border:   v.GetInt("theme.border"),
		},
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var problems []string
	switch c.Format {
	case FormatANSI, FormatHTML, FormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("format must be ansi, html or json, got %q", c.Format))
	}
	if c.Width < 0 {
		problems = append(problems, "width must not be negative")
	}
	if c.MaxURLWidth < 0 {
		problems = append(problems, "max_url_width must not be negative")
	}
	if c.Dashboard == "" && c.Content == "" {
		problems = append(problems, "dashboard is required when content is unset")
	}
	roles := []struct {
		name  string
		index int
	}{
		{"headline", c.Theme.Headline},
		{"question", c.Theme.Question},
		{"link", c.Theme.Link},
		{"muted", c.Theme.Muted},
		{"focus", c.Theme.Focus},
		{"error", c.Theme.Error},
		{"border", c.Theme.Border},
	}
	for _, r := range roles {
		if !brochure.ValidColor(r.index) {
			problems = append(problems, fmt.Sprintf("theme.%s must be in [-1, 15], got %d", r.name, r.index))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), brochure.ErrValidation)
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
