//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package config reads rett settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	rett "github.com/timburks/rett/pkg/types"
)

type Colors struct {
	Foreground rett.Color `toml:"foreground"`
	Background rett.Color `toml:"background"`
	Border     rett.Color `toml:"border"`
	Match      rett.Color `toml:"match"`
}

type Config struct {
	Focus         string `toml:"focus"`          // field focused at startup
	PatternHeight int    `toml:"pattern_height"` // rows of the pattern panel, borders included
	Highlight     bool   `toml:"highlight"`      // color matches in the text panel
	LogFile       string `toml:"log_file"`
	Colors        Colors `toml:"colors"`
}

func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Focus:         rett.FieldText.String(),
		PatternHeight: 3,
		Highlight:     true,
		LogFile:       filepath.Join(home, ".rettlog"),
		Colors: Colors{
			Foreground: rett.ColorWhite,
			Background: rett.ColorBlack,
			Border:     rett.ColorWhite,
			Match:      rett.ColorMatch,
		},
	}
}

func xdg(pathEnv, fallback string) string {
	if v := os.Getenv(pathEnv); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, fallback)
}

// DefaultPath is where rett looks for a config file when none is named.
func DefaultPath() string {
	return filepath.Join(xdg("XDG_CONFIG_HOME", ".config"), "rett", "config.toml")
}

// Load reads the file at path over the defaults.
// A missing file at the default path is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	st, err := os.Stat(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if st.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := rett.ParseField(c.Focus); err != nil {
		return err
	}
	if c.PatternHeight < 3 {
		return fmt.Errorf("pattern_height must be at least 3, got %d", c.PatternHeight)
	}
	for name, color := range map[string]rett.Color{
		"foreground": c.Colors.Foreground,
		"background": c.Colors.Background,
		"border":     c.Colors.Border,
		"match":      c.Colors.Match,
	} {
		// larger values would set termbox attribute bits (bold, underline, reverse)
		if color > rett.ColorMax {
			return fmt.Errorf("colors.%s must be at most %d, got %d", name, rett.ColorMax, color)
		}
	}
	return nil
}

// InitialFocus returns the field that has focus when a session starts.
func (c *Config) InitialFocus() rett.Field {
	f, err := rett.ParseField(c.Focus)
	if err != nil {
		return rett.FieldText
	}
	return f
}
