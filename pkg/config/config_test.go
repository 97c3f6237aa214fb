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

package config

import (
	"os"
	"path/filepath"
	"testing"

	rett "github.com/timburks/rett/pkg/types"
)

func writeConfig(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	return path
}

func TestMissingDefaultFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if cfg.PatternHeight != 3 || !cfg.Highlight || cfg.InitialFocus() != rett.FieldText {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestDefaultPathFollowsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if p := DefaultPath(); p != filepath.Join(dir, "rett", "config.toml") {
		t.Errorf("Unexpected default path: %s", p)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
focus = "regex"
pattern_height = 5
highlight = false

[colors]
match = 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if cfg.InitialFocus() != rett.FieldPattern {
		t.Errorf("Unexpected focus: %s", cfg.Focus)
	}
	if cfg.PatternHeight != 5 || cfg.Highlight {
		t.Errorf("Unexpected settings: %+v", cfg)
	}
	if cfg.Colors.Match != 42 || cfg.Colors.Foreground != rett.ColorWhite {
		t.Errorf("Unexpected colors: %+v", cfg.Colors)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, source := range []string{
		`focus = "sideways"`,
		`pattern_height = 1`,
		`pattern_height = "tall"`,
		"[colors]\nforeground = 257",
		"[colors]\nmatch = 512",
		"[colors]\nborder = -1",
	} {
		if _, err := Load(writeConfig(t, source)); err == nil {
			t.Errorf("Expected an error for %s", source)
		}
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("Expected an error for a missing config file")
	}
}

func TestLoadAcceptsFullPalette(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[colors]\nforeground = 256\nbackground = 0"))
	if err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if cfg.Colors.Foreground != rett.ColorMax || cfg.Colors.Background != rett.ColorDefault {
		t.Errorf("Unexpected colors: %+v", cfg.Colors)
	}
}
