// Package theme holds the colors the grid renders with. A Theme is a plain
// value handed to the grid on construction; nothing reads it from globals.
package theme

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Theme names every color a presentation unit may reference.
// Values are anything lipgloss.Color accepts ("#6aaa64", "2", ...).
type Theme struct {
	Correct    string `toml:"correct"`
	Present    string `toml:"present"`
	Absent     string `toml:"absent"`
	Background string `toml:"background"`
	Border     string `toml:"border"`
	Text       string `toml:"text"`
	Cursor     string `toml:"cursor"`
}

func Default() Theme {
	return Theme{
		Correct:    "#538d4e",
		Present:    "#b59f3b",
		Absent:     "#3a3a3c",
		Background: "#121213",
		Border:     "#565758",
		Text:       "#ffffff",
		Cursor:     "#818384",
	}
}

// Load reads a TOML theme file over the defaults. Keys missing from the
// file keep their default value. An empty path returns Default().
func Load(path string) (Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("theme file %s: %w", path, err)
	}
	if err := toml.Unmarshal(content, &t); err != nil {
		return Default(), fmt.Errorf("decode theme %s: %w", path, err)
	}
	return t, nil
}
