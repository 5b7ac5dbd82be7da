package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Theme describes one visual/gameplay skin: which tile layers a level
// of this theme carries, the tile-to-pixel scale, and any actor kinds
// that only make sense inside it. Pure lookup data, loaded once from
// theme_list.yaml.
type Theme struct {
	Name             string   `yaml:"name"`
	TileSize         int      `yaml:"tile_size"`
	Layers           []string `yaml:"layers"`
	RestrictedActors []string `yaml:"restricted_actors"`
}

// AllowsActor reports whether the actor kind is unrestricted, or
// restricted to this theme.
func (t *Theme) AllowsActor(kind string, tables *ThemeTable) bool {
	owner, restricted := tables.restrictedTo[kind]
	return !restricted || owner == t.Name
}

// ThemeTable provides theme lookups by name.
type ThemeTable struct {
	themes       map[string]*Theme
	order        []string
	restrictedTo map[string]string // actor kind -> owning theme
}

type themeListFile struct {
	Themes []*Theme `yaml:"themes"`
}

// LoadThemeTable loads theme definitions from a YAML file.
func LoadThemeTable(path string) (*ThemeTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme list %s: %w", path, err)
	}
	var file themeListFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse theme list: %w", err)
	}

	table := &ThemeTable{
		themes:       make(map[string]*Theme, len(file.Themes)),
		restrictedTo: make(map[string]string),
	}
	for _, t := range file.Themes {
		table.themes[t.Name] = t
		table.order = append(table.order, t.Name)
		for _, kind := range t.RestrictedActors {
			table.restrictedTo[kind] = t.Name
		}
	}
	return table, nil
}

// Get returns the theme with the given name.
func (t *ThemeTable) Get(name string) (*Theme, bool) {
	th, ok := t.themes[name]
	return th, ok
}

// Names returns theme names in file order.
func (t *ThemeTable) Names() []string {
	return t.order
}

func (t *ThemeTable) Count() int {
	return len(t.themes)
}
