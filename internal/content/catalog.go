package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NameTable is an ordered list of content names with index lookup in
// both directions. Tile codes and actor graphic/sound IDs index into
// these; the tables carry no logic of their own.
type NameTable struct {
	names []string
	index map[string]int
}

func newNameTable(names []string) *NameTable {
	t := &NameTable{names: names, index: make(map[string]int, len(names))}
	for i, n := range names {
		t.index[n] = i
	}
	return t
}

// Name returns the name at the given index.
func (t *NameTable) Name(i int) (string, bool) {
	if i < 0 || i >= len(t.names) {
		return "", false
	}
	return t.names[i], true
}

// Index returns the index of the given name.
func (t *NameTable) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *NameTable) Count() int {
	return len(t.names)
}

// Catalog bundles the static art name tables.
type Catalog struct {
	Bundles  *NameTable
	Graphics *NameTable
	Sounds   *NameTable
}

type catalogFile struct {
	Bundles  []string `yaml:"bundles"`
	Graphics []string `yaml:"graphics"`
	Sounds   []string `yaml:"sounds"`
}

// LoadCatalog loads the bundle/graphic/sound name tables from a YAML
// file.
func LoadCatalog(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &Catalog{
		Bundles:  newNameTable(file.Bundles),
		Graphics: newNameTable(file.Graphics),
		Sounds:   newNameTable(file.Sounds),
	}, nil
}
