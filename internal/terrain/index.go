package terrain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// MapInfo holds display metadata for one map, loaded from the map index
// YAML file.
type MapInfo struct {
	ID        int    `yaml:"id" json:"id"`
	Name      string `yaml:"name" json:"name"`
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`
	Expansion int    `yaml:"expansion" json:"expansion"`
}

type mapIndexFile struct {
	Maps []MapInfo `yaml:"maps"`
}

// Index resolves map ids to display metadata.
type Index struct {
	byID map[int]MapInfo
	ids  []int
}

// LoadIndex reads a map index YAML file. A missing file yields an empty
// index: names degrade to "Map <id>" instead of failing startup.
func LoadIndex(path string) (*Index, error) {
	idx := &Index{byID: make(map[int]MapInfo)}
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read map index %s: %w", path, err)
	}
	var file mapIndexFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse map index %s: %w", path, err)
	}
	for _, m := range file.Maps {
		if _, dup := idx.byID[m.ID]; !dup {
			idx.ids = append(idx.ids, m.ID)
		}
		idx.byID[m.ID] = m
	}
	return idx, nil
}

// Get returns the metadata for a map id.
func (i *Index) Get(id int) (MapInfo, bool) {
	m, ok := i.byID[id]
	return m, ok
}

// Name returns the display name for a map id, with a stable fallback for
// maps the index does not know.
func (i *Index) Name(id int) string {
	if m, ok := i.byID[id]; ok && m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("Map %d", id)
}

// All lists the index entries in file order.
func (i *Index) All() []MapInfo {
	out := make([]MapInfo, 0, len(i.ids))
	for _, id := range i.ids {
		out = append(out, i.byID[id])
	}
	return out
}

// Count returns the number of maps in the index.
func (i *Index) Count() int { return len(i.byID) }
