// mapscan walks a directory of extracted .map tiles and writes a maps.yaml
// skeleton: one entry per map id with its tile count and height range. The
// output loads as a map index once the placeholder names are filled in; the
// extra stat fields are ignored by the index loader.
//
// Usage:
//
//	go run ./cmd/mapscan [-maps path] [-outdir path]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/azerothmcp/server/internal/terrain"
)

type mapsYAML struct {
	Maps []mapEntryYAML `yaml:"maps"`
}
type mapEntryYAML struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	Expansion int     `yaml:"expansion"`
	Tiles     int     `yaml:"tiles"`
	MinHeight float32 `yaml:"min_height"`
	MaxHeight float32 `yaml:"max_height"`
}

type mapAgg struct {
	tiles     int
	minH      float32
	maxH      float32
	hasHeight bool
}

func main() {
	mapsDir := flag.String("maps", filepath.Join("data", "maps"), "extracted .map tile directory")
	outDir := flag.String("outdir", filepath.Join("data", "yaml"), "YAML output directory")
	flag.Parse()

	if err := scan(*mapsDir, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func scan(mapsDir, outDir string) error {
	entries, err := os.ReadDir(mapsDir)
	if err != nil {
		return err
	}

	aggs := map[int]*mapAgg{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".map") {
			continue
		}
		var mapID, gx, gy int
		if n, err := fmt.Sscanf(e.Name(), "%3d%2d%2d.map", &mapID, &gx, &gy); err != nil || n != 3 {
			continue
		}
		data, err := os.ReadFile(filepath.Join(mapsDir, e.Name()))
		if err != nil {
			return err
		}
		tile, err := terrain.DecodeTile(data, mapID, gx, gy)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  warning: %s: %v, skipping\n", e.Name(), err)
			continue
		}

		agg := aggs[mapID]
		if agg == nil {
			agg = &mapAgg{}
			aggs[mapID] = agg
		}
		agg.tiles++
		if tile.Height != nil {
			lo, hi := tile.Height.GridHeight, tile.Height.GridMaxHeight
			if !agg.hasHeight || lo < agg.minH {
				agg.minH = lo
			}
			if !agg.hasHeight || hi > agg.maxH {
				agg.maxH = hi
			}
			agg.hasHeight = true
		}
	}
	if len(aggs) == 0 {
		return fmt.Errorf("no decodable .map tiles under %s", mapsDir)
	}

	ids := make([]int, 0, len(aggs))
	for id := range aggs {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := mapsYAML{Maps: make([]mapEntryYAML, 0, len(ids))}
	for _, id := range ids {
		agg := aggs[id]
		out.Maps = append(out.Maps, mapEntryYAML{
			ID:        id,
			Name:      fmt.Sprintf("Map %d", id),
			Tiles:     agg.tiles,
			MinHeight: agg.minH,
			MaxHeight: agg.maxH,
		})
		fmt.Printf("  map %d: %d tiles (height %.1f to %.1f)\n", id, agg.tiles, agg.minH, agg.maxH)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(outDir, "maps.yaml")
	return writeYAML(outPath, out, "# Map index skeleton - generated by mapscan from extracted tiles")
}

func writeYAML(path string, data interface{}, comment string) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if comment != "" {
		fmt.Fprintln(f, comment)
		fmt.Fprintln(f)
	}
	_, err = f.Write(out)
	return err
}
