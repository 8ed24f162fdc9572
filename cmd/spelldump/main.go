// spelldump converts Spell.dbc into a compact YAML listing for diffing and
// offline review. The full record has 234 columns; the dump keeps the handful
// that matter when auditing proc configuration.
//
// Usage:
//
//	go run ./cmd/spelldump [-dbc path] [-outdir path] [-family id] [-procs] [-limit n]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/azerothmcp/server/internal/dbc"
)

// ---------------------------------------------------------------------------
// YAML output structs
// ---------------------------------------------------------------------------

type spellListYAML struct {
	Spells []spellEntryYAML `yaml:"spells"`
}
type spellEntryYAML struct {
	ID         uint32 `yaml:"id"`
	Name       string `yaml:"name"`
	Rank       string `yaml:"rank,omitempty"`
	Family     int32  `yaml:"family"`
	FamilyName string `yaml:"family_name"`
	ProcFlags  string `yaml:"proc_flags,omitempty"`
	ProcChance int32  `yaml:"proc_chance,omitempty"`
	SchoolMask int32  `yaml:"school_mask,omitempty"`
}

func main() {
	dbcPath := flag.String("dbc", filepath.Join("data", "dbc", "Spell.dbc"), "Spell.dbc path")
	outDir := flag.String("outdir", filepath.Join("data", "yaml"), "YAML output directory")
	family := flag.Int("family", -1, "keep only this spell family (0 = GENERIC)")
	procsOnly := flag.Bool("procs", false, "keep only spells with proc flags")
	limit := flag.Int("limit", 0, "stop after this many entries (0 = all)")
	flag.Parse()

	if err := dump(*dbcPath, *outDir, *family, *procsOnly, *limit); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func dump(dbcPath, outDir string, family int, procsOnly bool, limit int) error {
	table, err := dbc.LoadSpellTable(dbcPath, 0)
	if err != nil {
		return err
	}

	var spells []spellEntryYAML
	for _, r := range table.Records() {
		name := r.Text("SpellName_enUS")
		if name == "" {
			continue
		}
		fam := r.Int32("SpellFamilyName")
		if family >= 0 && fam != int32(family) {
			continue
		}
		procFlags := r.Uint32("ProcFlags")
		if procsOnly && procFlags == 0 {
			continue
		}
		entry := spellEntryYAML{
			ID:         r.Uint32("Id"),
			Name:       name,
			Rank:       r.Text("Rank_enUS"),
			Family:     fam,
			FamilyName: dbc.SpellFamilyName(fam),
			ProcChance: r.Int32("ProcChance"),
			SchoolMask: r.Int32("SchoolMask"),
		}
		if procFlags != 0 {
			entry.ProcFlags = fmt.Sprintf("0x%08X", procFlags)
		}
		spells = append(spells, entry)
		if limit > 0 && len(spells) >= limit {
			break
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	outPath := filepath.Join(outDir, "spells.yaml")
	if err := writeYAML(outPath, spellListYAML{Spells: spells}, "# Spell.dbc compact dump - generated by spelldump"); err != nil {
		return err
	}
	fmt.Printf("  spells: %d entries (from %d records)\n", len(spells), table.Count())
	return nil
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
