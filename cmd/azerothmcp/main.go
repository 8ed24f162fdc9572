// azerothmcp inspects World of Warcraft 3.3.5a client data and an
// AzerothCore world database from the command line: Spell.dbc records,
// extracted terrain heights, smart_scripts with synthesized comments, and
// spell proc and condition configuration. Results print as indented JSON;
// a failed call prints a failure object instead of aborting.
//
// Usage:
//
//	azerothmcp <command> [flags]
//
// Commands: info, spell, spells, stats, proc, procs, masks, height, tile,
// tiles, script, chain, sai, cond, refs, query
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/config"
	"github.com/azerothmcp/server/internal/dbc"
	"github.com/azerothmcp/server/internal/logging"
	"github.com/azerothmcp/server/internal/resolve"
	"github.com/azerothmcp/server/internal/store"
	"github.com/azerothmcp/server/internal/terrain"
	"github.com/azerothmcp/server/internal/tools"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return errors.New("missing command")
	}
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "-h", "--help", "help":
		printUsage()
		return nil
	case "info":
		return cmdInfo(args)
	case "spell":
		return cmdSpell(args)
	case "spells":
		return cmdSpells(args)
	case "stats":
		return cmdStats(args)
	case "proc":
		return cmdProc(args)
	case "procs":
		return cmdProcs(args)
	case "masks":
		return cmdMasks(args)
	case "height":
		return cmdHeight(args)
	case "tile":
		return cmdTile(args)
	case "tiles":
		return cmdTiles(args)
	case "script":
		return cmdScript(args)
	case "chain":
		return cmdChain(args)
	case "sai":
		return cmdSai(args)
	case "cond":
		return cmdCond(args)
	case "refs":
		return cmdRefs(args)
	case "query":
		return cmdQuery(args)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func printUsage() {
	fmt.Println("Usage: azerothmcp <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info    Load all data sources and print their stats")
	fmt.Println("  spell   Look up one spell in Spell.dbc (-id; -name for the name only)")
	fmt.Println("  spells  Search Spell.dbc (-name/-family/-proc) or resolve ids (-ids)")
	fmt.Println("  stats   Spell.dbc record counts and the per-family histogram")
	fmt.Println("  proc    spell_proc row of a spell (-id; -dbc/-compare/-tables/-diagnose/-schema)")
	fmt.Println("  procs   Search spell_proc rows (-family/-flags/-ppm/-limit)")
	fmt.Println("  masks   Decode proc bitmasks (-flags/-hit/-spelltype/-phase/-attributes)")
	fmt.Println("  height  Terrain height at world coordinates (-map -x -y)")
	fmt.Println("  tile    Decode one extracted map tile (-map -gx -gy)")
	fmt.Println("  tiles   List extracted tiles (-map; rect via -minx -miny -maxx -maxy)")
	fmt.Println("  script  smart_scripts of an entity (-entry -source; -full/-comments)")
	fmt.Println("  chain   Trace a script chain through its timed actionlists (-entry -source)")
	fmt.Println("  sai     Explain SmartAI type ids (-event/-action/-target; -src for C++)")
	fmt.Println("  cond    Conditions of a source (-source -entry; -diagnose/-find/-explain)")
	fmt.Println("  refs    Reference tables (-kind sai|proc|cond, default all three)")
	fmt.Println("  query   Read-only SQL passthrough (-db; -schema table / -tables)")
	fmt.Println()
	fmt.Println("Every command accepts -config; the default is $AZEROTHMCP_CONFIG or")
	fmt.Println("config/azerothmcp.toml, falling back to built-in defaults.")
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            AzerothMCP  v0.1.0             \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m     WotLK 3.3.5a game data inspector      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mServer:\033[0m %s\n\n", serverName)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  \033[33m!\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Service construction ──────────────────────────────────────────

// needs selects which data sources a command loads. A source that fails
// to load leaves its Service field nil; the handlers report that per call
// instead of the whole command dying.
type needs uint8

const (
	needDBC needs = 1 << iota
	needMaps
	needDB
)

func newService(fs *flag.FlagSet, args []string, need needs, verbose bool) (*tools.Service, func(), error) {
	cfgFlag := fs.String("config", "", "config file (default $AZEROTHMCP_CONFIG or config/azerothmcp.toml)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg, err := loadConfig(*cfgFlag)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	svc := &tools.Service{Config: cfg, Log: log}
	cleanup := func() {
		if svc.Store != nil {
			svc.Store.Close()
		}
		_ = log.Sync()
	}

	if verbose {
		printBanner(cfg.Server.Name)
		printSection("Client data")
	}
	if need&needDBC != 0 {
		path := filepath.Join(cfg.Data.DBCDir, "Spell.dbc")
		table, err := dbc.LoadSpellTable(path, cfg.Cache.LookupEntries)
		if err != nil {
			log.Warn("Spell.dbc not loaded", zap.String("path", path), zap.Error(err))
			if verbose {
				printWarn(fmt.Sprintf("Spell.dbc not loaded (%v)", err))
			}
		} else {
			svc.Spells = table
			if verbose {
				stats := table.Stats()
				printStat("Spell records", stats.TotalSpells)
				printStat("Spells with proc flags", stats.SpellsWithProcFlags)
			}
		}
	}
	if need&needMaps != 0 {
		svc.Maps = terrain.NewTable(cfg.Data.MapsDir)
		idx, err := terrain.LoadIndex(cfg.Data.MapIndex)
		if err != nil {
			log.Warn("map index not loaded", zap.String("path", cfg.Data.MapIndex), zap.Error(err))
			if verbose {
				printWarn(fmt.Sprintf("map index not loaded (%v)", err))
			}
		} else {
			svc.MapIdx = idx
			if verbose && idx.Count() > 0 {
				printStat("Maps indexed", idx.Count())
			}
		}
		if verbose {
			tiles, _ := filepath.Glob(filepath.Join(cfg.Data.MapsDir, "*.map"))
			printStat("Extracted tiles", len(tiles))
		}
	}
	if need&needDB != 0 {
		if verbose {
			fmt.Println()
			printSection("World database")
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err := store.Open(ctx, cfg.Database, log)
		cancel()
		if err != nil {
			log.Warn("database not connected", zap.Error(err))
			if verbose {
				printWarn(fmt.Sprintf("MySQL not connected (%v)", err))
			}
		} else {
			svc.Store = st
			if verbose {
				printOK("MySQL connected")
				if cfg.Database.ReadOnly {
					printOK("Read-only mode on")
				}
			}
		}
		if svc.Store != nil {
			r, err := resolve.New(svc.Store, svc.Spells, cfg.Cache.LookupEntries, log)
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("resolver: %w", err)
			}
			svc.Resolve = r
		}
	}
	if verbose {
		fmt.Println()
	}
	return svc, cleanup, nil
}

func loadConfig(flagPath string) (*config.Config, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv("AZEROTHMCP_CONFIG")
	}
	explicit := path != ""
	if path == "" {
		path = filepath.Join("config", "azerothmcp.toml")
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// optID turns the flag sentinel -1 into an unset pointer.
func optID(v int64) *int64 {
	if v < 0 {
		return nil
	}
	return &v
}

// optMask32 parses a mask flag that accepts 0x hex or decimal.
func optMask32(s string) (*uint32, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid mask %q: %w", s, err)
	}
	u := uint32(v)
	return &u, nil
}

func optMask64(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid mask %q: %w", s, err)
	}
	n := int64(v)
	return &n, nil
}

// flagGiven reports whether the user set a flag explicitly, for flags
// whose zero value is meaningful.
func flagGiven(fs *flag.FlagSet, name string) bool {
	given := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			given = true
		}
	})
	return given
}

// ── Commands ──────────────────────────────────────────────────────

func cmdInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	svc, cleanup, err := newService(fs, args, needDBC|needMaps|needDB, true)
	if err != nil {
		return err
	}
	defer cleanup()

	printSection("Ready")
	printReady(fmt.Sprintf("azerothmcp v%s", version))
	if svc.Config.Data.SourceDir != "" {
		printReady(fmt.Sprintf("AzerothCore source at %s", svc.Config.Data.SourceDir))
	}
	fmt.Println()
	return nil
}

func cmdSpell(args []string) error {
	fs := flag.NewFlagSet("spell", flag.ExitOnError)
	id := fs.Uint("id", 0, "spell id")
	nameOnly := fs.Bool("name", false, "resolve the name only")
	svc, cleanup, err := newService(fs, args, needDBC, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *id == 0 {
		return errors.New("usage: azerothmcp spell -id <spell id> [-name]")
	}
	if *nameOnly {
		return printJSON(svc.Run("spell_name", func() (any, error) {
			return svc.SpellName(uint32(*id))
		}))
	}
	return printJSON(svc.Run("get_spell", func() (any, error) {
		return svc.GetSpell(uint32(*id))
	}))
}

func cmdSpells(args []string) error {
	fs := flag.NewFlagSet("spells", flag.ExitOnError)
	name := fs.String("name", "", "name substring")
	family := fs.Int("family", -1, "spell family id (0 = GENERIC)")
	proc := fs.Bool("proc", false, "only spells with proc flags")
	limit := fs.Int("limit", 0, "max results (default 50)")
	ids := fs.String("ids", "", "comma-separated spell ids to resolve to names")
	svc, cleanup, err := newService(fs, args, needDBC, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *ids != "" {
		return printJSON(svc.Run("batch_spell_names", func() (any, error) {
			return svc.BatchSpellNames(*ids)
		}))
	}
	var fam *int32
	if *family >= 0 {
		f := int32(*family)
		fam = &f
	}
	return printJSON(svc.Run("search_spells", func() (any, error) {
		return svc.SearchSpells(*name, fam, *proc, *limit)
	}))
}

func cmdStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	svc, cleanup, err := newService(fs, args, needDBC, false)
	if err != nil {
		return err
	}
	defer cleanup()
	return printJSON(svc.Run("dbc_stats", func() (any, error) {
		return svc.DBCStats()
	}))
}

func cmdProc(args []string) error {
	fs := flag.NewFlagSet("proc", flag.ExitOnError)
	id := fs.Int64("id", 0, "spell id")
	dbcView := fs.Bool("dbc", false, "proc columns from Spell.dbc instead of spell_proc")
	compare := fs.Bool("compare", false, "compare DBC defaults with the spell_proc override")
	tables := fs.Bool("tables", false, "check spell_proc against legacy spell_proc_event")
	diagnose := fs.Bool("diagnose", false, "audit the proc configuration")
	schema := fs.Bool("schema", false, "print the spell_proc schema documentation")
	svc, cleanup, err := newService(fs, args, needDBC|needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *schema {
		return printJSON(svc.Run("proc_schema", func() (any, error) {
			return svc.ProcSchema(), nil
		}))
	}
	if *id == 0 {
		return errors.New("usage: azerothmcp proc -id <spell id> [-dbc|-compare|-tables|-diagnose]")
	}
	ctx := context.Background()
	switch {
	case *dbcView:
		return printJSON(svc.Run("spell_proc_info", func() (any, error) {
			return svc.SpellProcInfo(uint32(*id))
		}))
	case *compare:
		return printJSON(svc.Run("compare_proc", func() (any, error) {
			return svc.CompareProc(ctx, *id)
		}))
	case *tables:
		return printJSON(svc.Run("compare_proc_tables", func() (any, error) {
			return svc.CompareProcTables(ctx, *id)
		}))
	case *diagnose:
		return printJSON(svc.Run("diagnose_spell_proc", func() (any, error) {
			return svc.DiagnoseSpellProc(ctx, *id)
		}))
	}
	return printJSON(svc.Run("get_spell_proc", func() (any, error) {
		return svc.GetSpellProc(ctx, *id)
	}))
}

func cmdProcs(args []string) error {
	fs := flag.NewFlagSet("procs", flag.ExitOnError)
	family := fs.Int64("family", -1, "spell family id (0 = GENERIC)")
	flagsStr := fs.String("flags", "", "required ProcFlags overlap (hex or decimal)")
	ppm := fs.Bool("ppm", false, "only rows with a PPM rate")
	limit := fs.Int("limit", 0, "max results (default 50, cap 100)")
	svc, cleanup, err := newService(fs, args, needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()
	procFlags, err := optMask64(*flagsStr)
	if err != nil {
		return err
	}
	var fam *int64
	if *family >= 0 {
		fam = family
	}
	return printJSON(svc.Run("search_spell_procs", func() (any, error) {
		return svc.SearchSpellProcs(context.Background(), fam, procFlags, *ppm, *limit)
	}))
}

func cmdMasks(args []string) error {
	fs := flag.NewFlagSet("masks", flag.ExitOnError)
	flagsStr := fs.String("flags", "", "ProcFlags value (hex 0x.. or decimal)")
	hitStr := fs.String("hit", "", "ProcHitMask value")
	typeStr := fs.String("spelltype", "", "SpellTypeMask value")
	phaseStr := fs.String("phase", "", "SpellPhaseMask value")
	attrStr := fs.String("attributes", "", "AttributesMask value")
	svc, cleanup, err := newService(fs, args, 0, false)
	if err != nil {
		return err
	}
	defer cleanup()

	var masks [5]*uint32
	for i, s := range []string{*flagsStr, *hitStr, *typeStr, *phaseStr, *attrStr} {
		m, err := optMask32(s)
		if err != nil {
			return err
		}
		masks[i] = m
	}
	return printJSON(svc.Run("explain_proc_flags", func() (any, error) {
		return svc.ExplainProcFlags(masks[0], masks[1], masks[2], masks[3], masks[4]), nil
	}))
}

func cmdHeight(args []string) error {
	fs := flag.NewFlagSet("height", flag.ExitOnError)
	mapID := fs.Int("map", 0, "map id (0 Eastern Kingdoms, 1 Kalimdor, 530 Outland, 571 Northrend)")
	x := fs.Float64("x", 0, "world X coordinate")
	y := fs.Float64("y", 0, "world Y coordinate")
	svc, cleanup, err := newService(fs, args, needMaps, false)
	if err != nil {
		return err
	}
	defer cleanup()
	return printJSON(svc.Run("get_height", func() (any, error) {
		return svc.HeightAt(*mapID, *x, *y)
	}))
}

func cmdTile(args []string) error {
	fs := flag.NewFlagSet("tile", flag.ExitOnError)
	mapID := fs.Int("map", 0, "map id")
	gx := fs.Int("gx", -1, "grid X (0-63)")
	gy := fs.Int("gy", -1, "grid Y (0-63)")
	svc, cleanup, err := newService(fs, args, needMaps, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *gx < 0 || *gy < 0 {
		return errors.New("usage: azerothmcp tile -map <id> -gx <0-63> -gy <0-63>")
	}
	return printJSON(svc.Run("tile_info", func() (any, error) {
		return svc.TileInfo(*mapID, *gx, *gy)
	}))
}

func cmdTiles(args []string) error {
	fs := flag.NewFlagSet("tiles", flag.ExitOnError)
	mapID := fs.Int("map", 0, "map id")
	minX := fs.Float64("minx", 0, "rect min world X")
	minY := fs.Float64("miny", 0, "rect min world Y")
	maxX := fs.Float64("maxx", 0, "rect max world X")
	maxY := fs.Float64("maxy", 0, "rect max world Y")
	svc, cleanup, err := newService(fs, args, needMaps, false)
	if err != nil {
		return err
	}
	defer cleanup()

	rect := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "minx", "miny", "maxx", "maxy":
			rect = true
		}
	})
	if rect {
		return printJSON(svc.Run("tiles_in_rect", func() (any, error) {
			return svc.TilesInRect(*mapID, *minX, *minY, *maxX, *maxY)
		}))
	}
	return printJSON(svc.Run("available_tiles", func() (any, error) {
		return svc.AvailableTiles(*mapID)
	}))
}

func cmdScript(args []string) error {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	entry := fs.Int64("entry", 0, "entryorguid (negative for a GUID-bound script)")
	source := fs.Int64("source", 0, "source type (0 creature, 1 gameobject, 9 timed actionlist)")
	full := fs.Bool("full", false, "all 33 columns per row instead of the compact view")
	comments := fs.Bool("comments", false, "rows with synthesized comments only")
	svc, cleanup, err := newService(fs, args, needDBC|needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *entry == 0 {
		return errors.New("usage: azerothmcp script -entry <entryorguid> [-source 0] [-full|-comments]")
	}
	ctx := context.Background()
	if *comments {
		return printJSON(svc.Run("generate_smart_comments", func() (any, error) {
			return svc.GenerateComments(ctx, *entry, *source)
		}))
	}
	return printJSON(svc.Run("get_smart_script", func() (any, error) {
		return svc.SmartAIScript(ctx, *entry, *source, *full)
	}))
}

func cmdChain(args []string) error {
	fs := flag.NewFlagSet("chain", flag.ExitOnError)
	entry := fs.Int64("entry", 0, "entryorguid")
	source := fs.Int64("source", 0, "source type")
	svc, cleanup, err := newService(fs, args, needDBC|needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *entry == 0 {
		return errors.New("usage: azerothmcp chain -entry <entryorguid> [-source 0]")
	}
	return printJSON(svc.Run("trace_script_chain", func() (any, error) {
		return svc.TraceScriptChain(context.Background(), *entry, *source)
	}))
}

func cmdSai(args []string) error {
	fs := flag.NewFlagSet("sai", flag.ExitOnError)
	event := fs.Int64("event", -1, "SmartAI event type id")
	action := fs.Int64("action", -1, "SmartAI action type id")
	target := fs.Int64("target", -1, "SmartAI target type id")
	src := fs.Bool("src", false, "excerpt the implementation from a local AzerothCore checkout")
	svc, cleanup, err := newService(fs, args, 0, false)
	if err != nil {
		return err
	}
	defer cleanup()
	if *src {
		return printJSON(svc.Run("smartai_source", func() (any, error) {
			return svc.SAISourceExcerpt(optID(*event), optID(*action), optID(*target))
		}))
	}
	return printJSON(svc.Run("explain_smart_script", func() (any, error) {
		return svc.ExplainSmartScript(optID(*event), optID(*action), optID(*target))
	}))
}

func cmdCond(args []string) error {
	fs := flag.NewFlagSet("cond", flag.ExitOnError)
	source := fs.Int64("source", 0, "SourceTypeOrReferenceId")
	entry := fs.Int64("entry", 0, "SourceEntry")
	group := fs.Int64("group", -1, "SourceGroup (-1 = any)")
	srcID := fs.Int64("sourceid", -1, "SourceId (-1 = any)")
	condType := fs.Int64("type", -1, "ConditionTypeOrReference")
	value1 := fs.Int64("value1", -1, "ConditionValue1")
	limit := fs.Int("limit", 0, "max results for -find (default 50, cap 100)")
	diagnose := fs.Bool("diagnose", false, "audit the conditions for broken references")
	find := fs.Bool("find", false, "search the whole conditions table")
	explain := fs.Bool("explain", false, "document a source type or condition type")
	svc, cleanup, err := newService(fs, args, needDBC|needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()

	// -source 0 is a real source type, so presence matters, not value.
	var sourcePtr *int64
	if flagGiven(fs, "source") {
		sourcePtr = source
	}
	ctx := context.Background()
	switch {
	case *explain:
		return printJSON(svc.Run("explain_condition", func() (any, error) {
			return svc.ExplainCondition(sourcePtr, optID(*condType)), nil
		}))
	case *find:
		return printJSON(svc.Run("search_conditions", func() (any, error) {
			return svc.SearchConditions(ctx, optID(*condType), optID(*value1), sourcePtr, *limit)
		}))
	case *diagnose:
		return printJSON(svc.Run("diagnose_conditions", func() (any, error) {
			return svc.DiagnoseConditions(ctx, *source, *entry, optID(*group))
		}))
	}
	return printJSON(svc.Run("get_conditions", func() (any, error) {
		return svc.GetConditions(ctx, *source, *entry, optID(*group), optID(*srcID))
	}))
}

func cmdRefs(args []string) error {
	fs := flag.NewFlagSet("refs", flag.ExitOnError)
	kind := fs.String("kind", "", "sai, proc or cond (default: all three)")
	svc, cleanup, err := newService(fs, args, 0, false)
	if err != nil {
		return err
	}
	defer cleanup()
	switch *kind {
	case "sai":
		return printJSON(svc.Run("sai_reference", func() (any, error) {
			return svc.SAIReference(), nil
		}))
	case "proc":
		return printJSON(svc.Run("proc_reference", func() (any, error) {
			return svc.ProcReference(), nil
		}))
	case "cond", "conditions":
		return printJSON(svc.Run("condition_reference", func() (any, error) {
			return svc.ConditionReference(), nil
		}))
	case "":
		return printJSON(svc.Run("reference", func() (any, error) {
			return map[string]any{
				"smartai":    svc.SAIReference(),
				"procs":      svc.ProcReference(),
				"conditions": svc.ConditionReference(),
			}, nil
		}))
	}
	return fmt.Errorf("unknown reference kind %q (want sai, proc or cond)", *kind)
}

func cmdQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	db := fs.String("db", "world", "database: world, characters or auth")
	schema := fs.String("schema", "", "describe this table instead of running a query")
	list := fs.Bool("tables", false, "list tables instead of running a query")
	like := fs.String("like", "", "pattern for -tables (supports %)")
	svc, cleanup, err := newService(fs, args, needDB, false)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	switch {
	case *schema != "":
		return printJSON(svc.Run("table_schema", func() (any, error) {
			return svc.TableSchema(ctx, *db, *schema)
		}))
	case *list:
		return printJSON(svc.Run("list_tables", func() (any, error) {
			return svc.ListTables(ctx, *db, *like)
		}))
	}
	query := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if query == "" {
		return errors.New(`usage: azerothmcp query [-db world] "SELECT ..."`)
	}
	return printJSON(svc.Run("query_database", func() (any, error) {
		return svc.QueryDatabase(ctx, *db, query)
	}))
}
