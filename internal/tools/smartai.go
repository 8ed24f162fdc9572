package tools

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/azerothmcp/server/internal/sai"
)

// maxTracedLists bounds how many timed actionlists one trace will fetch.
// Deep or corrupt chains stop here instead of hammering the database.
const maxTracedLists = 64

// ScriptEntity identifies the owner of a script block in tool responses.
type ScriptEntity struct {
	EntryOrGUID int64  `json:"entryorguid"`
	SourceType  int64  `json:"source_type"`
	Name        string `json:"name"`
}

// CommentedScript is a full smart_scripts row with the synthesized comment
// attached alongside whatever comment the row already carries.
type CommentedScript struct {
	sai.ScriptRow
	Generated string `json:"_comment"`
}

// CompactScript trims a script row down to its type ids and whichever
// parameters are actually set.
type CompactScript struct {
	ID           int64   `json:"id"`
	Link         *int64  `json:"link"`
	Event        int64   `json:"event"`
	Action       int64   `json:"action"`
	Target       int64   `json:"target"`
	EventParams  []int64 `json:"event_params,omitempty"`
	ActionParams []int64 `json:"action_params,omitempty"`
	TargetParams []int64 `json:"target_params,omitempty"`
	Comment      string  `json:"comment,omitempty"`
}

// ScriptSet is the compact listing of one entity's scripts.
type ScriptSet struct {
	Entity      ScriptEntity    `json:"entity"`
	ScriptCount int             `json:"script_count"`
	Scripts     []CompactScript `json:"scripts"`
	Hint        string          `json:"_hint"`
}

// SmartAIScript reports the smart_scripts rows of one entity. The default
// compact form keeps ids and non-zero parameters; full returns every column
// plus a synthesized comment per row.
func (s *Service) SmartAIScript(ctx context.Context, entryOrGUID, sourceType int64, full bool) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.SmartScripts(ctx, entryOrGUID, sourceType)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{
			Message: fmt.Sprintf("No SmartAI scripts found for entryorguid=%d, source_type=%d", entryOrGUID, sourceType),
			Hint:    "If this is a creature, check if it uses SmartAI (AIName='SmartAI' in creature_template)",
		}, nil
	}
	name := s.entityName(ctx, entryOrGUID, sourceType)
	if full {
		return s.CommentsForRows(ctx, rows, name), nil
	}

	compact := make([]CompactScript, 0, len(rows))
	for i := range rows {
		compact = append(compact, compactScript(&rows[i]))
	}
	return &ScriptSet{
		Entity:      ScriptEntity{EntryOrGUID: entryOrGUID, SourceType: sourceType, Name: name},
		ScriptCount: len(compact),
		Scripts:     compact,
		Hint:        "Use full=true for all 33 fields per script",
	}, nil
}

func compactScript(r *sai.ScriptRow) CompactScript {
	c := CompactScript{
		ID:     r.ID,
		Event:  r.EventType,
		Action: r.ActionType,
		Target: r.TargetType,
	}
	if r.Link != 0 {
		link := r.Link
		c.Link = &link
	}
	c.EventParams = nonZero(r.EventParam1, r.EventParam2, r.EventParam3, r.EventParam4, r.EventParam5, r.EventParam6)
	c.ActionParams = nonZero(r.ActionParam1, r.ActionParam2, r.ActionParam3, r.ActionParam4, r.ActionParam5, r.ActionParam6)
	c.TargetParams = nonZero(r.TargetParam1, r.TargetParam2, r.TargetParam3, r.TargetParam4)
	c.Comment = r.Comment
	return c
}

func nonZero(vs ...int64) []int64 {
	var out []int64
	for _, v := range vs {
		if v != 0 {
			out = append(out, v)
		}
	}
	return out
}

// GenerateComments synthesizes a TrinityCore-style comment for every script
// row of one entity and returns the full rows with comments attached.
func (s *Service) GenerateComments(ctx context.Context, entryOrGUID, sourceType int64) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.SmartScripts(ctx, entryOrGUID, sourceType)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{
			Message: fmt.Sprintf("No scripts found for entryorguid=%d, source_type=%d", entryOrGUID, sourceType),
		}, nil
	}
	return s.CommentsForRows(ctx, rows, s.entityName(ctx, entryOrGUID, sourceType)), nil
}

// CommentsForRows attaches synthesized comments to rows the caller already
// holds. A row the generator cannot fully render still gets its degraded
// comment; the joined error is logged, never surfaced, so one broken row
// cannot sink the batch.
func (s *Service) CommentsForRows(ctx context.Context, rows []sai.ScriptRow, name string) []CommentedScript {
	out := make([]CommentedScript, len(rows))
	if s.Resolve == nil {
		for i := range rows {
			out[i] = CommentedScript{ScriptRow: rows[i]}
		}
		return out
	}
	comments, err := sai.NewGenerator(s.Resolve.Bind(ctx)).Comments(rows, name)
	if err != nil {
		s.Log.Warn("comment synthesis degraded", zap.String("entity", name), zap.Error(err))
	}
	for i := range rows {
		out[i] = CommentedScript{ScriptRow: rows[i], Generated: comments[i]}
	}
	return out
}

func (s *Service) entityName(ctx context.Context, entryOrGUID, sourceType int64) string {
	if s.Resolve == nil {
		return fmt.Sprintf("Entity %d", entryOrGUID)
	}
	return s.Resolve.EntityName(ctx, entryOrGUID, sourceType)
}

// TypeExplanation bundles documentation for whichever type ids were asked
// about. Each slot is a *sai.TypeDoc or an UnknownType.
type TypeExplanation struct {
	Event  any `json:"event,omitempty"`
	Action any `json:"action,omitempty"`
	Target any `json:"target,omitempty"`
}

// UnknownType reports a type id with no documentation entry.
type UnknownType struct {
	Error string `json:"error"`
}

// ExplainSmartScript returns the documentation entries for SmartAI event,
// action and target type ids.
func (s *Service) ExplainSmartScript(event, action, target *int64) (any, error) {
	if event == nil && action == nil && target == nil {
		return nil, errors.New("specify at least one of: event_type, action_type or target_type")
	}
	var out TypeExplanation
	if event != nil {
		out.Event = docOrUnknown(sai.EventDoc(*event), "event", *event)
	}
	if action != nil {
		out.Action = docOrUnknown(sai.ActionDoc(*action), "action", *action)
	}
	if target != nil {
		out.Target = docOrUnknown(sai.TargetDoc(*target), "target", *target)
	}
	return &out, nil
}

func docOrUnknown(doc *sai.TypeDoc, kind string, id int64) any {
	if doc == nil {
		return &UnknownType{Error: fmt.Sprintf("Unknown %s type %d", kind, id)}
	}
	return doc
}

// RefType is the id, name and description projection used by reference
// listings. Parameter documentation stays with ExplainSmartScript.
type RefType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Desc string `json:"description"`
}

// SAIRef lists every documented SmartAI event, action and target type.
type SAIRef struct {
	EventTypes  []RefType `json:"event_types"`
	ActionTypes []RefType `json:"action_types"`
	TargetTypes []RefType `json:"target_types"`
}

// SAIReference returns the full SmartAI type catalog, each list sorted by id.
func (s *Service) SAIReference() *SAIRef {
	return &SAIRef{
		EventTypes:  refTypes(sai.EventDocs),
		ActionTypes: refTypes(sai.ActionDocs),
		TargetTypes: refTypes(sai.TargetDocs),
	}
}

func refTypes(docs []sai.TypeDoc) []RefType {
	out := make([]RefType, len(docs))
	for i, d := range docs {
		out[i] = RefType{ID: d.ID, Name: d.Name, Desc: d.Desc}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ChainScript is one row in a traced script chain.
type ChainScript struct {
	ID               int64   `json:"id"`
	Comment          string  `json:"comment"`
	EventType        int64   `json:"event_type"`
	ActionType       int64   `json:"action_type"`
	Link             int64   `json:"link"`
	LinksTo          int64   `json:"links_to,omitempty"`
	CallsActionLists []int64 `json:"calls_action_lists,omitempty"`
}

// ScriptChain is a traced script set: the entity's own scripts plus every
// timed actionlist reachable from them, however deeply nested.
type ScriptChain struct {
	Entity           ScriptEntity            `json:"entity"`
	MainScripts      []ChainScript           `json:"main_scripts"`
	TimedActionLists map[int64][]ChainScript `json:"timed_action_lists"`
}

// TraceScriptChain follows an entity's scripts through every timed
// actionlist they invoke, directly or from within another list, and returns
// the whole call graph with synthesized comments.
func (s *Service) TraceScriptChain(ctx context.Context, entryOrGUID, sourceType int64) (any, error) {
	st, err := s.worldStore()
	if err != nil {
		return nil, err
	}
	rows, err := st.SmartScripts(ctx, entryOrGUID, sourceType)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &Notice{
			Message: fmt.Sprintf("No scripts found for entryorguid=%d, source_type=%d", entryOrGUID, sourceType),
		}, nil
	}
	name := s.entityName(ctx, entryOrGUID, sourceType)

	tr := &chainTracer{seen: make(map[int64]bool)}
	if sourceType == sai.SourceTimedActionList {
		tr.seen[entryOrGUID] = true
	}
	main := tr.scripts(ctx, s, rows, name)

	lists := make(map[int64][]ChainScript)
	fetched := 0
	for len(tr.queue) > 0 && fetched < maxTracedLists {
		listID := tr.queue[0]
		tr.queue = tr.queue[1:]
		listRows, err := st.SmartScripts(ctx, listID, sai.SourceTimedActionList)
		if err != nil {
			return nil, err
		}
		fetched++
		if len(listRows) == 0 {
			continue
		}
		lists[listID] = tr.scripts(ctx, s, listRows, name)
	}
	if len(tr.queue) > 0 {
		s.Log.Warn("script chain truncated",
			zap.Int64("entryorguid", entryOrGUID),
			zap.Int("fetched", fetched),
			zap.Int("pending", len(tr.queue)))
	}

	return &ScriptChain{
		Entity:           ScriptEntity{EntryOrGUID: entryOrGUID, SourceType: sourceType, Name: name},
		MainScripts:      main,
		TimedActionLists: lists,
	}, nil
}

// chainTracer walks actionlist references breadth-first, visiting each
// list id once.
type chainTracer struct {
	queue []int64
	seen  map[int64]bool
}

func (t *chainTracer) scripts(ctx context.Context, s *Service, rows []sai.ScriptRow, name string) []ChainScript {
	commented := s.CommentsForRows(ctx, rows, name)
	out := make([]ChainScript, len(rows))
	for i := range rows {
		r := &rows[i]
		cs := ChainScript{
			ID:         r.ID,
			Comment:    commented[i].Generated,
			EventType:  r.EventType,
			ActionType: r.ActionType,
			Link:       r.Link,
			LinksTo:    r.Link,
		}
		if refs := actionListRefs(r); len(refs) > 0 {
			cs.CallsActionLists = refs
			for _, id := range refs {
				if !t.seen[id] {
					t.seen[id] = true
					t.queue = append(t.queue, id)
				}
			}
		}
		out[i] = cs
	}
	return out
}

// actionListRefs returns the timed actionlist ids one row invokes. Action 80
// calls a single list, 87 picks randomly among up to six, 88 picks randomly
// from an id range.
func actionListRefs(r *sai.ScriptRow) []int64 {
	switch r.ActionType {
	case sai.ActionCallTimedActionList:
		if r.ActionParam1 > 0 {
			return []int64{r.ActionParam1}
		}
	case sai.ActionCallRandomTimedActionList:
		return nonZero(r.ActionParam1, r.ActionParam2, r.ActionParam3,
			r.ActionParam4, r.ActionParam5, r.ActionParam6)
	case sai.ActionCallRandomRangeTimedActionList:
		lo, hi := r.ActionParam1, r.ActionParam2
		if lo <= 0 || hi < lo {
			return nil
		}
		// Clamp corrupt ranges before expanding them.
		if hi-lo >= maxTracedLists {
			hi = lo + maxTracedLists - 1
		}
		ids := make([]int64, 0, hi-lo+1)
		for id := lo; id <= hi; id++ {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// SourceExcerpts carries the matched case blocks from SmartScript.cpp, or a
// note when a type has no case there.
type SourceExcerpts struct {
	EventSource  string `json:"event_source,omitempty"`
	ActionSource string `json:"action_source,omitempty"`
	TargetSource string `json:"target_source,omitempty"`
}

// SAISourceExcerpt extracts the switch-case implementation of SmartAI type
// ids from a local AzerothCore checkout's SmartScript.cpp.
func (s *Service) SAISourceExcerpt(event, action, target *int64) (any, error) {
	cpp, err := s.sourceFile()
	if err != nil {
		return nil, err
	}
	if event == nil && action == nil && target == nil {
		return nil, errors.New("specify at least one of: event_type, action_type or target_type")
	}
	content, err := os.ReadFile(cpp)
	if err != nil {
		return nil, err
	}
	src := string(content)

	var out SourceExcerpts
	if event != nil {
		out.EventSource = caseBlock(src, sai.EventDoc(*event), "SMART_EVENT_", 200, 1000,
			fmt.Sprintf("Event type %d not found in SmartScript.cpp", *event))
	}
	if action != nil {
		out.ActionSource = caseBlock(src, sai.ActionDoc(*action), "SMART_ACTION_", 200, 1500,
			fmt.Sprintf("Action type %d not found in SmartScript.cpp", *action))
	}
	if target != nil {
		out.TargetSource = caseBlock(src, sai.TargetDoc(*target), "SMART_TARGET_", 200, 1500,
			fmt.Sprintf("Target type %d not found in SmartScript.cpp", *target))
	}
	return &out, nil
}

func (s *Service) sourceFile() (string, error) {
	var dir string
	if s.Config != nil {
		dir = s.Config.Data.SourceDir
	}
	if dir == "" {
		return "", errors.New("AzerothCore source path not configured; set data.source_dir in the server config")
	}
	if _, err := os.Stat(dir); err != nil {
		return "", fmt.Errorf("AzerothCore source path %s not found", dir)
	}
	cpp := filepath.Join(dir, "src", "server", "game", "AI", "SmartScripts", "SmartScript.cpp")
	if _, err := os.Stat(cpp); err != nil {
		return "", fmt.Errorf("SmartScript.cpp not found at %s", cpp)
	}
	return cpp, nil
}

// caseBlock locates the case statement for one enum value and returns it
// with a little context before and a window of implementation after. A type
// id missing from the documentation tables falls back to the first case of
// the family so the caller still lands in the right switch.
func caseBlock(src string, doc *sai.TypeDoc, prefix string, before, after int, miss string) string {
	var pat string
	if doc != nil && doc.Name != "" {
		pat = `case ` + regexp.QuoteMeta(doc.Name) + `\b`
	} else {
		pat = `case ` + prefix + `[A-Z_]+:`
	}
	loc := regexp.MustCompile(pat).FindStringIndex(src)
	if loc == nil {
		return miss
	}
	start := loc[0] - before
	if start < 0 {
		start = 0
	}
	end := loc[1] + after
	if end > len(src) {
		end = len(src)
	}
	return src[start:end]
}
