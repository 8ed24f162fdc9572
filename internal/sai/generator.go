// Package sai synthesizes Keira3-style comments for SmartAI script rows.
//
// A comment is an event line and an action line joined by " - ". The event
// line may borrow its wording and parameters from the row whose link field
// triggers it, and the action line carries phase and difficulty
// annotations from that same row. Entity names come from a Lookup so the
// generator itself never touches a database.
package sai

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxLinkDepth bounds link chain walks. Real scripts chain a handful of
// rows; anything deeper is a data problem.
const maxLinkDepth = 64

// ErrLinkChain reports a smart_scripts link chain that loops back on
// itself or exceeds maxLinkDepth.
var ErrLinkChain = errors.New("unresolvable link chain")

// Generator builds comments for smart_scripts rows.
type Generator struct {
	look Lookup
}

func NewGenerator(look Lookup) *Generator {
	return &Generator{look: look}
}

// Generate builds the comment for target. rows holds every script row of
// the same entity so linked events resolve; name is the display name of
// the owning entity. Input rows are never modified.
//
// The returned comment is always usable. A non-nil error reports a cyclic
// or overlong link chain; the comment is then built as if the link were
// missing.
func (g *Generator) Generate(rows []ScriptRow, target ScriptRow, name string) (string, error) {
	link, err := priorLink(rows, &target)
	event := g.eventLine(&target, link, name)
	action := g.actionLine(&target, link)
	return event + " - " + action, err
}

// Comments generates one comment per row, index aligned with rows. Chain
// errors are joined into the returned error; the affected rows still get
// a degraded comment.
func (g *Generator) Comments(rows []ScriptRow, name string) ([]string, error) {
	out := make([]string, len(rows))
	var errs []error
	for i := range rows {
		c, err := g.Generate(rows, rows[i], name)
		out[i] = c
		if err != nil {
			errs = append(errs, fmt.Errorf("row %d: %w", rows[i].ID, err))
		}
	}
	return out, errors.Join(errs...)
}

// priorLink finds the row whose link field triggers target, following
// LINK rows back to the concrete triggering event. Returns nil when
// nothing links to target.
func priorLink(rows []ScriptRow, target *ScriptRow) (*ScriptRow, error) {
	if target.ID == 0 {
		return nil, nil
	}
	seen := make(map[int64]bool)
	id := target.ID
	for depth := 0; depth < maxLinkDepth; depth++ {
		if seen[id] {
			return nil, fmt.Errorf("%w: loop through row %d", ErrLinkChain, id)
		}
		seen[id] = true
		var found *ScriptRow
		for i := range rows {
			if rows[i].Link == id {
				found = &rows[i]
				break
			}
		}
		if found == nil {
			return nil, nil
		}
		if found.EventType != EventLink {
			return found, nil
		}
		id = found.ID
	}
	return nil, fmt.Errorf("%w: more than %d hops from row %d", ErrLinkChain, maxLinkDepth, target.ID)
}

func (g *Generator) eventLine(target, link *ScriptRow, name string) string {
	switch target.SourceType {
	case SourceAreaTrigger:
		if target.EventType == EventAreaTriggerTrigger || target.EventType == EventLink {
			return "Areatrigger - On Trigger"
		}
		return "Areatrigger - INCORRECT EVENT TYPE"
	case SourceTimedActionList:
		return name + " - Actionlist"
	case SourceCreature, SourceGameObject:
	default:
		return fmt.Sprintf("%s - [Unknown source type %d]", name, target.SourceType)
	}

	tmpl, ok := eventTemplates[target.EventType]
	if !ok {
		return fmt.Sprintf("%s - [Unknown Event %d]", name, target.EventType)
	}
	ep := target.eventParams()
	if hasSlot(tmpl, slotPrevLine) {
		if link == nil {
			return name + " - MISSING LINK"
		}
		// The linked event supplies both the wording and the parameters.
		// An unknown linked event type renders as an empty comment.
		tmpl = eventTemplates[link.EventType]
		ep = link.eventParams()
	}
	return name + " - " + g.render(tmpl, target, ep)
}

func (g *Generator) actionLine(target, link *ScriptRow) string {
	var line string
	if tmpl, ok := actionTemplates[target.ActionType]; ok {
		line = g.render(tmpl, target, target.eventParams())
	} else {
		line = fmt.Sprintf("[Unknown Action %d]", target.ActionType)
	}
	ann := target
	if link != nil {
		ann = link
	}
	return line + phaseSuffix(ann.EventPhaseMask) + flagSuffix(ann.EventFlags)
}

func (g *Generator) render(t template, row *ScriptRow, ep [6]int64) string {
	var b strings.Builder
	for _, seg := range t {
		if seg.slot == slotNone {
			b.WriteString(seg.lit)
		} else {
			b.WriteString(g.fill(seg.slot, row, ep))
		}
	}
	return b.String()
}

// fill renders one slot. Event parameter slots read from ep, which may
// come from a linked row; everything else reads the row itself.
func (g *Generator) fill(k slotKind, r *ScriptRow, ep [6]int64) string {
	switch k {
	case slotEventParam1, slotEventParam2, slotEventParam3, slotEventParam4, slotEventParam5, slotEventParam6:
		return strconv.FormatInt(ep[int(k-slotEventParam1)], 10)
	case slotQuestEventParam1:
		return g.look.QuestTitle(ep[0])
	case slotSpellEventParam1, slotAuraEventParam1:
		return g.look.SpellName(ep[0])
	case slotCastingSpellName:
		return g.look.SpellName(ep[2])
	case slotWaypointParam1:
		return waypointOrAny(ep[0])
	case slotWaypointParam2:
		return waypointOrAny(ep[1])
	case slotPrevLine:
		return "MISSING LINK"

	case slotActionParam1, slotActionParam2, slotActionParam3, slotActionParam4, slotActionParam5, slotActionParam6:
		return strconv.FormatInt(r.actionParam(int(k-slotActionParam1)+1), 10)
	case slotQuestActionParam1, slotQuestKillCredit:
		return g.look.QuestTitle(r.ActionParam1)
	case slotSpellActionParam1:
		return g.look.SpellName(r.ActionParam1)
	case slotSpellActionParam2:
		return g.look.SpellName(r.ActionParam2)
	case slotCreatureActionParam1:
		return g.look.CreatureName(r.ActionParam1)
	case slotGameObjectActionParam1:
		return "'" + g.look.GameObjectName(r.ActionParam1) + "'"
	case slotItemWithCount:
		return g.itemWithCount(r)
	case slotReactState:
		return nameOr(reactStates, r.ActionParam1, "[Unknown Reactstate]")
	case slotStartStop:
		if r.ActionParam1 == 0 {
			return "Stop"
		}
		return "Start"
	case slotEnableDisable:
		if r.ActionParam1 == 0 {
			return "Disable"
		}
		return "Enable"
	case slotEnableDisableInvert:
		if r.ActionParam1 == 0 {
			return "Enable"
		}
		return "Disable"
	case slotOnOffParam1:
		return onOff(r.ActionParam1)
	case slotOnOffParam2:
		return onOff(r.ActionParam2)
	case slotIncrementDecrement:
		switch {
		case r.ActionParam1 == 1:
			return "Increment"
		case r.ActionParam2 == 1:
			return "Decrement"
		}
		return "Increment or Decrement"
	case slotSheath:
		return nameOr(sheathStates, r.ActionParam1, "[Unknown Sheath]")
	case slotDespawnTime:
		if r.ActionParam1 > 2 {
			return fmt.Sprintf("In %d ms", r.ActionParam1)
		}
		return "Instant"
	case slotInvincibilityHP:
		return invincibilityText(r)
	case slotMorph:
		return g.morphText(r, "Morph", "Demorph")
	case slotMount:
		return g.morphText(r, "Mount", "Dismount")
	case slotTargetType:
		return g.targetString(r)
	case slotFollowStartStop:
		if r.TargetType == 0 {
			return "Stop"
		}
		return "Start"
	case slotOrientationTarget:
		switch r.TargetType {
		case 1:
			return "Home Position"
		case 8:
			return strconv.FormatFloat(r.TargetO, 'g', -1, 64)
		}
		return g.targetString(r)
	case slotUnitFlags:
		return flagPrefix(flagList(unitFlagNames, r.ActionParam1))
	case slotNPCFlags:
		return flagPrefix(flagList(npcFlagNames, r.ActionParam1))
	case slotGOFlags:
		return flagPrefix(flagList(goFlagNames, r.ActionParam1))
	case slotDynamicFlags:
		return flagPrefix(flagList(dynamicFlagNames, r.ActionParam1))
	case slotBytes1Flags:
		return flagPrefix(flagList(bytes1FlagNames, r.ActionParam1))
	case slotRandomParams:
		return randomParams(r)
	case slotPowerType:
		return nameOr(powerTypes, r.ActionParam1, "[Unknown Powertype]")
	case slotMovementType:
		return nameOr(movementTypes, r.ActionParam1, "[Unknown Value]")
	case slotWaypointStart:
		switch r.ActionParam3 {
		case 0:
			return "Waypoint "
		case 1:
			return "Patrol "
		}
		return "[Unknown Value] "
	case slotGOState:
		return nameOr(goStates, r.ActionParam1, "[Unknown Gameobject State]")
	case slotAITemplate:
		return nameOr(aiTemplates, r.ActionParam1, "[Unknown ai template]")
	case slotFollowGroup:
		return nameOr(followTypes, r.ActionParam2, "[Unknown Follow Type]")
	}
	return ""
}

// targetString renders a target type the way the action templates embed
// it. Creature and gameobject targets resolve their entry or guid through
// the lookup; everything else is a fixed phrase.
func (g *Generator) targetString(r *ScriptRow) string {
	if s, ok := targetStrings[r.TargetType]; ok {
		return s
	}
	switch r.TargetType {
	case targetCreatureRange, targetCreatureDistance, targetClosestCreature:
		return fmt.Sprintf("Closest Creature '%s'", g.look.CreatureName(r.TargetParam1))
	case targetCreatureGUID:
		return fmt.Sprintf("Closest Creature '%s'", g.look.CreatureNameByGUID(r.TargetParam1))
	case targetGameObjectRange, targetGameObjectDistance, targetClosestGameObject:
		return fmt.Sprintf("Closest Gameobject '%s'", g.look.GameObjectName(r.TargetParam1))
	case targetGameObjectGUID:
		return fmt.Sprintf("Closest Gameobject '%s'", g.look.GameObjectNameByGUID(r.TargetParam1))
	}
	return "[unsupported target type]"
}

func (g *Generator) itemWithCount(r *ScriptRow) string {
	suffix := ""
	if r.ActionParam2 > 1 {
		suffix = "s"
	}
	return fmt.Sprintf("'%s' %d Time%s", g.look.ItemName(r.ActionParam1), r.ActionParam2, suffix)
}

func (g *Generator) morphText(r *ScriptRow, verb, reset string) string {
	switch {
	case r.ActionParam1 > 0:
		return verb + " To Creature " + g.look.CreatureName(r.ActionParam1)
	case r.ActionParam2 > 0:
		return fmt.Sprintf("%s To Model %d", verb, r.ActionParam2)
	}
	return reset
}

func invincibilityText(r *ScriptRow) string {
	switch {
	case r.ActionParam1 > 0:
		return fmt.Sprintf("Set Invincibility Hp %d", r.ActionParam1)
	case r.ActionParam2 > 0:
		return fmt.Sprintf("Set Invincibility Hp %d%%", r.ActionParam2)
	case r.ActionParam1 == 0 && r.ActionParam2 == 0:
		return "Reset Invincibility Hp"
	}
	return "[Unsupported parameters]"
}

// randomParams joins the first two action parameters with any further
// non-zero ones, for the "pick one of" actions.
func randomParams(r *ScriptRow) string {
	parts := []string{
		strconv.FormatInt(r.ActionParam1, 10),
		strconv.FormatInt(r.ActionParam2, 10),
	}
	for n := 3; n <= 6; n++ {
		if v := r.actionParam(n); v > 0 {
			parts = append(parts, strconv.FormatInt(v, 10))
		}
	}
	return strings.Join(parts, ", ")
}

func waypointOrAny(v int64) string {
	if v > 0 {
		return strconv.FormatInt(v, 10)
	}
	return "Any"
}

func onOff(v int64) string {
	if v == 1 {
		return "On"
	}
	return "Off"
}

func nameOr(names map[int64]string, key int64, fallback string) string {
	if s, ok := names[key]; ok {
		return s
	}
	return fallback
}

// Event flag bits in smart_scripts.event_flags.
const (
	eventFlagNotRepeatable = 0x01
	eventFlagNormalDungeon = 0x02
	eventFlagHeroicDungeon = 0x04
	eventFlagNormalRaid    = 0x08
	eventFlagHeroicRaid    = 0x10
	eventFlagDebugOnly     = 0x80
)

// phaseSuffix renders the " (Phase N)" annotation for a phase mask. Bits
// past the ninth phase are ignored.
func phaseSuffix(mask int64) string {
	if mask == 0 {
		return ""
	}
	var phases []string
	for i := 0; i < 9; i++ {
		if mask&(1<<i) != 0 {
			phases = append(phases, strconv.Itoa(i+1))
		}
	}
	switch len(phases) {
	case 0:
		return ""
	case 1:
		return " (Phase " + phases[0] + ")"
	}
	return " (Phases " + strings.Join(phases, " & ") + ")"
}

// flagSuffix renders the repeatability and difficulty annotations. All
// four difficulty bits collapse to "Dungeon & Raid"; otherwise dungeon
// and raid annotations are reported separately, with the paired normal
// and heroic bits collapsing into the plain name.
func flagSuffix(flags int64) string {
	if flags == 0 {
		return ""
	}
	var b strings.Builder
	if flags&eventFlagNotRepeatable != 0 {
		b.WriteString(" (No Repeat)")
	}
	nd := flags&eventFlagNormalDungeon != 0
	hd := flags&eventFlagHeroicDungeon != 0
	nr := flags&eventFlagNormalRaid != 0
	hr := flags&eventFlagHeroicRaid != 0
	if nd && hd && nr && hr {
		b.WriteString(" (Dungeon & Raid)")
	} else {
		switch {
		case nd && hd:
			b.WriteString(" (Dungeon)")
		case nd:
			b.WriteString(" (Normal Dungeon)")
		case hd:
			b.WriteString(" (Heroic Dungeon)")
		}
		switch {
		case nr && hr:
			b.WriteString(" (Raid)")
		case nr:
			b.WriteString(" (Normal Raid)")
		case hr:
			b.WriteString(" (Heroic Raid)")
		}
	}
	if flags&eventFlagDebugOnly != 0 {
		b.WriteString(" (Debug)")
	}
	return b.String()
}
