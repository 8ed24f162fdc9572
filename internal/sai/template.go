package sai

import (
	"fmt"
	"regexp"
	"strings"
)

// A template is a comment string compiled into literal text and typed
// slots. Compiling up front makes the substitution per slot explicit and
// keeps resolved names from ever being re-scanned for placeholders.
type template []segment

type segment struct {
	lit  string
	slot slotKind
}

type slotKind int

const (
	slotNone slotKind = iota

	// Event line slots.
	slotEventParam1
	slotEventParam2
	slotEventParam3
	slotEventParam4
	slotEventParam5
	slotEventParam6
	slotQuestEventParam1
	slotSpellEventParam1
	slotAuraEventParam1
	slotCastingSpellName
	slotWaypointParam1
	slotWaypointParam2
	slotPrevLine

	// Action line slots.
	slotActionParam1
	slotActionParam2
	slotActionParam3
	slotActionParam4
	slotActionParam5
	slotActionParam6
	slotQuestActionParam1
	slotQuestKillCredit
	slotSpellActionParam1
	slotSpellActionParam2
	slotCreatureActionParam1
	slotGameObjectActionParam1
	slotItemWithCount
	slotReactState
	slotStartStop
	slotEnableDisable
	slotEnableDisableInvert
	slotOnOffParam1
	slotOnOffParam2
	slotIncrementDecrement
	slotSheath
	slotDespawnTime
	slotInvincibilityHP
	slotMorph
	slotMount
	slotTargetType
	slotFollowStartStop
	slotOrientationTarget
	slotUnitFlags
	slotNPCFlags
	slotGOFlags
	slotDynamicFlags
	slotBytes1Flags
	slotRandomParams
	slotPowerType
	slotMovementType
	slotWaypointStart
	slotGOState
	slotAITemplate
	slotFollowGroup
)

var slotTokens = map[string]slotKind{
	"_eventParamOne_":   slotEventParam1,
	"_eventParamTwo_":   slotEventParam2,
	"_eventParamThree_": slotEventParam3,
	"_eventParamFour_":  slotEventParam4,
	"_eventParamFive_":  slotEventParam5,
	"_eventParamSix_":   slotEventParam6,

	"_questNameEventParamOne_": slotQuestEventParam1,
	"_spellNameEventParamOne_": slotSpellEventParam1,
	"_hasAuraEventParamOne_":   slotAuraEventParam1,
	"_targetCastingSpellName_": slotCastingSpellName,
	"_waypointParamOne_":       slotWaypointParam1,
	"_waypointParamTwo_":       slotWaypointParam2,
	"_previousLineComment_":    slotPrevLine,

	"_actionParamOne_":   slotActionParam1,
	"_actionParamTwo_":   slotActionParam2,
	"_actionParamThree_": slotActionParam3,
	"_actionParamFour_":  slotActionParam4,
	"_actionParamFive_":  slotActionParam5,
	"_actionParamSix_":   slotActionParam6,

	"_questNameActionParamOne_":      slotQuestActionParam1,
	"_questNameKillCredit_":          slotQuestKillCredit,
	"_spellNameActionParamOne_":      slotSpellActionParam1,
	"_spellNameActionParamTwo_":      slotSpellActionParam2,
	"_creatureNameActionParamOne_":   slotCreatureActionParam1,
	"_gameobjectNameActionParamOne_": slotGameObjectActionParam1,
	"_addItemBasedOnActionParams_":   slotItemWithCount,

	"_reactStateParamOne_":                 slotReactState,
	"_startOrStopActionParamOne_":          slotStartStop,
	"_enableDisableActionParamOne_":        slotEnableDisable,
	"_enableDisableInvertActionParamOne_":  slotEnableDisableInvert,
	"_onOffActionParamOne_":                slotOnOffParam1,
	"_onOffActionParamTwo_":                slotOnOffParam2,
	"_incrementOrDecrementActionParamOne_": slotIncrementDecrement,
	"_sheathActionParamOne_":               slotSheath,
	"_forceDespawnActionParamOne_":         slotDespawnTime,
	"_invincibilityHpActionParamsOneTwo_":  slotInvincibilityHP,
	"_morphToEntryOrModelActionParams_":    slotMorph,
	"_mountToEntryOrModelActionParams_":    slotMount,

	"_getTargetType_":                slotTargetType,
	"_startOrStopBasedOnTargetType_": slotFollowStartStop,
	"_setOrientationTargetType_":     slotOrientationTarget,

	"_getUnitFlags_":    slotUnitFlags,
	"_getNpcFlags_":     slotNPCFlags,
	"_getGoFlags_":      slotGOFlags,
	"_getDynamicFlags_": slotDynamicFlags,
	"_getBytes1Flags_":  slotBytes1Flags,

	"_actionRandomParameters_":         slotRandomParams,
	"_powerTypeActionParamOne_":        slotPowerType,
	"_movementTypeActionParamOne_":     slotMovementType,
	"_waypointStartActionParamThree_":  slotWaypointStart,
	"_goStateActionParamOne_":          slotGOState,
	"_updateAiTemplateActionParamOne_": slotAITemplate,
	"_followGroupParamTwo_":            slotFollowGroup,
}

var placeholderPat = regexp.MustCompile(`_[A-Za-z0-9]+_`)

// compile splits a comment template into segments. An unknown placeholder
// is a defect in the tables, so it panics at package init.
func compile(src string) template {
	var t template
	last := 0
	for _, loc := range placeholderPat.FindAllStringIndex(src, -1) {
		tok := src[loc[0]:loc[1]]
		kind, ok := slotTokens[tok]
		if !ok {
			panic(fmt.Sprintf("sai: unknown placeholder %s in template %q", tok, src))
		}
		if loc[0] > last {
			t = append(t, segment{lit: src[last:loc[0]]})
		}
		t = append(t, segment{slot: kind})
		last = loc[1]
	}
	if last < len(src) {
		t = append(t, segment{lit: src[last:]})
	}
	return t
}

func hasSlot(t template, k slotKind) bool {
	for _, seg := range t {
		if seg.slot == k {
			return true
		}
	}
	return false
}

var (
	eventTemplates  = make(map[int64]template, len(EventComments))
	actionTemplates = make(map[int64]template, len(ActionComments))
)

func init() {
	for id, src := range EventComments {
		eventTemplates[id] = compile(src)
	}
	for id, src := range ActionComments {
		actionTemplates[id] = compile(src)
	}
}

type flagName struct {
	bit  int64
	name string
}

// flagList joins the names of the set bits in table order.
func flagList(table []flagName, flags int64) string {
	var parts []string
	for _, f := range table {
		if flags&f.bit != 0 {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, " & ")
}

// flagPrefix turns a joined flag list into the " Name" or "s A & B" form
// the templates expect directly after the word "Flag".
func flagPrefix(joined string) string {
	if strings.Contains(joined, " & ") {
		return "s " + joined
	}
	return " " + joined
}
