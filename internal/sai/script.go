package sai

// Script source types in smart_scripts.source_type.
const (
	SourceCreature        = 0
	SourceGameObject      = 1
	SourceAreaTrigger     = 2
	SourceTimedActionList = 9
)

// Event and action types the generator and the script tracer treat
// specially.
const (
	EventLink               = 61
	EventAreaTriggerTrigger = 46

	ActionCallTimedActionList            = 80
	ActionCallRandomTimedActionList      = 87
	ActionCallRandomRangeTimedActionList = 88
)

// Target types that resolve through an entity name lookup.
const (
	targetCreatureRange      = 9
	targetCreatureGUID       = 10
	targetCreatureDistance   = 11
	targetGameObjectRange    = 13
	targetGameObjectGUID     = 14
	targetGameObjectDistance = 15
	targetClosestCreature    = 19
	targetClosestGameObject  = 20
)

// ScriptRow is one smart_scripts row. Field names follow the table columns
// so tool responses marshal into the shapes database users expect.
type ScriptRow struct {
	EntryOrGUID    int64   `json:"entryorguid"`
	SourceType     int64   `json:"source_type"`
	ID             int64   `json:"id"`
	Link           int64   `json:"link"`
	EventType      int64   `json:"event_type"`
	EventPhaseMask int64   `json:"event_phase_mask"`
	EventChance    int64   `json:"event_chance"`
	EventFlags     int64   `json:"event_flags"`
	EventParam1    int64   `json:"event_param1"`
	EventParam2    int64   `json:"event_param2"`
	EventParam3    int64   `json:"event_param3"`
	EventParam4    int64   `json:"event_param4"`
	EventParam5    int64   `json:"event_param5"`
	EventParam6    int64   `json:"event_param6"`
	ActionType     int64   `json:"action_type"`
	ActionParam1   int64   `json:"action_param1"`
	ActionParam2   int64   `json:"action_param2"`
	ActionParam3   int64   `json:"action_param3"`
	ActionParam4   int64   `json:"action_param4"`
	ActionParam5   int64   `json:"action_param5"`
	ActionParam6   int64   `json:"action_param6"`
	TargetType     int64   `json:"target_type"`
	TargetParam1   int64   `json:"target_param1"`
	TargetParam2   int64   `json:"target_param2"`
	TargetParam3   int64   `json:"target_param3"`
	TargetParam4   int64   `json:"target_param4"`
	TargetX        float64 `json:"target_x"`
	TargetY        float64 `json:"target_y"`
	TargetZ        float64 `json:"target_z"`
	TargetO        float64 `json:"target_o"`
	Comment        string  `json:"comment"`
}

// eventParams gathers the six event parameters for slot rendering. A
// linked row substitutes its own array here without touching the target.
func (r *ScriptRow) eventParams() [6]int64 {
	return [6]int64{
		r.EventParam1, r.EventParam2, r.EventParam3,
		r.EventParam4, r.EventParam5, r.EventParam6,
	}
}

// actionParam returns action_param<n> for n in 1..6.
func (r *ScriptRow) actionParam(n int) int64 {
	switch n {
	case 1:
		return r.ActionParam1
	case 2:
		return r.ActionParam2
	case 3:
		return r.ActionParam3
	case 4:
		return r.ActionParam4
	case 5:
		return r.ActionParam5
	case 6:
		return r.ActionParam6
	}
	return 0
}

// Lookup resolves entity names referenced by script parameters.
// Implementations return a readable placeholder when a name cannot be
// found and never report errors; comment text absorbs whatever comes
// back. SpellName must return "" for id 0 to match the established
// comment vocabulary for aura and cast lines.
type Lookup interface {
	SpellName(id int64) string
	QuestTitle(id int64) string
	CreatureName(entry int64) string
	CreatureNameByGUID(guid int64) string
	GameObjectName(entry int64) string
	GameObjectNameByGUID(guid int64) string
	ItemName(entry int64) string
}

// TypeDoc documents one SmartAI event, action, or target type.
type TypeDoc struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"description"`
	Params string `json:"parameters"`
}
