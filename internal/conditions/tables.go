package conditions

// Source-type and condition-type documentation for the conditions table,
// matching the 3.3.5 AzerothCore enums. Targets maps ConditionTarget values
// to what they select.

// SourceTypes documents every known SourceTypeOrReferenceId value.
var SourceTypes = map[int64]SourceDoc{
	0: {
		Name:        "CONDITION_SOURCE_TYPE_NONE",
		Description: "Reference template. Only used when SourceTypeOrReferenceId is negative.",
		SourceGroup: "Reference ID (negative value)",
		SourceEntry: "N/A",
		Targets: map[int64]string{
			0: "Depends on reference usage",
		},
	},
	1: {
		Name:        "CONDITION_SOURCE_TYPE_CREATURE_LOOT_TEMPLATE",
		Description: "Condition for creature loot drops",
		SourceGroup: "creature_loot_template.Entry",
		SourceEntry: "Item ID from loot_template.Item",
		Targets: map[int64]string{
			0: "Player looting",
		},
		Notes: "IMPORTANT: For items with StartQuest set, conditions are checked FIRST, but the core then checks if player can start the quest. If the quest has PrevQuestID set, the item won't drop unless PrevQuestID is REWARDED (not just taken). To allow drops while a prereq quest is active, set PrevQuestID=0 on the quest and use loot conditions to control prerequisites instead.",
	},
	2: {
		Name:        "CONDITION_SOURCE_TYPE_DISENCHANT_LOOT_TEMPLATE",
		Description: "Condition for disenchant results",
		SourceGroup: "disenchant_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player disenchanting",
		},
	},
	3: {
		Name:        "CONDITION_SOURCE_TYPE_FISHING_LOOT_TEMPLATE",
		Description: "Condition for fishing loot",
		SourceGroup: "fishing_loot_template.Entry (zone ID)",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player fishing",
		},
	},
	4: {
		Name:        "CONDITION_SOURCE_TYPE_GAMEOBJECT_LOOT_TEMPLATE",
		Description: "Condition for gameobject loot (chests, etc.)",
		SourceGroup: "gameobject_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player looting",
		},
		Notes: "IMPORTANT: For items with StartQuest set, conditions are checked FIRST, but the core then checks if player can start the quest. If the quest has PrevQuestID set, the item won't drop unless PrevQuestID is REWARDED (not just taken). To allow drops while a prereq quest is active, set PrevQuestID=0 on the quest and use loot conditions to control prerequisites instead.",
	},
	5: {
		Name:        "CONDITION_SOURCE_TYPE_ITEM_LOOT_TEMPLATE",
		Description: "Condition for item container loot (bags, lockboxes)",
		SourceGroup: "item_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player opening",
		},
	},
	6: {
		Name:        "CONDITION_SOURCE_TYPE_MAIL_LOOT_TEMPLATE",
		Description: "Condition for mail attachment loot",
		SourceGroup: "mail_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player receiving mail",
		},
	},
	7: {
		Name:        "CONDITION_SOURCE_TYPE_MILLING_LOOT_TEMPLATE",
		Description: "Condition for milling results (Inscription)",
		SourceGroup: "milling_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player milling",
		},
	},
	8: {
		Name:        "CONDITION_SOURCE_TYPE_PICKPOCKETING_LOOT_TEMPLATE",
		Description: "Condition for pickpocket loot",
		SourceGroup: "pickpocketing_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player pickpocketing",
		},
	},
	9: {
		Name:        "CONDITION_SOURCE_TYPE_PROSPECTING_LOOT_TEMPLATE",
		Description: "Condition for prospecting results (Jewelcrafting)",
		SourceGroup: "prospecting_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player prospecting",
		},
	},
	10: {
		Name:        "CONDITION_SOURCE_TYPE_REFERENCE_LOOT_TEMPLATE",
		Description: "Condition for reference loot template",
		SourceGroup: "reference_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player looting",
		},
	},
	11: {
		Name:        "CONDITION_SOURCE_TYPE_SKINNING_LOOT_TEMPLATE",
		Description: "Condition for skinning loot",
		SourceGroup: "skinning_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player skinning",
		},
	},
	12: {
		Name:        "CONDITION_SOURCE_TYPE_SPELL_LOOT_TEMPLATE",
		Description: "Condition for spell-created loot",
		SourceGroup: "spell_loot_template.Entry",
		SourceEntry: "Item ID",
		Targets: map[int64]string{
			0: "Player casting",
		},
	},
	13: {
		Name:        "CONDITION_SOURCE_TYPE_SPELL_IMPLICIT_TARGET",
		Description: "Filter for spell implicit targets (area/nearby/cone targets)",
		SourceGroup: "Effect mask (1=EFFECT_0, 2=EFFECT_1, 4=EFFECT_2)",
		SourceEntry: "Spell ID",
		Targets: map[int64]string{
			0: "Potential spell target",
			1: "Spell caster",
		},
		Notes: "Use for filtering area targets. For explicit targets, use source type 17.",
	},
	14: {
		Name:        "CONDITION_SOURCE_TYPE_GOSSIP_MENU",
		Description: "Condition for showing gossip menu text",
		SourceGroup: "gossip_menu.MenuID",
		SourceEntry: "gossip_menu.TextID (npc_text.ID)",
		Targets: map[int64]string{
			0: "Player viewing gossip",
			1: "WorldObject providing gossip (NPC/GO)",
		},
	},
	15: {
		Name:        "CONDITION_SOURCE_TYPE_GOSSIP_MENU_OPTION",
		Description: "Condition for showing gossip menu options",
		SourceGroup: "gossip_menu_option.MenuID",
		SourceEntry: "gossip_menu_option.OptionID",
		Targets: map[int64]string{
			0: "Player viewing gossip",
			1: "WorldObject providing gossip (NPC/GO)",
		},
	},
	16: {
		Name:        "CONDITION_SOURCE_TYPE_CREATURE_TEMPLATE_VEHICLE",
		Description: "Condition for vehicle usage",
		SourceGroup: "Always 0",
		SourceEntry: "creature_template.entry (vehicle)",
		Targets: map[int64]string{
			0: "Player riding vehicle",
			1: "Vehicle creature",
		},
	},
	17: {
		Name:        "CONDITION_SOURCE_TYPE_SPELL",
		Description: "Condition for spell casting (caster/explicit target requirements)",
		SourceGroup: "Always 0",
		SourceEntry: "Spell ID",
		Targets: map[int64]string{
			0: "Spell caster",
			1: "Explicit target (player-selected target)",
		},
		Notes: "Use for cast requirements. For area targets, use source type 13.",
	},
	18: {
		Name:        "CONDITION_SOURCE_TYPE_SPELL_CLICK_EVENT",
		Description: "Condition for npc_spellclick_spells",
		SourceGroup: "npc_spellclick_spells.npc_entry",
		SourceEntry: "npc_spellclick_spells.spell_id",
		Targets: map[int64]string{
			0: "Player clicking",
			1: "Spellclick target (clickee)",
		},
	},
	19: {
		Name:        "CONDITION_SOURCE_TYPE_QUEST_AVAILABLE",
		Description: "Condition for quest to be available/shown",
		SourceGroup: "Always 0",
		SourceEntry: "Quest ID",
		Targets: map[int64]string{
			0: "Player",
		},
	},
	20: {
		Name:        "CONDITION_SOURCE_TYPE_UNUSED_20",
		Description: "Unused",
		SourceGroup: "N/A",
		SourceEntry: "N/A",
		Targets:     map[int64]string{},
	},
	21: {
		Name:        "CONDITION_SOURCE_TYPE_VEHICLE_SPELL",
		Description: "Show/hide spells in vehicle spell bar",
		SourceGroup: "creature_template.entry (vehicle)",
		SourceEntry: "Spell ID",
		Targets: map[int64]string{
			0: "Player in vehicle",
			1: "Vehicle creature",
		},
	},
	22: {
		Name:        "CONDITION_SOURCE_TYPE_SMART_EVENT",
		Description: "Condition for SmartAI script execution",
		SourceGroup: "smart_scripts.id + 1",
		SourceEntry: "smart_scripts.entryorguid",
		SourceID:    "smart_scripts.source_type",
		Targets: map[int64]string{
			0: "Invoker (usually player)",
			1: "Object (creature/gameobject running the script)",
		},
	},
	23: {
		Name:        "CONDITION_SOURCE_TYPE_NPC_VENDOR",
		Description: "Condition for vendor item availability",
		SourceGroup: "npc_vendor.entry (creature entry)",
		SourceEntry: "npc_vendor.item (item entry)",
		Targets: map[int64]string{
			0: "Player shopping",
		},
	},
	24: {
		Name:        "CONDITION_SOURCE_TYPE_SPELL_PROC",
		Description: "Condition for spell proc triggering",
		SourceGroup: "Always 0",
		SourceEntry: "Spell ID of aura triggering the proc",
		Targets: map[int64]string{
			0: "Actor (aura holder)",
			1: "ActionTarget",
		},
	},
	28: {
		Name:        "CONDITION_SOURCE_TYPE_PLAYER_LOOT_TEMPLATE",
		Description: "Condition for player loot (PvP, etc.)",
		SourceGroup: "player_loot_template.entry",
		SourceEntry: "Always 0",
		Targets: map[int64]string{
			0: "Player",
		},
	},
	29: {
		Name:        "CONDITION_SOURCE_TYPE_CREATURE_VISIBILITY",
		Description: "Condition for creature visibility to players",
		SourceGroup: "Always 0",
		SourceEntry: "creature_template.entry",
		Targets: map[int64]string{
			0: "Player",
			1: "Creature",
		},
	},
}

// Types documents every known ConditionTypeOrReference value. Ids 41 and
// 50-100 are unused on this branch.
var Types = map[int64]TypeDoc{
	0: {
		Name:        "CONDITION_NONE",
		Description: "Never used",
		Value1:      "N/A",
		Value2:      "N/A",
		Value3:      "N/A",
	},
	1: {
		Name:        "CONDITION_AURA",
		Description: "Target has aura from spell",
		Value1:      "Spell ID",
		Value2:      "Effect index (0-2)",
		Value3:      "Always 0",
	},
	2: {
		Name:        "CONDITION_ITEM",
		Description: "Target has item(s) in inventory",
		Value1:      "Item entry",
		Value2:      "Item count required",
		Value3:      "0 = not in bank, 1 = check bank too",
	},
	3: {
		Name:        "CONDITION_ITEM_EQUIPPED",
		Description: "Target has item equipped",
		Value1:      "Item entry",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	4: {
		Name:        "CONDITION_ZONEID",
		Description: "Target is in zone",
		Value1:      "Zone ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	5: {
		Name:        "CONDITION_REPUTATION_RANK",
		Description: "Target has reputation rank with faction",
		Value1:      "Faction ID (from Faction.dbc)",
		Value2:      "Rank mask: 1=Hated, 2=Hostile, 4=Unfriendly, 8=Neutral, 16=Friendly, 32=Honored, 64=Revered, 128=Exalted",
		Value3:      "Always 0",
	},
	6: {
		Name:        "CONDITION_TEAM",
		Description: "Target is on team (Alliance/Horde)",
		Value1:      "469 = Alliance, 67 = Horde",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	7: {
		Name:        "CONDITION_SKILL",
		Description: "Target has skill at level",
		Value1:      "Skill ID (from SkillLine.dbc)",
		Value2:      "Minimum skill value",
		Value3:      "Always 0",
	},
	8: {
		Name:        "CONDITION_QUESTREWARDED",
		Description: "Target has completed and been rewarded quest",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	9: {
		Name:        "CONDITION_QUESTTAKEN",
		Description: "Target has quest in log (active)",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	10: {
		Name:        "CONDITION_DRUNKENSTATE",
		Description: "Target's drunken state",
		Value1:      "0=Sober, 1=Tipsy, 2=Drunk, 3=Smashed",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	11: {
		Name:        "CONDITION_WORLD_STATE",
		Description: "World state has value",
		Value1:      "World state index",
		Value2:      "World state value",
		Value3:      "Always 0",
	},
	12: {
		Name:        "CONDITION_ACTIVE_EVENT",
		Description: "Game event is active",
		Value1:      "game_event.eventEntry",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	13: {
		Name:        "CONDITION_INSTANCE_INFO",
		Description: "Instance script data check",
		Value1:      "Entry (script-specific)",
		Value2:      "Data value (script-specific)",
		Value3:      "0=INSTANCE_INFO_DATA, 1=GUID_DATA, 2=BOSS_STATE, 3=DATA64",
	},
	14: {
		Name:        "CONDITION_QUEST_NONE",
		Description: "Target has never accepted quest",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	15: {
		Name:        "CONDITION_CLASS",
		Description: "Target is class(es)",
		Value1:      "Class mask (1=Warrior, 2=Paladin, 4=Hunter, 8=Rogue, 16=Priest, 32=DK, 64=Shaman, 128=Mage, 256=Warlock, 1024=Druid)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	16: {
		Name:        "CONDITION_RACE",
		Description: "Target is race(s)",
		Value1:      "Race mask (1=Human, 2=Orc, 4=Dwarf, 8=NightElf, 16=Undead, 32=Tauren, 64=Gnome, 128=Troll, 512=BloodElf, 1024=Draenei)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	17: {
		Name:        "CONDITION_ACHIEVEMENT",
		Description: "Target has achievement",
		Value1:      "Achievement ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	18: {
		Name:        "CONDITION_TITLE",
		Description: "Target has title",
		Value1:      "Title ID (from CharTitles.dbc)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	19: {
		Name:        "CONDITION_SPAWNMASK",
		Description: "Difficulty/spawnmask check",
		Value1:      "SpawnMask value",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	20: {
		Name:        "CONDITION_GENDER",
		Description: "Target is gender",
		Value1:      "0=Male, 1=Female, 2=None",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	21: {
		Name:        "CONDITION_UNIT_STATE",
		Description: "Target has unit state",
		Value1:      "UnitState enum value",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	22: {
		Name:        "CONDITION_MAPID",
		Description: "Target is on map",
		Value1:      "Map ID (0=Eastern Kingdoms, 1=Kalimdor, etc.)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	23: {
		Name:        "CONDITION_AREAID",
		Description: "Target is in area",
		Value1:      "Area ID (from AreaTable.dbc)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	24: {
		Name:        "CONDITION_CREATURE_TYPE",
		Description: "Target creature is type",
		Value1:      "Creature type (0=Beast, 1=Dragonkin, etc.)",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	25: {
		Name:        "CONDITION_SPELL",
		Description: "Target knows spell",
		Value1:      "Spell ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	26: {
		Name:        "CONDITION_PHASEMASK",
		Description: "Target is in phase",
		Value1:      "Phase mask value",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	27: {
		Name:        "CONDITION_LEVEL",
		Description: "Target level comparison",
		Value1:      "Level value",
		Value2:      "0=equal, 1=higher, 2=lower, 3=higher or equal, 4=lower or equal",
		Value3:      "Always 0",
	},
	28: {
		Name:        "CONDITION_QUEST_COMPLETE",
		Description: "Target has quest objectives complete (not yet rewarded)",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	29: {
		Name:        "CONDITION_NEAR_CREATURE",
		Description: "Target is near creature",
		Value1:      "Creature entry",
		Value2:      "Distance in yards",
		Value3:      "0=Alive, 1=Dead",
	},
	30: {
		Name:        "CONDITION_NEAR_GAMEOBJECT",
		Description: "Target is near gameobject",
		Value1:      "Gameobject entry",
		Value2:      "Distance in yards",
		Value3:      "GoState: 0=ignore, 1=Ready, 2=Not Ready",
	},
	31: {
		Name:        "CONDITION_OBJECT_ENTRY_GUID",
		Description: "Target is specific object type/entry/guid",
		Value1:      "TypeID: 3=Unit, 4=Player, 5=GameObject, 7=Corpse",
		Value2:      "Entry (0=any of type)",
		Value3:      "GUID (0=any)",
	},
	32: {
		Name:        "CONDITION_TYPE_MASK",
		Description: "Target matches type mask",
		Value1:      "TypeMask: 8=Unit, 16=Player, 32=GameObject, 128=Corpse",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	33: {
		Name:        "CONDITION_RELATION_TO",
		Description: "Target has relation to another condition target",
		Value1:      "Other ConditionTarget (0 or 1)",
		Value2:      "Relation: 0=Self, 1=InParty, 2=InRaidOrParty, 3=OwnedBy, 4=PassengerOf, 5=CreatedBy",
		Value3:      "Always 0",
	},
	34: {
		Name:        "CONDITION_REACTION_TO",
		Description: "Target has reaction to another condition target",
		Value1:      "Other ConditionTarget (0 or 1)",
		Value2:      "Reaction mask (same as reputation rank mask)",
		Value3:      "Always 0",
	},
	35: {
		Name:        "CONDITION_DISTANCE_TO",
		Description: "Target is distance from another condition target",
		Value1:      "Other ConditionTarget (0 or 1)",
		Value2:      "Distance in yards",
		Value3:      "Comparison: 0=equal, 1=higher, 2=lower, 3=higher/equal, 4=lower/equal",
	},
	36: {
		Name:        "CONDITION_ALIVE",
		Description: "Target alive state",
		Value1:      "Always 0",
		Value2:      "Always 0",
		Value3:      "Always 0",
		Notes:       "Use NegativeCondition: 0=must be alive, 1=must be dead",
	},
	37: {
		Name:        "CONDITION_HP_VAL",
		Description: "Target HP value",
		Value1:      "HP value",
		Value2:      "Comparison: 0=equal, 1=higher, 2=lower, 3=higher/equal, 4=lower/equal",
		Value3:      "Always 0",
	},
	38: {
		Name:        "CONDITION_HP_PCT",
		Description: "Target HP percentage",
		Value1:      "HP percentage",
		Value2:      "Comparison: 0=equal, 1=higher, 2=lower, 3=higher/equal, 4=lower/equal",
		Value3:      "Always 0",
	},
	39: {
		Name:        "CONDITION_REALM_ACHIEVEMENT",
		Description: "Realm has achievement (any player completed)",
		Value1:      "Achievement ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	40: {
		Name:        "CONDITION_IN_WATER",
		Description: "Target in water",
		Value1:      "Always 0",
		Value2:      "Always 0",
		Value3:      "Always 0",
		Notes:       "Use NegativeCondition: 0=on land, 1=in water",
	},
	42: {
		Name:        "CONDITION_STAND_STATE",
		Description: "Target stand state",
		Value1:      "0=Exact state, 1=Any state type",
		Value2:      "If Value1=0: exact state; If Value1=1: 0=Standing, 1=Sitting",
		Value3:      "Always 0",
	},
	43: {
		Name:        "CONDITION_DAILY_QUEST_DONE",
		Description: "Target has done daily quest today",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	44: {
		Name:        "CONDITION_CHARMED",
		Description: "Target is charmed",
		Value1:      "Always 0",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	45: {
		Name:        "CONDITION_PET_TYPE",
		Description: "Target has pet type",
		Value1:      "Pet type mask",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	46: {
		Name:        "CONDITION_TAXI",
		Description: "Target is on taxi/flight path",
		Value1:      "Always 0",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	47: {
		Name:        "CONDITION_QUESTSTATE",
		Description: "Target quest state matches",
		Value1:      "Quest ID",
		Value2:      "State mask: 1=NotTaken, 2=Completed, 8=InProgress, 32=Failed, 64=Rewarded",
		Value3:      "Always 0",
	},
	48: {
		Name:        "CONDITION_QUEST_OBJECTIVE_PROGRESS",
		Description: "Target has quest objective progress",
		Value1:      "Quest ID",
		Value2:      "Objective ID (RequiredNpcOrGo index)",
		Value3:      "Objective count",
		Notes:       "True when objective count >= ConditionValue3",
	},
	49: {
		Name:        "CONDITION_DIFFICULTY_ID",
		Description: "Current difficulty matches",
		Value1:      "Difficulty ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	101: {
		Name:        "CONDITION_QUEST_SATISFY_EXCLUSIVE",
		Description: "Player satisfies quest exclusive group",
		Value1:      "Quest ID",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	102: {
		Name:        "CONDITION_HAS_AURA_TYPE",
		Description: "Target has aura of type",
		Value1:      "Aura type",
		Value2:      "Always 0",
		Value3:      "Always 0",
	},
	103: {
		Name:        "CONDITION_WORLD_SCRIPT",
		Description: "World script condition check",
		Value1:      "Condition ID",
		Value2:      "State",
		Value3:      "Always 0",
	},
}
