package sai

// Reference documentation for the SmartAI type enums on the 3.3.5
// AzerothCore branch, including the AC-only extensions above id 200 (events
// above 100). Names follow SmartScriptMgr.h; parameter strings describe the
// event_param/action_param/target_param columns in order.

// EventDocs documents every SmartAI event type.
var EventDocs = []TypeDoc{
	{0, "SMART_EVENT_UPDATE_IC", "In combat pulse", "InitialMin, InitialMax, RepeatMin, RepeatMax"},
	{1, "SMART_EVENT_UPDATE_OOC", "Out of combat pulse", "InitialMin, InitialMax, RepeatMin, RepeatMax"},
	{2, "SMART_EVENT_HEALTH_PCT", "Health percentage reached", "HPMin%, HPMax%, RepeatMin, RepeatMax"},
	{3, "SMART_EVENT_MANA_PCT", "Mana percentage reached", "ManaMin%, ManaMax%, RepeatMin, RepeatMax"},
	{4, "SMART_EVENT_AGGRO", "On entering combat", "NONE"},
	{5, "SMART_EVENT_KILL", "On killing a unit", "CooldownMin, CooldownMax, PlayerOnly (0/1), CreatureEntry (0=any)"},
	{6, "SMART_EVENT_DEATH", "On creature death", "NONE"},
	{7, "SMART_EVENT_EVADE", "On evade/reset", "NONE"},
	{8, "SMART_EVENT_SPELLHIT", "When hit by spell", "SpellID (0=any), School (0=any), CooldownMin, CooldownMax"},
	{9, "SMART_EVENT_RANGE", "Target in range check", "MinDist, MaxDist, RepeatMin, RepeatMax, RangeMin, RangeMax"},
	{10, "SMART_EVENT_OOC_LOS", "Out of combat, target in LOS", "HostilityMode (0=hostile,1=not hostile,2=any), MaxRange, CooldownMin, CooldownMax, PlayerOnly"},
	{11, "SMART_EVENT_RESPAWN", "On respawn", "Type (0=any), MapId, ZoneId"},
	{12, "SMART_EVENT_TARGET_HEALTH_PCT", "Target health percentage", "HPMin%, HPMax%, RepeatMin, RepeatMax"},
	{13, "SMART_EVENT_VICTIM_CASTING", "Victim is casting", "RepeatMin, RepeatMax, SpellID (0=any)"},
	{14, "SMART_EVENT_FRIENDLY_HEALTH", "Friendly unit low health", "HPDeficit, Radius, RepeatMin, RepeatMax"},
	{15, "SMART_EVENT_FRIENDLY_IS_CC", "Friendly unit is CC'd", "Radius, RepeatMin, RepeatMax"},
	{16, "SMART_EVENT_FRIENDLY_MISSING_BUFF", "Friendly missing buff", "SpellID, Radius, RepeatMin, RepeatMax, OnlyInCombat"},
	{17, "SMART_EVENT_SUMMONED_UNIT", "Summoned a unit", "CreatureEntry (0=any), CooldownMin, CooldownMax"},
	{18, "SMART_EVENT_TARGET_MANA_PCT", "Target mana percentage", "ManaMin%, ManaMax%, RepeatMin, RepeatMax"},
	{19, "SMART_EVENT_ACCEPTED_QUEST", "Quest accepted by player", "QuestID (0=any), CooldownMin, CooldownMax"},
	{20, "SMART_EVENT_REWARD_QUEST", "Quest rewarded to player", "QuestID (0=any), CooldownMin, CooldownMax"},
	{21, "SMART_EVENT_REACHED_HOME", "Reached home position", "NONE"},
	{22, "SMART_EVENT_RECEIVE_EMOTE", "Received emote from player", "EmoteID, CooldownMin, CooldownMax, Condition, Val1, Val2, Val3"},
	{23, "SMART_EVENT_HAS_AURA", "Unit has aura", "SpellID, StackCount, RepeatMin, RepeatMax"},
	{24, "SMART_EVENT_TARGET_BUFFED", "Target has aura", "SpellID, StackCount, RepeatMin, RepeatMax"},
	{25, "SMART_EVENT_RESET", "After combat/respawn/spawn", "NONE"},
	{26, "SMART_EVENT_IC_LOS", "In combat, target in LOS", "HostilityMode (0=hostile,1=not hostile,2=any), MaxRange, CooldownMin, CooldownMax, PlayerOnly"},
	{27, "SMART_EVENT_PASSENGER_BOARDED", "Vehicle passenger boarded", "CooldownMin, CooldownMax"},
	{28, "SMART_EVENT_PASSENGER_REMOVED", "Vehicle passenger removed", "CooldownMin, CooldownMax"},
	{29, "SMART_EVENT_CHARMED", "Unit charmed/mind controlled", "OnRemove (0=on apply, 1=on remove)"},
	{30, "SMART_EVENT_CHARMED_TARGET", "Charmed target event", "NONE"},
	{31, "SMART_EVENT_SPELLHIT_TARGET", "Target hit by spell", "SpellID, School, CooldownMin, CooldownMax"},
	{32, "SMART_EVENT_DAMAGED", "Creature took damage", "MinDmg, MaxDmg, CooldownMin, CooldownMax"},
	{33, "SMART_EVENT_DAMAGED_TARGET", "Target took damage", "MinDmg, MaxDmg, CooldownMin, CooldownMax"},
	{34, "SMART_EVENT_MOVEMENTINFORM", "Movement generator finished", "MovementType (0=any), PointID, PathID (0=any)"},
	{35, "SMART_EVENT_SUMMON_DESPAWNED", "Summoned unit despawned", "Entry, CooldownMin, CooldownMax"},
	{36, "SMART_EVENT_CORPSE_REMOVED", "Corpse removed", "NONE"},
	{37, "SMART_EVENT_AI_INIT", "AI initialized", "NONE"},
	{38, "SMART_EVENT_DATA_SET", "SetData called on creature", "DataID, Value, CooldownMin, CooldownMax"},
	{39, "SMART_EVENT_WAYPOINT_START", "Waypoint path started (DEPRECATED: use 108)", "PointID (0=any), PathID (0=any)"},
	{40, "SMART_EVENT_WAYPOINT_REACHED", "Waypoint reached (DEPRECATED: use 108)", "PointID (0=any), PathID (0=any)"},
	{41, "SMART_EVENT_TRANSPORT_ADDPLAYER", "Player added to transport", "NONE"},
	{42, "SMART_EVENT_TRANSPORT_ADDCREATURE", "Creature added to transport", "Entry (0=any)"},
	{43, "SMART_EVENT_TRANSPORT_REMOVE_PLAYER", "Player removed from transport", "NONE"},
	{44, "SMART_EVENT_TRANSPORT_RELOCATE", "Transport relocated", "PointID"},
	{45, "SMART_EVENT_INSTANCE_PLAYER_ENTER", "Player entered instance", "Team (0=any), CooldownMin, CooldownMax"},
	{46, "SMART_EVENT_AREATRIGGER_ONTRIGGER", "Areatrigger triggered", "TriggerID (0=any)"},
	{47, "SMART_EVENT_QUEST_ACCEPTED", "Quest accepted (DEPRECATED)", "NONE"},
	{48, "SMART_EVENT_QUEST_OBJ_COMPLETION", "Quest objective completed", "NONE"},
	{49, "SMART_EVENT_QUEST_COMPLETION", "Quest completed (DEPRECATED)", "NONE"},
	{50, "SMART_EVENT_QUEST_REWARDED", "Quest rewarded (DEPRECATED)", "NONE"},
	{51, "SMART_EVENT_QUEST_FAIL", "Quest failed", "NONE"},
	{52, "SMART_EVENT_TEXT_OVER", "Creature text finished", "GroupID (creature_text), CreatureEntry (0=any)"},
	{53, "SMART_EVENT_RECEIVE_HEAL", "Received healing", "MinHeal, MaxHeal, CooldownMin, CooldownMax"},
	{54, "SMART_EVENT_JUST_SUMMONED", "Just summoned by another unit", "NONE"},
	{55, "SMART_EVENT_WAYPOINT_PAUSED", "Waypoint paused (DEPRECATED)", "PointID (0=any), PathID (0=any)"},
	{56, "SMART_EVENT_WAYPOINT_RESUMED", "Waypoint resumed (DEPRECATED)", "PointID (0=any), PathID (0=any)"},
	{57, "SMART_EVENT_WAYPOINT_STOPPED", "Waypoint stopped (DEPRECATED)", "PointID (0=any), PathID (0=any)"},
	{58, "SMART_EVENT_WAYPOINT_ENDED", "Waypoint path ended (DEPRECATED)", "PointID (0=any), PathID (0=any)"},
	{59, "SMART_EVENT_TIMED_EVENT_TRIGGERED", "Timed event triggered", "EventID"},
	{60, "SMART_EVENT_UPDATE", "Pulse (in or out of combat)", "InitialMin, InitialMax, RepeatMin, RepeatMax"},
	{61, "SMART_EVENT_LINK", "Linked from another script", "INTERNAL - no params, triggered via 'link' column"},
	{62, "SMART_EVENT_GOSSIP_SELECT", "Gossip option selected", "MenuID, ActionID"},
	{63, "SMART_EVENT_JUST_CREATED", "Just created/spawned", "NONE"},
	{64, "SMART_EVENT_GOSSIP_HELLO", "NPC gossip opened", "Filter (0=none, 1=GossipHello only, 2=reportUse only)"},
	{65, "SMART_EVENT_FOLLOW_COMPLETED", "Follow action completed", "NONE"},
	{66, "SMART_EVENT_EVENT_PHASE_CHANGE", "Event phase changed", "PhaseMask"},
	{67, "SMART_EVENT_IS_BEHIND_TARGET", "Behind target check", "Min, Max, RepeatMin, RepeatMax, RangeMin, RangeMax"},
	{68, "SMART_EVENT_GAME_EVENT_START", "Game event started", "GameEventID"},
	{69, "SMART_EVENT_GAME_EVENT_END", "Game event ended", "GameEventID"},
	{70, "SMART_EVENT_GO_STATE_CHANGED", "GO state changed", "GOState"},
	{71, "SMART_EVENT_GO_EVENT_INFORM", "GO event inform", "EventID"},
	{72, "SMART_EVENT_ACTION_DONE", "Action completed", "EventID (SharedDefines.EventId)"},
	{73, "SMART_EVENT_ON_SPELLCLICK", "Spellclick used", "NONE"},
	{74, "SMART_EVENT_FRIENDLY_HEALTH_PCT", "Friendly unit health %", "Min%, Max%, RepeatMin, RepeatMax, HPPct, Range"},
	{75, "SMART_EVENT_DISTANCE_CREATURE", "Distance to creature", "GUID, Entry, Distance, Repeat"},
	{76, "SMART_EVENT_DISTANCE_GAMEOBJECT", "Distance to gameobject", "GUID, Entry, Distance, Repeat"},
	{77, "SMART_EVENT_COUNTER_SET", "Counter set to value", "CounterID, Value, CooldownMin, CooldownMax"},
	{78, "SMART_EVENT_SCENE_START", "Scene started (N/A 3.3.5a)", "UNUSED"},
	{79, "SMART_EVENT_SCENE_TRIGGER", "Scene trigger (N/A 3.3.5a)", "UNUSED"},
	{80, "SMART_EVENT_SCENE_CANCEL", "Scene cancelled (N/A 3.3.5a)", "UNUSED"},
	{81, "SMART_EVENT_SCENE_COMPLETE", "Scene completed (N/A 3.3.5a)", "UNUSED"},
	{82, "SMART_EVENT_SUMMONED_UNIT_DIES", "Summoned creature died", "CreatureEntry (0=any), CooldownMin, CooldownMax"},
	{101, "SMART_EVENT_NEAR_PLAYERS", "Near minimum players (AC)", "MinPlayers, Radius, FirstTimer, RepeatMin, RepeatMax"},
	{102, "SMART_EVENT_NEAR_PLAYERS_NEGATION", "Below max players nearby (AC)", "MaxPlayers, Radius, FirstTimer, RepeatMin, RepeatMax"},
	{103, "SMART_EVENT_NEAR_UNIT", "Near unit count (AC)", "Type (0=creature,1=gob), Entry, Count, Range, Timer"},
	{104, "SMART_EVENT_NEAR_UNIT_NEGATION", "Below unit count (AC)", "Type (0=creature,1=gob), Entry, Count, Range, Timer"},
	{105, "SMART_EVENT_AREA_CASTING", "Casting in area (AC)", "Min, Max, RepeatMin, RepeatMax, RangeMin, RangeMax"},
	{106, "SMART_EVENT_AREA_RANGE", "Targets in area range (AC)", "Min, Max, RepeatMin, RepeatMax, RangeMin, RangeMax"},
	{107, "SMART_EVENT_SUMMONED_UNIT_EVADE", "Summoned unit evaded (AC)", "CreatureEntry (0=any), CooldownMin, CooldownMax"},
	{108, "SMART_EVENT_WAYPOINT_REACHED", "Waypoint reached (AC new)", "PointID (0=any), PathID (0=any)"},
	{109, "SMART_EVENT_WAYPOINT_ENDED", "Waypoint path ended (AC new)", "PointID (0=any), PathID (0=any)"},
	{110, "SMART_EVENT_IS_IN_MELEE_RANGE", "In melee range check (AC)", "Min, Max, RepeatMin, RepeatMax, Distance, Invert (0/1)"},
}

// ActionDocs documents every SmartAI action type.
var ActionDocs = []TypeDoc{
	{0, "SMART_ACTION_NONE", "No action", "NONE"},
	{1, "SMART_ACTION_TALK", "Say/yell/emote from creature_text", "GroupID, Duration (for TEXT_OVER), UseTalkTarget (0/1), Delay"},
	{2, "SMART_ACTION_SET_FACTION", "Change faction", "FactionID (0=restore default)"},
	{3, "SMART_ACTION_MORPH_TO_ENTRY_OR_MODEL", "Change model", "CreatureEntry OR ModelID (0 for both = demorph)"},
	{4, "SMART_ACTION_SOUND", "Play sound", "SoundID, OnlySelf, Distance"},
	{5, "SMART_ACTION_PLAY_EMOTE", "Play emote animation", "EmoteID"},
	{6, "SMART_ACTION_FAIL_QUEST", "Fail quest for player", "QuestID"},
	{7, "SMART_ACTION_OFFER_QUEST", "Offer quest to player", "QuestID, DirectAdd"},
	{8, "SMART_ACTION_SET_REACT_STATE", "Set react state", "State (0=passive, 1=defensive, 2=aggressive)"},
	{9, "SMART_ACTION_ACTIVATE_GOBJECT", "Activate gameobject", "NONE"},
	{10, "SMART_ACTION_RANDOM_EMOTE", "Play random emote", "EmoteID1, EmoteID2, EmoteID3, EmoteID4, EmoteID5, EmoteID6"},
	{11, "SMART_ACTION_CAST", "Cast spell on target", "SpellID, CastFlags, TriggerFlags, TargetsLimit"},
	{12, "SMART_ACTION_SUMMON_CREATURE", "Summon creature", "CreatureEntry, SummonType, Duration(ms), AttackInvoker, AttackScriptOwner, Flags"},
	{13, "SMART_ACTION_THREAT_SINGLE_PCT", "Modify single target threat %", "ThreatPct"},
	{14, "SMART_ACTION_THREAT_ALL_PCT", "Modify all targets threat %", "ThreatPct"},
	{15, "SMART_ACTION_CALL_AREAEXPLOREDOREVENTHAPPENS", "Complete quest area/event", "QuestID"},
	{16, "SMART_ACTION_RESERVED_16", "Reserved (4.3.4+)", "UNUSED"},
	{17, "SMART_ACTION_SET_EMOTE_STATE", "Set emote state", "EmoteID"},
	{18, "SMART_ACTION_SET_UNIT_FLAG", "Set unit flags", "Flags, Type"},
	{19, "SMART_ACTION_REMOVE_UNIT_FLAG", "Remove unit flags", "Flags, Type"},
	{20, "SMART_ACTION_AUTO_ATTACK", "Enable/disable auto attack", "AllowAttack (0=stop, 1=allow)"},
	{21, "SMART_ACTION_ALLOW_COMBAT_MOVEMENT", "Allow combat movement", "AllowMovement (0=stop, 1=allow)"},
	{22, "SMART_ACTION_SET_EVENT_PHASE", "Set event phase", "Phase"},
	{23, "SMART_ACTION_INC_EVENT_PHASE", "Increment/decrement phase", "Value (negative to decrement)"},
	{24, "SMART_ACTION_EVADE", "Force evade", "NONE"},
	{25, "SMART_ACTION_FLEE_FOR_ASSIST", "Flee and call for help", "WithEmote (0/1)"},
	{26, "SMART_ACTION_CALL_GROUPEVENTHAPPENS", "Group quest event", "QuestID"},
	{27, "SMART_ACTION_COMBAT_STOP", "Stop combat", "NONE"},
	{28, "SMART_ACTION_REMOVEAURASFROMSPELL", "Remove auras from spell", "SpellID (0=all), Charges (0=remove aura)"},
	{29, "SMART_ACTION_FOLLOW", "Follow target", "Distance (0=default), Angle (0=default), EndCreatureEntry, Credit, CreditType (0=kill,1=event)"},
	{30, "SMART_ACTION_RANDOM_PHASE", "Set random phase", "Phase1, Phase2, Phase3, Phase4, Phase5, Phase6"},
	{31, "SMART_ACTION_RANDOM_PHASE_RANGE", "Set phase in range", "PhaseMin, PhaseMax"},
	{32, "SMART_ACTION_RESET_GOBJECT", "Reset gameobject", "NONE"},
	{33, "SMART_ACTION_CALL_KILLEDMONSTER", "Credit kill for quest", "CreatureEntry"},
	{34, "SMART_ACTION_SET_INST_DATA", "Set instance data", "Field, Data"},
	{35, "SMART_ACTION_SET_INST_DATA64", "Set instance data 64-bit", "Field"},
	{36, "SMART_ACTION_UPDATE_TEMPLATE", "Update creature template", "Entry, UpdateLevel"},
	{37, "SMART_ACTION_DIE", "Kill self", "Milliseconds (delay)"},
	{38, "SMART_ACTION_SET_IN_COMBAT_WITH_ZONE", "Zone-wide combat", "Range (if outside dungeon)"},
	{39, "SMART_ACTION_CALL_FOR_HELP", "Call for help", "Radius, WithEmote"},
	{40, "SMART_ACTION_SET_SHEATH", "Set sheath state", "Sheath (0=unarmed, 1=melee, 2=ranged)"},
	{41, "SMART_ACTION_FORCE_DESPAWN", "Despawn creature", "DelayMS"},
	{42, "SMART_ACTION_SET_INVINCIBILITY_HP_LEVEL", "Set invincibility HP", "MinHP (+pct, -flat)"},
	{43, "SMART_ACTION_MOUNT_TO_ENTRY_OR_MODEL", "Mount/dismount", "CreatureEntry OR ModelID (0=dismount)"},
	{44, "SMART_ACTION_SET_INGAME_PHASE_MASK", "Set phase mask", "PhaseMask"},
	{45, "SMART_ACTION_SET_DATA", "Set data on target", "Field, Data"},
	{46, "SMART_ACTION_MOVE_FORWARD", "Move forward", "Distance"},
	{47, "SMART_ACTION_SET_VISIBILITY", "Set visibility", "Visible (0/1)"},
	{48, "SMART_ACTION_SET_ACTIVE", "Set active (keep updated)", "Active (0/1)"},
	{49, "SMART_ACTION_ATTACK_START", "Start attacking target", "NONE"},
	{50, "SMART_ACTION_SUMMON_GO", "Summon gameobject", "GOEntry, DespawnTime, TargetSummon, SummonType (0=time/death, 1=time)"},
	{51, "SMART_ACTION_KILL_UNIT", "Kill target unit", "NONE"},
	{52, "SMART_ACTION_ACTIVATE_TAXI", "Activate taxi path", "TaxiID"},
	{53, "SMART_ACTION_WP_START", "Start waypoint path (DEPRECATED)", "Run/Walk, PathID, CanRepeat, Quest, DespawnTime, ReactState"},
	{54, "SMART_ACTION_WP_PAUSE", "Pause waypoint (DEPRECATED)", "Time"},
	{55, "SMART_ACTION_WP_STOP", "Stop waypoint (DEPRECATED)", "DespawnTime, Quest, Fail?"},
	{56, "SMART_ACTION_ADD_ITEM", "Add item to player", "ItemID, Count"},
	{57, "SMART_ACTION_REMOVE_ITEM", "Remove item from player", "ItemID, Count"},
	{58, "SMART_ACTION_INSTALL_AI_TEMPLATE", "Install AI template", "AITemplateID"},
	{59, "SMART_ACTION_SET_RUN", "Set run/walk", "Run (0/1)"},
	{60, "SMART_ACTION_SET_FLY", "Set fly mode", "Fly (0/1)"},
	{61, "SMART_ACTION_SET_SWIM", "Set swim mode", "Swim (0/1)"},
	{62, "SMART_ACTION_TELEPORT", "Teleport target", "MapID, x, y, z, o (from target coords)"},
	{63, "SMART_ACTION_SET_COUNTER", "Set counter value", "CounterID, Value, Reset (0/1)"},
	{64, "SMART_ACTION_STORE_TARGET_LIST", "Store current targets", "VarID"},
	{65, "SMART_ACTION_WP_RESUME", "Resume waypoint (DEPRECATED)", "NONE"},
	{66, "SMART_ACTION_SET_ORIENTATION", "Set facing/orientation", "QuickChange, RandomOrientation? (0/1), TurnAngle"},
	{67, "SMART_ACTION_CREATE_TIMED_EVENT", "Create timed event", "EventID, InitialMin, InitialMax, RepeatMin, RepeatMax, Chance"},
	{68, "SMART_ACTION_PLAYMOVIE", "Play movie", "MovieEntry"},
	{69, "SMART_ACTION_MOVE_TO_POS", "Move to position", "PointID, Transport, Controlled, ContactDistance (x,y,z from target)"},
	{70, "SMART_ACTION_RESPAWN_TARGET", "Respawn target GO/creature", "Force, GORespawnTime"},
	{71, "SMART_ACTION_EQUIP", "Equip items", "EquipmentID, SlotMask, Slot1, Slot2, Slot3"},
	{72, "SMART_ACTION_CLOSE_GOSSIP", "Close gossip window", "NONE"},
	{73, "SMART_ACTION_TRIGGER_TIMED_EVENT", "Trigger timed event", "EventID (>1)"},
	{74, "SMART_ACTION_REMOVE_TIMED_EVENT", "Remove timed event", "EventID (>1)"},
	{75, "SMART_ACTION_ADD_AURA", "Add aura to target", "SpellID"},
	{76, "SMART_ACTION_OVERRIDE_SCRIPT_BASE_OBJECT", "Override script base (DANGEROUS)", "WARNING: Can crash core"},
	{77, "SMART_ACTION_RESET_SCRIPT_BASE_OBJECT", "Reset script base object", "NONE"},
	{78, "SMART_ACTION_CALL_SCRIPT_RESET", "Reset all scripts", "NONE"},
	{79, "SMART_ACTION_SET_RANGED_MOVEMENT", "Set ranged movement", "Distance, Angle"},
	{80, "SMART_ACTION_CALL_TIMED_ACTIONLIST", "Call timed action list", "ActionListID, StopOnCombat (0/1), TimerType (0=OOC, 1=IC, 2=always)"},
	{81, "SMART_ACTION_SET_NPC_FLAG", "Set NPC flags", "Flags"},
	{82, "SMART_ACTION_ADD_NPC_FLAG", "Add NPC flags", "Flags"},
	{83, "SMART_ACTION_REMOVE_NPC_FLAG", "Remove NPC flags", "Flags"},
	{84, "SMART_ACTION_SIMPLE_TALK", "Simple talk (targets speak)", "GroupID (no TEXT_OVER, no whisper)"},
	{85, "SMART_ACTION_SELF_CAST", "Self-cast spell", "SpellID, CastFlags, TriggerFlags, TargetsLimit"},
	{86, "SMART_ACTION_CROSS_CAST", "Casters cast on targets", "SpellID, CastFlags, CasterTargetType, CasterParam1-3"},
	{87, "SMART_ACTION_CALL_RANDOM_TIMED_ACTIONLIST", "Call random action list", "ActionList1-6"},
	{88, "SMART_ACTION_CALL_RANDOM_RANGE_TIMED_ACTIONLIST", "Call random range action list", "ActionListMin, ActionListMax"},
	{89, "SMART_ACTION_RANDOM_MOVE", "Random movement", "MaxDistance"},
	{90, "SMART_ACTION_SET_UNIT_FIELD_BYTES_1", "Set unit field bytes", "Bytes, Target"},
	{91, "SMART_ACTION_REMOVE_UNIT_FIELD_BYTES_1", "Remove unit field bytes", "Bytes, Target"},
	{92, "SMART_ACTION_INTERRUPT_SPELL", "Interrupt spell cast", "WithDelayed, SpellType, WithInstant"},
	{93, "SMART_ACTION_SEND_GO_CUSTOM_ANIM", "GO custom animation", "AnimID"},
	{94, "SMART_ACTION_SET_DYNAMIC_FLAG", "Set dynamic flags", "Flags"},
	{95, "SMART_ACTION_ADD_DYNAMIC_FLAG", "Add dynamic flags", "Flags"},
	{96, "SMART_ACTION_REMOVE_DYNAMIC_FLAG", "Remove dynamic flags", "Flags"},
	{97, "SMART_ACTION_JUMP_TO_POS", "Jump to position", "SpeedXY, SpeedZ, SelfJump"},
	{98, "SMART_ACTION_SEND_GOSSIP_MENU", "Send gossip menu", "MenuID, OptionID"},
	{99, "SMART_ACTION_GO_SET_LOOT_STATE", "Set GO loot state", "State"},
	{100, "SMART_ACTION_SEND_TARGET_TO_TARGET", "Send stored targets", "VarID"},
	{101, "SMART_ACTION_SET_HOME_POS", "Set home position", "SpawnPos (use current pos)"},
	{102, "SMART_ACTION_SET_HEALTH_REGEN", "Enable/disable health regen", "Enabled (0/1)"},
	{103, "SMART_ACTION_SET_ROOT", "Root/unroot", "Rooted (0/1)"},
	{104, "SMART_ACTION_SET_GO_FLAG", "Set GO flags", "Flags"},
	{105, "SMART_ACTION_ADD_GO_FLAG", "Add GO flags", "Flags"},
	{106, "SMART_ACTION_REMOVE_GO_FLAG", "Remove GO flags", "Flags"},
	{107, "SMART_ACTION_SUMMON_CREATURE_GROUP", "Summon creature group", "GroupID, AttackInvoker, AttackScriptOwner"},
	{108, "SMART_ACTION_SET_POWER", "Set power value", "PowerType, NewPower"},
	{109, "SMART_ACTION_ADD_POWER", "Add power", "PowerType, Amount"},
	{110, "SMART_ACTION_REMOVE_POWER", "Remove power", "PowerType, Amount"},
	{111, "SMART_ACTION_GAME_EVENT_STOP", "Stop game event", "GameEventID"},
	{112, "SMART_ACTION_GAME_EVENT_START", "Start game event", "GameEventID"},
	{113, "SMART_ACTION_START_CLOSEST_WAYPOINT", "Start closest waypoint", "WP1-7"},
	{114, "SMART_ACTION_RISE_UP", "Rise up (fly)", "Distance"},
	{115, "SMART_ACTION_RANDOM_SOUND", "Play random sound", "SoundID1-4, OnlySelf, Distance"},
	{116, "SMART_ACTION_SET_CORPSE_DELAY", "Set corpse despawn delay", "Timer"},
	{117, "SMART_ACTION_DISABLE_EVADE", "Disable evade", "Disabled (0=enabled, 1=disabled)"},
	{118, "SMART_ACTION_GO_SET_GO_STATE", "Set GO state", "State"},
	{119, "SMART_ACTION_SET_CAN_FLY", "Set can fly (NOT SUPPORTED)", "CanFly (0/1)"},
	{120, "SMART_ACTION_REMOVE_AURAS_BY_TYPE", "Remove auras by type (NOT SUPPORTED)", "AuraType"},
	{121, "SMART_ACTION_SET_SIGHT_DIST", "Set sight distance", "SightDistance"},
	{122, "SMART_ACTION_FLEE", "Flee from combat", "FleeTime"},
	{123, "SMART_ACTION_ADD_THREAT", "Add/remove threat", "+Threat, -Threat"},
	{124, "SMART_ACTION_LOAD_EQUIPMENT", "Load equipment template", "EquipmentID"},
	{125, "SMART_ACTION_TRIGGER_RANDOM_TIMED_EVENT", "Trigger random timed event", "IDMin, IDMax"},
	{126, "SMART_ACTION_REMOVE_ALL_GAMEOBJECTS", "Remove all summoned GOs", "NONE"},
	{127, "SMART_ACTION_REMOVE_MOVEMENT", "Remove movement (NOT SUPPORTED)", "NONE"},
	{128, "SMART_ACTION_PLAY_ANIMKIT", "Play animkit (N/A 3.3.5a)", "AnimKitID"},
	{134, "SMART_ACTION_INVOKER_CAST", "Invoker casts spell", "SpellID, CastFlags, TriggerFlags, TargetsLimit"},
	{135, "SMART_ACTION_PLAY_CINEMATIC", "Play cinematic", "CinematicEntry"},
	{136, "SMART_ACTION_SET_MOVEMENT_SPEED", "Set movement speed", "MovementType, SpeedInteger, SpeedFraction"},
	{142, "SMART_ACTION_SET_HEALTH_PCT", "Set health percentage", "HPPercent"},
	{201, "SMART_ACTION_MOVE_TO_POS_TARGET", "Move to target position (AC)", "PointID"},
	{203, "SMART_ACTION_EXIT_VEHICLE", "Exit vehicle (AC)", "NONE"},
	{204, "SMART_ACTION_SET_UNIT_MOVEMENT_FLAGS", "Set movement flags (AC)", "Flags"},
	{205, "SMART_ACTION_SET_COMBAT_DISTANCE", "Set combat distance (AC)", "Distance"},
	{206, "SMART_ACTION_DISMOUNT", "Dismount (AC)", "NONE"},
	{207, "SMART_ACTION_SET_HOVER", "Set hover (AC)", "Hover (0/1)"},
	{208, "SMART_ACTION_ADD_IMMUNITY", "Add immunity (AC)", "Type, ID, Value"},
	{209, "SMART_ACTION_REMOVE_IMMUNITY", "Remove immunity (AC)", "Type, ID, Value"},
	{210, "SMART_ACTION_FALL", "Fall (AC)", "NONE"},
	{211, "SMART_ACTION_SET_EVENT_FLAG_RESET", "Set event flag reset (AC)", "Reset (0/1)"},
	{212, "SMART_ACTION_STOP_MOTION", "Stop motion (AC)", "StopMoving, MovementExpired"},
	{213, "SMART_ACTION_NO_ENVIRONMENT_UPDATE", "No environment update (AC)", "NONE"},
	{214, "SMART_ACTION_ZONE_UNDER_ATTACK", "Zone under attack (AC)", "NONE"},
	{215, "SMART_ACTION_LOAD_GRID", "Load grid (AC)", "NONE"},
	{216, "SMART_ACTION_MUSIC", "Play music (AC)", "SoundID, OnlySelf, Type"},
	{217, "SMART_ACTION_RANDOM_MUSIC", "Play random music (AC)", "SoundID1-4, OnlySelf, Type"},
	{218, "SMART_ACTION_CUSTOM_CAST", "Custom cast (AC)", "SpellID, CastFlags, BP0, BP1, BP2"},
	{219, "SMART_ACTION_CONE_SUMMON", "Cone summon (AC)", "Entry, Duration, DistBetweenRings, DistBetweenSummons, ConeLength, ConeWidth"},
	{220, "SMART_ACTION_PLAYER_TALK", "Player talk (AC)", "acore_string.Entry, Yell (0/1)"},
	{221, "SMART_ACTION_VORTEX_SUMMON", "Vortex summon (AC)", "Entry, Duration, SpiralScaling, SpiralAppearance, RangeMax, PhiDelta"},
	{222, "SMART_ACTION_CU_ENCOUNTER_START", "Encounter start (AC)", "Resets cooldowns, removes Heroism debuffs"},
	{223, "SMART_ACTION_DO_ACTION", "Do action (AC)", "ActionID"},
	{224, "SMART_ACTION_ATTACK_STOP", "Attack stop (AC)", "NONE"},
	{225, "SMART_ACTION_SET_GUID", "Set GUID (AC)", "Sends invoker/base object GUID to target"},
	{226, "SMART_ACTION_SCRIPTED_SPAWN", "Scripted spawn (AC)", "State, SpawnTimerMin, SpawnTimerMax, RespawnDelay, CorpseDelay, DontDespawn"},
	{227, "SMART_ACTION_SET_SCALE", "Set scale (AC)", "Scale"},
	{228, "SMART_ACTION_SUMMON_RADIAL", "Summon radial (AC)", "Entry, Duration, Repetitions, StartAngle, StepAngle, Distance"},
	{229, "SMART_ACTION_PLAY_SPELL_VISUAL", "Play spell visual (AC)", "VisualID, VisualIDImpact"},
	{230, "SMART_ACTION_FOLLOW_GROUP", "Follow group (AC)", "FollowState, FollowType, Distance"},
	{231, "SMART_ACTION_SET_ORIENTATION_TARGET", "Set orientation to target (AC)", "Type, TargetType, TargetParam1-4"},
	{232, "SMART_ACTION_WAYPOINT_START", "Start waypoint (AC new)", "PathID, Repeat, PathSource"},
	{233, "SMART_ACTION_WAYPOINT_DATA_RANDOM", "Random waypoint data (AC)", "PathID1, PathID2, Repeat"},
	{234, "SMART_ACTION_MOVEMENT_STOP", "Movement stop (AC)", "NONE"},
	{235, "SMART_ACTION_MOVEMENT_PAUSE", "Movement pause (AC)", "Timer"},
	{236, "SMART_ACTION_MOVEMENT_RESUME", "Movement resume (AC)", "TimerOverride"},
}

// TargetDocs documents every SmartAI target type.
var TargetDocs = []TypeDoc{
	{0, "SMART_TARGET_NONE", "No target (self)", "NONE"},
	{1, "SMART_TARGET_SELF", "Self", "NONE"},
	{2, "SMART_TARGET_VICTIM", "Current victim (highest aggro)", "NONE"},
	{3, "SMART_TARGET_HOSTILE_SECOND_AGGRO", "Second highest aggro", "MaxDist, PlayerOnly, PowerType+1, MissingAura"},
	{4, "SMART_TARGET_HOSTILE_LAST_AGGRO", "Lowest aggro", "MaxDist, PlayerOnly, PowerType+1, MissingAura"},
	{5, "SMART_TARGET_HOSTILE_RANDOM", "Random hostile on threat list", "MaxDist, PlayerOnly, PowerType+1, MissingAura"},
	{6, "SMART_TARGET_HOSTILE_RANDOM_NOT_TOP", "Random hostile (not top)", "MaxDist, PlayerOnly, PowerType+1, MissingAura"},
	{7, "SMART_TARGET_ACTION_INVOKER", "Unit who caused this event", "NONE"},
	{8, "SMART_TARGET_POSITION", "Position from event params", "Uses x, y, z, o from target coordinates"},
	{9, "SMART_TARGET_CREATURE_RANGE", "Creature in range", "CreatureEntry (0=any), MinDist, MaxDist, Alive (0=both, 1=alive, 2=dead)"},
	{10, "SMART_TARGET_CREATURE_GUID", "Creature by GUID", "GUID, Entry"},
	{11, "SMART_TARGET_CREATURE_DISTANCE", "Creature by distance", "CreatureEntry (0=any), MaxDist, Alive (0=both, 1=alive, 2=dead)"},
	{12, "SMART_TARGET_STORED", "Previously stored targets", "VarID"},
	{13, "SMART_TARGET_GAMEOBJECT_RANGE", "GO in range", "Entry (0=any), MinDist, MaxDist"},
	{14, "SMART_TARGET_GAMEOBJECT_GUID", "GO by GUID", "GUID, Entry"},
	{15, "SMART_TARGET_GAMEOBJECT_DISTANCE", "GO by distance", "Entry (0=any), MaxDist"},
	{16, "SMART_TARGET_INVOKER_PARTY", "Invoker's party members", "IncludePets (0/1)"},
	{17, "SMART_TARGET_PLAYER_RANGE", "Players in range", "MinDist, MaxDist, MaxCount, target.o=1 for all in range"},
	{18, "SMART_TARGET_PLAYER_DISTANCE", "Players by distance", "MaxDist"},
	{19, "SMART_TARGET_CLOSEST_CREATURE", "Closest creature", "CreatureEntry (0=any), MaxDist, Dead? (0/1)"},
	{20, "SMART_TARGET_CLOSEST_GAMEOBJECT", "Closest gameobject", "Entry (0=any), MaxDist"},
	{21, "SMART_TARGET_CLOSEST_PLAYER", "Closest player", "MaxDist"},
	{22, "SMART_TARGET_ACTION_INVOKER_VEHICLE", "Invoker's vehicle", "NONE"},
	{23, "SMART_TARGET_OWNER_OR_SUMMONER", "Owner or summoner", "NONE"},
	{24, "SMART_TARGET_THREAT_LIST", "All on threat list", "MaxDist, PlayerOnly"},
	{25, "SMART_TARGET_CLOSEST_ENEMY", "Closest enemy", "MaxDist, PlayerOnly"},
	{26, "SMART_TARGET_CLOSEST_FRIENDLY", "Closest friendly", "MaxDist, PlayerOnly"},
	{27, "SMART_TARGET_LOOT_RECIPIENTS", "All players who tagged creature", "NONE"},
	{28, "SMART_TARGET_FARTHEST", "Farthest target", "MaxDist, PlayerOnly, IsInLOS, MinDist"},
	{29, "SMART_TARGET_VEHICLE_PASSENGER", "Vehicle passenger", "SeatNumber"},
	{201, "SMART_TARGET_PLAYER_WITH_AURA", "Player with/without aura (AC)", "SpellID, Negation, MaxDist, MinDist, target.o=resize list"},
	{202, "SMART_TARGET_RANDOM_POINT", "Random point (AC)", "Range, Amount, SelfAsMiddle (0/1) else use xyz"},
	{203, "SMART_TARGET_ROLE_SELECTION", "By role (AC)", "RangeMax, TargetMask (1=Tank, 2=Healer, 4=Damage), ResizeList"},
	{204, "SMART_TARGET_SUMMONED_CREATURES", "Summoned creatures (AC)", "Entry"},
	{205, "SMART_TARGET_INSTANCE_STORAGE", "Instance storage (AC)", "DataIndex, Type (1=creature, 2=gameobject)"},
}

var (
	eventDocsByID  map[int64]*TypeDoc
	actionDocsByID map[int64]*TypeDoc
	targetDocsByID map[int64]*TypeDoc
)

func init() {
	eventDocsByID = indexDocs(EventDocs)
	actionDocsByID = indexDocs(ActionDocs)
	targetDocsByID = indexDocs(TargetDocs)
}

func indexDocs(docs []TypeDoc) map[int64]*TypeDoc {
	m := make(map[int64]*TypeDoc, len(docs))
	for i := range docs {
		m[docs[i].ID] = &docs[i]
	}
	return m
}

// EventDoc returns the documentation for one event type, nil when unknown.
func EventDoc(id int64) *TypeDoc { return eventDocsByID[id] }

// ActionDoc returns the documentation for one action type, nil when unknown.
func ActionDoc(id int64) *TypeDoc { return actionDocsByID[id] }

// TargetDoc returns the documentation for one target type, nil when unknown.
func TargetDoc(id int64) *TypeDoc { return targetDocsByID[id] }
