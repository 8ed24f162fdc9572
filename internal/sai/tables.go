package sai

// Comment templates and display-name tables for SmartAI script rows,
// following the Keira3 comment vocabulary for 3.3.5 smart_scripts.
// Type-level reference documentation lives in docs.go.

// EventComments holds the per-event comment templates. Placeholders are
// compiled into typed slots at package init.
var EventComments = map[int64]string{
	0:   "In Combat",
	1:   "Out of Combat",
	2:   "Between _eventParamOne_-_eventParamTwo_% Health",
	3:   "Between _eventParamOne_-_eventParamTwo_% Mana",
	4:   "On Aggro",
	5:   "On Killed Unit",
	6:   "On Just Died",
	7:   "On Evade",
	8:   "On Spellhit '_spellNameEventParamOne_'",
	9:   "Within _eventParamFive_-_eventParamSix_ Range",
	10:  "Within _eventParamOne_-_eventParamTwo_ Range Out of Combat LoS",
	11:  "On Respawn",
	12:  "Target Between _eventParamOne_-_eventParamTwo_% Health",
	13:  "On Victim Casting '_targetCastingSpellName_'",
	14:  "Friendly At _eventParamOne_ Health",
	15:  "On Friendly Crowd Controlled",
	16:  "On Friendly Unit Missing Buff '_spellNameEventParamOne_'",
	17:  "On Summoned Unit",
	18:  "Target Between _eventParamOne_-_eventParamTwo_% Mana",
	19:  "On Quest '_questNameEventParamOne_' Taken",
	20:  "On Quest '_questNameEventParamOne_' Finished",
	21:  "On Reached Home",
	22:  "Received Emote _eventParamOne_",
	23:  "On Aura '_hasAuraEventParamOne_'",
	24:  "On Target Buffed With '_spellNameEventParamOne_'",
	25:  "On Reset",
	26:  "In Combat LoS",
	27:  "On Passenger Boarded",
	28:  "On Passenger Removed",
	29:  "On Charmed",
	30:  "On Target Charmed",
	31:  "On Target Spellhit '_spellNameEventParamOne_'",
	32:  "On Damaged Between _eventParamOne_-_eventParamTwo_",
	33:  "On Target Damaged Between _eventParamOne_-_eventParamTwo_",
	34:  "On Reached Point _eventParamTwo_",
	35:  "On Summon Despawned",
	36:  "On Corpse Removed",
	37:  "On Initialize",
	38:  "On Data Set _eventParamOne_ _eventParamTwo_",
	39:  "On Path _waypointParamTwo_ Started",
	40:  "On Point _waypointParamOne_ of Path _waypointParamTwo_ Reached",
	46:  "On Trigger",
	52:  "On Text _eventParamOne_ Over",
	53:  "On Received Heal Between _eventParamOne_-_eventParamTwo_",
	54:  "On Just Summoned",
	55:  "On Path _eventParamTwo_ Paused",
	56:  "On Path _eventParamTwo_ Resumed",
	57:  "On Path _eventParamTwo_ Stopped",
	58:  "On Path _eventParamTwo_ Finished",
	59:  "On Timed Event _eventParamOne_ Triggered",
	60:  "On Update",
	61:  "_previousLineComment_",
	62:  "On Gossip Option _eventParamTwo_ Selected",
	63:  "On Just Created",
	64:  "On Gossip Hello",
	65:  "On Follow Complete",
	66:  "On Event Phase _eventParamOne_ Set",
	67:  "On Behind Target",
	68:  "On Game Event _eventParamOne_ Started",
	69:  "On Game Event _eventParamOne_ Ended",
	70:  "On Gameobject State Changed",
	71:  "On Event _eventParamOne_ Inform",
	72:  "On Action _eventParamOne_ Done",
	73:  "On Spellclick",
	74:  "On Friendly Below _eventParamFive_% Health",
	75:  "On Distance _eventParamThree_y To Creature",
	76:  "On Distance _eventParamThree_y To GameObject",
	77:  "On Counter _eventParamOne_ Set To _eventParamTwo_",
	82:  "On Summoned Unit Dies",
	101: "On _eventParamOne_ or More Players in Range",
	102: "On Less Than _eventParamOne_ Players in Range",
	103: "On _eventParamThree_ or More Units in Range",
	104: "On Less Than _eventParamThree_ Units in Range",
	105: "On Hostile Casting in Range",
	106: "On Hostile in Range",
	107: "On Summoned Unit Evade",
	108: "On Point _waypointParamOne_ of Path _waypointParamTwo_ Reached",
	109: "On Path _eventParamTwo_ Finished",
	110: "On Melee Range Target",
}

// ActionComments holds the per-action comment templates.
var ActionComments = map[int64]string{
	0:   "No Action Type",
	1:   "Say Line _actionParamOne_",
	2:   "Set Faction _actionParamOne_",
	3:   "_morphToEntryOrModelActionParams_",
	4:   "Play Sound _actionParamOne_",
	5:   "Play Emote _actionParamOne_",
	6:   "Fail Quest '_questNameActionParamOne_'",
	7:   "Add Quest '_questNameActionParamOne_'",
	8:   "Set Reactstate _reactStateParamOne_",
	9:   "Activate Gameobject",
	10:  "Play Random Emote (_actionRandomParameters_)",
	11:  "Cast '_spellNameActionParamOne_'",
	12:  "Summon Creature '_creatureNameActionParamOne_'",
	13:  "Set Single Threat _actionParamOne_-_actionParamTwo_",
	14:  "Set All Threat _actionParamOne_-_actionParamTwo_",
	15:  "Quest Credit '_questNameActionParamOne_'",
	17:  "Set Emote State _actionParamOne_",
	18:  "Set Flag_getUnitFlags_",
	19:  "Remove Flag_getUnitFlags_",
	20:  "_startOrStopActionParamOne_ Attacking",
	21:  "_enableDisableActionParamOne_ Combat Movement",
	22:  "Set Event Phase _actionParamOne_",
	23:  "_incrementOrDecrementActionParamOne_ Phase",
	24:  "Evade",
	25:  "Flee For Assist",
	26:  "Quest Credit '_questNameActionParamOne_'",
	27:  "Stop Combat",
	28:  "Remove Aura '_spellNameActionParamOne_'",
	29:  "_startOrStopBasedOnTargetType_ Follow _getTargetType_",
	30:  "Set Random Phase (_actionRandomParameters_)",
	31:  "Set Phase Random Between _actionParamOne_-_actionParamTwo_",
	32:  "Reset Gameobject",
	33:  "Quest Credit '_questNameKillCredit_'",
	34:  "Set Instance Data _actionParamOne_ to _actionParamTwo_",
	35:  "Set Instance Data _actionParamOne_",
	36:  "Update Template To '_creatureNameActionParamOne_'",
	37:  "Kill Self",
	38:  "Set In Combat With Zone",
	39:  "Call For Help",
	40:  "Set Sheath _sheathActionParamOne_",
	41:  "Despawn _forceDespawnActionParamOne_",
	42:  "_invincibilityHpActionParamsOneTwo_",
	43:  "_mountToEntryOrModelActionParams_",
	44:  "Set PhaseMask _actionParamOne_",
	45:  "Set Data _actionParamOne_ _actionParamTwo_",
	46:  "Move Forward _actionParamOne_ Yards",
	47:  "Set Visibility _onOffActionParamOne_",
	48:  "Set Active _onOffActionParamOne_",
	49:  "Start Attacking",
	50:  "Summon Gameobject _gameobjectNameActionParamOne_",
	51:  "Kill Target",
	52:  "Activate Taxi Path _actionParamOne_",
	53:  "Start _waypointStartActionParamThree_Path _actionParamTwo_",
	54:  "Pause Waypoint",
	55:  "Stop Waypoint",
	56:  "Add Item _addItemBasedOnActionParams_",
	57:  "Remove Item _addItemBasedOnActionParams_",
	58:  "Install _updateAiTemplateActionParamOne_ Template",
	59:  "Set Run _onOffActionParamOne_",
	60:  "Set Fly _onOffActionParamOne_",
	61:  "Set Swim _onOffActionParamOne_",
	62:  "Teleport",
	63:  "Add _actionParamTwo_ to Counter Id _actionParamOne_",
	64:  "Store Targetlist",
	65:  "Resume Waypoint",
	66:  "Set Orientation _setOrientationTargetType_",
	67:  "Create Timed Event",
	68:  "Play Movie _actionParamOne_",
	69:  "Move To _getTargetType_",
	70:  "Respawn _getTargetType_",
	71:  "Change Equipment",
	72:  "Close Gossip",
	73:  "Trigger Timed Event _actionParamOne_",
	74:  "Remove Timed Event _actionParamOne_",
	75:  "Add Aura '_spellNameActionParamOne_'",
	76:  "Override Base Object Script",
	77:  "Reset Base Object Script",
	78:  "Reset All Scripts",
	79:  "Set Ranged Movement",
	80:  "Run Script",
	81:  "Set Npc Flag_getNpcFlags_",
	82:  "Add Npc Flag_getNpcFlags_",
	83:  "Remove Npc Flag_getNpcFlags_",
	84:  "Say Line _actionParamOne_",
	85:  "Self Cast '_spellNameActionParamOne_'",
	86:  "Cross Cast '_spellNameActionParamOne_'",
	87:  "Run Random Script",
	88:  "Run Random Script",
	89:  "Start Random Movement",
	90:  "Set Flag_getBytes1Flags_",
	91:  "Remove Flag_getBytes1Flags_",
	92:  "Interrupt Spell '_spellNameActionParamTwo_'",
	93:  "Send Custom Animation _actionParamOne_",
	94:  "Set Dynamic Flag_getDynamicFlags_",
	95:  "Add Dynamic Flag_getDynamicFlags_",
	96:  "Remove Dynamic Flag_getDynamicFlags_",
	97:  "Jump To Pos",
	98:  "Send Gossip",
	99:  "Set Lootstate _goStateActionParamOne_",
	100: "Send Target _actionParamOne_",
	101: "Set Home Position",
	102: "Set Health Regeneration _onOffActionParamOne_",
	103: "Set Rooted _onOffActionParamOne_",
	104: "Set Gameobject Flag_getGoFlags_",
	105: "Add Gameobject Flag_getGoFlags_",
	106: "Remove Gameobject Flag_getGoFlags_",
	107: "Summon Creature Group _actionParamOne_",
	108: "Set _powerTypeActionParamOne_ To _actionParamTwo_",
	109: "Add _actionParamTwo_ _powerTypeActionParamOne_",
	110: "Remove _actionParamTwo_ _powerTypeActionParamOne_",
	111: "Stop game event _actionParamTwo_",
	112: "Start game event _actionParamTwo_",
	113: "Start closest Waypoint _actionParamOne_ - _actionParamTwo_",
	114: "Move Up",
	115: "Play Random Sound",
	116: "Set Corpse Delay to _actionParamOne_s",
	117: "_enableDisableInvertActionParamOne_ Evade",
	118: "Set GO State To _actionParamOne_",
	121: "Set Sight Distance to _actionParamOne_y",
	122: "Flee",
	123: "Modify Threat",
	124: "Load Equipment Id _actionParamOne_",
	125: "Trigger Random Timed Event Between _actionParamOne_-_actionParamTwo_",
	126: "Remove All Gameobjects",
	134: "Invoker Cast '_spellNameActionParamOne_'",
	135: "Play Cinematic",
	136: "Set _movementTypeActionParamOne_ Speed to _actionParamTwo_._actionParamThree_",
	142: "Set HP to _actionParamOne_%",
	201: "Move to pos target _actionParamOne_",
	203: "Exit vehicle",
	204: "Set unit movement flags to _actionParamOne_",
	205: "Set combat distance to _actionParamOne_",
	206: "Dismount",
	207: "Set hover _actionParamOne_",
	208: "Add immunity Type: _actionParamOne_, Id: _actionParamTwo_, Value: _actionParamThree_",
	209: "Remove immunity Type: _actionParamOne_, Id: _actionParamTwo_, Value: _actionParamThree_",
	210: "Fall",
	211: "Flag reset _actionParamOne_",
	212: "Stop motion (StopMoving: _actionParamOne_, MovementExpired: _actionParamTwo_)",
	213: "No environment update",
	214: "Zone under attack",
	215: "Load Grid",
	216: "Play music SoundId: _actionParamOne_, OnlySelf: _actionParamTwo_, Type: _actionParamThree_",
	217: "Play random music OnlySelf: _actionParamFive_, Type: _actionParamSix_",
	218: "Custom Cast _spellNameActionParamOne_",
	219: "Do Cone Summon",
	220: "Player Talk String _actionParamOne_",
	221: "Do Vortex Summon",
	222: "Reset Cooldowns",
	223: "Do Action ID _actionParamOne_",
	224: "Stop Attack",
	225: "Send Guid",
	226: "Scripted Spawn _onOffActionParamOne_ Creature",
	227: "Set Scale to _actionParamOne_%",
	228: "Do Radial Summon",
	229: "Play Visual Kit Id _actionParamOne_",
	230: "Follow Type _followGroupParamTwo_",
	231: "Set Target Orientation",
	232: "Start Path _actionParamOne_",
	233: "Start Random Path _actionParamOne_-_actionParamTwo_",
	234: "Stop Movement",
	235: "Pause Movement",
	236: "Resume Movement",
	237: "Run World State Script: Event: _actionParamOne_, Param: _actionParamTwo_",
	238: "Disable reward: Disable Reputation _onOffActionParamOne_, Disable Loot _onOffActionParamTwo_",
}

// Display names for simple target types. Creature and gameobject targets
// resolve through the Lookup instead.
var targetStrings = map[int64]string{
	1: "Self", 2: "Victim", 3: "Second On Threatlist",
	4: "Last On Threatlist", 5: "Random On Threatlist", 6: "Random On Threatlist Not Top",
	7: "Invoker", 8: "Position", 12: "Stored",
	16: "Invoker's Party", 17: "Players in Range", 18: "Players in Distance",
	21: "Closest Player", 22: "Invoker's Vehicle", 23: "Owner Or Summoner",
	24: "Threatlist", 25: "Closest Enemy", 26: "Closest Friendly Unit",
	27: "Loot Recipients", 28: "Farthest Target", 29: "Vehicle Seat",
	201: "Player With Aura", 202: "Random Point", 203: "Class Roles",
	204: "Summoned Creatures", 205: "Instance Storage",
}

// Unit flag bits in comment order.
var unitFlagNames = []flagName{
	{0x00000001, "Server Controlled"},
	{0x00000002, "Not Attackable"},
	{0x00000004, "Disable Movement"},
	{0x00000008, "PvP Attackable"},
	{0x00000010, "Rename"},
	{0x00000020, "Preparation"},
	{0x00000080, "Not Attackable"},
	{0x00000100, "Immune To Players"},
	{0x00000200, "Immune To NPC's"},
	{0x00000400, "Looting"},
	{0x00000800, "Pet In Combat"},
	{0x00001000, "PvP"},
	{0x00002000, "Silenced"},
	{0x00020000, "Pacified"},
	{0x00040000, "Stunned"},
	{0x00080000, "In Combat"},
	{0x00200000, "Disarmed"},
	{0x00400000, "Confused"},
	{0x00800000, "Fleeing"},
	{0x01000000, "Player Controlled"},
	{0x02000000, "Not Selectable"},
	{0x04000000, "Skinnable"},
	{0x08000000, "Mounted"},
	{0x40000000, "Sheathed"},
}

// NPC flag bits in comment order.
var npcFlagNames = []flagName{
	{0x00000001, "Gossip"},
	{0x00000002, "Questgiver"},
	{0x00000010, "Trainer"},
	{0x00000020, "Class Trainer"},
	{0x00000040, "Profession Trainer"},
	{0x00000080, "Vendor"},
	{0x00000100, "Ammo Vendor"},
	{0x00000200, "Food Vendor"},
	{0x00000400, "Poison Vendor"},
	{0x00000800, "Reagent Vendor"},
	{0x00001000, "Repair Vendor"},
	{0x00002000, "Flightmaster"},
	{0x00004000, "Spirithealer"},
	{0x00008000, "Spiritguide"},
	{0x00010000, "Innkeeper"},
	{0x00020000, "Banker"},
	{0x00040000, "Petitioner"},
	{0x00080000, "Tabard Designer"},
	{0x00100000, "Battlemaster"},
	{0x00200000, "Auctioneer"},
	{0x00400000, "Stablemaster"},
	{0x00800000, "Guild Banker"},
	{0x01000000, "Spellclick"},
	{0x02000000, "Player Vehicle"},
}

// Gameobject flag bits in comment order.
var goFlagNames = []flagName{
	{0x00000001, "In Use"},
	{0x00000002, "Locked"},
	{0x00000004, "Interact Condition"},
	{0x00000008, "Transport"},
	{0x00000010, "Not Selectable"},
	{0x00000020, "No Despawn"},
	{0x00000040, "Triggered"},
	{0x00000080, "Freeze Animation"},
	{0x00000200, "Damaged"},
	{0x00000400, "Destroyed"},
}

// Dynamic flag bits in comment order.
var dynamicFlagNames = []flagName{
	{0x00000001, "Lootable"},
	{0x00000002, "Track Units"},
	{0x00000004, "Tapped"},
	{0x00000008, "Tapped By Player"},
	{0x00000010, "Special Info"},
	{0x00000020, "Dead"},
	{0x00000040, "Refer A Friend"},
	{0x00000080, "Tapped By All Threat List"},
}

// Unit bytes1 flag bits in comment order.
var bytes1FlagNames = []flagName{
	{0x00000001, "Always Stand"},
	{0x00000002, "Hover"},
	{0x00000004, "Untrackable"},
}

var reactStates = map[int64]string{
	0: "Passive", 1: "Defensive", 2: "Aggressive",
}

var sheathStates = map[int64]string{
	0: "Unarmed", 1: "Melee", 2: "Ranged",
}

var powerTypes = map[int64]string{
	0: "Mana", 1: "Rage", 2: "Focus",
	3: "Energy", 4: "Happiness", 5: "Rune",
	6: "Runic Power",
}

var movementTypes = map[int64]string{
	0: "Walk", 1: "Run", 2: "Run Back",
	3: "Swim", 4: "Swim Back", 5: "Turn Rate",
	6: "Flight", 7: "Flight Back", 8: "Pitch Rate",
}

var goStates = map[int64]string{
	0: "Not Ready", 1: "Ready", 2: "Activated",
	3: "Deactivated",
}

var aiTemplates = map[int64]string{
	0: "Basic", 1: "Caster", 2: "Turret",
	3: "Passive", 4: "Caged Gameobject Part", 5: "Caged Creature Part",
}

var followTypes = map[int64]string{
	1: "Circle", 2: "Semi-Circle Behind", 3: "Semi-Circle Front",
	4: "Line", 5: "Column", 6: "Angular",
}
