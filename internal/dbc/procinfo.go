package dbc

import "fmt"

// Reference tables for the spell_proc system (the QAston proc rewrite that
// AzerothCore ported from TrinityCore). Table order matters: decoders emit
// matched bits in table order, and listings print tables as-is.

// MaskBit is one named bit, or named combination of bits, in a proc bitmask.
type MaskBit struct {
	Bit         uint32
	Name        string
	Description string
}

// FlagInfo is the wire form of a decoded mask bit.
type FlagInfo struct {
	Value       string `json:"value"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (b MaskBit) info() FlagInfo {
	return FlagInfo{Value: fmt.Sprintf("%#x", b.Bit), Name: b.Name, Description: b.Description}
}

// Infos renders a whole table in wire form.
func Infos(table []MaskBit) []FlagInfo {
	out := make([]FlagInfo, len(table))
	for i, b := range table {
		out[i] = b.info()
	}
	return out
}

// ProcFlagBits names every ProcFlags bit: when a proc is allowed to trigger.
var ProcFlagBits = []MaskBit{
	{0x00000000, "PROC_FLAG_NONE", "No proc"},
	{0x00000001, "PROC_FLAG_KILLED", "Killed by aggressor"},
	{0x00000002, "PROC_FLAG_KILL", "Kill target (requires XP/Honor reward in most cases)"},
	{0x00000004, "PROC_FLAG_DONE_MELEE_AUTO_ATTACK", "Done melee auto attack"},
	{0x00000008, "PROC_FLAG_TAKEN_MELEE_AUTO_ATTACK", "Taken melee auto attack"},
	{0x00000010, "PROC_FLAG_DONE_SPELL_MELEE_DMG_CLASS", "Done attack by spell with melee damage class"},
	{0x00000020, "PROC_FLAG_TAKEN_SPELL_MELEE_DMG_CLASS", "Taken attack by spell with melee damage class"},
	{0x00000040, "PROC_FLAG_DONE_RANGED_AUTO_ATTACK", "Done ranged auto attack"},
	{0x00000080, "PROC_FLAG_TAKEN_RANGED_AUTO_ATTACK", "Taken ranged auto attack"},
	{0x00000100, "PROC_FLAG_DONE_SPELL_RANGED_DMG_CLASS", "Done attack by spell with ranged damage class"},
	{0x00000200, "PROC_FLAG_TAKEN_SPELL_RANGED_DMG_CLASS", "Taken attack by spell with ranged damage class"},
	{0x00000400, "PROC_FLAG_DONE_SPELL_NONE_DMG_CLASS_POS", "Done positive spell with none damage class"},
	{0x00000800, "PROC_FLAG_TAKEN_SPELL_NONE_DMG_CLASS_POS", "Taken positive spell with none damage class"},
	{0x00001000, "PROC_FLAG_DONE_SPELL_NONE_DMG_CLASS_NEG", "Done negative spell with none damage class"},
	{0x00002000, "PROC_FLAG_TAKEN_SPELL_NONE_DMG_CLASS_NEG", "Taken negative spell with none damage class"},
	{0x00004000, "PROC_FLAG_DONE_SPELL_MAGIC_DMG_CLASS_POS", "Done positive spell with magic damage class"},
	{0x00008000, "PROC_FLAG_TAKEN_SPELL_MAGIC_DMG_CLASS_POS", "Taken positive spell with magic damage class"},
	{0x00010000, "PROC_FLAG_DONE_SPELL_MAGIC_DMG_CLASS_NEG", "Done negative spell with magic damage class"},
	{0x00020000, "PROC_FLAG_TAKEN_SPELL_MAGIC_DMG_CLASS_NEG", "Taken negative spell with magic damage class"},
	{0x00040000, "PROC_FLAG_DONE_PERIODIC", "Done periodic damage/healing"},
	{0x00080000, "PROC_FLAG_TAKEN_PERIODIC", "Taken periodic damage/healing"},
	{0x00100000, "PROC_FLAG_TAKEN_DAMAGE", "Taken any damage"},
	{0x00200000, "PROC_FLAG_DONE_TRAP_ACTIVATION", "On trap activation (gameobject cast)"},
	{0x00400000, "PROC_FLAG_DONE_MAINHAND_ATTACK", "Done main-hand melee attack (spell and auto)"},
	{0x00800000, "PROC_FLAG_DONE_OFFHAND_ATTACK", "Done off-hand melee attack (spell and auto)"},
	{0x01000000, "PROC_FLAG_DEATH", "Died in any way"},
}

// ProcFlagMasks names commonly used ProcFlags combinations.
var ProcFlagMasks = []MaskBit{
	{0x000000CC, "AUTO_ATTACK_PROC_FLAG_MASK", "Auto attack done/taken (melee + ranged)"},
	{0x00C0003C, "MELEE_PROC_FLAG_MASK", "Melee attacks (auto + spell + mainhand/offhand)"},
	{0x000003C0, "RANGED_PROC_FLAG_MASK", "Ranged attacks (auto + spell)"},
	{0x002DFFF0, "SPELL_PROC_FLAG_MASK", "Spell-based procs"},
	{0x000C0000, "PERIODIC_PROC_FLAG_MASK", "Periodic damage/healing"},
	{0x00E557D4, "DONE_HIT_PROC_FLAG_MASK", "Done any hit"},
	{0x001AA828, "TAKEN_HIT_PROC_FLAG_MASK", "Taken any hit"},
}

// ProcExBits names the legacy hit-type bits used by the spell_proc_event
// table. The rewrite split these across HitMask and SpellTypeMask.
var ProcExBits = []MaskBit{
	{0x00000000, "PROC_EX_NONE", "Triggers on Hit/Crit only (default)"},
	{0x00000001, "PROC_EX_NORMAL_HIT", "Only from normal hit (non-crit)"},
	{0x00000002, "PROC_EX_CRITICAL_HIT", "Only from critical hit"},
	{0x00000004, "PROC_EX_MISS", "On miss"},
	{0x00000008, "PROC_EX_RESIST", "On resist"},
	{0x00000010, "PROC_EX_DODGE", "On dodge"},
	{0x00000020, "PROC_EX_PARRY", "On parry"},
	{0x00000040, "PROC_EX_BLOCK", "On block"},
	{0x00000080, "PROC_EX_EVADE", "On evade"},
	{0x00000100, "PROC_EX_IMMUNE", "On immune"},
	{0x00000200, "PROC_EX_DEFLECT", "On deflect"},
	{0x00000400, "PROC_EX_ABSORB", "On absorb"},
	{0x00000800, "PROC_EX_REFLECT", "On reflect"},
	{0x00001000, "PROC_EX_INTERRUPT", "On interrupt (melee)"},
	{0x00002000, "PROC_EX_FULL_BLOCK", "On full block (all damage blocked)"},
	{0x00008000, "PROC_EX_NOT_ACTIVE_SPELL", "Spell must NOT do damage/heal"},
	{0x00010000, "PROC_EX_EX_TRIGGER_ALWAYS", "Always trigger regardless of hit result"},
	{0x00020000, "PROC_EX_EX_ONE_TIME_TRIGGER", "Trigger once only"},
	{0x00040000, "PROC_EX_ONLY_ACTIVE_SPELL", "Spell MUST do damage/heal"},
	{0x00080000, "PROC_EX_NO_OVERHEAL", "Proc only if heal did actual work (no overheal)"},
	{0x00100000, "PROC_EX_NO_AURA_REFRESH", "Proc only if aura was not refreshed"},
	{0x00200000, "PROC_EX_ONLY_FIRST_TICK", "Proc only on first tick (periodic spells)"},
}

// ProcSpellTypeBits names the SpellTypeMask bits: what kind of spell may
// trigger the proc.
var ProcSpellTypeBits = []MaskBit{
	{0x00000000, "PROC_SPELL_TYPE_NONE", "No spell type requirement"},
	{0x00000001, "PROC_SPELL_TYPE_DAMAGE", "Damage spell"},
	{0x00000002, "PROC_SPELL_TYPE_HEAL", "Healing spell"},
	{0x00000004, "PROC_SPELL_TYPE_NO_DMG_HEAL", "Other spell (no damage/heal)"},
	{0x00000007, "PROC_SPELL_TYPE_MASK_ALL", "Any spell type"},
}

// ProcSpellPhaseBits names the SpellPhaseMask bits: at which point of spell
// execution the proc fires.
var ProcSpellPhaseBits = []MaskBit{
	{0x00000000, "PROC_SPELL_PHASE_NONE", "No phase requirement"},
	{0x00000001, "PROC_SPELL_PHASE_CAST", "On spell cast start"},
	{0x00000002, "PROC_SPELL_PHASE_HIT", "On spell hit"},
	{0x00000004, "PROC_SPELL_PHASE_FINISH", "On spell finish (after all effects)"},
	{0x00000007, "PROC_SPELL_PHASE_MASK_ALL", "Any phase"},
}

// ProcHitBits names the HitMask bits: which hit result triggers the proc.
var ProcHitBits = []MaskBit{
	{0x00000000, "PROC_HIT_NONE", "Default: NORMAL|CRITICAL for TAKEN, +ABSORB for DONE"},
	{0x00000001, "PROC_HIT_NORMAL", "Non-critical hit"},
	{0x00000002, "PROC_HIT_CRITICAL", "Critical hit"},
	{0x00000004, "PROC_HIT_MISS", "Miss"},
	{0x00000008, "PROC_HIT_FULL_RESIST", "Full resist"},
	{0x00000010, "PROC_HIT_DODGE", "Dodge"},
	{0x00000020, "PROC_HIT_PARRY", "Parry"},
	{0x00000040, "PROC_HIT_BLOCK", "Block (partial or full)"},
	{0x00000080, "PROC_HIT_EVADE", "Evade"},
	{0x00000100, "PROC_HIT_IMMUNE", "Immune"},
	{0x00000200, "PROC_HIT_DEFLECT", "Deflect"},
	{0x00000400, "PROC_HIT_ABSORB", "Absorb (partial or full)"},
	{0x00000800, "PROC_HIT_REFLECT", "Reflect"},
	{0x00001000, "PROC_HIT_INTERRUPT", "Interrupt"},
	{0x00002000, "PROC_HIT_FULL_BLOCK", "Full block (all damage)"},
	{0x00002FFF, "PROC_HIT_MASK_ALL", "Any hit result"},
}

// ProcAttributeBits names the AttributesMask bits: extra proc conditions.
var ProcAttributeBits = []MaskBit{
	{0x00000001, "PROC_ATTR_REQ_EXP_OR_HONOR", "Target must give XP or honor"},
	{0x00000002, "PROC_ATTR_TRIGGERED_CAN_PROC", "Can proc from triggered spells"},
	{0x00000004, "PROC_ATTR_REQ_MANA_COST", "Triggering spell must have mana cost"},
	{0x00000008, "PROC_ATTR_REQ_SPELLMOD", "Triggering spell must be affected by this aura's spellmod"},
	{0x00000010, "PROC_ATTR_USE_STACKS_FOR_CHARGES", "Consume stack instead of charge on proc"},
	{0x00000080, "PROC_ATTR_REDUCE_PROC_60", "Reduced proc chance if actor level > 60"},
	{0x00000100, "PROC_ATTR_CANT_PROC_FROM_ITEM_CAST", "Cannot proc from item-casted spells"},
}

// SchoolMaskBits names the spell school bits plus the two aggregate masks.
var SchoolMaskBits = []MaskBit{
	{0x00, "SPELL_SCHOOL_MASK_NONE", "None"},
	{0x01, "SPELL_SCHOOL_MASK_NORMAL", "Physical"},
	{0x02, "SPELL_SCHOOL_MASK_HOLY", "Holy"},
	{0x04, "SPELL_SCHOOL_MASK_FIRE", "Fire"},
	{0x08, "SPELL_SCHOOL_MASK_NATURE", "Nature"},
	{0x10, "SPELL_SCHOOL_MASK_FROST", "Frost"},
	{0x20, "SPELL_SCHOOL_MASK_SHADOW", "Shadow"},
	{0x40, "SPELL_SCHOOL_MASK_ARCANE", "Arcane"},
	{0x7E, "SPELL_SCHOOL_MASK_MAGIC", "All magic schools"},
	{0x7F, "SPELL_SCHOOL_MASK_ALL", "All schools"},
}

// Family is one SpellFamilyName value.
type Family struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// SpellFamilies lists the SpellFamilyName values 3.3.5a actually uses.
var SpellFamilies = []Family{
	{0, "SPELLFAMILY_GENERIC", "Generic spells"},
	{1, "SPELLFAMILY_UNK1", "Events, holidays"},
	{3, "SPELLFAMILY_MAGE", "Mage spells"},
	{4, "SPELLFAMILY_WARRIOR", "Warrior spells"},
	{5, "SPELLFAMILY_WARLOCK", "Warlock spells"},
	{6, "SPELLFAMILY_PRIEST", "Priest spells"},
	{7, "SPELLFAMILY_DRUID", "Druid spells"},
	{8, "SPELLFAMILY_ROGUE", "Rogue spells"},
	{9, "SPELLFAMILY_HUNTER", "Hunter spells"},
	{10, "SPELLFAMILY_PALADIN", "Paladin spells"},
	{11, "SPELLFAMILY_SHAMAN", "Shaman spells"},
	{12, "SPELLFAMILY_UNK2", "Silence resistance spells"},
	{13, "SPELLFAMILY_POTION", "Potion spells"},
	{15, "SPELLFAMILY_DEATHKNIGHT", "Death Knight spells"},
	{17, "SPELLFAMILY_PET", "Pet spells"},
}

// ColumnDoc documents one column of the spell_proc table.
type ColumnDoc struct {
	Column      string `json:"column"`
	Description string `json:"description"`
}

// SpellProcColumns documents the spell_proc table in column order.
var SpellProcColumns = []ColumnDoc{
	{"SpellId", "The spell ID that has this proc configuration (PRIMARY KEY)"},
	{"SchoolMask", "Bitmask for matching by spell school (0 = no restriction)"},
	{"SpellFamilyName", "Spell family ID for filtering (0 = no restriction)"},
	{"SpellFamilyMask0", "First 32 bits of SpellFamilyFlags mask"},
	{"SpellFamilyMask1", "Second 32 bits of SpellFamilyFlags mask"},
	{"SpellFamilyMask2", "Third 32 bits of SpellFamilyFlags mask"},
	{"ProcFlags", "Bitmask defining when proc triggers (see ProcFlags)"},
	{"SpellTypeMask", "Type of spell: damage/heal/other (see SpellTypeMask)"},
	{"SpellPhaseMask", "Phase: cast/hit/finish (see SpellPhaseMask)"},
	{"HitMask", "Hit result requirement (see HitMask)"},
	{"AttributesMask", "Special attributes (see AttributesMask)"},
	{"DisableEffectsMask", "Bitmask of effects to disable (1=eff0, 2=eff1, 4=eff2)"},
	{"ProcsPerMinute", "PPM-based chance (weapon speed adjusted), 0 = use Chance"},
	{"Chance", "Fixed percentage chance (0-100), ignored if ProcsPerMinute > 0"},
	{"Cooldown", "Cooldown in milliseconds between procs"},
	{"Charges", "Number of times proc can occur (0 = infinite)"},
}

// DecodeProcFlags lists the individual ProcFlags bits set in v.
func DecodeProcFlags(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcFlagBits {
		if b.Bit != 0 && v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeProcEx lists the legacy procEx bits set in v.
func DecodeProcEx(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcExBits {
		if b.Bit != 0 && v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeProcHit lists the HitMask bits set in v. The aggregate MASK_ALL
// entry never appears in the output.
func DecodeProcHit(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcHitBits {
		if b.Bit == 0 || b.Bit == 0x00002FFF {
			continue
		}
		if v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeProcSpellType lists the SpellTypeMask bits set in v.
func DecodeProcSpellType(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcSpellTypeBits {
		if b.Bit == 0 || b.Bit == 0x00000007 {
			continue
		}
		if v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeProcSpellPhase lists the SpellPhaseMask bits set in v.
func DecodeProcSpellPhase(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcSpellPhaseBits {
		if b.Bit == 0 || b.Bit == 0x00000007 {
			continue
		}
		if v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeProcAttributes lists the AttributesMask bits set in v.
func DecodeProcAttributes(v uint32) []FlagInfo {
	var out []FlagInfo
	for _, b := range ProcAttributeBits {
		if v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// DecodeSchoolMask lists the schools set in v. A zero mask decodes to a
// single "no restriction" entry rather than an empty list; the aggregate
// MAGIC and ALL masks never appear in the output.
func DecodeSchoolMask(v uint32) []FlagInfo {
	if v == 0 {
		return []FlagInfo{{Value: "0x00", Name: "None", Description: "No school restriction"}}
	}
	var out []FlagInfo
	for _, b := range SchoolMaskBits {
		if b.Bit == 0 || b.Bit >= 0x7E {
			continue
		}
		if v&b.Bit != 0 {
			out = append(out, b.info())
		}
	}
	return out
}

// SpellFamilyName resolves a SpellFamilyName id, with a stable fallback for
// ids outside the known set.
func SpellFamilyName(id int32) string {
	for _, f := range SpellFamilies {
		if f.ID == id {
			return f.Name
		}
	}
	return fmt.Sprintf("UNKNOWN_FAMILY_%d", id)
}
