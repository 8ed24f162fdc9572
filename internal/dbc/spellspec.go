package dbc

// SpellFields is the 3.3.5a (build 12340) Spell.dbc record layout: 234
// fields, 936 bytes per record. Unnamed positions are padding or columns
// nothing here consumes; they stay in the spec so every later field lands
// on the right offset.
var SpellFields = FieldSpec{
	{Kind: Uint32, Name: "Id"},
	{Kind: Int32, Name: "Category"},
	{Kind: Int32, Name: "Dispel"},
	{Kind: Int32, Name: "Mechanic"},
	{Kind: Int32, Name: "Attributes"},
	{Kind: Int32, Name: "AttributesEx"},
	{Kind: Int32, Name: "AttributesEx2"},
	{Kind: Int32, Name: "AttributesEx3"},
	{Kind: Int32, Name: "AttributesEx4"},
	{Kind: Int32, Name: "AttributesEx5"},
	{Kind: Int32, Name: "AttributesEx6"},
	{Kind: Int32, Name: "AttributesEx7"},
	{Kind: Int32, Name: "Stances"},
	{Kind: Skip},
	{Kind: Int32, Name: "StancesNot"},
	{Kind: Skip},
	{Kind: Int32, Name: "Targets"},
	{Kind: Int32, Name: "TargetCreatureType"},
	{Kind: Int32, Name: "RequiresSpellFocus"},
	{Kind: Int32, Name: "FacingCasterFlags"},
	{Kind: Int32, Name: "CasterAuraState"},
	{Kind: Int32, Name: "TargetAuraState"},
	{Kind: Int32, Name: "CasterAuraStateNot"},
	{Kind: Int32, Name: "TargetAuraStateNot"},
	{Kind: Int32, Name: "CasterAuraSpell"},
	{Kind: Int32, Name: "TargetAuraSpell"},
	{Kind: Int32, Name: "ExcludeCasterAuraSpell"},
	{Kind: Int32, Name: "ExcludeTargetAuraSpell"},
	{Kind: Int32, Name: "CastingTimeIndex"},
	{Kind: Int32, Name: "RecoveryTime"},
	{Kind: Int32, Name: "CategoryRecoveryTime"},
	{Kind: Int32, Name: "InterruptFlags"},
	{Kind: Int32, Name: "AuraInterruptFlags"},
	{Kind: Int32, Name: "ChannelInterruptFlags"},
	{Kind: Int32, Name: "ProcFlags"},
	{Kind: Int32, Name: "ProcChance"},
	{Kind: Int32, Name: "ProcCharges"},
	{Kind: Int32, Name: "MaxLevel"},
	{Kind: Int32, Name: "BaseLevel"},
	{Kind: Int32, Name: "SpellLevel"},
	{Kind: Int32, Name: "DurationIndex"},
	{Kind: Int32, Name: "PowerType"},
	{Kind: Int32, Name: "ManaCost"},
	{Kind: Int32, Name: "ManaCostPerlevel"},
	{Kind: Int32, Name: "ManaPerSecond"},
	{Kind: Int32, Name: "ManaPerSecondPerLevel"},
	{Kind: Int32, Name: "RangeIndex"},
	{Kind: Float32, Name: "Speed"},
	{Kind: Skip},
	{Kind: Int32, Name: "StackAmount"},
	{Kind: Int32, Name: "Totem0"},
	{Kind: Int32, Name: "Totem1"},
	{Kind: Int32, Name: "Reagent0"},
	{Kind: Int32, Name: "Reagent1"},
	{Kind: Int32, Name: "Reagent2"},
	{Kind: Int32, Name: "Reagent3"},
	{Kind: Int32, Name: "Reagent4"},
	{Kind: Int32, Name: "Reagent5"},
	{Kind: Int32, Name: "Reagent6"},
	{Kind: Int32, Name: "Reagent7"},
	{Kind: Int32, Name: "ReagentCount0"},
	{Kind: Int32, Name: "ReagentCount1"},
	{Kind: Int32, Name: "ReagentCount2"},
	{Kind: Int32, Name: "ReagentCount3"},
	{Kind: Int32, Name: "ReagentCount4"},
	{Kind: Int32, Name: "ReagentCount5"},
	{Kind: Int32, Name: "ReagentCount6"},
	{Kind: Int32, Name: "ReagentCount7"},
	{Kind: Int32, Name: "EquippedItemClass"},
	{Kind: Int32, Name: "EquippedItemSubClassMask"},
	{Kind: Int32, Name: "EquippedItemInventoryTypeMask"},
	{Kind: Int32, Name: "Effect0"},
	{Kind: Int32, Name: "Effect1"},
	{Kind: Int32, Name: "Effect2"},
	{Kind: Int32, Name: "EffectDieSides0"},
	{Kind: Int32, Name: "EffectDieSides1"},
	{Kind: Int32, Name: "EffectDieSides2"},
	{Kind: Float32, Name: "EffectRealPointsPerLevel0"},
	{Kind: Float32, Name: "EffectRealPointsPerLevel1"},
	{Kind: Float32, Name: "EffectRealPointsPerLevel2"},
	{Kind: Int32, Name: "EffectBasePoints0"},
	{Kind: Int32, Name: "EffectBasePoints1"},
	{Kind: Int32, Name: "EffectBasePoints2"},
	{Kind: Int32, Name: "EffectMechanic0"},
	{Kind: Int32, Name: "EffectMechanic1"},
	{Kind: Int32, Name: "EffectMechanic2"},
	{Kind: Int32, Name: "EffectImplicitTargetA0"},
	{Kind: Int32, Name: "EffectImplicitTargetA1"},
	{Kind: Int32, Name: "EffectImplicitTargetA2"},
	{Kind: Int32, Name: "EffectImplicitTargetB0"},
	{Kind: Int32, Name: "EffectImplicitTargetB1"},
	{Kind: Int32, Name: "EffectImplicitTargetB2"},
	{Kind: Int32, Name: "EffectRadiusIndex0"},
	{Kind: Int32, Name: "EffectRadiusIndex1"},
	{Kind: Int32, Name: "EffectRadiusIndex2"},
	{Kind: Int32, Name: "EffectApplyAuraName0"},
	{Kind: Int32, Name: "EffectApplyAuraName1"},
	{Kind: Int32, Name: "EffectApplyAuraName2"},
	{Kind: Int32, Name: "EffectAmplitude0"},
	{Kind: Int32, Name: "EffectAmplitude1"},
	{Kind: Int32, Name: "EffectAmplitude2"},
	{Kind: Float32, Name: "EffectValueMultiplier0"},
	{Kind: Float32, Name: "EffectValueMultiplier1"},
	{Kind: Float32, Name: "EffectValueMultiplier2"},
	{Kind: Int32, Name: "EffectChainTarget0"},
	{Kind: Int32, Name: "EffectChainTarget1"},
	{Kind: Int32, Name: "EffectChainTarget2"},
	{Kind: Int32, Name: "EffectItemType0"},
	{Kind: Int32, Name: "EffectItemType1"},
	{Kind: Int32, Name: "EffectItemType2"},
	{Kind: Int32, Name: "EffectMiscValue0"},
	{Kind: Int32, Name: "EffectMiscValue1"},
	{Kind: Int32, Name: "EffectMiscValue2"},
	{Kind: Int32, Name: "EffectMiscValueB0"},
	{Kind: Int32, Name: "EffectMiscValueB1"},
	{Kind: Int32, Name: "EffectMiscValueB2"},
	{Kind: Int32, Name: "EffectTriggerSpell0"},
	{Kind: Int32, Name: "EffectTriggerSpell1"},
	{Kind: Int32, Name: "EffectTriggerSpell2"},
	{Kind: Float32, Name: "EffectPointsPerComboPoint0"},
	{Kind: Float32, Name: "EffectPointsPerComboPoint1"},
	{Kind: Float32, Name: "EffectPointsPerComboPoint2"},
	{Kind: Int32, Name: "EffectSpellClassMask0_0"},
	{Kind: Int32, Name: "EffectSpellClassMask0_1"},
	{Kind: Int32, Name: "EffectSpellClassMask0_2"},
	{Kind: Int32, Name: "EffectSpellClassMask1_0"},
	{Kind: Int32, Name: "EffectSpellClassMask1_1"},
	{Kind: Int32, Name: "EffectSpellClassMask1_2"},
	{Kind: Int32, Name: "EffectSpellClassMask2_0"},
	{Kind: Int32, Name: "EffectSpellClassMask2_1"},
	{Kind: Int32, Name: "EffectSpellClassMask2_2"},
	{Kind: Int32, Name: "SpellVisual0"},
	{Kind: Int32, Name: "SpellVisual1"},
	{Kind: Int32, Name: "SpellIconID"},
	{Kind: Int32, Name: "ActiveIconID"},
	{Kind: Int32, Name: "SpellPriority"},
	{Kind: StringRef, Name: "SpellName_enUS"},
	{Kind: StringRef, Name: "SpellName_koKR"},
	{Kind: StringRef, Name: "SpellName_frFR"},
	{Kind: StringRef, Name: "SpellName_deDE"},
	{Kind: StringRef, Name: "SpellName_enCN"},
	{Kind: StringRef, Name: "SpellName_enTW"},
	{Kind: StringRef, Name: "SpellName_esES"},
	{Kind: StringRef, Name: "SpellName_esMX"},
	{Kind: StringRef, Name: "SpellName_ruRU"},
	{Kind: StringRef, Name: "SpellName_unused1"},
	{Kind: StringRef, Name: "SpellName_ptBR"},
	{Kind: StringRef, Name: "SpellName_itIT"},
	{Kind: StringRef, Name: "SpellName_unused2"},
	{Kind: StringRef, Name: "SpellName_unused3"},
	{Kind: StringRef, Name: "SpellName_unused4"},
	{Kind: StringRef, Name: "SpellName_unused5"},
	{Kind: Skip},
	{Kind: StringRef, Name: "Rank_enUS"},
	{Kind: StringRef, Name: "Rank_koKR"},
	{Kind: StringRef, Name: "Rank_frFR"},
	{Kind: StringRef, Name: "Rank_deDE"},
	{Kind: StringRef, Name: "Rank_enCN"},
	{Kind: StringRef, Name: "Rank_enTW"},
	{Kind: StringRef, Name: "Rank_esES"},
	{Kind: StringRef, Name: "Rank_esMX"},
	{Kind: StringRef, Name: "Rank_ruRU"},
	{Kind: StringRef, Name: "Rank_unused1"},
	{Kind: StringRef, Name: "Rank_ptBR"},
	{Kind: StringRef, Name: "Rank_itIT"},
	{Kind: StringRef, Name: "Rank_unused2"},
	{Kind: StringRef, Name: "Rank_unused3"},
	{Kind: StringRef, Name: "Rank_unused4"},
	{Kind: StringRef, Name: "Rank_unused5"},
	// 35 unused fields
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Int32, Name: "ManaCostPercentage"},
	{Kind: Int32, Name: "StartRecoveryCategory"},
	{Kind: Int32, Name: "StartRecoveryTime"},
	{Kind: Int32, Name: "MaxTargetLevel"},
	{Kind: Int32, Name: "SpellFamilyName"},
	{Kind: Int32, Name: "SpellFamilyFlags0"},
	{Kind: Int32, Name: "SpellFamilyFlags1"},
	{Kind: Int32, Name: "SpellFamilyFlags2"},
	{Kind: Int32, Name: "MaxAffectedTargets"},
	{Kind: Int32, Name: "DmgClass"},
	{Kind: Int32, Name: "PreventionType"},
	{Kind: Skip},
	{Kind: Float32, Name: "EffectDamageMultiplier0"},
	{Kind: Float32, Name: "EffectDamageMultiplier1"},
	{Kind: Float32, Name: "EffectDamageMultiplier2"},
	// 3 unused fields
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Int32, Name: "TotemCategory0"},
	{Kind: Int32, Name: "TotemCategory1"},
	{Kind: Int32, Name: "AreaGroupId"},
	{Kind: Int32, Name: "SchoolMask"},
	{Kind: Int32, Name: "RuneCostID"},
	// 2 unused fields
	{Kind: Skip},
	{Kind: Skip},
	{Kind: Float32, Name: "EffectBonusMultiplier0"},
	{Kind: Float32, Name: "EffectBonusMultiplier1"},
	{Kind: Float32, Name: "EffectBonusMultiplier2"},
	// 2 unused fields
	{Kind: Skip},
	{Kind: Skip},
}
