// Package dnd5e implements the D&D 5e entities
package dnd5e

// Alignment is one of the nine classic alignments
type Alignment string

// Alignments
const (
	AlignmentLawfulGood     Alignment = "lawful_good"
	AlignmentNeutralGood    Alignment = "neutral_good"
	AlignmentChaoticGood    Alignment = "chaotic_good"
	AlignmentLawfulNeutral  Alignment = "lawful_neutral"
	AlignmentTrueNeutral    Alignment = "true_neutral"
	AlignmentChaoticNeutral Alignment = "chaotic_neutral"
	AlignmentLawfulEvil     Alignment = "lawful_evil"
	AlignmentNeutralEvil    Alignment = "neutral_evil"
	AlignmentChaoticEvil    Alignment = "chaotic_evil"
)

// Alignments lists all nine values in reading order
var Alignments = []Alignment{
	AlignmentLawfulGood, AlignmentNeutralGood, AlignmentChaoticGood,
	AlignmentLawfulNeutral, AlignmentTrueNeutral, AlignmentChaoticNeutral,
	AlignmentLawfulEvil, AlignmentNeutralEvil, AlignmentChaoticEvil,
}

// DisplayName returns the human-readable form, e.g. "Lawful Good"
func (a Alignment) DisplayName() string {
	switch a {
	case AlignmentLawfulGood:
		return "Lawful Good"
	case AlignmentNeutralGood:
		return "Neutral Good"
	case AlignmentChaoticGood:
		return "Chaotic Good"
	case AlignmentLawfulNeutral:
		return "Lawful Neutral"
	case AlignmentTrueNeutral:
		return "True Neutral"
	case AlignmentChaoticNeutral:
		return "Chaotic Neutral"
	case AlignmentLawfulEvil:
		return "Lawful Evil"
	case AlignmentNeutralEvil:
		return "Neutral Evil"
	case AlignmentChaoticEvil:
		return "Chaotic Evil"
	default:
		return string(a)
	}
}

// AbilityScores holds the six ability scores. Embedded so the fields
// sit flat in the wire representation.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Character represents a full character sheet as returned by the
// backend. Optional scalars are pointers so an absent value survives a
// round trip through the wire format unchanged.
// NOTE: This is a data-only struct. Derived values (modifiers,
// proficiency bonus, death-save state) live in internal/rules.
type Character struct {
	ID         int  `json:"id"`
	OwnerID    int  `json:"owner_id"`
	CampaignID *int `json:"campaign_id"`

	// Basic info
	Name             string     `json:"name"`
	Race             string     `json:"race"`
	CharacterClass   string     `json:"character_class"`
	Level            int        `json:"level"`
	Background       *string    `json:"background"`
	Alignment        *Alignment `json:"alignment"`
	ExperiencePoints int        `json:"experience_points"`

	AbilityScores

	// Combat stats
	HitPointsMax     int `json:"hit_points_max"`
	HitPointsCurrent int `json:"hit_points_current"`
	HitPointsTemp    int `json:"hit_points_temp"`
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	Speed            int `json:"speed"`

	// Death saves
	DeathSaveSuccesses int `json:"death_save_successes"`
	DeathSaveFailures  int `json:"death_save_failures"`

	// Proficiencies
	SavingThrowProficiencies []string `json:"saving_throw_proficiencies"`
	SkillProficiencies       []string `json:"skill_proficiencies"`
	SkillExpertises          []string `json:"skill_expertises"`

	// Features
	RacialTraits  []Record `json:"racial_traits"`
	ClassFeatures []Record `json:"class_features"`
	Feats         []Record `json:"feats"`

	// Personality
	PersonalityTraits *string `json:"personality_traits"`
	Ideals            *string `json:"ideals"`
	Bonds             *string `json:"bonds"`
	Flaws             *string `json:"flaws"`

	// Appearance
	Appearance *string `json:"appearance"`
	Backstory  *string `json:"backstory"`

	// Inventory
	Inventory []Record `json:"inventory"`

	// Spellcasting, present only when SpellcastingAbility is set
	SpellcastingAbility *string        `json:"spellcasting_ability"`
	SpellSaveDC         *int           `json:"spell_save_dc"`
	SpellAttackBonus    *int           `json:"spell_attack_bonus"`
	SpellSlots          map[string]int `json:"spell_slots"`
	SpellSlotsUsed      map[string]int `json:"spell_slots_used"`
	SpellsKnown         []Record       `json:"spells_known"`
	SpellsPrepared      []string       `json:"spells_prepared"`

	// Combat transients
	Conditions []string `json:"conditions"`
	Attacks    []Record `json:"attacks"`

	// Currency, independent counters with no coin conversion
	CopperPieces   int `json:"copper_pieces"`
	SilverPieces   int `json:"silver_pieces"`
	ElectrumPieces int `json:"electrum_pieces"`
	GoldPieces     int `json:"gold_pieces"`
	PlatinumPieces int `json:"platinum_pieces"`
}

// IsSpellcaster reports whether the spellcasting subsystem applies
func (c *Character) IsSpellcaster() bool {
	return c.SpellcastingAbility != nil && *c.SpellcastingAbility != ""
}

// CharacterCreate is the creation payload. The backend requires name,
// race, class, the six ability scores, max and current hit points, and
// armor class; everything else carries a documented default.
type CharacterCreate struct {
	Name             string     `json:"name"`
	Race             string     `json:"race"`
	CharacterClass   string     `json:"character_class"`
	Level            int        `json:"level"`
	Background       *string    `json:"background,omitempty"`
	Alignment        *Alignment `json:"alignment,omitempty"`
	ExperiencePoints int        `json:"experience_points"`

	AbilityScores

	HitPointsMax     int `json:"hit_points_max"`
	HitPointsCurrent int `json:"hit_points_current"`
	HitPointsTemp    int `json:"hit_points_temp"`
	ArmorClass       int `json:"armor_class"`
	Initiative       int `json:"initiative"`
	Speed            int `json:"speed"`

	DeathSaveSuccesses int `json:"death_save_successes"`
	DeathSaveFailures  int `json:"death_save_failures"`

	SavingThrowProficiencies []string `json:"saving_throw_proficiencies"`
	SkillProficiencies       []string `json:"skill_proficiencies"`
	SkillExpertises          []string `json:"skill_expertises"`

	RacialTraits  []Record `json:"racial_traits"`
	ClassFeatures []Record `json:"class_features"`
	Feats         []Record `json:"feats"`

	PersonalityTraits *string `json:"personality_traits,omitempty"`
	Ideals            *string `json:"ideals,omitempty"`
	Bonds             *string `json:"bonds,omitempty"`
	Flaws             *string `json:"flaws,omitempty"`
	Appearance        *string `json:"appearance,omitempty"`
	Backstory         *string `json:"backstory,omitempty"`

	Inventory []Record `json:"inventory"`

	SpellcastingAbility *string        `json:"spellcasting_ability,omitempty"`
	SpellSaveDC         *int           `json:"spell_save_dc,omitempty"`
	SpellAttackBonus    *int           `json:"spell_attack_bonus,omitempty"`
	SpellSlots          map[string]int `json:"spell_slots"`
	SpellSlotsUsed      map[string]int `json:"spell_slots_used"`
	SpellsKnown         []Record       `json:"spells_known"`
	SpellsPrepared      []string       `json:"spells_prepared"`

	Conditions []string `json:"conditions"`
	Attacks    []Record `json:"attacks"`

	CopperPieces   int `json:"copper_pieces"`
	SilverPieces   int `json:"silver_pieces"`
	ElectrumPieces int `json:"electrum_pieces"`
	GoldPieces     int `json:"gold_pieces"`
	PlatinumPieces int `json:"platinum_pieces"`

	CampaignID *int `json:"campaign_id,omitempty"`
}

// NewCharacterCreate builds a creation payload with the documented
// defaults: level 1, zero experience, no temp HP, speed 30, counters at
// zero, collections empty.
func NewCharacterCreate(name, race, class string, scores AbilityScores, hpMax, armorClass int) *CharacterCreate {
	return &CharacterCreate{
		Name:             name,
		Race:             race,
		CharacterClass:   class,
		Level:            1,
		ExperiencePoints: 0,
		AbilityScores:    scores,

		HitPointsMax:     hpMax,
		HitPointsCurrent: hpMax,
		HitPointsTemp:    0,
		ArmorClass:       armorClass,
		Initiative:       0,
		Speed:            30,

		SavingThrowProficiencies: []string{},
		SkillProficiencies:       []string{},
		SkillExpertises:          []string{},
		RacialTraits:             []Record{},
		ClassFeatures:            []Record{},
		Feats:                    []Record{},
		Inventory:                []Record{},
		SpellSlots:               map[string]int{},
		SpellSlotsUsed:           map[string]int{},
		SpellsKnown:              []Record{},
		SpellsPrepared:           []string{},
		Conditions:               []string{},
		Attacks:                  []Record{},
	}
}
