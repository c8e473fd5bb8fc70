package rules

import "github.com/khoi-stripe/danddy/internal/entities/dnd5e"

// SkillAbilities maps each skill to the ability it keys off
var SkillAbilities = map[string]string{
	"Acrobatics":      "dexterity",
	"Animal Handling": "wisdom",
	"Arcana":          "intelligence",
	"Athletics":       "strength",
	"Deception":       "charisma",
	"History":         "intelligence",
	"Insight":         "wisdom",
	"Intimidation":    "charisma",
	"Investigation":   "intelligence",
	"Medicine":        "wisdom",
	"Nature":          "intelligence",
	"Perception":      "wisdom",
	"Performance":     "charisma",
	"Persuasion":      "charisma",
	"Religion":        "intelligence",
	"Sleight of Hand": "dexterity",
	"Stealth":         "dexterity",
	"Survival":        "wisdom",
}

func abilityScore(c dnd5e.Character, ability string) int {
	switch ability {
	case "strength":
		return c.Strength
	case "dexterity":
		return c.Dexterity
	case "constitution":
		return c.Constitution
	case "intelligence":
		return c.Intelligence
	case "wisdom":
		return c.Wisdom
	case "charisma":
		return c.Charisma
	default:
		return 10
	}
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}

// SkillModifier returns the character's total bonus for a skill check:
// ability modifier, plus the proficiency bonus if proficient, doubled
// for expertise. Expertise implies proficiency even when the
// proficiency list does not repeat the skill.
func SkillModifier(c dnd5e.Character, skill string) int {
	ability, ok := SkillAbilities[skill]
	if !ok {
		return 0
	}

	mod := AbilityModifier(abilityScore(c, ability))
	switch {
	case contains(c.SkillExpertises, skill):
		mod += 2 * ProficiencyBonus(c.Level)
	case contains(c.SkillProficiencies, skill):
		mod += ProficiencyBonus(c.Level)
	}
	return mod
}

// SavingThrowModifier returns the character's bonus for a saving throw
// on the given ability ("strength" through "charisma").
func SavingThrowModifier(c dnd5e.Character, ability string) int {
	mod := AbilityModifier(abilityScore(c, ability))
	if contains(c.SavingThrowProficiencies, ability) {
		mod += ProficiencyBonus(c.Level)
	}
	return mod
}
