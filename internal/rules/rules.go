// Package rules implements the pure D&D 5e rules engine: ability
// modifiers, proficiency bonuses, hit-point accounting, and death-save
// classification. Everything here is a pure function over entity
// values; no I/O and no state.
package rules

import "fmt"

// AbilityModifier returns floor((score - 10) / 2), rounding toward
// negative infinity for scores below 10 (a score of 3 yields -4).
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		// Go integer division truncates toward zero
		return (diff - 1) / 2
	}
	return diff / 2
}

// ProficiencyBonus returns 2 + floor((level - 1) / 4): +2 at levels
// 1-4 up to +6 at levels 17-20. Valid for level >= 1.
func ProficiencyBonus(level int) int {
	return 2 + (level-1)/4
}

// FormatModifier renders a modifier with its sign, e.g. "+3" or "-1"
func FormatModifier(mod int) string {
	return fmt.Sprintf("%+d", mod)
}
