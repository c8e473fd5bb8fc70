package rules_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/rules"
)

func TestAbilityModifier(t *testing.T) {
	testCases := []struct {
		score    int
		expected int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{12, 1},
		{15, 2},
		{20, 5},
		{30, 10},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("score %d", tc.score), func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.AbilityModifier(tc.score))
		})
	}
}

func TestAbilityModifierMatchesFloorFormula(t *testing.T) {
	// floor((score-10)/2) toward negative infinity, for the whole
	// conventional range
	for score := 1; score <= 30; score++ {
		expected := (score - 10) / 2
		if (score-10)%2 != 0 && score < 10 {
			expected--
		}
		assert.Equal(t, expected, rules.AbilityModifier(score), "score %d", score)
	}
}

func TestProficiencyBonus(t *testing.T) {
	expected := map[int]int{
		1: 2, 4: 2,
		5: 3, 8: 3,
		9: 4, 12: 4,
		13: 5, 16: 5,
		17: 6, 20: 6,
	}
	for level := 1; level <= 20; level++ {
		bonus := rules.ProficiencyBonus(level)
		assert.GreaterOrEqual(t, bonus, 2)
		assert.LessOrEqual(t, bonus, 6)
	}
	for level, bonus := range expected {
		assert.Equal(t, bonus, rules.ProficiencyBonus(level), "level %d", level)
	}
}

func TestFormatModifier(t *testing.T) {
	assert.Equal(t, "+3", rules.FormatModifier(3))
	assert.Equal(t, "+0", rules.FormatModifier(0))
	assert.Equal(t, "-1", rules.FormatModifier(-1))
}

func TestApplyDamageConsumesTempFirst(t *testing.T) {
	c := dnd5e.Character{HitPointsMax: 20, HitPointsCurrent: 15, HitPointsTemp: 5}

	c = rules.ApplyDamage(c, 8)

	assert.Equal(t, 0, c.HitPointsTemp)
	assert.Equal(t, 12, c.HitPointsCurrent)
}

func TestApplyDamageWithinTemp(t *testing.T) {
	c := dnd5e.Character{HitPointsMax: 20, HitPointsCurrent: 15, HitPointsTemp: 5}

	c = rules.ApplyDamage(c, 3)

	assert.Equal(t, 2, c.HitPointsTemp)
	assert.Equal(t, 15, c.HitPointsCurrent)
}

func TestApplyDamageNeverNegative(t *testing.T) {
	c := dnd5e.Character{HitPointsMax: 10, HitPointsCurrent: 10, HitPointsTemp: 0}

	c = rules.ApplyDamage(c, 15)
	assert.Equal(t, 0, c.HitPointsCurrent)

	c = rules.ApplyDamage(c, 1000)
	assert.Equal(t, 0, c.HitPointsCurrent)
}

func TestApplyDamageIgnoresNonPositive(t *testing.T) {
	c := dnd5e.Character{HitPointsMax: 10, HitPointsCurrent: 7, HitPointsTemp: 2}

	assert.Equal(t, c, rules.ApplyDamage(c, 0))
	assert.Equal(t, c, rules.ApplyDamage(c, -5))
}

func TestHealCapsAtMax(t *testing.T) {
	c := dnd5e.Character{HitPointsMax: 20, HitPointsCurrent: 12, HitPointsTemp: 3}

	c = rules.Heal(c, 100)

	assert.Equal(t, 20, c.HitPointsCurrent)
	assert.Equal(t, 3, c.HitPointsTemp, "healing must not touch temp HP")
}

func TestDeathSaveClassification(t *testing.T) {
	testCases := []struct {
		name      string
		hp        int
		successes int
		failures  int
		expected  rules.DeathSaveState
	}{
		{"positive hp", 12, 0, 0, rules.Stable},
		{"at zero, saves in progress", 0, 1, 2, rules.Dying},
		{"at zero, two failures", 0, 0, 2, rules.Dying},
		{"three failures", 0, 0, 3, rules.Dead},
		{"three failures beat three successes", 0, 3, 3, rules.Dead},
		{"three successes", 0, 3, 0, rules.Stabilized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := dnd5e.Character{
				HitPointsCurrent:   tc.hp,
				DeathSaveSuccesses: tc.successes,
				DeathSaveFailures:  tc.failures,
			}
			assert.Equal(t, tc.expected, rules.DeathSaveStateOf(c))
		})
	}
}

func TestCanRecordDeathSave(t *testing.T) {
	dying := dnd5e.Character{HitPointsCurrent: 0, DeathSaveFailures: 2}
	dead := dnd5e.Character{HitPointsCurrent: 0, DeathSaveFailures: 3}
	stable := dnd5e.Character{HitPointsCurrent: 5}

	assert.True(t, rules.CanRecordDeathSave(dying))
	assert.False(t, rules.CanRecordDeathSave(dead), "dead is terminal")
	assert.False(t, rules.CanRecordDeathSave(stable))
}

func TestSkillModifier(t *testing.T) {
	c := dnd5e.Character{
		Level: 5,
		AbilityScores: dnd5e.AbilityScores{
			Strength: 10, Dexterity: 16, Constitution: 12,
			Intelligence: 8, Wisdom: 14, Charisma: 10,
		},
		SkillProficiencies: []string{"Stealth", "Perception"},
		SkillExpertises:    []string{"Stealth"},
	}

	// dex 16 -> +3; proficiency at level 5 -> +3
	assert.Equal(t, 9, rules.SkillModifier(c, "Stealth"), "expertise doubles proficiency")
	assert.Equal(t, 5, rules.SkillModifier(c, "Perception"))
	assert.Equal(t, 3, rules.SkillModifier(c, "Acrobatics"), "no proficiency")
	assert.Equal(t, 0, rules.SkillModifier(c, "Juggling"), "unknown skill")
}

func TestExpertiseImpliesProficiency(t *testing.T) {
	c := dnd5e.Character{
		Level:           1,
		AbilityScores:   dnd5e.AbilityScores{Charisma: 14},
		SkillExpertises: []string{"Deception"}, // not repeated in proficiencies
	}

	assert.Equal(t, 6, rules.SkillModifier(c, "Deception"))
}

func TestSavingThrowModifier(t *testing.T) {
	c := dnd5e.Character{
		Level:                    3,
		AbilityScores:            dnd5e.AbilityScores{Wisdom: 15, Strength: 8},
		SavingThrowProficiencies: []string{"wisdom"},
	}

	assert.Equal(t, 4, rules.SavingThrowModifier(c, "wisdom"))
	assert.Equal(t, -1, rules.SavingThrowModifier(c, "strength"))
}

func TestRollBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		result, err := rules.Roll(2, 6)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, result.Total, 2)
		assert.LessOrEqual(t, result.Total, 12)
	}
}

func TestRollRejectsInvalidInput(t *testing.T) {
	_, err := rules.Roll(0, 6)
	assert.Error(t, err)

	_, err = rules.Roll(1, -4)
	assert.Error(t, err)
}

func TestD20Bounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		value, err := rules.D20(i%2 == 0, false)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, value, 1)
		assert.LessOrEqual(t, value, 20)
	}
}

func TestRollAbilityScoreBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		score, err := rules.RollAbilityScore()
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, score, 3)
		assert.LessOrEqual(t, score, 18)
	}
}
