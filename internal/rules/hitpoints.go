package rules

import "github.com/khoi-stripe/danddy/internal/entities/dnd5e"

// ApplyDamage returns a copy of the character with damage applied.
// Damage depletes temporary hit points first; any remainder comes off
// current hit points, floored at zero. Negative damage is ignored.
func ApplyDamage(c dnd5e.Character, damage int) dnd5e.Character {
	if damage <= 0 {
		return c
	}

	if c.HitPointsTemp > 0 {
		if damage <= c.HitPointsTemp {
			c.HitPointsTemp -= damage
			return c
		}
		damage -= c.HitPointsTemp
		c.HitPointsTemp = 0
	}

	c.HitPointsCurrent -= damage
	if c.HitPointsCurrent < 0 {
		c.HitPointsCurrent = 0
	}
	return c
}

// Heal returns a copy of the character with hit points restored, capped
// at the maximum. Healing never touches temporary hit points. Negative
// amounts are ignored.
func Heal(c dnd5e.Character, amount int) dnd5e.Character {
	if amount <= 0 {
		return c
	}

	c.HitPointsCurrent += amount
	if c.HitPointsCurrent > c.HitPointsMax {
		c.HitPointsCurrent = c.HitPointsMax
	}
	return c
}
