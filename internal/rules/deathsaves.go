package rules

import "github.com/khoi-stripe/danddy/internal/entities/dnd5e"

// DeathSaveState classifies a character's standing at zero hit points.
// It is derived from the stored counters, never stored itself.
type DeathSaveState string

// Death-save states
const (
	// Stable: current hit points above zero, no saves in progress
	Stable DeathSaveState = "stable"
	// Dying: at zero hit points, saves still being rolled
	Dying DeathSaveState = "dying"
	// Stabilized: three successes at zero hit points. Resetting the
	// success counter afterward is the caller's transition.
	Stabilized DeathSaveState = "stabilized"
	// Dead: three failures, regardless of successes
	Dead DeathSaveState = "dead"
)

// DeathSaveStateOf derives the state from the three counters
func DeathSaveStateOf(c dnd5e.Character) DeathSaveState {
	if c.DeathSaveFailures >= 3 {
		return Dead
	}
	if c.HitPointsCurrent > 0 {
		return Stable
	}
	if c.DeathSaveSuccesses >= 3 {
		return Stabilized
	}
	return Dying
}

// CanRecordDeathSave reports whether another save may be recorded.
// Only a dying character rolls death saves; Dead is terminal.
func CanRecordDeathSave(c dnd5e.Character) bool {
	return DeathSaveStateOf(c) == Dying
}
