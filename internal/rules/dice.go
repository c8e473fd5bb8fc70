package rules

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/khoi-stripe/danddy/internal/errors"
)

// RollResult holds one dice roll: the kept total and the individual
// die values in the order rolled.
type RollResult struct {
	Total int
	Dice  []int
}

// Roll rolls count dice of the given size using rpg-toolkit
func Roll(count, size int) (RollResult, error) {
	if count <= 0 || size <= 0 {
		return RollResult{}, errors.InvalidArgumentf("dice count and size must be positive: %dd%d", count, size)
	}

	roll, err := dice.NewRoll(count, size)
	if err != nil {
		return RollResult{}, errors.Wrap(err, "failed to roll dice")
	}

	return RollResult{
		Total: roll.GetValue(),
		Dice:  parseDiceDescription(roll.GetDescription()),
	}, nil
}

// D20 rolls a single d20, applying advantage or disadvantage. With
// both flags set they cancel out and a single die is rolled.
func D20(advantage, disadvantage bool) (int, error) {
	if advantage == disadvantage {
		result, err := Roll(1, 20)
		return result.Total, err
	}

	first, err := Roll(1, 20)
	if err != nil {
		return 0, err
	}
	second, err := Roll(1, 20)
	if err != nil {
		return 0, err
	}

	if advantage {
		return max(first.Total, second.Total), nil
	}
	return min(first.Total, second.Total), nil
}

// RollAbilityScore rolls 4d6 and drops the lowest die, the standard
// ability-score generation method.
func RollAbilityScore() (int, error) {
	result, err := Roll(4, 6)
	if err != nil {
		return 0, err
	}

	if len(result.Dice) < 4 {
		// Description did not expose individual dice; fall back to the
		// total minus an assumed minimum die.
		return result.Total - 1, nil
	}

	lowest := 0
	for i, d := range result.Dice {
		if d < result.Dice[lowest] {
			lowest = i
		}
	}

	total := 0
	for i, d := range result.Dice {
		if i != lowest {
			total += d
		}
	}
	return total, nil
}

// parseDiceDescription extracts individual die values from rpg-toolkit's
// roll description, formatted like "+2d6[3,4]=7". The toolkit does not
// expose the dice directly.
func parseDiceDescription(description string) []int {
	start := strings.Index(description, "[")
	end := strings.Index(description, "]")
	if start < 0 || end <= start {
		return nil
	}

	var values []int
	for _, part := range strings.Split(description[start+1:end], ",") {
		if v, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			values = append(values, v)
		}
	}
	return values
}
