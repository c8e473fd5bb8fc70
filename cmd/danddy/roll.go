package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/rules"
)

var rollFlags struct {
	advantage    bool
	disadvantage bool
}

var rollCmd = &cobra.Command{
	Use:   "roll [dice]",
	Short: "Roll dice, e.g. 'roll 2d6' or 'roll d20 --advantage'",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		count, size, err := parseDice(args[0])
		if err != nil {
			return err
		}

		if size == 20 && count == 1 && (rollFlags.advantage || rollFlags.disadvantage) {
			total, err := rules.D20(rollFlags.advantage, rollFlags.disadvantage)
			if err != nil {
				return err
			}
			fmt.Println(total)
			return nil
		}

		result, err := rules.Roll(count, size)
		if err != nil {
			return err
		}

		fmt.Printf("%d %v\n", result.Total, result.Dice)
		return nil
	},
}

var rollAbilityCmd = &cobra.Command{
	Use:   "ability",
	Short: "Roll an ability score (4d6, drop the lowest)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		score, err := rules.RollAbilityScore()
		if err != nil {
			return err
		}

		fmt.Println(score)
		return nil
	},
}

// parseDice reads standard dice notation: "2d6", "d20".
func parseDice(notation string) (count, size int, err error) {
	parts := strings.SplitN(strings.ToLower(notation), "d", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid dice notation %q - expected NdS, e.g. 2d6", notation)
	}

	count = 1
	if parts[0] != "" {
		count, err = strconv.Atoi(parts[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid dice count %q", parts[0])
		}
	}

	size, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid die size %q", parts[1])
	}

	return count, size, nil
}

func init() {
	rollCmd.Flags().BoolVar(&rollFlags.advantage, "advantage", false, "roll twice, keep the higher")
	rollCmd.Flags().BoolVar(&rollFlags.disadvantage, "disadvantage", false, "roll twice, keep the lower")

	rollCmd.AddCommand(rollAbilityCmd)
	rootCmd.AddCommand(rollCmd)
}
