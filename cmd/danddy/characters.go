package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/rules"
)

var charactersCmd = &cobra.Command{
	Use:     "characters",
	Aliases: []string{"character", "char"},
	Short:   "Manage your characters",
}

var charactersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your characters",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.characters.FetchAll(context.Background()); err != nil {
			return err
		}

		return printJSON(a.characters.Snapshot().Items)
	},
}

var charactersGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid character id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.characters.FetchOne(context.Background(), id); err != nil {
			return err
		}

		return printJSON(a.characters.Snapshot().Selected)
	},
}

var createFlags struct {
	name, race, class       string
	str, dex, con, wis, cha int
	intelligence            int
	hitPoints, armorClass   int
}

var charactersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a character",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		scores := dnd5e.AbilityScores{
			Strength:     createFlags.str,
			Dexterity:    createFlags.dex,
			Constitution: createFlags.con,
			Intelligence: createFlags.intelligence,
			Wisdom:       createFlags.wis,
			Charisma:     createFlags.cha,
		}
		draft := dnd5e.NewCharacterCreate(
			createFlags.name, createFlags.race, createFlags.class,
			scores, createFlags.hitPoints, createFlags.armorClass,
		)

		created, err := a.characters.Create(context.Background(), draft)
		if err != nil {
			return err
		}

		return printJSON(created)
	},
}

var updateFlags struct {
	name          string
	level         int
	xp            int
	campaign      int
	clearCampaign bool
}

var charactersUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a character (only the given flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid character id %q", args[0])
		}

		patch := &dnd5e.CharacterPatch{}
		if cmd.Flags().Changed("name") {
			patch.Name = dnd5e.String(updateFlags.name)
		}
		if cmd.Flags().Changed("level") {
			patch.Level = dnd5e.Int(updateFlags.level)
		}
		if cmd.Flags().Changed("xp") {
			patch.ExperiencePoints = dnd5e.Int(updateFlags.xp)
		}
		if cmd.Flags().Changed("campaign") {
			patch.CampaignID = dnd5e.Int(updateFlags.campaign)
		}
		patch.ClearCampaign = updateFlags.clearCampaign

		if patch.IsEmpty() && !patch.ClearCampaign {
			return fmt.Errorf("nothing to update - pass at least one flag")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		updated, err := a.characters.Update(context.Background(), id, patch)
		if err != nil {
			return err
		}

		return printJSON(updated)
	},
}

var charactersDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a character",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid character id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.characters.Delete(context.Background(), id); err != nil {
			return err
		}

		fmt.Printf("deleted character %d\n", id)
		return nil
	},
}

var charactersDamageCmd = &cobra.Command{
	Use:   "damage [id] [amount]",
	Short: "Apply damage (temp HP absorbs first, current HP floors at 0)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return adjustHitPoints(args, rules.ApplyDamage)
	},
}

var charactersHealCmd = &cobra.Command{
	Use:   "heal [id] [amount]",
	Short: "Heal a character (capped at max HP)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return adjustHitPoints(args, rules.Heal)
	},
}

// adjustHitPoints fetches the current record, applies the rules
// locally, and sends the resulting hit point fields as a sparse patch.
// The server's returned record is what ends up in the cache.
func adjustHitPoints(args []string, apply func(dnd5e.Character, int) dnd5e.Character) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid character id %q", args[0])
	}
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx := context.Background()
	if err := a.characters.FetchOne(ctx, id); err != nil {
		return err
	}
	current := a.characters.Snapshot().Selected

	adjusted := apply(*current, amount)
	patch := &dnd5e.CharacterPatch{
		HitPointsCurrent: dnd5e.Int(adjusted.HitPointsCurrent),
		HitPointsTemp:    dnd5e.Int(adjusted.HitPointsTemp),
	}

	updated, err := a.characters.Update(ctx, id, patch)
	if err != nil {
		return err
	}

	return printJSON(updated)
}

func init() {
	create := charactersCreateCmd.Flags()
	create.StringVar(&createFlags.name, "name", "", "character name")
	create.StringVar(&createFlags.race, "race", "", "race")
	create.StringVar(&createFlags.class, "class", "", "class")
	create.IntVar(&createFlags.str, "str", 10, "strength")
	create.IntVar(&createFlags.dex, "dex", 10, "dexterity")
	create.IntVar(&createFlags.con, "con", 10, "constitution")
	create.IntVar(&createFlags.intelligence, "int", 10, "intelligence")
	create.IntVar(&createFlags.wis, "wis", 10, "wisdom")
	create.IntVar(&createFlags.cha, "cha", 10, "charisma")
	create.IntVar(&createFlags.hitPoints, "hp", 1, "max hit points")
	create.IntVar(&createFlags.armorClass, "ac", 10, "armor class")
	_ = charactersCreateCmd.MarkFlagRequired("name")
	_ = charactersCreateCmd.MarkFlagRequired("race")
	_ = charactersCreateCmd.MarkFlagRequired("class")

	update := charactersUpdateCmd.Flags()
	update.StringVar(&updateFlags.name, "name", "", "new name")
	update.IntVar(&updateFlags.level, "level", 0, "new level")
	update.IntVar(&updateFlags.xp, "xp", 0, "new experience points")
	update.IntVar(&updateFlags.campaign, "campaign", 0, "campaign to join")
	update.BoolVar(&updateFlags.clearCampaign, "clear-campaign", false, "leave the current campaign")

	charactersCmd.AddCommand(charactersListCmd)
	charactersCmd.AddCommand(charactersGetCmd)
	charactersCmd.AddCommand(charactersCreateCmd)
	charactersCmd.AddCommand(charactersUpdateCmd)
	charactersCmd.AddCommand(charactersDeleteCmd)
	charactersCmd.AddCommand(charactersDamageCmd)
	charactersCmd.AddCommand(charactersHealCmd)
	rootCmd.AddCommand(charactersCmd)
}
