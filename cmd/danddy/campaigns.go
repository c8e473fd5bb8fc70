package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
)

var campaignsCmd = &cobra.Command{
	Use:     "campaigns",
	Aliases: []string{"campaign"},
	Short:   "Manage campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.campaigns.FetchAll(context.Background()); err != nil {
			return err
		}

		return printJSON(a.campaigns.Snapshot().Items)
	},
}

var campaignsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one campaign with its characters",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.campaigns.FetchOne(context.Background(), id); err != nil {
			return err
		}

		return printJSON(a.campaigns.Snapshot().Selected)
	},
}

var campaignDescription string

var campaignsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a campaign (dm accounts only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		created, err := a.campaigns.Create(context.Background(), args[0], campaignDescription)
		if err != nil {
			return err
		}

		return printJSON(created)
	},
}

var campaignUpdateFlags struct {
	name        string
	description string
}

var campaignsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a campaign (only the given flags are sent)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}

		patch := &dnd5e.CampaignUpdate{}
		if cmd.Flags().Changed("name") {
			patch.Name = dnd5e.String(campaignUpdateFlags.name)
		}
		if cmd.Flags().Changed("description") {
			patch.Description = dnd5e.String(campaignUpdateFlags.description)
		}
		if patch.Name == nil && patch.Description == nil {
			return fmt.Errorf("nothing to update - pass at least one flag")
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		updated, err := a.campaigns.Update(context.Background(), id, patch)
		if err != nil {
			return err
		}

		return printJSON(updated)
	},
}

var campaignsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid campaign id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.campaigns.Delete(context.Background(), id); err != nil {
			return err
		}

		fmt.Printf("deleted campaign %d\n", id)
		return nil
	},
}

func init() {
	campaignsCreateCmd.Flags().StringVar(&campaignDescription, "description", "", "campaign description")

	update := campaignsUpdateCmd.Flags()
	update.StringVar(&campaignUpdateFlags.name, "name", "", "new name")
	update.StringVar(&campaignUpdateFlags.description, "description", "", "new description")

	campaignsCmd.AddCommand(campaignsListCmd)
	campaignsCmd.AddCommand(campaignsGetCmd)
	campaignsCmd.AddCommand(campaignsCreateCmd)
	campaignsCmd.AddCommand(campaignsUpdateCmd)
	campaignsCmd.AddCommand(campaignsDeleteCmd)
	rootCmd.AddCommand(campaignsCmd)
}
