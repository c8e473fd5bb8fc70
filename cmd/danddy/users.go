package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/services/user"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Look up users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.users.List(context.Background(), &user.ListInput{})
		if err != nil {
			return err
		}

		return printJSON(out.Users)
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one user",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}

		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.users.Get(context.Background(), &user.GetInput{UserID: id})
		if err != nil {
			return err
		}

		return printJSON(out.User)
	},
}

func init() {
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	rootCmd.AddCommand(usersCmd)
}
