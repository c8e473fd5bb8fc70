package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoi-stripe/danddy/internal/entities/dnd5e"
	"github.com/khoi-stripe/danddy/internal/services/auth"
	"github.com/khoi-stripe/danddy/internal/session"
)

var registerRole string

var registerCmd = &cobra.Command{
	Use:   "register [email] [username] [password]",
	Short: "Create an account and log in",
	Args:  cobra.ExactArgs(3),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		role := dnd5e.UserRole(registerRole)
		if err := a.session.Register(context.Background(), args[0], args[1], args[2], role); err != nil {
			return err
		}

		return printJSON(a.session.CurrentUser())
	},
}

var loginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Log in and store the session token",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.Login(context.Background(), args[0], args[1]); err != nil {
			return err
		}

		return printJSON(a.session.CurrentUser())
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		a.session.Logout()
		fmt.Println("logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently authenticated user",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if err := a.session.RestoreSession(context.Background()); err != nil {
			return err
		}
		if a.session.State() != session.Authenticated {
			fmt.Println("not logged in")
			return nil
		}

		return printJSON(a.session.CurrentUser())
	},
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password [email]",
	Short: "Request a password reset token",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.auth.ForgotPassword(context.Background(), &auth.ForgotPasswordInput{Email: args[0]}); err != nil {
			return err
		}

		fmt.Println("reset requested - check your email")
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [token] [new-password]",
	Short: "Complete a password reset",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.auth.ResetPassword(context.Background(), &auth.ResetPasswordInput{
			Token:       args[0],
			NewPassword: args[1],
		}); err != nil {
			return err
		}

		fmt.Println("password reset - log in with the new password")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerRole, "role", string(dnd5e.RolePlayer), "account role (player or dm)")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(forgotPasswordCmd)
	rootCmd.AddCommand(resetPasswordCmd)
}
