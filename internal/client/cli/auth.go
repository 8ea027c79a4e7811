package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/client/client"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/spf13/cobra"
)

var errPasswordMismatch = errors.New("passwords do not match")

func (a *App) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := GetPassword(cmd.ErrOrStderr(), "Enter password")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			confirm, err := GetPassword(cmd.ErrOrStderr(), "Repeat password")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(confirm)

			if len(pw) == 0 {
				return errEmptyInput
			}
			if string(pw) != string(confirm) {
				return errPasswordMismatch
			}

			err = a.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				return c.Register(ctx, args[0], pw)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "User created successfully")
			return nil
		},
	}
}

func (a *App) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username>",
		Short: "Log in and print a session token",
		Long: "Log in and print a session token. Export it as " +
			"PASSKEEPER_TOKEN or pass it with --token to later commands.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := GetPassword(cmd.ErrOrStderr(), "Enter password")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(pw)

			var token string
			err = a.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				var err error
				token, err = c.Login(ctx, args[0], pw)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}

func (a *App) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the session token is valid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Token == "" {
				return client.ErrUnauthorized
			}

			var s *client.Session
			err := a.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				var err error
				s, err = c.Verify(ctx)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Token is valid (user %s)\n", s.Username)
			return nil
		},
	}
}
