package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/client/client"
	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/spf13/cobra"
)

func (a *App) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List vault entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Token == "" {
				return client.ErrUnauthorized
			}

			var list []client.Entry
			err := a.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				var err error
				list, err = c.ListEntries(ctx)
				return err
			})
			if err != nil {
				return err
			}

			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TITLE\tPASSWORD\tCREATED")
			for _, e := range list {
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Title, e.Password, e.CreatedAt.Local().Format(time.DateTime))
			}
			return w.Flush()
		},
	}
}

func (a *App) addCommand() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Token == "" {
				return client.ErrUnauthorized
			}
			title = strings.TrimSpace(title)
			if title == "" {
				return fmt.Errorf("--title: %w", errEmptyInput)
			}

			secret, err := GetPassword(cmd.ErrOrStderr(), "Enter secret")
			if err != nil {
				return err
			}
			defer common.WipeByteArray(secret)

			err = a.withClient(cmd.Context(), func(ctx context.Context, c client.Client) error {
				_, err := c.AddEntry(ctx, title, secret)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password saved")
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
