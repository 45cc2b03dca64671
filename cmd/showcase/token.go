package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/showcase/internal/app"
	"github.com/five82/showcase/internal/credentials"
)

func newTokenCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored CMS session token",
	}

	open := func(cmd *cobra.Command) (*credentials.Store, error) {
		cfg, err := app.LoadConfig(flags.options(cmd))
		if err != nil {
			return nil, err
		}
		return credentials.NewStore(cfg.CredentialsPath)
	}

	setCmd := &cobra.Command{
		Use:   "set [token]",
		Short: "Store a session token (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read token: %w", err)
				}
				token = line
			}
			if err := store.Save(strings.TrimSpace(token)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "token saved to %s\n", store.Path())
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token cleared")
			return nil
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether a session token is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := open(cmd)
			if err != nil {
				return err
			}
			token, err := store.Token()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:    %s\n", store.Path())
			if token == "" {
				fmt.Fprintln(out, "token:   none")
				return nil
			}
			fmt.Fprintln(out, "token:   present")

			claims, err := credentials.Inspect(token)
			if errors.Is(err, credentials.ErrNotJWT) {
				fmt.Fprintln(out, "format:  opaque")
				return nil
			}
			if err != nil {
				return err
			}
			if claims.Subject != "" {
				fmt.Fprintf(out, "subject: %s\n", claims.Subject)
			}
			if !claims.ExpiresAt.IsZero() {
				state := "valid"
				if claims.Expired(time.Now()) {
					state = "expired"
				}
				fmt.Fprintf(out, "expires: %s (%s)\n", claims.ExpiresAt.Local().Format(time.RFC3339), state)
			}
			return nil
		},
	}

	cmd.AddCommand(setCmd, clearCmd, statusCmd)
	return cmd
}
