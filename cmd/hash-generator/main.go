// Command hash-generator prints a bcrypt hash suitable for
// STUDIOUS_AUTH_PASSWORD_HASH.
package main

import (
	"fmt"
	"os"

	"github.com/phrazzld/studious/internal/service/auth"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:          "hash-generator <password>...",
		Short:        "Print bcrypt hashes for sign-in passwords",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
				return fmt.Errorf("cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
			}
			for _, password := range args {
				hash, err := auth.HashPassword(password, cost)
				if err != nil {
					return fmt.Errorf("failed to hash password: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), hash)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}
