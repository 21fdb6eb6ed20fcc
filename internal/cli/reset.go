package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewResetCmd wipes every stored credential and cache, both user and admin.
func NewResetCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear all stored session state",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newApp(*configPath)
			if err != nil {
				return err
			}
			appCtx.session.ClearAll()
			fmt.Fprintln(cmd.OutOrStdout(), "session state cleared")
			return nil
		},
	}
}
