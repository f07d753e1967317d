package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cityboard/internal/domain"
)

// show: one load cycle printed as terminal cards.
func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Fetch the cities and print them as cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := appCtx.ShowTerminal(cmd.Context(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("print cards: %w", err)
			}
			if res.State == domain.StateError {
				return errLoadFailed
			}
			return nil
		},
	}
}
