package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"cityboard/internal/atomicfile"
	"cityboard/internal/domain"
	"cityboard/internal/loader"
)

var outPath string

// render: one load cycle written as an HTML page.
func renderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the cities and write the HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			var res loader.Result
			write := func(out io.Writer) error {
				var err error
				res, err = appCtx.RenderPage(cmd.Context(), out)
				return err
			}

			var err error
			if outPath != "" {
				err = atomicfile.Write(outPath, 0o644, write)
			} else {
				err = write(cmd.OutOrStdout())
			}
			if err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			if res.State == domain.StateError {
				return errLoadFailed
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the page to this file (replaced atomically) instead of stdout")
	return cmd
}
