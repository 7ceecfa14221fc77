package root

import (
	"io"

	"github.com/spf13/cobra"

	"hunterline/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			// Engine logs would tear the alt-screen; the board shows results itself.
			svc, cleanup, err := openService(ctx, io.Discard)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
