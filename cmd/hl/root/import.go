package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/catalog"
	"hunterline/internal/ui"
)

func newImportCmd() *cobra.Command {
	var starter bool

	cmd := &cobra.Command{
		Use:   "import [pack.yaml|pack.toml]",
		Short: "Add every quest from a YAML or TOML quest pack",
		Args: func(cmd *cobra.Command, args []string) error {
			if starter != (len(args) == 0) {
				return errors.New("give exactly one of a pack file or --starter")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var pack *catalog.Pack
			var err error
			if starter {
				pack, err = catalog.Starter()
			} else {
				pack, err = catalog.LoadFile(args[0])
			}
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := catalog.Import(ctx, svc, pack)
			out := cmd.OutOrStdout()
			for _, q := range res.Created {
				fmt.Fprint(out, ui.Good.Render(ui.IconPlus)+" ")
				printQuestLine(out, q)
			}
			for _, f := range res.Failed {
				fmt.Fprintf(out, "%s entry %d (%s): %v\n", ui.Warn.Render(ui.IconWarn+" skipped"), f.Index, f.Name, f.Err)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.LabelValue("Imported", fmt.Sprintf("%d created, %d skipped", len(res.Created), len(res.Failed))))
			return nil
		},
	}
	cmd.Flags().BoolVar(&starter, "starter", false, "Import the built-in starter pack")
	return cmd
}
