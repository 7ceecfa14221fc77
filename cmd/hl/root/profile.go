package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the Hunter profile",
	}
	cmd.AddCommand(newProfileSetCmd())
	return cmd
}

func newProfileSetCmd() *cobra.Command {
	var name string
	var gold int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the Hunter's name and/or gold balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			var in engine.UpdateHunterInput
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("gold") {
				in.Gold = &gold
			}
			if in.Name == nil && in.Gold == nil {
				return errors.New("nothing to set (use --name and/or --gold)")
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.UpdateHunter(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconDone+" Profile updated"), h.Name, ui.Gold.Render(fmt.Sprintf("(%d gold)", h.Gold)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Hunter name")
	cmd.Flags().IntVar(&gold, "gold", 0, "Gold balance (>= 0)")
	return cmd
}
