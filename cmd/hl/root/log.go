package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

func newLogCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show recent quest completions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := svc.RecentCompletions(ctx, limit)
			if err != nil {
				return err
			}
			totals, err := svc.CompletionTotals(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Quest Log"))
			if len(entries) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(empty)"))
			}
			for _, e := range entries {
				fmt.Fprintf(out, "- %s %s %s\n",
					ui.Muted.Render(e.CompletedAt.Local().Format("2006-01-02 15:04")),
					e.QuestName,
					ui.Muted.Render(fmt.Sprintf("+%d %s XP, +%d gold", e.XPEarned, e.Stat, e.GoldEarned)))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Totals", fmt.Sprintf("%d completions, %d XP, %d gold", totals.Count, totals.XP, totals.Gold)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")
	return cmd
}
