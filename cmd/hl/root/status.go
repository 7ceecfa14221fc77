package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the Hunter's level, gold and stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.Hunter(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			xp := h.GlobalXP()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Hunter Status"))
			fmt.Fprintln(out, ui.LabelValue("Name", h.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", h.GlobalLevel()))
			fmt.Fprintln(out, ui.LabelValue("Total XP", fmt.Sprintf("%d %s %s", xp, ui.XPBar(xp, 20), ui.Muted.Render(fmt.Sprintf("(%d to next)", h.GlobalXPToNextLevel())))))
			fmt.Fprintln(out, ui.LabelValue("Gold", ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconGold, h.Gold))))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			for _, s := range h.Stats() {
				fmt.Fprintf(out, "- %s %-12s lvl %-2d %s %s\n",
					ui.StatIcon(s.Category), s.Name(), s.Level(), ui.XPBar(s.TotalXP, 14),
					ui.Muted.Render(fmt.Sprintf("xp %d, %d to next", s.TotalXP, s.XPToNextLevel())))
			}

			totals, err := svc.CompletionTotals(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Quests completed", totals.Count))

			achievements := engine.Achievements(h, totals)
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements (%d/%d)", ui.IconTrophy, engine.CountEarned(achievements), len(achievements))))
			for _, a := range achievements {
				if a.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", a.Icon, a.Name, ui.Muted.Render(a.Description))
				}
			}
			return nil
		},
	}

	return cmd
}
