package root

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a quest and collect its rewards",
		Args:  exactlyOne("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			printCompletion(cmd.OutOrStdout(), res)
			return nil
		},
	}

	return cmd
}

func printCompletion(out io.Writer, res *engine.CompleteResult) {
	fmt.Fprintf(out, "%s %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), res.QuestName,
		ui.Muted.Render(fmt.Sprintf("(+%d %s XP, +%d gold)", res.XPGained, res.Stat, res.GoldGained)))
	fmt.Fprintln(out, ui.LabelValue(res.Stat.String(), fmt.Sprintf("lvl %d → %d", res.LevelBefore, res.LevelAfter)))
	if res.LeveledUp {
		fmt.Fprintln(out, ui.IconBolt+" "+ui.BadgeLevelUp)
	}
	if res.GlobalLevelAfter > res.GlobalLevelBefore {
		fmt.Fprintln(out, ui.IconTrophy+" "+ui.Gold.Render(fmt.Sprintf("Hunter level %d → %d", res.GlobalLevelBefore, res.GlobalLevelAfter)))
	}
	fmt.Fprintln(out, ui.LabelValue("Gold", res.TotalGold))
	if !res.Logged {
		fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" rewards saved, but the quest log entry could not be written"))
	}
}
