package root

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"hunterline/internal/engine"
	"hunterline/internal/ui"
)

func newQuestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "quest",
		Aliases: []string{"q"},
		Short:   "Manage the quest catalog",
	}
	cmd.AddCommand(
		newQuestAddCmd(),
		newQuestListCmd(),
		newQuestShowCmd(),
		newQuestEditCmd(),
		newQuestRmCmd(),
	)
	return cmd
}

func exactlyOne(what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New(what + " is required")
		}
		return nil
	}
}

func newQuestAddCmd() *cobra.Command {
	var draft engine.QuestDraft
	var xp, gold int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a quest",
		Args:  exactlyOne("name"),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Name = args[0]
			if cmd.Flags().Changed("xp") {
				draft.XPReward = &xp
			}
			if cmd.Flags().Changed("gold") {
				draft.GoldReward = &gold
			}
			in, err := draft.Input()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.CreateQuest(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), q.Name, ui.Muted.Render(q.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&draft.Stat, "stat", "s", "", "Stat (Strength|Agility|Intelligence|Spirit|Domain)")
	cmd.Flags().StringVarP(&draft.Difficulty, "diff", "d", "NORMAL", "Difficulty (DAILY|EASY|NORMAL|HARD|EPIC|LEGENDARY)")
	cmd.Flags().IntVar(&xp, "xp", 0, "XP reward (default: tier suggestion)")
	cmd.Flags().IntVar(&gold, "gold", 0, "Gold reward (default: tier suggestion)")
	cmd.Flags().StringVar(&draft.Description, "desc", "", "Description")
	_ = cmd.MarkFlagRequired("stat")
	return cmd
}

func newQuestListCmd() *cobra.Command {
	var stat, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quests, optionally for one stat or matching a name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := svc.ListQuests(ctx, stat)
			if err != nil {
				return err
			}
			quests = engine.SearchQuests(quests, search)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconQuest, fmt.Sprintf("Quests (%d)", len(quests))))
			if len(quests) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none)"))
				return nil
			}
			for _, q := range quests {
				printQuestLine(out, q)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&stat, "stat", "s", "", "Only quests for this stat")
	cmd.Flags().StringVar(&search, "search", "", "Fuzzy match on quest name")
	return cmd
}

func printQuestLine(out io.Writer, q engine.Quest) {
	fmt.Fprintf(out, "- %s %s %s %s %s\n",
		ui.StatIcon(q.Stat), q.Name, ui.DifficultyText(q.Difficulty),
		ui.Muted.Render(fmt.Sprintf("+%dxp +%dg", q.XPReward, q.GoldReward)),
		ui.Muted.Render(q.ID))
}

func newQuestShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one quest and its completions",
		Args:  exactlyOne("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.GetQuest(ctx, args[0])
			if err != nil {
				return err
			}
			history, err := svc.CompletionsForQuest(ctx, q.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.StatIcon(q.Stat), q.Name))
			fmt.Fprintln(out, ui.LabelValue("ID", q.ID))
			fmt.Fprintln(out, ui.LabelValue("Stat", q.Stat))
			fmt.Fprintln(out, ui.LabelValue("Difficulty", ui.DifficultyText(q.Difficulty)))
			fmt.Fprintln(out, ui.LabelValue("Rewards", fmt.Sprintf("%d XP, %d gold", q.XPReward, q.GoldReward)))
			if q.Description != "" {
				fmt.Fprintln(out, ui.LabelValue("Description", q.Description))
			}
			fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d times", len(history))))
			return nil
		},
	}
	return cmd
}

func newQuestEditCmd() *cobra.Command {
	var (
		name, stat, diff, desc string
		xp, gold               int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a quest",
		Args:  exactlyOne("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in engine.UpdateQuestInput
			flags := cmd.Flags()
			if flags.Changed("name") {
				in.Name = &name
			}
			if flags.Changed("stat") {
				c, err := engine.ParseCategory(stat)
				if err != nil {
					return err
				}
				in.Stat = &c
			}
			if flags.Changed("diff") {
				d, err := engine.ParseDifficulty(diff)
				if err != nil {
					return err
				}
				in.Difficulty = &d
			}
			if flags.Changed("xp") {
				in.XPReward = &xp
			}
			if flags.Changed("gold") {
				in.GoldReward = &gold
			}
			if flags.Changed("desc") {
				in.Description = &desc
			}

			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			q, err := svc.UpdateQuest(ctx, args[0], in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated")+" ")
			printQuestLine(cmd.OutOrStdout(), *q)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&stat, "stat", "s", "", "New stat")
	cmd.Flags().StringVarP(&diff, "diff", "d", "", "New difficulty")
	cmd.Flags().IntVar(&xp, "xp", 0, "New XP reward")
	cmd.Flags().IntVar(&gold, "gold", 0, "New gold reward")
	cmd.Flags().StringVar(&desc, "desc", "", "New description")
	return cmd
}

func newQuestRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a quest (its completion log is kept)",
		Args:    exactlyOne("id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc, cleanup, err := openService(ctx, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := svc.DeleteQuest(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconInfo+" no quest "+args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconTrash+" Deleted")+" "+ui.Muted.Render(args[0]))
			return nil
		},
	}
	return cmd
}
