package root

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hunterline/internal/ui"
)

const Version = "0.1.0"

// Persistent flags override the HL_* environment.
var globalFlags struct {
	store   string
	dbPath  string
	dataDir string
	verbose bool
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hl",
		Short:         "Hunterline: level up your stats by completing quests",
		Long:          "Hunterline tracks a single Hunter's five stats, gold and quest catalog, with SQLite or JSON file storage.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := cmd.PersistentFlags()
	pf.StringVar(&globalFlags.store, "store", "", "Storage backend (sqlite|file), overrides HL_STORE")
	pf.StringVar(&globalFlags.dbPath, "db", "", "SQLite database path, overrides HL_DB_PATH")
	pf.StringVar(&globalFlags.dataDir, "data-dir", "", "JSON data directory, overrides HL_DATA_DIR")
	pf.BoolVarP(&globalFlags.verbose, "verbose", "v", false, "Log engine events to stderr")

	cmd.AddCommand(
		newStatusCmd(),
		newProfileCmd(),
		newQuestCmd(),
		newDoCmd(),
		newLogCmd(),
		newImportCmd(),
		newBoardCmd(),
		newServeCmd(),
	)
	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
