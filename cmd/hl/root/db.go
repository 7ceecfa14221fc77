package root

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"hunterline/internal/config"
	"hunterline/internal/engine"
	"hunterline/internal/storage"
)

func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if globalFlags.store != "" {
		cfg.Store = strings.ToLower(globalFlags.store)
	}
	if globalFlags.dbPath != "" {
		cfg.DBPath = globalFlags.dbPath
	}
	if globalFlags.dataDir != "" {
		cfg.DataDir = globalFlags.dataDir
	}
	return cfg, cfg.Validate()
}

// openStores opens the configured backend. The cleanup func is never nil.
func openStores(ctx context.Context, cfg config.Config) (engine.Stores, func(), error) {
	if cfg.Store == config.StoreFile {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return engine.Stores{}, func() {}, err
		}
		return engine.Stores{Hunters: fs.Hunters(), Quests: fs.Quests(), Log: fs.QuestLog()}, func() {}, nil
	}

	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return engine.Stores{}, func() {}, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return engine.Stores{
		Hunters: storage.NewHunterRepo(db),
		Quests:  storage.NewQuestRepo(db),
		Log:     storage.NewQuestLogRepo(db),
	}, cleanup, nil
}

// commandLogger keeps one-shot commands quiet unless --verbose is set.
func commandLogger(cfg config.Config, w io.Writer, quiet bool) *slog.Logger {
	if quiet && !globalFlags.verbose && cfg.Level() < slog.LevelWarn {
		cfg.LogLevel = "warn"
	}
	return cfg.Logger(w)
}

func openService(ctx context.Context, logOut io.Writer) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	stores, cleanup, err := openStores(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(stores, engine.WithLogger(commandLogger(cfg, logOut, true)))
	return svc, cleanup, nil
}
