package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		// Single-row table: the CHECK keeps the profile a singleton.
		`CREATE TABLE IF NOT EXISTS hunter (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			name TEXT NOT NULL,
			gold INTEGER NOT NULL DEFAULT 0 CHECK (gold >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS hunter_stats (
			name TEXT PRIMARY KEY,
			total_xp INTEGER NOT NULL DEFAULT 0 CHECK (total_xp >= 0)
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			stat TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			xp_reward INTEGER NOT NULL,
			gold_reward INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);`,
		// Append-only; quest_id is not a foreign key so history survives quest deletion.
		`CREATE TABLE IF NOT EXISTS quest_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id TEXT NOT NULL,
			quest_name TEXT NOT NULL DEFAULT '',
			stat TEXT NOT NULL,
			completed_at DATETIME NOT NULL,
			xp_earned INTEGER NOT NULL,
			gold_earned INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_stat ON quests(stat);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_log_quest_id_completed_at ON quest_log(quest_id, completed_at);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Columns added after the first release (ignore if already exists)
	alterStmts := []string{
		`ALTER TABLE quest_log ADD COLUMN quest_name TEXT NOT NULL DEFAULT '';`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
