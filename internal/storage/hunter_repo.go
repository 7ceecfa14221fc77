package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// hunterRowID is the only row the hunter table ever holds.
const hunterRowID = 1

type HunterRepo struct {
	db *sql.DB
}

func NewHunterRepo(db *sql.DB) *HunterRepo {
	return &HunterRepo{db: db}
}

// Load returns the stored profile, or nil when none has been saved yet.
func (r *HunterRepo) Load(ctx context.Context) (*Hunter, error) {
	row := r.db.QueryRowContext(ctx, `SELECT name, gold FROM hunter WHERE id = ?`, hunterRowID)

	var h Hunter
	if err := row.Scan(&h.Name, &h.Gold); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("hunter get: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT name, total_xp FROM hunter_stats ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("hunter stats list: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s StatXP
		if err := rows.Scan(&s.Name, &s.TotalXP); err != nil {
			return nil, fmt.Errorf("hunter stats scan: %w", err)
		}
		h.Stats = append(h.Stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hunter stats rows: %w", err)
	}
	return &h, nil
}

// Save replaces the whole profile (row and every stat) in one transaction.
func (r *HunterRepo) Save(ctx context.Context, h *Hunter) error {
	if h == nil {
		return errors.New("hunter save: nil profile")
	}
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO hunter (id, name, gold) VALUES (?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET name = excluded.name, gold = excluded.gold
		`, hunterRowID, h.Name, h.Gold); err != nil {
			return fmt.Errorf("hunter upsert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM hunter_stats`); err != nil {
			return fmt.Errorf("hunter stats clear: %w", err)
		}
		for _, s := range h.Stats {
			if _, err := tx.ExecContext(ctx, `INSERT INTO hunter_stats (name, total_xp) VALUES (?, ?)`, s.Name, s.TotalXP); err != nil {
				return fmt.Errorf("hunter stats insert %s: %w", s.Name, err)
			}
		}
		return nil
	})
}
