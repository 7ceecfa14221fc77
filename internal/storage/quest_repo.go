package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateID is returned by Insert when a quest with the same id exists.
var ErrDuplicateID = errors.New("duplicate quest id")

const questColumns = `id, name, stat, difficulty, xp_reward, gold_reward, description`

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

func (r *QuestRepo) Insert(ctx context.Context, q Quest) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (`+questColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, q.ID, q.Name, q.Stat, q.Difficulty, q.XPReward, q.GoldReward, q.Description)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("quest insert %s: %w", q.ID, ErrDuplicateID)
		}
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

// Get returns the quest with the given id, or nil when it does not exist.
func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+questColumns+` FROM quests WHERE id = ?`, id)
	q, err := scanQuest(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("quest get: %w", err)
	}
	return &q, nil
}

func (r *QuestRepo) List(ctx context.Context) ([]Quest, error) {
	return r.query(ctx, "quest list", `SELECT `+questColumns+` FROM quests ORDER BY seq ASC`)
}

func (r *QuestRepo) ListByStat(ctx context.Context, stat string) ([]Quest, error) {
	return r.query(ctx, "quest list by stat", `SELECT `+questColumns+` FROM quests WHERE stat = ? ORDER BY seq ASC`, stat)
}

// Update replaces the stored quest. It reports false when the id is unknown.
func (r *QuestRepo) Update(ctx context.Context, q Quest) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE quests
		SET name = ?, stat = ?, difficulty = ?, xp_reward = ?, gold_reward = ?, description = ?
		WHERE id = ?
	`, q.Name, q.Stat, q.Difficulty, q.XPReward, q.GoldReward, q.Description, q.ID)
	if err != nil {
		return false, fmt.Errorf("quest update: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("quest update rows affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes the quest and reports whether anything was removed.
func (r *QuestRepo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quests WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("quest delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("quest delete rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *QuestRepo) query(ctx context.Context, op string, query string, args ...any) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := []Quest{}
	for rows.Next() {
		q, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", op, err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s rows: %w", op, err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuest(row scanner) (Quest, error) {
	var q Quest
	err := row.Scan(&q.ID, &q.Name, &q.Stat, &q.Difficulty, &q.XPReward, &q.GoldReward, &q.Description)
	return q, err
}
