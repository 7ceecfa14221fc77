package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type QuestLogRepo struct {
	db *sql.DB
}

func NewQuestLogRepo(db *sql.DB) *QuestLogRepo {
	return &QuestLogRepo{db: db}
}

func (r *QuestLogRepo) Append(ctx context.Context, e QuestLog) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_log (quest_id, quest_name, stat, completed_at, xp_earned, gold_earned)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.QuestID, e.QuestName, e.Stat, e.CompletedAt.UTC(), e.XPEarned, e.GoldEarned)
	if err != nil {
		return 0, fmt.Errorf("quest log insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("quest log last insert id: %w", err)
	}
	return id, nil
}

// Recent returns up to limit entries, newest first.
func (r *QuestLogRepo) Recent(ctx context.Context, limit int) ([]QuestLog, error) {
	if limit <= 0 {
		return []QuestLog{}, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quest_id, quest_name, stat, completed_at, xp_earned, gold_earned
		FROM quest_log
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("quest log recent: %w", err)
	}
	return scanQuestLogs(rows)
}

// ByQuest returns every completion of one quest, newest first.
func (r *QuestLogRepo) ByQuest(ctx context.Context, questID string) ([]QuestLog, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quest_id, quest_name, stat, completed_at, xp_earned, gold_earned
		FROM quest_log
		WHERE quest_id = ?
		ORDER BY completed_at DESC, id DESC
	`, questID)
	if err != nil {
		return nil, fmt.Errorf("quest log by quest: %w", err)
	}
	return scanQuestLogs(rows)
}

func (r *QuestLogRepo) Totals(ctx context.Context) (CompletionTotals, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(xp_earned), 0), COALESCE(SUM(gold_earned), 0)
		FROM quest_log
	`)
	var t CompletionTotals
	if err := row.Scan(&t.Count, &t.XP, &t.Gold); err != nil {
		return CompletionTotals{}, fmt.Errorf("quest log totals: %w", err)
	}
	return t, nil
}

func scanQuestLogs(rows *sql.Rows) ([]QuestLog, error) {
	defer rows.Close()

	out := []QuestLog{}
	for rows.Next() {
		var e QuestLog
		if err := rows.Scan(&e.ID, &e.QuestID, &e.QuestName, &e.Stat, &e.CompletedAt, &e.XPEarned, &e.GoldEarned); err != nil {
			return nil, fmt.Errorf("quest log scan: %w", err)
		}
		e.CompletedAt = e.CompletedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest log rows: %w", err)
	}
	return out, nil
}
