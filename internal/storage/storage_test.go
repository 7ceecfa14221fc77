package storage

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repos struct {
	hunters interface {
		Load(ctx context.Context) (*Hunter, error)
		Save(ctx context.Context, h *Hunter) error
	}
	quests interface {
		Insert(ctx context.Context, q Quest) error
		Get(ctx context.Context, id string) (*Quest, error)
		List(ctx context.Context) ([]Quest, error)
		ListByStat(ctx context.Context, stat string) ([]Quest, error)
		Update(ctx context.Context, q Quest) (bool, error)
		Delete(ctx context.Context, id string) (bool, error)
	}
	log interface {
		Append(ctx context.Context, e QuestLog) (int64, error)
		Recent(ctx context.Context, limit int) ([]QuestLog, error)
		ByQuest(ctx context.Context, questID string) ([]QuestLog, error)
		Totals(ctx context.Context) (CompletionTotals, error)
	}
}

func openSQLiteRepos(t *testing.T) repos {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repos{hunters: NewHunterRepo(db), quests: NewQuestRepo(db), log: NewQuestLogRepo(db)}
}

func openFileRepos(t *testing.T) repos {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	return repos{hunters: fs.Hunters(), quests: fs.Quests(), log: fs.QuestLog()}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, r repos)) {
	t.Run("sqlite", func(t *testing.T) { fn(t, openSQLiteRepos(t)) })
	t.Run("file", func(t *testing.T) { fn(t, openFileRepos(t)) })
}

func sampleHunter() *Hunter {
	return &Hunter{
		Name: "Player",
		Gold: 320,
		Stats: []StatXP{
			{Name: "Agility", TotalXP: 100},
			{Name: "Domain", TotalXP: 0},
			{Name: "Intelligence", TotalXP: 2200},
			{Name: "Spirit", TotalXP: 55},
			{Name: "Strength", TotalXP: 700},
		},
	}
}

func TestHunterLoadSaveRoundTrip(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repos) {
		ctx := context.Background()

		got, err := r.hunters.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, got, "empty store should report no profile")

		want := sampleHunter()
		require.NoError(t, r.hunters.Save(ctx, want))

		got, err = r.hunters.Load(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, got)

		want.Gold = 10
		want.Stats[4].TotalXP = 1000
		require.NoError(t, r.hunters.Save(ctx, want))
		got, err = r.hunters.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestQuestCRUD(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repos) {
		ctx := context.Background()

		run := Quest{ID: "q-1", Name: "Morning Run", Stat: "Agility", Difficulty: "EASY", XPReward: 100, GoldReward: 20, Description: "Run 5KM"}
		lift := Quest{ID: "q-2", Name: "Leg Day", Stat: "Strength", Difficulty: "HARD", XPReward: 500, GoldReward: 150}
		require.NoError(t, r.quests.Insert(ctx, run))
		require.NoError(t, r.quests.Insert(ctx, lift))

		err := r.quests.Insert(ctx, run)
		assert.True(t, errors.Is(err, ErrDuplicateID), "err=%v", err)

		got, err := r.quests.Get(ctx, "q-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, run, *got)

		missing, err := r.quests.Get(ctx, "nope")
		require.NoError(t, err)
		assert.Nil(t, missing)

		all, err := r.quests.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Quest{run, lift}, all)

		byStat, err := r.quests.ListByStat(ctx, "Strength")
		require.NoError(t, err)
		assert.Equal(t, []Quest{lift}, byStat)

		none, err := r.quests.ListByStat(ctx, "Charisma")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		lift.XPReward = 600
		lift.Description = "heavier"
		ok, err := r.quests.Update(ctx, lift)
		require.NoError(t, err)
		assert.True(t, ok)
		got, err = r.quests.Get(ctx, "q-2")
		require.NoError(t, err)
		assert.Equal(t, lift, *got)

		ok, err = r.quests.Update(ctx, Quest{ID: "ghost", Name: "x"})
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = r.quests.Delete(ctx, "q-1")
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = r.quests.Delete(ctx, "q-1")
		require.NoError(t, err)
		assert.False(t, ok)

		all, err = r.quests.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []Quest{lift}, all)
	})
}

func TestQuestLog(t *testing.T) {
	forEachBackend(t, func(t *testing.T, r repos) {
		ctx := context.Background()
		base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

		entries := []QuestLog{
			{QuestID: "a", QuestName: "A", Stat: "Strength", CompletedAt: base, XPEarned: 100, GoldEarned: 10},
			{QuestID: "b", QuestName: "B", Stat: "Spirit", CompletedAt: base.Add(time.Hour), XPEarned: 50, GoldEarned: 5},
			{QuestID: "a", QuestName: "A", Stat: "Strength", CompletedAt: base.Add(2 * time.Hour), XPEarned: 100, GoldEarned: 10},
		}
		var lastID int64
		for _, e := range entries {
			id, err := r.log.Append(ctx, e)
			require.NoError(t, err)
			assert.Greater(t, id, lastID)
			lastID = id
		}

		recent, err := r.log.Recent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "a", recent[0].QuestID)
		assert.True(t, recent[0].CompletedAt.Equal(base.Add(2*time.Hour)))
		assert.Equal(t, "b", recent[1].QuestID)

		empty, err := r.log.Recent(ctx, 0)
		require.NoError(t, err)
		assert.Empty(t, empty)

		forA, err := r.log.ByQuest(ctx, "a")
		require.NoError(t, err)
		assert.Len(t, forA, 2)

		totals, err := r.log.Totals(ctx)
		require.NoError(t, err)
		assert.Equal(t, CompletionTotals{Count: 3, XP: 250, Gold: 25}, totals)
	})
}

func TestFileStoreFailedWriteKeepsPreviousDocument(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	h := sampleHunter()
	require.NoError(t, fs.Hunters().Save(ctx, h))

	// A read-only data dir makes CreateTemp fail before anything is renamed.
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	changed := sampleHunter()
	changed.Gold = 1
	assert.Error(t, fs.Hunters().Save(ctx, changed))

	got, err := fs.Hunters().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestFileStoreReadsLegacyHunterDocument(t *testing.T) {
	dir := t.TempDir()
	doc := `{
  "name": "Hunter",
  "gold": 5,
  "stats": {
    "Strength": {"name": "Strength", "total_xp": 120},
    "Agility": {"name": "Agility", "total_xp": 0},
    "Intelligence": {"name": "Intelligence", "total_xp": 0},
    "Spirit": {"name": "Spirit", "total_xp": 0},
    "Domain": {"total_xp": 9}
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, hunterFile), []byte(doc), 0o644))

	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	h, err := fs.Hunters().Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, "Hunter", h.Name)
	assert.Equal(t, 5, h.Gold)
	require.Len(t, h.Stats, 5)
	assert.Equal(t, StatXP{Name: "Domain", TotalXP: 9}, h.Stats[1])
	assert.Equal(t, StatXP{Name: "Strength", TotalXP: 120}, h.Stats[4])
}

func TestFileStoreRejectsGarbage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, questsFile), []byte("{not json"), 0o644))
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	_, err = fs.Quests().List(context.Background())
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "twice.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, db.Close())

	db, err = Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestHunterTableIsSingleton(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "single.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx, `INSERT INTO hunter (id, name, gold) VALUES (2, 'second', 0)`)
	assert.Error(t, err)
}

func TestWithTxCommitsOrRollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "tx.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	insert := func(tx *sql.Tx, id string) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO quests (id, name, stat, difficulty, xp_reward, gold_reward) VALUES (?, 'x', 'Spirit', 'DAILY', 1, 1)`, id)
		return err
	}

	boom := errors.New("boom")
	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		require.NoError(t, insert(tx, "rolled-back"))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.NoError(t, WithTx(ctx, db, func(tx *sql.Tx) error { return insert(tx, "kept") }))

	var ids []string
	rows, err := db.QueryContext(ctx, `SELECT id FROM quests ORDER BY seq`)
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"kept"}, ids)
}
