package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunterline/internal/storage"
)

// flakyHunters wraps a real store and fails Save on demand.
type flakyHunters struct {
	HunterStore
	failSave bool
}

func (f *flakyHunters) Save(ctx context.Context, h *storage.Hunter) error {
	if f.failSave {
		return errors.New("disk full")
	}
	return f.HunterStore.Save(ctx, h)
}

// gatedHunters holds the first Save until release is closed.
type gatedHunters struct {
	HunterStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedHunters) Save(ctx context.Context, h *storage.Hunter) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.HunterStore.Save(ctx, h)
}

type brokenLog struct {
	QuestLogStore
}

func (brokenLog) Append(context.Context, storage.QuestLog) (int64, error) {
	return 0, errors.New("log unavailable")
}

// Crossing a stat threshold reports the level change in the result.
func TestCompleteQuestReportsLevelUpAcrossBoundary(t *testing.T) {
	svc := NewService(sqliteStores(t))
	ctx := context.Background()

	warmup := mustCreateQuest(t, svc, CreateQuestInput{
		Name: "Warmup", Stat: CategoryAgility, Difficulty: DifficultyNormal, XPReward: 450, GoldReward: 1,
	})
	sprint := mustCreateQuest(t, svc, CreateQuestInput{
		Name: "Sprint", Stat: CategoryAgility, Difficulty: DifficultyNormal, XPReward: 250, GoldReward: 1,
	})

	first, err := svc.CompleteQuest(ctx, warmup.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, first.LevelAfter)

	res, err := svc.CompleteQuest(ctx, sprint.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, res.LevelBefore)
	assert.Equal(t, 5, res.LevelAfter)
	assert.True(t, res.LeveledUp)

	h, err := svc.Hunter(ctx)
	require.NoError(t, err)
	agi, _ := h.Stat(CategoryAgility)
	assert.Equal(t, 700, agi.TotalXP)
	assert.Equal(t, 2, h.Gold)
}

func TestCompleteQuestNoLevelUp(t *testing.T) {
	svc := NewService(fileStores(t))
	ctx := context.Background()

	q := mustCreateQuest(t, svc, CreateQuestInput{
		Name: "Meditate", Stat: CategorySpirit, Difficulty: DifficultyDaily, XPReward: 50, GoldReward: 10,
	})
	res, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, res.LeveledUp)
	assert.Equal(t, 1, res.LevelBefore)
	assert.Equal(t, 1, res.LevelAfter)
	assert.Equal(t, 1, res.GlobalLevelAfter)
}

func TestCompleteQuestSaveFailureKeepsStoredProfile(t *testing.T) {
	stores := sqliteStores(t)
	hunters := &flakyHunters{HunterStore: stores.Hunters}
	stores.Hunters = hunters
	svc := NewService(stores)
	ctx := context.Background()

	q := mustCreateQuest(t, svc, legDay())
	_, err := svc.Hunter(ctx)
	require.NoError(t, err)

	hunters.failSave = true
	res, err := svc.CompleteQuest(ctx, q.ID)
	require.Error(t, err)
	assert.Nil(t, res)

	var pe *PersistError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "save hunter", pe.Op)

	hunters.failSave = false
	h, err := svc.Hunter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Gold)
	assert.Equal(t, 0, h.GlobalXP())

	logs, err := svc.RecentCompletions(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestCompleteQuestLogFailureStillApplies(t *testing.T) {
	stores := sqliteStores(t)
	stores.Log = brokenLog{QuestLogStore: stores.Log}
	svc := NewService(stores)
	ctx := context.Background()

	q := mustCreateQuest(t, svc, legDay())
	res, err := svc.CompleteQuest(ctx, q.ID)
	require.NoError(t, err)
	assert.False(t, res.Logged)

	h, err := svc.Hunter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, h.Gold)
}

func TestCompleteQuestRejectsUnknownStoredStat(t *testing.T) {
	stores := sqliteStores(t)
	svc := NewService(stores)
	ctx := context.Background()

	require.NoError(t, stores.Quests.Insert(ctx, storage.Quest{
		ID: "legacy", Name: "Old quest", Stat: "Charisma", Difficulty: "EASY", XPReward: 100, GoldReward: 20,
	}))

	_, err := svc.CompleteQuest(ctx, "legacy")
	assert.True(t, IsValidation(err), "err=%v", err)

	h, err := svc.Hunter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, h.GlobalXP())
}

func TestCompleteQuestZeroGoldRecordPaysNoGold(t *testing.T) {
	stores := fileStores(t)
	svc := NewService(stores)
	ctx := context.Background()

	require.NoError(t, stores.Quests.Insert(ctx, storage.Quest{
		ID: "free", Name: "Stretch", Stat: "Domain", Difficulty: "Daily", XPReward: 30, GoldReward: 0,
	}))

	res, err := svc.CompleteQuest(ctx, "free")
	require.NoError(t, err)
	assert.Equal(t, 0, res.GoldGained)
	assert.Equal(t, 0, res.TotalGold)
	assert.Equal(t, 30, res.XPGained)
}

func TestCompletionLogQueries(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
			svc := NewService(b.open(t), WithClock(func() time.Time {
				clock = clock.Add(time.Minute)
				return clock
			}))
			ctx := context.Background()

			a := mustCreateQuest(t, svc, legDay())
			c := mustCreateQuest(t, svc, CreateQuestInput{
				Name: "Read", Stat: CategoryIntelligence, Difficulty: DifficultyEasy, XPReward: 100, GoldReward: 20,
			})
			for _, id := range []string{a.ID, c.ID, a.ID} {
				_, err := svc.CompleteQuest(ctx, id)
				require.NoError(t, err)
			}

			recent, err := svc.RecentCompletions(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, a.ID, recent[0].QuestID)
			assert.Equal(t, c.ID, recent[1].QuestID)
			assert.True(t, recent[0].CompletedAt.After(recent[1].CompletedAt))

			forA, err := svc.CompletionsForQuest(ctx, a.ID)
			require.NoError(t, err)
			assert.Len(t, forA, 2)

			totals, err := svc.CompletionTotals(ctx)
			require.NoError(t, err)
			assert.Equal(t, CompletionTotals{Count: 3, XP: 1100, Gold: 320}, totals)

			// History outlives the quest definition.
			_, err = svc.DeleteQuest(ctx, a.ID)
			require.NoError(t, err)
			forA, err = svc.CompletionsForQuest(ctx, a.ID)
			require.NoError(t, err)
			assert.Len(t, forA, 2)
			assert.Equal(t, "Leg Day", forA[0].QuestName)
		})
	}
}

func TestDefaultProfileCreationDoesNotOverwriteCompletion(t *testing.T) {
	stores := sqliteStores(t)
	gate := &gatedHunters{HunterStore: stores.Hunters, entered: make(chan struct{}), release: make(chan struct{})}
	stores.Hunters = gate
	svc := NewService(stores)
	ctx := context.Background()
	q := mustCreateQuest(t, svc, legDay())

	readDone := make(chan error, 1)
	go func() {
		_, err := svc.Hunter(ctx)
		readDone <- err
	}()
	<-gate.entered

	completeDone := make(chan error, 1)
	go func() {
		_, err := svc.CompleteQuest(ctx, q.ID)
		completeDone <- err
	}()
	time.Sleep(50 * time.Millisecond)
	close(gate.release)

	require.NoError(t, <-readDone)
	require.NoError(t, <-completeDone)

	h, err := svc.Profiles().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150, h.Gold)
	str, _ := h.Stat(CategoryStrength)
	assert.Equal(t, 500, str.TotalXP)
}
