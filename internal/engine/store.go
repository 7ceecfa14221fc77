package engine

import (
	"context"

	"hunterline/internal/storage"
)

// HunterStore persists the single profile as a whole. Load returns nil, nil
// when nothing has been saved yet; Save replaces the stored record entirely
// or leaves it unchanged.
type HunterStore interface {
	Load(ctx context.Context) (*storage.Hunter, error)
	Save(ctx context.Context, h *storage.Hunter) error
}

// QuestStore is pure durability: it does not validate what it stores.
type QuestStore interface {
	Insert(ctx context.Context, q storage.Quest) error
	Get(ctx context.Context, id string) (*storage.Quest, error)
	List(ctx context.Context) ([]storage.Quest, error)
	ListByStat(ctx context.Context, stat string) ([]storage.Quest, error)
	Update(ctx context.Context, q storage.Quest) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type QuestLogStore interface {
	Append(ctx context.Context, e storage.QuestLog) (int64, error)
	Recent(ctx context.Context, limit int) ([]storage.QuestLog, error)
	ByQuest(ctx context.Context, questID string) ([]storage.QuestLog, error)
	Totals(ctx context.Context) (storage.CompletionTotals, error)
}

// Stores groups the backends a Service needs.
type Stores struct {
	Hunters HunterStore
	Quests  QuestStore
	Log     QuestLogStore
}

var (
	_ HunterStore   = (*storage.HunterRepo)(nil)
	_ HunterStore   = (*storage.FileHunterStore)(nil)
	_ QuestStore    = (*storage.QuestRepo)(nil)
	_ QuestStore    = (*storage.FileQuestStore)(nil)
	_ QuestLogStore = (*storage.QuestLogRepo)(nil)
	_ QuestLogStore = (*storage.FileQuestLogStore)(nil)
)
