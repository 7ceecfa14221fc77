package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

const (
	hunterFile   = "hunter.json"
	questsFile   = "quests.json"
	questLogFile = "quest_log.json"
)

// FileStore keeps the profile, catalog and log as JSON documents in one
// directory. Every write replaces the whole document via rename, so a failed
// write leaves the previous document intact.
type FileStore struct {
	dir string

	hunterMu sync.Mutex
	questsMu sync.Mutex
	logMu    sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) Hunters() *FileHunterStore { return &FileHunterStore{s: s} }
func (s *FileStore) Quests() *FileQuestStore { return &FileQuestStore{s: s} }
func (s *FileStore) QuestLog() *FileQuestLogStore { return &FileQuestLogStore{s: s} }
func (s *FileStore) path(name string) string { return filepath.Join(s.dir, name) }

// On-disk shape of hunter.json: stats keyed by category name.
type fileHunter struct {
	Name  string            `json:"name"`
	Gold  int               `json:"gold"`
	Stats map[string]StatXP `json:"stats"`
}

type FileHunterStore struct{ s *FileStore }

func (f *FileHunterStore) Load(ctx context.Context) (*Hunter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.s.hunterMu.Lock()
	defer f.s.hunterMu.Unlock()

	var doc fileHunter
	ok, err := readJSON(f.s.path(hunterFile), &doc)
	if err != nil {
		return nil, fmt.Errorf("hunter load: %w", err)
	}
	if !ok {
		return nil, nil
	}

	h := &Hunter{Name: doc.Name, Gold: doc.Gold}
	for key, st := range doc.Stats {
		name := st.Name
		if name == "" {
			name = key
		}
		h.Stats = append(h.Stats, StatXP{Name: name, TotalXP: st.TotalXP})
	}
	sort.Slice(h.Stats, func(i, j int) bool { return h.Stats[i].Name < h.Stats[j].Name })
	return h, nil
}

func (f *FileHunterStore) Save(ctx context.Context, h *Hunter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if h == nil {
		return errors.New("hunter save: nil profile")
	}
	f.s.hunterMu.Lock()
	defer f.s.hunterMu.Unlock()

	doc := fileHunter{Name: h.Name, Gold: h.Gold, Stats: make(map[string]StatXP, len(h.Stats))}
	for _, st := range h.Stats {
		doc.Stats[st.Name] = st
	}
	if err := writeJSONAtomic(f.s.path(hunterFile), doc); err != nil {
		return fmt.Errorf("hunter save: %w", err)
	}
	return nil
}

type FileQuestStore struct{ s *FileStore }

func (f *FileQuestStore) load() ([]Quest, error) {
	var quests []Quest
	if _, err := readJSON(f.s.path(questsFile), &quests); err != nil {
		return nil, fmt.Errorf("quests load: %w", err)
	}
	if quests == nil {
		quests = []Quest{}
	}
	return quests, nil
}

func (f *FileQuestStore) save(quests []Quest) error {
	if err := writeJSONAtomic(f.s.path(questsFile), quests); err != nil {
		return fmt.Errorf("quests save: %w", err)
	}
	return nil
}

func (f *FileQuestStore) Insert(ctx context.Context, q Quest) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.s.questsMu.Lock()
	defer f.s.questsMu.Unlock()

	quests, err := f.load()
	if err != nil {
		return err
	}
	for i := range quests {
		if quests[i].ID == q.ID {
			return fmt.Errorf("quest insert %s: %w", q.ID, ErrDuplicateID)
		}
	}
	return f.save(append(quests, q))
}

func (f *FileQuestStore) Get(ctx context.Context, id string) (*Quest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.s.questsMu.Lock()
	defer f.s.questsMu.Unlock()

	quests, err := f.load()
	if err != nil {
		return nil, err
	}
	for i := range quests {
		if quests[i].ID == id {
			q := quests[i]
			return &q, nil
		}
	}
	return nil, nil
}

func (f *FileQuestStore) List(ctx context.Context) ([]Quest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.s.questsMu.Lock()
	defer f.s.questsMu.Unlock()
	return f.load()
}

func (f *FileQuestStore) ListByStat(ctx context.Context, stat string) ([]Quest, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []Quest{}
	for _, q := range all {
		if q.Stat == stat {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *FileQuestStore) Update(ctx context.Context, q Quest) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	f.s.questsMu.Lock()
	defer f.s.questsMu.Unlock()

	quests, err := f.load()
	if err != nil {
		return false, err
	}
	for i := range quests {
		if quests[i].ID == q.ID {
			quests[i] = q
			return true, f.save(quests)
		}
	}
	return false, nil
}

func (f *FileQuestStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	f.s.questsMu.Lock()
	defer f.s.questsMu.Unlock()

	quests, err := f.load()
	if err != nil {
		return false, err
	}
	for i := range quests {
		if quests[i].ID == id {
			quests = append(quests[:i], quests[i+1:]...)
			return true, f.save(quests)
		}
	}
	return false, nil
}

type FileQuestLogStore struct{ s *FileStore }

func (f *FileQuestLogStore) load() ([]QuestLog, error) {
	var entries []QuestLog
	if _, err := readJSON(f.s.path(questLogFile), &entries); err != nil {
		return nil, fmt.Errorf("quest log load: %w", err)
	}
	return entries, nil
}

func (f *FileQuestLogStore) Append(ctx context.Context, e QuestLog) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	f.s.logMu.Lock()
	defer f.s.logMu.Unlock()

	entries, err := f.load()
	if err != nil {
		return 0, err
	}
	var maxID int64
	for _, x := range entries {
		if x.ID > maxID {
			maxID = x.ID
		}
	}
	e.ID = maxID + 1
	e.CompletedAt = e.CompletedAt.UTC()
	if err := writeJSONAtomic(f.s.path(questLogFile), append(entries, e)); err != nil {
		return 0, fmt.Errorf("quest log append: %w", err)
	}
	return e.ID, nil
}

func (f *FileQuestLogStore) Recent(ctx context.Context, limit int) ([]QuestLog, error) {
	entries, err := f.sorted(ctx)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []QuestLog{}, nil
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (f *FileQuestLogStore) ByQuest(ctx context.Context, questID string) ([]QuestLog, error) {
	entries, err := f.sorted(ctx)
	if err != nil {
		return nil, err
	}
	out := []QuestLog{}
	for _, e := range entries {
		if e.QuestID == questID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *FileQuestLogStore) Totals(ctx context.Context) (CompletionTotals, error) {
	entries, err := f.sorted(ctx)
	if err != nil {
		return CompletionTotals{}, err
	}
	var t CompletionTotals
	for _, e := range entries {
		t.Count++
		t.XP += e.XPEarned
		t.Gold += e.GoldEarned
	}
	return t, nil
}

// sorted returns all entries newest first.
func (f *FileQuestLogStore) sorted(ctx context.Context) ([]QuestLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.s.logMu.Lock()
	entries, err := f.load()
	f.s.logMu.Unlock()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].CompletedAt.Equal(entries[j].CompletedAt) {
			return entries[i].CompletedAt.After(entries[j].CompletedAt)
		}
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

// readJSON decodes path into v. It reports false when the file does not exist.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("rename temp: %w", err)
	}
	return nil
}
