package engine

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Service is the progression engine. Mutating calls are serialized by mu so
// concurrent callers (the HTTP server) cannot interleave their load/save pairs.
type Service struct {
	mu sync.Mutex

	profiles *Profiles
	quests   QuestStore
	log      QuestLogStore

	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the time source used for quest log entries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides quest id generation.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

func NewService(stores Stores, opts ...Option) *Service {
	s := &Service{
		profiles: NewProfiles(stores.Hunters),
		quests:   stores.Quests,
		log:      stores.Log,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    NewQuestID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Profiles() *Profiles { return s.profiles }

func normalizeName(name string, field string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", ValidationError{Field: field, Reason: field + " cannot be empty"}
	}
	return n, nil
}

// Hunter returns the current profile, creating the default one on first use.
// Creating it is a write, so it takes the same lock as the other mutations.
func (s *Service) Hunter(ctx context.Context) (*Hunter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles.Load(ctx)
}

type UpdateHunterInput struct {
	Name *string
	Gold *int
}

// UpdateHunter sets the name and/or gold balance. Both are checked before the
// profile is written.
func (s *Service) UpdateHunter(ctx context.Context, in UpdateHunterInput) (*Hunter, error) {
	var name string
	if in.Name != nil {
		n, err := normalizeName(*in.Name, "name")
		if err != nil {
			return nil, err
		}
		name = n
	}
	if in.Gold != nil && *in.Gold < 0 {
		return nil, ValidationError{Field: "gold", Reason: "gold cannot be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	h, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		h.Name = name
	}
	if in.Gold != nil {
		h.Gold = *in.Gold
	}
	if err := s.profiles.Save(ctx, h); err != nil {
		return nil, err
	}
	s.logger.Info("hunter updated", "name", h.Name, "gold", h.Gold)
	return h, nil
}

// RecentCompletions returns up to limit log entries, newest first.
func (s *Service) RecentCompletions(ctx context.Context, limit int) ([]QuestLog, error) {
	recs, err := s.log.Recent(ctx, limit)
	if err != nil {
		return nil, persistErr("read quest log", err)
	}
	out := make([]QuestLog, 0, len(recs))
	for _, r := range recs {
		out = append(out, questLogFromRecord(r))
	}
	return out, nil
}

func (s *Service) CompletionsForQuest(ctx context.Context, questID string) ([]QuestLog, error) {
	recs, err := s.log.ByQuest(ctx, questID)
	if err != nil {
		return nil, persistErr("read quest log", err)
	}
	out := make([]QuestLog, 0, len(recs))
	for _, r := range recs {
		out = append(out, questLogFromRecord(r))
	}
	return out, nil
}

func (s *Service) CompletionTotals(ctx context.Context) (CompletionTotals, error) {
	t, err := s.log.Totals(ctx)
	if err != nil {
		return CompletionTotals{}, persistErr("read quest log", err)
	}
	return CompletionTotals{Count: t.Count, XP: t.XP, Gold: t.Gold}, nil
}
