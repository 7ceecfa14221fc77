package engine

import (
	"context"
	"fmt"

	"hunterline/internal/storage"
)

// Profiles is the Hunter profile store: it loads and saves the whole
// aggregate and creates the default profile on first read.
type Profiles struct {
	store HunterStore
}

func NewProfiles(store HunterStore) *Profiles {
	return &Profiles{store: store}
}

// Load returns the stored Hunter. If none exists yet, a default Hunter named
// DefaultHunterName is created, persisted and returned.
func (p *Profiles) Load(ctx context.Context) (*Hunter, error) {
	rec, err := p.store.Load(ctx)
	if err != nil {
		return nil, persistErr("load hunter", err)
	}
	if rec == nil {
		h := NewHunter(DefaultHunterName)
		if err := p.Save(ctx, h); err != nil {
			return nil, err
		}
		return h, nil
	}
	return hunterFromRecord(rec)
}

// Save replaces the persisted profile with h.
func (p *Profiles) Save(ctx context.Context, h *Hunter) error {
	return persistErr("save hunter", p.store.Save(ctx, hunterRecord(h)))
}

func hunterRecord(h *Hunter) *storage.Hunter {
	rec := &storage.Hunter{Name: h.Name, Gold: h.Gold}
	for _, s := range h.stats {
		rec.Stats = append(rec.Stats, storage.StatXP{Name: s.Name(), TotalXP: s.TotalXP})
	}
	return rec
}

func hunterFromRecord(rec *storage.Hunter) (*Hunter, error) {
	if rec.Gold < 0 {
		return nil, CorruptProfileError{Reason: fmt.Sprintf("negative gold %d", rec.Gold)}
	}
	h := NewHunter(rec.Name)
	h.Gold = rec.Gold

	var seen [categoryCount]bool
	for _, row := range rec.Stats {
		c, err := ParseCategory(row.Name)
		if err != nil {
			return nil, CorruptProfileError{Reason: fmt.Sprintf("unknown stat %q", row.Name)}
		}
		if seen[c.index()] {
			return nil, CorruptProfileError{Reason: fmt.Sprintf("duplicate stat %q", row.Name)}
		}
		if row.TotalXP < 0 {
			return nil, CorruptProfileError{Reason: fmt.Sprintf("negative xp for %s", c)}
		}
		seen[c.index()] = true
		h.stats[c.index()].TotalXP = row.TotalXP
	}
	for _, c := range Categories() {
		if !seen[c.index()] {
			return nil, CorruptProfileError{Reason: fmt.Sprintf("missing stat %s", c)}
		}
	}
	return h, nil
}
