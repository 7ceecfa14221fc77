// Package catalog imports quest packs written in YAML:
//
//	quests:
//	  - name: Morning Run
//	    stat: Agility
//	    difficulty: EASY
//	    description: Run 5KM
//	  - name: Leg Day
//	    stat: Strength
//	    difficulty: HARD
//	    xp_reward: 600
//
// Omitted rewards take the difficulty tier's suggested values. The same pack
// may be written as TOML with one [[quests]] table per entry.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"hunterline/internal/engine"
)

type Pack struct {
	Quests []engine.QuestDraft `yaml:"quests" toml:"quests"`
}

// Parse decodes a pack. Unknown keys are rejected so typos do not silently
// drop a reward override.
func Parse(r io.Reader) (*Pack, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Pack
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("decode quest pack: %w", err)
	}
	return &p, nil
}

// ParseTOML decodes the same pack written as TOML ([[quests]] tables).
func ParseTOML(r io.Reader) (*Pack, error) {
	var p Pack
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&p); err != nil {
		return nil, fmt.Errorf("decode quest pack: %w", err)
	}
	return &p, nil
}

// LoadFile reads a pack, choosing TOML for a .toml extension and YAML otherwise.
func LoadFile(path string) (*Pack, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(f)
	}
	return Parse(f)
}

// QuestCreator is the part of engine.Service the importer needs.
type QuestCreator interface {
	CreateQuest(ctx context.Context, in engine.CreateQuestInput) (*engine.Quest, error)
}

type Failure struct {
	Index int
	Name  string
	Err   error
}

type Result struct {
	Created []engine.Quest
	Failed  []Failure
}

// Import creates every quest in the pack. Entries that fail validation are
// collected in Failed and skipped; a storage failure stops the import and is
// returned together with what was created so far.
func Import(ctx context.Context, c QuestCreator, p *Pack) (Result, error) {
	var res Result
	for i, d := range p.Quests {
		in, err := d.Input()
		if err == nil {
			var q *engine.Quest
			q, err = c.CreateQuest(ctx, in)
			if err == nil {
				res.Created = append(res.Created, *q)
				continue
			}
		}
		if !engine.IsValidation(err) {
			return res, fmt.Errorf("import entry %d (%s): %w", i+1, d.Name, err)
		}
		res.Failed = append(res.Failed, Failure{Index: i + 1, Name: d.Name, Err: err})
	}
	return res, nil
}
