// Package hiscore persists the arcade leaderboard through the gdata
// cross-platform storage layer.
package hiscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/quasilyte/gdata/v2"
)

const (
	storageObject = "pacman"
	storageProp   = "leaderboard"

	maxEntries = 10
)

// Record is one leaderboard entry.
type Record struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// Store reads and writes the leaderboard. A nil manager degrades to keeping
// scores in memory only, so a broken storage path never breaks gameplay.
type Store struct {
	m       *gdata.Manager
	records []Record
}

// Open creates a store backed by app-scoped gdata storage.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open score storage: %w", err)
	}
	return NewStore(m), nil
}

// NewStore wraps an existing manager; nil is allowed for the degraded mode.
func NewStore(m *gdata.Manager) *Store {
	s := &Store{m: m}
	s.records = s.load()
	return s
}

func (s *Store) load() []Record {
	if s.m == nil || !s.m.ObjectPropExists(storageObject, storageProp) {
		return nil
	}
	data, err := s.m.LoadObjectProp(storageObject, storageProp)
	if err != nil {
		return nil
	}
	var recs []Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil
	}
	return recs
}

// Leaderboard returns the known records, best first.
func (s *Store) Leaderboard() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Best returns the top score, or zero when no record exists.
func (s *Store) Best() int {
	best := 0
	for _, r := range s.records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// Record inserts a finished round's score and persists the trimmed
// leaderboard.
func (s *Store) Record(score int) error {
	return s.RecordNamed("", score)
}

// RecordNamed inserts a score under a player name. Negative scores are
// rejected; zero scores are ignored without error.
func (s *Store) RecordNamed(name string, score int) error {
	if score < 0 {
		return errors.New("score must be non-negative")
	}
	if score == 0 {
		return nil
	}
	s.records = append(s.records, Record{Name: name, Score: score})
	sort.SliceStable(s.records, func(i, j int) bool { return s.records[i].Score > s.records[j].Score })
	if len(s.records) > maxEntries {
		s.records = s.records[:maxEntries]
	}
	return s.save()
}

func (s *Store) save() error {
	if s.m == nil {
		return nil
	}
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(storageObject, storageProp, data); err != nil {
		return fmt.Errorf("save leaderboard: %w", err)
	}
	return nil
}
