package hiscore

import (
	"testing"
)

func TestInMemoryStoreDegradesGracefully(t *testing.T) {
	s := NewStore(nil)
	if best := s.Best(); best != 0 {
		t.Fatalf("empty best: got %d, want 0", best)
	}
	if err := s.Record(300); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if best := s.Best(); best != 300 {
		t.Fatalf("best: got %d, want 300", best)
	}
}

func TestRecordValidation(t *testing.T) {
	s := NewStore(nil)
	if err := s.Record(-1); err == nil {
		t.Fatal("negative score accepted")
	}
	if err := s.Record(0); err != nil {
		t.Fatalf("zero score should be ignored without error: %v", err)
	}
	if len(s.Leaderboard()) != 0 {
		t.Fatalf("leaderboard not empty: %v", s.Leaderboard())
	}
}

func TestLeaderboardOrderAndTrim(t *testing.T) {
	s := NewStore(nil)
	scores := []int{120, 900, 40, 900, 301, 7, 88, 1500, 12, 64, 230, 410}
	for _, sc := range scores {
		if err := s.Record(sc); err != nil {
			t.Fatalf("Record(%d): %v", sc, err)
		}
	}

	lb := s.Leaderboard()
	if len(lb) != maxEntries {
		t.Fatalf("leaderboard length: got %d, want %d", len(lb), maxEntries)
	}
	if lb[0].Score != 1500 {
		t.Fatalf("top score: got %d, want 1500", lb[0].Score)
	}
	for i := 1; i < len(lb); i++ {
		if lb[i].Score > lb[i-1].Score {
			t.Fatalf("leaderboard out of order at %d: %v", i, lb)
		}
	}
	if s.Best() != 1500 {
		t.Fatalf("best: got %d, want 1500", s.Best())
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir)

	s, err := Open("nostalgia-sim-test")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.RecordNamed("AAA", 720); err != nil {
		t.Fatalf("RecordNamed: %v", err)
	}
	if err := s.Record(150); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// A fresh store over the same storage sees the saved records.
	again, err := Open("nostalgia-sim-test")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	lb := again.Leaderboard()
	if len(lb) != 2 {
		t.Fatalf("records after reopen: got %d, want 2", len(lb))
	}
	if lb[0].Name != "AAA" || lb[0].Score != 720 {
		t.Fatalf("top record: got %+v", lb[0])
	}
	if again.Best() != 720 {
		t.Fatalf("best after reopen: got %d", again.Best())
	}
}
