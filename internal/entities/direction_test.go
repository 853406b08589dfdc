package entities

import (
	"testing"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
)

func TestDirectionDelta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{DirNone, 0, 0},
		{DirUp, 0, -1},
		{DirDown, 0, 1},
		{DirLeft, -1, 0},
		{DirRight, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			dx, dy := tc.dir.Delta()
			if dx != tc.dx || dy != tc.dy {
				t.Fatalf("Delta() = (%d,%d), want (%d,%d)", dx, dy, tc.dx, tc.dy)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
		DirNone:  DirNone,
	}
	for dir, want := range pairs {
		if got := dir.Opposite(); got != want {
			t.Fatalf("%v.Opposite() = %v, want %v", dir, got, want)
		}
	}
}

func TestPlayerResetToSpawn(t *testing.T) {
	p := &Player{SpawnX: 100, SpawnY: 200, X: 5, Y: 5, CurrentDir: DirLeft, DesiredDir: DirUp}
	p.ResetToSpawn()
	if p.X != 100 || p.Y != 200 {
		t.Fatalf("position after reset: (%v,%v), want (100,200)", p.X, p.Y)
	}
	if p.CurrentDir != DirNone || p.DesiredDir != DirNone {
		t.Fatalf("directions after reset: %v/%v, want none/none", p.CurrentDir, p.DesiredDir)
	}
}

func TestGhostResetToSpawn(t *testing.T) {
	g := &Ghost{
		SpawnX: 50, SpawnY: 75,
		X: 1, Y: 2,
		State:      GhostFrightened,
		StateTimer: 3.2,
		CurrentDir: DirDown,
		Path:       []grid.Point{{Col: 1, Row: 1}},
	}
	g.ResetToSpawn()
	if g.X != 50 || g.Y != 75 {
		t.Fatalf("position after reset: (%v,%v), want (50,75)", g.X, g.Y)
	}
	if g.State != GhostChasing || g.StateTimer != 0 {
		t.Fatalf("state after reset: %v timer %v, want chasing 0", g.State, g.StateTimer)
	}
	if g.CurrentDir != DirNone || g.Path != nil {
		t.Fatalf("heading/path after reset: %v %v", g.CurrentDir, g.Path)
	}
}
