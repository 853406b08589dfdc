package pacman

import (
	"testing"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
)

func TestPlayerAdoptsDesiredDirectionOnlyWhenOpen(t *testing.T) {
	g := newTestGame(t, nil,
		"#####",
		"#P..#",
		"#.###",
		"#####",
	)
	x, y := g.player.X, g.player.Y

	// Desired direction into a wall is latched but never adopted.
	g.player.DesiredDir = entities.DirUp
	g.updatePlayer(frame)
	if g.player.CurrentDir != entities.DirNone {
		t.Fatalf("heading: got %v, want none", g.player.CurrentDir)
	}
	if g.player.X != x || g.player.Y != y {
		t.Fatal("player moved without a legal heading")
	}
	if g.player.DesiredDir != entities.DirUp {
		t.Fatal("desired direction should stay latched")
	}

	// An open desired direction takes effect at the tile center.
	g.player.DesiredDir = entities.DirDown
	g.updatePlayer(frame)
	if g.player.CurrentDir != entities.DirDown {
		t.Fatalf("heading: got %v, want down", g.player.CurrentDir)
	}
	if g.player.Y <= y {
		t.Fatalf("player did not advance: y=%v", g.player.Y)
	}
}

func TestPlayerStopsAtWallCenter(t *testing.T) {
	// Spaces are open tiles without pellets, so the corridor has no pickups.
	g := newTestGame(t, nil,
		"#####",
		"#P  #",
		"#####",
	)
	g.player.DesiredDir = entities.DirRight

	for i := 0; i < 120; i++ {
		g.updatePlayer(frame)
	}

	cx, cy := g.level.CenterOf(grid.Point{Col: 3, Row: 1})
	if g.player.X != cx || g.player.Y != cy {
		t.Fatalf("stop position: got (%v,%v), want (%v,%v)", g.player.X, g.player.Y, cx, cy)
	}
	if g.player.CurrentDir != entities.DirNone {
		t.Fatalf("heading at wall: got %v, want none", g.player.CurrentDir)
	}
}

func TestHeadingHoldsBetweenCenters(t *testing.T) {
	g := newTestGame(t, nil,
		"#####",
		"#P..#",
		"#.#.#",
		"#####",
	)
	g.player.DesiredDir = entities.DirRight
	g.updatePlayer(frame) // adopt right and leave the center

	// Mid-tile, an open perpendicular desire must wait for the next center.
	g.player.DesiredDir = entities.DirDown
	g.updatePlayer(frame)
	if g.player.CurrentDir != entities.DirRight {
		t.Fatalf("heading changed between centers: %v", g.player.CurrentDir)
	}

	// Once a center with an open downward neighbor is reached, the turn
	// happens there, exactly on the lattice.
	for i := 0; i < 120 && g.player.CurrentDir != entities.DirDown; i++ {
		g.updatePlayer(frame)
	}
	if g.player.CurrentDir != entities.DirDown {
		t.Fatal("buffered turn never applied")
	}
	cx, _ := g.level.CenterOf(grid.Point{Col: 3, Row: 1})
	if g.player.X != cx {
		t.Fatalf("turn happened off-lattice at x=%v, want %v", g.player.X, cx)
	}
}
