package pacman

import (
	"math"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
)

// Movement reconciles discrete tile decisions with continuous positions:
// direction changes happen only at tile centers, positions advance every
// frame. The alignment window is one frame's travel so the decision point is
// never skipped at any framerate.

// aligned reports whether (x, y) is within one step of its tile center, and
// returns that tile and center.
func (g *Game) aligned(x, y, step float64) (grid.Point, float64, float64, bool) {
	tile := g.level.TileAt(x, y)
	cx, cy := g.level.CenterOf(tile)
	dist := math.Hypot(x-cx, y-cy)
	return tile, cx, cy, dist < step
}

// updatePlayer advances the player one frame. At a tile center the buffered
// desired direction is adopted if its neighbor tile is open; a blocked
// current direction zeroes out (stop). Between centers the heading never
// changes.
func (g *Game) updatePlayer(dt float64) {
	p := &g.player
	step := p.Speed * dt

	tile, cx, cy, ok := g.aligned(p.X, p.Y, step)
	if ok {
		p.X, p.Y = cx, cy // snap so the turn happens exactly on the lattice

		if p.DesiredDir != entities.DirNone {
			dx, dy := p.DesiredDir.Delta()
			if !g.level.IsWall(tile.Col+dx, tile.Row+dy) {
				p.CurrentDir = p.DesiredDir
			}
		}
		dx, dy := p.CurrentDir.Delta()
		if p.CurrentDir != entities.DirNone && g.level.IsWall(tile.Col+dx, tile.Row+dy) {
			p.CurrentDir = entities.DirNone
		}
	}

	dx, dy := p.CurrentDir.Delta()
	p.X += float64(dx) * step
	p.Y += float64(dy) * step
}

// moveGhost advances a ghost along its current heading, stopping at the tile
// center when the next tile is a wall. The heading itself is chosen by the
// behavior layer; this is purely the continuous half of the motion model.
func (g *Game) moveGhost(gh *entities.Ghost, step float64) {
	tile, cx, cy, ok := g.aligned(gh.X, gh.Y, step)
	if ok {
		gh.X, gh.Y = cx, cy
		dx, dy := gh.CurrentDir.Delta()
		if gh.CurrentDir != entities.DirNone && g.level.IsWall(tile.Col+dx, tile.Row+dy) {
			return // held direction into a wall: stay snapped this frame
		}
	}
	dx, dy := gh.CurrentDir.Delta()
	gh.X += float64(dx) * step
	gh.Y += float64(dy) * step
}
