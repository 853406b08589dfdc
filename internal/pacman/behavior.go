package pacman

import (
	"math"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/config"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
)

// Clyde stops chasing inside this straight-line distance (in tiles) and
// retreats toward his corner instead.
const clydeShynessTiles = 8.0

// updateGhosts advances every ghost's state timer and motion. Each state
// timer has a single writer: this function.
func (g *Game) updateGhosts(dt float64) {
	for _, gh := range g.ghosts {
		switch gh.State {
		case entities.GhostFrightened:
			gh.StateTimer -= dt
			if gh.StateTimer <= 0 {
				gh.StateTimer = 0
				gh.State = entities.GhostChasing // base speed applies again
				gh.Path = nil
			} else {
				g.moveFrightened(gh, dt)
				continue
			}
		case entities.GhostEaten:
			gh.StateTimer -= dt
			if gh.StateTimer <= 0 {
				gh.StateTimer = 0
				gh.State = entities.GhostChasing
			}
			continue // eaten ghosts wait at spawn
		}

		if g.cfg.ChaseStyle == config.ChaseAStar {
			g.chaseAStar(gh, dt)
		} else {
			g.chaseGreedy(gh, dt)
		}
	}
}

// frighten puts every non-eaten ghost into the frightened state for the
// configured window and reverses its heading. Eaten ghosts stay eaten.
func (g *Game) frighten() {
	for _, gh := range g.ghosts {
		if gh.State == entities.GhostEaten {
			continue
		}
		gh.State = entities.GhostFrightened
		gh.StateTimer = g.cfg.FrightenedDuration
		gh.CurrentDir = gh.CurrentDir.Opposite()
		gh.Path = nil
	}
	g.ghostsEaten = 0
}

// moveFrightened flees greedily: at each tile center pick the open neighbor
// maximizing straight-line distance to the player, at reduced speed.
func (g *Game) moveFrightened(gh *entities.Ghost, dt float64) {
	step := gh.Speed * g.cfg.FrightenedSpeedMul * dt
	tile, cx, cy, ok := g.aligned(gh.X, gh.Y, step)
	if ok {
		gh.X, gh.Y = cx, cy
		playerTile := g.level.TileAt(g.player.X, g.player.Y)
		best := gh.CurrentDir
		bestDist := -1.0
		for _, d := range entities.Directions {
			dx, dy := d.Delta()
			ncol, nrow := tile.Col+dx, tile.Row+dy
			if g.level.IsWall(ncol, nrow) {
				continue
			}
			dist := tileDistance(grid.Point{Col: ncol, Row: nrow}, playerTile)
			if dist > bestDist {
				bestDist = dist
				best = d
			}
		}
		gh.CurrentDir = best
	}
	g.moveGhost(gh, gh.Speed*g.cfg.FrightenedSpeedMul*dt)
}

// chaseGreedy is the local-search variant: at a tile center, evaluate the
// four neighbors except the immediate reverse of the current heading and take
// the one closest to the player's tile. With no legal neighbor the heading is
// kept; the motion layer stops the ghost if that heading leads into a wall,
// so a boxed-in ghost waits rather than clipping through.
func (g *Game) chaseGreedy(gh *entities.Ghost, dt float64) {
	step := gh.Speed * dt
	tile, cx, cy, ok := g.aligned(gh.X, gh.Y, step)
	if ok {
		gh.X, gh.Y = cx, cy
		playerTile := g.level.TileAt(g.player.X, g.player.Y)
		best := gh.CurrentDir
		bestDist := math.Inf(1)
		for _, d := range entities.Directions {
			if d == gh.CurrentDir.Opposite() && gh.CurrentDir != entities.DirNone {
				continue // no 180-degree turns unless forced
			}
			dx, dy := d.Delta()
			ncol, nrow := tile.Col+dx, tile.Row+dy
			if g.level.IsWall(ncol, nrow) {
				continue
			}
			dist := tileDistance(grid.Point{Col: ncol, Row: nrow}, playerTile)
			if dist < bestDist {
				bestDist = dist
				best = d
			}
		}
		gh.CurrentDir = best
	}
	g.moveGhost(gh, step)
}

// chaseAStar is the pathfinding variant: pursue the personality target along
// an A* path. The path and heading are recomputed only at tile centers;
// between centers the ghost holds its heading, so a state change mid-flight
// (frightened expiry, say) never adopts a perpendicular direction while the
// ghost is off the lattice line it is traveling on. Between recomputes the
// ghost may briefly follow a stale target.
func (g *Game) chaseAStar(gh *entities.Ghost, dt float64) {
	step := gh.Speed * dt
	tile, cx, cy, ok := g.aligned(gh.X, gh.Y, step)
	if ok {
		gh.X, gh.Y = cx, cy
		gh.Path = g.finder.FindPath(tile, g.chaseTarget(gh, tile))
		if len(gh.Path) > 1 {
			gh.CurrentDir = directionTo(gh.Path[0], gh.Path[1])
		}
		// A path of length <= 1 means the goal is unreachable (or is this
		// tile): hold the current direction and let the motion layer stop
		// at walls.
	}
	g.moveGhost(gh, step)
}

// chaseTarget picks the personality-specific target tile, clamped in bounds.
// A target on a wall falls back to the player's tile.
func (g *Game) chaseTarget(gh *entities.Ghost, ghostTile grid.Point) grid.Point {
	playerTile := g.level.TileAt(g.player.X, g.player.Y)
	pdx, pdy := g.player.CurrentDir.Delta()

	target := playerTile
	switch gh.Type {
	case entities.Pinky:
		target = grid.Point{Col: playerTile.Col + 4*pdx, Row: playerTile.Row + 4*pdy}
	case entities.Inky:
		blinkyTile := playerTile
		for _, other := range g.ghosts {
			if other.Type == entities.Blinky {
				blinkyTile = g.level.TileAt(other.X, other.Y)
				break
			}
		}
		pivot := grid.Point{Col: playerTile.Col + 2*pdx, Row: playerTile.Row + 2*pdy}
		target = grid.Point{
			Col: pivot.Col + (pivot.Col - blinkyTile.Col),
			Row: pivot.Row + (pivot.Row - blinkyTile.Row),
		}
	case entities.Clyde:
		if tileDistance(ghostTile, playerTile) < clydeShynessTiles {
			target = grid.Point{Col: 1, Row: g.level.Height - 2}
		}
	}

	target.Col = clamp(target.Col, 0, g.level.Width-1)
	target.Row = clamp(target.Row, 0, g.level.Height-1)
	if g.level.IsWall(target.Col, target.Row) {
		target = playerTile
	}
	return target
}

func directionTo(from, to grid.Point) entities.Direction {
	switch {
	case to.Col < from.Col:
		return entities.DirLeft
	case to.Col > from.Col:
		return entities.DirRight
	case to.Row < from.Row:
		return entities.DirUp
	case to.Row > from.Row:
		return entities.DirDown
	default:
		return entities.DirNone
	}
}

func tileDistance(a, b grid.Point) float64 {
	dx := float64(a.Col - b.Col)
	dy := float64(a.Row - b.Row)
	return math.Sqrt(dx*dx + dy*dy)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
