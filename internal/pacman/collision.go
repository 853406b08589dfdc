package pacman

import (
	"math"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
)

const (
	ghostBasePoints = 200
	ghostMaxPoints  = 1600
)

// handleCollisions resolves pellet pickups, then player-ghost contact. Only
// one life-loss collision is processed per frame even when several ghosts
// overlap the player.
func (g *Game) handleCollisions() {
	g.collectPellets()
	if g.state != StatePlaying {
		return // victory this frame; skip ghost contact
	}
	g.resolveGhostContact()
}

func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return math.Hypot(x1-x2, y1-y2) <= r1+r2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// collectPellets deactivates pellets the player touches and applies their
// points. A power pellet opens a frightened window for every non-eaten ghost
// and restarts the eat-bonus escalation. Eating the last pellet wins the
// round on this same update.
func (g *Game) collectPellets() {
	playerTile := g.level.TileAt(g.player.X, g.player.Y)
	for i := range g.level.Pellets {
		pel := &g.level.Pellets[i]
		if !pel.Active {
			continue
		}
		// Player and pellet radii both stay under half a tile, so a pellet
		// more than one tile away can never overlap the player.
		if absInt(pel.Tile.Col-playerTile.Col) > 1 || absInt(pel.Tile.Row-playerTile.Row) > 1 {
			continue
		}
		if !circlesOverlap(g.player.X, g.player.Y, g.player.Radius, pel.X, pel.Y, pel.Radius) {
			continue
		}
		pel.Active = false
		g.score += pel.Points
		g.activePellets--
		if pel.Power {
			g.frighten()
			g.emit(EventPowerPellet)
		} else {
			g.emit(EventPelletEaten)
		}
	}
	if g.activePellets == 0 {
		g.win()
	}
}

// resolveGhostContact applies ghost collisions by ghost state: chasing costs
// a life, frightened ghosts are eaten for escalating points, eaten ghosts are
// inert.
func (g *Game) resolveGhostContact() {
	for _, gh := range g.ghosts {
		if !circlesOverlap(g.player.X, g.player.Y, g.player.Radius, gh.X, gh.Y, gh.Radius) {
			continue
		}
		switch gh.State {
		case entities.GhostChasing:
			g.killPlayer()
			return
		case entities.GhostFrightened:
			g.eatGhost(gh)
		}
	}
}

// eatGhost scores a frightened ghost with a doubling bonus per ghost eaten in
// the same power-pellet window (200, 400, 800, 1600) and parks it at spawn
// for the eaten recovery time.
func (g *Game) eatGhost(gh *entities.Ghost) {
	points := ghostBasePoints << g.ghostsEaten
	if points > ghostMaxPoints {
		points = ghostMaxPoints
	}
	g.score += points
	g.ghostsEaten++

	gh.X, gh.Y = gh.SpawnX, gh.SpawnY
	gh.CurrentDir = entities.DirNone
	gh.State = entities.GhostEaten
	gh.StateTimer = g.cfg.EatenDuration
	gh.Path = nil
	g.emit(EventGhostEaten)
}
