package entities

import "github.com/9MidhunPM/Nostalgia-Sim/internal/grid"

// GhostType tags a ghost with its pursuit personality. Assignment is
// round-robin over the spawn order in the level file.
type GhostType int

const (
	Blinky GhostType = iota // targets the player directly
	Pinky                   // leads four tiles ahead of the player
	Inky                    // mirrors Blinky through a point two tiles ahead
	Clyde                   // chases until close, then retreats to a corner
)

func (t GhostType) String() string {
	switch t {
	case Blinky:
		return "blinky"
	case Pinky:
		return "pinky"
	case Inky:
		return "inky"
	case Clyde:
		return "clyde"
	default:
		return "ghost"
	}
}

// GhostState is the behavior state machine position for one ghost.
type GhostState int

const (
	GhostChasing GhostState = iota
	GhostFrightened
	GhostEaten
)

func (s GhostState) String() string {
	switch s {
	case GhostFrightened:
		return "frightened"
	case GhostEaten:
		return "eaten"
	default:
		return "chasing"
	}
}

// Ghost is one pursuer. StateTimer is a countdown in seconds owned by the
// behavior component; it is decremented there and nowhere else. Path holds
// the most recent A* result as tile coordinates (start first) and is
// recomputed opportunistically, so it may briefly chase a stale target.
type Ghost struct {
	X, Y           float64
	SpawnX, SpawnY float64
	CurrentDir     Direction
	Type           GhostType
	State          GhostState
	StateTimer     float64
	Speed          float64 // base pixels per second; behavior scales it per state
	Radius         float64
	Path           []grid.Point
}

// ResetToSpawn returns the ghost to its spawn tile in the chasing state with
// no heading and no cached path.
func (g *Ghost) ResetToSpawn() {
	g.X, g.Y = g.SpawnX, g.SpawnY
	g.CurrentDir = DirNone
	g.State = GhostChasing
	g.StateTimer = 0
	g.Path = nil
}
