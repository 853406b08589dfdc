package pacman

import "github.com/9MidhunPM/Nostalgia-Sim/internal/logger"

// RoundState is the round/game lifecycle position. It is owned exclusively by
// this state machine; every other component reads it and never writes it.
type RoundState int

const (
	StateReady RoundState = iota
	StatePlaying
	StateDying
	StateGameOver
	StateVictory
)

func (s RoundState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateDying:
		return "dying"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// fullReset is the restart path out of game_over and victory (and the load
// path): lives and score restored, every pellet reactivated, entities back at
// spawn, round state to ready.
func (g *Game) fullReset() {
	g.lives = g.cfg.StartingLives
	g.score = 0
	g.level.ResetPellets()
	g.activePellets = g.level.ActivePellets()
	g.resetEntities()
	g.state = StateReady
	g.stateTimer = 0
	g.emit(EventRoundStarted)
}

// lifeReset repositions entities after a lost life. Score and pellet active
// flags are deliberately untouched.
func (g *Game) lifeReset() {
	g.resetEntities()
	g.state = StateReady
	g.emit(EventRoundStarted)
}

func (g *Game) resetEntities() {
	g.player.ResetToSpawn()
	for _, gh := range g.ghosts {
		gh.ResetToSpawn()
	}
	g.ghostsEaten = 0
}

// killPlayer handles a chasing-ghost collision: one life gone and a fixed
// pause before the next round (or the end screen) starts. Whether this ends
// the game is decided when the pause expires, not here.
func (g *Game) killPlayer() {
	g.lives--
	g.state = StateDying
	g.stateTimer = g.cfg.DyingDuration
	g.emit(EventPlayerDied)
	logger.Log.WithField("lives", g.lives).Debug("pacman: player died")
}

// advanceDying counts down the death pause. Nothing else moves while dying.
func (g *Game) advanceDying(dt float64) {
	g.stateTimer -= dt
	if g.stateTimer > 0 {
		return
	}
	g.stateTimer = 0
	if g.lives > 0 {
		g.lifeReset()
		return
	}
	g.state = StateGameOver
	g.recordScore()
}

// win ends the round when the last pellet is eaten. Victory is terminal until
// the external restart signal triggers a full reset; a round-only reset would
// re-trigger victory immediately with zero active pellets.
func (g *Game) win() {
	g.state = StateVictory
	g.recordScore()
	logger.Log.WithField("score", g.score).Info("pacman: round won")
}

func (g *Game) recordScore() {
	if g.scores == nil {
		if g.score > g.hiScore {
			g.hiScore = g.score
		}
		return
	}
	if err := g.scores.Record(g.score); err != nil {
		logger.Log.WithError(err).Warn("pacman: high score not saved")
	}
	g.hiScore = g.scores.Best()
}
