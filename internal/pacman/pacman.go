// Package pacman is the gameplay core of the Pac-Man channel: grid-based
// movement, ghost AI, round lifecycle, and scoring. The shell steps it once
// per frame with Update then Draw; nothing here blocks or spans frames except
// through explicit countdown timers.
package pacman

import (
	_ "embed"
	"strings"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/config"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/hiscore"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/logger"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/path"
)

//go:embed level.txt
var defaultLevel string

// Game owns one round-session of Pac-Man: the level, the entities, and the
// score/lives bookkeeping. Entities are reset in place on life loss or
// restart, never reallocated.
type Game struct {
	cfg       *config.Config
	levelPath string // "" means the embedded default level

	level  *grid.Level
	finder *path.Finder
	player entities.Player
	ghosts []*entities.Ghost

	state      RoundState
	stateTimer float64 // dying countdown; advanceDying is the only writer

	score         int
	lives         int
	hiScore       int // best persisted score, refreshed when a round is recorded
	activePellets int
	ghostsEaten   int // ghosts eaten during the current power-pellet window

	mapLoaded bool
	loadErr   error

	sink   EventSink
	scores *hiscore.Store

	// Draw-only offset centering the level on the shared screen.
	originX, originY float64
}

// New creates the channel and attempts the initial level load. A failed load
// is not an error: the game surfaces it as a non-playable error display and
// the confirm key retries.
func New(cfg *config.Config, levelPath string) *Game {
	g := &Game{cfg: cfg, levelPath: levelPath}
	g.loadLevel()
	return g
}

// SetEventSink registers a consumer for gameplay cues. Nil disables cues.
func (g *Game) SetEventSink(sink EventSink) { g.sink = sink }

// SetHighScores attaches an optional persistent leaderboard, updated when a
// round ends in game over or victory and shown in the HUD.
func (g *Game) SetHighScores(s *hiscore.Store) {
	g.scores = s
	if s != nil {
		g.hiScore = s.Best()
	}
}

// loadLevel (re)builds the whole grid model. On failure every entity stays
// where it was, mapLoaded drops, and the diagnostic is kept for the draw step.
func (g *Game) loadLevel() {
	var (
		lvl *grid.Level
		err error
	)
	if g.levelPath != "" {
		lvl, err = grid.LoadFile(g.levelPath, g.cfg.TileSize)
	} else {
		lvl, err = grid.Load(strings.NewReader(defaultLevel), g.cfg.TileSize)
	}
	if err != nil {
		g.mapLoaded = false
		g.loadErr = err
		logger.Log.WithError(err).Warn("pacman: level load failed")
		return
	}

	g.level = lvl
	g.finder = path.NewFinder(lvl)
	g.mapLoaded = true
	g.loadErr = nil

	px, py := lvl.CenterOf(lvl.PlayerSpawn)
	g.player = entities.Player{
		X: px, Y: py,
		SpawnX: px, SpawnY: py,
		Speed:  g.cfg.PlayerSpeed,
		Radius: g.cfg.TileSize/2 - 2,
	}

	g.ghosts = g.ghosts[:0]
	for i, spawn := range lvl.GhostSpawns {
		gx, gy := lvl.CenterOf(spawn)
		g.ghosts = append(g.ghosts, &entities.Ghost{
			X: gx, Y: gy,
			SpawnX: gx, SpawnY: gy,
			Type:   entities.GhostType(i % 4),
			Speed:  g.cfg.GhostSpeed,
			Radius: g.cfg.TileSize/2 - 2,
		})
	}

	g.originX = (arcade.ScreenWidth - lvl.PixelWidth()) / 2
	g.originY = (arcade.ScreenHeight - lvl.PixelHeight()) / 2
	if g.originX < 0 {
		g.originX = 0
	}
	if g.originY < 0 {
		g.originY = 0
	}

	g.fullReset()
	logger.Log.WithFields(map[string]interface{}{
		"width":  lvl.Width,
		"height": lvl.Height,
		"ghosts": len(g.ghosts),
	}).Info("pacman: level loaded")
}

// Name implements arcade.Channel.
func (g *Game) Name() string { return "PAC-MAN" }

// OnEnter implements arcade.Channel. Re-entering the channel is a full
// restart; a failed map load is retried instead.
func (g *Game) OnEnter() {
	if !g.mapLoaded {
		g.loadLevel()
		return
	}
	g.fullReset()
}

// OnExit implements arcade.Channel. State is already consistent between
// updates, so leaving requires nothing.
func (g *Game) OnExit() {}

// Update implements arcade.Channel.
func (g *Game) Update(dt float64, in arcade.Input) {
	if !g.mapLoaded {
		if in.Confirm {
			g.loadLevel()
		}
		return
	}

	if in.Move != entities.DirNone {
		g.player.DesiredDir = in.Move
	}

	switch g.state {
	case StateReady:
		// Input is latched but nothing moves until the player commits.
		if in.Move != entities.DirNone {
			g.state = StatePlaying
		}
	case StatePlaying:
		g.updatePlayer(dt)
		g.updateGhosts(dt)
		g.handleCollisions()
	case StateDying:
		g.advanceDying(dt)
	case StateGameOver, StateVictory:
		if in.Confirm {
			g.fullReset()
		}
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// HighScore returns the best known score, counting the round in progress.
func (g *Game) HighScore() int {
	if g.score > g.hiScore {
		return g.score
	}
	return g.hiScore
}

// State returns the round state.
func (g *Game) State() RoundState { return g.state }

// MapLoaded reports whether a playable level is in place.
func (g *Game) MapLoaded() bool { return g.mapLoaded }

func (g *Game) emit(e Event) {
	if g.sink != nil {
		g.sink.OnEvent(e)
	}
}
