package pacman

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/config"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/hiscore"
)

const frame = 1.0 / 60.0

// newTestGame builds a game around an inline level layout.
func newTestGame(t *testing.T, cfg *config.Config, rows ...string) *Game {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	p := filepath.Join(t.TempDir(), "level.txt")
	if err := os.WriteFile(p, []byte(strings.Join(rows, "\n")), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	g := New(cfg, p)
	if !g.MapLoaded() {
		t.Fatalf("level did not load: %v", g.loadErr)
	}
	return g
}

// stepUntil runs frames with the given input until cond holds, failing after
// maxFrames.
func stepUntil(t *testing.T, g *Game, in arcade.Input, maxFrames int, cond func() bool) {
	t.Helper()
	for i := 0; i < maxFrames; i++ {
		if cond() {
			return
		}
		g.Update(frame, in)
	}
	if !cond() {
		t.Fatalf("condition not reached within %d frames (state=%v, score=%d, lives=%d)",
			maxFrames, g.State(), g.Score(), g.Lives())
	}
}

type recordingSink struct {
	events []Event
}

func (r *recordingSink) OnEvent(e Event) { r.events = append(r.events, e) }

func (r *recordingSink) count(e Event) int {
	n := 0
	for _, got := range r.events {
		if got == e {
			n++
		}
	}
	return n
}

func TestNewStartsReady(t *testing.T) {
	g := newTestGame(t, nil, "P.G")
	if g.State() != StateReady {
		t.Fatalf("state: got %v, want ready", g.State())
	}
	if g.Lives() != config.Default().StartingLives {
		t.Fatalf("lives: got %d, want %d", g.Lives(), config.Default().StartingLives)
	}
	if g.Score() != 0 {
		t.Fatalf("score: got %d, want 0", g.Score())
	}
}

func TestReadyHoldsUntilFirstMove(t *testing.T) {
	g := newTestGame(t, nil, "P.G")
	startX := g.player.X

	for i := 0; i < 10; i++ {
		g.Update(frame, arcade.Input{})
	}
	if g.State() != StateReady || g.player.X != startX {
		t.Fatalf("ready state should freeze the world: state=%v x=%v", g.State(), g.player.X)
	}

	g.Update(frame, arcade.Input{Move: entities.DirRight})
	if g.State() != StatePlaying {
		t.Fatalf("state after first move: got %v, want playing", g.State())
	}
}

func TestVictoryOnLastPellet(t *testing.T) {
	g := newTestGame(t, nil, "P.G")
	sink := &recordingSink{}
	g.SetEventSink(sink)

	in := arcade.Input{Move: entities.DirRight}
	stepUntil(t, g, in, 60, func() bool { return g.State() == StateVictory })

	if g.Score() != 10 {
		t.Fatalf("score: got %d, want 10", g.Score())
	}
	if g.activePellets != 0 {
		t.Fatalf("active pellets: got %d, want 0", g.activePellets)
	}
	if sink.count(EventPelletEaten) != 1 {
		t.Fatalf("pellet events: got %d, want 1", sink.count(EventPelletEaten))
	}

	// Victory is terminal until the restart signal; a full reset then
	// restores pellets, score, and the ready state.
	g.Update(frame, arcade.Input{Move: entities.DirRight})
	if g.State() != StateVictory {
		t.Fatalf("victory should ignore movement, got %v", g.State())
	}
	g.Update(frame, arcade.Input{Confirm: true})
	if g.State() != StateReady || g.Score() != 0 || g.activePellets != 1 {
		t.Fatalf("after restart: state=%v score=%d pellets=%d", g.State(), g.Score(), g.activePellets)
	}
}

func TestVictoryRecordsHighScore(t *testing.T) {
	g := newTestGame(t, nil, "P.G")
	scores := hiscore.NewStore(nil)
	g.SetHighScores(scores)

	stepUntil(t, g, arcade.Input{Move: entities.DirRight}, 60, func() bool {
		return g.State() == StateVictory
	})
	if best := scores.Best(); best != 10 {
		t.Fatalf("recorded best: got %d, want 10", best)
	}
}

func TestHighScoreReflectsLeaderboardAndCurrentRound(t *testing.T) {
	g := newTestGame(t, nil, "P.G")
	if g.HighScore() != 0 {
		t.Fatalf("high score without a store: got %d, want 0", g.HighScore())
	}

	scores := hiscore.NewStore(nil)
	if err := scores.Record(500); err != nil {
		t.Fatalf("Record: %v", err)
	}
	g.SetHighScores(scores)
	if g.HighScore() != 500 {
		t.Fatalf("high score after attach: got %d, want 500", g.HighScore())
	}

	// A round in progress below the best leaves it unchanged; one above it
	// leads immediately, before the round is recorded.
	g.score = 40
	if g.HighScore() != 500 {
		t.Fatalf("high score mid-round: got %d, want 500", g.HighScore())
	}
	g.score = 700
	if g.HighScore() != 700 {
		t.Fatalf("high score mid-round: got %d, want 700", g.HighScore())
	}

	// Finishing the round persists it, so the restart keeps showing it.
	g.win()
	g.fullReset()
	if g.Score() != 0 || g.HighScore() != 700 {
		t.Fatalf("after restart: score=%d hi=%d, want 0/700", g.Score(), g.HighScore())
	}
	if scores.Best() != 700 {
		t.Fatalf("leaderboard best: got %d, want 700", scores.Best())
	}
}

func TestLifeLossKeepsScoreAndPellets(t *testing.T) {
	g := newTestGame(t, nil, "######", "#P..G#", "######")
	sink := &recordingSink{}
	g.SetEventSink(sink)
	g.state = StatePlaying
	g.score = 70
	g.level.Pellets[0].Active = false
	g.activePellets--
	pelletsLeft := g.activePellets

	// Force an overlap with a chasing ghost.
	g.ghosts[0].X, g.ghosts[0].Y = g.player.X, g.player.Y
	g.handleCollisions()

	if g.State() != StateDying {
		t.Fatalf("state: got %v, want dying", g.State())
	}
	if g.Lives() != config.Default().StartingLives-1 {
		t.Fatalf("lives: got %d, want %d", g.Lives(), config.Default().StartingLives-1)
	}
	if sink.count(EventPlayerDied) != 1 {
		t.Fatalf("death events: got %d", sink.count(EventPlayerDied))
	}

	// Movement input during the death pause must not shortcut it.
	g.Update(frame, arcade.Input{Move: entities.DirLeft})
	if g.State() != StateDying {
		t.Fatalf("dying pause interrupted: %v", g.State())
	}

	// After the pause: entities respawn, score and eaten pellets untouched.
	g.Update(config.Default().DyingDuration, arcade.Input{})
	if g.State() != StateReady {
		t.Fatalf("state after pause: got %v, want ready", g.State())
	}
	if g.Score() != 70 {
		t.Fatalf("score after life loss: got %d, want 70", g.Score())
	}
	if g.activePellets != pelletsLeft || g.level.Pellets[0].Active {
		t.Fatal("life loss must not restore pellets")
	}
	if g.player.X != g.player.SpawnX || g.player.Y != g.player.SpawnY {
		t.Fatal("player not respawned")
	}
	if g.ghosts[0].X != g.ghosts[0].SpawnX || g.ghosts[0].State != entities.GhostChasing {
		t.Fatal("ghost not respawned chasing")
	}
}

func TestGameOverAfterDyingPauseOnLastLife(t *testing.T) {
	cfg := config.Default()
	cfg.StartingLives = 1
	g := newTestGame(t, cfg, "#####", "#P.G#", "#####")
	g.state = StatePlaying

	g.ghosts[0].X, g.ghosts[0].Y = g.player.X, g.player.Y
	g.handleCollisions()

	// Losing the last life still routes through the dying pause.
	if g.State() != StateDying || g.Lives() != 0 {
		t.Fatalf("got state=%v lives=%d, want dying with 0 lives", g.State(), g.Lives())
	}
	g.Update(frame, arcade.Input{})
	if g.State() != StateDying {
		t.Fatalf("game over arrived before the pause expired: %v", g.State())
	}

	g.Update(cfg.DyingDuration, arcade.Input{})
	if g.State() != StateGameOver {
		t.Fatalf("state after pause: got %v, want game_over", g.State())
	}

	g.Update(frame, arcade.Input{Confirm: true})
	if g.State() != StateReady || g.Lives() != 1 || g.Score() != 0 {
		t.Fatalf("restart: state=%v lives=%d score=%d", g.State(), g.Lives(), g.Score())
	}
	if g.activePellets != g.level.ActivePellets() || g.activePellets != 1 {
		t.Fatalf("restart pellets: got %d", g.activePellets)
	}
}

func TestOnEnterRestartsRound(t *testing.T) {
	g := newTestGame(t, nil, "#####", "#P.G#", "#####")
	g.state = StatePlaying
	g.score = 30
	g.level.Pellets[0].Active = false
	g.activePellets--

	g.OnEnter()
	if g.State() != StateReady || g.Score() != 0 || g.activePellets != 1 {
		t.Fatalf("re-enter: state=%v score=%d pellets=%d", g.State(), g.Score(), g.activePellets)
	}
}

func TestMapLoadFailureIsRecoverable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "level.txt")
	g := New(config.Default(), p)
	if g.MapLoaded() {
		t.Fatal("missing level should not load")
	}

	// Updates while broken are inert.
	g.Update(frame, arcade.Input{Move: entities.DirRight})
	if g.MapLoaded() {
		t.Fatal("movement input must not retry the load")
	}

	// Confirm retries; once the file exists the game becomes playable.
	if err := os.WriteFile(p, []byte("P.G"), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	g.Update(frame, arcade.Input{Confirm: true})
	if !g.MapLoaded() || g.State() != StateReady {
		t.Fatalf("retry failed: loaded=%v state=%v", g.MapLoaded(), g.State())
	}
}

func TestEmbeddedLevelLoads(t *testing.T) {
	g := New(config.Default(), "")
	if !g.MapLoaded() {
		t.Fatalf("embedded level failed to load: %v", g.loadErr)
	}
	if len(g.ghosts) != 4 {
		t.Fatalf("embedded ghosts: got %d, want 4", len(g.ghosts))
	}
	types := map[entities.GhostType]bool{}
	for _, gh := range g.ghosts {
		types[gh.Type] = true
	}
	if len(types) != 4 {
		t.Fatalf("ghost personalities not round-robin: %d distinct", len(types))
	}
	if g.activePellets == 0 {
		t.Fatal("embedded level has no pellets")
	}
}
