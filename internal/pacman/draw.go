package pacman

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
)

var (
	wallColor   = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	frightColor = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	eatenColor  = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	hudColor    = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	alertColor  = color.RGBA{R: 255, G: 221, B: 0, A: 255}

	ghostColors = [4]color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // blinky
		{R: 255, G: 128, B: 255, A: 255}, // pinky
		{R: 0, G: 191, B: 255, A: 255},   // inky
		{R: 255, G: 128, B: 0, A: 255},   // clyde
	}
)

// Near the end of the frightened window ghosts flicker between blue and
// white. Purely cosmetic, derived from the timer value.
const flickerWindow = 2.0

// Draw implements arcade.Channel. It only reads core state.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.mapLoaded {
		g.drawLoadError(screen)
		return
	}

	ox, oy := float32(g.originX), float32(g.originY)

	for _, w := range g.level.Walls {
		vector.DrawFilledRect(screen, ox+float32(w.X), oy+float32(w.Y), float32(w.W), float32(w.H), wallColor, false)
	}
	for i := range g.level.Pellets {
		pel := &g.level.Pellets[i]
		if pel.Active {
			vector.DrawFilledCircle(screen, ox+float32(pel.X), oy+float32(pel.Y), float32(pel.Radius), pelletColor, true)
		}
	}
	for _, gh := range g.ghosts {
		vector.DrawFilledCircle(screen, ox+float32(gh.X), oy+float32(gh.Y), float32(gh.Radius), g.ghostColor(gh), true)
	}
	vector.DrawFilledCircle(screen, ox+float32(g.player.X), oy+float32(g.player.Y), float32(g.player.Radius), playerColor, true)

	text.Draw(screen, fmt.Sprintf("SCORE: %04d", g.score), basicfont.Face7x13, 20, 16, hudColor)
	hiLabel := fmt.Sprintf("HI: %04d", g.HighScore())
	text.Draw(screen, hiLabel, basicfont.Face7x13, (arcade.ScreenWidth-len(hiLabel)*7)/2, 16, hudColor)
	livesLabel := fmt.Sprintf("LIVES: %d", g.lives)
	text.Draw(screen, livesLabel, basicfont.Face7x13, arcade.ScreenWidth-20-len(livesLabel)*7, 16, hudColor)

	switch g.state {
	case StateReady:
		g.drawCentered(screen, "READY!", -20, alertColor)
	case StateGameOver:
		g.drawCentered(screen, "GAME OVER", -40, alertColor)
		g.drawCentered(screen, "PRESS [ENTER] TO RESTART", 20, hudColor)
	case StateVictory:
		g.drawCentered(screen, "YOU WIN!", -40, alertColor)
		g.drawCentered(screen, "PRESS [ENTER] TO RESTART", 20, hudColor)
	}
}

func (g *Game) ghostColor(gh *entities.Ghost) color.RGBA {
	switch gh.State {
	case entities.GhostFrightened:
		if gh.StateTimer < flickerWindow && int(math.Floor(gh.StateTimer*8))%2 == 0 {
			return pelletColor
		}
		return frightColor
	case entities.GhostEaten:
		return eatenColor
	default:
		return ghostColors[int(gh.Type)%len(ghostColors)]
	}
}

func (g *Game) drawLoadError(screen *ebiten.Image) {
	g.drawCentered(screen, "CHANNEL FAULT", -40, alertColor)
	msg := "no level loaded"
	if g.loadErr != nil {
		msg = g.loadErr.Error()
	}
	g.drawCentered(screen, msg, 0, pelletColor)
	g.drawCentered(screen, "PRESS [ENTER] TO RETRY", 40, hudColor)
}

func (g *Game) drawCentered(screen *ebiten.Image, s string, dy int, clr color.RGBA) {
	text.Draw(screen, s, basicfont.Face7x13, (arcade.ScreenWidth-len(s)*7)/2, arcade.ScreenHeight/2+dy, clr)
}
