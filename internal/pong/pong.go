// Package pong is the Pong channel: player paddle against a chasing AI,
// first to three points.
package pong

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
)

const (
	paddleW = 10.0
	paddleH = 100.0
	paddleX = 30.0

	playerSpeed = 500.0
	aiSpeed     = 350.0 // slower than the player so the AI is beatable

	ballRadius       = 8.0
	initialBallSpeed = 350.0
	speedUpFactor    = 1.1

	winningScore = 3
)

type state int

const (
	statePlaying state = iota
	stateGameOver
)

// Game is the whole Pong simulation. Paddles store only their top Y; X
// positions are fixed.
type Game struct {
	playerY float64
	aiY     float64

	ballX, ballY   float64
	ballVX, ballVY float64

	playerScore int
	aiScore     int

	state  state
	winner string
}

func New() *Game {
	g := &Game{}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.playerY = (arcade.ScreenHeight - paddleH) / 2
	g.aiY = (arcade.ScreenHeight - paddleH) / 2
	g.playerScore = 0
	g.aiScore = 0
	g.state = statePlaying
	g.winner = ""
	g.serve(initialBallSpeed)
}

// serve recenters the ball. vx keeps its sign so a point serves toward the
// scored-upon side.
func (g *Game) serve(vx float64) {
	g.ballX = arcade.ScreenWidth / 2
	g.ballY = arcade.ScreenHeight / 2
	g.ballVX = vx
	g.ballVY = initialBallSpeed
	if rand.Intn(2) == 0 {
		g.ballVY = -initialBallSpeed
	}
}

// Name implements arcade.Channel.
func (g *Game) Name() string { return "PONG" }

// OnEnter implements arcade.Channel; re-entry restarts the match.
func (g *Game) OnEnter() { g.reset() }

// OnExit implements arcade.Channel.
func (g *Game) OnExit() {}

// Update implements arcade.Channel.
func (g *Game) Update(dt float64, in arcade.Input) {
	if g.state == stateGameOver {
		if in.Confirm {
			g.reset()
		}
		return
	}

	switch in.Move {
	case entities.DirUp:
		g.playerY -= playerSpeed * dt
	case entities.DirDown:
		g.playerY += playerSpeed * dt
	}
	g.playerY = clamp(g.playerY, 0, arcade.ScreenHeight-paddleH)

	// Simple chase AI.
	if g.aiY+paddleH/2 < g.ballY {
		g.aiY += aiSpeed * dt
	} else if g.aiY+paddleH/2 > g.ballY {
		g.aiY -= aiSpeed * dt
	}
	g.aiY = clamp(g.aiY, 0, arcade.ScreenHeight-paddleH)

	g.ballX += g.ballVX * dt
	g.ballY += g.ballVY * dt

	if g.ballY+ballRadius >= arcade.ScreenHeight || g.ballY-ballRadius <= 0 {
		g.ballVY = -g.ballVY
	}

	playerRect := rect{paddleX, g.playerY, paddleW, paddleH}
	aiRect := rect{arcade.ScreenWidth - paddleX - paddleW, g.aiY, paddleW, paddleH}
	if g.ballVX < 0 && playerRect.hitsCircle(g.ballX, g.ballY, ballRadius) {
		g.deflect(playerRect)
	}
	if g.ballVX > 0 && aiRect.hitsCircle(g.ballX, g.ballY, ballRadius) {
		g.deflect(aiRect)
	}

	if g.ballX-ballRadius > arcade.ScreenWidth {
		g.playerScore++
		g.serve(-initialBallSpeed)
	}
	if g.ballX+ballRadius < 0 {
		g.aiScore++
		g.serve(initialBallSpeed)
	}

	if g.playerScore >= winningScore {
		g.winner = "PLAYER WINS!"
		g.state = stateGameOver
	} else if g.aiScore >= winningScore {
		g.winner = "AI WINS!"
		g.state = stateGameOver
	}
}

// deflect reverses the ball with a speed-up and steers the vertical speed by
// where the ball struck the paddle.
func (g *Game) deflect(r rect) {
	g.ballVX = -g.ballVX * speedUpFactor
	g.ballVY = (g.ballY - (r.y + r.h/2)) / (r.h / 2) * math.Abs(g.ballVX)
}

// Draw implements arcade.Channel.
func (g *Game) Draw(screen *ebiten.Image) {
	green := color.RGBA{R: 0, G: 255, B: 0, A: 255}

	for y := 0; y < arcade.ScreenHeight; y += 25 {
		vector.DrawFilledRect(screen, arcade.ScreenWidth/2-2, float32(y), 4, 15, green, false)
	}

	vector.DrawFilledRect(screen, paddleX, float32(g.playerY), paddleW, paddleH, green, false)
	vector.DrawFilledRect(screen, arcade.ScreenWidth-paddleX-paddleW, float32(g.aiY), paddleW, paddleH, green, false)
	vector.DrawFilledCircle(screen, float32(g.ballX), float32(g.ballY), ballRadius, green, true)

	text.Draw(screen, fmt.Sprintf("%d", g.playerScore), basicfont.Face7x13, arcade.ScreenWidth/4, 30, green)
	text.Draw(screen, fmt.Sprintf("%d", g.aiScore), basicfont.Face7x13, 3*arcade.ScreenWidth/4, 30, green)

	if g.state == stateGameOver {
		text.Draw(screen, g.winner, basicfont.Face7x13, (arcade.ScreenWidth-len(g.winner)*7)/2, arcade.ScreenHeight/2-20, green)
		hint := "PRESS [ENTER] TO PLAY AGAIN"
		text.Draw(screen, hint, basicfont.Face7x13, (arcade.ScreenWidth-len(hint)*7)/2, arcade.ScreenHeight/2+20, green)
	}
}

type rect struct {
	x, y, w, h float64
}

// hitsCircle is a circle/AABB overlap test against the closest point.
func (r rect) hitsCircle(cx, cy, radius float64) bool {
	nx := clamp(cx, r.x, r.x+r.w)
	ny := clamp(cy, r.y, r.y+r.h)
	dx, dy := cx-nx, cy-ny
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
