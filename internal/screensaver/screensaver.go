// Package screensaver holds the cosmetic channels: a bouncing logo, a
// static-noise effect, and a looping animation. None of them carry game
// state beyond their own animation fields.
package screensaver

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/arcade"
)

var palette = []color.RGBA{
	{R: 255, G: 64, B: 64, A: 255},
	{R: 64, G: 255, B: 64, A: 255},
	{R: 64, G: 128, B: 255, A: 255},
	{R: 255, G: 221, B: 0, A: 255},
	{R: 255, G: 64, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
}

// Logo bounces a label around the screen, changing color on every wall hit.
type Logo struct {
	label  string
	x, y   float64
	vx, vy float64
	colorI int
}

// NewLogo creates the bouncing-logo channel.
func NewLogo(label string) *Logo {
	return &Logo{
		label: label,
		x:     arcade.ScreenWidth / 3,
		y:     arcade.ScreenHeight / 3,
		vx:    140,
		vy:    110,
	}
}

func (l *Logo) Name() string { return "SCREENSAVER" }

func (l *Logo) OnEnter() {}

func (l *Logo) OnExit() {}

func (l *Logo) Update(dt float64, in arcade.Input) {
	w := float64(len(l.label) * 7)
	h := 13.0

	l.x += l.vx * dt
	l.y += l.vy * dt

	bounced := false
	if l.x <= 0 || l.x+w >= arcade.ScreenWidth {
		l.vx = -l.vx
		bounced = true
	}
	if l.y <= h || l.y+h >= arcade.ScreenHeight {
		l.vy = -l.vy
		bounced = true
	}
	if bounced {
		l.colorI = (l.colorI + 1) % len(palette)
	}
}

func (l *Logo) Draw(screen *ebiten.Image) {
	text.Draw(screen, l.label, basicfont.Face7x13, int(l.x), int(l.y), palette[l.colorI])
}

// Noise fills the screen with random grayscale static, refreshed every frame.
type Noise struct {
	rng *rand.Rand
	img *ebiten.Image
	pix []byte
}

// NewNoise creates the static channel. The seed only varies the pattern.
func NewNoise(seed int64) *Noise {
	return &Noise{rng: rand.New(rand.NewSource(seed))}
}

func (n *Noise) Name() string { return "STATIC" }

func (n *Noise) OnEnter() {}

func (n *Noise) OnExit() {}

func (n *Noise) Update(dt float64, in arcade.Input) {
	if n.pix == nil {
		n.pix = make([]byte, arcade.ScreenWidth*arcade.ScreenHeight*4)
	}
	for i := 0; i < len(n.pix); i += 4 {
		v := byte(n.rng.Intn(256))
		n.pix[i] = v
		n.pix[i+1] = v
		n.pix[i+2] = v
		n.pix[i+3] = 0xff
	}
}

func (n *Noise) Draw(screen *ebiten.Image) {
	if n.pix == nil {
		return
	}
	if n.img == nil {
		n.img = ebiten.NewImage(arcade.ScreenWidth, arcade.ScreenHeight)
	}
	n.img.WritePixels(n.pix)
	screen.DrawImage(n.img, nil)
}

// Looper plays an endless ripple animation: concentric circles expanding
// from the center on a fixed period.
type Looper struct {
	t float64
}

func NewLooper() *Looper { return &Looper{} }

func (lp *Looper) Name() string { return "DEMO LOOP" }

func (lp *Looper) OnEnter() { lp.t = 0 }

func (lp *Looper) OnExit() {}

func (lp *Looper) Update(dt float64, in arcade.Input) {
	lp.t += dt
}

func (lp *Looper) Draw(screen *ebiten.Image) {
	const period = 4.0
	const rings = 5
	maxR := math.Hypot(arcade.ScreenWidth, arcade.ScreenHeight) / 2

	phase := math.Mod(lp.t, period) / period
	for i := 0; i < rings; i++ {
		p := math.Mod(phase+float64(i)/rings, 1)
		r := float32(p * maxR)
		fade := 1 - p
		clr := palette[i%len(palette)]
		clr.R = byte(float64(clr.R) * fade)
		clr.G = byte(float64(clr.G) * fade)
		clr.B = byte(float64(clr.B) * fade)
		clr.A = byte(255 * fade)
		vector.StrokeCircle(screen, arcade.ScreenWidth/2, arcade.ScreenHeight/2, r, 3, clr, true)
	}
}
