package arcade

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
	"github.com/9MidhunPM/Nostalgia-Sim/internal/logger"
)

// Console implements ebiten.Game over a fixed sequence of channels. It owns
// input sampling and channel selection; the active channel owns everything
// else. Switches are delivered as OnExit then OnEnter, never mid-update.
type Console struct {
	channels []Channel
	active   int
}

// NewConsole creates a console over the given channels. The slice must not be
// empty; startChannel is clamped into range. The initial channel receives
// OnEnter before the first Update.
func NewConsole(channels []Channel, startChannel int) *Console {
	if startChannel < 0 || startChannel >= len(channels) {
		startChannel = 0
	}
	c := &Console{channels: channels, active: startChannel}
	c.channels[c.active].OnEnter()
	return c
}

// Active returns the currently selected channel.
func (c *Console) Active() Channel {
	return c.channels[c.active]
}

// SwitchTo selects the channel at index i, delivering OnExit/OnEnter around
// the change. Out-of-range or same-channel switches are no-ops.
func (c *Console) SwitchTo(i int) {
	if i < 0 || i >= len(c.channels) || i == c.active {
		return
	}
	from := c.channels[c.active]
	from.OnExit()
	c.active = i
	to := c.channels[c.active]
	to.OnEnter()
	logger.Log.WithFields(map[string]interface{}{
		"from": from.Name(),
		"to":   to.Name(),
	}).Debug("channel switch")
}

// Update samples input, handles channel selection, and steps the active
// channel with a fixed per-tick timestep.
func (c *Console) Update() error {
	for i := 0; i < len(c.channels) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			c.SwitchTo(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		c.SwitchTo((c.active + 1) % len(c.channels))
	}

	dt := 1.0 / float64(ebiten.TPS())
	c.channels[c.active].Update(dt, sampleInput())
	return nil
}

// Draw clears the screen and delegates to the active channel, then overlays
// the channel indicator.
func (c *Console) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	c.channels[c.active].Draw(screen)

	label := fmt.Sprintf("CH %d  %s", c.active+1, c.channels[c.active].Name())
	text.Draw(screen, label, basicfont.Face7x13, ScreenWidth-len(label)*7-8, ScreenHeight-6, color.RGBA{R: 0, G: 255, B: 0, A: 255})
}

func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// sampleInput reads the held directional keys (arrows and WASD) and the
// edge-triggered confirm key.
func sampleInput() Input {
	var in Input
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW):
		in.Move = entities.DirUp
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS):
		in.Move = entities.DirDown
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA):
		in.Move = entities.DirLeft
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD):
		in.Move = entities.DirRight
	}
	in.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter)
	return in
}
