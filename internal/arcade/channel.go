// Package arcade is the channel-switching shell: a fixed set of small games
// and visualizers behind one capability interface, with a console that steps
// exactly one of them per frame.
package arcade

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/entities"
)

// Screen dimensions shared by every channel, in pixels.
const (
	ScreenWidth  = 840
	ScreenHeight = 480
)

// Input is the per-frame input contract delivered to the active channel.
// Move is the directional intent latched from held keys; Confirm is an
// edge-triggered restart/confirm signal.
type Input struct {
	Move    entities.Direction
	Confirm bool
}

// Channel is one selectable program. The console guarantees OnExit and
// OnEnter bracket every switch and that Update is never called between them.
type Channel interface {
	Name() string
	OnEnter()
	OnExit()
	Update(dt float64, in Input)
	Draw(screen *ebiten.Image)
}
