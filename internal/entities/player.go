package entities

// Player is the user-controlled entity. Positions are continuous world
// coordinates; SpawnX/SpawnY are fixed at level load and used by the round
// controller to reset the player in place.
type Player struct {
	X, Y           float64
	SpawnX, SpawnY float64
	CurrentDir     Direction
	DesiredDir     Direction
	Speed          float64 // pixels per second
	Radius         float64
}

// ResetToSpawn moves the player back to its spawn tile and clears both
// headings. Speed and radius are load-time constants and survive resets.
func (p *Player) ResetToSpawn() {
	p.X, p.Y = p.SpawnX, p.SpawnY
	p.CurrentDir = DirNone
	p.DesiredDir = DirNone
}
