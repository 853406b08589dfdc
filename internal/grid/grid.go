// Package grid builds the static level model from a text layout: wall cells,
// wall rectangles, pellets, and spawn points. The model is rebuilt wholesale
// on load; nothing mutates it afterwards except pellet active flags.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Level source characters.
const (
	charWall        = '#'
	charPellet      = '.'
	charPowerPellet = 'O'
	charPlayerSpawn = 'P'
	charGhostSpawn  = 'G'
)

const (
	PelletPoints      = 10
	PowerPelletPoints = 50

	pelletRadiusFrac = 1.0 / 6.0
	powerRadiusFrac  = 1.0 / 3.0
)

// Point addresses one tile by integer column and row.
type Point struct {
	Col, Row int
}

// Tile is the static classification of one grid cell.
type Tile int

const (
	TileOpen Tile = iota
	TileWall
)

// Wall is a static rectangle in world space, immutable after load.
type Wall struct {
	X, Y, W, H float64
}

// Pellet is a collectible. Active is the only mutable field; it is cleared on
// pickup and restored only by a full game reset, never by a life-loss reset.
type Pellet struct {
	X, Y    float64
	Radius  float64
	Active  bool
	Power   bool
	Points  int
	Tile    Point
}

// MapLoadError reports that a level source could not be read or was unusable.
// It is non-fatal: callers surface it as an error display and offer a retry.
type MapLoadError struct {
	Path string
	Err  error
}

func (e *MapLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load map: %v", e.Err)
	}
	return fmt.Sprintf("load map %q: %v", e.Path, e.Err)
}

func (e *MapLoadError) Unwrap() error { return e.Err }

// Level is the parsed grid plus everything derived from it. Width and Height
// are tiles; TileSize is world units per tile.
type Level struct {
	Width    int
	Height   int
	TileSize float64
	Tiles    [][]Tile

	Walls       []Wall
	Pellets     []Pellet
	PlayerSpawn Point
	GhostSpawns []Point

	hasPlayer bool
}

// LoadFile reads a level layout from disk. A missing or unreadable file
// produces a *MapLoadError carrying the path.
func LoadFile(path string, tileSize float64) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &MapLoadError{Path: path, Err: err}
	}
	defer f.Close()
	lvl, err := Load(f, tileSize)
	if err != nil {
		if mle, ok := err.(*MapLoadError); ok {
			mle.Path = path
			return nil, mle
		}
		return nil, &MapLoadError{Path: path, Err: err}
	}
	return lvl, nil
}

// Load parses a level layout, one row per line. Width is the longest line
// seen; short lines are padded with open cells. The error is always a
// *MapLoadError so callers can degrade without inspecting the cause.
func Load(r io.Reader, tileSize float64) (*Level, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &MapLoadError{Err: err}
	}
	if len(lines) == 0 {
		return nil, &MapLoadError{Err: fmt.Errorf("level source is empty")}
	}

	lvl := &Level{
		Height:   len(lines),
		TileSize: tileSize,
	}
	for _, line := range lines {
		if len(line) > lvl.Width {
			lvl.Width = len(line)
		}
	}

	lvl.Tiles = make([][]Tile, lvl.Height)
	for row := range lvl.Tiles {
		lvl.Tiles[row] = make([]Tile, lvl.Width)
	}

	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			p := Point{Col: col, Row: row}
			cx, cy := lvl.CenterOf(p)
			switch line[col] {
			case charWall:
				lvl.Tiles[row][col] = TileWall
				lvl.Walls = append(lvl.Walls, Wall{
					X: float64(col) * tileSize,
					Y: float64(row) * tileSize,
					W: tileSize,
					H: tileSize,
				})
			case charPellet:
				lvl.Pellets = append(lvl.Pellets, Pellet{
					X: cx, Y: cy,
					Radius: tileSize * pelletRadiusFrac,
					Active: true,
					Points: PelletPoints,
					Tile:   p,
				})
			case charPowerPellet:
				lvl.Pellets = append(lvl.Pellets, Pellet{
					X: cx, Y: cy,
					Radius: tileSize * powerRadiusFrac,
					Active: true,
					Power:  true,
					Points: PowerPelletPoints,
					Tile:   p,
				})
			case charPlayerSpawn:
				lvl.PlayerSpawn = p
				lvl.hasPlayer = true
			case charGhostSpawn:
				lvl.GhostSpawns = append(lvl.GhostSpawns, p)
			}
		}
	}

	if !lvl.hasPlayer {
		return nil, &MapLoadError{Err: fmt.Errorf("level has no player spawn (%q)", string(charPlayerSpawn))}
	}
	return lvl, nil
}

// IsWall reports whether the tile at (col, row) blocks movement. Any
// coordinate outside [0,Width)x[0,Height) counts as a wall, so the level has
// an implicit solid boundary and movement code needs no bounds checks.
func (l *Level) IsWall(col, row int) bool {
	if col < 0 || col >= l.Width || row < 0 || row >= l.Height {
		return true
	}
	return l.Tiles[row][col] == TileWall
}

// InBounds reports whether p addresses a real cell.
func (l *Level) InBounds(p Point) bool {
	return p.Col >= 0 && p.Col < l.Width && p.Row >= 0 && p.Row < l.Height
}

// TileAt maps a continuous world position to the tile containing it.
func (l *Level) TileAt(x, y float64) Point {
	return Point{Col: int(x / l.TileSize), Row: int(y / l.TileSize)}
}

// CenterOf returns the world-space center of a tile.
func (l *Level) CenterOf(p Point) (x, y float64) {
	return float64(p.Col)*l.TileSize + l.TileSize/2, float64(p.Row)*l.TileSize + l.TileSize/2
}

// ActivePellets counts pellets not yet collected.
func (l *Level) ActivePellets() int {
	n := 0
	for i := range l.Pellets {
		if l.Pellets[i].Active {
			n++
		}
	}
	return n
}

// ResetPellets reactivates every pellet. Only a full game reset calls this.
func (l *Level) ResetPellets() {
	for i := range l.Pellets {
		l.Pellets[i].Active = true
	}
}

// PixelWidth and PixelHeight are the level's world-space dimensions.
func (l *Level) PixelWidth() float64  { return float64(l.Width) * l.TileSize }
func (l *Level) PixelHeight() float64 { return float64(l.Height) * l.TileSize }
