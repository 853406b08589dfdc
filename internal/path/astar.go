// Package path computes shortest walkable routes over a grid.Level using A*
// with 4-directional connectivity and unit edge cost.
package path

import (
	"container/heap"
	"math"

	"github.com/9MidhunPM/Nostalgia-Sim/internal/grid"
)

// node is one arena entry. Parent is an index into the same arena, or -1.
// The arena is reset at the start of every query; no state survives between
// calls.
type node struct {
	col, row int
	wall     bool
	visited  bool
	local    float64 // cost from start
	global   float64 // local + heuristic
	parent   int
}

// Finder owns the node arena for one level. It is not safe for concurrent
// use, which matches the single control loop stepping the core.
type Finder struct {
	level *grid.Level
	nodes []node
}

// NewFinder builds the arena for a loaded level.
func NewFinder(level *grid.Level) *Finder {
	f := &Finder{
		level: level,
		nodes: make([]node, level.Width*level.Height),
	}
	for row := 0; row < level.Height; row++ {
		for col := 0; col < level.Width; col++ {
			i := row*level.Width + col
			f.nodes[i].col = col
			f.nodes[i].row = row
			f.nodes[i].wall = level.IsWall(col, row)
		}
	}
	return f
}

func (f *Finder) index(p grid.Point) int {
	return p.Row*f.level.Width + p.Col
}

// FindPath returns the tile sequence from start to goal, start first. When the
// goal is unreachable the result is the parent chain that exists up to the
// last examined node; callers must treat a path of length <= 1 as "no motion
// this tile". Out-of-bounds endpoints yield nil.
func (f *Finder) FindPath(start, goal grid.Point) []grid.Point {
	if !f.level.InBounds(start) || !f.level.InBounds(goal) {
		return nil
	}

	for i := range f.nodes {
		f.nodes[i].visited = false
		f.nodes[i].local = math.Inf(1)
		f.nodes[i].global = math.Inf(1)
		f.nodes[i].parent = -1
	}

	startIdx := f.index(start)
	goalIdx := f.index(goal)
	f.nodes[startIdx].local = 0
	f.nodes[startIdx].global = heuristic(start, goal)

	open := &openSet{arena: f.nodes}
	heap.Init(open)
	heap.Push(open, startIdx)

	for open.Len() > 0 {
		current := heap.Pop(open).(int)
		if f.nodes[current].visited {
			continue // finalized nodes are never re-expanded
		}
		if current == goalIdx {
			break
		}
		f.nodes[current].visited = true

		for _, d := range [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
			ncol, nrow := f.nodes[current].col+d[0], f.nodes[current].row+d[1]
			if ncol < 0 || ncol >= f.level.Width || nrow < 0 || nrow >= f.level.Height {
				continue
			}
			ni := nrow*f.level.Width + ncol
			if f.nodes[ni].wall || f.nodes[ni].visited {
				continue
			}
			tentative := f.nodes[current].local + 1
			if tentative < f.nodes[ni].local {
				f.nodes[ni].parent = current
				f.nodes[ni].local = tentative
				f.nodes[ni].global = tentative + heuristic(grid.Point{Col: ncol, Row: nrow}, goal)
				heap.Push(open, ni)
			}
		}
	}

	// Walk the parent chain back from the goal. If the goal was never
	// relaxed this produces just the goal tile itself.
	var rev []grid.Point
	for i := goalIdx; i != -1; i = f.nodes[i].parent {
		rev = append(rev, grid.Point{Col: f.nodes[i].col, Row: f.nodes[i].row})
	}
	path := make([]grid.Point, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

func heuristic(a, b grid.Point) float64 {
	dx := float64(a.Col - b.Col)
	dy := float64(a.Row - b.Row)
	return math.Sqrt(dx*dx + dy*dy)
}

// openSet is a min-heap of arena indices ordered by global cost, so ties on
// the frontier break toward the lowest combined (local + heuristic) cost.
type openSet struct {
	arena []node
	items []int
}

func (o *openSet) Len() int { return len(o.items) }

func (o *openSet) Less(i, j int) bool {
	return o.arena[o.items[i]].global < o.arena[o.items[j]].global
}

func (o *openSet) Swap(i, j int) { o.items[i], o.items[j] = o.items[j], o.items[i] }

func (o *openSet) Push(x any) { o.items = append(o.items, x.(int)) }

func (o *openSet) Pop() any {
	last := o.items[len(o.items)-1]
	o.items = o.items[:len(o.items)-1]
	return last
}
