package world

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/grid"
	"github.com/samdwyer/mazerunner/internal/prng"
	"github.com/samdwyer/mazerunner/internal/telemetry"
)

var (
	// ErrInvalidDimensions is returned for even or too small maze sizes.
	ErrInvalidDimensions = errors.New("world: maze dimensions must be odd and at least 5")
	// ErrInvalidPathWidth is returned when the corridor width is below 1.
	ErrInvalidPathWidth = errors.New("world: path width must be at least 1")
)

// Start is the cell the frontier grows from and where the player enters.
var Start = Point{X: 1, Y: 1}

// Maze is a rectangular maze carved with randomized Prim's algorithm.
//
// Carving works on anchor cells spaced 1+PathWidth apart; each carved cell is
// then widened into a PathWidth x PathWidth block anchored at its lower corner.
type Maze struct {
	Width     int
	Height    int
	PathWidth int
	Walls     *grid.Grid[bool] // true = solid
	Goal      Point

	src        prng.Source
	hasGoal    bool
	iterations int
	carved     int
}

// MinSize is the smallest maze side. Below it a goal corner lands on Start.
const MinSize = 5

// ValidateDimensions checks the maze parameters without allocating anything.
func ValidateDimensions(width, height, pathWidth int) error {
	if width%2 == 0 || height%2 == 0 || width < MinSize || height < MinSize {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if pathWidth < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPathWidth, pathWidth)
	}
	return nil
}

// NewMaze creates a maze filled with walls. Call Generate to carve it.
func NewMaze(width, height, pathWidth int, src prng.Source) (*Maze, error) {
	if err := ValidateDimensions(width, height, pathWidth); err != nil {
		return nil, err
	}
	if src == nil {
		src = prng.NewUnseeded(nil)
	}

	return &Maze{
		Width:     width,
		Height:    height,
		PathWidth: pathWidth,
		Walls:     grid.New(width, height, true),
		src:       src,
	}, nil
}

// Generate carves the maze. Seeded sources always produce the same layout.
func (m *Maze) Generate(ctx context.Context) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()

	m.Walls.Fill(true)
	m.hasGoal = false

	path := grid.New(m.Width, m.Height, false)
	m.grow(path)
	m.widen(path)

	span.SetAttributes(
		attribute.Int("maze.width", m.Width),
		attribute.Int("maze.height", m.Height),
		attribute.Int("maze.path_width", m.PathWidth),
		attribute.Bool("maze.seeded", m.src.Seeded()),
		attribute.String("maze.seed", m.src.Seed()),
		attribute.Int("maze.iterations", m.iterations),
		attribute.Int("maze.carved_cells", m.carved),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
}

// grow runs the frontier loop, marking anchor cells and the corridors between
// them in path.
func (m *Maze) grow(path *grid.Grid[bool]) {
	step := 1 + m.PathWidth

	f := newFrontier()
	f.push(frontierCell{pos: Start, parent: Start})

	i := 0
	for ; f.len() > 0; i++ {
		pick := m.src.Range(strconv.Itoa(i), 0, f.len()-1)
		cell := f.at(pick)

		path.Set(cell.pos.X, cell.pos.Y, true)
		carveBetween(path, cell.pos, cell.parent)

		for _, d := range directions {
			next := cell.pos.Add(d.X*step, d.Y*step)
			if f.contains(next) || !path.Exists(next.X, next.Y) || path.Get(next.X, next.Y) {
				continue
			}
			f.push(frontierCell{pos: next, parent: cell.pos})
		}

		f.removeAt(pick)
	}
	m.iterations = i
}

// carveBetween marks the cells strictly between a and b, which share a row or column.
func carveBetween(path *grid.Grid[bool], a, b Point) {
	switch {
	case a.X != b.X:
		for x := min(a.X, b.X) + 1; x < max(a.X, b.X); x++ {
			path.Set(x, a.Y, true)
		}
	case a.Y != b.Y:
		for y := min(a.Y, b.Y) + 1; y < max(a.Y, b.Y); y++ {
			path.Set(a.X, y, true)
		}
	}
}

// widen clears a PathWidth x PathWidth block of walls for every carved cell.
// Block cells past the grid edge are skipped.
func (m *Maze) widen(path *grid.Grid[bool]) {
	m.carved = 0
	path.ForEach(func(x, y int, carved bool) {
		if !carved {
			return
		}
		m.carved++
		for dx := 0; dx < m.PathWidth; dx++ {
			for dy := 0; dy < m.PathWidth; dy++ {
				if m.Walls.Exists(x+dx, y+dy) {
					m.Walls.Set(x+dx, y+dy, false)
				}
			}
		}
	})
}

// Source returns the random source the maze draws from.
func (m *Maze) Source() prng.Source {
	return m.src
}

// Iterations returns the number of frontier picks made by the last Generate.
func (m *Maze) Iterations() int {
	return m.iterations
}

// IsWall reports whether (x, y) is solid. Cells outside the maze are walls.
func (m *Maze) IsWall(x, y int) bool {
	if !m.Walls.Exists(x, y) {
		return true
	}
	return m.Walls.Get(x, y)
}

// IsPassable returns true if the given position can be walked on.
func (m *Maze) IsPassable(x, y int) bool {
	return !m.IsWall(x, y)
}

// GetTile returns the tile at the given position, including start and goal markers.
func (m *Maze) GetTile(x, y int) Tile {
	switch {
	case m.IsWall(x, y):
		return TileWall
	case m.hasGoal && x == m.Goal.X && y == m.Goal.Y:
		return TileGoal
	case x == Start.X && y == Start.Y:
		return TileStart
	default:
		return TileFloor
	}
}

// FloorCount returns the number of passable cells.
func (m *Maze) FloorCount() int {
	n := 0
	m.Walls.ForEach(func(_, _ int, wall bool) {
		if !wall {
			n++
		}
	})
	return n
}

// String renders the wall layout row by row using '#' and '.'.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.Width + 1) * m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Walls.Get(x, y) {
				b.WriteRune(TileWall.Rune())
			} else {
				b.WriteRune(TileFloor.Rune())
			}
		}
		if y < m.Height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
