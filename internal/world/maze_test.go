package world

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/mazerunner/internal/prng"
)

const testMaze5x5 = `#####
#...#
#.#.#
#.#.#
#####`

const level1Snapshot = `#########################
#.......................#
#.......................#
#.......................#
#...#########...#...#...#
#...........#...#...#...#
#...........#...#...#...#
#...........#...#...#...#
#...#...#############...#
#...#...............#...#
#...#...............#...#
#...#...............#...#
#...#...#...#...#####...#
#...#...#...#...#.......#
#...#...#...#...#.......#
#...#...#...#...#.......#
#...#####...#...#####...#
#.......#...#.......#...#
#.......#...#.......#...#
#.......#...#.......#...#
#...#...#####...#...#####
#...#.......#...#.......#
#...#.......#...#.......#
#...#.......#...#.......#
#########################`

const seedA11x9 = `###########
#.........#
#.#.#.#.###
#.#.#.#...#
###.###.###
#.....#...#
#.#.###.###
#.#.#.....#
###########`

func generate(t *testing.T, width, height, pathWidth int, src prng.Source) *Maze {
	t.Helper()
	m, err := NewMaze(width, height, pathWidth, src)
	if err != nil {
		t.Fatalf("NewMaze(%d, %d, %d) failed: %v", width, height, pathWidth, err)
	}
	m.Generate(context.Background())
	return m
}

func TestMazeSnapshots(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, pathWidth int
		seed                     string
		want                     string
	}{
		{"5x5 test", 5, 5, 1, "test", testMaze5x5},
		{"11x9 seedA", 11, 9, 1, "seedA", seedA11x9},
		{"level 1", 25, 25, 3, "1", level1Snapshot},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := generate(t, tc.width, tc.height, tc.pathWidth, prng.NewSeeded(tc.seed))
			if got := m.String(); got != tc.want {
				t.Errorf("layout mismatch\ngot:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestMazeReproducibility(t *testing.T) {
	m1 := generate(t, 21, 15, 1, prng.NewSeeded("seedA"))
	m2 := generate(t, 21, 15, 1, prng.NewSeeded("seedA"))

	for y := 0; y < m1.Height; y++ {
		for x := 0; x < m1.Width; x++ {
			if m1.IsWall(x, y) != m2.IsWall(x, y) {
				t.Errorf("Tile mismatch at (%d,%d)", x, y)
			}
		}
	}
	if m1.Iterations() != m2.Iterations() {
		t.Errorf("Iteration mismatch: %d != %d", m1.Iterations(), m2.Iterations())
	}

	// Regenerating in place gives the same layout again
	before := m1.String()
	m1.Generate(context.Background())
	if m1.String() != before {
		t.Error("Regenerating a seeded maze changed its layout")
	}
}

func TestMazeDifferentSeeds(t *testing.T) {
	m1 := generate(t, 21, 21, 1, prng.NewSeeded("seedA"))
	m2 := generate(t, 21, 21, 1, prng.NewSeeded("seedB"))

	if m1.String() == m2.String() {
		t.Error("Mazes with different seeds should not be identical")
	}
}

func TestMazeConnectivity(t *testing.T) {
	sources := map[string]func() prng.Source{
		"seeded":   func() prng.Source { return prng.NewSeeded("connect") },
		"unseeded": func() prng.Source { return prng.NewUnseeded(rand.New(rand.NewSource(7))) },
	}

	for name, newSource := range sources {
		for _, size := range [][2]int{{5, 5}, {7, 5}, {9, 13}, {25, 25}, {31, 17}} {
			for pathWidth := 1; pathWidth <= 4; pathWidth++ {
				m := generate(t, size[0], size[1], pathWidth, newSource())

				dist := m.Distances(Start)
				unreached := 0
				m.Walls.ForEach(func(x, y int, wall bool) {
					if !wall && dist.Get(x, y) == Unreachable {
						unreached++
					}
				})

				if !m.IsPassable(Start.X, Start.Y) {
					t.Errorf("%s %dx%d/%d: start is a wall", name, size[0], size[1], pathWidth)
				}
				if unreached > 0 {
					t.Errorf("%s %dx%d/%d: %d floor cells unreachable from start",
						name, size[0], size[1], pathWidth, unreached)
				}
			}
		}
	}
}

// Only the top and left borders are guaranteed: widening grows blocks
// towards the lower corner, so anchors at width-2 or height-2 open the right
// and bottom borders (e.g. 9x9 with path width 2).
func TestMazeTopLeftBorderStaysSolid(t *testing.T) {
	m := generate(t, 25, 25, 2, prng.NewSeeded("2"))

	for x := 0; x < m.Width; x++ {
		if !m.IsWall(x, 0) {
			t.Errorf("top border open at x=%d", x)
		}
	}
	for y := 0; y < m.Height; y++ {
		if !m.IsWall(0, y) {
			t.Errorf("left border open at y=%d", y)
		}
	}
}

func TestMazeIterationsVisitEveryAnchor(t *testing.T) {
	tests := []struct {
		width, height, pathWidth int
		anchors                  int
	}{
		{5, 5, 1, 4},
		{25, 25, 3, 36},
		{25, 25, 1, 144},
		{11, 9, 1, 20},
	}

	for _, tc := range tests {
		m := generate(t, tc.width, tc.height, tc.pathWidth, prng.NewSeeded("anchors"))
		if m.Iterations() != tc.anchors {
			t.Errorf("%dx%d/%d: Iterations() = %d, expected %d",
				tc.width, tc.height, tc.pathWidth, m.Iterations(), tc.anchors)
		}
	}
}

func TestNewMazeRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name                     string
		width, height, pathWidth int
		want                     error
	}{
		{"even width", 4, 5, 1, ErrInvalidDimensions},
		{"even height", 5, 6, 1, ErrInvalidDimensions},
		{"too small", 1, 5, 1, ErrInvalidDimensions},
		{"three wide", 3, 5, 1, ErrInvalidDimensions},
		{"three high", 5, 3, 1, ErrInvalidDimensions},
		{"zero path width", 5, 5, 0, ErrInvalidPathWidth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := NewMaze(tc.width, tc.height, tc.pathWidth, prng.NewSeeded("x"))
			if !errors.Is(err, tc.want) {
				t.Fatalf("NewMaze() error = %v, expected %v", err, tc.want)
			}
			if m != nil {
				t.Error("NewMaze() returned a maze alongside an error")
			}
		})
	}
}

func TestMazeTiles(t *testing.T) {
	m := generate(t, 5, 5, 1, prng.NewSeeded("test"))

	tests := []struct {
		name string
		x, y int
		want Tile
	}{
		{"corner wall", 0, 0, TileWall},
		{"start", 1, 1, TileStart},
		{"corridor", 2, 1, TileFloor},
		{"inner wall", 2, 2, TileWall},
		{"outside", -1, 2, TileWall},
		{"outside far", 9, 9, TileWall},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.GetTile(tc.x, tc.y); got != tc.want {
				t.Errorf("GetTile(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.want)
			}
		})
	}

	if m.FloorCount() != 7 {
		t.Errorf("FloorCount() = %d, expected 7", m.FloorCount())
	}
	if !strings.Contains(m.String(), "#...#") {
		t.Errorf("String() missing corridor row:\n%s", m.String())
	}
}

func TestPathWidthWidensFromLowerCorner(t *testing.T) {
	m := generate(t, 7, 7, 2, prng.NewSeeded("wide"))

	// Anchors sit at 1 and 4; each widens towards +x/+y only.
	for _, p := range []Point{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if m.IsWall(p.X, p.Y) {
			t.Errorf("(%d,%d) should be carved by the start block", p.X, p.Y)
		}
	}
	if !m.IsWall(0, 0) {
		t.Error("(0,0) should stay solid")
	}
}
