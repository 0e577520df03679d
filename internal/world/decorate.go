package world

import (
	"strconv"

	"github.com/samdwyer/mazerunner/internal/grid"
)

// Variant holds the palette indices chosen for one cell.
// Wall is -1 for floor cells.
type Variant struct {
	Floor int
	Wall  int
}

// Decorate picks a floor palette index for every cell and a wall palette index
// for every wall cell. Seeded mazes key each draw on the cell coordinates, so
// the same seed always gets the same textures. Palette choice never changes
// the layout.
func (m *Maze) Decorate(floorN, wallN int) *grid.Grid[Variant] {
	floorN = max(floorN, 1)
	wallN = max(wallN, 1)

	variants := grid.New(m.Width, m.Height, Variant{Wall: -1})

	variants.ForEach(func(x, y int, v Variant) {
		v.Floor = m.src.Range(cellKey(x, y), 0, floorN-1)
		variants.Set(x, y, v)
	})

	m.Walls.ForEach(func(x, y int, wall bool) {
		if !wall {
			return
		}
		v := variants.Get(x, y)
		v.Wall = m.src.Range(cellKey(x, y), 0, wallN-1)
		variants.Set(x, y, v)
	})

	return variants
}

// cellKey is the salt for per-cell draws: the decimal x followed by the decimal y.
func cellKey(x, y int) string {
	return strconv.Itoa(x) + strconv.Itoa(y)
}
