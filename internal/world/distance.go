package world

import "github.com/samdwyer/mazerunner/internal/grid"

// Unreachable marks cells that Distances could not reach.
const Unreachable = -1

// Distances returns the number of 4-directional steps from the given cell to every
// passable cell. Walls and unreachable cells hold Unreachable.
func (m *Maze) Distances(from Point) *grid.Grid[int] {
	dist := grid.New(m.Width, m.Height, Unreachable)
	if !m.IsPassable(from.X, from.Y) {
		return dist
	}

	dist.Set(from.X, from.Y, 0)
	queue := []Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist.Get(cur.X, cur.Y)

		for _, dir := range directions {
			next := cur.Add(dir.X, dir.Y)
			if !m.IsPassable(next.X, next.Y) || dist.Get(next.X, next.Y) != Unreachable {
				continue
			}
			dist.Set(next.X, next.Y, d+1)
			queue = append(queue, next)
		}
	}
	return dist
}

// ShortestPath returns the step count of the shortest route between a and b,
// or Unreachable.
func (m *Maze) ShortestPath(a, b Point) int {
	if !m.Walls.Exists(b.X, b.Y) {
		return Unreachable
	}
	return m.Distances(a).Get(b.X, b.Y)
}
