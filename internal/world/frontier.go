package world

// directions lists the neighbour offsets in the order the frontier receives them.
var directions = [4]Point{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// frontierCell is a candidate cell next to the carved maze, with the carved
// cell that discovered it.
type frontierCell struct {
	pos    Point
	parent Point
}

// frontier is an insertion-ordered set of candidate cells. Removal keeps the
// order of the remaining cells so seeded picks stay reproducible.
type frontier struct {
	cells []frontierCell
	index map[Point]struct{}
}

func newFrontier() *frontier {
	return &frontier{index: make(map[Point]struct{})}
}

func (f *frontier) len() int {
	return len(f.cells)
}

func (f *frontier) at(i int) frontierCell {
	return f.cells[i]
}

func (f *frontier) contains(p Point) bool {
	_, ok := f.index[p]
	return ok
}

// push appends c unless its position is already queued.
func (f *frontier) push(c frontierCell) {
	if f.contains(c.pos) {
		return
	}
	f.cells = append(f.cells, c)
	f.index[c.pos] = struct{}{}
}

func (f *frontier) removeAt(i int) {
	delete(f.index, f.cells[i].pos)
	f.cells = append(f.cells[:i], f.cells[i+1:]...)
}
