package world

import (
	"errors"
	"fmt"
)

// ErrDegenerateGrid is returned when a goal corner falls outside the maze.
var ErrDegenerateGrid = errors.New("world: maze too small to place a goal")

// GoalCorners returns the three candidate goal cells: the corners of the maze
// interior other than the start corner.
func GoalCorners(width, height int) [3]Point {
	return [3]Point{
		{X: width - 2, Y: height - 2},
		{X: 1, Y: height - 2},
		{X: width - 2, Y: 1},
	}
}

// PlaceGoal picks one of the GoalCorners with equal probability and records it
// as the maze's goal. Seeded mazes always pick the same corner.
func (m *Maze) PlaceGoal() (Point, error) {
	corner := m.src.Range("", 1, 3)
	goal := GoalCorners(m.Width, m.Height)[corner-1]

	if !m.Walls.Exists(goal.X, goal.Y) {
		return Point{}, fmt.Errorf("%w: corner %d at (%d,%d)", ErrDegenerateGrid, corner, goal.X, goal.Y)
	}

	m.Goal = goal
	m.hasGoal = true
	return goal, nil
}

// HasGoal reports whether PlaceGoal has run since the last Generate.
func (m *Maze) HasGoal() bool {
	return m.hasGoal
}
