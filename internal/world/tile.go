// Package world provides maze generation and map queries.
package world

import "fmt"

// Tile classifies a maze cell for rendering and collision.
type Tile rune

const (
	// TileWall is a solid cell.
	TileWall Tile = '#'
	// TileFloor is a carved corridor cell.
	TileFloor Tile = '.'
	// TileStart marks the player's entry cell.
	TileStart Tile = 'S'
	// TileGoal marks the exit the player has to reach.
	TileGoal Tile = '$'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t != TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// String returns a lowercase tile name.
func (t Tile) String() string {
	switch t {
	case TileWall:
		return "wall"
	case TileFloor:
		return "floor"
	case TileStart:
		return "start"
	case TileGoal:
		return "goal"
	default:
		return fmt.Sprintf("tile(%q)", rune(t))
	}
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
