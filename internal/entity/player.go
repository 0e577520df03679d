// Package entity provides the player entity.
package entity

// Direction is the way the player is facing.
type Direction int

const (
	FacingDown Direction = iota
	FacingUp
	FacingLeft
	FacingRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// DirectionOf returns the facing implied by a movement delta.
// Horizontal movement wins over vertical, matching the sprite order left, right, down, up.
func DirectionOf(dx, dy int) (Direction, bool) {
	switch {
	case dx < 0:
		return FacingLeft, true
	case dx > 0:
		return FacingRight, true
	case dy > 0:
		return FacingDown, true
	case dy < 0:
		return FacingUp, true
	default:
		return FacingDown, false
	}
}

// Player represents the maze runner.
type Player struct {
	X, Y   int       // Current position in the maze
	Facing Direction // Last movement direction
	Steps  int       // Successful moves since the level started
}

// NewPlayer creates a player at the given position facing down.
func NewPlayer(x, y int) *Player {
	return &Player{
		X:      x,
		Y:      y,
		Facing: FacingDown,
	}
}

// Face turns the player towards the movement delta without moving.
func (p *Player) Face(dx, dy int) {
	if d, ok := DirectionOf(dx, dy); ok {
		p.Facing = d
	}
}

// Move updates the player position by the given delta and counts the step.
func (p *Player) Move(dx, dy int) {
	p.Face(dx, dy)
	p.X += dx
	p.Y += dy
	p.Steps++
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Symbol returns the display rune for the current facing.
func (p *Player) Symbol() rune {
	switch p.Facing {
	case FacingUp:
		return '^'
	case FacingLeft:
		return '<'
	case FacingRight:
		return '>'
	default:
		return 'v'
	}
}
