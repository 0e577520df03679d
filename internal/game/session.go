package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/samdwyer/mazerunner/internal/entity"
	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/grid"
	"github.com/samdwyer/mazerunner/internal/prng"
	"github.com/samdwyer/mazerunner/internal/storage"
	"github.com/samdwyer/mazerunner/internal/world"
)

// ErrGoalUnreachable is returned when the chosen corner is not connected to
// the start. Widths that leave the far corners as wall trigger it.
var ErrGoalUnreachable = errors.New("game: goal is not reachable from the start")

// Session is one attempt at one level.
type Session struct {
	Level    *gamedata.LevelDef
	Random   bool
	Maze     *world.Maze
	Variants *grid.Grid[world.Variant]
	Player   *entity.Player
	Par      int // Shortest start-to-goal walk in steps

	seed       string
	startedAt  time.Time
	finishedAt time.Time
}

// NewSession generates the maze for a level and places the player and goal.
// An empty seed gives an unseeded maze drawn from rng.
func NewSession(ctx context.Context, level *gamedata.LevelDef, seed string, random bool, rng *rand.Rand, now time.Time) (*Session, error) {
	src := prng.FromSeed(seed, rng)

	maze, err := world.NewMaze(level.Width, level.Height, level.PathWidth, src)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.ID, err)
	}
	maze.Generate(ctx)

	goal, err := maze.PlaceGoal()
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", level.ID, err)
	}
	par := maze.ShortestPath(world.Start, goal)
	if par == world.Unreachable {
		return nil, fmt.Errorf("level %q seed %q: %w", level.ID, seed, ErrGoalUnreachable)
	}

	return &Session{
		Level:     level,
		Random:    random,
		Maze:      maze,
		Variants:  maze.Decorate(len(level.Floor), len(level.Wall)),
		Player:    entity.NewPlayer(world.Start.X, world.Start.Y),
		Par:       par,
		seed:      seed,
		startedAt: now,
	}, nil
}

// Seed returns the seed the maze was generated from, empty if unseeded.
func (s *Session) Seed() string {
	return s.seed
}

// Goal returns the goal position.
func (s *Session) Goal() world.Point {
	return s.Maze.Goal
}

// TryMove turns the player and moves one cell unless blocked by a wall.
// It reports whether the player moved and whether the move reached the
// goal. Moves after the goal is reached are ignored.
func (s *Session) TryMove(dx, dy int, now time.Time) (moved, won bool) {
	if s.Finished() {
		return false, false
	}

	s.Player.Face(dx, dy)
	if !s.Maze.IsPassable(s.Player.X+dx, s.Player.Y+dy) {
		return false, false
	}
	s.Player.Move(dx, dy)

	x, y := s.Player.Position()
	if (world.Point{X: x, Y: y}) == s.Maze.Goal {
		s.finishedAt = now
		return true, true
	}
	return true, false
}

// Finished reports whether the goal has been reached.
func (s *Session) Finished() bool {
	return !s.finishedAt.IsZero()
}

// Elapsed returns the time since the level started, frozen at the finish.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.Finished() {
		now = s.finishedAt
	}
	if now.Before(s.startedAt) {
		return 0
	}
	return now.Sub(s.startedAt)
}

// HUD returns the status line shown under the maze.
func (s *Session) HUD(now time.Time) string {
	seed := s.seed
	if seed == "" {
		seed = "none"
	}
	return fmt.Sprintf(" %ds | %s | seed %s | steps %d (par %d)",
		int(s.Elapsed(now).Seconds()), s.title(), seed, s.Player.Steps, s.Par)
}

func (s *Session) title() string {
	if s.Random {
		return s.Level.RandomTitle()
	}
	return s.Level.Title()
}

// Run returns the record saved for a finished session.
func (s *Session) Run() storage.Run {
	return storage.Run{
		LevelID:   s.Level.ID,
		Seed:      s.seed,
		Random:    s.Random,
		Width:     s.Maze.Width,
		Height:    s.Maze.Height,
		PathWidth: s.Maze.PathWidth,
		Duration:  s.Elapsed(s.finishedAt),
		Steps:     s.Player.Steps,
		CreatedAt: s.finishedAt,
	}
}

// WinMessage formats the finish line, e.g. "You finished in 12.345 seconds!".
func WinMessage(elapsed time.Duration) string {
	seconds := float64(elapsed.Milliseconds()) / 1000
	return "You finished in " + strconv.FormatFloat(seconds, 'f', -1, 64) + " seconds!"
}
