package game

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/storage"
)

// DefaultTick is how often the HUD clock is refreshed.
const DefaultTick = 100 * time.Millisecond

// RunStore records completed runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(run storage.Run) (storage.Run, error)
}

// Config holds game configuration options.
type Config struct {
	// Levels is the menu catalogue. Nil means the embedded levels.
	Levels *gamedata.LevelRegistry

	// Seed replaces the freshly drawn seed of "Random" entries so a random
	// maze can be replayed. Fixed levels always use their own seed.
	Seed string

	// Tick is the HUD refresh interval. Zero means DefaultTick.
	Tick time.Duration

	// Store receives completed runs. Nil disables persistence.
	Store RunStore

	// Logger receives game events. Nil discards them.
	Logger *log.Logger

	// Rand drives random seeds and unseeded mazes. Nil means time-seeded.
	Rand *rand.Rand

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.Levels == nil {
		c.Levels = gamedata.MustLoadLevelRegistry()
	}
	if c.Tick <= 0 {
		c.Tick = DefaultTick
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}
