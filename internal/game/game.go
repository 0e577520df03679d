package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazerunner/internal/telemetry"
	"github.com/samdwyer/mazerunner/internal/ui"
)

// Game holds the entire game state.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	menu     *Menu
	session  *Session
	state    State
	message  string
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg), nil
}

// NewWithScreen creates a game drawing to an existing screen.
func NewWithScreen(screen *ui.Screen, cfg Config) *Game {
	cfg = cfg.withDefaults()
	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		menu:     NewMenu(cfg.Levels),
		state:    StateMenu,
		running:  true,
	}
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Session returns the level being played, or nil on the menu.
func (g *Game) Session() *Session {
	return g.session
}

// Menu returns the level menu.
func (g *Game) Menu() *Menu {
	return g.menu
}

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go g.tick(ctx)

	for g.running {
		if ctx.Err() != nil {
			break
		}

		// Render current state
		g.render()

		// Handle input (blocking)
		g.handleInput(ctx)
	}

	// Cleanup
	g.screen.Close()
	return nil
}

// tick wakes the event loop so the HUD clock advances without input.
func (g *Game) tick(ctx context.Context) {
	ticker := time.NewTicker(g.cfg.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.screen.Interrupt()
			return
		case <-ticker.C:
			g.screen.Interrupt()
		}
	}
}

func (g *Game) render() {
	g.renderer.Render(g.frame())
}

// frame describes what the screen shows in the current state.
func (g *Game) frame() ui.Frame {
	switch g.state {
	case StatePlay, StateWon:
		s := g.session
		f := ui.Frame{Level: &ui.LevelView{
			Maze:     s.Maze,
			Variants: s.Variants,
			Level:    s.Level,
			Player:   s.Player,
			HUD:      s.HUD(g.cfg.Now()),
		}}
		if g.state == StateWon {
			hint := "Enter: menu   q: quit"
			if s.Seed() != "" {
				hint = "Enter: menu   r: replay   q: quit"
			}
			f.Dialog = []string{g.message, "", hint}
		}
		return f
	default:
		f := ui.Frame{Menu: &ui.MenuView{
			Title:    MenuTitle,
			Subtitle: MenuSubtitle,
			Entries:  g.menu.Titles(),
			Selected: g.menu.SelectedIndex(),
		}}
		if g.message != "" {
			f.Dialog = []string{g.message}
		}
		return f
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.state {
	case StateMenu:
		g.handleMenuKey(ctx, ev)
	case StatePlay:
		g.handlePlayKey(ctx, ev)
	case StateWon:
		g.handleWonKey(ctx, ev)
	}
}

func (g *Game) handleMenuKey(ctx context.Context, ev *tcell.EventKey) {
	g.message = ""

	switch ev.Key() {
	case tcell.KeyEscape:
		g.running = false
	case tcell.KeyUp:
		g.menu.Up()
	case tcell.KeyDown:
		g.menu.Down()
	case tcell.KeyEnter:
		g.startLevel(ctx, g.menu.Selected())

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W', 'k':
			g.menu.Up()
		case 's', 'S', 'j':
			g.menu.Down()
		case ' ':
			g.startLevel(ctx, g.menu.Selected())
		}
	}
}

func (g *Game) handlePlayKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.leaveLevel()

	case tcell.KeyUp:
		g.tryMove(ctx, 0, -1)
	case tcell.KeyDown:
		g.tryMove(ctx, 0, 1)
	case tcell.KeyLeft:
		g.tryMove(ctx, -1, 0)
	case tcell.KeyRight:
		g.tryMove(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'w', 'W':
			g.tryMove(ctx, 0, -1)
		case 's', 'S':
			g.tryMove(ctx, 0, 1)
		case 'a', 'A':
			g.tryMove(ctx, -1, 0)
		case 'd', 'D':
			g.tryMove(ctx, 1, 0)
		}
	}
}

func (g *Game) handleWonKey(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		g.leaveLevel()

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case ' ':
			g.leaveLevel()
		case 'r', 'R':
			g.replay(ctx)
		}
	}
}

// startLevel generates the maze for a menu entry and switches to play.
func (g *Game) startLevel(ctx context.Context, entry MenuEntry) {
	seed := entry.SeedFor(g.cfg.Seed, g.cfg.Rand)
	g.begin(ctx, entry, seed)
}

// replay restarts the finished level on the same seed. Unseeded mazes
// cannot be rebuilt, so there is nothing to replay.
func (g *Game) replay(ctx context.Context) {
	s := g.session
	if s.Seed() == "" {
		return
	}
	g.begin(ctx, MenuEntry{Level: s.Level, Random: s.Random}, s.Seed())
}

func (g *Game) begin(ctx context.Context, entry MenuEntry, seed string) {
	levelID := entry.Level.ID
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.level_start")
	defer span.End()

	session, err := NewSession(ctx, entry.Level, seed, entry.Random, g.cfg.Rand, g.cfg.Now())
	if err != nil {
		span.RecordError(err)
		g.cfg.Logger.Error("cannot start level", "level", levelID, "seed", seed, "error", err)
		g.session = nil
		g.state = StateMenu
		g.message = "Cannot start level: " + err.Error()
		return
	}

	span.SetAttributes(
		attribute.String("level.id", levelID),
		attribute.String("level.seed", seed),
		attribute.Bool("level.random", entry.Random),
		attribute.Int("maze.iterations", session.Maze.Iterations()),
		attribute.Int("maze.par", session.Par),
		attribute.Int("goal.x", session.Goal().X),
		attribute.Int("goal.y", session.Goal().Y),
	)
	g.cfg.Logger.Info("level started", "level", levelID, "seed", seed, "random", entry.Random, "par", session.Par)

	g.session = session
	g.message = ""
	g.state = StatePlay
}

// tryMove moves the player and finishes the level on reaching the goal.
func (g *Game) tryMove(ctx context.Context, dx, dy int) {
	if _, won := g.session.TryMove(dx, dy, g.cfg.Now()); won {
		g.complete(ctx)
	}
}

func (g *Game) complete(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.level_complete")
	defer span.End()

	s := g.session
	run := s.Run()
	span.SetAttributes(
		attribute.String("level.id", run.LevelID),
		attribute.String("level.seed", run.Seed),
		attribute.Int64("run.duration_ms", run.Duration.Milliseconds()),
		attribute.Int("run.steps", run.Steps),
		attribute.Int("maze.par", s.Par),
	)

	g.screen.Beep()
	g.message = WinMessage(run.Duration)
	g.state = StateWon

	logger := g.cfg.Logger.With("level", run.LevelID, "seed", run.Seed)
	logger.Info("level complete", "duration", run.Duration, "steps", run.Steps, "par", s.Par)

	if g.cfg.Store == nil {
		return
	}
	saved, err := g.cfg.Store.SaveRun(run)
	if err != nil {
		span.RecordError(err)
		logger.Warn("cannot save run", "error", err)
		return
	}
	span.SetAttributes(attribute.String("run.id", saved.ID.String()))
}

// leaveLevel abandons or closes the current level and returns to the menu.
func (g *Game) leaveLevel() {
	g.session = nil
	g.message = ""
	g.state = StateMenu
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
