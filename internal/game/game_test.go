package game

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/storage"
	"github.com/samdwyer/mazerunner/internal/ui"
)

type memStore struct {
	runs []storage.Run
	err  error
}

func (m *memStore) SaveRun(run storage.Run) (storage.Run, error) {
	if m.err != nil {
		return run, m.err
	}
	run.ID = uuid.New()
	m.runs = append(m.runs, run)
	return run, nil
}

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := t0
	return func() time.Time {
		cur := now
		now = now.Add(step)
		return cur
	}
}

func newTestGame(t *testing.T, cfg Config) *Game {
	t.Helper()

	registry, err := gamedata.NewLevelRegistry([]gamedata.LevelDef{*smallLevel(5, 5, 1, "test")})
	if err != nil {
		t.Fatalf("NewLevelRegistry() failed: %v", err)
	}
	cfg.Levels = registry
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() failed: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(60, 20)

	return NewWithScreen(screen, cfg)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestGamePlayThrough(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, Config{Store: store, Now: stepClock(1500 * time.Millisecond)})
	ctx := context.Background()

	if g.State() != StateMenu {
		t.Fatalf("Initial state = %v, expected menu", g.State())
	}
	if titles := g.Menu().Titles(); len(titles) != 2 || titles[1] != "Random (tiny)" {
		t.Errorf("Menu titles = %v", titles)
	}

	g.handleKeyEvent(ctx, key(tcell.KeyEnter))
	if g.State() != StatePlay {
		t.Fatalf("State after Enter = %v, expected play", g.State())
	}
	if g.Session().Seed() != "test" {
		t.Errorf("Fixed level seed = %q, expected %q", g.Session().Seed(), "test")
	}

	g.handleKeyEvent(ctx, char('d'))
	g.handleKeyEvent(ctx, key(tcell.KeyRight))
	if g.State() != StateWon {
		t.Fatalf("State after reaching the goal = %v, expected won", g.State())
	}

	if len(store.runs) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(store.runs))
	}
	run := store.runs[0]
	if run.Duration != 3*time.Second || run.Steps != 2 || run.Seed != "test" {
		t.Errorf("Saved run = %+v", run)
	}

	f := g.frame()
	if len(f.Dialog) != 3 || f.Dialog[0] != "You finished in 3 seconds!" || f.Dialog[2] != "Enter: menu   r: replay   q: quit" {
		t.Errorf("Win dialog = %q", f.Dialog)
	}

	g.handleKeyEvent(ctx, char('r'))
	if g.State() != StatePlay || g.Session().Player.Steps != 0 {
		t.Errorf("Replay should restart the level, state %v", g.State())
	}

	g.handleKeyEvent(ctx, key(tcell.KeyEscape))
	if g.State() != StateMenu || g.Session() != nil {
		t.Errorf("Escape should abandon the level, state %v", g.State())
	}
}

func TestGameUnseededLevelCannotReplay(t *testing.T) {
	g := newTestGame(t, Config{})
	ctx := context.Background()

	s, err := NewSession(ctx, smallLevel(5, 5, 1, ""), "", false, nil, t0)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	g.session = s
	g.state = StateWon
	g.message = WinMessage(time.Second)

	f := g.frame()
	if len(f.Dialog) != 3 || f.Dialog[2] != "Enter: menu   q: quit" {
		t.Errorf("Win dialog = %q, expected no replay hint", f.Dialog)
	}

	g.handleKeyEvent(ctx, char('r'))
	if g.State() != StateWon || g.Session() != s {
		t.Errorf("r on an unseeded maze should do nothing, state %v", g.State())
	}
}

func TestGameRandomEntryUsesSeedOverride(t *testing.T) {
	g := newTestGame(t, Config{Seed: "test"})
	ctx := context.Background()

	g.handleKeyEvent(ctx, char('s'))
	g.handleKeyEvent(ctx, char(' '))

	s := g.Session()
	if s == nil || !s.Random {
		t.Fatal("Expected a random session")
	}
	if s.Seed() != "test" {
		t.Errorf("Random seed = %q, expected the override", s.Seed())
	}
}

func TestGameStoreFailureKeepsPlaying(t *testing.T) {
	g := newTestGame(t, Config{Store: &memStore{err: errors.New("disk full")}})
	ctx := context.Background()

	g.handleKeyEvent(ctx, key(tcell.KeyEnter))
	g.handleKeyEvent(ctx, key(tcell.KeyRight))
	g.handleKeyEvent(ctx, key(tcell.KeyRight))

	if g.State() != StateWon {
		t.Errorf("State = %v, expected won despite the store error", g.State())
	}
	g.handleKeyEvent(ctx, key(tcell.KeyEnter))
	if g.State() != StateMenu {
		t.Errorf("Enter on the win dialog should return to the menu, state %v", g.State())
	}
}

func TestGameQuit(t *testing.T) {
	tests := []struct {
		name  string
		setup []*tcell.EventKey
		quit  *tcell.EventKey
	}{
		{"menu q", nil, char('q')},
		{"menu escape", nil, key(tcell.KeyEscape)},
		{"play q", []*tcell.EventKey{key(tcell.KeyEnter)}, char('q')},
		{"ctrl-c", []*tcell.EventKey{key(tcell.KeyEnter)}, key(tcell.KeyCtrlC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, Config{})
			ctx := context.Background()
			for _, ev := range tc.setup {
				g.handleKeyEvent(ctx, ev)
			}
			g.handleKeyEvent(ctx, tc.quit)
			if g.running {
				t.Error("Game should stop running")
			}
		})
	}
}

func TestGameRunStopsOnContextCancel(t *testing.T) {
	g := newTestGame(t, Config{Tick: 5 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- g.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{StateMenu: "menu", StatePlay: "play", StateWon: "won", State(9): "unknown"}
	for s, want := range tests {
		if s.String() != want {
			t.Errorf("State(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}
