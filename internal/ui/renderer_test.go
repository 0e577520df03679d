package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/entity"
	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/prng"
	"github.com/samdwyer/mazerunner/internal/world"
)

func newSimScreen(t *testing.T, w, h int) (tcell.SimulationScreen, *Renderer) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() failed: %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(w, h)
	return sim, NewRenderer(screen)
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func testMaze(t *testing.T) *world.Maze {
	t.Helper()
	m, err := world.NewMaze(5, 5, 1, prng.NewSeeded("test"))
	if err != nil {
		t.Fatalf("NewMaze() failed: %v", err)
	}
	m.Generate(context.Background())
	if _, err := m.PlaceGoal(); err != nil {
		t.Fatalf("PlaceGoal() failed: %v", err)
	}
	return m
}

func TestRenderLevelPlainTiles(t *testing.T) {
	sim, r := newSimScreen(t, 5, 6)
	m := testMaze(t)

	r.Render(Frame{Level: &LevelView{Maze: m, Player: entity.NewPlayer(1, 1), HUD: "0s"}})

	// 5x5 maze fits exactly above the HUD row.
	expected := []string{
		"#####",
		"#v.$#",
		"#.#.#",
		"#.#.#",
		"#####",
	}
	for y, row := range expected {
		for x, want := range row {
			if got := runeAt(sim, x, y); got != want {
				t.Errorf("cell (%d,%d) = %q, expected %q", x, y, got, want)
			}
		}
	}
	if got := runeAt(sim, 0, 5); got != '0' {
		t.Errorf("HUD row starts with %q, expected '0'", got)
	}
}

func TestRenderLevelPalette(t *testing.T) {
	sim, r := newSimScreen(t, 5, 6)
	m := testMaze(t)
	level := &gamedata.LevelDef{
		Wall:  []gamedata.TileDef{{Glyph: "♣", Color: "#2E7D32"}},
		Floor: []gamedata.TileDef{{Glyph: "·", Color: "#333333"}},
	}

	r.Render(Frame{Level: &LevelView{
		Maze:     m,
		Variants: m.Decorate(len(level.Floor), len(level.Wall)),
		Level:    level,
		Player:   entity.NewPlayer(1, 1),
	}})

	if got := runeAt(sim, 0, 0); got != '♣' {
		t.Errorf("wall cell = %q, expected '♣'", got)
	}
	if got := runeAt(sim, 1, 2); got != '·' {
		t.Errorf("floor cell = %q, expected '·'", got)
	}
	if got := runeAt(sim, 3, 1); got != '$' {
		t.Errorf("goal cell = %q, expected '$'", got)
	}
}

func TestRenderMenuHighlightsSelection(t *testing.T) {
	sim, r := newSimScreen(t, 40, 16)

	r.Render(Frame{Menu: &MenuView{
		Title:    []string{"Maze Game!"},
		Entries:  []string{"one", "two"},
		Selected: 1,
	}})

	// Title at y=1, blank, blank subtitle gap, entries from y=4.
	line := ""
	for x := 0; x < 40; x++ {
		line += string(runeAt(sim, x, 5))
	}
	if want := "> two <"; !strings.Contains(line, want) {
		t.Errorf("selected entry row = %q, expected it to contain %q", line, want)
	}
}

func TestRenderDialogBox(t *testing.T) {
	sim, r := newSimScreen(t, 20, 5)

	r.Render(Frame{Menu: &MenuView{}, Dialog: []string{"hi"}})

	// Box is 6x3 centred on a 20x5 screen.
	if got := runeAt(sim, 7, 1); got != tcell.RuneULCorner {
		t.Errorf("top-left corner = %q, expected %q", got, tcell.RuneULCorner)
	}
	if got := runeAt(sim, 9, 2); got != 'h' {
		t.Errorf("dialog text = %q, expected 'h'", got)
	}
}
