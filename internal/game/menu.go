package game

import (
	"math/rand"
	"strconv"

	"github.com/samdwyer/mazerunner/internal/gamedata"
)

// Menu banner text.
var (
	MenuTitle    = []string{"Welcome to (yet another)", "Maze Game!"}
	MenuSubtitle = []string{"Find the exit", "as fast as possible."}
)

// MenuEntry is one selectable line of the menu.
type MenuEntry struct {
	Title  string
	Level  *gamedata.LevelDef
	Random bool // Play the level's size and palette on a new seed
}

// Menu lists every level, then a random variant of every level.
type Menu struct {
	Entries  []MenuEntry
	selected int
}

// NewMenu builds the menu from the registry in catalogue order.
func NewMenu(levels *gamedata.LevelRegistry) *Menu {
	all := levels.All()
	entries := make([]MenuEntry, 0, 2*len(all))
	for i := range all {
		entries = append(entries, MenuEntry{Title: all[i].Title(), Level: &all[i]})
	}
	for i := range all {
		entries = append(entries, MenuEntry{Title: all[i].RandomTitle(), Level: &all[i], Random: true})
	}
	return &Menu{Entries: entries}
}

// Up moves the selection up, wrapping to the last entry.
func (m *Menu) Up() {
	if len(m.Entries) == 0 {
		return
	}
	m.selected = (m.selected - 1 + len(m.Entries)) % len(m.Entries)
}

// Down moves the selection down, wrapping to the first entry.
func (m *Menu) Down() {
	if len(m.Entries) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.Entries)
}

// SelectedIndex returns the index of the highlighted entry.
func (m *Menu) SelectedIndex() int {
	return m.selected
}

// Selected returns the highlighted entry.
func (m *Menu) Selected() MenuEntry {
	return m.Entries[m.selected]
}

// Titles returns the entry labels in menu order.
func (m *Menu) Titles() []string {
	titles := make([]string, len(m.Entries))
	for i, e := range m.Entries {
		titles[i] = e.Title
	}
	return titles
}

// SeedFor returns the seed an entry is played with. Fixed entries use the
// level seed. Random entries use override when set, otherwise a new seed
// drawn from rng.
func (e MenuEntry) SeedFor(override string, rng *rand.Rand) string {
	if !e.Random {
		return e.Level.Seed
	}
	if override != "" {
		return override
	}
	return strconv.FormatFloat(rng.Float64(), 'f', -1, 64)
}
