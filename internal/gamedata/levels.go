package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/world"
)

// ErrInvalidLevel wraps every level validation failure.
var ErrInvalidLevel = errors.New("invalid level")

// TileDef is one palette entry: a glyph and its colour.
type TileDef struct {
	Glyph string `json:"glyph" yaml:"glyph"` // Single character (e.g., "♣")
	Color string `json:"color" yaml:"color"` // Hex code or colour name (e.g., "#2E7D32")
}

// GlyphRune returns the glyph as a rune for rendering.
func (t TileDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// Style returns the tcell style for this palette entry.
func (t TileDef) Style() tcell.Style {
	color, err := ParseColor(t.Color)
	if err != nil {
		color = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(color)
}

// LevelDef defines a maze level loaded from JSON or the user config.
type LevelDef struct {
	ID         string    `json:"id" yaml:"id"`                 // Unique identifier (e.g., "1")
	Name       string    `json:"name" yaml:"name"`             // Display name (e.g., "Level 1")
	Difficulty string    `json:"difficulty" yaml:"difficulty"` // Menu label (e.g., "easy")
	Width      int       `json:"width" yaml:"width"`           // Odd maze width
	Height     int       `json:"height" yaml:"height"`         // Odd maze height
	PathWidth  int       `json:"pathWidth" yaml:"path_width"`  // Corridor width in cells
	Seed       string    `json:"seed" yaml:"seed"`             // Seed for the fixed variant
	Wall       []TileDef `json:"wall" yaml:"wall"`             // Wall palette
	Floor      []TileDef `json:"floor" yaml:"floor"`           // Floor palette
}

// Validate checks the level can be generated and rendered.
func (l *LevelDef) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}
	if err := world.ValidateDimensions(l.Width, l.Height, l.PathWidth); err != nil {
		return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.ID, err)
	}
	if len(l.Wall) == 0 || len(l.Floor) == 0 {
		return fmt.Errorf("%w %q: wall and floor palettes must not be empty", ErrInvalidLevel, l.ID)
	}
	for _, palette := range [][]TileDef{l.Wall, l.Floor} {
		for _, t := range palette {
			if utf8.RuneCountInString(t.Glyph) != 1 {
				return fmt.Errorf("%w %q: glyph %q must be a single character", ErrInvalidLevel, l.ID, t.Glyph)
			}
			if _, err := ParseColor(t.Color); err != nil {
				return fmt.Errorf("%w %q: %w", ErrInvalidLevel, l.ID, err)
			}
		}
	}
	return nil
}

// Title returns the menu label, e.g. "Level 1 (easy)".
func (l *LevelDef) Title() string {
	if l.Difficulty == "" {
		return l.Name
	}
	return fmt.Sprintf("%s (%s)", l.Name, l.Difficulty)
}

// RandomTitle returns the menu label of the random variant, e.g. "Random (easy)".
func (l *LevelDef) RandomTitle() string {
	if l.Difficulty == "" {
		return "Random " + l.Name
	}
	return fmt.Sprintf("Random (%s)", l.Difficulty)
}

// LevelsFile represents the structure of levels.json.
type LevelsFile struct {
	Levels []LevelDef `json:"levels"`
}

// LoadLevels loads level definitions from the embedded levels.json file.
func LoadLevels() ([]LevelDef, error) {
	file, err := Load[LevelsFile]("levels.json")
	if err != nil {
		return nil, err
	}
	return file.Levels, nil
}
