package ui

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazerunner/internal/entity"
	"github.com/samdwyer/mazerunner/internal/gamedata"
	"github.com/samdwyer/mazerunner/internal/grid"
	"github.com/samdwyer/mazerunner/internal/world"
)

var (
	textStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	selectedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow).Bold(true)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	goalStyle     = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// MenuView is what the menu screen shows.
type MenuView struct {
	Title    []string
	Subtitle []string
	Entries  []string
	Selected int
}

// LevelView is what the play screen shows. Level and Variants are optional;
// without them tiles are drawn with their plain runes.
type LevelView struct {
	Maze     *world.Maze
	Variants *grid.Grid[world.Variant]
	Level    *gamedata.LevelDef
	Player   *entity.Player
	HUD      string
}

// Frame is one full screen. Exactly one of Menu and Level is drawn; Dialog,
// when non-empty, is boxed in the centre on top of it.
type Frame struct {
	Menu   *MenuView
	Level  *LevelView
	Dialog []string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws a frame and flushes it to the terminal.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	switch {
	case f.Level != nil:
		r.renderLevel(f.Level)
	case f.Menu != nil:
		r.renderMenu(f.Menu)
	}
	if len(f.Dialog) > 0 {
		r.renderDialog(f.Dialog)
	}

	r.screen.Show()
}

func (r *Renderer) renderMenu(m *MenuView) {
	width, _ := r.screen.Size()

	y := 1
	for _, line := range m.Title {
		r.drawCentered(width, y, line, playerStyle)
		y++
	}
	y++
	for _, line := range m.Subtitle {
		r.drawCentered(width, y, line, dimStyle)
		y++
	}
	y++
	for i, entry := range m.Entries {
		style := textStyle
		if i == m.Selected {
			style = selectedStyle
			entry = "> " + entry + " <"
		}
		r.drawCentered(width, y, entry, style)
		y++
	}
}

func (r *Renderer) renderLevel(v *LevelView) {
	width, height := r.screen.Size()
	viewH := height - 1 // bottom row is the HUD
	if viewH < 1 {
		viewH = height
	}

	m := v.Maze
	focusX, focusY := world.Start.X, world.Start.Y
	if v.Player != nil {
		focusX, focusY = v.Player.Position()
	}
	offX, offY := Viewport(width, viewH, m.Width, m.Height, focusX, focusY)

	walls, floors := paletteStyles(v.Level)

	for sy := 0; sy < viewH; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := sx+offX, sy+offY
			if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
				continue
			}
			ch, style := r.cell(v, x, y, walls, floors)
			r.screen.SetContent(sx, sy, ch, style)
		}
	}

	if v.HUD != "" && viewH < height {
		for x := 0; x < width; x++ {
			r.screen.SetContent(x, height-1, ' ', hudStyle)
		}
		r.drawText(0, height-1, v.HUD, hudStyle)
	}
}

type styledRune struct {
	ch    rune
	style tcell.Style
}

func paletteStyles(level *gamedata.LevelDef) (walls, floors []styledRune) {
	if level == nil {
		return nil, nil
	}
	for _, t := range level.Wall {
		walls = append(walls, styledRune{t.GlyphRune(), t.Style()})
	}
	for _, t := range level.Floor {
		floors = append(floors, styledRune{t.GlyphRune(), t.Style()})
	}
	return walls, floors
}

// cell picks the rune and style for map cell (x, y): player, then goal,
// then the palette variant, then the plain tile.
func (r *Renderer) cell(v *LevelView, x, y int, walls, floors []styledRune) (rune, tcell.Style) {
	m := v.Maze
	if v.Player != nil && v.Player.X == x && v.Player.Y == y {
		return v.Player.Symbol(), playerStyle
	}
	if m.HasGoal() && m.Goal.X == x && m.Goal.Y == y {
		return world.TileGoal.Rune(), goalStyle
	}

	if v.Variants != nil {
		variant := v.Variants.Get(x, y)
		if m.IsWall(x, y) {
			if variant.Wall >= 0 && variant.Wall < len(walls) {
				return walls[variant.Wall].ch, walls[variant.Wall].style
			}
		} else if variant.Floor >= 0 && variant.Floor < len(floors) {
			return floors[variant.Floor].ch, floors[variant.Floor].style
		}
	}

	tile := m.GetTile(x, y)
	return tile.Rune(), r.getTileStyle(tile)
}

// getTileStyle returns the appropriate style for a tile type.
func (r *Renderer) getTileStyle(tile world.Tile) tcell.Style {
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.TileFloor, world.TileStart:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case world.TileGoal:
		return goalStyle
	default:
		return tcell.StyleDefault
	}
}

func (r *Renderer) renderDialog(lines []string) {
	width, height := r.screen.Size()

	inner := 0
	for _, l := range lines {
		if n := utf8.RuneCountInString(l); n > inner {
			inner = n
		}
	}
	boxW, boxH := inner+4, len(lines)+2
	left, top := (width-boxW)/2, (height-boxH)/2

	for y := top; y < top+boxH; y++ {
		for x := left; x < left+boxW; x++ {
			ch := ' '
			switch {
			case y == top && x == left:
				ch = tcell.RuneULCorner
			case y == top && x == left+boxW-1:
				ch = tcell.RuneURCorner
			case y == top+boxH-1 && x == left:
				ch = tcell.RuneLLCorner
			case y == top+boxH-1 && x == left+boxW-1:
				ch = tcell.RuneLRCorner
			case y == top || y == top+boxH-1:
				ch = tcell.RuneHLine
			case x == left || x == left+boxW-1:
				ch = tcell.RuneVLine
			}
			r.screen.SetContent(x, y, ch, textStyle)
		}
	}
	for i, l := range lines {
		pad := (inner - utf8.RuneCountInString(l)) / 2
		r.drawText(left+2+pad, top+1+i, l, textStyle)
	}
}

func (r *Renderer) drawCentered(width, y int, s string, style tcell.Style) {
	r.drawText((width-utf8.RuneCountInString(s))/2, y, s, style)
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
