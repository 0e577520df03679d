package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazerunner/internal/gamedata"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level catalogue",
	Long: `Shows every level in the menu: the built-in ones and any added by the
config file.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

func runLevels(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Levels"))
	fmt.Fprintln(out)

	// Calculate column widths
	maxTitleLen := len("Title")
	for _, l := range levels.All() {
		if n := len(l.Title()); n > maxTitleLen {
			maxTitleLen = n
		}
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-*s  %-7s  %-4s  %-6s  %s\n", "ID", maxTitleLen, "Title", "Size", "Path", "Seed", "Palette")
	fmt.Fprintf(out, "  %-4s  %-*s  %-7s  %-4s  %-6s  %s\n", "--", maxTitleLen, "-----", "----", "----", "----", "-------")

	// Print levels
	for _, l := range levels.All() {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Fprintf(out, "  %-4s  %-*s  %-7s  %-4d  %-6s  %s %s\n",
			l.ID, maxTitleLen, l.Title(), size, l.PathWidth, l.Seed,
			palettePreview(l.Wall), palettePreview(l.Floor))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'mazerunner render --level <id> --color' to preview a maze.")
	return nil
}

func palettePreview(palette []gamedata.TileDef) string {
	var b strings.Builder
	for i, style := range paletteStyles(palette) {
		b.WriteString(style.Render(palette[i].Glyph))
	}
	return b.String()
}
