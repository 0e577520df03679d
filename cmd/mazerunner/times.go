package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazerunner/internal/gamedata"
)

var flagLimit int

var timesCmd = &cobra.Command{
	Use:   "times [level]",
	Short: "Show the best times",
	Long: `Display the fastest completed runs for one level, or for every level
when no level is given. Random runs are listed with the seed they were
played on, so 'mazerunner play --seed <seed>' replays the same maze.

Examples:
  mazerunner times
  mazerunner times 3 --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimes,
}

func init() {
	timesCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show per level")
}

func runTimes(cmd *cobra.Command, args []string) error {
	levels, err := loadLevels()
	if err != nil {
		return err
	}

	selected := levels.All()
	if len(args) == 1 {
		l := levels.GetByID(args[0])
		if l == nil {
			return fmt.Errorf("unknown level %q (run 'mazerunner levels' to list them)", args[0])
		}
		selected = []gamedata.LevelDef{*l}
	}

	// Open run storage
	store, err := openStore()
	if err != nil {
		return fmt.Errorf("error opening run database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	for _, l := range selected {
		runs, err := store.BestRuns(l.ID, flagLimit)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, headerStyle.Render("Best times - "+l.Title()))
		fmt.Fprintln(out)

		if len(runs) == 0 {
			fmt.Fprintln(out, "  No runs recorded yet.")
			fmt.Fprintln(out)
			continue
		}

		// Print header
		fmt.Fprintf(out, "  %-4s  %-9s  %-5s  %-20s  %s\n", "Rank", "Time", "Steps", "Seed", "Date")
		fmt.Fprintf(out, "  %-4s  %-9s  %-5s  %-20s  %s\n", "----", "----", "-----", "----", "----")

		// Print runs
		for i, r := range runs {
			seed := r.Seed
			if r.Random {
				seed += " (random)"
			}
			fmt.Fprintf(out, "  %-4d  %8.3fs  %-5d  %-20s  %s\n",
				i+1, r.Duration.Seconds(), r.Steps, seed, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out)
	}
	return nil
}
