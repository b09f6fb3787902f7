package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitfive/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "ff",
	Short:         "FitFive — local-first workout routine tracker",
	Long:          "FitFive is a local-first CLI/TUI tracker for recurring workout routines, daily task hydration, and completion streaks.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newRoutineCmd(),
		newExerciseCmd(),
		newTodayCmd(),
		newDoneCmd(),
		newUndoCmd(),
		newStreakCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
