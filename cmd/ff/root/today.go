package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fitfive/internal/engine"
	"fitfive/internal/storage"
	"fitfive/internal/ui"
)

func newTodayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Hydrate and show the day's workout tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TasksForDate(ctx, date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconCal, date))
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(ui.IconRest+" Rest day — nothing scheduled."))
				return nil
			}

			routines, err := svc.RoutineRepo().ListActive(ctx)
			if err != nil {
				return err
			}
			names := make(map[int64]string, len(routines))
			for _, rt := range routines {
				names[rt.ID] = rt.Name
			}

			var lastRoutine int64 = -1
			for _, t := range tasks {
				if t.RoutineID != lastRoutine {
					name := names[t.RoutineID]
					if name == "" {
						name = fmt.Sprintf("routine %d", t.RoutineID)
					}
					fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(name))
					lastRoutine = t.RoutineID
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s #%d %s %s\n", ui.Checkbox(t.Completed), t.ID, t.Name, ui.Muted.Render(taskTarget(t)))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format(engine.DateLayout), "Target date (YYYY-MM-DD)")
	return cmd
}

func taskTarget(t storage.WorkoutTask) string {
	if t.TargetWeight != nil {
		return fmt.Sprintf("%dx%d @ %.1fkg", t.TargetSets, t.TargetReps, *t.TargetWeight)
	}
	return fmt.Sprintf("%dx%d", t.TargetSets, t.TargetReps)
}
