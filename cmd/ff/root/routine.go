package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fitfive/internal/engine"
	"fitfive/internal/ui"
)

func newRoutineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routine",
		Short: "Manage recurring routines",
	}
	cmd.AddCommand(newRoutineAddCmd(), newRoutineListCmd(), newRoutineStopCmd())
	return cmd
}

func newRoutineAddCmd() *cobra.Command {
	var start string
	var every int
	var exercises []string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a recurring routine",
		Long: `Add a recurring routine.

Exercises are given as NAME:SETSxREPS[@WEIGHT], e.g.
  ff routine add "Leg Day" --start 2026-01-05 --every 3 \
      -e "Squat:3x5@100" -e "Lunges:3x12"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.CreateRoutineInput{
				Name:          args[0],
				StartDate:     start,
				FrequencyDays: every,
			}
			for _, spec := range exercises {
				ex, err := parseExerciseSpec(spec)
				if err != nil {
					return err
				}
				in.Exercises = append(in.Exercises, ex)
			}

			rt, err := svc.CreateRoutine(ctx, in)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), rt.ID, rt.Name,
				ui.Muted.Render(fmt.Sprintf("(from %s, every %s, %d exercises)", rt.StartDate, everyText(rt.FrequencyDays), len(rt.Exercises))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&start, "start", "s", time.Now().Format(engine.DateLayout), "Start date (YYYY-MM-DD); never due before it")
	cmd.Flags().IntVarP(&every, "every", "n", 1, "Repeat interval in days (1 = daily)")
	cmd.Flags().StringArrayVarP(&exercises, "exercise", "e", nil, "Exercise template NAME:SETSxREPS[@WEIGHT] (repeatable)")

	return cmd
}

func newRoutineListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List routines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			routines, err := svc.RoutineRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			if len(routines) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no routines yet — try: ff routine add)"))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLoop, "Routines"))
			for _, rt := range routines {
				state := ui.Good.Render("active")
				if !rt.Active {
					state = ui.Muted.Render("stopped")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- #%d %s %s %s\n",
					rt.ID, ui.Key.Render(rt.Name), state,
					ui.Muted.Render(fmt.Sprintf("(from %s, every %s)", rt.StartDate, everyText(rt.FrequencyDays))))
				for _, ex := range rt.Exercises {
					target := fmt.Sprintf("%dx%d", ex.TargetSets, ex.TargetReps)
					if ex.TargetWeight != nil {
						target += fmt.Sprintf(" @ %.1fkg", *ex.TargetWeight)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "    %s %s %s\n", ui.IconTarget, ex.Name, ui.Muted.Render(target))
				}
			}
			return nil
		},
	}
	return cmd
}

func newRoutineStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop <id>",
		Short: "Deactivate a routine (keeps its history)",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			if err := svc.DeactivateRoutine(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s routine #%d\n", ui.Warn.Render(ui.IconStop+" Stopped"), id)
			return nil
		},
	}
	return cmd
}

func idArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("id is required")
	}
	if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
		return errors.New("id must be an integer")
	}
	return nil
}

func everyText(days int) string {
	if days == 1 {
		return "day"
	}
	return fmt.Sprintf("%d days", days)
}

// parseExerciseSpec parses NAME:SETSxREPS[@WEIGHT].
func parseExerciseSpec(spec string) (engine.ExerciseInput, error) {
	var out engine.ExerciseInput

	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return out, fmt.Errorf("invalid exercise %q (want NAME:SETSxREPS[@WEIGHT])", spec)
	}
	out.Name = strings.TrimSpace(spec[:idx])
	target := spec[idx+1:]

	if at := strings.Index(target, "@"); at >= 0 {
		w, err := strconv.ParseFloat(strings.TrimSpace(target[at+1:]), 64)
		if err != nil {
			return out, fmt.Errorf("invalid weight in %q", spec)
		}
		out.TargetWeight = &w
		target = target[:at]
	}

	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(target)), "x", 2)
	if len(parts) != 2 {
		return out, fmt.Errorf("invalid target in %q (want SETSxREPS)", spec)
	}
	sets, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || sets < 1 {
		return out, fmt.Errorf("invalid sets in %q", spec)
	}
	reps, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || reps < 1 {
		return out, fmt.Errorf("invalid reps in %q", spec)
	}
	out.TargetSets = sets
	out.TargetReps = reps
	return out, nil
}
