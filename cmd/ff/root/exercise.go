package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fitfive/internal/ui"
)

func newExerciseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exercise",
		Short: "Manage a routine's exercise templates",
	}
	cmd.AddCommand(newExerciseAddCmd())
	return cmd
}

func newExerciseAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <routine-id> <spec>",
		Short: "Append an exercise template to a routine",
		Long:  "Append an exercise template (NAME:SETSxREPS[@WEIGHT]) to a routine. It materializes from the routine's next due day on; already-hydrated days are untouched.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("routine id and exercise spec are required")
			}
			if _, err := strconv.ParseInt(args[0], 10, 64); err != nil {
				return errors.New("routine id must be an integer")
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

			routineID, _ := strconv.ParseInt(args[0], 10, 64)
			in, err := parseExerciseSpec(args[1])
			if err != nil {
				return err
			}

			id, err := svc.AddExercise(ctx, routineID, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s %s\n",
				ui.Good.Render(ui.IconPlus+" Added"), id, in.Name,
				ui.Muted.Render(fmt.Sprintf("(routine #%d)", routineID)))
			return nil
		},
	}
	return cmd
}
