package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fitfive/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a workout task done",
		Args:  idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			res, err := svc.CompleteTask(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d\n", ui.Good.Render(ui.IconDone+" Done"), res.TaskID)
			if res.RoutineCompleted {
				fmt.Fprintf(cmd.OutOrStdout(), "%s routine #%d finished for the day — streak %s\n",
					ui.Gold.Render(ui.IconFlex), res.RoutineID, ui.StreakText(res.Streak))
			}
			return nil
		},
	}
	return cmd
}
