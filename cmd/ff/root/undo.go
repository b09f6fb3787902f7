package root

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fitfive/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <task-id>",
		Short: "Reopen a completed task (undo)",
		Long: `Reopen a task and retract the routine's completion record for that date.

Use this to fix accidental completions; the day will count as missed again
until every task of the routine is re-completed.`,
		Args: idArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.ParseInt(args[0], 10, 64)
			t, err := svc.ReopenTask(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s task #%d %s %s\n",
				ui.Warn.Render(ui.IconUndo+" Reopened"), t.ID, t.Name,
				ui.Muted.Render(fmt.Sprintf("(%s)", t.TaskDate)))
			return nil
		},
	}
	return cmd
}
