package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"fitfive/internal/engine"
	"fitfive/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI day view",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, date, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format(engine.DateLayout), "Target date (YYYY-MM-DD)")
	return cmd
}
