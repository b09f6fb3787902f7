package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"fitfive/internal/engine"
	"fitfive/internal/ui"
)

func newStreakCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show current and longest completion streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			info, err := svc.Streaks(ctx, date)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconFire, "Streak"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Current", ui.StreakText(info.Current)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Longest", ui.StreakText(info.Longest)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", time.Now().Format(engine.DateLayout), "Reference date (YYYY-MM-DD)")
	return cmd
}
