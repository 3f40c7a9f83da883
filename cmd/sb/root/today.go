package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/ui"
)

func newTodayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's challenge and streak",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			out := cmd.OutOrStdout()
			view := svc.Today(ctx, now)

			fmt.Fprintln(out, ui.Heading(ui.IconSprout, "Your daily connection practice"))
			fmt.Fprintln(out, ui.Muted.Render(view.Day))
			fmt.Fprintln(out, "")

			ch := view.Challenge
			body := ui.CategoryText(ch.Category) + "  " + ui.Muted.Render(strings.Repeat("●", ch.Difficulty)) + "\n\n" + ch.Text
			fmt.Fprintln(out, ui.Panel.Render(body))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.StreakText(view.Streak.Count))
			if view.AlreadyDone {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Completed today — nicely done."))
			} else {
				fmt.Fprintln(out, ui.Muted.Render("Run `sb done` or `sb reflect` once you've tried it."))
			}

			if svc.ShouldShowWeeklyReport(ctx, now) {
				stats := svc.ComputeWeeklyStats(svc.Reflections(ctx), now)
				fmt.Fprintln(out, "")
				renderStats(out, svc, stats)
				if err := svc.MarkReportShown(ctx, now); err != nil {
					printWarning(cmd, "weekly report marker not saved: "+err.Error())
				}
			}
			return nil
		},
	}

	return cmd
}
