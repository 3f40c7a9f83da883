package root

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/challenge"
	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show streak and all-time practice stats",
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
			totals := tracker.Totals(svc.Reflections(ctx))

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Practice Status"))
			fmt.Fprintln(out, ui.StreakText(view.Streak.Count))
			if view.Streak.LastCompleted != "" {
				fmt.Fprintln(out, ui.LabelValue("Last completed", ui.FormatDay(svc.Calendar(), view.Streak.LastCompleted, now)))
			}
			if view.AlreadyDone {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Today is done."))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconChat+" All time"))
			fmt.Fprintln(out, ui.LabelValue("Reflections", totals.Reflections))
			fmt.Fprintln(out, ui.LabelValue("Days active", totals.DaysActive))
			fmt.Fprintln(out, ui.LabelValue("Notes written", totals.NotesCount))

			if len(totals.FeelingCounts) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Feelings"))
				for _, f := range []tracker.Feeling{tracker.FeelingGood, tracker.FeelingNeutral, tracker.FeelingUncomfortable} {
					if n := totals.FeelingCounts[f]; n > 0 {
						fmt.Fprintf(out, "- %s: %d\n", ui.FeelingText(f), n)
					}
				}
			}

			if len(totals.CategoryBreakdown) > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render("Categories"))
				cats := make([]string, 0, len(totals.CategoryBreakdown))
				for c := range totals.CategoryBreakdown {
					cats = append(cats, c)
				}
				sort.Strings(cats)
				for _, c := range cats {
					fmt.Fprintf(out, "- %s: %d\n", challenge.Category(c).Label(), totals.CategoryBreakdown[c])
				}
			}
			return nil
		},
	}

	return cmd
}
