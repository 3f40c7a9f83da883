package root

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/challenge"
	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show this week's summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			stats := svc.ComputeWeeklyStats(svc.Reflections(ctx), time.Now())
			if stats == nil {
				fmt.Fprintln(out, ui.Muted.Render("No activity this week yet."))
				return nil
			}
			renderStats(out, svc, stats)
			return nil
		},
	}

	return cmd
}

func renderStats(w io.Writer, svc *tracker.Service, stats *tracker.WeeklyStats) {
	cal := svc.Calendar()
	fmt.Fprintln(w, ui.Heading(ui.IconChart, "Your week in moments"))
	fmt.Fprintln(w, ui.Muted.Render(ui.FormatWeekRange(cal, stats.WeekStart, stats.WeekEnd)))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, ui.LabelValue("Challenges", stats.TotalChallenges))
	fmt.Fprintln(w, ui.LabelValue("Days active", stats.DaysActive))
	fmt.Fprintln(w, ui.LabelValue("Notes written", stats.NotesCount))
	if stats.MostCommonFeeling != tracker.FeelingNone {
		fmt.Fprintln(w, ui.LabelValue("Mostly felt", ui.FeelingText(stats.MostCommonFeeling)))
	}

	if len(stats.CategoryBreakdown) > 0 {
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, ui.H2.Render("By category"))
		cats := make([]string, 0, len(stats.CategoryBreakdown))
		for c := range stats.CategoryBreakdown {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Fprintf(w, "- %s: %d\n", challenge.Category(c).Label(), stats.CategoryBreakdown[c])
		}
	}
}
