package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/tracker"
	"smallbrave/internal/tui"
	"smallbrave/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int
	var browse bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved reflections, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			if browse {
				return tui.RunHistory(ctx, svc, cmd.OutOrStdout())
			}

			now := time.Now()
			out := cmd.OutOrStdout()
			log := svc.Reflections(ctx)

			fmt.Fprintln(out, ui.Heading(ui.IconChat, "Your reflections"))
			if len(log) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("Nothing yet. Complete a challenge to start your story."))
				return nil
			}

			if limit > 0 && len(log) > limit {
				log = log[:limit]
			}

			cal := svc.Calendar()
			lastDay := ""
			for _, r := range log {
				if r.Date != lastDay {
					fmt.Fprintln(out, "")
					fmt.Fprintln(out, ui.H2.Render(ui.FormatDay(cal, r.Date, now)))
					lastDay = r.Date
				}
				fmt.Fprintf(out, "- %s %s\n", ui.FeelingIcon(tracker.Feeling(r.Feeling)), r.ChallengeText)
				if r.Note != "" {
					fmt.Fprintf(out, "  %s\n", ui.Muted.Render("“"+r.Note+"”"))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Show at most N reflections (0 = all)")
	cmd.Flags().BoolVar(&browse, "browse", false, "Browse reflections in an interactive view")

	return cmd
}
