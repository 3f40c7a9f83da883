package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"smallbrave/internal/tracker"
	"smallbrave/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var feelingFlag string
	var noteFlag string

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Complete today's challenge and save a reflection",
		RunE: func(cmd *cobra.Command, args []string) error {
			feeling, err := tracker.ParseFeeling(feelingFlag)
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			now := time.Now()
			out := cmd.OutOrStdout()

			res := svc.CompleteToday(ctx, now)
			printWarning(cmd, res.Warning)
			if res.AlreadyDone {
				fmt.Fprintln(out, ui.Muted.Render("Already completed today — adding another reflection."))
			} else {
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Completed!")+"  "+ui.StreakText(res.Streak.Count))
			}

			saved := svc.SaveReflection(ctx, now, tracker.ReflectionInput{Feeling: feeling, Note: noteFlag})
			printWarning(cmd, saved.Warning)

			fmt.Fprintln(out, ui.LabelValue("Feeling", ui.FeelingText(feeling)))
			if saved.Reflection.Note != "" {
				fmt.Fprintln(out, ui.LabelValue("Note", saved.Reflection.Note))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&feelingFlag, "feeling", "f", "", "How it felt (good|neutral|uncomfortable)")
	cmd.Flags().StringVarP(&noteFlag, "note", "n", "", "Optional note about how it went")

	return cmd
}
