package root

import (
	"context"

	"github.com/spf13/cobra"

	"smallbrave/internal/tui"
)

func newReflectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Complete today interactively: pick a feeling, write a note",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunReflect(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
