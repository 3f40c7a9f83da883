package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smallbrave/internal/ui"
)

const Version = "0.1.0"

var (
	flagDB         string
	flagTZ         string
	flagChallenges string
)

var rootCmd = &cobra.Command{
	Use:           "sb",
	Short:         "Small Brave Moments — daily connection practice",
	Long:          "Small Brave Moments is a local-first daily practice tracker: one small connection challenge per day, a streak, and weekly reflections.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database file (default $SMALLBRAVE_DB or ~/.smallbrave.db)")
	rootCmd.PersistentFlags().StringVar(&flagTZ, "tz", "", "IANA time zone for day boundaries (default: system zone)")
	rootCmd.PersistentFlags().StringVar(&flagChallenges, "challenges", "", "YAML file replacing the built-in challenge table")

	rootCmd.AddCommand(
		newTodayCmd(),
		newDoneCmd(),
		newReflectCmd(),
		newHistoryCmd(),
		newReportCmd(),
		newStatusCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
