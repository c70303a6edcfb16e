package receitas

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:           "receitas",
	Short:         "receitas keeps your favorite recipes and estimates their nutrition",
	Long:          "receitas is a local-first recipe book that stamps every recipe with a rough calorie and macro estimate derived from its ingredient lines.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (default $RECEITAS_DB or the user config dir)")
}
