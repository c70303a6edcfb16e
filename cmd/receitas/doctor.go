package receitas

import (
	"database/sql"
	"fmt"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check stored nutrition against a fresh estimate",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recipes checked: %d\n", report.RecipesChecked)
			fmt.Fprintf(cmd.OutOrStdout(), "Recipes without ingredients: %d\n", report.EmptyRecipes)
			fmt.Fprintf(cmd.OutOrStdout(), "Stale nutrition: %d\n", report.StaleNutrition)
			for _, title := range report.StaleTitles {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", title)
			}
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed nutrition rows: %d\n", report.FixedNutritionRows)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(sqldb, false)
				if err != nil {
					return err
				}
			}
			if !report.Healthy() {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Rewrite stale nutrition snapshots")
}
