package receitas

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var (
	planDate string
	planMeal string
	planFrom string
	planDays int
	planJSON bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan recipes for the days ahead",
}

var planAddCmd = &cobra.Command{
	Use:   "add <recipe id|title>",
	Short: "Schedule a recipe for a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := parseDateOrToday("date", planDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMealPlan(sqldb, service.MealPlanInput{
				Recipe: args[0],
				Date:   day.Format("2006-01-02"),
				Meal:   planMeal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Planned %q for %s %s (plan %d)\n", args[0], planMeal, day.Format("2006-01-02"), id)
			return nil
		})
	},
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <plan id>",
	Short: "Remove a planned meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("plan id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteMealPlan(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed plan %d\n", id)
			return nil
		})
	},
}

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show planned meals and estimated totals per day",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateOrToday("from", planFrom)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			days, err := service.PlanWeek(sqldb, start, planDays)
			if err != nil {
				return err
			}
			if planJSON {
				b, err := json.MarshalIndent(days, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal plan json: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			out := cmd.OutOrStdout()
			for _, d := range days {
				fmt.Fprintf(out, "%s\n", d.Date)
				if len(d.Meals) == 0 {
					fmt.Fprintln(out, "  Nenhuma refeição planejada")
					continue
				}
				for _, m := range d.Meals {
					fmt.Fprintf(out, "  [%d] %s: %s\n", m.ID, m.MealLabel, m.RecipeTitle)
				}
				fmt.Fprintf(out, "  %s\n", formatDayTotal(d.Nutrition))
			}
			return nil
		})
	},
}

func formatDayTotal(n nutrition.Nutrition) string {
	return fmt.Sprintf("Total: %d kcal | P %.1fg | C %.1fg | F %.1fg | Fib %.1fg", n.Calories, n.ProteinG, n.CarbsG, n.FatG, n.FiberG)
}

func init() {
	rootCmd.AddCommand(planCmd)
	planCmd.AddCommand(planAddCmd, planRemoveCmd, planWeekCmd)

	planAddCmd.Flags().StringVar(&planDate, "date", "", "Date YYYY-MM-DD (default today)")
	planAddCmd.Flags().StringVar(&planMeal, "meal", "", "Meal: cafe, almoco, lanche, or jantar")
	_ = planAddCmd.MarkFlagRequired("meal")

	planWeekCmd.Flags().StringVar(&planFrom, "from", "", "First day YYYY-MM-DD (default today)")
	planWeekCmd.Flags().IntVar(&planDays, "days", 7, "Number of days to show")
	planWeekCmd.Flags().BoolVar(&planJSON, "json", false, "Print JSON")
}
