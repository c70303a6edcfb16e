package receitas

import (
	"database/sql"
	"fmt"
	"text/tabwriter"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage your own recipe categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.AddCategory(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q\n", args[0])
			return nil
		})
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories with their recipe counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			categories, err := service.ListCategories(sqldb)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tRECIPES")
			for _, c := range categories {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", c.ID, c.Name, c.RecipeCount)
			}
			return tw.Flush()
		})
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RenameCategory(sqldb, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed category %q to %q\n", args[0], args[1])
			return nil
		})
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a category; its recipes are kept",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteCategory(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %q\n", args[0])
			return nil
		})
	},
}

var categoryToggleCmd = &cobra.Command{
	Use:   "toggle <recipe id|title> <category>",
	Short: "Add a recipe to a category, or remove it if already there",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in, err := service.ToggleRecipeCategory(sqldb, args[0], args[1])
			if err != nil {
				return err
			}
			if in {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to category %q\n", args[0], args[1])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from category %q\n", args[0], args[1])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd, categoryListCmd, categoryRenameCmd, categoryDeleteCmd, categoryToggleCmd)
}
