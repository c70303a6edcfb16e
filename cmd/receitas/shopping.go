package receitas

import (
	"database/sql"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var (
	shoppingRecipe   string
	shoppingCategory string
	shoppingPending  bool
)

var shoppingCmd = &cobra.Command{
	Use:   "shopping",
	Short: "Manage the shopping list",
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add [item...]",
	Short: "Add items, or every ingredient of --recipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(shoppingRecipe) == "" && len(args) == 0 {
			return fmt.Errorf("give items as arguments or use --recipe")
		}
		return withDB(func(sqldb *sql.DB) error {
			added := 0
			if strings.TrimSpace(shoppingRecipe) != "" {
				n, err := service.AddRecipeToShoppingList(sqldb, shoppingRecipe)
				if err != nil {
					return err
				}
				added += n
			}
			if len(args) > 0 {
				n, err := service.AddShoppingItems(sqldb, args, shoppingCategory)
				if err != nil {
					return err
				}
				added += n
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d item(s) to the shopping list\n", added)
			return nil
		})
	},
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the shopping list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListShoppingItems(sqldb, service.ShoppingFilter{Pending: shoppingPending})
			if err != nil {
				return err
			}
			pending := 0
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tDONE\tITEM\tCATEGORY\tRECIPE")
			for _, item := range items {
				done := "[ ]"
				if item.Checked {
					done = "[x]"
				} else {
					pending++
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.ID, done, item.Name, item.Category, item.RecipeTitle)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d pending item(s)\n", pending)
			return nil
		})
	},
}

var shoppingToggleCmd = &cobra.Command{
	Use:   "toggle <item id>",
	Short: "Check or uncheck an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			checked, err := service.ToggleShoppingItem(sqldb, id)
			if err != nil {
				return err
			}
			state := "unchecked"
			if checked {
				state = "checked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %d %s\n", id, state)
			return nil
		})
	},
}

var shoppingDeleteCmd = &cobra.Command{
	Use:   "delete <item id>",
	Short: "Delete an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("item id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteShoppingItem(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted item %d\n", id)
			return nil
		})
	},
}

var shoppingClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove checked items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			n, err := service.ClearCheckedShoppingItems(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d checked item(s)\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(shoppingCmd)
	shoppingCmd.AddCommand(shoppingAddCmd, shoppingListCmd, shoppingToggleCmd, shoppingDeleteCmd, shoppingClearCmd)

	shoppingAddCmd.Flags().StringVar(&shoppingRecipe, "recipe", "", "Add every ingredient line of this recipe (id or title)")
	shoppingAddCmd.Flags().StringVar(&shoppingCategory, "category", "", "Category for items given as arguments (default Ingredientes)")
	shoppingListCmd.Flags().BoolVar(&shoppingPending, "pending", false, "Only unchecked items")
}
