package receitas

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/model"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Manage recipes",
}

var (
	recipeTitle           string
	recipeIngredients     []string
	recipeIngredientsFile string
	recipeInstructions    string
	recipePrepTime        string
	recipeServings        string
	recipeCategory        string
	recipeImageURL        string
	recipeSource          string

	recipeListCategory     string
	recipeListUserCategory string
	recipeListQuery        string
	recipeListFavorites    bool
	recipeFavoriteOff      bool
)

func recipeInputFromFlags(cmd *cobra.Command) (service.RecipeInput, error) {
	lines := append([]string{}, recipeIngredients...)
	if strings.TrimSpace(recipeIngredientsFile) != "" {
		fromFile, err := readIngredientLines(recipeIngredientsFile, cmd.InOrStdin())
		if err != nil {
			return service.RecipeInput{}, err
		}
		lines = append(lines, fromFile...)
	}
	return service.RecipeInput{
		Title:        recipeTitle,
		Ingredients:  lines,
		Instructions: recipeInstructions,
		PrepTime:     recipePrepTime,
		Servings:     recipeServings,
		Category:     recipeCategory,
		ImageURL:     recipeImageURL,
		Source:       recipeSource,
	}, nil
}

var recipeAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a recipe and estimate its nutrition",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := recipeInputFromFlags(cmd)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.CreateRecipe(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created recipe %d\n", id)
			return nil
		})
	},
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			recipes, err := service.ListRecipes(sqldb, service.ListRecipesFilter{
				Category:     recipeListCategory,
				UserCategory: recipeListUserCategory,
				Favorites:    recipeListFavorites,
				Query:        recipeListQuery,
			})
			if err != nil {
				return err
			}
			return printRecipeTable(cmd.OutOrStdout(), recipes)
		})
	},
}

var recipeSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Find recipes by title, category, ingredient, or user category",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			recipes, err := service.SearchRecipes(sqldb, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes found")
				return nil
			}
			return printRecipeTable(cmd.OutOrStdout(), recipes)
		})
	},
}

func printRecipeTable(w io.Writer, recipes []model.Recipe) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tKCAL\tP\tC\tF\tFIB\tFAV")
	for _, r := range recipes {
		fav := ""
		if r.IsFavorite {
			fav = "*"
		}
		n := r.Nutrition
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%.1f\t%.1f\t%.1f\t%.1f\t%s\n", r.ID, r.Title, r.Category, n.Calories, n.ProteinG, n.CarbsG, n.FatG, n.FiberG, fav)
	}
	return tw.Flush()
}

var recipeShowCmd = &cobra.Command{
	Use:   "show <id|title>",
	Short: "Show recipe details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			r, err := service.ResolveRecipe(sqldb, args[0])
			if err != nil {
				return err
			}
			printRecipe(cmd.OutOrStdout(), r)
			return nil
		})
	},
}

func printRecipe(w io.Writer, r *model.Recipe) {
	fmt.Fprintf(w, "ID: %d\nTitle: %s\nCategory: %s\nPrep Time: %s\nServings: %s\nSource: %s\nFavorite: %t\n", r.ID, r.Title, r.Category, r.PrepTime, r.Servings, r.Source, r.IsFavorite)
	if len(r.UserCategories) > 0 {
		fmt.Fprintf(w, "My categories: %s\n", strings.Join(r.UserCategories, ", "))
	}
	if r.ImageURL != "" {
		fmt.Fprintf(w, "Image: %s\n", r.ImageURL)
	}
	fmt.Fprintln(w, "\nIngredients:")
	for _, line := range r.Ingredients {
		fmt.Fprintf(w, "  - %s\n", line)
	}
	fmt.Fprintf(w, "\nInstructions:\n%s\n\n", r.Instructions)
	fmt.Fprintln(w, nutrition.Format(r.Nutrition))
}

var recipeUpdateCmd = &cobra.Command{
	Use:   "update <id|title>",
	Short: "Replace a recipe and re-estimate its nutrition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := recipeInputFromFlags(cmd)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateRecipe(sqldb, args[0], in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeDeleteCmd = &cobra.Command{
	Use:   "delete <id|title>",
	Short: "Delete a recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteRecipe(sqldb, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted recipe %q\n", args[0])
			return nil
		})
	},
}

var recipeRecalcCmd = &cobra.Command{
	Use:   "recalc <id|title>",
	Short: "Re-estimate recipe nutrition from its ingredient lines",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			n, err := service.RecalculateRecipeNutrition(sqldb, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recalculated recipe %q\n%s\n", args[0], nutrition.Format(n))
			return nil
		})
	},
}

var recipeFavoriteCmd = &cobra.Command{
	Use:   "favorite <id|title>",
	Short: "Mark a recipe as favorite (--off to unmark)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetFavorite(sqldb, args[0], !recipeFavoriteOff); err != nil {
				return err
			}
			if recipeFavoriteOff {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %q from favorites\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Added %q to favorites\n", args[0])
			}
			return nil
		})
	},
}

var recipeSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the built-in catalog of Brazilian recipes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			n, err := service.SeedRecipes(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d recipe(s)\n", n)
			return nil
		})
	},
}

func addRecipeInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&recipeTitle, "title", "", "Recipe title")
	cmd.Flags().StringArrayVar(&recipeIngredients, "ingredient", nil, "Ingredient line (repeatable)")
	cmd.Flags().StringVar(&recipeIngredientsFile, "ingredients-file", "", "Read ingredient lines from a file (- for stdin)")
	cmd.Flags().StringVar(&recipeInstructions, "instructions", "", "Preparation instructions")
	cmd.Flags().StringVar(&recipePrepTime, "prep-time", "", "Preparation time, e.g. \"45 minutos\"")
	cmd.Flags().StringVar(&recipeServings, "servings", "", "Servings, e.g. \"8 porções\"")
	cmd.Flags().StringVar(&recipeCategory, "category", "", "Category (default from config)")
	cmd.Flags().StringVar(&recipeImageURL, "image-url", "", "Image URL")
	cmd.Flags().StringVar(&recipeSource, "source", "", "Source (default from config)")
}

func init() {
	rootCmd.AddCommand(recipeCmd)
	recipeCmd.AddCommand(recipeAddCmd, recipeListCmd, recipeSearchCmd, recipeShowCmd, recipeUpdateCmd, recipeDeleteCmd, recipeRecalcCmd, recipeFavoriteCmd, recipeSeedCmd)

	addRecipeInputFlags(recipeAddCmd)
	addRecipeInputFlags(recipeUpdateCmd)

	recipeListCmd.Flags().StringVar(&recipeListCategory, "category", "", "Only recipes in this category")
	recipeListCmd.Flags().StringVar(&recipeListUserCategory, "in", "", "Only recipes in this user category")
	recipeListCmd.Flags().StringVar(&recipeListQuery, "query", "", "Only recipes matching this search term")
	recipeListCmd.Flags().BoolVar(&recipeListFavorites, "favorites", false, "Only favorite recipes")
	recipeFavoriteCmd.Flags().BoolVar(&recipeFavoriteOff, "off", false, "Remove from favorites")
}
