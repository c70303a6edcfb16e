package receitas

import (
	"fmt"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/app"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/db"
	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var initSeed bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create or upgrade the recipe database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}
		sqldb, err := db.Open(path)
		if err != nil {
			return err
		}
		defer sqldb.Close()

		before, err := db.SchemaVersion(sqldb)
		if err != nil {
			return err
		}
		if err := db.ApplyMigrations(sqldb); err != nil {
			return err
		}
		after, err := db.SchemaVersion(sqldb)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if after == before {
			fmt.Fprintf(out, "Recipe database at %s is up to date (schema v%d)\n", path, after)
		} else {
			fmt.Fprintf(out, "Recipe database at %s migrated from schema v%d to v%d\n", path, before, after)
		}
		if initSeed {
			n, err := service.SeedRecipes(sqldb)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Seeded %d recipe(s)\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initSeed, "seed", false, "Also load the built-in Brazilian recipe catalog")
}

func resolveDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}
