package receitas

import (
	"database/sql"
	"fmt"
	"sort"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage local configuration",
}

var (
	cfgDefaultCategory string
	cfgDefaultSource   string
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			updates := 0
			if cmd.Flags().Changed("default-category") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultCategory, cfgDefaultCategory); err != nil {
					return err
				}
				updates++
			}
			if cmd.Flags().Changed("default-source") {
				if err := service.SetConfig(sqldb, service.ConfigDefaultSource, cfgDefaultSource); err != nil {
					return err
				}
				updates++
			}
			if updates == 0 {
				return fmt.Errorf("set at least one flag")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d config value(s)\n", updates)
			return nil
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			cfg, err := service.ListConfig(sqldb)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(cfg))
			for k := range cfg {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintln(cmd.OutOrStdout(), "KEY\tVALUE")
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", k, cfg[k])
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd, configGetCmd)

	configSetCmd.Flags().StringVar(&cfgDefaultCategory, "default-category", "", "Category for recipes saved without one")
	configSetCmd.Flags().StringVar(&cfgDefaultSource, "default-source", "", "Source for recipes saved without one")
}
