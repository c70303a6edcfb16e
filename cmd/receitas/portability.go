package receitas

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/service"
	"github.com/spf13/cobra"
)

var (
	exportOut  string
	importIn   string
	importMode string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recipes as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			data, err := service.ExportRecipes(sqldb)
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal export json: %w", err)
			}
			if err := writeSink(exportOut, cmd.OutOrStdout(), append(b, '\n')); err != nil {
				return err
			}
			if strings.TrimSpace(exportOut) != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d recipe(s) to %s\n", len(data.Recipes), exportOut)
			}
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import recipes from JSON and estimate their nutrition",
	Long:  "Import an export document, a JSON array of recipes, or a single recipe object such as the output of a transcription flow. Ingredients may be a list of lines or one newline-separated string.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		mode, err := service.ParseImportMode(importMode)
		if err != nil {
			return err
		}
		raw, err := readSource(importIn, cmd.InOrStdin())
		if err != nil {
			return err
		}
		data, err := service.DecodeImport(bytes.NewReader(raw))
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.ImportRecipes(sqldb, data, mode)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported recipes: created=%d replaced=%d skipped=%d\n", report.Created, report.Replaced, report.Skipped)
			return nil
		})
	},
}

func init() {
	recipeCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (- for stdout)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file (- for stdin)")
	importCmd.Flags().StringVar(&importMode, "mode", "fail", "Title conflict handling: fail|skip|replace")
}
