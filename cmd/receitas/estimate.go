package receitas

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/maarcelaoliveiira/app-receitas-favoritas/internal/nutrition"
	"github.com/spf13/cobra"
)

var (
	estimateFile    string
	estimateJSON    bool
	estimateExplain bool
)

type estimateOutput struct {
	Nutrition     nutrition.Nutrition      `json:"nutrition"`
	Contributions []nutrition.Contribution `json:"contributions,omitempty"`
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [ingredient line...]",
	Short: "Estimate nutrition for ingredient lines",
	Long:  "Estimate calories and macros for ingredient lines given as arguments, read from --file, or read from stdin (one ingredient per line).",
	Example: `  receitas estimate "500g de feijão preto" "1 cebola grande"
  receitas estimate --file ingredientes.txt --explain
  cat ingredientes.txt | receitas estimate --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lines := args
		if len(lines) == 0 {
			src := estimateFile
			if src == "" {
				src = "-"
			}
			var err error
			lines, err = readIngredientLines(src, cmd.InOrStdin())
			if err != nil {
				return err
			}
		}

		out := estimateOutput{Nutrition: nutrition.Estimate(lines)}
		if estimateExplain {
			out.Contributions = nutrition.Explain(lines)
		}
		if estimateJSON {
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal estimate json: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		}
		if estimateExplain {
			if err := printContributions(cmd.OutOrStdout(), out.Contributions); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintln(cmd.OutOrStdout(), nutrition.Format(out.Nutrition))
		return nil
	},
}

func printContributions(w io.Writer, contribs []nutrition.Contribution) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tKEYWORD\tX100G\tKCAL\tP\tC\tF\tFIB")
	for _, c := range contribs {
		n := c.Nutrients
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n", c.Line, c.Keyword, c.Multiplier, n.Calories, n.ProteinG, n.CarbsG, n.FatG, n.FiberG)
	}
	return tw.Flush()
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateFile, "file", "", "Read ingredient lines from a file (- for stdin)")
	estimateCmd.Flags().BoolVar(&estimateJSON, "json", false, "Print JSON")
	estimateCmd.Flags().BoolVar(&estimateExplain, "explain", false, "Show each keyword match and its multiplier")
}
