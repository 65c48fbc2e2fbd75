package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arquati/catimport/internal/catalog"
	"github.com/arquati/catimport/internal/output"
)

var checkOutputMode string

var checkCmd = &cobra.Command{
	Use:   "check [CATALOG=CSV_PATH ...]",
	Short: "Parse catalog CSV files without writing anything",
	Long: `Parse the manifest and mappings and read every catalog CSV file,
reporting the detected delimiter and how many models each would produce.
Nothing is written to the output root. The first unreadable mapping or CSV
file aborts with a non-zero exit.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writer := newCheckWriter()

		plan, err := resolvePlan(cmd, args)
		if err != nil {
			printError(err)
		}
		if err := runCheck(plan, writer); err != nil {
			printError(err)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkOutputMode, "output", "auto", "output mode: color, plain, or auto (auto detects TTY)")
	rootCmd.AddCommand(checkCmd)
}

// runCheck reads every CSV in the plan and reports what an import would
// produce, without writing anything.
func runCheck(plan *importPlan, writer output.Writer) error {
	writer.Header(fmt.Sprintf("Checking %d catalog import(s) for brand %q...", len(plan.Imports), plan.Brand))
	writer.Println()

	total := 0
	for _, imp := range plan.Imports {
		if err := statCSV(imp.CSVPath); err != nil {
			return err
		}
		delimiter, err := catalog.FileDelimiter(imp.CSVPath)
		if err != nil {
			return err
		}
		models, err := catalog.ReadModels(imp.CSVPath)
		if err != nil {
			return err
		}
		writer.Bullet(fmt.Sprintf("%s (%s, delimiter %q): model(s)", imp.Catalog, imp.CSVPath, string(delimiter)), len(models))
		total += len(models)
	}

	writer.Println()
	writer.Success(fmt.Sprintf("All catalog CSV files parsed: %d model(s) in total", total))
	return nil
}

// newCheckWriter builds the terminal writer for the check command from the
// --output flag.
func newCheckWriter() output.Writer {
	switch checkOutputMode {
	case "color":
		return output.NewWriter(output.ModeColor, os.Stdout)
	case "plain":
		return output.NewWriter(output.ModePlain, os.Stdout)
	default:
		return output.NewWriter(output.DetectDefaultMode(os.Stdout), os.Stdout)
	}
}
