package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arquati/catimport/internal/catalog"
	"github.com/arquati/catimport/internal/manifest"
)

const (
	defaultBrand   = "arquati"
	defaultOutRoot = "api/public/catalog"
)

var (
	brand        string
	outRoot      string
	manifestPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "catimport [flags] CATALOG=CSV_PATH ...",
	Short: "Import catalog CSV files into static JSON responses",
	Long: `catimport converts catalog CSV files into the static JSON files the
frontend fetches from /api/public/catalog/<catalog>/<brand>. Each mapping
names a catalog and the CSV file it is imported from:

  catimport --brand arquati \
    sistema-ibrido=./catalog_csv/sistema-ibrido.csv \
    pompa-calore=./catalog_csv/pompa-calore.csv

Imports may also be declared in a YAML or TOML manifest via --manifest.
Headers are normalized to ASCII snake_case keys, blank fields are dropped,
and one extensionless JSON file is written per catalog. On success the path
of every written file is printed to stdout, one per line.`,
	Args: cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		plan, err := resolvePlan(cmd, args)
		if err != nil {
			printError(err)
		}

		written, err := runImport(plan)
		if err != nil {
			printError(err)
		}

		for _, path := range written {
			fmt.Println(path)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&brand, "brand", defaultBrand, "brand slug used for the output file names")
	rootCmd.PersistentFlags().StringVar(&outRoot, "out-root", defaultOutRoot, "output root directory")
	rootCmd.PersistentFlags().StringVar(&manifestPath, "manifest", "", "YAML or TOML manifest declaring catalog imports")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "dump the resolved import plan to stderr")
}

// Execute runs the root command.
func Execute() {
	// Cobra already reports the error itself; repeating it here would be
	// redundant. The exit code is what scripts rely on.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// importPlan is the fully resolved input for one run: the brand, the output
// root, and every catalog import in processing order.
type importPlan struct {
	Brand   string
	OutRoot string
	Imports []catalog.CatalogImport
}

// resolvePlan merges flag, environment, and manifest inputs into an import
// plan. Precedence for brand and out-root: an explicitly set flag, then the
// manifest, then CATIMPORT_* environment variables, then built-in defaults.
// Manifest imports come first in sorted catalog order, followed by
// command-line mappings in argument order.
func resolvePlan(cmd *cobra.Command, args []string) (*importPlan, error) {
	v := viper.New()
	v.SetEnvPrefix("catimport")
	v.AutomaticEnv()
	v.SetDefault("brand", defaultBrand)
	v.SetDefault("out_root", defaultOutRoot)

	plan := &importPlan{
		Brand:   v.GetString("brand"),
		OutRoot: v.GetString("out_root"),
	}

	if manifestPath != "" {
		m, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, err
		}
		if m.Brand != "" {
			plan.Brand = m.Brand
		}
		if m.OutRoot != "" {
			plan.OutRoot = m.OutRoot
		}
		plan.Imports = append(plan.Imports, m.Imports()...)
	}

	cliImports, err := catalog.ParseMappings(args)
	if err != nil {
		return nil, err
	}
	plan.Imports = append(plan.Imports, cliImports...)

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("brand") {
		plan.Brand = brand
	}
	if flags.Changed("out-root") {
		plan.OutRoot = outRoot
	}

	plan.Brand = strings.TrimSpace(plan.Brand)
	if plan.Brand == "" {
		return nil, errors.New("--brand cannot be empty")
	}
	plan.OutRoot = strings.TrimSpace(plan.OutRoot)
	if plan.OutRoot == "" {
		return nil, errors.New("--out-root cannot be empty")
	}
	if len(plan.Imports) == 0 {
		return nil, errors.New("at least one CATALOG=CSV_PATH mapping is required")
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "resolved import plan: %s\n", pretty.Sprint(plan))
	}

	return plan, nil
}

// runImport processes each catalog import in order and returns the written
// file paths. The first failure aborts the run; files written for earlier
// imports remain on disk.
func runImport(plan *importPlan) ([]string, error) {
	written := make([]string, 0, len(plan.Imports))
	for _, imp := range plan.Imports {
		if err := statCSV(imp.CSVPath); err != nil {
			return nil, err
		}
		models, err := catalog.ReadModels(imp.CSVPath)
		if err != nil {
			return nil, err
		}
		path, err := catalog.WriteCatalog(plan.OutRoot, imp.Catalog, plan.Brand, models)
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// statCSV verifies the source file exists before any read or write happens
// for its mapping.
func statCSV(csvPath string) error {
	info, err := os.Stat(csvPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("CSV not found: %s", csvPath)
	}
	if err != nil {
		return fmt.Errorf("failed to stat CSV %s: %w", csvPath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("CSV path is a directory: %s", csvPath)
	}
	return nil
}
