package cmd

import (
	"fmt"
	"os"

	"margincast/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat  string
	flagExportOut     string
	flagExportSummary bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the projection as CSV or XLSX",
	Long: `Export the projection in machine-readable form.

CSV goes to stdout unless --out is given. XLSX always requires --out and
writes a workbook with Projection and Summary sheets.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "csv", "Output format: csv or xlsx")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default stdout for csv)")
	exportCmd.Flags().BoolVar(&flagExportSummary, "summary", false, "Export summary statistics instead of the monthly table (csv only)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	_, records, summary, _, err := project()
	if err != nil {
		return err
	}

	switch flagExportFormat {
	case "csv":
		out := os.Stdout
		if flagExportOut != "" {
			f, err := os.Create(flagExportOut)
			if err != nil {
				return fmt.Errorf("creating %s: %w", flagExportOut, err)
			}
			defer f.Close()
			out = f
		}

		if flagExportSummary {
			if err := export.WriteSummaryCSV(out, summary); err != nil {
				return err
			}
		} else {
			if err := export.WritePeriodsCSV(out, records); err != nil {
				return err
			}
		}

		if flagExportOut != "" {
			infof("  Wrote %s\n", flagExportOut)
		}
		return nil

	case "xlsx":
		if flagExportOut == "" {
			return fmt.Errorf("xlsx export requires --out")
		}
		if err := export.WriteWorkbook(flagExportOut, records, summary); err != nil {
			return err
		}
		infof("  Wrote %s (%d months + summary)\n", flagExportOut, len(records))
		return nil

	default:
		return fmt.Errorf("unknown format %q: use csv or xlsx", flagExportFormat)
	}
}
