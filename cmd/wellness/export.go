// ABOUTME: CLI command for exporting the week.
// ABOUTME: Supports the PDF report plus JSON and YAML snapshots.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/export"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the weekly report or your data",
	Long: `Export the weekly report or this week's data.

FORMATS:

  pdf    The generated report as a paginated PDF (Reporte_<name>.pdf)
  json   Full JSON snapshot of profile, week, metrics and report
  yaml   YAML snapshot (human-readable)

OPTIONS:

  --output, -o   Directory for pdf (default: current directory),
                 file for json/yaml (default: stdout)

EXAMPLES:

  wellness export pdf                  # Writes ./Reporte_Ana.pdf
  wellness export pdf -o ~/Documents   # Writes ~/Documents/Reporte_Ana.pdf
  wellness export json -o backup.json  # Save a snapshot
  wellness export yaml                 # Print as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"pdf", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch format := args[0]; format {
		case "pdf":
			return exportPDF()
		case "json", "yaml":
			return exportSnapshot(format)
		default:
			return fmt.Errorf("unknown format: %s (use pdf, json or yaml)", format)
		}
	},
}

func exportPDF() error {
	profile, err := ctrl.RequireProfile()
	if err != nil {
		return err
	}
	summary := ctrl.Summary()
	if summary.IsZero() {
		return fmt.Errorf("%w: run 'wellness report' first", export.ErrNoReport)
	}
	r, err := ctrl.Progress()
	if err != nil {
		return err
	}

	dir := exportOutput
	if dir == "" {
		dir = "."
	}
	path, err := export.SaveFile(dir, export.Document{
		Title:       export.DefaultTitle,
		Profile:     profile,
		Progress:    r,
		Body:        summary.Content,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	color.Green("✓ Exported report to %s", path)
	return nil
}

func exportSnapshot(format string) error {
	snap := ctrl.Snapshot()
	data, err := export.NewSnapshot(snap.Profile, snap.Week, snap.Metrics, snap.Summary, time.Now()).Marshal(format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(exportOutput, data, 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	color.Green("✓ Exported to %s", exportOutput)
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (pdf) or file (json/yaml)")
	rootCmd.AddCommand(exportCmd)
}
