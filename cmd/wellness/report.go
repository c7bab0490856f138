// ABOUTME: CLI command for generating and viewing the weekly report.
// ABOUTME: Prints the report as plain text, raw HTML, or a single section.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/export"
	"github.com/harperreed/wellness/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportShow    bool
	reportHTML    bool
	reportSection string
)

var reportCmd = &cobra.Command{
	Use:     "report",
	Aliases: []string{"r"},
	Short:   "Generate the weekly report",
	Long: `Generate a personalized weekly report (in Spanish) from this week's data.

Generating replaces the previous report for this week. With --show the saved
report is printed without contacting the provider.

SECTIONS:

  analisis-diario     Day-by-day analysis
  recomendaciones     Recommendations
  completa-tu-perfil  Profile reminder (only when the profile is incomplete)

EXAMPLES:

  wellness report                             # Generate and print
  wellness report --show                      # Print the saved report
  wellness report --show --section recomendaciones
  wellness report --show --html > reporte.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var content string
		if reportShow {
			summary := ctrl.Summary()
			if summary.IsZero() {
				color.Yellow("No report for this week yet")
				fmt.Println("\nRun 'wellness report' to generate one.")
				return nil
			}
			content = summary.Content
		} else {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			fmt.Println(color.New(color.Faint).Sprint("Generating report..."))
			summary, err := ctrl.GenerateReport(ctx)
			if err != nil {
				return reportError(err)
			}
			content = summary.Content
		}

		if reportSection != "" {
			section, ok := report.Section(content, reportSection)
			if !ok {
				return fmt.Errorf("section %q not found in report", reportSection)
			}
			content = section
		}

		if reportHTML {
			fmt.Println(content)
			return nil
		}
		return printRichText(content)
	},
}

func reportError(err error) error {
	var genErr *report.GenerationError
	switch {
	case errors.Is(err, report.ErrNoData):
		color.Yellow("⚠ Nothing logged this week yet")
		fmt.Println("\nLog a weight, a meal or a mood first, e.g. 'wellness log weight 68'.")
		return nil
	case errors.As(err, &genErr):
		color.Red("✗ Could not generate the report")
		fmt.Println("\nCheck your connection and API key, then run 'wellness report' again.")
		return err
	}
	if hint := generatorHint(err); hint != "" {
		return fmt.Errorf("%w: %s", err, hint)
	}
	return err
}

func printRichText(content string) error {
	blocks, err := export.ParseRichText(content)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	for _, b := range blocks {
		switch b.Kind {
		case export.BlockHeading:
			if b.Level == 1 {
				fmt.Println(bold.Sprint(strings.ToUpper(b.Text)))
			} else {
				fmt.Println(bold.Sprint(b.Text))
			}
		case export.BlockListItem:
			fmt.Printf("  %s %s\n", b.Marker, b.Text)
			continue
		case export.BlockTable:
			if len(b.Header) > 0 {
				fmt.Println(bold.Sprint(strings.Join(b.Header, " | ")))
			}
			for _, row := range b.Rows {
				fmt.Println(strings.Join(row, " | "))
			}
		default:
			fmt.Println(b.Text)
		}
		fmt.Println()
	}
	return nil
}

func init() {
	reportCmd.Flags().BoolVar(&reportShow, "show", false, "print the saved report instead of generating")
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "print raw HTML")
	reportCmd.Flags().StringVarP(&reportSection, "section", "s", "", "print only the section with this id")
	rootCmd.AddCommand(reportCmd)
}
