// ABOUTME: CLI commands for the week as a whole: overview, reset, metrics and progress.
// ABOUTME: Reset asks for confirmation unless --yes is passed.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/progress"
	"github.com/harperreed/wellness/internal/report"
	"github.com/harperreed/wellness/internal/tracker"
	"github.com/spf13/cobra"
)

var (
	weekResetYes bool

	metricsStrength      string
	metricsMeasurements  string
	metricsBMI           string
	metricsDailyActivity string
)

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w"},
	Short:   "Show or reset the current week",
}

var weekShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all seven days",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap := ctrl.Snapshot()
		faint := color.New(color.Faint)

		logged := 0
		for i, d := range snap.Week.Days {
			marker := " "
			if i == snap.View.Day {
				marker = color.CyanString("›")
			}
			if !d.HasData() {
				fmt.Printf("%s %s %s\n", marker, padRight(dayLabel(i), 12), faint.Sprint("no data"))
				continue
			}
			logged++
			weight := "-"
			if d.Weight > 0 {
				weight = report.FormatWeight(d.Weight)
			}
			fmt.Printf("%s %s %s %s %s\n",
				marker,
				padRight(dayLabel(i), 12),
				padRight(weight, 9),
				padRight(string(d.ActivityLevel), 11),
				truncate(d.Mood, 30))
		}

		fmt.Println()
		fmt.Printf("%s %d/7 days logged\n", faint.Sprint(snap.Week.ID.String()[:8]), logged)
		return nil
	},
}

var weekResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear all days, metrics and the report",
	Long: `Clear all seven days, the weekly metrics and the generated report.
Your profile is kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ask := func() bool {
			if weekResetYes {
				return true
			}
			return confirm(cmd.InOrStdin(), "This will clear all data for this week. Continue? [y/N] ")
		}
		if !ctrl.ResetWeek(ask) {
			fmt.Println("Canceled.")
			return nil
		}
		color.Green("✓ Week reset")
		return nil
	},
}

var metricsCmd = &cobra.Command{
	Use:     "metrics",
	Aliases: []string{"m"},
	Short:   "Manage weekly metrics",
	Long: `Free-text weekly metrics: strength, body measurements, BMI and daily activity.
They are included in the weekly report and cleared on week reset.`,
}

var metricsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update weekly metrics",
	Long: `Update weekly metrics. Only the flags you pass are changed.

Examples:
  wellness metrics set --strength "sentadilla 60kg x 10"
  wellness metrics set --bmi 23.4 --measurements "cintura 80cm"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch tracker.MetricsPatch
		flags := cmd.Flags()
		if flags.Changed("strength") {
			patch.Strength = &metricsStrength
		}
		if flags.Changed("measurements") {
			patch.Measurements = &metricsMeasurements
		}
		if flags.Changed("bmi") {
			patch.BMI = &metricsBMI
		}
		if flags.Changed("daily-activity") {
			patch.DailyActivity = &metricsDailyActivity
		}

		m, err := ctrl.UpdateMetrics(patch)
		if err != nil {
			return err
		}
		color.Green("✓ Metrics saved")
		for _, row := range report.MetricRows(m) {
			fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(padRight(row[0]+":", 20)), row[1])
		}
		return nil
	},
}

var metricsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show weekly metrics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, row := range report.MetricRows(ctrl.Snapshot().Metrics) {
			fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(padRight(row[0]+":", 20)), row[1])
		}
		return nil
	},
}

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show progress toward your weight goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := ctrl.Progress()
		if err != nil {
			return err
		}

		fmt.Printf("%s %.0f%%\n", progress.Bar(r.Percent, 30), r.Percent)
		fmt.Printf("  %s → %s (goal %s)\n",
			report.FormatWeight(r.Initial),
			report.FormatWeight(r.Current),
			report.FormatWeight(r.Goal))

		switch r.State {
		case progress.StateMet:
			color.Green("%s", r.Status)
		case progress.StateRegressed:
			color.Yellow("%s", r.Status)
		default:
			fmt.Println(r.Status)
		}
		return nil
	},
}

func init() {
	weekResetCmd.Flags().BoolVarP(&weekResetYes, "yes", "y", false, "skip confirmation prompt")
	weekCmd.AddCommand(weekShowCmd)
	weekCmd.AddCommand(weekResetCmd)

	metricsSetCmd.Flags().StringVar(&metricsStrength, "strength", "", "strength notes")
	metricsSetCmd.Flags().StringVar(&metricsMeasurements, "measurements", "", "body measurements")
	metricsSetCmd.Flags().StringVar(&metricsBMI, "bmi", "", "body mass index")
	metricsSetCmd.Flags().StringVar(&metricsDailyActivity, "daily-activity", "", "daily activity notes")
	metricsCmd.AddCommand(metricsSetCmd)
	metricsCmd.AddCommand(metricsShowCmd)

	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(progressCmd)
}
