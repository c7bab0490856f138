// ABOUTME: CLI commands for the user profile.
// ABOUTME: profile set merges changed flags onto the saved profile; profile show prints it.
package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/report"
	"github.com/spf13/cobra"
)

var (
	profileName          string
	profileAge           int
	profileObjective     string
	profileInitialWeight float64
	profileWeightGoal    float64
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Manage your profile",
	Long: `Manage your profile. A complete profile (name, age, objective,
initial weight and weight goal) is required before logging any day.`,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	Long: `Create or update your profile. Only the flags you pass are changed.

Examples:
  wellness profile set --name "Ana" --age 30 --objective "Bajar de peso" \
    --initial-weight 70 --weight-goal 65
  wellness profile set --weight-goal 63`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var p models.UserProfile
		if saved := ctrl.Profile(); saved != nil {
			p = *saved
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			p.Name = profileName
		}
		if flags.Changed("age") {
			p.Age = profileAge
		}
		if flags.Changed("objective") {
			p.Objective = profileObjective
		}
		if flags.Changed("initial-weight") {
			p.InitialWeight = profileInitialWeight
		}
		if flags.Changed("weight-goal") {
			p.WeightGoal = profileWeightGoal
		}

		if err := ctrl.SaveProfile(p); err != nil {
			var verr *models.ValidationError
			if errors.As(err, &verr) {
				for _, f := range verr.Fields {
					color.Red("✗ %s: %s", f.Field, f.Message)
				}
				return errors.New("profile not saved")
			}
			return err
		}

		color.Green("✓ Profile saved")
		printProfile(*ctrl.Profile())
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := ctrl.Profile()
		if p == nil {
			color.Yellow("No profile yet")
			fmt.Println("\nRun 'wellness profile set' to create one.")
			return nil
		}
		printProfile(*p)
		if !p.IsComplete() {
			color.Yellow("\n⚠ Profile is incomplete")
		}
		return nil
	},
}

func printProfile(p models.UserProfile) {
	faint := color.New(color.Faint)
	for _, row := range report.ProfileRows(&p) {
		fmt.Printf("  %s %s\n", faint.Sprint(padRight(row[0]+":", 16)), row[1])
	}
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().StringVar(&profileObjective, "objective", "", "what you want to achieve")
	profileSetCmd.Flags().Float64Var(&profileInitialWeight, "initial-weight", 0, "starting weight in kg")
	profileSetCmd.Flags().Float64Var(&profileWeightGoal, "weight-goal", 0, "target weight in kg")

	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
