// ABOUTME: CLI commands for daily tracking: selecting a day, logging values and meals.
// ABOUTME: Every write goes through the tracker controller, which requires a complete profile.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/tracker"
	"github.com/spf13/cobra"
)

var logDay string

var dayCmd = &cobra.Command{
	Use:   "day [1-7|name]",
	Short: "Show or select the current day",
	Long: `Show or select the current day. Days are positional: 1=Lunes through 7=Domingo.

Examples:
  wellness day          # Show the selected day
  wellness day 4        # Select Jueves
  wellness day sabado   # Select Sábado`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			index, err := parseDay(args[0])
			if err != nil {
				return err
			}
			index = ctrl.SetCurrentDay(index)
			color.Green("✓ Selected %s", models.DayNames[index])
		}

		snap := ctrl.Snapshot()
		printDay(snap.View.Day, snap.Week.Days[snap.View.Day])
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log weight, mood or activity for a day",
	Long: `Log weight, mood or activity level for the selected day (or --day).

Examples:
  wellness log weight 68.5
  wellness log mood "con energía" --day 2
  wellness log activity "muy activo"

Activity levels: Sedentario, Ligero, Moderado, Activo, Muy Activo.
An empty or invalid weight clears the day's weight.`,
}

var logWeightCmd = &cobra.Command{
	Use:   "weight <kg>",
	Short: "Log weight in kg",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := args[0]
		return updateDay(tracker.DayPatch{Weight: &raw})
	},
}

var logMoodCmd = &cobra.Command{
	Use:   "mood <text>",
	Short: "Log mood",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mood := strings.Join(args, " ")
		return updateDay(tracker.DayPatch{Mood: &mood})
	},
}

var logActivityCmd = &cobra.Command{
	Use:   "activity <level>",
	Short: "Log activity level",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := models.ParseActivityLevel(strings.Join(args, " "))
		if err != nil {
			return err
		}
		return updateDay(tracker.DayPatch{ActivityLevel: &level})
	},
}

var foodSlots = map[string]string{
	"breakfast": "breakfast", "desayuno": "breakfast",
	"lunch": "lunch", "almuerzo": "lunch", "comida": "lunch",
	"snack": "snack", "merienda": "snack", "colacion": "snack",
	"dinner": "dinner", "cena": "dinner",
	"other": "other", "otro": "other", "otros": "other",
}

var foodCmd = &cobra.Command{
	Use:     "food <slot> <text>",
	Aliases: []string{"f"},
	Short:   "Log a meal for a day",
	Long: `Log what you ate in one meal slot of the selected day (or --day).
Pass an empty string to clear the slot.

Slots: breakfast (desayuno), lunch (almuerzo), snack (merienda),
dinner (cena), other (otro).

Examples:
  wellness food breakfast "avena con fruta"
  wellness food cena "sopa de verduras" --day 3
  wellness food snack ""`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, ok := foodSlots[stripAccents(strings.ToLower(args[0]))]
		if !ok {
			return fmt.Errorf("unknown meal slot: %s\nValid slots: breakfast, lunch, snack, dinner, other", args[0])
		}
		text := strings.Join(args[1:], " ")

		var patch tracker.FoodPatch
		switch slot {
		case "breakfast":
			patch.Breakfast = &text
		case "lunch":
			patch.Lunch = &text
		case "snack":
			patch.Snack = &text
		case "dinner":
			patch.Dinner = &text
		case "other":
			patch.Other = &text
		}

		index, err := targetDay()
		if err != nil {
			return err
		}
		day, err := ctrl.UpdateFood(index, patch)
		if err != nil {
			return err
		}
		color.Green("✓ Logged %s", slot)
		printDay(index, day)
		return nil
	},
}

// targetDay resolves --day, falling back to the selected day.
func targetDay() (int, error) {
	if logDay != "" {
		return parseDay(logDay)
	}
	return ctrl.Snapshot().View.Day, nil
}

func updateDay(patch tracker.DayPatch) error {
	index, err := targetDay()
	if err != nil {
		return err
	}
	day, err := ctrl.UpdateDay(index, patch)
	if err != nil {
		return err
	}
	color.Green("✓ Updated %s", models.DayNames[index])
	printDay(index, day)
	return nil
}

func printDay(index int, d models.DailyLog) {
	faint := color.New(color.Faint)
	fmt.Println(color.New(color.Bold).Sprint(dayLabel(index)))

	weight := faint.Sprint("-")
	if d.Weight > 0 {
		weight = fmt.Sprintf("%g kg", d.Weight)
	}
	fmt.Printf("  %s %s\n", faint.Sprint(padRight("Weight:", 12)), weight)
	fmt.Printf("  %s %s\n", faint.Sprint(padRight("Mood:", 12)), orDash(d.Mood))
	fmt.Printf("  %s %s\n", faint.Sprint(padRight("Activity:", 12)), d.ActivityLevel)

	meals := [][2]string{
		{"Breakfast:", d.Food.Breakfast},
		{"Lunch:", d.Food.Lunch},
		{"Snack:", d.Food.Snack},
		{"Dinner:", d.Food.Dinner},
		{"Other:", d.Food.Other},
	}
	for _, m := range meals {
		fmt.Printf("  %s %s\n", faint.Sprint(padRight(m[0], 12)), orDash(m[1]))
	}
}

func orDash(s string) string {
	if s == "" {
		return color.New(color.Faint).Sprint("-")
	}
	return s
}

func init() {
	logCmd.PersistentFlags().StringVarP(&logDay, "day", "d", "", "day to log (1-7 or name, default: selected day)")
	foodCmd.Flags().StringVarP(&logDay, "day", "d", "", "day to log (1-7 or name, default: selected day)")

	logCmd.AddCommand(logWeightCmd)
	logCmd.AddCommand(logMoodCmd)
	logCmd.AddCommand(logActivityCmd)

	rootCmd.AddCommand(dayCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(foodCmd)
}
