// ABOUTME: Computes progress from initial weight toward the goal weight.
// ABOUTME: Handles loss and gain goals, clamps to 0-100 and picks a status line.
package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/harperreed/wellness/internal/models"
)

// Direction of the weight goal.
type Direction string

const (
	DirectionNone Direction = "none"
	DirectionGain Direction = "gain"
	DirectionLoss Direction = "loss"
)

// State classifies the current weight relative to initial and goal.
type State string

const (
	StateMet         State = "met"
	StateProgressing State = "progressing"
	StateRegressed   State = "regressed"
)

// Result is the outcome of Calculate.
type Result struct {
	Initial   float64
	Current   float64
	Goal      float64
	Percent   float64
	Direction Direction
	State     State
	Status    string
}

// Calculate maps initial, current and goal weights to a percentage in
// [0,100] and a status sentence. Amounts in the sentence use two decimals.
func Calculate(initial, current, goal float64) Result {
	r := Result{Initial: initial, Current: current, Goal: goal}

	if initial == goal {
		r.Percent = 100
		r.Direction = DirectionNone
		r.State = StateMet
		r.Status = "Goal already met."
		return r
	}

	total := math.Abs(goal - initial)
	var covered float64
	if goal > initial {
		r.Direction = DirectionGain
		covered = current - initial
	} else {
		r.Direction = DirectionLoss
		covered = initial - current
	}
	r.Percent = clamp(covered/total*100, 0, 100)
	r.State, r.Status = status(r.Direction, initial, current, goal)
	return r
}

func status(dir Direction, initial, current, goal float64) (State, string) {
	remaining := math.Abs(goal - current)
	moved := math.Abs(current - initial)

	if dir == DirectionGain {
		switch {
		case current >= goal:
			return StateMet, fmt.Sprintf("Congratulations! You reached your weight gain goal and exceeded it by %.2fkg.", current-goal)
		case current >= initial:
			return StateProgressing, fmt.Sprintf("You have gained %.2fkg, %.2fkg remaining to reach your goal.", moved, remaining)
		default:
			return StateRegressed, fmt.Sprintf("You have lost %.2fkg instead of gaining; %.2fkg remaining to reach your goal.", moved, remaining)
		}
	}

	switch {
	case current <= goal:
		return StateMet, fmt.Sprintf("Congratulations! You reached your weight loss goal and exceeded it by %.2fkg.", goal-current)
	case current <= initial:
		return StateProgressing, fmt.Sprintf("You have lost %.2fkg, %.2fkg remaining to reach your goal.", moved, remaining)
	default:
		return StateRegressed, fmt.Sprintf("You have gained %.2fkg instead of losing; %.2fkg remaining to reach your goal.", moved, remaining)
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

// CurrentWeight returns the weight of the latest day with a recorded
// weight, or initial when nothing was recorded this week.
func CurrentWeight(week models.WeeklyLog, initial float64) float64 {
	for i := len(week) - 1; i >= 0; i-- {
		if week[i].Weight > 0 {
			return week[i].Weight
		}
	}
	return initial
}

// ForProfile runs Calculate for a profile and its current week.
func ForProfile(p models.UserProfile, week models.WeeklyLog) Result {
	return Calculate(p.InitialWeight, CurrentWeight(week, p.InitialWeight), p.WeightGoal)
}

// Bar renders percent as a fixed-width text bar, e.g. "[#####-----]".
func Bar(percent float64, width int) string {
	if width <= 0 {
		return "[]"
	}
	filled := int(math.Round(clamp(percent, 0, 100) / 100 * float64(width)))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
