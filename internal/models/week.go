// ABOUTME: Daily and weekly tracking models: food slots, daily logs, the 7-day week.
// ABOUTME: Days are positional (0-6), never bound to calendar dates.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DaysPerWeek is the fixed length of a WeeklyLog.
const DaysPerWeek = 7

// DayNames maps day positions to their display names.
var DayNames = [DaysPerWeek]string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// ErrDayIndex is returned for a day position outside [0,6].
var ErrDayIndex = errors.New("day index out of range")

// ActivityLevel is the self-reported activity for a day.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "Sedentario"
	ActivityLight      ActivityLevel = "Ligero"
	ActivityModerate   ActivityLevel = "Moderado"
	ActivityActive     ActivityLevel = "Activo"
	ActivityVeryActive ActivityLevel = "Muy Activo"
)

// DefaultActivityLevel is assigned to every fresh DailyLog.
const DefaultActivityLevel = ActivityModerate

// AllActivityLevels lists the valid levels in ascending order.
var AllActivityLevels = []ActivityLevel{
	ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive,
}

// ParseActivityLevel accepts a level name case-insensitively; "muy-activo" and
// "muy_activo" are accepted for Muy Activo.
func ParseActivityLevel(s string) (ActivityLevel, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	for _, lvl := range AllActivityLevels {
		if strings.ToLower(string(lvl)) == norm {
			return lvl, nil
		}
	}
	return "", fmt.Errorf("unknown activity level: %q", s)
}

// DailyFoodLog holds the five meal slots. Empty means not logged.
type DailyFoodLog struct {
	Breakfast string `json:"breakfast" yaml:"breakfast"`
	Lunch     string `json:"lunch" yaml:"lunch"`
	Snack     string `json:"snack" yaml:"snack"`
	Dinner    string `json:"dinner" yaml:"dinner"`
	Other     string `json:"other" yaml:"other"`
}

// IsEmpty reports whether no meal slot has text.
func (f DailyFoodLog) IsEmpty() bool {
	return f.Breakfast == "" && f.Lunch == "" && f.Snack == "" && f.Dinner == "" && f.Other == ""
}

// DailyLog is one positional slot of the week.
type DailyLog struct {
	Weight        float64       `json:"weight" yaml:"weight"`
	Food          DailyFoodLog  `json:"food" yaml:"food"`
	Mood          string        `json:"mood" yaml:"mood"`
	ActivityLevel ActivityLevel `json:"activityLevel" yaml:"activityLevel"`
}

// NewDailyLog returns a blank day with the default activity level.
func NewDailyLog() DailyLog {
	return DailyLog{ActivityLevel: DefaultActivityLevel}
}

// HasData reports whether the day carries a weight, any meal or a mood.
// Activity level alone never counts since it always has a default.
func (d DailyLog) HasData() bool {
	return d.Weight > 0 || !d.Food.IsEmpty() || d.Mood != ""
}

// ParseWeight coerces user input into a weight. Empty, invalid, negative
// or non-finite input yields 0, meaning "not recorded".
func ParseWeight(s string) float64 {
	s = strings.TrimSpace(strings.Replace(s, ",", ".", 1))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// WeeklyLog is the fixed 7-day record. Its JSON form is a 7-element array.
type WeeklyLog [DaysPerWeek]DailyLog

// NewWeeklyLog returns seven blank days.
func NewWeeklyLog() WeeklyLog {
	var w WeeklyLog
	for i := range w {
		w[i] = NewDailyLog()
	}
	return w
}

// UnmarshalJSON rejects arrays that are not exactly DaysPerWeek long.
func (w *WeeklyLog) UnmarshalJSON(data []byte) error {
	var days []DailyLog
	if err := json.Unmarshal(data, &days); err != nil {
		return err
	}
	if len(days) != DaysPerWeek {
		return fmt.Errorf("weekly log must have %d days, got %d", DaysPerWeek, len(days))
	}
	for i, d := range days {
		if d.ActivityLevel == "" {
			d.ActivityLevel = DefaultActivityLevel
		}
		w[i] = d
	}
	return nil
}

// ValidDay reports whether index addresses a day of the week.
func ValidDay(index int) bool {
	return index >= 0 && index < DaysPerWeek
}

// ClampDay limits index to [0,6].
func ClampDay(index int) int {
	if index < 0 {
		return 0
	}
	if index >= DaysPerWeek {
		return DaysPerWeek - 1
	}
	return index
}

// Week bundles the weekly log with the epoch token identifying it.
// A new token is minted every time the week is reset.
type Week struct {
	ID   uuid.UUID
	Days WeeklyLog
}

// NewWeek creates a blank week with a fresh epoch token.
func NewWeek() Week {
	return Week{ID: uuid.New(), Days: NewWeeklyLog()}
}
