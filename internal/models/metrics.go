// ABOUTME: Free-text weekly metrics, the generated summary, and UI view state.
// ABOUTME: Metrics and Summary share the week's lifecycle and are cleared on reset.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Metrics holds free-form notes that are not tied to a single day.
type Metrics struct {
	Strength      string `json:"strength" yaml:"strength"`
	Measurements  string `json:"measurements" yaml:"measurements"`
	BMI           string `json:"bmi" yaml:"bmi"`
	DailyActivity string `json:"dailyActivity" yaml:"dailyActivity"`
}

// IsEmpty reports whether no metrics field has text.
func (m Metrics) IsEmpty() bool {
	return m.Strength == "" && m.Measurements == "" && m.BMI == "" && m.DailyActivity == ""
}

// Summary is the most recent generated report for a given week.
type Summary struct {
	WeekID      uuid.UUID `json:"week_id" yaml:"week_id"`
	Content     string    `json:"content" yaml:"content"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
}

// IsZero reports whether no report is held.
func (s Summary) IsZero() bool {
	return s.Content == ""
}

// Tab names the active view.
type Tab string

const (
	TabProfile  Tab = "profile"
	TabTracking Tab = "tracking"
	TabMetrics  Tab = "metrics"
	TabReport   Tab = "report"
)

// ViewState is the persisted view/tab selection.
type ViewState struct {
	Tab Tab `json:"tab" yaml:"tab"`
	Day int `json:"day" yaml:"day"`
}
