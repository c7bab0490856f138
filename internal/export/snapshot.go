// ABOUTME: JSON and YAML snapshots of the tracker state for backup and sharing.
// ABOUTME: Days are keyed by name so the output reads without the positional index.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"gopkg.in/yaml.v3"
)

// Snapshot is the exported view of one week.
type Snapshot struct {
	Version    string              `json:"version" yaml:"version"`
	ExportedAt time.Time           `json:"exported_at" yaml:"exported_at"`
	WeekID     string              `json:"week_id" yaml:"week_id"`
	Profile    *models.UserProfile `json:"profile,omitempty" yaml:"profile,omitempty"`
	Days       []SnapshotDay       `json:"days" yaml:"days"`
	Metrics    models.Metrics      `json:"metrics" yaml:"metrics"`
	Summary    *SnapshotSummary    `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// SnapshotDay is one day of the exported week.
type SnapshotDay struct {
	Day           string              `json:"day" yaml:"day"`
	Weight        float64             `json:"weight,omitempty" yaml:"weight,omitempty"`
	Mood          string              `json:"mood,omitempty" yaml:"mood,omitempty"`
	ActivityLevel string              `json:"activity_level" yaml:"activity_level"`
	Food          models.DailyFoodLog `json:"food" yaml:"food"`
}

// SnapshotSummary is the exported report.
type SnapshotSummary struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Content     string    `json:"content" yaml:"content"`
}

// NewSnapshot builds a snapshot from the tracker state.
func NewSnapshot(profile *models.UserProfile, week models.Week, metrics models.Metrics, summary models.Summary, now time.Time) Snapshot {
	s := Snapshot{
		Version:    "1.0",
		ExportedAt: now,
		WeekID:     week.ID.String(),
		Profile:    profile,
		Metrics:    metrics,
	}
	for i, d := range week.Days {
		s.Days = append(s.Days, SnapshotDay{
			Day:           models.DayNames[i],
			Weight:        d.Weight,
			Mood:          d.Mood,
			ActivityLevel: string(d.ActivityLevel),
			Food:          d.Food,
		})
	}
	if !summary.IsZero() {
		s.Summary = &SnapshotSummary{GeneratedAt: summary.GeneratedAt, Content: summary.Content}
	}
	return s
}

// Marshal encodes the snapshot as "json" or "yaml".
func (s Snapshot) Marshal(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(s, "", "  ")
	case "yaml":
		return yaml.Marshal(s)
	default:
		return nil, fmt.Errorf("unknown format: %s (use json or yaml)", format)
	}
}
