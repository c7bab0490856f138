// ABOUTME: Tests for daily and weekly tracking models.
// ABOUTME: Covers blank weeks, weight coercion, JSON shape, and activity parsing.
package models

import (
	"encoding/json"
	"testing"
)

func TestNewWeeklyLog(t *testing.T) {
	w := NewWeeklyLog()

	if len(w) != DaysPerWeek {
		t.Fatalf("len = %d, want %d", len(w), DaysPerWeek)
	}
	for i, d := range w {
		if d.Weight != 0 {
			t.Errorf("day %d: Weight = %f, want 0", i, d.Weight)
		}
		if !d.Food.IsEmpty() {
			t.Errorf("day %d: expected empty food", i)
		}
		if d.Mood != "" {
			t.Errorf("day %d: Mood = %q, want empty", i, d.Mood)
		}
		if d.ActivityLevel != ActivityModerate {
			t.Errorf("day %d: ActivityLevel = %s, want Moderado", i, d.ActivityLevel)
		}
	}
}

func TestParseWeight(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"68", 68},
		{" 72.5 ", 72.5},
		{"68,4", 68.4},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseWeight(tt.input); got != tt.want {
				t.Errorf("ParseWeight(%q) = %f, want %f", tt.input, got, tt.want)
			}
		})
	}
}

func TestDailyLogHasData(t *testing.T) {
	tests := []struct {
		name string
		day  DailyLog
		want bool
	}{
		{"blank", NewDailyLog(), false},
		{"activity only", DailyLog{ActivityLevel: ActivityVeryActive}, false},
		{"weight", DailyLog{Weight: 70}, true},
		{"snack", DailyLog{Food: DailyFoodLog{Snack: "fruta"}}, true},
		{"mood", DailyLog{Mood: "tired"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.day.HasData(); got != tt.want {
				t.Errorf("HasData() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeeklyLogJSONIsSevenElementArray(t *testing.T) {
	w := NewWeeklyLog()
	w[3].Weight = 68

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("expected a JSON array: %v", err)
	}
	if len(raw) != DaysPerWeek {
		t.Errorf("array length = %d, want %d", len(raw), DaysPerWeek)
	}

	var back WeeklyLog
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back != w {
		t.Error("decoded week does not match original")
	}
}

func TestWeeklyLogRejectsWrongLength(t *testing.T) {
	var w WeeklyLog
	if err := json.Unmarshal([]byte(`[{"weight":1},{"weight":2}]`), &w); err == nil {
		t.Error("expected error for a 2-day array")
	}
}

func TestWeeklyLogDefaultsMissingActivity(t *testing.T) {
	data := `[{},{},{},{},{},{},{"activityLevel":"Activo"}]`

	var w WeeklyLog
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if w[0].ActivityLevel != ActivityModerate {
		t.Errorf("day 0 ActivityLevel = %s, want Moderado", w[0].ActivityLevel)
	}
	if w[6].ActivityLevel != ActivityActive {
		t.Errorf("day 6 ActivityLevel = %s, want Activo", w[6].ActivityLevel)
	}
}

func TestParseActivityLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    ActivityLevel
		wantErr bool
	}{
		{"moderado", ActivityModerate, false},
		{"Sedentario", ActivitySedentary, false},
		{"muy activo", ActivityVeryActive, false},
		{"muy-activo", ActivityVeryActive, false},
		{"MUY_ACTIVO", ActivityVeryActive, false},
		{"lazy", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseActivityLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseActivityLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseActivityLevel(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestClampDay(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 0}, {0, 0}, {4, 4}, {6, 6}, {7, 6}, {100, 6},
	}
	for _, tt := range tests {
		if got := ClampDay(tt.in); got != tt.want {
			t.Errorf("ClampDay(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNewWeekMintsDistinctIDs(t *testing.T) {
	a, b := NewWeek(), NewWeek()
	if a.ID == b.ID {
		t.Error("expected distinct week IDs")
	}
}
