// ABOUTME: Tests for CLI helpers and end-to-end command execution.
// ABOUTME: Commands run against a temporary badger store that is reopened to verify state.
package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/harperreed/wellness/internal/tracker"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "first day number", input: "1", want: 0},
		{name: "last day number", input: "7", want: 6},
		{name: "zero", input: "0", wantErr: true},
		{name: "eight", input: "8", wantErr: true},
		{name: "spanish name", input: "Jueves", want: 3},
		{name: "accented name", input: "Miércoles", want: 2},
		{name: "unaccented name", input: "sabado", want: 5},
		{name: "english name", input: "sunday", want: 6},
		{name: "unknown", input: "someday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDay(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseDay(%q) expected error, got %d", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDay(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseDay(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world this is long", 10, "hello w..."},
		{"Miércoles", 6, "Mié..."},
		{"", 10, ""},
		{"hello", 2, "he"},
	}
	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Sábado", 8); got != "Sábado  " {
		t.Errorf("padRight counts runes: got %q", got)
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Errorf("padRight should not cut: got %q", got)
	}
}

func TestConfirm(t *testing.T) {
	for _, answer := range []string{"y\n", "yes\n", "Y\n", "si\n", "sí\n"} {
		if !confirm(strings.NewReader(answer), "") {
			t.Errorf("confirm(%q) = false, want true", answer)
		}
	}
	for _, answer := range []string{"n\n", "\n", "", "maybe\n"} {
		if confirm(strings.NewReader(answer), "") {
			t.Errorf("confirm(%q) = true, want false", answer)
		}
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "wellness" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "wellness")
	}
	for _, name := range []string{"verbose", "backend"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected --%s persistent flag", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"profile", "day", "log", "food", "metrics", "week", "progress", "report", "export", "mcp", "sync", "config", "install-skill"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Errorf("Expected %q command to be registered", name)
		}
	}
}

func TestNeedsStore(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		want bool
	}{
		{profileSetCmd, true},
		{reportCmd, true},
		{syncStatusCmd, true},
		{configShowCmd, false},
		{installSkillCmd, false},
		{syncLinkCmd, false},
		{syncWipeCmd, false},
	}
	for _, tt := range tests {
		if got := needsStore(tt.cmd); got != tt.want {
			t.Errorf("needsStore(%s) = %v, want %v", tt.cmd.CommandPath(), got, tt.want)
		}
	}
}

// setupTestCLI points config and data at temp dirs and selects the badger backend.
func setupTestCLI(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("WELLNESS_BACKEND", "badger")
	t.Setenv("WELLNESS_API_KEY", "")
	t.Setenv("WELLNESS_DATA_DIR", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })
	return tmpDir
}

// resetFlags restores every flag in the tree to its default so values from
// an earlier Execute do not leak into the next.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(""))
	return Execute()
}

func mustRun(t *testing.T, args ...string) {
	t.Helper()
	if err := run(t, args...); err != nil {
		t.Fatalf("wellness %s failed: %v", strings.Join(args, " "), err)
	}
}

// reopen loads the persisted session from the test badger store.
func reopen(t *testing.T, tmpDir string) tracker.Session {
	t.Helper()
	kv, err := storage.OpenBadger(filepath.Join(tmpDir, "data", "wellness", "kv"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	defer kv.Close()
	return tracker.NewController(kv, nil).Snapshot()
}

func saveTestProfile(t *testing.T) {
	t.Helper()
	mustRun(t, "profile", "set", "--name", "Ana", "--age", "30", "--objective", "Bajar de peso",
		"--initial-weight", "70", "--weight-goal", "65")
}

func TestProfileSetCmd(t *testing.T) {
	tmpDir := setupTestCLI(t)

	saveTestProfile(t)

	s := reopen(t, tmpDir)
	if s.Profile == nil {
		t.Fatal("Expected profile to be saved")
	}
	if s.Profile.Name != "Ana" || s.Profile.Age != 30 || s.Profile.WeightGoal != 65 {
		t.Errorf("Unexpected profile: %+v", *s.Profile)
	}
	if s.View.Tab != models.TabTracking {
		t.Errorf("Expected tracking tab after saving profile, got %s", s.View.Tab)
	}
}

func TestProfileSetCmdMergesChangedFlags(t *testing.T) {
	tmpDir := setupTestCLI(t)

	saveTestProfile(t)
	resetFlags(rootCmd)
	mustRun(t, "profile", "set", "--weight-goal", "63")

	s := reopen(t, tmpDir)
	if s.Profile.Name != "Ana" {
		t.Errorf("Name should be kept, got %q", s.Profile.Name)
	}
	if s.Profile.WeightGoal != 63 {
		t.Errorf("WeightGoal = %v, want 63", s.Profile.WeightGoal)
	}
}

func TestProfileSetCmdInvalid(t *testing.T) {
	tmpDir := setupTestCLI(t)

	if err := run(t, "profile", "set", "--name", "Ana"); err == nil {
		t.Error("Expected error for incomplete profile")
	}
	if s := reopen(t, tmpDir); s.Profile != nil {
		t.Error("Invalid profile should not be saved")
	}
}

func TestLogCmdRequiresProfile(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "log", "weight", "68"); err == nil {
		t.Error("Expected error logging without a profile")
	}
}

func TestDayAndLogCmds(t *testing.T) {
	tmpDir := setupTestCLI(t)
	saveTestProfile(t)

	mustRun(t, "day", "4")
	mustRun(t, "log", "weight", "68,5")
	mustRun(t, "log", "mood", "con", "energía")
	mustRun(t, "log", "activity", "muy", "activo")
	resetFlags(rootCmd)
	mustRun(t, "log", "weight", "71", "--day", "lunes")

	s := reopen(t, tmpDir)
	if s.View.Day != 3 {
		t.Errorf("Selected day = %d, want 3", s.View.Day)
	}
	jueves := s.Week.Days[3]
	if jueves.Weight != 68.5 {
		t.Errorf("Jueves weight = %v, want 68.5", jueves.Weight)
	}
	if jueves.Mood != "con energía" {
		t.Errorf("Jueves mood = %q", jueves.Mood)
	}
	if jueves.ActivityLevel != models.ActivityVeryActive {
		t.Errorf("Jueves activity = %q", jueves.ActivityLevel)
	}
	if s.Week.Days[0].Weight != 71 {
		t.Errorf("Lunes weight = %v, want 71", s.Week.Days[0].Weight)
	}
}

func TestLogActivityInvalid(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)

	if err := run(t, "log", "activity", "extreme"); err == nil {
		t.Error("Expected error for unknown activity level")
	}
}

func TestFoodCmd(t *testing.T) {
	tmpDir := setupTestCLI(t)
	saveTestProfile(t)

	mustRun(t, "food", "desayuno", "avena", "con", "fruta")
	mustRun(t, "food", "dinner", "sopa", "--day", "3")

	s := reopen(t, tmpDir)
	if s.Week.Days[0].Food.Breakfast != "avena con fruta" {
		t.Errorf("Breakfast = %q", s.Week.Days[0].Food.Breakfast)
	}
	if s.Week.Days[2].Food.Dinner != "sopa" {
		t.Errorf("Miércoles dinner = %q", s.Week.Days[2].Food.Dinner)
	}
}

func TestFoodCmdUnknownSlot(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)

	if err := run(t, "food", "brunch", "huevos"); err == nil {
		t.Error("Expected error for unknown slot")
	}
}

func TestMetricsSetCmd(t *testing.T) {
	tmpDir := setupTestCLI(t)
	saveTestProfile(t)

	mustRun(t, "metrics", "set", "--bmi", "23.4", "--strength", "sentadilla 60kg")

	s := reopen(t, tmpDir)
	if s.Metrics.BMI != "23.4" || s.Metrics.Strength != "sentadilla 60kg" {
		t.Errorf("Unexpected metrics: %+v", s.Metrics)
	}
	if s.Metrics.Measurements != "" {
		t.Errorf("Unset metric should stay empty, got %q", s.Metrics.Measurements)
	}
}

func TestWeekResetCmd(t *testing.T) {
	tmpDir := setupTestCLI(t)
	saveTestProfile(t)
	mustRun(t, "log", "weight", "68")
	before := reopen(t, tmpDir).Week.ID

	// Declined: empty stdin
	mustRun(t, "week", "reset")
	if s := reopen(t, tmpDir); s.Week.Days[0].Weight != 68 {
		t.Error("Declined reset should keep data")
	}

	mustRun(t, "week", "reset", "--yes")
	s := reopen(t, tmpDir)
	if s.Week.Days[0].Weight != 0 {
		t.Error("Reset should clear days")
	}
	if s.Week.ID == before {
		t.Error("Reset should mint a new week id")
	}
	if s.Profile == nil {
		t.Error("Reset should keep the profile")
	}
}

func TestReadOnlyCmds(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)
	mustRun(t, "log", "weight", "68")

	for _, args := range [][]string{
		{"profile", "show"},
		{"day"},
		{"week", "show"},
		{"metrics", "show"},
		{"progress"},
		{"report", "--show"},
		{"config", "show"},
	} {
		mustRun(t, args...)
	}
}

func TestReportCmdWithoutData(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)

	// Nothing logged: a notice, not an error
	mustRun(t, "report")
}

func TestReportCmdWithoutAPIKey(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)
	mustRun(t, "log", "weight", "68")

	err := run(t, "report")
	if err == nil {
		t.Fatal("Expected error without an API key")
	}
	if !strings.Contains(err.Error(), "WELLNESS_API_KEY") {
		t.Errorf("Expected API key hint, got %v", err)
	}
}

func TestExportPDFWithoutReport(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)

	if err := run(t, "export", "pdf", "-o", t.TempDir()); err == nil {
		t.Error("Expected error exporting without a report")
	}
}

func TestExportJSONToFile(t *testing.T) {
	setupTestCLI(t)
	saveTestProfile(t)
	mustRun(t, "food", "lunch", "ensalada")

	out := filepath.Join(t.TempDir(), "week.json")
	mustRun(t, "export", "json", "-o", out)

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected export file: %v", err)
	}
	if !strings.Contains(string(data), `"lunch": "ensalada"`) {
		t.Errorf("Export missing logged meal:\n%s", data)
	}
}

func TestExportInvalidFormat(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "export", "markdown"); err == nil {
		t.Error("Expected error for invalid export format")
	}
}

func TestConfigSetCmd(t *testing.T) {
	tmpDir := setupTestCLI(t)

	mustRun(t, "config", "set", "model", "gpt-4o")

	data, err := os.ReadFile(filepath.Join(tmpDir, "config", "wellness", "config.json"))
	if err != nil {
		t.Fatalf("Expected config file: %v", err)
	}
	if !strings.Contains(string(data), `"model": "gpt-4o"`) {
		t.Errorf("Config missing model:\n%s", data)
	}
	// Environment overrides are not persisted
	if strings.Contains(string(data), "badger") {
		t.Errorf("Env backend leaked into config file:\n%s", data)
	}
}

func TestConfigSetCmdInvalidKey(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "config", "set", "color", "blue"); err == nil {
		t.Error("Expected error for unknown config key")
	}
}

func TestSyncStatusRequiresCharm(t *testing.T) {
	setupTestCLI(t)

	if err := run(t, "sync", "status"); err == nil {
		t.Error("Expected error for sync status on badger backend")
	}
}
