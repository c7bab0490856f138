// ABOUTME: Integration tests for the wellness CLI.
// ABOUTME: Builds the binary and runs a full week workflow against a fake chat endpoint.
package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const reportHTML = `<h1>Tu semana</h1>` +
	`<section id="analisis-diario"><h2>Análisis diario</h2><h3>Jueves</h3><p>Buen día.</p></section>` +
	`<section id="recomendaciones"><h2>Recomendaciones</h2><p>Sigue así.</p><ul><li>Camina</li><li>Hidrátate</li></ul></section>`

func fakeChatServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		resp := map[string]any{
			"id":      "c1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]string{"role": "assistant", "content": "```html\n" + reportHTML + "\n```"},
				"finish_reason": "stop",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "wellness")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/wellness")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	workDir := t.TempDir()
	srv := fakeChatServer(t)

	run := func(args ...string) (string, error) {
		cmd := exec.Command(binary, args...)
		cmd.Dir = workDir
		cmd.Env = append(os.Environ(),
			"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
			"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
			"WELLNESS_BACKEND=badger",
			"WELLNESS_DATA_DIR=",
			"WELLNESS_API_KEY=test-key",
			"WELLNESS_BASE_URL="+srv.URL+"/v1",
			"WELLNESS_MODEL=test-model",
		)
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Tracking is locked until the profile exists
	if output, err := run("log", "weight", "68"); err == nil {
		t.Fatalf("Expected log without profile to fail, got: %s", output)
	}

	output, err := run("profile", "set", "--name", "Ana María", "--age", "30",
		"--objective", "Bajar de peso", "--initial-weight", "70", "--weight-goal", "65")
	if err != nil {
		t.Fatalf("Failed to set profile: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Profile saved") {
		t.Errorf("Expected 'Profile saved' in output, got: %s", output)
	}

	// Nothing logged yet: the report is skipped, not failed
	output, err = run("report")
	if err != nil {
		t.Fatalf("Report without data should not fail: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Nothing logged") {
		t.Errorf("Expected no-data notice, got: %s", output)
	}

	steps := [][]string{
		{"day", "jueves"},
		{"log", "weight", "68"},
		{"log", "mood", "con energía"},
		{"food", "lunch", "ensalada y pollo"},
	}
	for _, args := range steps {
		if output, err := run(args...); err != nil {
			t.Fatalf("wellness %s failed: %v\n%s", strings.Join(args, " "), err, output)
		}
	}

	output, err = run("progress")
	if err != nil {
		t.Fatalf("Failed to show progress: %v\n%s", err, output)
	}
	if !strings.Contains(output, "40%") {
		t.Errorf("Expected 40%% progress, got: %s", output)
	}

	output, err = run("report")
	if err != nil {
		t.Fatalf("Failed to generate report: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Recomendaciones") {
		t.Errorf("Expected report text in output, got: %s", output)
	}

	output, err = run("report", "--show", "--html", "--section", "recomendaciones")
	if err != nil {
		t.Fatalf("Failed to show section: %v\n%s", err, output)
	}
	if !strings.Contains(output, `id="recomendaciones"`) || strings.Contains(output, "Jueves") {
		t.Errorf("Expected only the recommendations section, got: %s", output)
	}

	output, err = run("export", "pdf")
	if err != nil {
		t.Fatalf("Failed to export pdf: %v\n%s", err, output)
	}
	pdf, err := os.ReadFile(filepath.Join(workDir, "Reporte_Ana_María.pdf"))
	if err != nil {
		t.Fatalf("Expected PDF file: %v", err)
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		t.Error("Exported file is not a PDF")
	}

	// Resetting clears the report along with the week
	if output, err := run("week", "reset", "--yes"); err != nil {
		t.Fatalf("Failed to reset week: %v\n%s", err, output)
	}
	output, err = run("report", "--show")
	if err != nil {
		t.Fatalf("Failed to show report: %v\n%s", err, output)
	}
	if !strings.Contains(output, "No report") {
		t.Errorf("Expected no report after reset, got: %s", output)
	}
}
