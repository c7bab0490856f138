// ABOUTME: Root Cobra command for wellness CLI.
// ABOUTME: Loads config, logging, the KV store and the tracker before any subcommand runs.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/harperreed/wellness/internal/charm"
	"github.com/harperreed/wellness/internal/config"
	"github.com/harperreed/wellness/internal/logging"
	"github.com/harperreed/wellness/internal/report"
	"github.com/harperreed/wellness/internal/storage"
	"github.com/harperreed/wellness/internal/tracker"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

// noStore marks commands that run without opening the KV store.
const noStore = "no-store"

var (
	cfg       *config.Config
	store     storage.KV
	ctrl      *tracker.Controller
	logCloser io.Closer

	verbose     bool
	backendFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wellness",
	Short: "Weekly wellness tracker with AI-written reports",
	Long: `Wellness is a CLI tool for tracking one week of weight, meals, mood and activity,
and turning it into a personalized weekly report (in Spanish) with a PDF export.

QUICK START:

  $ wellness profile set --name "Ana" --age 30 --objective "Bajar de peso" \
      --initial-weight 70 --weight-goal 65
  $ wellness day 4                       # Select Jueves
  $ wellness log weight 68               # Log weight for the selected day
  $ wellness log mood "con energía"      # Log mood
  $ wellness food lunch "ensalada y pollo"
  $ wellness progress                    # Progress toward your weight goal
  $ wellness report                      # Generate the weekly report
  $ wellness export pdf                  # Save Reporte_Ana.pdf

THE WEEK:

  Days are positional: 1=Lunes through 7=Domingo. They are not tied to
  calendar dates. 'wellness week reset' clears all seven days, the weekly
  metrics and the report.

REPORTS:

  Reports are written by an OpenAI-compatible model. Set WELLNESS_API_KEY
  (or put it in a .env file) and optionally WELLNESS_MODEL / WELLNESS_BASE_URL.

SYNC (AUTOMATIC):

  With the default charm backend, data syncs across devices using Charm
  Cloud and is E2E encrypted with your SSH key.

  $ wellness sync link      # Link device to your Charm account
  $ wellness sync status    # Check sync status

MCP INTEGRATION:

  Run 'wellness mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "wellness": { "command": "wellness", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}

		logCloser = logging.Setup(logging.SetupParams{
			LogFile:  cfg.GetLogFile(),
			LogLevel: cfg.LogLevel,
			Verbose:  verbose,
		})

		if !needsStore(cmd) {
			return nil
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open %s store: %w", cfg.GetBackend(), err)
		}

		gen, err := cfg.NewGenerator()
		if err != nil {
			logging.For("cli").WithError(err).Debug("report generation disabled")
			gen = nil
		}
		ctrl = tracker.NewController(store, gen)
		return nil
	},
}

// Execute runs the root command and releases the store and log file,
// including when the command fails.
func Execute() error {
	err := rootCmd.Execute()
	return multierr.Append(err, closeResources())
}

func closeResources() error {
	var err error
	if store != nil {
		err = multierr.Append(err, store.Close())
		store = nil
		ctrl = nil
	}
	if logCloser != nil {
		err = multierr.Append(err, logCloser.Close())
		logCloser = nil
	}
	return err
}

func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[noStore] == "true" || c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}
	return true
}

// charmClient returns the open store as a Charm client, for sync commands.
func charmClient() (*charm.Client, error) {
	client, ok := store.(*charm.Client)
	if !ok {
		return nil, fmt.Errorf("sync requires the charm backend (current: %s)", cfg.GetBackend())
	}
	return client, nil
}

// generatorHint explains a missing provider configuration.
func generatorHint(err error) string {
	if errors.Is(err, tracker.ErrNoGenerator) {
		return report.ErrMissingAPIKey.Error()
	}
	return ""
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "mirror logs to stderr")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", "storage backend: charm, badger or memory (overrides config)")
}
