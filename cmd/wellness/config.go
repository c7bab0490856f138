// ABOUTME: CLI commands for viewing and changing wellness settings.
// ABOUTME: Settings live in the config file; environment overrides are never written back.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wellness/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change settings stored in ~/.config/wellness/config.json.

Every setting can also be overridden with a WELLNESS_* environment variable
or a .env file. The API key is read from WELLNESS_API_KEY only.`,
	Annotations: map[string]string{noStore: "true"},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		apiKey := "not set"
		if cfg.APIKey != "" {
			apiKey = "set"
		}
		rows := [][2]string{
			{"config", config.GetConfigPath()},
			{"backend", cfg.GetBackend()},
			{"data_dir", cfg.GetDataDir()},
			{"model", cfg.GetModel()},
			{"base_url", orDefault(cfg.BaseURL)},
			{"log_level", orDefault(cfg.LogLevel)},
			{"log_file", cfg.GetLogFile()},
			{"api_key", apiKey},
		}
		for _, r := range rows {
			fmt.Printf("%s %s\n", faint.Sprint(padRight(r[0], 10)), r[1])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting in the config file.

Keys: ` + strings.Join(config.Keys, ", ") + `

Examples:
  wellness config set backend badger
  wellness config set model gpt-4o
  wellness config set log_level debug`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fileCfg, err := config.LoadFile()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := fileCfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		color.Green("✓ Set %s = %s", args[0], args[1])
		return nil
	},
}

func orDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
