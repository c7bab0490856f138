// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server so AI assistants can read and log wellness data.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/wellness/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants to read and log your wellness data through
a standardized protocol. The server communicates via stdin/stdout.

DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "wellness": {
        "command": "wellness",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_profile       Show the saved profile
  set_profile       Create or update the profile
  get_week          All seven days of the current week
  select_day        Select the current day (0-6)
  update_day        Log weight, mood or activity for a day
  update_food       Log meals for a day
  update_metrics    Update the weekly metrics
  get_progress      Progress toward the weight goal
  generate_report   Generate the weekly report
  reset_week        Clear the week, metrics and report

AVAILABLE RESOURCES:

  wellness://week       Current week and metrics
  wellness://progress   Weight progress
  wellness://summary    Latest generated report (HTML)

AVAILABLE PROMPTS:

  weekly_report         Brief for writing the weekly report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(ctrl)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
