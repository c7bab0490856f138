// ABOUTME: MCP resource and prompt implementations for the wellness tracker.
// ABOUTME: Provides wellness://week, wellness://progress, wellness://summary and the weekly_report prompt.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/wellness/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	weekURI     = "wellness://week"
	progressURI = "wellness://progress"
	summaryURI  = "wellness://summary"
)

func (s *Server) registerResources() {
	// wellness://week - all seven days plus metrics
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         weekURI,
		Name:        "Current Week",
		Description: "All seven days of the current week and the weekly metrics",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// wellness://progress - weight progress toward the goal
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         progressURI,
		Name:        "Weight Progress",
		Description: "Progress percentage and status toward the profile's weight goal",
		MIMEType:    "application/json",
	}, s.handleProgressResource)

	// wellness://summary - last generated report for this week
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         summaryURI,
		Name:        "Weekly Report",
		Description: "The most recent generated report for the current week",
		MIMEType:    "text/html",
	}, s.handleSummaryResource)
}

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "weekly_report",
		Description: "Brief for writing the weekly wellness report from the current data",
	}, s.handleWeeklyReportPrompt)
}

// Resource handlers

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	snap := s.ctrl.Snapshot()

	days := make([]dayOutput, 0, models.DaysPerWeek)
	logged := 0
	for i, d := range snap.Week.Days {
		days = append(days, toDayOutput(i, d))
		if d.HasData() {
			logged++
		}
	}

	return jsonResource(weekURI, map[string]interface{}{
		"week_id":     snap.Week.ID.String(),
		"current_day": snap.View.Day,
		"days":        days,
		"metrics":     toMetricsOutput(snap.Metrics),
		"counts": map[string]int{
			"days_logged": logged,
		},
	})
}

func (s *Server) handleProgressResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	r, err := s.ctrl.Progress()
	if err != nil {
		return nil, err
	}
	return jsonResource(progressURI, toProgressOutput(r))
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary := s.ctrl.Summary()
	if summary.IsZero() {
		return nil, mcp.ResourceNotFoundError(summaryURI)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      summaryURI,
			MIMEType: "text/html",
			Text:     summary.Content,
		}},
	}, nil
}

// Prompt handlers

func (s *Server) handleWeeklyReportPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Weekly wellness report brief",
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: s.ctrl.Prompt()},
		}},
	}, nil
}
