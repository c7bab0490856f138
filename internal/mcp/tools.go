// ABOUTME: MCP tool implementations for the wellness tracker.
// ABOUTME: Exposes profile, daily tracking, metrics, progress and report operations.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/progress"
	"github.com/harperreed/wellness/internal/report"
	"github.com/harperreed/wellness/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's profile (name, age, objective, initial weight, weight goal)",
	}, s.handleGetProfile)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Create or replace the user's profile. All fields are required.",
	}, s.handleSetProfile)

	// get_week
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_week",
		Description: "Get all seven days of the current week (0=Lunes ... 6=Domingo)",
	}, s.handleGetWeek)

	// select_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "select_day",
		Description: "Select the current day; out-of-range values are clamped to 0-6",
	}, s.handleSelectDay)

	// update_day
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_day",
		Description: "Update weight, mood or activity level for a day. Omitted fields are kept.",
	}, s.handleUpdateDay)

	// update_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_food",
		Description: "Update meal slots (breakfast, lunch, snack, dinner, other) for a day",
	}, s.handleUpdateFood)

	// update_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_metrics",
		Description: "Update the weekly free-text metrics (strength, measurements, BMI, daily activity)",
	}, s.handleUpdateMetrics)

	// get_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_progress",
		Description: "Get weight progress toward the profile's goal",
	}, s.handleGetProgress)

	// generate_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_report",
		Description: "Generate the weekly wellness report (HTML, in Spanish) from this week's data",
	}, s.handleGenerateReport)

	// reset_week
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_week",
		Description: "Clear all seven days, the weekly metrics and the report. Requires confirm=true.",
	}, s.handleResetWeek)
}

// Tool input/output types

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type profileInput struct {
	Name          string  `json:"name" jsonschema:"User's name"`
	Age           int     `json:"age" jsonschema:"Age in years"`
	Objective     string  `json:"objective" jsonschema:"Wellness objective, free text"`
	InitialWeight float64 `json:"initial_weight" jsonschema:"Starting weight in kg"`
	WeightGoal    float64 `json:"weight_goal" jsonschema:"Target weight in kg"`
}

type profileOutput struct {
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Objective     string  `json:"objective"`
	InitialWeight float64 `json:"initial_weight"`
	WeightGoal    float64 `json:"weight_goal"`
	Complete      bool    `json:"complete"`
	Message       string  `json:"message,omitempty"`
}

type foodOutput struct {
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Snack     string `json:"snack,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
	Other     string `json:"other,omitempty"`
}

type dayOutput struct {
	Index         int        `json:"index"`
	Name          string     `json:"name"`
	Weight        float64    `json:"weight"`
	Mood          string     `json:"mood,omitempty"`
	ActivityLevel string     `json:"activity_level"`
	Food          foodOutput `json:"food"`
	HasData       bool       `json:"has_data"`
}

type weekOutput struct {
	WeekID     string      `json:"week_id"`
	CurrentDay int         `json:"current_day"`
	Days       []dayOutput `json:"days"`
}

type selectDayInput struct {
	Day int `json:"day" jsonschema:"Day index, 0=Lunes through 6=Domingo"`
}

type selectDayOutput struct {
	Day     int    `json:"day"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type updateDayInput struct {
	Day           int     `json:"day" jsonschema:"Day index, 0=Lunes through 6=Domingo"`
	Weight        *string `json:"weight,omitempty" jsonschema:"Weight in kg; empty or invalid clears it"`
	Mood          *string `json:"mood,omitempty" jsonschema:"Free-text mood"`
	ActivityLevel *string `json:"activity_level,omitempty" jsonschema:"Sedentario, Ligero, Moderado, Activo or Muy Activo"`
}

type updateFoodInput struct {
	Day       int     `json:"day" jsonschema:"Day index, 0=Lunes through 6=Domingo"`
	Breakfast *string `json:"breakfast,omitempty" jsonschema:"Breakfast (desayuno)"`
	Lunch     *string `json:"lunch,omitempty" jsonschema:"Lunch (almuerzo)"`
	Snack     *string `json:"snack,omitempty" jsonschema:"Snack (merienda)"`
	Dinner    *string `json:"dinner,omitempty" jsonschema:"Dinner (cena)"`
	Other     *string `json:"other,omitempty" jsonschema:"Anything else eaten"`
}

type updateMetricsInput struct {
	Strength      *string `json:"strength,omitempty" jsonschema:"Strength notes"`
	Measurements  *string `json:"measurements,omitempty" jsonschema:"Body measurements"`
	BMI           *string `json:"bmi,omitempty" jsonschema:"Body mass index"`
	DailyActivity *string `json:"daily_activity,omitempty" jsonschema:"Daily activity notes"`
}

type metricsOutput struct {
	Strength      string `json:"strength"`
	Measurements  string `json:"measurements"`
	BMI           string `json:"bmi"`
	DailyActivity string `json:"daily_activity"`
}

type progressOutput struct {
	Initial   float64 `json:"initial"`
	Current   float64 `json:"current"`
	Goal      float64 `json:"goal"`
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction"`
	State     string  `json:"state"`
	Status    string  `json:"status"`
}

type reportOutput struct {
	Content     string `json:"content"`
	GeneratedAt string `json:"generated_at"`
	Message     string `json:"message"`
}

type resetWeekInput struct {
	Confirm bool `json:"confirm" jsonschema:"Must be true to reset the week"`
}

type resetWeekOutput struct {
	Reset   bool   `json:"reset"`
	WeekID  string `json:"week_id,omitempty"`
	Message string `json:"message"`
}

// Conversions

func toProfileOutput(p models.UserProfile) profileOutput {
	return profileOutput{
		Name:          p.Name,
		Age:           p.Age,
		Objective:     p.Objective,
		InitialWeight: p.InitialWeight,
		WeightGoal:    p.WeightGoal,
		Complete:      p.IsComplete(),
	}
}

func toDayOutput(i int, d models.DailyLog) dayOutput {
	return dayOutput{
		Index:         i,
		Name:          models.DayNames[i],
		Weight:        d.Weight,
		Mood:          d.Mood,
		ActivityLevel: string(d.ActivityLevel),
		Food: foodOutput{
			Breakfast: d.Food.Breakfast,
			Lunch:     d.Food.Lunch,
			Snack:     d.Food.Snack,
			Dinner:    d.Food.Dinner,
			Other:     d.Food.Other,
		},
		HasData: d.HasData(),
	}
}

func toMetricsOutput(m models.Metrics) metricsOutput {
	return metricsOutput{
		Strength:      m.Strength,
		Measurements:  m.Measurements,
		BMI:           m.BMI,
		DailyActivity: m.DailyActivity,
	}
}

func toProgressOutput(r progress.Result) progressOutput {
	return progressOutput{
		Initial:   r.Initial,
		Current:   r.Current,
		Goal:      r.Goal,
		Percent:   r.Percent,
		Direction: string(r.Direction),
		State:     string(r.State),
		Status:    r.Status,
	}
}

// Tool handlers

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, profileOutput, error) {
	p := s.ctrl.Profile()
	if p == nil {
		return nil, profileOutput{Message: "No profile saved yet. Use set_profile first."}, nil
	}
	return nil, toProfileOutput(*p), nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input profileInput) (*mcp.CallToolResult, profileOutput, error) {
	p := models.UserProfile{
		Name:          input.Name,
		Age:           input.Age,
		Objective:     input.Objective,
		InitialWeight: input.InitialWeight,
		WeightGoal:    input.WeightGoal,
	}
	if err := s.ctrl.SaveProfile(p); err != nil {
		return nil, profileOutput{}, err
	}

	saved := s.ctrl.Profile()
	out := toProfileOutput(*saved)
	out.Message = fmt.Sprintf("Saved profile for %s", saved.Name)
	return nil, out, nil
}

func (s *Server) handleGetWeek(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, weekOutput, error) {
	snap := s.ctrl.Snapshot()
	out := weekOutput{
		WeekID:     snap.Week.ID.String(),
		CurrentDay: snap.View.Day,
		Days:       make([]dayOutput, 0, models.DaysPerWeek),
	}
	for i, d := range snap.Week.Days {
		out.Days = append(out.Days, toDayOutput(i, d))
	}
	return nil, out, nil
}

func (s *Server) handleSelectDay(ctx context.Context, req *mcp.CallToolRequest, input selectDayInput) (*mcp.CallToolResult, selectDayOutput, error) {
	day := s.ctrl.SetCurrentDay(input.Day)
	return nil, selectDayOutput{
		Day:     day,
		Name:    models.DayNames[day],
		Message: fmt.Sprintf("Selected %s", models.DayNames[day]),
	}, nil
}

func (s *Server) handleUpdateDay(ctx context.Context, req *mcp.CallToolRequest, input updateDayInput) (*mcp.CallToolResult, dayOutput, error) {
	patch := tracker.DayPatch{Weight: input.Weight, Mood: input.Mood}
	if input.ActivityLevel != nil {
		lvl, err := models.ParseActivityLevel(*input.ActivityLevel)
		if err != nil {
			return nil, dayOutput{}, err
		}
		patch.ActivityLevel = &lvl
	}

	day, err := s.ctrl.UpdateDay(input.Day, patch)
	if err != nil {
		return nil, dayOutput{}, fmt.Errorf("failed to update day: %w", err)
	}
	return nil, toDayOutput(input.Day, day), nil
}

func (s *Server) handleUpdateFood(ctx context.Context, req *mcp.CallToolRequest, input updateFoodInput) (*mcp.CallToolResult, dayOutput, error) {
	day, err := s.ctrl.UpdateFood(input.Day, tracker.FoodPatch{
		Breakfast: input.Breakfast,
		Lunch:     input.Lunch,
		Snack:     input.Snack,
		Dinner:    input.Dinner,
		Other:     input.Other,
	})
	if err != nil {
		return nil, dayOutput{}, fmt.Errorf("failed to update food: %w", err)
	}
	return nil, toDayOutput(input.Day, day), nil
}

func (s *Server) handleUpdateMetrics(ctx context.Context, req *mcp.CallToolRequest, input updateMetricsInput) (*mcp.CallToolResult, metricsOutput, error) {
	m, err := s.ctrl.UpdateMetrics(tracker.MetricsPatch{
		Strength:      input.Strength,
		Measurements:  input.Measurements,
		BMI:           input.BMI,
		DailyActivity: input.DailyActivity,
	})
	if err != nil {
		return nil, metricsOutput{}, fmt.Errorf("failed to update metrics: %w", err)
	}
	return nil, toMetricsOutput(m), nil
}

func (s *Server) handleGetProgress(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, progressOutput, error) {
	r, err := s.ctrl.Progress()
	if err != nil {
		return nil, progressOutput{}, err
	}
	return nil, toProgressOutput(r), nil
}

func (s *Server) handleGenerateReport(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, reportOutput, error) {
	summary, err := s.ctrl.GenerateReport(ctx)
	switch {
	case errors.Is(err, report.ErrNoData):
		return nil, reportOutput{Message: "Nothing logged this week yet; add some data before generating a report."}, nil
	case err != nil:
		return nil, reportOutput{}, err
	}

	return nil, reportOutput{
		Content:     summary.Content,
		GeneratedAt: summary.GeneratedAt.Format(time.RFC3339),
		Message:     "Report generated",
	}, nil
}

func (s *Server) handleResetWeek(ctx context.Context, req *mcp.CallToolRequest, input resetWeekInput) (*mcp.CallToolResult, resetWeekOutput, error) {
	if !s.ctrl.ResetWeek(func() bool { return input.Confirm }) {
		return nil, resetWeekOutput{Message: "Week not reset. Pass confirm=true to clear all seven days."}, nil
	}
	return nil, resetWeekOutput{
		Reset:   true,
		WeekID:  s.ctrl.Snapshot().Week.ID.String(),
		Message: "Week reset",
	}, nil
}
