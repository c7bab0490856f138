// ABOUTME: Tracking controller owning the wellness session state.
// ABOUTME: Every mutation replaces a whole value and is persisted before returning.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wellness/internal/logging"
	"github.com/harperreed/wellness/internal/models"
	"github.com/harperreed/wellness/internal/progress"
	"github.com/harperreed/wellness/internal/report"
	"github.com/harperreed/wellness/internal/storage"
)

var (
	// ErrNoProfile is returned by tracking operations until a valid profile is saved.
	ErrNoProfile = errors.New("profile is incomplete: run 'wellness profile set' first")
	// ErrGenerationInProgress is returned when a report is requested while another is pending.
	ErrGenerationInProgress = errors.New("a report is already being generated")
	// ErrWeekChanged is returned when the week was reset while a report was being generated.
	// The stale report is discarded.
	ErrWeekChanged = errors.New("week was reset during report generation")
	// ErrNoGenerator is returned when no text-generation provider is configured.
	ErrNoGenerator = errors.New("no report generator configured")
)

var log = logging.For("tracker")

// Session is the complete in-memory state of the tracker.
type Session struct {
	Profile *models.UserProfile
	Week    models.Week
	Metrics models.Metrics
	Summary models.Summary
	View    models.ViewState
	Loading bool
}

// DayPatch carries optional replacements for one day's fields.
// Weight is raw user input and is coerced with models.ParseWeight.
type DayPatch struct {
	Weight        *string
	Mood          *string
	ActivityLevel *models.ActivityLevel
}

// FoodPatch carries optional replacements for one day's meal slots.
type FoodPatch struct {
	Breakfast *string
	Lunch     *string
	Snack     *string
	Dinner    *string
	Other     *string
}

// MetricsPatch carries optional replacements for the weekly metrics.
type MetricsPatch struct {
	Strength      *string
	Measurements  *string
	BMI           *string
	DailyActivity *string
}

// Controller serializes access to the session and persists it.
type Controller struct {
	mu  sync.Mutex
	kv  storage.KV
	gen report.Generator
	s   Session
	now func() time.Time
}

// NewController restores the session from kv. Missing or unreadable
// entries start from their defaults. gen may be nil, in which case
// GenerateReport returns ErrNoGenerator.
func NewController(kv storage.KV, gen report.Generator) *Controller {
	c := &Controller{kv: kv, gen: gen, now: time.Now}
	c.s = c.restore()
	return c
}

func (c *Controller) restore() Session {
	var s Session

	s.Profile = storage.Load[*models.UserProfile](c.kv, storage.KeyProfile, nil)
	s.Week.Days = storage.Load(c.kv, storage.KeyWeek, models.NewWeeklyLog())
	s.Week.ID = storage.Load(c.kv, storage.KeyWeekID, uuid.Nil)
	if s.Week.ID == uuid.Nil {
		s.Week.ID = uuid.New()
		storage.Save(c.kv, storage.KeyWeekID, s.Week.ID)
	}
	s.Metrics = storage.Load(c.kv, storage.KeyMetrics, models.Metrics{})

	s.View = storage.Load(c.kv, storage.KeyView, models.ViewState{Tab: models.TabProfile})
	s.View.Day = models.ClampDay(s.View.Day)
	if s.Profile == nil || !s.Profile.IsComplete() {
		s.View.Tab = models.TabProfile
	}

	summary := storage.Load(c.kv, storage.KeySummary, models.Summary{})
	if !summary.IsZero() && summary.WeekID == s.Week.ID {
		s.Summary = summary
	} else if !summary.IsZero() {
		log.WithField("week_id", summary.WeekID).Debug("dropping summary from a previous week")
		storage.Clear(c.kv, storage.KeySummary)
	}
	return s
}

// Snapshot returns a copy of the session.
func (c *Controller) Snapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() Session {
	s := c.s
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}

// Profile returns the saved profile, or nil if none has been saved.
func (c *Controller) Profile() *models.UserProfile {
	return c.Snapshot().Profile
}

// SaveProfile validates p and, when valid, persists it and opens the
// tracking view. Invalid profiles return *models.ValidationError.
func (c *Controller) SaveProfile(p models.UserProfile) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Objective = strings.TrimSpace(p.Objective)
	if err := p.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Profile = &p
	storage.Save(c.kv, storage.KeyProfile, p)
	if c.s.View.Tab == models.TabProfile {
		c.s.View.Tab = models.TabTracking
		storage.Save(c.kv, storage.KeyView, c.s.View)
	}
	log.WithField("name", p.Name).Info("profile saved")
	return nil
}

// RequireProfile returns the profile, or ErrNoProfile if tracking is not
// yet unlocked.
func (c *Controller) RequireProfile() (models.UserProfile, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireProfile(); err != nil {
		return models.UserProfile{}, err
	}
	return *c.s.Profile, nil
}

func (c *Controller) requireProfile() error {
	if c.s.Profile == nil || !c.s.Profile.IsComplete() {
		return ErrNoProfile
	}
	return nil
}

// SetCurrentDay selects a day, clamping n to [0,6]. It returns the
// selected index.
func (c *Controller) SetCurrentDay(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.View.Day = models.ClampDay(n)
	storage.Save(c.kv, storage.KeyView, c.s.View)
	return c.s.View.Day
}

// SetTab switches the active view. Tracking views stay locked until a
// profile is saved.
func (c *Controller) SetTab(tab models.Tab) error {
	switch tab {
	case models.TabProfile, models.TabTracking, models.TabMetrics, models.TabReport:
	default:
		return fmt.Errorf("unknown tab: %q", tab)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if tab != models.TabProfile {
		if err := c.requireProfile(); err != nil {
			return err
		}
	}
	c.s.View.Tab = tab
	storage.Save(c.kv, storage.KeyView, c.s.View)
	return nil
}

// UpdateDay merges patch into the day at index.
func (c *Controller) UpdateDay(index int, patch DayPatch) (models.DailyLog, error) {
	if !models.ValidDay(index) {
		return models.DailyLog{}, fmt.Errorf("day %d: %w", index, models.ErrDayIndex)
	}
	if patch.ActivityLevel != nil {
		if _, err := models.ParseActivityLevel(string(*patch.ActivityLevel)); err != nil {
			return models.DailyLog{}, err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireProfile(); err != nil {
		return models.DailyLog{}, err
	}

	day := c.s.Week.Days[index]
	if patch.Weight != nil {
		day.Weight = models.ParseWeight(*patch.Weight)
	}
	if patch.Mood != nil {
		day.Mood = strings.TrimSpace(*patch.Mood)
	}
	if patch.ActivityLevel != nil {
		lvl, _ := models.ParseActivityLevel(string(*patch.ActivityLevel))
		day.ActivityLevel = lvl
	}

	c.replaceDay(index, day)
	return day, nil
}

// UpdateFood merges patch into the meal slots of the day at index.
func (c *Controller) UpdateFood(index int, patch FoodPatch) (models.DailyLog, error) {
	if !models.ValidDay(index) {
		return models.DailyLog{}, fmt.Errorf("day %d: %w", index, models.ErrDayIndex)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireProfile(); err != nil {
		return models.DailyLog{}, err
	}

	day := c.s.Week.Days[index]
	apply(&day.Food.Breakfast, patch.Breakfast)
	apply(&day.Food.Lunch, patch.Lunch)
	apply(&day.Food.Snack, patch.Snack)
	apply(&day.Food.Dinner, patch.Dinner)
	apply(&day.Food.Other, patch.Other)

	c.replaceDay(index, day)
	return day, nil
}

func (c *Controller) replaceDay(index int, day models.DailyLog) {
	days := c.s.Week.Days
	days[index] = day
	c.s.Week.Days = days
	storage.Save(c.kv, storage.KeyWeek, days)
}

// UpdateMetrics merges patch into the weekly metrics.
func (c *Controller) UpdateMetrics(patch MetricsPatch) (models.Metrics, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireProfile(); err != nil {
		return models.Metrics{}, err
	}

	m := c.s.Metrics
	apply(&m.Strength, patch.Strength)
	apply(&m.Measurements, patch.Measurements)
	apply(&m.BMI, patch.BMI)
	apply(&m.DailyActivity, patch.DailyActivity)

	c.s.Metrics = m
	storage.Save(c.kv, storage.KeyMetrics, m)
	return m, nil
}

func apply(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

// ResetWeek replaces the week with seven blank days under a new epoch and
// clears metrics and the summary. Nothing changes unless confirm returns
// true; a nil confirm counts as confirmed.
func (c *Controller) ResetWeek(confirm func() bool) bool {
	if confirm != nil && !confirm() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Week = models.NewWeek()
	c.s.Metrics = models.Metrics{}
	c.s.Summary = models.Summary{}

	storage.Save(c.kv, storage.KeyWeek, c.s.Week.Days)
	storage.Save(c.kv, storage.KeyWeekID, c.s.Week.ID)
	storage.Clear(c.kv, storage.KeyMetrics)
	storage.Clear(c.kv, storage.KeySummary)

	log.WithField("week_id", c.s.Week.ID).Info("week reset")
	return true
}

// Progress computes weight progress for the saved profile and current week.
func (c *Controller) Progress() (progress.Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireProfile(); err != nil {
		return progress.Result{}, err
	}
	return progress.ForProfile(*c.s.Profile, c.s.Week.Days), nil
}

// Prompt returns the report brief for the current state.
func (c *Controller) Prompt() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prompt()
}

func (c *Controller) prompt() string {
	return report.BuildPrompt(report.Input{
		Profile: c.snapshot().Profile,
		Week:    c.s.Week.Days,
		Metrics: c.s.Metrics,
	})
}

// Loading reports whether a report generation is in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.Loading
}

// Summary returns the report for the current week, if any.
func (c *Controller) Summary() models.Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s.Summary
}

// GenerateReport requests a new report for the current week.
//
// With nothing logged it returns report.ErrNoData without contacting the
// provider. Otherwise the previous summary is cleared, exactly one request
// is made, and the result is stored only if the week was not reset in the
// meantime. Provider failures are returned as *report.GenerationError.
func (c *Controller) GenerateReport(ctx context.Context) (models.Summary, error) {
	c.mu.Lock()
	if c.s.Loading {
		c.mu.Unlock()
		return models.Summary{}, ErrGenerationInProgress
	}
	if !report.HasData(c.s.Week.Days, c.s.Metrics) {
		c.mu.Unlock()
		return models.Summary{}, report.ErrNoData
	}
	if c.gen == nil {
		c.mu.Unlock()
		return models.Summary{}, ErrNoGenerator
	}

	c.s.Loading = true
	c.s.Summary = models.Summary{}
	storage.Clear(c.kv, storage.KeySummary)
	weekID := c.s.Week.ID
	prompt := c.prompt()
	c.mu.Unlock()

	content, err := c.generate(ctx, prompt)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.s.Loading = false

	if err != nil {
		log.WithError(err).Warn("report generation failed")
		return models.Summary{}, err
	}
	if c.s.Week.ID != weekID {
		log.WithField("week_id", weekID).Info("discarding report for a reset week")
		return models.Summary{}, ErrWeekChanged
	}

	c.s.Summary = models.Summary{WeekID: weekID, Content: content, GeneratedAt: c.now()}
	storage.Save(c.kv, storage.KeySummary, c.s.Summary)
	return c.s.Summary, nil
}

// generate calls the provider, normalizing every failure into a
// *report.GenerationError. A panicking provider is reported as a failure.
func (c *Controller) generate(ctx context.Context, prompt string) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &report.GenerationError{Err: fmt.Errorf("provider panic: %v", r)}
		}
	}()

	content, err = c.gen.Generate(ctx, prompt)
	if err != nil {
		var genErr *report.GenerationError
		if !errors.As(err, &genErr) {
			err = &report.GenerationError{Err: err}
		}
		return "", err
	}
	content = report.Clean(content)
	if content == "" {
		return "", &report.GenerationError{Err: report.ErrEmptyResponse}
	}
	return content, nil
}
