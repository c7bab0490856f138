// ABOUTME: UserProfile model and field validation for the wellness tracker.
// ABOUTME: A profile must be valid before any daily tracking is allowed.
package models

import (
	"fmt"
	"math"
	"strings"
)

// Profile field names, used as keys in ValidationError.
const (
	FieldName          = "name"
	FieldAge           = "age"
	FieldObjective     = "objective"
	FieldInitialWeight = "initial_weight"
	FieldWeightGoal    = "weight_goal"
)

// UserProfile is the one-time identity and goal configuration.
type UserProfile struct {
	Name          string  `json:"name" yaml:"name"`
	Age           int     `json:"age" yaml:"age"`
	Objective     string  `json:"objective" yaml:"objective"`
	InitialWeight float64 `json:"initialWeight" yaml:"initialWeight"`
	WeightGoal    float64 `json:"weightGoal" yaml:"weightGoal"`
}

// FieldError describes a single invalid profile field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every invalid field of a profile.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// Message returns the error message for field, or "" if the field is valid.
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate checks every field and returns a *ValidationError listing all failures.
func (p UserProfile) Validate() error {
	var fields []FieldError
	if strings.TrimSpace(p.Name) == "" {
		fields = append(fields, FieldError{FieldName, "name is required"})
	}
	if p.Age <= 0 {
		fields = append(fields, FieldError{FieldAge, "age must be a positive number"})
	}
	if strings.TrimSpace(p.Objective) == "" {
		fields = append(fields, FieldError{FieldObjective, "objective is required"})
	}
	if !positive(p.InitialWeight) {
		fields = append(fields, FieldError{FieldInitialWeight, "initial weight must be a positive number"})
	}
	if !positive(p.WeightGoal) {
		fields = append(fields, FieldError{FieldWeightGoal, "weight goal must be a positive number"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// IsComplete reports whether every profile field carries a value.
func (p UserProfile) IsComplete() bool {
	return p.Validate() == nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
