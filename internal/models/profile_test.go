// ABOUTME: Tests for UserProfile validation.
// ABOUTME: Checks every field rule and the aggregated ValidationError.
package models

import (
	"errors"
	"math"
	"testing"
)

func validProfile() UserProfile {
	return UserProfile{
		Name:          "Ana Pérez",
		Age:           34,
		Objective:     "Perder grasa",
		InitialWeight: 80,
		WeightGoal:    70,
	}
}

func TestValidateValidProfile(t *testing.T) {
	if err := validProfile().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateFieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *UserProfile)
		field  string
	}{
		{"empty name", func(p *UserProfile) { p.Name = "  " }, FieldName},
		{"zero age", func(p *UserProfile) { p.Age = 0 }, FieldAge},
		{"negative age", func(p *UserProfile) { p.Age = -1 }, FieldAge},
		{"empty objective", func(p *UserProfile) { p.Objective = "" }, FieldObjective},
		{"zero initial weight", func(p *UserProfile) { p.InitialWeight = 0 }, FieldInitialWeight},
		{"NaN goal", func(p *UserProfile) { p.WeightGoal = math.NaN() }, FieldWeightGoal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.modify(&p)

			err := p.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Message(tt.field) == "" {
				t.Errorf("expected message for field %s, got %v", tt.field, verr.Fields)
			}
			if len(verr.Fields) != 1 {
				t.Errorf("expected exactly one field error, got %d", len(verr.Fields))
			}
		})
	}
}

func TestValidateCollectsAllFields(t *testing.T) {
	err := UserProfile{}.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 5 {
		t.Errorf("expected 5 field errors, got %d", len(verr.Fields))
	}
	if (UserProfile{}).IsComplete() {
		t.Error("empty profile reported complete")
	}
}
