// ABOUTME: Text-generation contract and report error types.
// ABOUTME: A Generator issues exactly one request per call, with no retries.
package report

import (
	"context"
	"errors"
)

// ErrNoData is returned when a report is requested but nothing was logged.
// No provider request is made in that case.
var ErrNoData = errors.New("no data logged this week")

// ErrEmptyResponse is wrapped in a GenerationError when the provider
// answers without any text.
var ErrEmptyResponse = errors.New("provider returned an empty response")

// Generator turns a prompt into rich-text report content.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// GenerationError reports a failed provider call.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "report generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
