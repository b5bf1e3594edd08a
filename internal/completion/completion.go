// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package completion sends an assembled prompt to a hosted text-completion
// API and hands back the response payload untouched.
package completion

import (
	"context"
	"errors"
)

// ErrInvalidTokenBudget is returned when maxTokens is not positive.
var ErrInvalidTokenBudget = errors.New("token budget must be positive")

// Client abstracts the completion API so tests can supply a fake.
type Client interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (Response, error)
}

// Response is the structured payload returned by the completion API. It is
// passed through as-is; consumers read the fields they need from JSON.
type Response struct {
	raw []byte
}

// NewResponse wraps a JSON payload.
func NewResponse(raw []byte) Response {
	return Response{raw: raw}
}

// JSON returns the raw payload.
func (r Response) JSON() []byte {
	return r.raw
}

// Sampling fixes the generation parameters sent with every request.
type Sampling struct {
	Temperature      float64
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

// DefaultSampling is the sampling configuration used when none is given.
var DefaultSampling = Sampling{Temperature: 0.5, TopP: 1}
