// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package completion

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Settings configures an OpenAI client.
type Settings struct {
	APIKey   string
	Model    string
	BaseURL  string
	Sampling Sampling
}

// OpenAI implements Client with the openai-go SDK's legacy completions
// endpoint. Each call is a single request; the SDK's own retries are off.
type OpenAI struct {
	model    string
	sampling Sampling
	opts     []option.RequestOption
}

// NewOpenAI validates settings and returns a client.
func NewOpenAI(s Settings) (*OpenAI, error) {
	if s.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	if s.Model == "" {
		return nil, errors.New("completion model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(s.APIKey),
		option.WithMaxRetries(0),
	}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	return &OpenAI{model: s.Model, sampling: s.Sampling, opts: opts}, nil
}

// Complete sends prompt with a budget of maxTokens and returns the raw response.
func (o *OpenAI) Complete(ctx context.Context, prompt string, maxTokens int) (Response, error) {
	if maxTokens <= 0 {
		return Response{}, fmt.Errorf("%w: %d", ErrInvalidTokenBudget, maxTokens)
	}

	client := openai.NewClient(o.opts...)
	resp, err := client.Completions.New(ctx, openai.CompletionNewParams{
		Model: openai.CompletionNewParamsModel(o.model),
		Prompt: openai.CompletionNewParamsPromptUnion{
			OfString: openai.String(prompt),
		},
		MaxTokens:        openai.Int(int64(maxTokens)),
		Temperature:      openai.Float(o.sampling.Temperature),
		TopP:             openai.Float(o.sampling.TopP),
		FrequencyPenalty: openai.Float(o.sampling.FrequencyPenalty),
		PresencePenalty:  openai.Float(o.sampling.PresencePenalty),
	})
	if err != nil {
		return Response{}, fmt.Errorf("requesting completion from %s: %w", o.model, err)
	}
	return NewResponse([]byte(resp.RawJSON())), nil
}
