package decision

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
)

// DefaultOpenRouterURL is the chat completions endpoint
const DefaultOpenRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// ErrNoAPIKey is returned when the provider has no credentials
var ErrNoAPIKey = errors.New("no OpenRouter API key configured")

// ErrEmptyResponse is returned when a model answers without any content
var ErrEmptyResponse = errors.New("empty response from model")

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenRouter asks a language model for decisions
type OpenRouter struct {
	logger logrus.FieldLogger
	client *http.Client
	apiKey string
	url    string
	models []string
}

// NewOpenRouter returns a provider that tries each model in order until one answers
func NewOpenRouter(logger logrus.FieldLogger, apiKey, url string, models ...string) *OpenRouter {
	if url == "" {
		url = DefaultOpenRouterURL
	}

	return &OpenRouter{
		logger: logger,
		client: http.DefaultClient,
		apiKey: apiKey,
		url:    url,
		models: models,
	}
}

// RequestDecision implements Provider
func (o *OpenRouter) RequestDecision(ctx context.Context, obs ObservableState) (Decision, error) {
	if o.apiKey == "" {
		return Decision{}, ErrNoAPIKey
	}

	if len(o.models) == 0 {
		return Decision{}, errors.New("no models configured")
	}

	prompt := buildPrompt(obs)

	var lastErr error
	for _, model := range o.models {
		content, err := o.complete(ctx, model, prompt)
		if err != nil {
			lastErr = err
			o.logger.WithError(err).WithField("model", model).Warn("model request failed")

			if ctx.Err() != nil {
				break
			}

			continue
		}

		d, err := ParseDecision(content)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", model, err)
			o.logger.WithError(err).WithField("model", model).Warn("could not parse model response")
			continue
		}

		return d, nil
	}

	return Decision{}, lastErr
}

func (o *OpenRouter) complete(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   150,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "https://family-games.local")
	req.Header.Set("X-Title", "Family Games - AI Poker")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("could not decode response: %w", err)
	}

	if len(cr.Choices) == 0 || cr.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}

	return cr.Choices[0].Message.Content, nil
}
