// Package insights answers free-form questions about the current
// cohort by handing Gemini a context built from the computed metrics.
// It is optional: without an API key the dashboard runs without it.
package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Engine wraps the Gemini client used for cohort Q&A.
type Engine struct {
	client *genai.Client
	model  *genai.GenerativeModel
	keys   *KeyManager
}

// NewEngine initializes the Gemini client from the environment keys.
func NewEngine(ctx context.Context) (*Engine, error) {
	keys := NewKeyManager()
	if !keys.HasKeys() {
		return nil, fmt.Errorf("no Gemini API key configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(keys.GetNextKey()))
	if err != nil {
		return nil, fmt.Errorf("error initializing Gemini client: %v", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")

	// Low temperature keeps the answers grounded in the supplied metrics
	temp := float32(0.2)
	model.Temperature = &temp

	return &Engine{client: client, model: model, keys: keys}, nil
}

// Close releases the underlying client.
func (e *Engine) Close() error {
	return e.client.Close()
}

// Ask answers a question about the cohort described by context.
func (e *Engine) Ask(ctx context.Context, question, cohortContext string) (string, error) {
	askCtx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	prompt := BuildInsightPrompt(question, cohortContext)

	var lastErr error
	backoff := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
	}

	for i, wait := range backoff {
		select {
		case <-askCtx.Done():
			return "", askCtx.Err()
		default:
			resp, err := e.model.GenerateContent(askCtx, genai.Text(prompt))
			if err == nil {
				return extractText(resp)
			}
			lastErr = err
			if i < len(backoff)-1 {
				if err := sleepCtx(askCtx, wait); err != nil {
					return "", err
				}
			}
		}
	}

	if lastErr != nil && strings.Contains(lastErr.Error(), "context deadline exceeded") {
		return "", fmt.Errorf("the question timed out; try something more specific")
	}
	return "", fmt.Errorf("generating insight: %v", lastErr)
}

// sleepCtx waits for d unless ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	answer := strings.TrimSpace(b.String())
	if answer == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return answer, nil
}
