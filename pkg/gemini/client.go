// Package gemini is a minimal client for the generateContent endpoint
// of the Google generative language API: one prompt in, one text blob
// out. No streaming, no multi-turn context.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fitpro-warsaw/fitpro-api/config"
	"github.com/fitpro-warsaw/fitpro-api/pkg/circuitbreaker"
	"github.com/fitpro-warsaw/fitpro-api/pkg/httpclient"
	"github.com/fitpro-warsaw/fitpro-api/pkg/logger"
	"github.com/fitpro-warsaw/fitpro-api/pkg/metrics"
	"github.com/fitpro-warsaw/fitpro-api/pkg/retry"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("gemini api key not configured")

// statusError carries the HTTP status of a failed attempt so the retry
// predicate can distinguish transient failures from hard ones.
type statusError struct {
	code    int
	message string
}

func (e *statusError) Error() string {
	if e.message != "" {
		return fmt.Sprintf("gemini API error (status %d): %s", e.code, e.message)
	}
	return fmt.Sprintf("gemini API returned status %d", e.code)
}

// isTransient reports whether the attempt is worth repeating: rate
// limiting, upstream 5xx, or a network-level failure. Bad requests and
// auth errors never recover on retry.
func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	// Network errors surface as plain wrapped errors from the HTTP client.
	return !errors.Is(err, ErrNotConfigured)
}

// Client calls the generateContent endpoint of a fixed model.
type Client struct {
	apiKey     string
	model      string
	apiBase    string
	httpClient httpclient.Client
	breaker    *gobreaker.CircuitBreaker
	retryCfg   retry.Config
}

// NewClient creates a client for the configured model. The key may be
// empty; GenerateContent then fails with ErrNotConfigured per call.
func NewClient(cfg config.GeminiConfig, client httpclient.Client) *Client {
	retryCfg := retry.ModelAPIConfig()
	retryCfg.RetryableErrors = isTransient

	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		apiBase:    cfg.APIBase,
		httpClient: client,
		breaker:    circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("gemini")),
		retryCfg:   retryCfg,
	}
}

// Configured reports whether the API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// GenerateContent sends one prompt and returns the model's text output.
// Transient upstream failures are retried with backoff; a run of
// failures opens the circuit breaker so further requests fail fast.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	text, err := retry.DoWithResult(ctx, c.retryCfg, "gemini_generate", func() (string, error) {
		return circuitbreaker.Execute(c.breaker, func() (string, error) {
			return c.generate(ctx, prompt)
		})
	})
	if err != nil {
		return "", circuitbreaker.FormatError(c.breaker.Name(), err)
	}
	return text, nil
}

// generate performs a single generateContent attempt.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode generateContent payload: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.apiBase, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create generateContent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.GeminiRequestDuration.WithLabelValues("error").Observe(metrics.MeasureDuration(start))
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4*1024*1024))
	if err != nil {
		metrics.GeminiRequestDuration.WithLabelValues("error").Observe(metrics.MeasureDuration(start))
		return "", fmt.Errorf("failed to read Gemini response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		metrics.GeminiRequestDuration.WithLabelValues("error").Observe(metrics.MeasureDuration(start))
		return "", fmt.Errorf("failed to decode Gemini response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		metrics.GeminiRequestDuration.WithLabelValues("error").Observe(metrics.MeasureDuration(start))
		se := &statusError{code: resp.StatusCode}
		if parsed.Error != nil {
			se.message = fmt.Sprintf("%s: %s", parsed.Error.Status, parsed.Error.Message)
		}
		return "", se
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		metrics.GeminiRequestDuration.WithLabelValues("empty").Observe(metrics.MeasureDuration(start))
		return "", fmt.Errorf("gemini response contained no candidates")
	}

	metrics.GeminiRequestDuration.WithLabelValues("success").Observe(metrics.MeasureDuration(start))
	logger.Debug("Gemini completion received",
		zap.String("model", c.model),
		zap.Int("candidates", len(parsed.Candidates)))

	text := ""
	for _, p := range parsed.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
