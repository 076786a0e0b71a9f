package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/metrics"
)

// ClientConfig configures the HTTP summarizer.
type ClientConfig struct {
	URL     string
	APIKey  string
	Model   string
	Timeout time.Duration
	Retries int
}

// HTTPSummarizer calls an OpenAI-compatible chat-completions endpoint with a
// bounded timeout and retry count. A circuit breaker sheds calls while the
// upstream is failing so a dead endpoint does not stall every request for
// the full timeout.
type HTTPSummarizer struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	cfg     ClientConfig
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// NewHTTPSummarizer creates the production summarizer.
func NewHTTPSummarizer(cfg ClientConfig) *HTTPSummarizer {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries).
		SetRetryWaitTime(500 * time.Millisecond)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "insights-summarizer",
		MaxRequests: 2,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &HTTPSummarizer{
		client:  client,
		breaker: breaker,
		cfg:     cfg,
	}
}

// Summarize sends the prompt and returns the generated text. Every failure
// mode (transport, breaker open, upstream error payload, empty completion)
// surfaces as a dependency failure.
func (s *HTTPSummarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	metrics.InsightsRequests.Inc()

	result, err := s.breaker.Execute(func() (interface{}, error) {
		var out completionResponse
		resp, err := s.client.R().
			SetContext(ctx).
			SetHeader("Authorization", "Bearer "+s.cfg.APIKey).
			SetBody(completionRequest{
				Model:    s.cfg.Model,
				Messages: []chatMessage{{Role: "user", Content: prompt}},
			}).
			SetResult(&out).
			Post(s.cfg.URL)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			msg := resp.Status()
			if out.Error != nil {
				msg = out.Error.Message
			}
			return nil, fmt.Errorf("upstream returned %s", msg)
		}
		if len(out.Choices) == 0 {
			return nil, errors.New("upstream returned no completion")
		}
		return out.Choices[0].Message.Content, nil
	})
	if err != nil {
		metrics.InsightsFailures.Inc()
		log.Warn("Summarizer call failed", "error", err)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", fmt.Errorf("%w: insights service unavailable", domain.ErrDependencyFailure)
		}
		return "", fmt.Errorf("%w: %v", domain.ErrDependencyFailure, err)
	}

	return result.(string), nil
}
