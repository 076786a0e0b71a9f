package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/medikit/ClinicStock_Go/internal/domain"
	"github.com/medikit/ClinicStock_Go/internal/logger"
	"github.com/medikit/ClinicStock_Go/internal/metrics"
	"github.com/medikit/ClinicStock_Go/internal/repository"
	"github.com/medikit/ClinicStock_Go/internal/restock"
)

const (
	replyCacheSize = 128
	replyCacheTTL  = 5 * time.Minute
)

// Dataset is one bar series in a chart payload.
type Dataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

// ChartData is the bar-chart payload consumed directly by the UI.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// ChartResponse pairs chart data with generated commentary.
type ChartResponse struct {
	ChartData  ChartData `json:"chartData"`
	AIInsights string    `json:"aiInsights"`
}

// Service defines the generative-insights business logic.
type Service interface {
	// Chat answers a free-form question about the current inventory.
	Chat(ctx context.Context, message string) (string, error)

	// RestockChart builds stock-vs-suggestion chart data with generated
	// commentary on the restock situation.
	RestockChart(ctx context.Context) (*ChartResponse, error)
}

type service struct {
	repo       repository.Store
	restockSvc restock.Service
	summarizer Summarizer
	cache      *expirable.LRU[string, string]
}

// NewService creates a new insights service.
func NewService(repo repository.Store, restockSvc restock.Service, summarizer Summarizer) Service {
	return &service{
		repo:       repo,
		restockSvc: restockSvc,
		summarizer: summarizer,
		cache:      expirable.NewLRU[string, string](replyCacheSize, nil, replyCacheTTL),
	}
}

// Chat builds an inventory-grounded prompt around the user's message.
func (s *service) Chat(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	items, err := s.repo.GetItems(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get items: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("You are an assistant for a clinic inventory system. Current inventory:\n")
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s (%s): %d in stock, minimum %d\n",
			item.Name, item.Category, item.CurrentStock, item.MinThreshold)
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(message)

	return s.summarize(ctx, sb.String())
}

// RestockChart returns stock-vs-suggestion series plus generated commentary.
func (s *service) RestockChart(ctx context.Context) (*ChartResponse, error) {
	suggestions, err := s.restockSvc.GetSuggestions(ctx)
	if err != nil {
		return nil, err
	}

	chart := ChartData{
		Labels: make([]string, 0, len(suggestions)),
		Datasets: []Dataset{
			{Label: "Current Stock", BackgroundColor: "rgba(54, 162, 235, 0.7)"},
			{Label: "Suggested Quantity", BackgroundColor: "rgba(255, 99, 132, 0.7)"},
		},
	}
	for _, sug := range suggestions {
		chart.Labels = append(chart.Labels, sug.ItemName)
		chart.Datasets[0].Data = append(chart.Datasets[0].Data, sug.CurrentStock)
		chart.Datasets[1].Data = append(chart.Datasets[1].Data, sug.SuggestedQuantity)
	}

	if len(suggestions) == 0 {
		return &ChartResponse{
			ChartData:  chart,
			AIInsights: "All items are sufficiently stocked. No restocking needed right now.",
		}, nil
	}

	var sb strings.Builder
	sb.WriteString("Summarize the restock situation for a clinic in a few short paragraphs. Items needing attention:\n")
	for _, sug := range suggestions {
		days := "no usage trend"
		if sug.DaysUntilEmpty != nil {
			days = fmt.Sprintf("~%d days until empty", *sug.DaysUntilEmpty)
		}
		fmt.Fprintf(&sb, "- %s: %d in stock, %s priority, %s, suggest ordering %d\n",
			sug.ItemName, sug.CurrentStock, sug.Priority, days, sug.SuggestedQuantity)
	}

	insightsText, err := s.summarize(ctx, sb.String())
	if err != nil {
		return nil, err
	}

	return &ChartResponse{
		ChartData:  chart,
		AIInsights: insightsText,
	}, nil
}

// summarize serves identical prompts from the reply cache.
func (s *service) summarize(ctx context.Context, prompt string) (string, error) {
	if reply, ok := s.cache.Get(prompt); ok {
		metrics.InsightsCacheHits.Inc()
		return reply, nil
	}

	reply, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		return "", err
	}

	s.cache.Add(prompt, reply)
	logger.FromContext(ctx).Debug("Cached insights reply", "promptLength", len(prompt))
	return reply, nil
}
