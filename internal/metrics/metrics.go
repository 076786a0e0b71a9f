package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	UsageRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUsageRecorded,
			Help: HelpTextUsageRecorded,
		},
		[]string{LabelItem},
	)

	UnitsConsumed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnitsConsumed,
			Help: HelpTextUnitsConsumed,
		},
	)

	OrdersCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameOrdersCreated,
			Help: HelpTextOrdersCreated,
		},
		[]string{LabelAutomated},
	)

	UnitsOrdered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnitsOrdered,
			Help: HelpTextUnitsOrdered,
		},
	)

	ItemsRestocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsRestocked,
			Help: HelpTextItemsRestocked,
		},
	)

	LowStockEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLowStockEvents,
			Help: HelpTextLowStockEvents,
		},
		[]string{LabelItem},
	)
)

// Insights Metrics
var (
	InsightsRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsightsRequests,
			Help: HelpTextInsightsRequests,
		},
	)

	InsightsFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsightsFailures,
			Help: HelpTextInsightsFailures,
		},
	)

	InsightsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameInsightsCacheHits,
			Help: HelpTextInsightsCacheHits,
		},
	)
)
