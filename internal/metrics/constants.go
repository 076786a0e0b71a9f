package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameUsageRecorded     = "usage_events_recorded_total"
	MetricNameUnitsConsumed     = "units_consumed_total"
	MetricNameOrdersCreated     = "purchase_orders_created_total"
	MetricNameUnitsOrdered      = "units_ordered_total"
	MetricNameItemsRestocked    = "items_restocked_total"
	MetricNameLowStockEvents    = "low_stock_events_total"
	MetricNameInsightsRequests  = "insights_requests_total"
	MetricNameInsightsFailures  = "insights_failures_total"
	MetricNameInsightsCacheHits = "insights_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of domain events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextUsageRecorded     = "Total number of usage events recorded"
	HelpTextUnitsConsumed     = "Total units consumed across all items"
	HelpTextOrdersCreated     = "Total number of purchase orders created"
	HelpTextUnitsOrdered      = "Total units ordered across all purchase orders"
	HelpTextItemsRestocked    = "Total number of items credited by automated restock"
	HelpTextLowStockEvents    = "Total number of usage events that left an item at or below threshold"
	HelpTextInsightsRequests  = "Total number of generative-insights requests"
	HelpTextInsightsFailures  = "Total number of failed generative-insights requests"
	HelpTextInsightsCacheHits = "Total number of insights replies served from cache"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelAutomated = "automated"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
