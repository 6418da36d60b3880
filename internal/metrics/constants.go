package metrics

import "github.com/prometheus/client_golang/prometheus"

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"

	MetricNameEventsPublished = "events_published_total"

	MetricNameRollsTotal         = "rolls_total"
	MetricNameRollRarity         = "roll_rarity"
	MetricNameCooldownRejections = "roll_cooldown_rejections_total"
	MetricNameStorageFailures    = "roll_storage_failures_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished = "Total number of events published"

	HelpTextRollsTotal         = "Total number of admitted rolls by modifier"
	HelpTextRollRarity         = "True rarity (base times multiplier) of admitted rolls"
	HelpTextCooldownRejections = "Total number of rolls rejected by the cooldown gate"
	HelpTextStorageFailures    = "Total number of rolls rolled back because storage failed"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelModifier = "modifier"
)

// LabelValueNoModifier labels rolls without a modifier
const LabelValueNoModifier = "none"

// LabelValueUnmatchedRoute is used when chi has no route pattern for a request
const LabelValueUnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets range from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RollRarityBuckets span 2 up to 2e11, past the largest Developer roll
var RollRarityBuckets = prometheus.ExponentialBuckets(2, 10, 12)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUnexpectedPayload = "Unexpected event payload"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
