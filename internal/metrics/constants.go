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

// Contest metric names
const (
	MetricNameCatchesLogged        = "catches_logged_total"
	MetricNameCatchPoints          = "catch_points_total"
	MetricNameDrinksLogged         = "drinks_logged_total"
	MetricNameVotesCast            = "votes_cast_total"
	MetricNameVotingFinalizations  = "voting_finalizations_total"
	MetricNameVotingFinalizeTime   = "voting_finalize_duration_seconds"
	MetricNameVotingSweeps         = "voting_sweeps_total"
	MetricNameStandingsCacheLookup = "standings_cache_lookups_total"
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
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Contest metric help text
const (
	HelpTextCatchesLogged        = "Total number of catches logged"
	HelpTextCatchPoints          = "Total points awarded for catches"
	HelpTextDrinksLogged         = "Total number of drinks logged"
	HelpTextVotesCast            = "Vote attempts by outcome"
	HelpTextVotingFinalizations  = "Voting day finalization attempts by outcome"
	HelpTextVotingFinalizeTime   = "Time spent finalizing a voting day"
	HelpTextVotingSweeps         = "Total number of pending-day sweeps completed"
	HelpTextStandingsCacheLookup = "Standings cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Outcome label values shared by vote and finalize metrics
const (
	OutcomeAccepted         = "accepted"
	OutcomeFinalized        = "finalized"
	OutcomeDuplicate        = "duplicate"
	OutcomeDayClosed        = "day_closed"
	OutcomeDayNotOpen       = "day_not_open"
	OutcomeNotEligible      = "not_eligible"
	OutcomeAlreadyProcessed = "already_processed"
	OutcomeNoVotes          = "no_votes"
	OutcomeStillOpen        = "still_open"
	OutcomeError            = "error"

	CacheHit  = "hit"
	CacheMiss = "miss"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// FinalizeLatencyBuckets cover lock waits as well as the transaction itself
var FinalizeLatencyBuckets = []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
	LogMsgEventRedeliverySkipped   = "Skipping metrics for redelivered event"
)

// UnmatchedRoute labels requests that did not match any chi route
const UnmatchedRoute = "unmatched"
