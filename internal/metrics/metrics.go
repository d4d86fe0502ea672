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

// Contest Metrics
var (
	CatchesLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatchesLogged,
			Help: HelpTextCatchesLogged,
		},
	)

	CatchPoints = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatchPoints,
			Help: HelpTextCatchPoints,
		},
	)

	DrinksLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDrinksLogged,
			Help: HelpTextDrinksLogged,
		},
	)

	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVotesCast,
			Help: HelpTextVotesCast,
		},
		[]string{LabelOutcome},
	)

	VotingFinalizations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVotingFinalizations,
			Help: HelpTextVotingFinalizations,
		},
		[]string{LabelOutcome},
	)

	VotingFinalizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameVotingFinalizeTime,
			Help:    HelpTextVotingFinalizeTime,
			Buckets: FinalizeLatencyBuckets,
		},
	)

	VotingSweeps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameVotingSweeps,
			Help: HelpTextVotingSweeps,
		},
	)

	StandingsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStandingsCacheLookup,
			Help: HelpTextStandingsCacheLookup,
		},
		[]string{LabelResult},
	)
)
