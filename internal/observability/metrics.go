// Package observability exposes in-process Prometheus instrumentation for the
// extraction pipeline and the match scorer. Callers that want the metrics
// served scrape the default registry themselves; the core only records.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	// StageDuration observes wall-clock time per extraction stage.
	StageDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "resume_parser_stage_duration_seconds",
			Help: "Time spent in each extraction stage",
		},
		[]string{"stage"},
	)

	// StageFailures counts stages that degraded to an empty result.
	StageFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_parser_stage_failures_total",
			Help: "Extraction stages that failed and returned empty results",
		},
		[]string{"stage"},
	)

	// EntitiesExtracted counts extracted entities by type.
	EntitiesExtracted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_parser_entities_extracted_total",
			Help: "Number of entities extracted",
		},
		[]string{"entity_type"},
	)

	// FallbackExtractions counts documents handled by the fallback tagger
	// because the primary model was unavailable or failed.
	FallbackExtractions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resume_parser_ner_fallback_total",
			Help: "Entity extractions served by the fallback tagger",
		},
	)

	// MatchScores observes the distribution of overall match scores.
	MatchScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_parser_match_score",
			Help:    "Distribution of overall job match scores",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11),
		},
	)
)

func init() {
	prometheus.MustRegister(
		StageDuration,
		StageFailures,
		EntitiesExtracted,
		FallbackExtractions,
		MatchScores,
	)
}
