package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// refinementsTotal tracks completed refinements by domain and template
	refinementsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptforge_refinements_total",
			Help: "Total number of completed prompt refinements",
		},
		[]string{"domain", "template"},
	)

	// refinementScore tracks the overall quality score distribution
	refinementScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "promptforge_refinement_score",
			Help:    "Overall quality score of refined prompts",
			Buckets: []float64{.1, .2, .3, .4, .5, .6, .7, .8, .9, .95, .99, 1},
		},
		[]string{"domain"},
	)

	// refinementIterations tracks improver passes per refinement
	refinementIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "promptforge_refinement_iterations",
			Help:    "Improver iterations used per refinement",
			Buckets: []float64{1, 2, 3, 4, 5},
		},
	)

	// cacheOps tracks refinement cache hits and misses
	cacheOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptforge_cache_ops_total",
			Help: "Refinement cache operations by result",
		},
		[]string{"result"},
	)

	// validationFindings tracks validator findings by severity
	validationFindings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "promptforge_validation_findings_total",
			Help: "Validator findings by severity",
		},
		[]string{"severity"},
	)
)

// RecordRefinement records a completed refinement
func RecordRefinement(domain, template string, score float64, iterations int) {
	refinementsTotal.WithLabelValues(domain, template).Inc()
	refinementScore.WithLabelValues(domain).Observe(score)
	refinementIterations.Observe(float64(iterations))
}

// RecordCacheHit records a refinement cache hit
func RecordCacheHit() {
	cacheOps.WithLabelValues("hit").Inc()
}

// RecordCacheMiss records a refinement cache miss
func RecordCacheMiss() {
	cacheOps.WithLabelValues("miss").Inc()
}

// RecordFinding records one validator finding
func RecordFinding(severity string) {
	validationFindings.WithLabelValues(severity).Inc()
}
