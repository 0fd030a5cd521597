package cookbook

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entitiesInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_entities_inserted_total",
			Help: "Entities accepted into the cookbook",
		},
		[]string{"kind"},
	)

	insertsRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cookbook_inserts_rejected_total",
			Help: "Insertions rejected by validation",
		},
	)

	summariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookbook_summaries_total",
			Help: "Summary resolutions by outcome",
		},
		[]string{"outcome"},
	)

	summaryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookbook_summary_duration_seconds",
			Help:    "Duration of summary resolution in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func observeInsert(e Entity, err error) {
	if err != nil {
		insertsRejected.Inc()
		return
	}
	entitiesInserted.WithLabelValues(string(e.Kind)).Inc()
}

func observeSummary(start time.Time, err error) {
	summaryDuration.Observe(time.Since(start).Seconds())
	summariesTotal.WithLabelValues(summaryOutcome(err)).Inc()
}

func summaryOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotRecipe):
		return "not_recipe"
	case errors.Is(err, ErrMissingRequirement):
		return "missing_requirement"
	case errors.Is(err, ErrCyclicRequirement):
		return "cycle"
	default:
		return "error"
	}
}
