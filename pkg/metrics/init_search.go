package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSearchMetrics() {
	r.StepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramsey_steps_total",
			Help: "Total number of tabu steps taken",
		},
		[]string{"structure"}, // books, wheels
	)

	r.MovesEvaluatedTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramsey_moves_evaluated_total",
			Help: "Total number of candidate moves scored",
		},
		[]string{"structure"},
	)

	r.ImprovementsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramsey_improvements_total",
			Help: "Total number of steps that reached a new best score",
		},
		[]string{"structure"},
	)

	r.StepDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramsey_step_duration_seconds",
			Help:    "Time to evaluate all moves and apply one in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
		[]string{"structure"},
	)

	r.BestScore = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ramsey_best_score",
			Help: "Lowest score reached so far by each search",
		},
		[]string{"search"},
	)

	r.VisitedColorings = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ramsey_visited_colorings",
			Help: "Size of each search's tabu set",
		},
		[]string{"search"},
	)

	r.SearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramsey_searches_total",
			Help: "Total number of finished searches by outcome",
		},
		[]string{"status"}, // success, stuck, step_limit, cancelled, error
	)

	r.SearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ramsey_search_duration_seconds",
			Help:    "Wall time of finished searches in seconds",
			Buckets: []float64{0.01, 0.1, 1, 10, 60, 300, 1800, 3600},
		},
		[]string{"status"},
	)

	r.ActiveSearches = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ramsey_active_searches",
			Help: "Number of searches currently running",
		},
	)
}

func (r *Registry) initPersistMetrics() {
	r.SavedColoringsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ramsey_saved_colorings_total",
			Help: "Total number of coloring files handled by outcome",
		},
		[]string{"result"}, // written, exists, error
	)
}
