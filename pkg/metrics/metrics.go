package metrics

import (
	"runtime"
	"strconv"
	"time"
)

// Search outcomes used as the status label
const (
	StatusSuccess   = "success"
	StatusStuck     = "stuck"
	StatusStepLimit = "step_limit"
	StatusCancelled = "cancelled"
	StatusError     = "error"
)

// RecordStep records one tabu step that scored evaluated candidate moves
func (r *Registry) RecordStep(structure string, evaluated int, improved bool, duration time.Duration) {
	r.StepsTotal.WithLabelValues(structure).Inc()
	r.MovesEvaluatedTotal.WithLabelValues(structure).Add(float64(evaluated))
	r.StepDuration.WithLabelValues(structure).Observe(duration.Seconds())
	if improved {
		r.ImprovementsTotal.WithLabelValues(structure).Inc()
	}
}

// SetSearchProgress publishes a search's best score and tabu set size
func (r *Registry) SetSearchProgress(searchID int, bestScore int64, visited int) {
	id := strconv.Itoa(searchID)
	r.BestScore.WithLabelValues(id).Set(float64(bestScore))
	r.VisitedColorings.WithLabelValues(id).Set(float64(visited))
}

// SearchStarted marks a search as running
func (r *Registry) SearchStarted() {
	r.ActiveSearches.Inc()
}

// SearchFinished records the outcome of a search started with SearchStarted
func (r *Registry) SearchFinished(status string, duration time.Duration) {
	r.ActiveSearches.Dec()
	r.SearchesTotal.WithLabelValues(status).Inc()
	r.SearchDuration.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordSave records the outcome of writing a coloring file
func (r *Registry) RecordSave(result string) {
	r.SavedColoringsTotal.WithLabelValues(result).Inc()
}

// UpdateSystemMetrics samples process-level gauges
func (r *Registry) UpdateSystemMetrics(start time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	r.UptimeSeconds.Set(time.Since(start).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(ms.Alloc))
	r.MemorySysBytes.Set(float64(ms.Sys))
}
