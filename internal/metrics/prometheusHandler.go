package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var chunksProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "pipeline_chunks_processed_total",
	Help: "Chunks dispatched to the LLM labelled by pipeline and outcome",
}, []string{"pipeline", "outcome"})

var questionsRejected = promauto.NewCounter(prometheus.CounterOpts{
	Name: "questions_rejected_total",
	Help: "Candidate questions dropped by the validator",
})

var questionsRecovered = promauto.NewCounter(prometheus.CounterOpts{
	Name: "questions_recovered_total",
	Help: "Questions recovered from the deterministic baseline",
})

var sanitizerPurges = promauto.NewCounter(prometheus.CounterOpts{
	Name: "sanitizer_purges_total",
	Help: "Times the script sanitizer fell back to the full ASCII purge",
})

var coverageRatio = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "analysis_coverage_ratio",
	Help: "Fraction of the expected question range found in the last analysis",
})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func CaptureChunkOutcome(pipeline string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "failed"
	}
	chunksProcessed.WithLabelValues(pipeline, outcome).Inc()
}

func IncrementRejectedQuestions() {
	questionsRejected.Inc()
}

func IncrementRecoveredQuestions() {
	questionsRecovered.Inc()
}

func IncrementSanitizerPurges() {
	sanitizerPurges.Inc()
}

func SetCoverageRatio(ratio float64) {
	coverageRatio.Set(ratio)
}

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "analysis_request_duration_seconds",
	Help:    "Total time spent analyzing one document.",
	Buckets: []float64{.5, 1, 2, 5, 10, 30, 60, 120},
}, []string{"status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureRequestMetrics(label string, timeElapsed time.Duration) {
	requestDuration.WithLabelValues(label).Observe(timeElapsed.Seconds())
}
