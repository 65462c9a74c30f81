package worker

import "github.com/prometheus/client_golang/prometheus"

var (
	taskCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "arcade",
			Subsystem: "worker",
			Name:      "task_seconds",
			Help:      "Time spent in one iteration of a periodic task.",
		},
		[]string{"task"},
	)
	runsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "worker",
			Name:      "runs_started_total",
			Help:      "Runs whose logic and render tasks were started.",
		},
	)
	renderErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "worker",
			Name:      "render_errors_total",
			Help:      "Redraws the renderer failed.",
		},
	)
)

func instrument(task string) func() {
	t := prometheus.NewTimer(taskCalls.WithLabelValues(task))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(taskCalls, runsStarted, renderErrors)
}
