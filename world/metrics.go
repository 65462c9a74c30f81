package world

import "github.com/prometheus/client_golang/prometheus"

var (
	cherriesEaten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "world",
			Name:      "cherries_eaten_total",
			Help:      "Cherries eaten across all runs.",
		},
	)
	gamesOver = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arcade",
			Subsystem: "world",
			Name:      "games_over_total",
			Help:      "Finished runs by death cause.",
		},
		[]string{"cause"},
	)
	bestScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "arcade",
			Subsystem: "world",
			Name:      "best_score",
			Help:      "Best score reached since the process started.",
		},
	)
)

func init() {
	prometheus.MustRegister(cherriesEaten, gamesOver, bestScore)
}
