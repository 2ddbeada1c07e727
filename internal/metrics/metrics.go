package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

type Metrics struct {
	searches       *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	gamesFinished  *prometheus.CounterVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_minimax_searches_total",
				Help: "Total number of minimax searches",
			},
			[]string{"player"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tictactoe_minimax_search_duration_seconds",
				Help:    "Duration of minimax searches",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"player"},
		),
		gamesFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tictactoe_games_finished_total",
				Help: "Total number of finished games by outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(m.searches, m.searchDuration, m.gamesFinished)

	return m
}

// ObserveSearch records one search made on behalf of player.
func (m *Metrics) ObserveSearch(player entity.Cell, elapsed time.Duration) {
	m.searches.WithLabelValues(string(player)).Inc()
	m.searchDuration.WithLabelValues(string(player)).Observe(elapsed.Seconds())
}

func (m *Metrics) GameFinished(outcome entity.Outcome) {
	m.gamesFinished.WithLabelValues(string(outcome)).Inc()
}
