package query

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	queryDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "groupls_query_duration_seconds",
			Help:       "Time taken to resolve a query, including file loads",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"request"},
	)
)

func init() {
	prometheus.MustRegister(queryDuration)
}
