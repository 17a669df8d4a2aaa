package loader

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	linesRead = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupls_loader_lines_total",
			Help: "Lines read from account files",
		},
		[]string{"file"},
	)
	lineErrorsCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupls_loader_line_errors_total",
			Help: "Malformed lines skipped in account files",
		},
		[]string{"file"},
	)
	readFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "groupls_loader_read_failures_total",
			Help: "Failures reading account files",
		},
		[]string{"file"},
	)
)

func init() {
	prometheus.MustRegister(linesRead)
	prometheus.MustRegister(lineErrorsCount)
	prometheus.MustRegister(readFailures)
}
