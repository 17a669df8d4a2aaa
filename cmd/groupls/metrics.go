package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

// writeMetrics writes all registered metrics in the text exposition format,
// for consumption by the node_exporter textfile collector.
func writeMetrics(filename string) error {
	return prometheus.WriteToTextfile(filename, prometheus.DefaultGatherer)
}
