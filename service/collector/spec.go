package collector

import "github.com/prometheus/client_golang/prometheus"

// AzureAPIMetrics hands out lazily created metric vectors keyed by namespace
// and name so that every Azure client shares the same series.
type AzureAPIMetrics interface {
	GetCounterVec(opts prometheus.Opts, labelNames []string) *prometheus.CounterVec
	GetGaugeVec(opts prometheus.Opts, labelNames []string) *prometheus.GaugeVec
	GetHistogramVec(opts prometheus.Opts, labelNames []string) *prometheus.HistogramVec
}
