package senddecorator

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Azure/go-autorest/autorest"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/giantswarm/azure-node-cleanup/service/collector"
)

const (
	metricsNamespace = "azure_node_cleanup_azure_api"

	remainingReadsHeaderName  = "x-ms-ratelimit-remaining-subscription-reads"
	remainingWritesHeaderName = "x-ms-ratelimit-remaining-subscription-writes"
)

// MetricsDecorator counts and times every call made through the decorated
// client. name identifies the Azure API service, e.g. "virtual_machines".
func MetricsDecorator(name, subscriptionID string, metricsCollector collector.AzureAPIMetrics) autorest.SendDecorator {
	lowerName := strings.ToLower(name)

	totalCallsOpts := prometheus.Opts{Namespace: metricsNamespace, Name: "total_calls", Help: "Total number of API calls"}
	ratelimitedCallsOpts := prometheus.Opts{Namespace: metricsNamespace, Name: "ratelimited_calls", Help: "Total number of API calls ratelimited"}
	errorRespOpts := prometheus.Opts{Namespace: metricsNamespace, Name: "error_resp", Help: "Total number of API error responses"}
	callLatencyOpts := prometheus.Opts{Namespace: metricsNamespace, Name: "req_latency", Help: "API request latency"}
	remainingReadsOpts := prometheus.Opts{Namespace: metricsNamespace, Subsystem: "rate_limit", Name: "reads", Help: "Remaining number of reads allowed"}
	remainingWritesOpts := prometheus.Opts{Namespace: metricsNamespace, Subsystem: "rate_limit", Name: "writes", Help: "Remaining number of writes allowed"}

	labels := prometheus.Labels{
		"api_service":     lowerName,
		"subscription_id": subscriptionID,
	}

	labelNames := []string{"api_service", "subscription_id"}
	subscriptionLabelNames := []string{"subscription_id"}

	return func(s autorest.Sender) autorest.Sender {
		return autorest.SenderFunc(func(r *http.Request) (*http.Response, error) {
			start := time.Now()

			// Pass the request to next SendDecorator.
			resp, err := s.Do(r)

			elapsed := time.Since(start)

			metricsCollector.GetCounterVec(totalCallsOpts, labelNames).With(labels).Inc()
			metricsCollector.GetHistogramVec(callLatencyOpts, labelNames).With(labels).Observe(elapsed.Seconds())

			if resp != nil {
				observeRemaining(resp.Header, remainingReadsHeaderName, metricsCollector.GetGaugeVec(remainingReadsOpts, subscriptionLabelNames), subscriptionID)
				observeRemaining(resp.Header, remainingWritesHeaderName, metricsCollector.GetGaugeVec(remainingWritesOpts, subscriptionLabelNames), subscriptionID)
			}

			if resp != nil && resp.StatusCode >= 400 {
				metricsCollector.GetCounterVec(errorRespOpts, labelNames).With(labels).Inc()

				if resp.StatusCode == http.StatusTooManyRequests {
					metricsCollector.GetCounterVec(ratelimitedCallsOpts, labelNames).With(labels).Inc()
				}
			}

			return resp, err
		})
	}
}

// observeRemaining records the remaining request budget Azure Resource Manager
// reports per subscription. Responses without the header leave the gauge
// untouched.
func observeRemaining(h http.Header, name string, gauge *prometheus.GaugeVec, subscriptionID string) {
	v := h.Get(name)
	if v == "" {
		return
	}

	remaining, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}

	gauge.WithLabelValues(subscriptionID).Set(remaining)
}
