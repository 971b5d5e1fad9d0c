package collector

import (
	"sync"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
)

type Config struct {
	Logger micrologger.Logger
}

type AzureAPIMetricsCollector struct {
	logger micrologger.Logger

	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec

	mutex sync.RWMutex
}

func NewAzureAPIMetricsCollector(config Config) (*AzureAPIMetricsCollector, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	c := &AzureAPIMetricsCollector{
		logger: config.Logger,

		counters:   map[string]*prometheus.CounterVec{},
		gauges:     map[string]*prometheus.GaugeVec{},
		histograms: map[string]*prometheus.HistogramVec{},
	}

	return c, nil
}

func (c *AzureAPIMetricsCollector) Describe(ch chan<- *prometheus.Desc) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, v := range c.counters {
		v.Describe(ch)
	}
	for _, v := range c.gauges {
		v.Describe(ch)
	}
	for _, v := range c.histograms {
		v.Describe(ch)
	}

	return nil
}

func (c *AzureAPIMetricsCollector) Collect(ch chan<- prometheus.Metric) error {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	for _, v := range c.counters {
		v.Collect(ch)
	}
	for _, v := range c.gauges {
		v.Collect(ch)
	}
	for _, v := range c.histograms {
		v.Collect(ch)
	}

	return nil
}

func (c *AzureAPIMetricsCollector) GetCounterVec(opts prometheus.Opts, labelNames []string) *prometheus.CounterVec {
	k := metricKey(opts)

	c.mutex.RLock()
	counter, exists := c.counters[k]
	c.mutex.RUnlock()
	if exists {
		return counter
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	counter, exists = c.counters[k]
	if !exists {
		counter = prometheus.NewCounterVec(prometheus.CounterOpts(opts), labelNames)
		c.counters[k] = counter
	}

	return counter
}

func (c *AzureAPIMetricsCollector) GetGaugeVec(opts prometheus.Opts, labelNames []string) *prometheus.GaugeVec {
	k := metricKey(opts)

	c.mutex.RLock()
	gauge, exists := c.gauges[k]
	c.mutex.RUnlock()
	if exists {
		return gauge
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	gauge, exists = c.gauges[k]
	if !exists {
		gauge = prometheus.NewGaugeVec(prometheus.GaugeOpts(opts), labelNames)
		c.gauges[k] = gauge
	}

	return gauge
}

func (c *AzureAPIMetricsCollector) GetHistogramVec(opts prometheus.Opts, labelNames []string) *prometheus.HistogramVec {
	k := metricKey(opts)

	c.mutex.RLock()
	histogram, exists := c.histograms[k]
	c.mutex.RUnlock()
	if exists {
		return histogram
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	histogram, exists = c.histograms[k]
	if !exists {
		o := prometheus.HistogramOpts{
			Namespace:   opts.Namespace,
			Subsystem:   opts.Subsystem,
			Name:        opts.Name,
			Help:        opts.Help,
			ConstLabels: opts.ConstLabels,
		}

		histogram = prometheus.NewHistogramVec(o, labelNames)
		c.histograms[k] = histogram
	}

	return histogram
}

func metricKey(opts prometheus.Opts) string {
	return prometheus.BuildFQName(opts.Namespace, opts.Subsystem, opts.Name)
}
