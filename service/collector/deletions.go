package collector

import (
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	deletionsNamespace = "azure_node_cleanup"
	deletionsSubsystem = "deletion"

	outcomeConfirmed   = "confirmed"
	outcomeUnconfirmed = "unconfirmed"
)

type DeletionsConfig struct {
	Logger micrologger.Logger
}

// Deletions counts every resource deletion issued during node cleanup, split
// by resource kind and by whether the deletion was confirmed in time.
type Deletions struct {
	logger micrologger.Logger

	total *prometheus.CounterVec
}

func NewDeletions(config DeletionsConfig) (*Deletions, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	d := &Deletions{
		logger: config.Logger,

		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: deletionsNamespace,
				Subsystem: deletionsSubsystem,
				Name:      "total",
				Help:      "Total number of resource deletions issued by node cleanup.",
			},
			[]string{"kind", "outcome"},
		),
	}

	return d, nil
}

func (d *Deletions) RecordDeletion(kind string, deleted bool) {
	outcome := outcomeUnconfirmed
	if deleted {
		outcome = outcomeConfirmed
	}

	d.total.WithLabelValues(kind, outcome).Inc()
}

func (d *Deletions) Collect(ch chan<- prometheus.Metric) error {
	d.total.Collect(ch)
	return nil
}

func (d *Deletions) Describe(ch chan<- *prometheus.Desc) error {
	d.total.Describe(ch)
	return nil
}
