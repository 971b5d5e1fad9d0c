package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

const (
	DefaultNotFoundInitialInterval = 1 * time.Second
	DefaultNotFoundMaxInterval     = 15 * time.Second
	DefaultNotFoundMaxWait         = 20 * time.Minute
	DefaultNotFoundMaxRetries      = 1200
)

type NotFoundConfig struct {
	Logger micrologger.Logger

	// InitialInterval is the first pause between two existence checks. It
	// grows exponentially up to MaxInterval.
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxWait         time.Duration
	MaxRetries      uint64
}

// NotFound polls an existence check with an escalating interval until the
// resource can no longer be fetched.
type NotFound struct {
	logger micrologger.Logger

	initialInterval time.Duration
	maxInterval     time.Duration
	maxWait         time.Duration
	maxRetries      uint64
}

func NewNotFound(config NotFoundConfig) (*NotFound, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.InitialInterval == 0 {
		config.InitialInterval = DefaultNotFoundInitialInterval
	}
	if config.MaxInterval == 0 {
		config.MaxInterval = DefaultNotFoundMaxInterval
	}
	if config.MaxWait == 0 {
		config.MaxWait = DefaultNotFoundMaxWait
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = DefaultNotFoundMaxRetries
	}

	if config.MaxInterval < config.InitialInterval {
		return nil, microerror.Maskf(invalidConfigError, "%T.MaxInterval must not be smaller than %T.InitialInterval", config, config)
	}

	n := &NotFound{
		logger: config.Logger,

		initialInterval: config.InitialInterval,
		maxInterval:     config.MaxInterval,
		maxWait:         config.MaxWait,
		maxRetries:      config.MaxRetries,
	}

	return n, nil
}

// Await returns true once exists reports ref as gone. Errors returned by
// exists are retried like a still existing resource.
func (p *NotFound) Await(ctx context.Context, ref idref.IDReference, exists ExistsFunc) bool {
	var b backoff.BackOff
	{
		e := backoff.NewExponentialBackOff()
		e.InitialInterval = p.initialInterval
		e.MaxInterval = p.maxInterval
		e.MaxElapsedTime = p.maxWait
		e.Reset()

		b = backoff.WithContext(backoff.WithMaxRetries(e, p.maxRetries), ctx)
	}

	o := func() error {
		ok, err := exists(ctx, ref)
		if err != nil {
			return microerror.Mask(err)
		}

		if ok {
			return microerror.Maskf(stillPresentError, "resource %#q in resource group %#q still exists", ref.Name, ref.ResourceGroup)
		}

		return nil
	}
	n := func(err error, d time.Duration) {
		p.logger.Debugf(ctx, "resource %#q not gone yet, checking again in %s", ref.Name, d)
	}

	err := backoff.RetryNotify(o, b, n)
	if err != nil {
		p.logger.LogCtx(ctx, "level", "warning", "message", fmt.Sprintf("resource %#q in resource group %#q still exists", ref.Name, ref.ResourceGroup), "stack", microerror.JSON(err))
		return false
	}

	return true
}
