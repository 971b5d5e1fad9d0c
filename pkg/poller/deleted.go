package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/giantswarm/backoff"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
)

type DeletedConfig struct {
	Logger micrologger.Logger

	// Interval is the pause between two polls of the operation.
	Interval time.Duration
	// MaxWait is the total time budget for the operation to finish.
	MaxWait time.Duration
}

// Deleted polls delete operations until they finish.
type Deleted struct {
	logger micrologger.Logger

	interval time.Duration
	maxWait  time.Duration
}

func NewDeleted(config DeletedConfig) (*Deleted, error) {
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.Interval <= 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.Interval must be greater than zero", config)
	}
	if config.MaxWait < config.Interval {
		return nil, microerror.Maskf(invalidConfigError, "%T.MaxWait must not be smaller than %T.Interval", config, config)
	}

	d := &Deleted{
		logger: config.Logger,

		interval: config.Interval,
		maxWait:  config.MaxWait,
	}

	return d, nil
}

// Await returns true once the operation behind handle finished successfully.
// A nil handle means there is nothing to wait for. Failed operations and
// operations still running when the time budget is exhausted yield false.
func (d *Deleted) Await(ctx context.Context, handle azureapi.OperationHandle) bool {
	if handle == nil {
		return true
	}

	o := func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(microerror.Mask(ctx.Err()))
		}

		done, err := handle.Done(ctx)
		if azureapi.IsOperationFailed(err) {
			return backoff.Permanent(microerror.Mask(err))
		} else if err != nil {
			return microerror.Mask(err)
		}

		if !done {
			return microerror.Mask(pendingError)
		}

		return nil
	}
	b := backoff.NewConstant(d.maxWait, d.interval)
	n := backoff.NewNotifier(d.logger, ctx)

	err := backoff.RetryNotify(o, b, n)
	if err != nil {
		d.logger.LogCtx(ctx, "level", "warning", "message", fmt.Sprintf("operation %#q did not complete", handle.PollingURL()), "stack", microerror.JSON(err))
		return false
	}

	return true
}
