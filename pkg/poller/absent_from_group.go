package poller

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/giantswarm/backoff"
	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

type AbsentFromGroupConfig struct {
	Lister Lister
	Logger micrologger.Logger

	// Interval is the pause between two listings of the resource group.
	Interval time.Duration
	// MaxWait is the total time budget for the resource to disappear.
	MaxWait time.Duration
}

// AbsentFromGroup polls the listing of a resource group until a given
// resource is no longer part of it. Deleted resources keep showing up in the
// listing for a while after their delete operation finished.
type AbsentFromGroup struct {
	lister Lister
	logger micrologger.Logger

	interval time.Duration
	maxWait  time.Duration
}

func NewAbsentFromGroup(config AbsentFromGroupConfig) (*AbsentFromGroup, error) {
	if config.Lister == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Lister must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}

	if config.Interval <= 0 {
		return nil, microerror.Maskf(invalidConfigError, "%T.Interval must be greater than zero", config)
	}
	if config.MaxWait < config.Interval {
		return nil, microerror.Maskf(invalidConfigError, "%T.MaxWait must not be smaller than %T.Interval", config, config)
	}

	a := &AbsentFromGroup{
		lister: config.Lister,
		logger: config.Logger,

		interval: config.Interval,
		maxWait:  config.MaxWait,
	}

	return a, nil
}

// Await returns true once ref is no longer listed in its resource group.
// Running out of time yields false, not true: a resource still listed after
// the time budget is reported as such. Callers only log the result, the
// outcome of a cleanup never depends on it. Listing errors are retried.
func (a *AbsentFromGroup) Await(ctx context.Context, ref idref.IDReference) bool {
	o := func() error {
		if ctx.Err() != nil {
			return backoff.Permanent(microerror.Mask(ctx.Err()))
		}

		listed, err := a.lister.ListResources(ctx, ref.ResourceGroup)
		if azureapi.IsNotFound(err) {
			// The whole group is gone.
			return nil
		} else if err != nil {
			return microerror.Mask(err)
		}

		for _, r := range listed {
			if r.ID != nil && strings.EqualFold(*r.ID, ref.ID) {
				return microerror.Maskf(stillPresentError, "resource %#q is still listed in resource group %#q", ref.Name, ref.ResourceGroup)
			}
		}

		return nil
	}
	b := backoff.NewConstant(a.maxWait, a.interval)
	n := backoff.NewNotifier(a.logger, ctx)

	err := backoff.RetryNotify(o, b, n)
	if err != nil {
		a.logger.LogCtx(ctx, "level", "warning", "message", fmt.Sprintf("resource %#q did not disappear from resource group %#q", ref.Name, ref.ResourceGroup), "stack", microerror.JSON(err))
		return false
	}

	return true
}
