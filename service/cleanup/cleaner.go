// Package cleanup tears down an Azure virtual machine together with the
// resources created on its behalf.
package cleanup

import (
	"context"
	"fmt"

	"github.com/giantswarm/microerror"
	"github.com/giantswarm/micrologger"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/naming"
	"github.com/giantswarm/azure-node-cleanup/pkg/ownership"
	"github.com/giantswarm/azure-node-cleanup/pkg/poller"
)

type Config struct {
	API                *azureapi.API
	Logger             micrologger.Logger
	Metrics            DeletionRecorder
	Naming             naming.Convention
	NotInResourceGroup poller.NotInResourceGroup
	ResourceDeleted    poller.ResourceDeleted
	ResourceGone       poller.ResourceGone

	Policy ownership.Policy
	// Parallel runs network interface and disk cleanup of a node
	// concurrently.
	Parallel bool
}

type Cleaner struct {
	api                *azureapi.API
	logger             micrologger.Logger
	metrics            DeletionRecorder
	naming             naming.Convention
	notInResourceGroup poller.NotInResourceGroup
	resourceDeleted    poller.ResourceDeleted
	resourceGone       poller.ResourceGone

	policy   ownership.Policy
	parallel bool
}

func New(config Config) (*Cleaner, error) {
	if config.API == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.API must not be empty", config)
	}
	if config.Logger == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Logger must not be empty", config)
	}
	if config.Metrics == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Metrics must not be empty", config)
	}
	if config.Naming == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.Naming must not be empty", config)
	}
	if config.NotInResourceGroup == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.NotInResourceGroup must not be empty", config)
	}
	if config.ResourceDeleted == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.ResourceDeleted must not be empty", config)
	}
	if config.ResourceGone == nil {
		return nil, microerror.Maskf(invalidConfigError, "%T.ResourceGone must not be empty", config)
	}

	err := validateAPI(config.API)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	if config.Policy.ManagedTagKey == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Policy.ManagedTagKey must not be empty", config)
	}
	if config.Policy.AutogeneratedIPTagKey == "" {
		return nil, microerror.Maskf(invalidConfigError, "%T.Policy.AutogeneratedIPTagKey must not be empty", config)
	}

	c := &Cleaner{
		api:                config.API,
		logger:             config.Logger,
		metrics:            config.Metrics,
		naming:             config.Naming,
		notInResourceGroup: config.NotInResourceGroup,
		resourceDeleted:    config.ResourceDeleted,
		resourceGone:       config.ResourceGone,

		policy:   config.Policy,
		parallel: config.Parallel,
	}

	return c, nil
}

func validateAPI(api *azureapi.API) error {
	missing := func(field string) error {
		return microerror.Maskf(invalidConfigError, "%T.%s must not be empty", api, field)
	}

	switch {
	case api.AvailabilitySets == nil:
		return missing("AvailabilitySets")
	case api.Disks == nil:
		return missing("Disks")
	case api.Interfaces == nil:
		return missing("Interfaces")
	case api.PublicIPAddresses == nil:
		return missing("PublicIPAddresses")
	case api.ResourceGroups == nil:
		return missing("ResourceGroups")
	case api.SecurityGroups == nil:
		return missing("SecurityGroups")
	case api.VirtualMachines == nil:
		return missing("VirtualMachines")
	case api.VirtualNetworks == nil:
		return missing("VirtualNetworks")
	}

	return nil
}

func (c *Cleaner) warn(ctx context.Context, err error, format string, params ...interface{}) {
	if err == nil {
		c.logger.LogCtx(ctx, "level", "warning", "message", fmt.Sprintf(format, params...))
		return
	}

	c.logger.LogCtx(ctx, "level", "warning", "message", fmt.Sprintf(format, params...), "stack", microerror.JSON(err))
}
