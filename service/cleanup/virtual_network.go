package cleanup

import (
	"context"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// CleanupVirtualNetworks deletes every managed virtual network of the
// resource group. Virtual networks still in use by other nodes are skipped.
// The scan does not stop on errors. Virtual networks which failed to delete
// or whose deletion was not confirmed in time are returned as one error once
// every virtual network was visited.
func (c *Cleaner) CleanupVirtualNetworks(ctx context.Context, resourceGroup string) error {
	vnets, err := c.api.VirtualNetworks.List(ctx, resourceGroup)
	if err != nil {
		return microerror.Mask(err)
	}

	var failed []string
	for _, vnet := range vnets {
		if !c.policy.IsManagedVirtualNetwork(vnet) {
			continue
		}

		name := to.String(vnet.Name)

		c.logger.Debugf(ctx, "deleting virtual network %#q in resource group %#q", name, resourceGroup)

		handle, err := c.api.VirtualNetworks.Delete(ctx, resourceGroup, name)
		if azureapi.IsInUse(err) {
			c.warn(ctx, err, "skipping virtual network %#q in resource group %#q, it is still in use", name, resourceGroup)
			continue
		} else if err != nil {
			c.logger.Errorf(ctx, err, "failed to delete virtual network %#q in resource group %#q", name, resourceGroup)
			failed = append(failed, name)
			continue
		}

		ok := c.resourceDeleted.Await(ctx, handle)
		c.metrics.RecordDeletion(kindVirtualNetwork, ok)
		if !ok {
			c.warn(ctx, nil, "virtual network %#q in resource group %#q was not confirmed deleted", name, resourceGroup)
			failed = append(failed, name)
			continue
		}

		if vnet.ID != nil {
			ref := idref.IDReference{ResourceGroup: resourceGroup, Name: name, ID: *vnet.ID}
			if !c.notInResourceGroup.Await(ctx, ref) {
				c.logger.Debugf(ctx, "virtual network %#q is still listed in resource group %#q", name, resourceGroup)
			}
		}

		c.logger.Debugf(ctx, "deleted virtual network %#q in resource group %#q", name, resourceGroup)
	}

	if len(failed) > 0 {
		return microerror.Maskf(executionFailedError, "failed to delete virtual networks %s in resource group %#q", strings.Join(failed, ", "), resourceGroup)
	}

	return nil
}
