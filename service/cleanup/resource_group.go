package cleanup

import (
	"context"
	"strings"

	"github.com/Azure/go-autorest/autorest/to"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
)

// DeleteResourceGroupIfEmpty deletes the resource group when no resource is
// attached to it anymore. A non empty group is never deleted and yields
// false. A group which does not exist counts as deleted.
func (c *Cleaner) DeleteResourceGroupIfEmpty(ctx context.Context, resourceGroup string) (bool, error) {
	attached, err := c.api.ResourceGroups.ListResources(ctx, resourceGroup)
	if azureapi.IsNotFound(err) {
		c.logger.Debugf(ctx, "did not find resource group %#q", resourceGroup)
		return true, nil
	} else if err != nil {
		return false, microerror.Mask(err)
	}

	if len(attached) > 0 {
		var names []string
		for _, r := range attached {
			names = append(names, to.String(r.Name))
		}

		c.warn(ctx, nil, "not deleting resource group %#q, it still contains %s", resourceGroup, strings.Join(names, ", "))

		return false, nil
	}

	c.logger.Debugf(ctx, "deleting resource group %#q", resourceGroup)

	handle, err := c.api.ResourceGroups.Delete(ctx, resourceGroup)
	if err != nil {
		return false, microerror.Mask(err)
	}

	deleted := c.resourceDeleted.Await(ctx, handle)
	c.metrics.RecordDeletion(kindResourceGroup, deleted)
	if !deleted {
		c.warn(ctx, nil, "resource group %#q was not confirmed deleted", resourceGroup)
		return false, nil
	}

	c.logger.Debugf(ctx, "deleted resource group %#q", resourceGroup)

	return true, nil
}
