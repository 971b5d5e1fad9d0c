package cleanup

import (
	"context"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// CleanupSecurityGroupIfOrphaned deletes the network security group shared
// by the nodes of group once no network interface is attached to it anymore.
// A missing security group counts as cleaned up. A security group still in
// use is left untouched and reported as false.
func (c *Cleaner) CleanupSecurityGroupIfOrphaned(ctx context.Context, resourceGroup, group string) bool {
	name := c.naming.SharedNameForGroup(group)

	sg, err := c.api.SecurityGroups.Get(ctx, resourceGroup, name)
	if err != nil {
		c.logger.Errorf(ctx, err, "failed to get security group %#q in resource group %#q", name, resourceGroup)
		return false
	}

	if sg == nil {
		c.logger.Debugf(ctx, "did not find security group %#q in resource group %#q", name, resourceGroup)
		return true
	}

	if !c.policy.IsOrphanedSecurityGroup(sg) {
		c.logger.Debugf(ctx, "security group %#q in resource group %#q still has network interfaces attached", name, resourceGroup)
		return false
	}

	c.logger.Debugf(ctx, "deleting orphaned security group %#q in resource group %#q", name, resourceGroup)

	handle, err := c.api.SecurityGroups.Delete(ctx, resourceGroup, name)
	if azureapi.IsInUse(err) {
		c.warn(ctx, err, "security group %#q in resource group %#q is still in use", name, resourceGroup)
		return false
	} else if err != nil {
		c.logger.Errorf(ctx, err, "failed to delete security group %#q in resource group %#q", name, resourceGroup)
		return false
	}

	ok := c.resourceDeleted.Await(ctx, handle)
	c.metrics.RecordDeletion(kindSecurityGroup, ok)
	if !ok {
		c.warn(ctx, nil, "security group %#q in resource group %#q was not confirmed deleted", name, resourceGroup)
		return false
	}

	if sg.ID != nil {
		ref := idref.IDReference{ResourceGroup: resourceGroup, Name: name, ID: *sg.ID}
		if !c.notInResourceGroup.Await(ctx, ref) {
			c.warn(ctx, nil, "security group %#q is still listed in resource group %#q", name, resourceGroup)
		}
	}

	c.logger.Debugf(ctx, "deleted orphaned security group %#q in resource group %#q", name, resourceGroup)

	return true
}
