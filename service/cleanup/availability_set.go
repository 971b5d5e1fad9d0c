package cleanup

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// CleanupAvailabilitySetIfOrphaned deletes the availability set of vm when it
// is managed and no virtual machine is left in it. Anything else is left
// untouched and reported as success.
func (c *Cleaner) CleanupAvailabilitySetIfOrphaned(ctx context.Context, vm *compute.VirtualMachine) bool {
	id := availabilitySetID(vm)
	if id == "" {
		return true
	}

	ref, err := idref.Parse(id)
	if err != nil {
		c.warn(ctx, err, "failed to parse availability set ID %#q", id)
		return false
	}

	set, err := c.api.AvailabilitySets.Get(ctx, ref.ResourceGroup, ref.Name)
	if err != nil {
		c.warn(ctx, err, "failed to get availability set %#q", ref)
		return false
	}

	if !c.policy.IsOrphanedAvailabilitySet(set) {
		c.logger.Debugf(ctx, "keeping availability set %#q", ref)
		return true
	}

	c.logger.Debugf(ctx, "deleting orphaned availability set %#q", ref)

	handle, err := c.api.AvailabilitySets.Delete(ctx, ref.ResourceGroup, ref.Name)
	if err != nil {
		c.warn(ctx, err, "failed to delete availability set %#q", ref)
		return false
	}

	ok := c.resourceDeleted.Await(ctx, handle)
	c.metrics.RecordDeletion(kindAvailabilitySet, ok)
	if !ok {
		c.warn(ctx, nil, "availability set %#q was not confirmed deleted", ref)
		return false
	}

	c.logger.Debugf(ctx, "deleted orphaned availability set %#q", ref)

	return true
}
