package cleanup

import (
	"context"
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

type pendingDiskDeletion struct {
	ref    idref.IDReference
	handle azureapi.OperationHandle
}

// CleanupManagedDisks deletes the OS disk and the data disks of vm. The
// result only reflects whether every issued delete operation finished
// successfully. Disks which can still be fetched or which are still listed
// in their resource group afterwards are logged.
func (c *Cleaner) CleanupManagedDisks(ctx context.Context, vm *compute.VirtualMachine) bool {
	var refs []idref.IDReference
	var notDeleted []string
	{
		seen := map[idref.IDReference]bool{}
		for _, id := range managedDiskIDs(vm) {
			ref, err := idref.Parse(id)
			if err != nil {
				c.warn(ctx, err, "failed to parse managed disk ID %#q", id)
				notDeleted = append(notDeleted, id)
				continue
			}

			if seen[ref] {
				continue
			}
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	var issued []idref.IDReference
	var pending []pendingDiskDeletion
	for _, ref := range refs {
		c.logger.Debugf(ctx, "deleting managed disk %#q", ref)

		handle, err := c.api.Disks.Delete(ctx, ref.ResourceGroup, ref.Name)
		if err != nil {
			c.warn(ctx, err, "failed to delete managed disk %#q", ref)
			notDeleted = append(notDeleted, ref.Name)
			continue
		}

		issued = append(issued, ref)

		if handle == nil {
			c.metrics.RecordDeletion(kindDisk, true)
			continue
		}

		pending = append(pending, pendingDiskDeletion{ref: ref, handle: handle})
	}

	for _, p := range pending {
		ok := c.resourceDeleted.Await(ctx, p.handle)
		c.metrics.RecordDeletion(kindDisk, ok)
		if !ok {
			notDeleted = append(notDeleted, p.ref.Name)
		}
	}

	if len(notDeleted) > 0 {
		c.warn(ctx, nil, "managed disks %s were not confirmed deleted", strings.Join(notDeleted, ", "))
	}

	// A finished delete operation does not mean the disk can no longer be
	// fetched.
	for _, ref := range issued {
		if !c.resourceGone.Await(ctx, ref, c.diskExists) {
			c.warn(ctx, nil, "managed disk %#q can still be fetched", ref)
		}
	}

	var stillListed []string
	for _, ref := range issued {
		if !c.notInResourceGroup.Await(ctx, ref) {
			stillListed = append(stillListed, ref.Name)
		}
	}

	if len(stillListed) > 0 {
		c.warn(ctx, nil, "managed disks %s are still listed in their resource group", strings.Join(stillListed, ", "))
	}

	return len(notDeleted) == 0
}

func (c *Cleaner) diskExists(ctx context.Context, ref idref.IDReference) (bool, error) {
	disk, err := c.api.Disks.Get(ctx, ref.ResourceGroup, ref.Name)
	if err != nil {
		return false, microerror.Mask(err)
	}

	return disk != nil, nil
}
