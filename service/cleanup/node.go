package cleanup

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/giantswarm/microerror"
	"golang.org/x/sync/errgroup"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// CleanupNode deletes the virtual machine identified by the slash encoded
// node ID together with its network interfaces, autogenerated public IPs,
// managed disks and orphaned availability set. Managed virtual networks of
// the resource group are removed afterwards when nothing uses them anymore.
//
// The returned value only reflects whether the virtual machine itself was
// deleted. A node whose virtual machine does not exist is considered cleaned
// up. Failures while cleaning up dependent resources are logged.
func (c *Cleaner) CleanupNode(ctx context.Context, id string) (bool, error) {
	nodeID, err := idref.ParseNodeID(id)
	if err != nil {
		return false, microerror.Mask(err)
	}

	c.logger.Debugf(ctx, "cleaning up node %#q", nodeID)

	vm, err := c.api.VirtualMachines.Get(ctx, nodeID.ResourceGroup, nodeID.Name)
	if err != nil {
		return false, microerror.Mask(err)
	}

	if vm == nil {
		c.logger.Debugf(ctx, "did not find virtual machine %#q", nodeID)
		c.logger.Debugf(ctx, "node %#q is already cleaned up", nodeID)
		return true, nil
	}

	deleted, err := c.deleteVirtualMachine(ctx, nodeID, vm)
	if err != nil {
		return false, microerror.Mask(err)
	}

	c.cascade(ctx, nodeID, vm)

	err = c.CleanupVirtualNetworks(ctx, nodeID.ResourceGroup)
	if err != nil {
		c.logger.Errorf(ctx, err, "failed to clean up virtual networks in resource group %#q", nodeID.ResourceGroup)
	}

	c.logger.Debugf(ctx, "cleaned up node %#q", nodeID)

	return deleted, nil
}

func (c *Cleaner) deleteVirtualMachine(ctx context.Context, nodeID idref.NodeID, vm *compute.VirtualMachine) (bool, error) {
	c.logger.Debugf(ctx, "deleting virtual machine %#q", nodeID)

	handle, err := c.api.VirtualMachines.Delete(ctx, nodeID.ResourceGroup, nodeID.Name)
	if err != nil {
		return false, microerror.Mask(err)
	}

	deleted := c.resourceDeleted.Await(ctx, handle)
	c.metrics.RecordDeletion(kindVirtualMachine, deleted)

	if deleted {
		c.logger.Debugf(ctx, "deleted virtual machine %#q", nodeID)
	} else {
		c.warn(ctx, nil, "virtual machine %#q was not confirmed deleted", nodeID)
	}

	if vm.ID != nil {
		ref := idref.IDReference{ResourceGroup: nodeID.ResourceGroup, Name: nodeID.Name, ID: *vm.ID}
		if !c.notInResourceGroup.Await(ctx, ref) {
			c.logger.Debugf(ctx, "virtual machine %#q is still listed in its resource group", nodeID)
		}
	}

	return deleted, nil
}

// cascade cleans up everything the virtual machine snapshot points to. The
// snapshot was taken before the virtual machine got deleted.
func (c *Cleaner) cascade(ctx context.Context, nodeID idref.NodeID, vm *compute.VirtualMachine) {
	var nicsDeleted, disksDeleted bool

	if c.parallel {
		var g errgroup.Group

		g.Go(func() error {
			nicsDeleted = c.CleanupVirtualMachineNICs(ctx, vm)
			return nil
		})
		g.Go(func() error {
			disksDeleted = c.CleanupManagedDisks(ctx, vm)
			return nil
		})

		_ = g.Wait()
	} else {
		nicsDeleted = c.CleanupVirtualMachineNICs(ctx, vm)
		disksDeleted = c.CleanupManagedDisks(ctx, vm)
	}

	setDeleted := c.CleanupAvailabilitySetIfOrphaned(ctx, vm)

	if !nicsDeleted {
		c.warn(ctx, nil, "network interfaces of node %#q were not fully cleaned up", nodeID)
	}
	if !disksDeleted {
		c.warn(ctx, nil, "managed disks of node %#q were not fully cleaned up", nodeID)
	}
	if !setDeleted {
		c.warn(ctx, nil, "availability set of node %#q was not cleaned up", nodeID)
	}
}
