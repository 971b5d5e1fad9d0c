package cleanup

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"

	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// CleanupVirtualMachineNICs deletes every network interface of vm and the
// autogenerated public IPs attached to them. It returns false if anything in
// scope could not be confirmed deleted.
func (c *Cleaner) CleanupVirtualMachineNICs(ctx context.Context, vm *compute.VirtualMachine) bool {
	deleted := true

	for _, id := range networkInterfaceIDs(vm) {
		ref, err := idref.Parse(id)
		if err != nil {
			c.warn(ctx, err, "failed to parse network interface ID %#q", id)
			deleted = false
			continue
		}

		nic, err := c.api.Interfaces.Get(ctx, ref.ResourceGroup, ref.Name)
		if err != nil {
			c.warn(ctx, err, "failed to get network interface %#q", ref)
			deleted = false
			continue
		}

		if nic == nil {
			c.logger.Debugf(ctx, "did not find network interface %#q", ref)
			continue
		}

		// The public IPs can only be found through the network interface, so
		// they are captured before it is gone.
		publicIPs := publicIPAddressIDs(nic)

		c.logger.Debugf(ctx, "deleting network interface %#q", ref)

		handle, err := c.api.Interfaces.Delete(ctx, ref.ResourceGroup, ref.Name)
		if err != nil {
			c.warn(ctx, err, "failed to delete network interface %#q", ref)
			deleted = false
			continue
		}

		ok := c.resourceDeleted.Await(ctx, handle)
		c.metrics.RecordDeletion(kindNetworkInterface, ok)
		if ok {
			c.logger.Debugf(ctx, "deleted network interface %#q", ref)
		} else {
			c.warn(ctx, nil, "network interface %#q was not confirmed deleted", ref)
			deleted = false
		}

		for _, ipID := range publicIPs {
			if !c.cleanupPublicIP(ctx, ipID) {
				deleted = false
			}
		}
	}

	return deleted
}

func (c *Cleaner) cleanupPublicIP(ctx context.Context, id string) bool {
	ref, err := idref.Parse(id)
	if err != nil {
		c.warn(ctx, err, "failed to parse public IP ID %#q", id)
		return false
	}

	ip, err := c.api.PublicIPAddresses.Get(ctx, ref.ResourceGroup, ref.Name)
	if err != nil {
		c.warn(ctx, err, "failed to get public IP %#q", ref)
		return false
	}

	if ip == nil {
		c.logger.Debugf(ctx, "did not find public IP %#q", ref)
		return true
	}

	if !c.policy.ShouldDeletePublicIP(ip) {
		c.logger.Debugf(ctx, "keeping public IP %#q, it was not autogenerated", ref)
		return true
	}

	c.logger.Debugf(ctx, "deleting public IP %#q", ref)

	handle, err := c.api.PublicIPAddresses.Delete(ctx, ref.ResourceGroup, ref.Name)
	if err != nil {
		c.warn(ctx, err, "failed to delete public IP %#q", ref)
		return false
	}

	ok := c.resourceDeleted.Await(ctx, handle)
	c.metrics.RecordDeletion(kindPublicIPAddress, ok)
	if !ok {
		c.warn(ctx, nil, "public IP %#q was not confirmed deleted", ref)
		return false
	}

	c.logger.Debugf(ctx, "deleted public IP %#q", ref)

	return true
}
