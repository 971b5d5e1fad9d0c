package azureapi

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/giantswarm/microerror"

	"github.com/giantswarm/azure-node-cleanup/client"
)

// API bundles the resource APIs needed to tear down a node.
type API struct {
	AvailabilitySets  AvailabilitySets
	Disks             Disks
	Interfaces        Interfaces
	PublicIPAddresses PublicIPAddresses
	ResourceGroups    ResourceGroups
	SecurityGroups    SecurityGroups
	VirtualMachines   VirtualMachines
	VirtualNetworks   VirtualNetworks
}

// New wraps the clients of the given client set.
func New(cs *client.AzureClientSet) *API {
	return &API{
		AvailabilitySets:  &availabilitySets{client: cs.AvailabilitySetsClient},
		Disks:             &disks{client: cs.DisksClient},
		Interfaces:        &interfaces{client: cs.InterfacesClient},
		PublicIPAddresses: &publicIPAddresses{client: cs.PublicIPAddressesClient},
		ResourceGroups:    &resourceGroups{groups: cs.GroupsClient, resources: cs.ResourcesClient},
		SecurityGroups:    &securityGroups{client: cs.SecurityGroupsClient},
		VirtualMachines:   &virtualMachines{client: cs.VirtualMachinesClient},
		VirtualNetworks:   &virtualNetworks{client: cs.VirtualNetworksClient},
	}
}

type virtualMachines struct {
	client *compute.VirtualMachinesClient
}

func (a *virtualMachines) Get(ctx context.Context, resourceGroupName, vmName string) (*compute.VirtualMachine, error) {
	vm, err := a.client.Get(ctx, resourceGroupName, vmName, "")
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &vm, nil
}

func (a *virtualMachines) Delete(ctx context.Context, resourceGroupName, vmName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, vmName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type interfaces struct {
	client *network.InterfacesClient
}

func (a *interfaces) Get(ctx context.Context, resourceGroupName, nicName string) (*network.Interface, error) {
	nic, err := a.client.Get(ctx, resourceGroupName, nicName, "")
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &nic, nil
}

func (a *interfaces) Delete(ctx context.Context, resourceGroupName, nicName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, nicName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type publicIPAddresses struct {
	client *network.PublicIPAddressesClient
}

func (a *publicIPAddresses) Get(ctx context.Context, resourceGroupName, ipName string) (*network.PublicIPAddress, error) {
	ip, err := a.client.Get(ctx, resourceGroupName, ipName, "")
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &ip, nil
}

func (a *publicIPAddresses) Delete(ctx context.Context, resourceGroupName, ipName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, ipName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type disks struct {
	client *compute.DisksClient
}

func (a *disks) Get(ctx context.Context, resourceGroupName, diskName string) (*compute.Disk, error) {
	disk, err := a.client.Get(ctx, resourceGroupName, diskName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &disk, nil
}

func (a *disks) Delete(ctx context.Context, resourceGroupName, diskName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, diskName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type availabilitySets struct {
	client *compute.AvailabilitySetsClient
}

func (a *availabilitySets) Get(ctx context.Context, resourceGroupName, setName string) (*compute.AvailabilitySet, error) {
	set, err := a.client.Get(ctx, resourceGroupName, setName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &set, nil
}

// Delete is synchronous for availability sets, so the returned handle is
// always nil.
func (a *availabilitySets) Delete(ctx context.Context, resourceGroupName, setName string) (OperationHandle, error) {
	resp, err := a.client.Delete(ctx, resourceGroupName, setName)
	if client.ResponseWasNotFound(resp) || IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return nil, nil
}

type securityGroups struct {
	client *network.SecurityGroupsClient
}

func (a *securityGroups) Get(ctx context.Context, resourceGroupName, sgName string) (*network.SecurityGroup, error) {
	sg, err := a.client.Get(ctx, resourceGroupName, sgName, "")
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return &sg, nil
}

func (a *securityGroups) Delete(ctx context.Context, resourceGroupName, sgName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, sgName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type virtualNetworks struct {
	client *network.VirtualNetworksClient
}

func (a *virtualNetworks) List(ctx context.Context, resourceGroupName string) ([]network.VirtualNetwork, error) {
	var vnets []network.VirtualNetwork

	iterator, err := a.client.ListComplete(ctx, resourceGroupName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	for iterator.NotDone() {
		vnets = append(vnets, iterator.Value())

		err = iterator.NextWithContext(ctx)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return vnets, nil
}

func (a *virtualNetworks) Delete(ctx context.Context, resourceGroupName, vnetName string) (OperationHandle, error) {
	future, err := a.client.Delete(ctx, resourceGroupName, vnetName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.client.Client), nil
}

type resourceGroups struct {
	groups    *resources.GroupsClient
	resources *resources.Client
}

func (a *resourceGroups) ListResources(ctx context.Context, resourceGroupName string) ([]resources.GenericResourceExpanded, error) {
	var attached []resources.GenericResourceExpanded

	iterator, err := a.resources.ListByResourceGroupComplete(ctx, resourceGroupName, "", "", nil)
	if err != nil {
		return nil, microerror.Mask(err)
	}

	for iterator.NotDone() {
		attached = append(attached, iterator.Value())

		err = iterator.NextWithContext(ctx)
		if err != nil {
			return nil, microerror.Mask(err)
		}
	}

	return attached, nil
}

func (a *resourceGroups) Delete(ctx context.Context, resourceGroupName string) (OperationHandle, error) {
	future, err := a.groups.Delete(ctx, resourceGroupName)
	if IsNotFound(err) {
		return nil, nil
	} else if err != nil {
		return nil, microerror.Mask(err)
	}

	return newFutureHandle(future.FutureAPI, a.groups.Client), nil
}
