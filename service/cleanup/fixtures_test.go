package cleanup

import (
	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
	"github.com/giantswarm/to"
)

const (
	resourceGroup = "rg1"

	computeProvider = "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Compute"
	networkProvider = "/subscriptions/sub/resourceGroups/rg1/providers/Microsoft.Network"

	setID      = computeProvider + "/availabilitySets/set1"
	dataDiskID = computeProvider + "/disks/vm1-data"
	osDiskID   = computeProvider + "/disks/vm1-os"
	vmID       = computeProvider + "/virtualMachines/vm1"

	nicID       = networkProvider + "/networkInterfaces/nic1"
	publicIPID  = networkProvider + "/publicIPAddresses/ip1"
	sgID        = networkProvider + "/networkSecurityGroups/jclouds-web"
	vnetID      = networkProvider + "/virtualNetworks/vnet1"
	otherVnetID = networkProvider + "/virtualNetworks/vnet2"
)

func newVirtualMachine() *compute.VirtualMachine {
	return &compute.VirtualMachine{
		ID:   to.StringP(vmID),
		Name: to.StringP("vm1"),
		VirtualMachineProperties: &compute.VirtualMachineProperties{
			AvailabilitySet: &compute.SubResource{ID: to.StringP(setID)},
			NetworkProfile: &compute.NetworkProfile{
				NetworkInterfaces: &[]compute.NetworkInterfaceReference{
					{ID: to.StringP(nicID)},
				},
			},
			StorageProfile: &compute.StorageProfile{
				OsDisk: &compute.OSDisk{
					ManagedDisk: &compute.ManagedDiskParameters{ID: to.StringP(osDiskID)},
				},
				DataDisks: &[]compute.DataDisk{
					{ManagedDisk: &compute.ManagedDiskParameters{ID: to.StringP(dataDiskID)}},
				},
			},
		},
	}
}

func newInterface() *network.Interface {
	return &network.Interface{
		ID:   to.StringP(nicID),
		Name: to.StringP("nic1"),
		InterfacePropertiesFormat: &network.InterfacePropertiesFormat{
			IPConfigurations: &[]network.InterfaceIPConfiguration{
				{
					InterfaceIPConfigurationPropertiesFormat: &network.InterfaceIPConfigurationPropertiesFormat{
						PublicIPAddress: &network.PublicIPAddress{ID: to.StringP(publicIPID)},
					},
				},
			},
		},
	}
}

func newPublicIP(tags map[string]*string) *network.PublicIPAddress {
	return &network.PublicIPAddress{
		ID:   to.StringP(publicIPID),
		Name: to.StringP("ip1"),
		Tags: tags,
	}
}

func autogeneratedTags() map[string]*string {
	return map[string]*string{"jclouds-autogenerated": to.StringP("true")}
}

func newAvailabilitySet(tags map[string]*string, vms ...string) *compute.AvailabilitySet {
	attached := []compute.SubResource{}
	for _, vm := range vms {
		attached = append(attached, compute.SubResource{ID: to.StringP(vm)})
	}

	return &compute.AvailabilitySet{
		ID:   to.StringP(setID),
		Name: to.StringP("set1"),
		Tags: tags,
		AvailabilitySetProperties: &compute.AvailabilitySetProperties{
			VirtualMachines: &attached,
		},
	}
}

func managedTags() map[string]*string {
	return map[string]*string{"jclouds": to.StringP("web")}
}

func newVirtualNetwork(id, name string, tags map[string]*string) network.VirtualNetwork {
	return network.VirtualNetwork{
		ID:   to.StringP(id),
		Name: to.StringP(name),
		Tags: tags,
	}
}

func newGenericResource(id, name string) resources.GenericResourceExpanded {
	return resources.GenericResourceExpanded{
		ID:   to.StringP(id),
		Name: to.StringP(name),
	}
}
