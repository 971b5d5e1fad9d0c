package cleanup

import (
	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/go-autorest/autorest/to"
)

func networkInterfaceIDs(vm *compute.VirtualMachine) []string {
	if vm == nil || vm.VirtualMachineProperties == nil || vm.NetworkProfile == nil || vm.NetworkProfile.NetworkInterfaces == nil {
		return nil
	}

	var ids []string
	for _, nic := range *vm.NetworkProfile.NetworkInterfaces {
		if nic.ID != nil {
			ids = append(ids, *nic.ID)
		}
	}

	return ids
}

// managedDiskIDs returns the OS disk first, followed by the data disks.
// Unmanaged disks are ignored.
func managedDiskIDs(vm *compute.VirtualMachine) []string {
	if vm == nil || vm.VirtualMachineProperties == nil || vm.StorageProfile == nil {
		return nil
	}

	var ids []string

	osDisk := vm.StorageProfile.OsDisk
	if osDisk != nil && osDisk.ManagedDisk != nil && osDisk.ManagedDisk.ID != nil {
		ids = append(ids, *osDisk.ManagedDisk.ID)
	}

	if vm.StorageProfile.DataDisks != nil {
		for _, d := range *vm.StorageProfile.DataDisks {
			if d.ManagedDisk != nil && d.ManagedDisk.ID != nil {
				ids = append(ids, *d.ManagedDisk.ID)
			}
		}
	}

	return ids
}

func availabilitySetID(vm *compute.VirtualMachine) string {
	if vm == nil || vm.VirtualMachineProperties == nil || vm.AvailabilitySet == nil {
		return ""
	}

	return to.String(vm.AvailabilitySet.ID)
}

func publicIPAddressIDs(nic *network.Interface) []string {
	if nic == nil || nic.InterfacePropertiesFormat == nil || nic.IPConfigurations == nil {
		return nil
	}

	var ids []string
	for _, ipConfig := range *nic.IPConfigurations {
		if ipConfig.InterfaceIPConfigurationPropertiesFormat == nil {
			continue
		}

		ip := ipConfig.PublicIPAddress
		if ip != nil && ip.ID != nil {
			ids = append(ids, *ip.ID)
		}
	}

	return ids
}
