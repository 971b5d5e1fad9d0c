package azureapi

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"
)

//go:generate mockgen -destination ../mock/mock_azureapi/api.go -source spec.go

// OperationHandle tracks a long running operation started by a delete call.
// Delete methods return a nil handle when the operation already completed
// synchronously.
type OperationHandle interface {
	// Done polls the operation once. A non nil error together with done being
	// true means the operation terminated unsuccessfully.
	Done(ctx context.Context) (bool, error)
	PollingURL() string
}

// Get methods of all interfaces below return nil and no error when the
// resource does not exist.

type VirtualMachines interface {
	Get(ctx context.Context, resourceGroupName, vmName string) (*compute.VirtualMachine, error)
	Delete(ctx context.Context, resourceGroupName, vmName string) (OperationHandle, error)
}

type Interfaces interface {
	Get(ctx context.Context, resourceGroupName, nicName string) (*network.Interface, error)
	Delete(ctx context.Context, resourceGroupName, nicName string) (OperationHandle, error)
}

type PublicIPAddresses interface {
	Get(ctx context.Context, resourceGroupName, ipName string) (*network.PublicIPAddress, error)
	Delete(ctx context.Context, resourceGroupName, ipName string) (OperationHandle, error)
}

type Disks interface {
	Get(ctx context.Context, resourceGroupName, diskName string) (*compute.Disk, error)
	Delete(ctx context.Context, resourceGroupName, diskName string) (OperationHandle, error)
}

type AvailabilitySets interface {
	Get(ctx context.Context, resourceGroupName, setName string) (*compute.AvailabilitySet, error)
	Delete(ctx context.Context, resourceGroupName, setName string) (OperationHandle, error)
}

type SecurityGroups interface {
	Get(ctx context.Context, resourceGroupName, sgName string) (*network.SecurityGroup, error)
	Delete(ctx context.Context, resourceGroupName, sgName string) (OperationHandle, error)
}

type VirtualNetworks interface {
	List(ctx context.Context, resourceGroupName string) ([]network.VirtualNetwork, error)
	Delete(ctx context.Context, resourceGroupName, vnetName string) (OperationHandle, error)
}

type ResourceGroups interface {
	// ListResources returns all resources currently attached to the group.
	ListResources(ctx context.Context, resourceGroupName string) ([]resources.GenericResourceExpanded, error)
	Delete(ctx context.Context, resourceGroupName string) (OperationHandle, error)
}
