package cleanup

const (
	kindAvailabilitySet  = "availability_set"
	kindDisk             = "disk"
	kindNetworkInterface = "network_interface"
	kindPublicIPAddress  = "public_ip_address"
	kindResourceGroup    = "resource_group"
	kindSecurityGroup    = "security_group"
	kindVirtualMachine   = "virtual_machine"
	kindVirtualNetwork   = "virtual_network"
)

// DeletionRecorder is notified about the outcome of every awaited delete
// operation.
type DeletionRecorder interface {
	RecordDeletion(kind string, deleted bool)
}
