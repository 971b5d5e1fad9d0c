// Package ownership decides which resources around a node were created on
// its behalf and may therefore be removed together with it.
package ownership

import (
	"strings"

	"github.com/Azure/azure-sdk-for-go/services/compute/mgmt/2019-07-01/compute"
	"github.com/Azure/azure-sdk-for-go/services/network/mgmt/2019-11-01/network"
	"github.com/Azure/go-autorest/autorest/to"
)

const (
	DefaultManagedTagKey         = "jclouds"
	DefaultAutogeneratedIPTagKey = "jclouds-autogenerated"
)

// Policy holds the tag keys marking resources as managed.
type Policy struct {
	// ManagedTagKey marks availability sets, security groups and virtual
	// networks. Only its presence is checked.
	ManagedTagKey string
	// AutogeneratedIPTagKey marks public IPs allocated implicitly for a
	// node. Its value must be "true".
	AutogeneratedIPTagKey string
}

// DefaultPolicy returns the policy using the default tag keys.
func DefaultPolicy() Policy {
	return Policy{
		ManagedTagKey:         DefaultManagedTagKey,
		AutogeneratedIPTagKey: DefaultAutogeneratedIPTagKey,
	}
}

func (p Policy) ShouldDeletePublicIP(ip *network.PublicIPAddress) bool {
	if ip == nil {
		return false
	}

	v, ok := ip.Tags[p.AutogeneratedIPTagKey]
	if !ok {
		return false
	}

	return strings.EqualFold(to.String(v), "true")
}

func (p Policy) IsOrphanedAvailabilitySet(set *compute.AvailabilitySet) bool {
	if set == nil {
		return false
	}

	if _, ok := set.Tags[p.ManagedTagKey]; !ok {
		return false
	}

	if set.AvailabilitySetProperties == nil || set.VirtualMachines == nil {
		return true
	}

	return len(*set.VirtualMachines) == 0
}

// IsOrphanedSecurityGroup only looks at attached network interfaces. Matching
// the group name is up to the caller.
func (p Policy) IsOrphanedSecurityGroup(sg *network.SecurityGroup) bool {
	if sg == nil {
		return false
	}

	if sg.SecurityGroupPropertiesFormat == nil || sg.NetworkInterfaces == nil {
		return true
	}

	return len(*sg.NetworkInterfaces) == 0
}

func (p Policy) IsManagedVirtualNetwork(vnet network.VirtualNetwork) bool {
	_, ok := vnet.Tags[p.ManagedTagKey]
	return ok
}
