package idref

import (
	"fmt"
	"strings"

	"github.com/giantswarm/microerror"
)

const nodeIDSeparator = "/"

// NodeID identifies a node as one opaque token for callers outside of Azure.
// The token is the resource group and the virtual machine name joined by a
// slash.
type NodeID struct {
	ResourceGroup string
	Name          string
}

func NewNodeID(resourceGroup, name string) NodeID {
	return NodeID{
		ResourceGroup: resourceGroup,
		Name:          name,
	}
}

// ParseNodeID splits a slash encoded node token. Exactly two non empty
// segments are accepted.
func ParseNodeID(token string) (NodeID, error) {
	parts := strings.Split(token, nodeIDSeparator)
	if len(parts) != 2 {
		return NodeID{}, microerror.Maskf(malformedNodeIDError, "%#q must have the form <resourceGroup>/<name>", token)
	}
	if parts[0] == "" || parts[1] == "" {
		return NodeID{}, microerror.Maskf(malformedNodeIDError, "%#q must not have empty segments", token)
	}

	return NewNodeID(parts[0], parts[1]), nil
}

func (n NodeID) String() string {
	return fmt.Sprintf("%s%s%s", n.ResourceGroup, nodeIDSeparator, n.Name)
}
