// Package idref resolves Azure Resource Manager IDs and slash encoded node IDs
// into resource group and name pairs.
package idref

import (
	"fmt"

	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
)

// IDReference points to a single ARM resource. It is comparable and can be
// used as a map key.
type IDReference struct {
	ResourceGroup string
	Name          string
	ID            string
}

// Parse resolves an ARM resource ID like
//
//     /subscriptions/<id>/resourceGroups/<group>/providers/Microsoft.Compute/disks/<name>
//
// into an IDReference. Nested resources resolve to their last name segment.
func Parse(id string) (IDReference, error) {
	r, err := azure.ParseResourceID(id)
	if err != nil {
		return IDReference{}, microerror.Maskf(malformedIdentifierError, "%#q", id)
	}
	if r.ResourceGroup == "" {
		return IDReference{}, microerror.Maskf(malformedIdentifierError, "%#q has no resource group", id)
	}
	if r.ResourceName == "" {
		return IDReference{}, microerror.Maskf(malformedIdentifierError, "%#q has no resource name", id)
	}

	ref := IDReference{
		ResourceGroup: r.ResourceGroup,
		Name:          r.ResourceName,
		ID:            id,
	}

	return ref, nil
}

// String renders the reference as "<group>/<name>" for logging.
func (r IDReference) String() string {
	return fmt.Sprintf("%s/%s", r.ResourceGroup, r.Name)
}
