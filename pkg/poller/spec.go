package poller

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/services/resources/mgmt/2019-05-01/resources"

	"github.com/giantswarm/azure-node-cleanup/pkg/azureapi"
	"github.com/giantswarm/azure-node-cleanup/pkg/idref"
)

// ResourceDeleted waits for a delete operation to finish.
type ResourceDeleted interface {
	Await(ctx context.Context, handle azureapi.OperationHandle) bool
}

// ResourceDeletedFunc lets a plain function act as ResourceDeleted.
type ResourceDeletedFunc func(ctx context.Context, handle azureapi.OperationHandle) bool

func (f ResourceDeletedFunc) Await(ctx context.Context, handle azureapi.OperationHandle) bool {
	return f(ctx, handle)
}

// NotInResourceGroup waits for a resource to disappear from the listing of
// its resource group.
type NotInResourceGroup interface {
	Await(ctx context.Context, ref idref.IDReference) bool
}

// NotInResourceGroupFunc lets a plain function act as NotInResourceGroup.
type NotInResourceGroupFunc func(ctx context.Context, ref idref.IDReference) bool

func (f NotInResourceGroupFunc) Await(ctx context.Context, ref idref.IDReference) bool {
	return f(ctx, ref)
}

// ResourceGone waits for an existence check to report the resource as gone.
type ResourceGone interface {
	Await(ctx context.Context, ref idref.IDReference, exists ExistsFunc) bool
}

// ResourceGoneFunc lets a plain function act as ResourceGone.
type ResourceGoneFunc func(ctx context.Context, ref idref.IDReference, exists ExistsFunc) bool

func (f ResourceGoneFunc) Await(ctx context.Context, ref idref.IDReference, exists ExistsFunc) bool {
	return f(ctx, ref, exists)
}

// ExistsFunc reports whether the referenced resource can still be fetched.
type ExistsFunc func(ctx context.Context, ref idref.IDReference) (bool, error)

// Lister lists the resources attached to a resource group.
// azureapi.ResourceGroups satisfies it.
type Lister interface {
	ListResources(ctx context.Context, resourceGroupName string) ([]resources.GenericResourceExpanded, error)
}
