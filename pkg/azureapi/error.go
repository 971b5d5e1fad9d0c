package azureapi

import (
	"net/http"
	"strings"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
)

var inUseError = &microerror.Error{
	Kind: "inUseError",
}

// inUseCodes are ARM service error codes reported when a resource cannot be
// deleted because something is still attached to it.
var inUseCodes = []string{
	"InUseSubnetCannotBeDeleted",
	"InUseNetworkSecurityGroupCannotBeDeleted",
	"InUseVirtualNetworkCannotBeDeleted",
	"PublicIPAddressInUse",
	"NicInUse",
}

// IsInUse asserts inUseError or an ARM error reporting that the resource is
// still in use.
func IsInUse(err error) bool {
	if err == nil {
		return false
	}

	if microerror.Cause(err) == inUseError {
		return true
	}

	code := serviceErrorCode(err)
	for _, c := range inUseCodes {
		if strings.EqualFold(code, c) {
			return true
		}
	}

	return false
}

var notFoundError = &microerror.Error{
	Kind: "notFoundError",
}

// IsNotFound asserts notFoundError or a 404 response from the Azure API.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	c := microerror.Cause(err)

	if c == notFoundError {
		return true
	}

	{
		dErr, ok := c.(autorest.DetailedError)
		if ok {
			if dErr.StatusCode == http.StatusNotFound {
				return true
			}
		}
	}

	switch serviceErrorCode(err) {
	case "NotFound", "ResourceNotFound", "ResourceGroupNotFound":
		return true
	}

	return false
}

var operationFailedError = &microerror.Error{
	Kind: "operationFailedError",
}

// IsOperationFailed asserts operationFailedError.
func IsOperationFailed(err error) bool {
	return microerror.Cause(err) == operationFailedError
}

// serviceErrorCode digs the ARM error code out of the error types returned by
// autorest based clients and futures. It returns an empty string when there
// is none.
func serviceErrorCode(err error) string {
	c := microerror.Cause(err)

	switch e := c.(type) {
	case autorest.DetailedError:
		c = e.Original
	case *autorest.DetailedError:
		c = e.Original
	}

	switch e := c.(type) {
	case azure.RequestError:
		if e.ServiceError != nil {
			return e.ServiceError.Code
		}
	case *azure.RequestError:
		if e.ServiceError != nil {
			return e.ServiceError.Code
		}
	case azure.ServiceError:
		return e.Code
	case *azure.ServiceError:
		return e.Code
	}

	return ""
}
