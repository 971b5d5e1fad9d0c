package idref

import "github.com/giantswarm/microerror"

var malformedIdentifierError = &microerror.Error{
	Kind: "malformedIdentifierError",
}

// IsMalformedIdentifier asserts malformedIdentifierError.
func IsMalformedIdentifier(err error) bool {
	return microerror.Cause(err) == malformedIdentifierError
}

var malformedNodeIDError = &microerror.Error{
	Kind: "malformedNodeIDError",
}

// IsMalformedNodeID asserts malformedNodeIDError.
func IsMalformedNodeID(err error) bool {
	return microerror.Cause(err) == malformedNodeIDError
}
