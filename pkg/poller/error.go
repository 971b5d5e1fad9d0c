package poller

import "github.com/giantswarm/microerror"

var invalidConfigError = &microerror.Error{
	Kind: "invalidConfigError",
}

// IsInvalidConfig asserts invalidConfigError.
func IsInvalidConfig(err error) bool {
	return microerror.Cause(err) == invalidConfigError
}

var pendingError = &microerror.Error{
	Kind: "pendingError",
}

// IsPending asserts pendingError.
func IsPending(err error) bool {
	return microerror.Cause(err) == pendingError
}

var stillPresentError = &microerror.Error{
	Kind: "stillPresentError",
}

// IsStillPresent asserts stillPresentError.
func IsStillPresent(err error) bool {
	return microerror.Cause(err) == stillPresentError
}
