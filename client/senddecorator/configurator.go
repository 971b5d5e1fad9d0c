package senddecorator

import (
	"github.com/Azure/go-autorest/autorest"
)

// WrapClient prepends the given decorators to the ones already configured on
// the autorest client. Decorators are executed in the order given.
// See: https://godoc.org/github.com/Azure/go-autorest/autorest#Client
func WrapClient(c *autorest.Client, decorators ...autorest.SendDecorator) {
	c.SendDecorators = append(decorators, c.SendDecorators...)
}
