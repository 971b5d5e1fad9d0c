package azureapi

import (
	"context"

	"github.com/Azure/go-autorest/autorest"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/giantswarm/microerror"
)

type futureHandle struct {
	future azure.FutureAPI
	sender autorest.Sender
}

func newFutureHandle(future azure.FutureAPI, sender autorest.Sender) OperationHandle {
	return &futureHandle{
		future: future,
		sender: sender,
	}
}

func (h *futureHandle) Done(ctx context.Context) (bool, error) {
	done, err := h.future.DoneWithContext(ctx, h.sender)
	if done && err != nil {
		return true, microerror.Maskf(operationFailedError, "operation %#q finished with status %#q: %s", h.future.PollingURL(), h.future.Status(), err)
	} else if err != nil {
		return false, microerror.Mask(err)
	}

	return done, nil
}

func (h *futureHandle) PollingURL() string {
	return h.future.PollingURL()
}
