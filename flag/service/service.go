package service

import (
	"github.com/giantswarm/azure-node-cleanup/flag/service/azure"
	"github.com/giantswarm/azure-node-cleanup/flag/service/cleanup"
)

type Service struct {
	Azure   azure.Azure
	Cleanup cleanup.Cleanup
}
