package cleanup

import (
	"github.com/giantswarm/azure-node-cleanup/flag/service/cleanup/naming"
	"github.com/giantswarm/azure-node-cleanup/flag/service/cleanup/tags"
	"github.com/giantswarm/azure-node-cleanup/flag/service/cleanup/timeout"
)

type Cleanup struct {
	Naming   naming.Naming
	Parallel string
	Tags     tags.Tags
	Timeout  timeout.Timeout
}
